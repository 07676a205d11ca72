package calendar

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Schedule maps a YYYY-MM-DD date key to the event planned for that day.
type Schedule map[string]ScheduledEvent

// LoadSchedule reads scheduled events from a ';' separated CSV with the
// columns DATE;TYPE;DESCRIPTION. Lines starting with '#' are skipped.
// A later line for the same date replaces the earlier one.
func LoadSchedule(scheduleCsvReader *csv.Reader) (Schedule, error) {
	log.Println("reading schedule CSV ...")

	scheduleCsvReader.Comma = ';'
	scheduleCsvReader.Comment = '#'
	scheduleCsvReader.TrimLeadingSpace = true

	schedule := make(Schedule)
	for {
		record, err := scheduleCsvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 3 {
			return nil, fmt.Errorf("record [%s] does not have 3 elements", record)
		}

		// DATE;TYPE;DESCRIPTION
		date, err := time.Parse(DateLayout, strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("record [%s], parse date: %w", record, err)
		}

		schedule[DateString(date)] = ScheduledEvent{
			Type:        strings.TrimSpace(record[1]),
			Description: strings.TrimSpace(record[2]),
		}
	}

	log.Printf("schedule CSV read %d events", len(schedule))

	return schedule, nil
}
