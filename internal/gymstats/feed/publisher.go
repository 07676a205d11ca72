// Package feed publishes logged workouts to downstream consumers.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const (
	EventTypeWorkoutLogged = "workout.logged"

	publishTimeout = 10 * time.Second
)

var ErrPublisherClosed = errors.New("publisher closed")

// WorkoutLogged is the message emitted for every accepted workout.
type WorkoutLogged struct {
	WorkoutID       string    `json:"workoutId"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	DurationMinutes float64   `json:"durationMinutes"`
	Calories        int       `json:"calories"`
	LoggedAt        time.Time `json:"loggedAt"`
}

type Publisher interface {
	PublishWorkout(ctx context.Context, event WorkoutLogged) error
	Close() error
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishWorkout(context.Context, WorkoutLogged) error { return nil }
func (NoopPublisher) Close() error                                        { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a single topic, keyed by workout ID.
// Writes happen in the background; Close waits for the pending ones.
type KafkaPublisher struct {
	writer messageWriter

	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Compression:  kafka.Snappy,
			WriteTimeout: 5 * time.Second,
			BatchTimeout: 20 * time.Millisecond,
		},
	}
}

func newKafkaPublisherWithWriter(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// PublishWorkout hands the event to a background write and returns. Only
// encoding errors and publishing after Close are reported; write failures
// are logged. The write outlives ctx cancellation but keeps its values.
func (p *KafkaPublisher) PublishWorkout(ctx context.Context, event WorkoutLogged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal workout event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.WorkoutID),
		Value: payload,
		Time:  event.LoggedAt.UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeWorkoutLogged)},
			{Key: "category", Value: []byte(event.Category)},
		},
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}

	p.pending.Add(1)
	go func() {
		defer p.pending.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
			log.Errorf("write workout event [%s]: %s", event.WorkoutID, err)
			return
		}
		log.Tracef("workout event [%s] published", event.WorkoutID)
	}()

	return nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.pending.Wait()
	return p.writer.Close()
}
