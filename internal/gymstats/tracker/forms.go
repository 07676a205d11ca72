package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TextValue holds raw form input. It accepts both JSON strings and JSON
// numbers, so {"duration":"30"} and {"duration":30} decode the same way.
type TextValue string

func (v *TextValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("form value must be a string or a number: %w", err)
	}
	*v = TextValue(n.String())
	return nil
}

func (v TextValue) Trimmed() string {
	return strings.TrimSpace(string(v))
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
}

// FormError collects every invalid field of a submitted form.
type FormError struct {
	Fields []FieldError `json:"fields"`
}

func (e *FormError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid form"
	}

	messages := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		messages = append(messages, fe.Error())
	}
	return "invalid form: " + strings.Join(messages, "; ")
}

func (e *FormError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *FormError) HasErrors() bool {
	return len(e.Fields) > 0
}

// errOrNil avoids returning a typed nil inside the error interface.
func (e *FormError) errOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
