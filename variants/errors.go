package variants

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var (
	// ErrInvalidRecord marks a variant that cannot take part in clustering
	ErrInvalidRecord = errors.New("invalid variant record")

	// ErrEmptyCluster is returned when primary selection is asked to choose from nothing
	ErrEmptyCluster = errors.New("empty cluster")
)

// RecordError describes one rejected input record. It unwraps to ErrInvalidRecord.
type RecordError struct {
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`
	Field string `json:"field"`
	Err   error  `json:"-"`
}

func (e *RecordError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("record %d (%s): %s: %v", e.Index, e.ID, e.Field, e.Err)
	}
	return fmt.Sprintf("record %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return ErrInvalidRecord
}

// MarshalJSON adds the error text, which Err cannot carry on its own.
func (e *RecordError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	type plain RecordError
	return json.Marshal(struct {
		*plain
		Message string `json:"error"`
	}{(*plain)(e), msg})
}
