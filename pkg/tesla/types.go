package tesla

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a time value that crosses the wire as seconds since epoch,
// but tolerates ISO-8601 strings on decode. Encoding always produces
// epoch seconds.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON encodes the timestamp as seconds since epoch.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

// UnmarshalJSON decodes either a numeric epoch value or an ISO-8601
// string. Any other shape is a decode error.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err == nil {
		t.Time = time.Unix(int64(seconds), 0).UTC()

		return nil
	}

	var iso string
	if err := json.Unmarshal(data, &iso); err != nil {
		return fmt.Errorf("timestamp is neither epoch seconds nor a string: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return fmt.Errorf("cannot decode date string %q: %w", iso, err)
	}

	t.Time = parsed

	return nil
}

// Response is the single-object envelope wrapping every successful
// payload.
type Response[T any] struct {
	Response T `json:"response"`
}

// ArrayResponse is the array envelope.
type ArrayResponse[T any] struct {
	Response []T `json:"response"`
}

// BoolResponse is the boolean-result envelope used by simple operations.
type BoolResponse struct {
	Response bool `json:"response"`
}
