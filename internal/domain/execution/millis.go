package execution

import (
	"strconv"
	"time"
)

// Millis is an elapsed time that serializes as whole milliseconds.
type Millis time.Duration

// Std returns the value as a time.Duration.
func (m Millis) Std() time.Duration {
	return time.Duration(m)
}

// MarshalJSON implements json.Marshaler
func (m Millis) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, m.Std().Milliseconds(), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Millis) UnmarshalJSON(data []byte) error {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*m = Millis(time.Duration(ms) * time.Millisecond)
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (m Millis) MarshalYAML() (interface{}, error) {
	return m.Std().Milliseconds(), nil
}
