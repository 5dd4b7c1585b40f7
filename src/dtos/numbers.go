package dtos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string. A blank string decodes to 0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	value, blank, err := decodeInt(data)
	if err != nil {
		return err
	}
	if blank {
		*f = 0
		return nil
	}
	*f = FlexInt(value)
	return nil
}

// OptionalInt distinguishes an absent (or blank) field, an explicit JSON null
// and a concrete value.
type OptionalInt struct {
	Set   bool
	Null  bool
	Value int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = OptionalInt{Set: true, Null: true}
		return nil
	}
	value, blank, err := decodeInt(data)
	if err != nil {
		return err
	}
	if blank {
		*o = OptionalInt{}
		return nil
	}
	*o = OptionalInt{Set: true, Value: value}
	return nil
}

// Ptr returns nil when the value is absent or null.
func (o OptionalInt) Ptr() *int {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}

func decodeInt(data []byte) (value int, blank bool, err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return 0, false, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, true, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false, fmt.Errorf("invalid integer %q", s)
		}
		return n, false, nil
	}
	var n int
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return 0, false, fmt.Errorf("invalid integer %s", string(trimmed))
	}
	return n, false, nil
}
