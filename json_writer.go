package budget

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// orderedObject is a JSON object whose keys are written in insertion order,
// unlike a map. The first marshaling error is kept and reported by
// MarshalJSON.
type orderedObject struct {
	keys   []string
	values []json.RawMessage
	err    error
}

// Set marshals value under key.
func (o *orderedObject) Set(key string, value any) {
	if o.err != nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("cannot encode %s: %w", key, err)
		return
	}
	o.keys = append(o.keys, key)
	o.values = append(o.values, raw)
}

// SetString sets key to s, omitting the key for an empty s.
func (o *orderedObject) SetString(key, s string) {
	if s != "" {
		o.Set(key, s)
	}
}

func (o *orderedObject) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		b.Write(k)
		b.WriteByte(':')
		b.Write(o.values[i])
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
