package dicom

import (
	"encoding/json"
	"fmt"
)

// The JSON form of a Map is the catalog's own exchange representation, used
// by the HTTP surface and by logging. It is an object keyed by "GGGG,EEEE"
// tag strings: textual values render as strings, sequences as arrays of
// nested objects, and values with no textual form as null. It is not a wire
// encoding of records.

// MarshalJSON implements json.Marshaler.
func (m *Map) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(m.values))
	for tag, value := range m.values {
		raw, err := marshalValue(value)
		if err != nil {
			return nil, fmt.Errorf("marshal tag %s: %w", tag, err)
		}
		out[tag.String()] = raw
	}
	return json.Marshal(out)
}

func marshalValue(value Value) (json.RawMessage, error) {
	if seq, ok := value.(SequenceValue); ok {
		return json.Marshal([]*Map(seq))
	}
	if s, ok := value.AsString(); ok {
		return json.Marshal(s)
	}
	return json.RawMessage("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler. The map is cleared first, so
// unmarshalling is a total function of the input.
func (m *Map) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if m.values == nil {
		m.values = make(map[Tag]Value, len(raw))
	}
	m.Clear()

	for key, payload := range raw {
		tag, err := ParseTag(key)
		if err != nil {
			return err
		}

		value, err := unmarshalValue(payload)
		if err != nil {
			return fmt.Errorf("unmarshal tag %s: %w", tag, err)
		}
		m.SetValue(tag, value)
	}

	return nil
}

func unmarshalValue(payload json.RawMessage) (Value, error) {
	if string(payload) == "null" {
		return NullValue{}, nil
	}

	if len(payload) > 0 && payload[0] == '[' {
		var items []*Map
		if err := json.Unmarshal(payload, &items); err != nil {
			return nil, err
		}
		seq := make(SequenceValue, 0, len(items))
		for _, item := range items {
			seq = append(seq, item)
		}
		return seq, nil
	}

	var s string
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, err
	}
	return NewStringValue(s), nil
}
