package dicom

// Value is the content stored under one tag. Implementations own their
// payload; Clone must return a copy that shares no mutable storage with the
// original, so that two Maps never alias each other's data.
type Value interface {
	// Clone returns an independently owned deep copy of the value.
	Clone() Value

	// AsString returns the textual content of the value. The second result
	// is false for values with no textual form (sequences, null).
	AsString() (string, bool)

	// IsNull reports whether the value carries no content at all.
	IsNull() bool
}

// StringValue is a textual attribute value.
type StringValue string

// NewStringValue wraps s as a Value.
func NewStringValue(s string) StringValue { return StringValue(s) }

func (v StringValue) Clone() Value { return v }
func (v StringValue) AsString() (string, bool) { return string(v), true }
func (v StringValue) IsNull() bool { return false }

// BinaryValue is an opaque byte payload.
type BinaryValue []byte

// NewBinaryValue copies data into a new BinaryValue. The caller keeps
// ownership of its slice.
func NewBinaryValue(data []byte) BinaryValue {
	b := make(BinaryValue, len(data))
	copy(b, data)
	return b
}

func (v BinaryValue) Clone() Value {
	b := make(BinaryValue, len(v))
	copy(b, v)
	return b
}

func (v BinaryValue) AsString() (string, bool) { return "", false }
func (v BinaryValue) IsNull() bool { return false }

// SequenceValue nests a list of metadata maps under a single tag.
type SequenceValue []*Map

// NewSequenceValue builds a sequence from deep copies of the given items.
func NewSequenceValue(items ...*Map) SequenceValue {
	s := make(SequenceValue, 0, len(items))
	for _, item := range items {
		s = append(s, item.Clone())
	}
	return s
}

func (v SequenceValue) Clone() Value {
	s := make(SequenceValue, 0, len(v))
	for _, item := range v {
		s = append(s, item.Clone())
	}
	return s
}

func (v SequenceValue) AsString() (string, bool) { return "", false }
func (v SequenceValue) IsNull() bool { return false }

// NullValue marks a tag as present without content, as in a query template
// entry a caller has not constrained yet.
type NullValue struct{}

func (NullValue) Clone() Value { return NullValue{} }
func (NullValue) AsString() (string, bool) { return "", false }
func (NullValue) IsNull() bool { return true }
