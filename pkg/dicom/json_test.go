package dicom

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMarshalJSON(t *testing.T) {
	m := NewMap()
	m.SetString(TagPatientID, "P1")
	m.SetString(TagStudyDate, "20230101")
	m.SetValue(TagNumberOfFrames, NewBinaryValue([]byte{0x01}))

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "P1", out["0010,0020"])
	assert.Equal(t, "20230101", out["0008,0020"])
	assert.Nil(t, out["0028,0008"])
}

func TestMapJSONRoundTrip(t *testing.T) {
	item := NewMap()
	item.SetString(TagInstanceNumber, "1")

	m := NewMap()
	m.SetString(TagPatientID, "P1")
	m.SetValue(NewTag(0x0008, 0x1140), NewSequenceValue(item))

	data, err := json.Marshal(m)
	require.NoError(t, err)

	decoded := NewMap()
	require.NoError(t, json.Unmarshal(data, decoded))

	assert.Equal(t, "P1", decoded.GetString(TagPatientID))

	value, err := decoded.GetValue(NewTag(0x0008, 0x1140))
	require.NoError(t, err)
	seq, ok := value.(SequenceValue)
	require.True(t, ok)
	require.Len(t, seq, 1)
	assert.Equal(t, "1", seq[0].GetString(TagInstanceNumber))
}

func TestMapUnmarshalJSONClearsAndValidates(t *testing.T) {
	m := NewMap()
	m.SetString(TagModality, "stale")

	require.NoError(t, json.Unmarshal([]byte(`{"0010,0020":"P1","0008,0050":null}`), m))
	assert.False(t, m.HasTag(TagModality))
	assert.Equal(t, "P1", m.GetString(TagPatientID))

	value, err := m.GetValue(TagAccessionNumber)
	require.NoError(t, err)
	assert.True(t, value.IsNull())

	assert.Error(t, json.Unmarshal([]byte(`{"bogus":"x"}`), m))
	assert.Error(t, json.Unmarshal([]byte(`{"0010,0020":42}`), m))
}
