package dicom

import "sort"

// Map associates tags with owned attribute values. The zero value is not
// usable; create instances with NewMap. A Map never shares value storage
// with another Map.
type Map struct {
	values map[Tag]Value
}

// NewMap returns an empty metadata map.
func NewMap() *Map {
	return &Map{values: make(map[Tag]Value)}
}

// SetValue installs value under tag, replacing any previous entry.
func (m *Map) SetValue(tag Tag, value Value) {
	m.values[tag] = value
}

// SetString installs a textual value under tag.
func (m *Map) SetString(tag Tag, s string) {
	m.SetValue(tag, NewStringValue(s))
}

// GetValue returns the value stored under tag. It fails with a *TagError
// wrapping ErrTagNotFound when the tag is absent; callers expecting absence
// should check HasTag first.
func (m *Map) GetValue(tag Tag) (Value, error) {
	value, ok := m.values[tag]
	if !ok {
		return nil, &TagError{Tag: tag, Op: "get", Err: ErrTagNotFound}
	}
	return value, nil
}

// GetString returns the textual content stored under tag, or the empty
// string when the tag is absent or its value has no textual form.
func (m *Map) GetString(tag Tag) string {
	if value, ok := m.values[tag]; ok {
		if s, ok := value.AsString(); ok {
			return s
		}
	}
	return ""
}

// HasTag reports whether tag is present.
func (m *Map) HasTag(tag Tag) bool {
	_, ok := m.values[tag]
	return ok
}

// Remove drops the entry for tag. Removing an absent tag is a no-op.
func (m *Map) Remove(tag Tag) {
	delete(m.values, tag)
}

// Clear empties the map. Clearing an already-empty map is a no-op.
func (m *Map) Clear() {
	clear(m.values)
}

// Len returns the number of stored entries.
func (m *Map) Len() int {
	return len(m.values)
}

// Tags returns the stored tags in ascending tag order.
func (m *Map) Tags() []Tag {
	tags := make([]Tag, 0, len(m.values))
	for tag := range m.values {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Less(tags[j]) })
	return tags
}

// Clone returns a fully independent deep copy of the map. Mutating either
// map afterwards does not affect the other.
func (m *Map) Clone() *Map {
	result := &Map{values: make(map[Tag]Value, len(m.values))}
	for tag, value := range m.values {
		result.values[tag] = value.Clone()
	}
	return result
}

// CopyTagIfExists copies source's entry at tag into m, as an independently
// owned value. It is a no-op when source does not carry the tag.
func (m *Map) CopyTagIfExists(source *Map, tag Tag) {
	if value, ok := source.values[tag]; ok {
		m.SetValue(tag, value.Clone())
	}
}

// ExtractTags clears result, then copies into it every listed tag present
// in m, in list order. Listed tags absent from m are skipped; a hierarchy
// level is usually a sparse subset of what a record carries.
func (m *Map) ExtractTags(result *Map, tags []Tag) {
	result.Clear()
	for _, tag := range tags {
		if value, ok := m.values[tag]; ok {
			result.SetValue(tag, value.Clone())
		}
	}
}

// ExtractPatientInformation fills result with the patient-level subset of m.
func (m *Map) ExtractPatientInformation(result *Map) {
	m.ExtractTags(result, patientTags)
}

// ExtractStudyInformation fills result with the study-level subset of m.
func (m *Map) ExtractStudyInformation(result *Map) {
	m.ExtractTags(result, studyTags)
}

// ExtractSeriesInformation fills result with the series-level subset of m.
func (m *Map) ExtractSeriesInformation(result *Map) {
	m.ExtractTags(result, seriesTags)
}

// ExtractInstanceInformation fills result with the instance-level subset of m.
func (m *Map) ExtractInstanceInformation(result *Map) {
	m.ExtractTags(result, instanceTags)
}
