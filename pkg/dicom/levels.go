package dicom

import "fmt"

// Level identifies one tier of the patient/study/series/instance hierarchy.
type Level int

const (
	LevelPatient Level = iota
	LevelStudy
	LevelSeries
	LevelInstance
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelPatient:
		return "patient"
	case LevelStudy:
		return "study"
	case LevelSeries:
		return "series"
	case LevelInstance:
		return "instance"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel maps a level name to its Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "patient":
		return LevelPatient, nil
	case "study":
		return LevelStudy, nil
	case "series":
		return LevelSeries, nil
	case "instance":
		return LevelInstance, nil
	default:
		return 0, fmt.Errorf("unknown hierarchy level %q", s)
	}
}

// The four static tag lists. They are fixed configuration; nothing mutates
// them after process start.
var (
	patientTags = []Tag{
		TagPatientName,
		TagPatientID,
		TagPatientBirthDate,
		TagPatientSex,
		TagOtherPatientIDs,
	}

	studyTags = []Tag{
		TagStudyDate,
		TagStudyTime,
		TagAccessionNumber,
		TagStudyDescription,
		TagStudyInstanceUID,
		TagStudyID,
	}

	seriesTags = []Tag{
		TagSeriesDate,
		TagSeriesTime,
		TagModality,
		TagManufacturer,
		TagStationName,
		TagSeriesDescription,
		TagBodyPartExamined,
		TagSequenceName,
		TagProtocolName,
		TagSeriesInstanceUID,
		TagSeriesNumber,
		TagImagesInAcquisition,
		TagNumberOfSlices,
	}

	instanceTags = []Tag{
		TagInstanceCreationDate,
		TagInstanceCreationTime,
		TagSOPInstanceUID,
		TagAcquisitionNumber,
		TagInstanceNumber,
		TagNumberOfFrames,
		TagImageIndex,
	}
)

// LevelTags returns the tags belonging to the given level, in their fixed
// order. The returned slice is shared configuration; callers must not
// mutate it.
func LevelTags(level Level) []Tag {
	switch level {
	case LevelPatient:
		return patientTags
	case LevelStudy:
		return studyTags
	case LevelSeries:
		return seriesTags
	case LevelInstance:
		return instanceTags
	default:
		return nil
	}
}

// IdentifierTag returns the tag whose value identifies a resource at the
// given level.
func IdentifierTag(level Level) Tag {
	switch level {
	case LevelPatient:
		return TagPatientID
	case LevelStudy:
		return TagStudyInstanceUID
	case LevelSeries:
		return TagSeriesInstanceUID
	default:
		return TagSOPInstanceUID
	}
}

// ancestorKeyTags lists, per level, the identifying tags of every coarser
// level that a find template must additionally carry: a series query must be
// scopable by its study and patient, an instance query also by its series.
func ancestorKeyTags(level Level) []Tag {
	switch level {
	case LevelStudy:
		return []Tag{TagAccessionNumber, TagPatientID}
	case LevelSeries:
		return []Tag{TagAccessionNumber, TagPatientID, TagStudyInstanceUID}
	case LevelInstance:
		return []Tag{TagAccessionNumber, TagPatientID, TagStudyInstanceUID, TagSeriesInstanceUID}
	default:
		return nil
	}
}

// SetupFindTemplate clears result and fills it with one empty-string entry
// per listed tag. An empty value means "any value matches, and the
// attribute is requested in the answer".
func SetupFindTemplate(result *Map, tags []Tag) {
	result.Clear()
	for _, tag := range tags {
		result.SetString(tag, "")
	}
}

// SetupLevelFindTemplate builds the find template for a whole hierarchy
// level: the level's own tags plus the identifying keys of every level
// above it. The operation is idempotent.
func SetupLevelFindTemplate(result *Map, level Level) {
	SetupFindTemplate(result, LevelTags(level))
	for _, tag := range ancestorKeyTags(level) {
		result.SetString(tag, "")
	}
}

// SetupFindPatientTemplate builds the patient-level find template.
func SetupFindPatientTemplate(result *Map) {
	SetupLevelFindTemplate(result, LevelPatient)
}

// SetupFindStudyTemplate builds the study-level find template.
func SetupFindStudyTemplate(result *Map) {
	SetupLevelFindTemplate(result, LevelStudy)
}

// SetupFindSeriesTemplate builds the series-level find template.
func SetupFindSeriesTemplate(result *Map) {
	SetupLevelFindTemplate(result, LevelSeries)
}

// SetupFindInstanceTemplate builds the instance-level find template.
func SetupFindInstanceTemplate(result *Map) {
	SetupLevelFindTemplate(result, LevelInstance)
}

// FindLevelIdentifier walks the hierarchy from the instance level up to the
// patient level and returns the first level whose identifier tag carries a
// non-empty value in m. Queries missing an explicit retrieve level are
// resolved this way.
func FindLevelIdentifier(m *Map) (Level, string, bool) {
	for _, level := range []Level{LevelInstance, LevelSeries, LevelStudy, LevelPatient} {
		if id := m.GetString(IdentifierTag(level)); id != "" {
			return level, id, true
		}
	}
	return 0, "", false
}
