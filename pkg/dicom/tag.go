package dicom

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag is the composite numeric identifier of one attribute, as a
// (group, element) pair. Tags are plain comparable values and can be used
// directly as map keys.
type Tag struct {
	Group   uint16
	Element uint16
}

// NewTag builds a tag from its group and element parts.
func NewTag(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// Well-known tags referenced throughout the catalog.
var (
	TagAccessionNumber   = NewTag(0x0008, 0x0050)
	TagPatientID         = NewTag(0x0010, 0x0020)
	TagStudyInstanceUID  = NewTag(0x0020, 0x000d)
	TagSeriesInstanceUID = NewTag(0x0020, 0x000e)
	TagSOPInstanceUID    = NewTag(0x0008, 0x0018)

	TagPatientName      = NewTag(0x0010, 0x0010)
	TagPatientBirthDate = NewTag(0x0010, 0x0030)
	TagPatientSex       = NewTag(0x0010, 0x0040)
	TagOtherPatientIDs  = NewTag(0x0010, 0x1000)

	TagStudyDate        = NewTag(0x0008, 0x0020)
	TagStudyTime        = NewTag(0x0008, 0x0030)
	TagStudyDescription = NewTag(0x0008, 0x1030)
	TagStudyID          = NewTag(0x0020, 0x0010)

	TagSeriesDate          = NewTag(0x0008, 0x0021)
	TagSeriesTime          = NewTag(0x0008, 0x0031)
	TagModality            = NewTag(0x0008, 0x0060)
	TagManufacturer        = NewTag(0x0008, 0x0070)
	TagStationName         = NewTag(0x0008, 0x1010)
	TagSeriesDescription   = NewTag(0x0008, 0x103e)
	TagBodyPartExamined    = NewTag(0x0018, 0x0015)
	TagSequenceName        = NewTag(0x0018, 0x0024)
	TagProtocolName        = NewTag(0x0018, 0x1030)
	TagSeriesNumber        = NewTag(0x0020, 0x0011)
	TagImagesInAcquisition = NewTag(0x0020, 0x1002)
	TagNumberOfSlices      = NewTag(0x0054, 0x0081)

	TagInstanceCreationDate = NewTag(0x0008, 0x0012)
	TagInstanceCreationTime = NewTag(0x0008, 0x0013)
	TagAcquisitionNumber    = NewTag(0x0020, 0x0012)
	TagInstanceNumber       = NewTag(0x0020, 0x0013)
	TagNumberOfFrames       = NewTag(0x0028, 0x0008)
	TagImageIndex           = NewTag(0x0054, 0x1330)
)

// Compare orders tags by group first, then element. It returns -1, 0 or +1.
func (t Tag) Compare(other Tag) int {
	switch {
	case t.Group < other.Group:
		return -1
	case t.Group > other.Group:
		return 1
	case t.Element < other.Element:
		return -1
	case t.Element > other.Element:
		return 1
	default:
		return 0
	}
}

// Less reports whether t sorts before other.
func (t Tag) Less(other Tag) bool {
	return t.Compare(other) < 0
}

// String renders the tag in the canonical "GGGG,EEEE" form.
func (t Tag) String() string {
	return fmt.Sprintf("%04x,%04x", t.Group, t.Element)
}

// ParseTag parses the "GGGG,EEEE" form produced by String. Both parts are
// hexadecimal.
func ParseTag(s string) (Tag, error) {
	group, element, ok := strings.Cut(s, ",")
	if !ok {
		return Tag{}, fmt.Errorf("invalid tag %q: expected \"GGGG,EEEE\"", s)
	}

	g, err := strconv.ParseUint(strings.TrimSpace(group), 16, 16)
	if err != nil {
		return Tag{}, fmt.Errorf("invalid tag group in %q: %w", s, err)
	}

	e, err := strconv.ParseUint(strings.TrimSpace(element), 16, 16)
	if err != nil {
		return Tag{}, fmt.Errorf("invalid tag element in %q: %w", s, err)
	}

	return NewTag(uint16(g), uint16(e)), nil
}
