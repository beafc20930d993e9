package dicom

// dictionary maps the tags the catalog indexes to their plain-text keywords.
// This is compiled-in configuration, not a full data dictionary.
var dictionary = map[Tag]string{
	TagAccessionNumber:   "AccessionNumber",
	TagPatientID:         "PatientID",
	TagStudyInstanceUID:  "StudyInstanceUID",
	TagSeriesInstanceUID: "SeriesInstanceUID",
	TagSOPInstanceUID:    "SOPInstanceUID",

	TagPatientName:      "PatientName",
	TagPatientBirthDate: "PatientBirthDate",
	TagPatientSex:       "PatientSex",
	TagOtherPatientIDs:  "OtherPatientIDs",

	TagStudyDate:        "StudyDate",
	TagStudyTime:        "StudyTime",
	TagStudyDescription: "StudyDescription",
	TagStudyID:          "StudyID",

	TagSeriesDate:          "SeriesDate",
	TagSeriesTime:          "SeriesTime",
	TagModality:            "Modality",
	TagManufacturer:        "Manufacturer",
	TagStationName:         "StationName",
	TagSeriesDescription:   "SeriesDescription",
	TagBodyPartExamined:    "BodyPartExamined",
	TagSequenceName:        "SequenceName",
	TagProtocolName:        "ProtocolName",
	TagSeriesNumber:        "SeriesNumber",
	TagImagesInAcquisition: "ImagesInAcquisition",
	TagNumberOfSlices:      "NumberOfSlices",

	TagInstanceCreationDate: "InstanceCreationDate",
	TagInstanceCreationTime: "InstanceCreationTime",
	TagAcquisitionNumber:    "AcquisitionNumber",
	TagInstanceNumber:       "InstanceNumber",
	TagNumberOfFrames:       "NumberOfFrames",
	TagImageIndex:           "ImageIndex",
}

// keywords is the reverse of dictionary, built once at init.
var keywords = func() map[string]Tag {
	m := make(map[string]Tag, len(dictionary))
	for tag, name := range dictionary {
		m[name] = tag
	}
	return m
}()

// TagName returns the keyword of a known tag, or the empty string when the
// tag is not part of the compiled-in dictionary.
func TagName(tag Tag) string {
	return dictionary[tag]
}

// FindTag looks a tag up by its keyword.
func FindTag(keyword string) (Tag, bool) {
	tag, ok := keywords[keyword]
	return tag, ok
}
