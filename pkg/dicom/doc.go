// Package dicom implements the in-memory metadata model of the record
// catalog: composite numeric tags, typed attribute values, and the Map
// container that associates the two.
//
// A Map stores deep-owned values and never aliases the storage of another
// Map: Clone, ExtractTags and CopyTagIfExists all copy. The package also
// carries the four static tag lists describing which attributes belong to
// the patient, study, series and instance levels of the hierarchy, and the
// builders for the query templates used to drive attribute-based search
// across those levels.
//
// Map instances are not safe for concurrent use; callers sharing one
// instance across goroutines must serialize access themselves.
package dicom
