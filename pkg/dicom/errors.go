package dicom

import (
	"errors"
	"fmt"
)

// ErrTagNotFound indicates a lookup for a tag the map does not contain.
var ErrTagNotFound = errors.New("tag not found")

// TagError ties a failed map operation to the tag it concerned.
type TagError struct {
	Tag Tag
	Op  string
	Err error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("dicom: %s %s: %v", e.Op, e.Tag, e.Err)
}

func (e *TagError) Unwrap() error {
	return e.Err
}
