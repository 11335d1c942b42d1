// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by InputFormatError.
var (
	ErrMissingBlock  = errors.New("missing content block")
	ErrNotSingleText = errors.New("description block does not hold a single string")
)

// FileAccessError reports that the catalog file could not be opened or read.
// It is returned before any parsing begins.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("reading catalog %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// InputFormatError reports a document that lacks the expected per-entry
// structure. ID is the offending entry's raw identifier when known.
type InputFormatError struct {
	ID  string
	Err error
}

func (e *InputFormatError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("malformed catalog: %v", e.Err)
	}
	return fmt.Sprintf("malformed catalog entry %q: %v", e.ID, e.Err)
}

func (e *InputFormatError) Unwrap() error { return e.Err }
