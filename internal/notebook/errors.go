// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notebook

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the notebook file does not exist or cannot be read.
var ErrInputNotFound = errors.New("input not found")

// ErrParse indicates the notebook content is not valid JSON or has no cell list.
var ErrParse = errors.New("parse error")

// ErrAttributeMissing indicates a cell or nested record lacks a required field.
var ErrAttributeMissing = errors.New("attribute missing")

// AttributeMissingError names the missing field by its path in the document,
// e.g. "cells[2].outputs[0].items".
type AttributeMissingError struct {
	Path string
}

func (e *AttributeMissingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrAttributeMissing, e.Path)
}

// Is makes errors.Is(err, ErrAttributeMissing) match.
func (e *AttributeMissingError) Is(target error) bool {
	return target == ErrAttributeMissing
}

func missing(format string, args ...any) error {
	return &AttributeMissingError{Path: fmt.Sprintf(format, args...)}
}
