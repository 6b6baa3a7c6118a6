package csv

import (
	"fmt"
	"strings"
)

// DecodeError means the file bytes were neither valid UTF-8 nor
// decodable as Windows-1252.
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("file %s is not valid UTF-8 or Windows-1252", e.Path)
}

// MissingColumnsError means the header lacks one or more required columns.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}
