package jsonxl

import "errors"

// ErrEmptyConfig indicates a configuration with no inputs or outputs at all.
var ErrEmptyConfig = errors.New("empty config: no inputs or outputs supplied")

// ErrConflictingSources indicates both a JSON file and an in-memory tree
// were supplied.
var ErrConflictingSources = errors.New("JSONFile and Data are mutually exclusive")

// ErrNoSource indicates neither a JSON file nor an in-memory tree is
// available for the JSON side of a conversion.
var ErrNoSource = errors.New("no JSON source: set JSONFile or Data")

// ErrMissingExcelPath indicates no spreadsheet path is available.
var ErrMissingExcelPath = errors.New("spreadsheet file path required")

// ErrMissingOutputPath indicates no output JSON path was supplied.
var ErrMissingOutputPath = errors.New("output JSON file path required")
