package types

import "errors"

// Vocabulary errors.
var (
	ErrUnknownCollectionType = errors.New("unknown collection type")
	ErrUnknownPlatform       = errors.New("unknown platform")
)

// Path validation errors.
var (
	ErrEmptyPath    = errors.New("path must not be empty")
	ErrPathTooDeep  = errors.New("path is deeper than the platform sequence")
	ErrPathMismatch = errors.New("path does not match the platform sequence")
)

// Export errors.
var (
	ErrExportMissing  = errors.New("export not found")
	ErrExportMismatch = errors.New("export does not match the catalog")
)
