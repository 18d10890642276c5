package types

import "fmt"

// CollectionType is one level of the hierarchy used to classify submitted
// sequencing data. The vocabulary is closed; values outside the constants
// below are never produced by this module.
type CollectionType uint8

// Collection type vocabulary, in declaration order.
const (
	CollectionTypePlatform CollectionType = iota + 1
	CollectionTypeDevelopment
	CollectionTypeProject
	CollectionTypeManifest
	CollectionTypeRun
	CollectionTypeSample
	CollectionTypeAnalysis
	CollectionTypeReport
	CollectionTypeLane
	CollectionTypeSubcategory
)

var collectionTypeNames = [...]string{
	CollectionTypePlatform:    "Platform",
	CollectionTypeDevelopment: "Development",
	CollectionTypeProject:     "Project",
	CollectionTypeManifest:    "Manifest",
	CollectionTypeRun:         "Run",
	CollectionTypeSample:      "Sample",
	CollectionTypeAnalysis:    "Analysis",
	CollectionTypeReport:      "Report",
	CollectionTypeLane:        "Lane",
	CollectionTypeSubcategory: "Subcategory",
}

var collectionTypesByName = func() map[string]CollectionType {
	m := make(map[string]CollectionType, len(collectionTypeNames))
	for i, name := range collectionTypeNames {
		if name != "" {
			m[name] = CollectionType(i)
		}
	}
	return m
}()

// CollectionTypes returns the full vocabulary in declaration order.
// The returned slice is freshly allocated on every call.
func CollectionTypes() []CollectionType {
	out := make([]CollectionType, 0, len(collectionTypeNames)-1)
	for i := range collectionTypeNames {
		ct := CollectionType(i)
		if ct.Valid() {
			out = append(out, ct)
		}
	}
	return out
}

// Valid reports whether c belongs to the vocabulary.
func (c CollectionType) Valid() bool {
	return c > 0 && int(c) < len(collectionTypeNames)
}

// String returns the display label, e.g. "Sample".
func (c CollectionType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("CollectionType(%d)", uint8(c))
	}
	return collectionTypeNames[c]
}

// ParseCollectionType converts a display label back to its CollectionType.
// Matching is exact and case-sensitive.
// Returns ErrUnknownCollectionType for labels outside the vocabulary.
func ParseCollectionType(s string) (CollectionType, error) {
	ct, ok := collectionTypesByName[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCollectionType, s)
	}
	return ct, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c CollectionType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCollectionType, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CollectionType) UnmarshalText(text []byte) error {
	ct, err := ParseCollectionType(string(text))
	if err != nil {
		return err
	}
	*c = ct
	return nil
}
