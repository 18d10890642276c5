// Package catalog holds the fixed collection type hierarchies for each
// sequencing platform. A Catalog is fully populated when constructed and is
// never modified afterwards, so it is safe for concurrent readers without
// locking.
package catalog

import (
	"fmt"

	"github.com/mesh-intelligence/collectiontypes/pkg/types"
)

// Catalog exposes one ordered Sequence per platform.
type Catalog struct {
	pacBio               types.Sequence
	illuminaMiSeqProject types.Sequence
	illuminaMiSeqReport  types.Sequence
	illuminaHiSeqProject types.Sequence
}

var defaultCatalog = New()

// Default returns the process-wide catalog built at package initialization.
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog with the standard sequences. Sample appears twice in
// both Illumina project hierarchies; it is kept as listed.
func New() *Catalog {
	return &Catalog{
		pacBio: types.NewSequence(
			types.CollectionTypePlatform,
			types.CollectionTypeDevelopment,
			types.CollectionTypeProject,
			types.CollectionTypeRun,
			types.CollectionTypeSample,
		),
		illuminaMiSeqProject: types.NewSequence(
			types.CollectionTypePlatform,
			types.CollectionTypeAnalysis,
			types.CollectionTypeProject,
			types.CollectionTypeRun,
			types.CollectionTypeSample,
			types.CollectionTypeLane,
			types.CollectionTypeSubcategory,
			types.CollectionTypeSample,
		),
		illuminaMiSeqReport: types.NewSequence(
			types.CollectionTypePlatform,
			types.CollectionTypeAnalysis,
			types.CollectionTypeReport,
		),
		illuminaHiSeqProject: types.NewSequence(
			types.CollectionTypePlatform,
			types.CollectionTypeAnalysis,
			types.CollectionTypeProject,
			types.CollectionTypeManifest,
			types.CollectionTypeRun,
			types.CollectionTypeSample,
			types.CollectionTypeLane,
			types.CollectionTypeSubcategory,
			types.CollectionTypeSample,
		),
	}
}

// PacBioCollectionTypes returns the PacBio hierarchy.
func (c *Catalog) PacBioCollectionTypes() types.Sequence {
	return c.pacBio
}

// IlluminaMiSeqProjectCollectionTypes returns the Illumina MiSeq project hierarchy.
func (c *Catalog) IlluminaMiSeqProjectCollectionTypes() types.Sequence {
	return c.illuminaMiSeqProject
}

// IlluminaMiSeqReportCollectionTypes returns the Illumina MiSeq report hierarchy.
func (c *Catalog) IlluminaMiSeqReportCollectionTypes() types.Sequence {
	return c.illuminaMiSeqReport
}

// IlluminaHiSeqProjectCollectionTypes returns the Illumina HiSeq project hierarchy.
func (c *Catalog) IlluminaHiSeqProjectCollectionTypes() types.Sequence {
	return c.illuminaHiSeqProject
}

// Platforms lists the platforms the catalog covers, in catalog order.
func (c *Catalog) Platforms() []types.Platform {
	return types.Platforms()
}

// Lookup returns the sequence for p. The boolean is false for unknown
// platforms.
func (c *Catalog) Lookup(p types.Platform) (types.Sequence, bool) {
	switch p {
	case types.PlatformPacBio:
		return c.pacBio, true
	case types.PlatformIlluminaMiSeqProject:
		return c.illuminaMiSeqProject, true
	case types.PlatformIlluminaMiSeqReport:
		return c.illuminaMiSeqReport, true
	case types.PlatformIlluminaHiSeqProject:
		return c.illuminaHiSeqProject, true
	default:
		return types.Sequence{}, false
	}
}

// ValidatePath checks that path names the leading levels of p's hierarchy,
// outermost first. A full-depth path is valid, as is any non-empty prefix.
//
// Returns ErrUnknownPlatform, ErrEmptyPath, ErrPathTooDeep, or
// ErrPathMismatch (wrapped with the offending position).
func (c *Catalog) ValidatePath(p types.Platform, path []types.CollectionType) error {
	seq, ok := c.Lookup(p)
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrUnknownPlatform, p)
	}
	if len(path) == 0 {
		return types.ErrEmptyPath
	}
	if len(path) > seq.Len() {
		return fmt.Errorf("%w: %s has %d levels, path has %d",
			types.ErrPathTooDeep, p, seq.Len(), len(path))
	}
	for i, ct := range path {
		if want := seq.At(i); ct != want {
			return fmt.Errorf("%w: level %d is %s, expected %s",
				types.ErrPathMismatch, i+1, ct, want)
		}
	}
	return nil
}
