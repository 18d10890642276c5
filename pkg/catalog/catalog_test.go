package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/collectiontypes/pkg/types"
)

func TestCatalog_Sequences(t *testing.T) {
	c := New()

	tests := []struct {
		name   string
		get    func() types.Sequence
		expect []string
	}{
		{
			name:   "pacBio",
			get:    c.PacBioCollectionTypes,
			expect: []string{"Platform", "Development", "Project", "Run", "Sample"},
		},
		{
			name:   "illuminaMiSeqProject",
			get:    c.IlluminaMiSeqProjectCollectionTypes,
			expect: []string{"Platform", "Analysis", "Project", "Run", "Sample", "Lane", "Subcategory", "Sample"},
		},
		{
			name:   "illuminaMiSeqReport",
			get:    c.IlluminaMiSeqReportCollectionTypes,
			expect: []string{"Platform", "Analysis", "Report"},
		},
		{
			name:   "illuminaHiSeqProject",
			get:    c.IlluminaHiSeqProjectCollectionTypes,
			expect: []string{"Platform", "Analysis", "Project", "Manifest", "Run", "Sample", "Lane", "Subcategory", "Sample"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.get()
			require.NotZero(t, first.Len())
			assert.Equal(t, tt.expect, first.Strings())

			for range 3 {
				assert.True(t, first.Equal(tt.get()), "repeated calls must agree")
			}
		})
	}
}

func TestCatalog_SampleAppearsTwiceInProjectHierarchies(t *testing.T) {
	c := Default()

	miseq := c.IlluminaMiSeqProjectCollectionTypes()
	require.Equal(t, 8, miseq.Len())
	assert.Equal(t, types.CollectionTypeSample, miseq.At(4))
	assert.Equal(t, types.CollectionTypeSample, miseq.At(7))

	hiseq := c.IlluminaHiSeqProjectCollectionTypes()
	require.Equal(t, 9, hiseq.Len())
	assert.Equal(t, types.CollectionTypeSample, hiseq.At(5))
	assert.Equal(t, types.CollectionTypeSample, hiseq.At(8))
}

func TestCatalog_MutatingCopiesDoesNotLeak(t *testing.T) {
	c := Default()

	for _, p := range c.Platforms() {
		t.Run(p.String(), func(t *testing.T) {
			seq, ok := c.Lookup(p)
			require.True(t, ok)
			before := seq.Strings()

			items := seq.Slice()
			for i := range items {
				items[i] = types.CollectionTypeLane
			}
			labels := seq.Strings()
			labels[0] = "Tampered"

			again, _ := c.Lookup(p)
			assert.Equal(t, before, again.Strings())
		})
	}
}

func TestCatalog_LabelsStayInVocabulary(t *testing.T) {
	c := Default()
	vocab := make(map[types.CollectionType]bool)
	for _, ct := range types.CollectionTypes() {
		vocab[ct] = true
	}

	for _, p := range c.Platforms() {
		seq, ok := c.Lookup(p)
		require.True(t, ok)
		for i, ct := range seq.All() {
			assert.True(t, vocab[ct], "%s level %d is %v", p, i, ct)
		}
	}
}

func TestCatalog_LookupMatchesAccessors(t *testing.T) {
	c := New()
	accessors := map[types.Platform]types.Sequence{
		types.PlatformPacBio:               c.PacBioCollectionTypes(),
		types.PlatformIlluminaMiSeqProject: c.IlluminaMiSeqProjectCollectionTypes(),
		types.PlatformIlluminaMiSeqReport:  c.IlluminaMiSeqReportCollectionTypes(),
		types.PlatformIlluminaHiSeqProject: c.IlluminaHiSeqProjectCollectionTypes(),
	}

	for p, want := range accessors {
		got, ok := c.Lookup(p)
		require.True(t, ok)
		assert.True(t, want.Equal(got), p.String())
	}

	_, ok := c.Lookup(types.Platform(0))
	assert.False(t, ok)
}

func TestCatalog_DefaultMatchesNew(t *testing.T) {
	a, b := Default(), New()
	assert.Same(t, Default(), a)
	for _, p := range a.Platforms() {
		x, _ := a.Lookup(p)
		y, _ := b.Lookup(p)
		assert.True(t, x.Equal(y))
	}
}

func TestCatalog_ValidatePath(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		platform types.Platform
		path     []types.CollectionType
		wantErr  error
	}{
		{
			name:     "full report path",
			platform: types.PlatformIlluminaMiSeqReport,
			path:     []types.CollectionType{types.CollectionTypePlatform, types.CollectionTypeAnalysis, types.CollectionTypeReport},
		},
		{
			name:     "prefix of pacBio",
			platform: types.PlatformPacBio,
			path:     []types.CollectionType{types.CollectionTypePlatform, types.CollectionTypeDevelopment},
		},
		{
			name:     "unknown platform",
			platform: types.Platform(42),
			path:     []types.CollectionType{types.CollectionTypePlatform},
			wantErr:  types.ErrUnknownPlatform,
		},
		{
			name:     "empty path",
			platform: types.PlatformPacBio,
			wantErr:  types.ErrEmptyPath,
		},
		{
			name:     "too deep",
			platform: types.PlatformIlluminaMiSeqReport,
			path: []types.CollectionType{
				types.CollectionTypePlatform, types.CollectionTypeAnalysis,
				types.CollectionTypeReport, types.CollectionTypeSample,
			},
			wantErr: types.ErrPathTooDeep,
		},
		{
			name:     "wrong order",
			platform: types.PlatformIlluminaHiSeqProject,
			path:     []types.CollectionType{types.CollectionTypePlatform, types.CollectionTypeProject},
			wantErr:  types.ErrPathMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.ValidatePath(tt.platform, tt.path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalog_ConcurrentReads(t *testing.T) {
	c := Default()
	want := c.IlluminaHiSeqProjectCollectionTypes().Strings()

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := c.IlluminaHiSeqProjectCollectionTypes().Strings()
			if len(got) != len(want) {
				errs <- "length changed"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}
