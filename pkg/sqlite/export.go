// Package sqlite exposes catalog export for programs that embed this module
// instead of running the CLI. The storage details stay internal.
package sqlite

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/collectiontypes/internal/sqlite"
	"github.com/mesh-intelligence/collectiontypes/pkg/catalog"
)

// Summary reports what an export wrote.
type Summary = sqlite.Summary

// Export writes c into dataDir as collectiontypes.db plus JSONL files.
// A nil logger discards log output.
//
// Example:
//
//	summary, err := sqlite.Export(ctx, "./export", catalog.Default(), nil)
func Export(ctx context.Context, dataDir string, c *catalog.Catalog, log logrus.FieldLogger) (*Summary, error) {
	return sqlite.NewExporter(dataDir, log).Export(ctx, c)
}

// Verify checks that the export in dataDir matches c.
func Verify(ctx context.Context, dataDir string, c *catalog.Catalog) error {
	s, err := sqlite.Open(dataDir)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Verify(ctx, c)
}
