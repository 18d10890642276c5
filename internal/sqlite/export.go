package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/collectiontypes/pkg/catalog"
	"github.com/mesh-intelligence/collectiontypes/pkg/types"
)

// collectionTypeRecord is one line of collection_types.jsonl.
type collectionTypeRecord struct {
	ID      string               `json:"collection_type_id"`
	Name    types.CollectionType `json:"name"`
	Ordinal int                  `json:"ordinal"`
}

// platformRecord is one line of platforms.jsonl.
type platformRecord struct {
	ID      string         `json:"platform_id"`
	Name    types.Platform `json:"name"`
	Ordinal int            `json:"ordinal"`
}

// sequenceRecord is one line of sequences.jsonl.
type sequenceRecord struct {
	Platform        types.Platform `json:"platform"`
	CollectionTypes types.Sequence `json:"collection_types"`
	ExportedAt      string         `json:"exported_at"`
}

// Summary reports what an export wrote.
type Summary struct {
	DataDir         string
	DBPath          string
	CollectionTypes int
	Platforms       int
	Entries         int
}

// Exporter writes a catalog into a data directory. Each Export replaces the
// previous database and JSONL files.
type Exporter struct {
	dataDir string
	log     logrus.FieldLogger
	now     func() time.Time
}

// NewExporter creates an exporter for dataDir. A nil logger discards output.
func NewExporter(dataDir string, log logrus.FieldLogger) *Exporter {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Exporter{
		dataDir: dataDir,
		log:     log,
		now:     time.Now,
	}
}

// Export writes c to the data directory.
func (e *Exporter) Export(ctx context.Context, c *catalog.Catalog) (*Summary, error) {
	if err := os.MkdirAll(e.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(e.dataDir, dbFileName)
	// Start from a fresh schema on every export.
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing previous export: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	defer db.Close()

	if err := initSchema(ctx, db); err != nil {
		return nil, err
	}

	log := e.log.WithField("db", dbPath)
	summary := &Summary{DataDir: e.dataDir, DBPath: dbPath}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback()

	ctRecords, ctIDs, err := insertCollectionTypes(ctx, tx)
	if err != nil {
		return nil, err
	}
	summary.CollectionTypes = len(ctRecords)
	log.WithField("count", len(ctRecords)).Debug("exported collection types")

	var platRecords []platformRecord
	for i, p := range c.Platforms() {
		seq, ok := c.Lookup(p)
		if !ok {
			return nil, fmt.Errorf("%w: %s", types.ErrUnknownPlatform, p)
		}

		rec := platformRecord{ID: newID(), Name: p, Ordinal: i}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO platforms (platform_id, name, ordinal) VALUES (?, ?, ?)",
			rec.ID, p.String(), rec.Ordinal,
		); err != nil {
			return nil, fmt.Errorf("exporting platform %s: %w", p, err)
		}
		platRecords = append(platRecords, rec)

		for pos, ct := range seq.All() {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO sequence_entries (entry_id, platform_id, position, collection_type_id) VALUES (?, ?, ?, ?)",
				newID(), rec.ID, pos, ctIDs[ct],
			); err != nil {
				return nil, fmt.Errorf("exporting %s level %d: %w", p, pos+1, err)
			}
			summary.Entries++
		}
		log.WithFields(logrus.Fields{"platform": p.String(), "levels": seq.Len()}).Debug("exported sequence")
	}
	summary.Platforms = len(platRecords)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing export transaction: %w", err)
	}

	if err := e.writeJSONLFiles(c, ctRecords, platRecords); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"platforms": summary.Platforms,
		"entries":   summary.Entries,
	}).Info("catalog exported")
	return summary, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}

// insertCollectionTypes writes the full vocabulary and returns the generated
// IDs keyed by collection type.
func insertCollectionTypes(ctx context.Context, tx *sql.Tx) ([]collectionTypeRecord, map[types.CollectionType]string, error) {
	vocab := types.CollectionTypes()
	records := make([]collectionTypeRecord, 0, len(vocab))
	ids := make(map[types.CollectionType]string, len(vocab))

	for i, ct := range vocab {
		rec := collectionTypeRecord{ID: newID(), Name: ct, Ordinal: i}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO collection_types (collection_type_id, name, ordinal) VALUES (?, ?, ?)",
			rec.ID, ct.String(), rec.Ordinal,
		); err != nil {
			return nil, nil, fmt.Errorf("exporting collection type %s: %w", ct, err)
		}
		records = append(records, rec)
		ids[ct] = rec.ID
	}
	return records, ids, nil
}

func (e *Exporter) writeJSONLFiles(c *catalog.Catalog, cts []collectionTypeRecord, plats []platformRecord) error {
	exportedAt := e.now().UTC().Format(time.RFC3339)

	seqs := make([]sequenceRecord, 0, len(plats))
	for _, p := range c.Platforms() {
		seq, _ := c.Lookup(p)
		seqs = append(seqs, sequenceRecord{Platform: p, CollectionTypes: seq, ExportedAt: exportedAt})
	}

	files := []struct {
		name    string
		records func() ([]json.RawMessage, error)
	}{
		{collectionTypesJSONL, func() ([]json.RawMessage, error) { return marshalRecords(cts) }},
		{platformsJSONL, func() ([]json.RawMessage, error) { return marshalRecords(plats) }},
		{sequencesJSONL, func() ([]json.RawMessage, error) { return marshalRecords(seqs) }},
	}
	for _, f := range files {
		records, err := f.records()
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", f.name, err)
		}
		if err := writeJSONL(filepath.Join(e.dataDir, f.name), records); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
	}
	return nil
}

// newID returns a UUID v7 string, falling back to v4 if the clock source fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
