package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/collectiontypes/pkg/catalog"
	"github.com/mesh-intelligence/collectiontypes/pkg/types"
)

// Store reads a previously written export. It never modifies the database.
type Store struct {
	dataDir string
	db      *sql.DB
}

// Open attaches to the export in dataDir.
// Returns ErrExportMissing if no export database exists there.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, dbFileName)
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrExportMissing, dbPath)
		}
		return nil, fmt.Errorf("stat %s: %w", dbPath, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	return &Store{dataDir: dataDir, db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Platforms returns the exported platforms in their exported order.
func (s *Store) Platforms(ctx context.Context) ([]types.Platform, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM platforms ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying platforms: %w", err)
	}
	defer rows.Close()

	var out []types.Platform
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning platform: %w", err)
		}
		p, err := types.ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Sequence returns the exported hierarchy for p.
// Returns ErrUnknownPlatform if the export has no entries for p.
func (s *Store) Sequence(ctx context.Context, p types.Platform) (types.Sequence, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT ct.name
FROM sequence_entries e
JOIN platforms p ON p.platform_id = e.platform_id
JOIN collection_types ct ON ct.collection_type_id = e.collection_type_id
WHERE p.name = ?
ORDER BY e.position`, p.String())
	if err != nil {
		return types.Sequence{}, fmt.Errorf("querying sequence %s: %w", p, err)
	}
	defer rows.Close()

	var items []types.CollectionType
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return types.Sequence{}, fmt.Errorf("scanning sequence entry: %w", err)
		}
		ct, err := types.ParseCollectionType(name)
		if err != nil {
			return types.Sequence{}, err
		}
		items = append(items, ct)
	}
	if err := rows.Err(); err != nil {
		return types.Sequence{}, err
	}
	if len(items) == 0 {
		return types.Sequence{}, fmt.Errorf("%w: %s not exported", types.ErrUnknownPlatform, p)
	}
	return types.NewSequence(items...), nil
}

// JSONLSequences reads sequences.jsonl. Malformed lines are skipped; lines
// naming labels outside the vocabulary are an error.
func (s *Store) JSONLSequences() (map[types.Platform]types.Sequence, error) {
	records, err := readJSONL(filepath.Join(s.dataDir, sequencesJSONL))
	if err != nil {
		return nil, err
	}
	out := make(map[types.Platform]types.Sequence, len(records))
	for _, raw := range records {
		var rec sequenceRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", sequencesJSONL, err)
		}
		out[rec.Platform] = rec.CollectionTypes
	}
	return out, nil
}

// Verify compares both the database and sequences.jsonl against c.
// Returns ErrExportMismatch describing the first difference found.
func (s *Store) Verify(ctx context.Context, c *catalog.Catalog) error {
	exported, err := s.Platforms(ctx)
	if err != nil {
		return err
	}
	if len(exported) != len(c.Platforms()) {
		return fmt.Errorf("%w: %d platforms exported, catalog has %d",
			types.ErrExportMismatch, len(exported), len(c.Platforms()))
	}

	fromJSONL, err := s.JSONLSequences()
	if err != nil {
		return err
	}

	for _, p := range c.Platforms() {
		want, _ := c.Lookup(p)

		got, err := s.Sequence(ctx, p)
		if err != nil {
			return err
		}
		if !want.Equal(got) {
			return fmt.Errorf("%w: %s in %s is [%s], catalog has [%s]",
				types.ErrExportMismatch, p, dbFileName, got, want)
		}

		if line, ok := fromJSONL[p]; !ok || !want.Equal(line) {
			return fmt.Errorf("%w: %s in %s is [%s], catalog has [%s]",
				types.ErrExportMismatch, p, sequencesJSONL, line, want)
		}
	}
	return nil
}
