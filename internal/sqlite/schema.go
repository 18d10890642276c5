// Package sqlite exports the collection type catalog to a SQLite database
// plus JSONL files, and reads those exports back for verification.
package sqlite

// File names written into the export directory.
const (
	dbFileName           = "collectiontypes.db"
	collectionTypesJSONL = "collection_types.jsonl"
	platformsJSONL       = "platforms.jsonl"
	sequencesJSONL       = "sequences.jsonl"
)

// jsonlFiles lists every JSONL file an export produces.
var jsonlFiles = []string{
	collectionTypesJSONL,
	platformsJSONL,
	sequencesJSONL,
}

// Schema DDL for the export database.
const (
	createCollectionTypes = `CREATE TABLE collection_types (
    collection_type_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    ordinal INTEGER NOT NULL
);`

	createPlatforms = `CREATE TABLE platforms (
    platform_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    ordinal INTEGER NOT NULL
);`

	createSequenceEntries = `CREATE TABLE sequence_entries (
    entry_id TEXT PRIMARY KEY,
    platform_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    collection_type_id TEXT NOT NULL,
    FOREIGN KEY (platform_id) REFERENCES platforms(platform_id),
    FOREIGN KEY (collection_type_id) REFERENCES collection_types(collection_type_id)
);`
)

// Index DDL. A platform never has two entries at the same position, but the
// same collection type may repeat within a platform.
const (
	idxEntriesPosition = `CREATE UNIQUE INDEX idx_sequence_entries_position ON sequence_entries(platform_id, position);`
	idxEntriesType     = `CREATE INDEX idx_sequence_entries_type ON sequence_entries(collection_type_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createCollectionTypes,
	createPlatforms,
	createSequenceEntries,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxEntriesPosition,
	idxEntriesType,
}
