package repository

// Schema creates the tables the importer fills and LoadSnapshot reads.
// ordinal keeps the source list order.
const Schema = `
CREATE TABLE IF NOT EXISTS snapshot_meta (
	singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
	as_of VARCHAR(32) NOT NULL,
	source_page TEXT NOT NULL DEFAULT '',
	source_xlsx TEXT NOT NULL DEFAULT '',
	generated_at VARCHAR(64) NOT NULL DEFAULT '',
	fingerprint VARCHAR(32) NOT NULL DEFAULT '',
	records INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS pharmacies (
	ordinal INTEGER PRIMARY KEY,
	id BIGINT,
	pref VARCHAR(16),
	muni VARCHAR(255),
	name TEXT,
	addr TEXT,
	tel VARCHAR(32),
	url TEXT,
	hours TEXT,
	after_hours VARCHAR(8),
	after_hours_tel VARCHAR(32),
	privacy TEXT,
	call_ahead VARCHAR(8),
	notes TEXT
);
CREATE INDEX IF NOT EXISTS pharmacies_pref_idx ON pharmacies (pref);
`

// PharmacyColumns lists the pharmacies columns in insert order.
var PharmacyColumns = []string{
	"ordinal", "id", "pref", "muni", "name", "addr", "tel", "url",
	"hours", "after_hours", "after_hours_tel", "privacy", "call_ahead", "notes",
}
