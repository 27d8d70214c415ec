package postgres

// Schema migrations, applied on connect through golang-migrate.
// Names follow the <version>_<title>.<direction>.sql convention.
var migrations = map[string][]byte{
	"1_thing.up.sql": []byte(`
		CREATE TABLE IF NOT EXISTS thing (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			etag TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL
		)
	`),
	"1_thing.down.sql": []byte(`DROP TABLE IF EXISTS thing`),
}
