package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"
	config "github.com/spf13/viper"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS thing (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		etag TEXT NOT NULL,
		timestamp TIMESTAMP NOT NULL
	)
`

// Client is the embedded sqlite database client
type Client struct {
	logger *zap.SugaredLogger
	db     *sqlx.DB
}

// New opens the database file per the storage config and bootstraps the
// schema
func New() (*Client, error) {

	logger := zap.S().With("package", "store.sqlite")

	db, err := sqlx.Connect("sqlite", config.GetString("storage.file"))
	if err != nil {
		return nil, fmt.Errorf("could not open database file: %v", err)
	}
	// The modernc driver does not support concurrent writers
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("could not create schema: %v", err)
	}

	logger.Debugw("Opened database", "file", config.GetString("storage.file"))

	return &Client{
		logger: logger,
		db:     db,
	}, nil

}

// Close closes the database file
func (c *Client) Close() error {
	return c.db.Close()
}

// newID generates a thing id
func (c *Client) newID() string {
	return xid.New().String()
}
