package boltdb

import (
	"fmt"
	"time"

	"github.com/rs/xid"
	config "github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// One bucket per table, rows are JSON keyed by thing id.
var thingBucket = []byte("thing")

// Client is the embedded bolt database client
type Client struct {
	logger *zap.SugaredLogger
	db     *bolt.DB
}

// New opens the database file per the storage config and creates the
// thing bucket when missing
func New() (*Client, error) {

	logger := zap.S().With("package", "store.boltdb")

	db, err := bolt.Open(config.GetString("storage.file"), 0600, &bolt.Options{
		Timeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open database file: %v", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(thingBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not create bucket: %v", err)
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
