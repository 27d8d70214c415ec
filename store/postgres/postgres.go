package postgres

import (
	"fmt"
	"net"
	"sort"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	bindata "github.com/golang-migrate/migrate/v4/source/go_bindata"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/xid"
	config "github.com/spf13/viper"
	"go.uber.org/zap"
)

// Client is the postgres database client
type Client struct {
	logger *zap.SugaredLogger
	db     *sqlx.DB
}

// New connects to the database per the storage config, applies
// migrations and returns the client
func New() (*Client, error) {

	logger := zap.S().With("package", "store.postgres")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		config.GetString("storage.username"),
		config.GetString("storage.password"),
		net.JoinHostPort(config.GetString("storage.host"), config.GetString("storage.port")),
		config.GetString("storage.database"),
		config.GetString("storage.sslmode"),
	)

	// The database may still be coming up, retry per config
	var db *sqlx.DB
	var err error
	for retries := config.GetInt("storage.retries"); retries > 0; retries-- {
		db, err = sqlx.Connect("postgres", dbURL)
		if err == nil {
			break
		}
		logger.Warnw("Could not connect to database, retrying",
			"error", err,
			"sleep", config.GetDuration("storage.sleep_between_retries"),
		)
		time.Sleep(config.GetDuration("storage.sleep_between_retries"))
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %v", err)
	}
	db.SetMaxOpenConns(config.GetInt("storage.max_connections"))

	names := make([]string, 0, len(migrations))
	for name := range migrations {
		names = append(names, name)
	}
	sort.Strings(names)
	source, err := bindata.WithInstance(bindata.Resource(names, func(name string) ([]byte, error) {
		return migrations[name], nil
	}))
	if err != nil {
		return nil, fmt.Errorf("could not create migration source: %v", err)
	}
	m, err := migrate.NewWithSourceInstance("go-bindata", source, dbURL)
	if err != nil {
		return nil, fmt.Errorf("could not create migration instance: %v", err)
	}
	if config.GetBool("storage.wipe_confirm") {
		if err = m.Drop(); err != nil {
			return nil, fmt.Errorf("could not wipe database: %v", err)
		}
		logger.Warn("Database wiped")
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return nil, fmt.Errorf("could not migrate database: %v", err)
	}

	logger.Debugw("Connected to database",
		"host", config.GetString("storage.host"),
		"database", config.GetString("storage.database"),
	)

	return &Client{
		logger: logger,
		db:     db,
	}, nil

}

// newID generates a thing id
func (c *Client) newID() string {
	return xid.New().String()
}
