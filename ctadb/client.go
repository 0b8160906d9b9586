package ctadb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Client is the shared read-only handle to the ridership database. It is
// opened once before the first command and passed by reference into every
// component that issues queries.
type Client struct {
	config Config
	DB     *sql.DB
}

// NewClient opens the ridership database at the configured path and verifies
// the connection. The database is expected to be pre-populated; the Client
// never writes to it outside of test fixtures.
func NewClient(config Config) (*Client, error) {
	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// One command runs at a time against a local static file, so a single
	// connection is all the session needs.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close() // nolint:errcheck
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return &Client{config: config, DB: db}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}
