package bolt

import (
	"fmt"
	"time"

	"github.com/zatekoja/symptom-triage/pkg/config"
	bbolt "go.etcd.io/bbolt"
)

// Client represents a bbolt database client
type Client struct {
	db *bbolt.DB
}

// NewClient opens (creating if absent) the bbolt database file
func NewClient(cfg *config.StoreConfig) (*Client, error) {
	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store file %s: %w", cfg.Path, err)
	}

	return &Client{db: db}, nil
}

// DB returns the underlying database handle
func (c *Client) DB() *bbolt.DB {
	return c.db
}

// Close closes the database file
func (c *Client) Close() error {
	return c.db.Close()
}
