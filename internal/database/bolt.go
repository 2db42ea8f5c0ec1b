// Package database provides show summary persistence using BoltDB.
//
// Fetched summaries are stored here so a later detail request can expand
// the retained events of a show without repeating the catalog fetch.
package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/amaumene/gostremioccc/internal/models"
)

const (
	dbFileMode = 0600
	dbDirMode  = 0755

	defaultDBFile = "data.db"
)

var summariesBucket = []byte("summaries")

// Database defines the interface for summary persistence operations.
type Database interface {
	// GetShowSummary retrieves a stored summary by show id.
	// Returns nil without error when the id is unknown.
	GetShowSummary(id string) (*models.ShowSummary, error)
	// StoreShowSummary stores or replaces a summary.
	StoreShowSummary(summary *models.ShowSummary) error
	// Close closes the database.
	Close() error
}

// BoltDB implements the Database interface using BoltDB.
type BoltDB struct {
	db *bbolt.DB
}

// NewBolt opens (or creates) a BoltDB database at dbPath.
// If dbPath is empty, the default database file in the current directory is used.
func NewBolt(dbPath string) (*BoltDB, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bbolt.Open(dbPath, dbFileMode, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(summariesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create summaries bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// Close closes the database.
func (b *BoltDB) Close() error {
	return b.db.Close()
}

// GetShowSummary retrieves a stored summary by show id.
func (b *BoltDB) GetShowSummary(id string) (*models.ShowSummary, error) {
	var summary *models.ShowSummary

	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(summariesBucket).Get([]byte(id))
		if data == nil {
			return nil
		}

		summary = &models.ShowSummary{}
		return json.Unmarshal(data, summary)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get show summary: %w", err)
	}

	return summary, nil
}

// StoreShowSummary stores or replaces a summary keyed by its show id.
func (b *BoltDB) StoreShowSummary(summary *models.ShowSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode show summary: %w", err)
	}

	err = b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(summariesBucket).Put([]byte(summary.ID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store show summary: %w", err)
	}

	return nil
}
