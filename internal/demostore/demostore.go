// Package demostore is the offline registry used in demo mode. All rows live
// as one JSON array under a single key and are rewritten on every add.
package demostore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-reestr/internal/company"
	companyerrors "go-reestr/internal/company/errors"

	"go.etcd.io/bbolt"
)

var (
	bucketRegistry = []byte("registry")
	keyCompanies   = []byte("companies")
)

type Option func(*Store)

// WithClock overrides the time source used for new ids
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

type Store struct {
	db  *bbolt.DB
	now func() time.Time
}

var _ company.Repository = (*Store)(nil)

func New(ctx context.Context, dbPath string, opts ...Option) (*Store, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open demo store: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRegistry)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize demo store: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func readAll(tx *bbolt.Tx) ([]company.Company, error) {
	raw := tx.Bucket(bucketRegistry).Get(keyCompanies)
	if raw == nil {
		return []company.Company{}, nil
	}

	var rows []company.Company
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("demo store is corrupted: %w", err)
	}
	return rows, nil
}

func writeAll(tx *bbolt.Tx, rows []company.Company) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketRegistry).Put(keyCompanies, raw)
}

func (s *Store) all() ([]company.Company, error) {
	var rows []company.Company
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		rows, err = readAll(tx)
		return err
	})
	return rows, err
}

func (s *Store) List(ctx context.Context, skip, limit int) ([]company.Company, error) {
	rows, err := s.all()
	if err != nil {
		return nil, err
	}

	if skip >= len(rows) {
		return []company.Company{}, nil
	}
	end := len(rows)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return rows[skip:end], nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*company.Company, error) {
	rows, err := s.all()
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].ID == id {
			return &rows[i], nil
		}
	}
	return nil, companyerrors.ErrCompanyNotFound
}

// GetByINN returns the stored row. The demo store keeps no enrichment data.
func (s *Store) GetByINN(ctx context.Context, inn string) (*company.Company, error) {
	rows, err := s.all()
	if err != nil {
		return nil, err
	}

	inn = strings.TrimSpace(inn)
	for i := range rows {
		if rows[i].INN == inn {
			row := rows[i]
			row.Source = "demo"
			return &row, nil
		}
	}
	return nil, companyerrors.ErrCompanyNotFound
}

func (s *Store) Create(ctx context.Context, c *company.Company) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		rows, err := readAll(tx)
		if err != nil {
			return err
		}

		c.ID = nextID(rows, s.now().UnixMilli())
		rows = append(rows, *c)
		return writeAll(tx, rows)
	})
}

// Seed stores rows when the store is empty and reports whether it did
func (s *Store) Seed(ctx context.Context, rows []company.Company) (bool, error) {
	seeded := false
	err := s.db.Update(func(tx *bbolt.Tx) error {
		existing, err := readAll(tx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}
		seeded = true
		return writeAll(tx, rows)
	})
	return seeded, err
}

// nextID keeps the timestamp id unless an existing id is at or above it
func nextID(rows []company.Company, candidate int64) int64 {
	var maxID int64
	for _, r := range rows {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	if candidate <= maxID {
		return maxID + 1
	}
	return candidate
}
