// Package storage keeps a local journal of dispatched API calls.
// It is never consulted to answer API calls.
package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/samvad-hq/wunderlist-go/internal/domain"
)

// Store records dispatched calls.
type Store interface {
	Close() error
	Record(rec domain.CallRecord) (domain.CallRecord, error)
	Recent(limit int) ([]domain.CallRecord, error)
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	RecordTTL       time.Duration
	CleanupInterval time.Duration
}

const (
	defaultRecordTTL       = 7 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.RecordTTL <= 0 {
		opts.RecordTTL = defaultRecordTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error { return nil }
func (noopStore) Record(rec domain.CallRecord) (domain.CallRecord, error) {
	return rec, nil
}
func (noopStore) Recent(int) ([]domain.CallRecord, error) { return nil, nil }
