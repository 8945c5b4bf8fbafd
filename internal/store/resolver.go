package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/digua-cn/shici/pkg/types"
)

// Resolver looks up author IDs by name through a read-through cache. Authors
// load in an earlier phase, so cache entries (hits and misses alike) stay
// valid for the whole run and are never invalidated.
type Resolver struct {
	store  *Store
	column types.JoinKey

	mu    sync.Mutex
	cache map[string]string // name -> author id; "" caches a miss
}

// Compile-time interface check: Resolver must implement AuthorLookup.
var _ types.AuthorLookup = (*Resolver)(nil)

// NewResolver creates a resolver joining on the given author column.
func NewResolver(s *Store, column types.JoinKey) *Resolver {
	return &Resolver{
		store:  s,
		column: column,
		cache:  make(map[string]string),
	}
}

// Resolve returns the author ID matching the name exactly, consulting the
// cache first and falling back to a point query. A miss is not an error:
// ok is false and the work keeps a null reference.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, bool, error) {
	if name == "" {
		return "", false, nil
	}

	r.mu.Lock()
	id, cached := r.cache[name]
	r.mu.Unlock()
	if cached {
		return id, id != "", nil
	}

	id, err := r.lookup(ctx, name)
	if err != nil {
		return "", false, err
	}

	r.mu.Lock()
	r.cache[name] = id
	r.mu.Unlock()
	return id, id != "", nil
}

// lookup performs the single point query against the configured column.
func (r *Resolver) lookup(ctx context.Context, name string) (string, error) {
	db, err := r.store.conn()
	if err != nil {
		return "", err
	}

	var query string
	switch r.column {
	case types.JoinVariantName:
		query = "SELECT id FROM author WHERE name_tw = ? LIMIT 1"
	case types.JoinCanonicalName:
		query = "SELECT id FROM author WHERE name = ? LIMIT 1"
	default:
		return "", fmt.Errorf("unsupported author join key %q", r.column)
	}

	var id string
	err = db.QueryRowContext(ctx, query, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("resolving author %q: %w", name, err)
	}
	return id, nil
}
