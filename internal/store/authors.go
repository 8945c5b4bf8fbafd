package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/digua-cn/shici/pkg/types"
)

const upsertAuthorUpdate = `INSERT INTO author (id, name, name_tw, dynasty, introduction, introduction_tw)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (name) DO UPDATE SET
    name_tw = excluded.name_tw,
    dynasty = excluded.dynasty,
    introduction = excluded.introduction,
    introduction_tw = excluded.introduction_tw`

const upsertAuthorIgnore = `INSERT INTO author (id, name, name_tw, dynasty, introduction, introduction_tw)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (name) DO NOTHING`

// UpsertAuthors persists authors one statement per record, keyed on the
// unique canonical name. In update mode an existing row's variant,
// biography, and dynasty fields are refreshed while its id and is_top300
// flag stay untouched; in ignore mode an existing row wins. Both modes are
// idempotent for a fixed input.
func (s *Store) UpsertAuthors(ctx context.Context, authors []*types.Author, mode types.ConflictMode) (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	query := upsertAuthorUpdate
	if mode == types.ConflictIgnore {
		query = upsertAuthorIgnore
	}

	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("preparing author upsert: %w", err)
	}
	defer stmt.Close()

	for i, a := range authors {
		_, err := stmt.ExecContext(ctx, a.ID, a.Name, a.NameTW, a.Dynasty, a.Introduction, a.IntroductionTW)
		if err != nil {
			return i, fmt.Errorf("upserting author %q: %w", a.Name, err)
		}
	}
	return len(authors), nil
}

// AuthorByName returns the author row with the given canonical name, or
// types.ErrStoreClosed / sql.ErrNoRows wrapped in an error.
func (s *Store) AuthorByName(ctx context.Context, name string) (*types.Author, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		`SELECT id, name, name_tw, dynasty, introduction, introduction_tw, is_top300, created_at, updated_at
		 FROM author WHERE name = ?`, name)

	var (
		a                    types.Author
		nameTW, introTW      sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(&a.ID, &a.Name, &nameTW, &a.Dynasty, &a.Introduction, &introTW,
		&a.IsTop300, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("reading author %q: %w", name, err)
	}
	if nameTW.Valid {
		a.NameTW = &nameTW.String
	}
	if introTW.Valid {
		a.IntroductionTW = &introTW.String
	}
	a.CreatedAt = parseTimestamp(createdAt)
	a.UpdatedAt = parseTimestamp(updatedAt)
	return &a, nil
}

// parseTimestamp parses the store's RFC3339 timestamp strings. A zero time
// is returned for unparseable values rather than failing a read.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
