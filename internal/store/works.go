package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/digua-cn/shici/pkg/types"
)

// workColumns are the insert columns for work rows, in statement order.
var workColumns = []string{
	"id", "title", "title_tw", "content", "content_tw",
	"author_name", "author_name_tw", "author_id", "category", "dynasty",
}

// InsertWorks persists one partition's records as a single parameterized
// multi-row insert inside an explicit transaction. Either every row of the
// partition commits or none do; a constraint violation rolls the whole
// partition back. Insert-only: ids are freshly generated upstream, so
// re-running a partition duplicates its rows by design.
func (s *Store) InsertWorks(ctx context.Context, works []*types.Work) (int, error) {
	if len(works) == 0 {
		return 0, nil
	}
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	rows := make([][]any, len(works))
	for i, w := range works {
		rows[i] = []any{
			w.ID, w.Title, w.TitleTW, w.Content, w.ContentTW,
			w.AuthorName, w.AuthorNameTW, w.AuthorID, w.Category, w.Dynasty,
		}
	}
	query, args := buildBatchInsert("work", workColumns, rows)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning partition transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("inserting %d work rows: %w", len(works), err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing partition: %w", err)
	}
	return len(works), nil
}

// buildBatchInsert emits one parameterized multi-row INSERT statement with
// its bound values. Placeholder arithmetic lives here and nowhere else.
func buildBatchInsert(table string, columns []string, rows [][]any) (string, []any) {
	rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(") VALUES ")

	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(rowPlaceholder)
		args = append(args, row...)
	}
	return b.String(), args
}

// WorksByTitle returns all work rows with the given Simplified title, in
// insertion order.
func (s *Store) WorksByTitle(ctx context.Context, title string) ([]*types.Work, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, title, title_tw, content, content_tw, author_name, author_name_tw,
		        author_id, category, dynasty, is_top300, created_at, updated_at
		 FROM work WHERE title = ? ORDER BY rowid`, title)
	if err != nil {
		return nil, fmt.Errorf("querying works titled %q: %w", title, err)
	}
	defer rows.Close()

	var works []*types.Work
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning work row: %w", err)
		}
		works = append(works, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work rows: %w", err)
	}
	return works, nil
}

// scanWork hydrates one work row.
func scanWork(rows *sql.Rows) (*types.Work, error) {
	var (
		w                            types.Work
		titleTW, contentTW, authorTW sql.NullString
		authorID                     sql.NullString
		createdAt, updatedAt         string
	)
	if err := rows.Scan(&w.ID, &w.Title, &titleTW, &w.Content, &contentTW,
		&w.AuthorName, &authorTW, &authorID, &w.Category, &w.Dynasty,
		&w.IsTop300, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if titleTW.Valid {
		w.TitleTW = &titleTW.String
	}
	if contentTW.Valid {
		w.ContentTW = &contentTW.String
	}
	if authorTW.Valid {
		w.AuthorNameTW = &authorTW.String
	}
	if authorID.Valid {
		w.AuthorID = &authorID.String
	}
	w.CreatedAt = parseTimestamp(createdAt)
	w.UpdatedAt = parseTimestamp(updatedAt)
	return &w, nil
}
