package store

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/digua-cn/shici/pkg/types"
)

// MarkWorkTitles flags every work row whose Simplified title appears in the
// canonical set. Updates run as batched concurrent point updates: width
// statements in flight at once, and the batch settles before the next one
// starts. Marking is monotonic; the flag is only ever set, never cleared,
// so re-running (including with an empty set) is safe.
func (s *Store) MarkWorkTitles(ctx context.Context, titles []string, width int) (int, error) {
	return s.markBatched(ctx, "UPDATE work SET is_top300 = 1 WHERE title = ? AND is_top300 = 0", titles, width)
}

// MarkAuthorNames flags every author row whose canonical name appears in
// the canonical set. Same batching and monotonicity as MarkWorkTitles.
func (s *Store) MarkAuthorNames(ctx context.Context, names []string, width int) (int, error) {
	return s.markBatched(ctx, "UPDATE author SET is_top300 = 1 WHERE name = ? AND is_top300 = 0", names, width)
}

// markBatched issues one point update per value, width at a time. The
// bounded fan-out exists for throughput only; each statement is independent
// and the pass stops at the first error once the in-flight batch settles.
func (s *Store) markBatched(ctx context.Context, query string, values []string, width int) (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	if width <= 0 {
		width = types.DefaultMarkBatch
	}

	var marked atomic.Int64
	for start := 0; start < len(values); start += width {
		end := start + width
		if end > len(values) {
			end = len(values)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, v := range values[start:end] {
			v := v
			g.Go(func() error {
				res, err := db.ExecContext(gctx, query, v)
				if err != nil {
					return fmt.Errorf("marking %q: %w", v, err)
				}
				n, err := res.RowsAffected()
				if err != nil {
					return fmt.Errorf("counting marks for %q: %w", v, err)
				}
				marked.Add(n)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return int(marked.Load()), err
		}
	}
	return int(marked.Load()), nil
}
