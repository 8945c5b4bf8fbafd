// Package pipeline drives the corpus ingestion runs: author loading, the
// per-partition work loads, and the anthology marking pass. It owns the
// phase ordering and the rollback-and-continue policy; reading and writing
// are delegated to the corpus and store packages.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/digua-cn/shici/internal/corpus"
	"github.com/digua-cn/shici/internal/normalize"
	"github.com/digua-cn/shici/pkg/types"
)

// Marker is the store's anthology-flag surface.
type Marker interface {
	MarkWorkTitles(ctx context.Context, titles []string, width int) (int, error)
	MarkAuthorNames(ctx context.Context, names []string, width int) (int, error)
}

// LookupFactory builds an author lookup joining on the given key. Each work
// run gets one lookup so its cache spans every partition of the run.
type LookupFactory func(key types.JoinKey) types.AuthorLookup

// Orchestrator runs the ingestion phases against a corpus directory and a
// record sink.
type Orchestrator struct {
	source  *corpus.Source
	sink    types.RecordSink
	lookups LookupFactory
	marker  Marker
	log     *logrus.Entry
}

// New creates an Orchestrator. A nil log falls back to the standard logger.
func New(source *corpus.Source, sink types.RecordSink, lookups LookupFactory, marker Marker, log *logrus.Entry) *Orchestrator {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Orchestrator{
		source:  source,
		sink:    sink,
		lookups: lookups,
		marker:  marker,
		log:     log,
	}
}

// LoadAuthors ingests every author biography file. Traditional-script
// sources upsert with update-on-conflict; the Simplified lyric-author file
// inserts with ignore-on-conflict so richer existing rows survive.
// Returns the number of records written across all files.
func (o *Orchestrator) LoadAuthors(ctx context.Context) (int, error) {
	total := 0
	for _, src := range types.AuthorSources {
		raws, err := o.source.LoadAuthors(src)
		if err != nil {
			return total, err
		}

		authors := make([]*types.Author, 0, len(raws))
		skipped := 0
		for _, raw := range raws {
			a, err := normalize.Author(raw, src)
			if errors.Is(err, types.ErrMalformedRecord) {
				skipped++
				o.log.WithField("file", src.File).WithError(err).Warn("skipping author record")
				continue
			}
			if err != nil {
				return total, fmt.Errorf("normalizing author from %s: %w", src.File, err)
			}
			authors = append(authors, a)
		}

		mode := types.ConflictUpdate
		if src.Simplified {
			mode = types.ConflictIgnore
		}
		n, err := o.sink.UpsertAuthors(ctx, authors, mode)
		if err != nil {
			return total + n, fmt.Errorf("loading authors from %s: %w", src.File, err)
		}
		total += n

		o.log.WithFields(logrus.Fields{
			"file":    src.File,
			"loaded":  n,
			"skipped": skipped,
		}).Info("author file loaded")
	}
	return total, nil
}

// LoadWorks ingests every partition of one corpus, in numeric offset order.
// Malformed records are dropped with a warning; a partition whose
// transaction fails is rolled back, logged, and tallied, and the run
// continues with the next partition. The returned report covers every
// discovered partition. The error is non-nil only when the run itself could
// not proceed, e.g. no partitions were found.
func (o *Orchestrator) LoadWorks(ctx context.Context, c types.Corpus) (*types.RunReport, error) {
	parts, err := o.source.Partitions(c)
	if err != nil {
		return nil, err
	}
	lookup := o.lookups(c.JoinKey)

	report := &types.RunReport{Corpus: c.Name}
	for _, part := range parts {
		pr := o.loadPartition(ctx, part, lookup)
		report.Partitions = append(report.Partitions, pr)

		entry := o.log.WithFields(logrus.Fields{
			"corpus":     c.Name,
			"partition":  pr.Partition,
			"loaded":     pr.Loaded,
			"skipped":    pr.Skipped,
			"unresolved": pr.Unresolved,
		})
		if pr.Failed() {
			entry.WithError(pr.Err).Error("partition rolled back")
			continue
		}
		entry.Info("partition loaded")
	}

	o.log.WithFields(logrus.Fields{
		"corpus":     c.Name,
		"partitions": len(report.Partitions),
		"failed":     report.Failed(),
		"loaded":     report.Loaded(),
		"skipped":    report.Skipped(),
		"unresolved": report.Unresolved(),
	}).Info("corpus load finished")
	return report, nil
}

// loadPartition reads, normalizes, resolves, and commits one partition.
func (o *Orchestrator) loadPartition(ctx context.Context, part corpus.Partition, lookup types.AuthorLookup) types.PartitionReport {
	pr := types.PartitionReport{Partition: part.Name(), Index: part.Index}

	works, skipped, err := o.normalizePartition(part)
	if err != nil {
		pr.Err = err
		return pr
	}
	pr.Skipped = skipped

	for _, w := range works {
		id, ok, err := lookup.Resolve(ctx, joinName(w, part.Corpus))
		if err != nil {
			pr.Err = err
			return pr
		}
		if !ok {
			pr.Unresolved++
			continue
		}
		w.AuthorID = &id
	}

	n, err := o.sink.InsertWorks(ctx, works)
	if err != nil {
		pr.Err = err
		return pr
	}
	pr.Loaded = n
	return pr
}

// normalizePartition loads one partition file and normalizes its records,
// dropping malformed ones with a warning.
func (o *Orchestrator) normalizePartition(part corpus.Partition) ([]*types.Work, int, error) {
	var (
		works   []*types.Work
		skipped int
	)

	normalizeOne := func(w *types.Work, err error) error {
		if errors.Is(err, types.ErrMalformedRecord) {
			skipped++
			o.log.WithField("partition", part.Name()).WithError(err).Warn("skipping record")
			return nil
		}
		if err != nil {
			return err
		}
		works = append(works, w)
		return nil
	}

	if part.Corpus.Lyric {
		raws, err := o.source.LoadLyrics(part)
		if err != nil {
			return nil, 0, err
		}
		for _, raw := range raws {
			if err := normalizeOne(normalize.Lyric(raw, part.Corpus)); err != nil {
				return nil, skipped, err
			}
		}
		return works, skipped, nil
	}

	raws, err := o.source.LoadPoems(part)
	if err != nil {
		return nil, 0, err
	}
	for _, raw := range raws {
		if err := normalizeOne(normalize.Poem(raw, part.Corpus)); err != nil {
			return nil, skipped, err
		}
	}
	return works, skipped, nil
}

// joinName picks the work's author string matching the corpus join key.
func joinName(w *types.Work, c types.Corpus) string {
	if c.JoinKey == types.JoinVariantName {
		if w.AuthorNameTW == nil {
			return ""
		}
		return *w.AuthorNameTW
	}
	return w.AuthorName
}

// MarkTop300 flags the anthology works and authors. Marking only ever sets
// the flag, so the pass is safe to repeat.
func (o *Orchestrator) MarkTop300(ctx context.Context, titles, names []string, width int) (worksMarked, authorsMarked int, err error) {
	worksMarked, err = o.marker.MarkWorkTitles(ctx, titles, width)
	if err != nil {
		return worksMarked, 0, fmt.Errorf("marking anthology works: %w", err)
	}
	authorsMarked, err = o.marker.MarkAuthorNames(ctx, names, width)
	if err != nil {
		return worksMarked, authorsMarked, fmt.Errorf("marking anthology authors: %w", err)
	}

	o.log.WithFields(logrus.Fields{
		"works":   worksMarked,
		"authors": authorsMarked,
	}).Info("anthology marking finished")
	return worksMarked, authorsMarked, nil
}
