package billing

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/types"
)

// DefaultFetchWidth bounds how many payment-history fetches run at once.
const DefaultFetchWidth = 5

// RunDeps carries the collaborators for one pipeline run.
type RunDeps struct {
	// FetchPayments loads the payment history for one jamaah, oldest-first.
	FetchPayments func(ctx context.Context, id uuid.UUID) ([]PaymentRecord, error)
	// Lookup resolves a jamaah from the roster snapshot taken for this run.
	Lookup func(id uuid.UUID) (*types.Jamaah, bool)
	// Resident short-circuits FetchPayments for ids whose history is already
	// in hand, e.g. the single-document preview path.
	Resident map[uuid.UUID][]PaymentRecord
	// OnProgress fires after every chunk settles, ceil(total/width) times.
	OnProgress func(completed, total int)

	Sender   string
	Receiver string
}

// Pipeline turns a selection of jamaah ids into billing documents under a
// bounded fetch width. One failing item never aborts the batch.
type Pipeline struct {
	width int
	log   *logger.Logger
}

func NewPipeline(width int, baseLog *logger.Logger) *Pipeline {
	if width < 1 {
		width = DefaultFetchWidth
	}
	p := &Pipeline{width: width}
	if baseLog != nil {
		p.log = baseLog.With("component", "BillingPipeline")
	}
	return p
}

// Run processes ids in consecutive chunks of the configured width. Fetches
// within a chunk run concurrently; chunk k+1 never starts before chunk k has
// fully settled, and results keep the input order no matter which fetch
// returns first. Cancellation is honored at chunk boundaries: the partial
// BatchJob is returned together with the context error, and fetches already
// in flight finish first.
func (p *Pipeline) Run(ctx context.Context, ids []uuid.UUID, deps RunDeps) (*BatchJob, error) {
	job := &BatchJob{
		RequestedIDs: ids,
		Total:        len(ids),
		Results:      []*BillingDocument{},
		Failures:     make(map[uuid.UUID]error),
	}
	if len(ids) == 0 {
		return job, nil
	}
	if deps.Lookup == nil {
		return job, fmt.Errorf("billing pipeline: lookup is required")
	}

	// Keyed by input position so completion order cannot reorder results.
	docs := make([]*BillingDocument, len(ids))
	var mu sync.Mutex

	for start := 0; start < len(ids); start += p.width {
		if err := ctx.Err(); err != nil {
			p.compact(job, docs)
			return job, err
		}

		end := start + p.width
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		g, chunkCtx := errgroup.WithContext(ctx)
		for i, id := range chunk {
			pos := start + i
			id := id
			g.Go(func() error {
				doc, err := p.buildOne(chunkCtx, id, deps)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					job.Failures[id] = err
					return nil
				}
				docs[pos] = doc
				return nil
			})
		}
		_ = g.Wait()

		job.Completed = end
		if deps.OnProgress != nil {
			deps.OnProgress(job.Completed, job.Total)
		}
		if p.log != nil {
			p.log.Debug("Chunk settled", "completed", job.Completed, "total", job.Total)
		}
	}

	p.compact(job, docs)
	return job, nil
}

func (p *Pipeline) buildOne(ctx context.Context, id uuid.UUID, deps RunDeps) (*BillingDocument, error) {
	j, ok := deps.Lookup(id)
	if !ok || j == nil {
		return nil, fmt.Errorf("jamaah %s not found in roster", id)
	}

	payments, resident := deps.Resident[id]
	if !resident {
		if deps.FetchPayments == nil {
			return nil, fmt.Errorf("no payment source for jamaah %s", id)
		}
		var err error
		payments, err = deps.FetchPayments(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetch payments: %w", err)
		}
	}

	return Compose(j, payments, deps.Sender, deps.Receiver), nil
}

// compact drops failed slots while preserving input order.
func (p *Pipeline) compact(job *BatchJob, docs []*BillingDocument) {
	for _, d := range docs {
		if d != nil {
			job.Results = append(job.Results, d)
		}
	}
}
