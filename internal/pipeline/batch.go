package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ProcessBatch processes docs concurrently, at most Workers at a time.
// Results are index-aligned with docs. A failing document only sets its own
// Result.Err; the returned error is non-nil only when ctx is done, in which
// case unstarted documents carry the context error.
func (p *Pipeline) ProcessBatch(ctx context.Context, docs []Document) ([]Result, error) {
	results := make([]Result, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i := range docs {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(docs); j++ {
				results[j] = Result{DocumentID: docs[j].ID, Err: err}
			}
			break
		}
		i := i
		g.Go(func() error {
			res, _ := p.Process(gctx, docs[i])
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
