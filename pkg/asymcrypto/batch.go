package asymcrypto

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Item is one (scheme, public key, message, signature) tuple to verify.
type Item struct {
	Scheme    Scheme
	PublicKey []byte
	Message   []byte
	Signature []byte
}

// Result is the outcome for the item at Index. Err is set when the item could
// not be checked at all, e.g. because its public key does not decode.
type Result struct {
	Index int
	Valid bool
	Err   error
}

// BatchReport collects the per-item results in input order.
type BatchReport struct {
	Results []Result
	Valid   int64
	Invalid int64
}

// AllValid reports whether every item verified.
func (r *BatchReport) AllValid() bool {
	return r.Invalid == 0
}

// BatchVerify verifies items on a pool of workers (0 = one per CPU). It stops
// early and returns the context error if ctx is cancelled.
func (c *Client) BatchVerify(ctx context.Context, items []Item, workers int) (*BatchReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	workers = c.workerCount(workers)
	c.logger.Info("starting batch verification", "items", len(items), "workers", workers)

	report := &BatchReport{Results: make([]Result, len(items))}
	work := make(chan int, workers*4)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(work)
		for i := range items {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case work <- i:
			}
		}
		return nil
	})

	var valid, invalid int64
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case i, ok := <-work:
					if !ok {
						return nil
					}
					res := c.verifyItem(i, items[i])
					report.Results[i] = res
					if res.Valid {
						atomic.AddInt64(&valid, 1)
					} else {
						atomic.AddInt64(&invalid, 1)
					}
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Warn("batch verification interrupted", "error", err)
		return nil, err
	}

	report.Valid = atomic.LoadInt64(&valid)
	report.Invalid = atomic.LoadInt64(&invalid)
	c.logger.Info("batch verification finished", "valid", report.Valid, "invalid", report.Invalid)
	return report, nil
}

func (c *Client) verifyItem(i int, item Item) Result {
	scheme, err := ParseScheme(string(item.Scheme))
	if err != nil {
		return Result{Index: i, Err: err}
	}
	public, err := c.ParsePublicKey(item.PublicKey)
	if err != nil {
		return Result{Index: i, Err: err}
	}
	return Result{Index: i, Valid: c.Verify(scheme, public, item.Message, item.Signature)}
}
