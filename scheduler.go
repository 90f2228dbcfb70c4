package mandel

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// runPool renders every tile on a fixed pool of worker slots and commits the
// results into fb.
//
// Each slot is a persistent goroutine fed by its own 1-buffered tile channel.
// Workers render into a private buffer, commit it, then signal the shared
// completion channel with their slot id. The coordinator seeds the first wave
// in partition order, then reassigns: every received signal bumps the
// completed counter, reports progress, and either dispatches the next tile to
// the now-idle slot or closes its channel to retire it. Dispatch order after
// the first wave follows completion order, which is nondeterministic; the
// image is unaffected because tile regions are disjoint and each tile carries
// its own RNG seed.
//
// A slot has at most one unacknowledged completion, so a done channel
// buffered to the slot count means workers never block on the signal send.
// Any worker error (a failed commit) cancels the group context and aborts the
// whole render; tiles are never retried.
func runPool(ctx context.Context, workers int, tiles []Tile, fb *Framebuffer, progress ProgressFunc) error {
	if progress == nil {
		progress = NopProgress
	}
	total := len(tiles)
	if total == 0 {
		return nil
	}
	if workers > total {
		workers = total
	}

	done := make(chan int, workers)
	slots := make([]chan Tile, workers)
	for i := range slots {
		slots[i] = make(chan Tile, 1)
	}

	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < workers; i++ {
		id := i
		in := slots[i]
		g.Go(func() error {
			for {
				select {
				case t, ok := <-in:
					if !ok {
						return nil // retired
					}
					if err := ctx.Err(); err != nil {
						return err // render already aborted, don't start the tile
					}
					var rng *rand.Rand
					if !t.NoJitter {
						rng = rand.New(rand.NewSource(t.Seed))
					}
					if err := fb.Commit(t, RenderTile(t, rng)); err != nil {
						return err
					}
					done <- id
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		})
	}

	g.Go(func() error {
		next := 0
		for ; next < workers; next++ {
			slots[next] <- tiles[next]
		}

		for completed := 0; completed < total; {
			select {
			case id := <-done:
				completed++
				progress(100 * float64(completed) / float64(total))
				if next < total {
					slots[id] <- tiles[next]
					next++
				} else {
					close(slots[id])
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	return g.Wait()
}
