package index

import (
	"context"
	"log"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// Batch is one streamed slice of index results. Total is the full hit count
// for the query, known from the first batch on, so the consumer can size
// its incremental delivery up front.
type Batch struct {
	Results []candidate.EverythingResult
	Total   uint64
}

// defaultBatchSize is how many results one streamed batch carries.
const defaultBatchSize = 100

// SearchStream answers a query as a sequence of batches on the returned
// channel. The channel is closed when all results have been delivered, the
// context is cancelled, or the query fails; a consumer that sees the channel
// close simply stops listening. A slow index never stalls the aggregation
// core: "no batch yet" is indistinguishable from an empty partial result.
func (i *Indexer) SearchStream(ctx context.Context, searchText string, batchSize int) <-chan Batch {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	out := make(chan Batch, 1)
	go func() {
		defer close(out)

		offset := 0
		for {
			if ctx.Err() != nil {
				return
			}

			res, err := i.search(searchText, batchSize, offset)
			if err != nil {
				log.Printf("Warning: index stream failed: %v", err)
				return
			}

			batch := Batch{Results: convertHits(res), Total: res.Total}
			select {
			case out <- batch:
			case <-ctx.Done():
				return
			}

			offset += len(batch.Results)
			if len(batch.Results) == 0 || uint64(offset) >= res.Total {
				return
			}
		}
	}()
	return out
}
