package housecall

import (
	"context"
	"log"
	"sync"

	"backend/internal/models"
)

// FindCustomers searches every supplied field independently and merges the
// results into one deduplicated list.
//
// One upstream search is issued per populated field (and per populated
// address line), all concurrently. A query that fails is logged and treated
// as an empty result so one bad term cannot poison the whole lookup. The
// merged list keeps upstream ordering within each query and first-query-wins
// ordering across queries; a customer returned by several queries appears
// once, as the record from the earliest query that found it.
func (c *Client) FindCustomers(ctx context.Context, fields models.SearchFields) ([]models.Customer, error) {
	queries := fields.Queries()
	if len(queries) == 0 {
		return []models.Customer{}, nil
	}

	// Indexed by query position so the merge below sees submission order
	// regardless of which request settles first.
	results := make([][]models.Customer, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()

			customers, err := c.SearchCustomers(ctx, query)
			if err != nil {
				log.Printf("[SEARCH] [WARN] query %q failed: %v", query, err)
				return
			}
			results[i] = customers
		}(i, query)
	}
	wg.Wait()

	seen := make(map[string]bool)
	merged := make([]models.Customer, 0)

	for _, customers := range results {
		for _, customer := range customers {
			if seen[customer.ID] {
				continue
			}
			seen[customer.ID] = true
			merged = append(merged, customer)
		}
	}

	return merged, nil
}
