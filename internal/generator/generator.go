// =============================================================================
// Receipt Generator - Allocation Core
// =============================================================================
//
// This module implements the receipt allocation algorithm: a two-phase
// random sampling process with an accumulation stopping condition and a
// redistribution step.
//
// ALGORITHM:
//   Phase 1 - Demand generation:
//     Draw items uniformly at random (with replacement) from the catalog,
//     accumulating their prices, until the running total meets or exceeds
//     the target amount. Every price is positive, so the total strictly
//     increases each draw and the loop always terminates.
//   Phase 2 - Distribution:
//     Assign each purchase event independently and uniformly at random to
//     one of the receipts. A receipt may receive zero, one or many events.
//   Phase 3 - Collapse:
//     Group each receipt's events by item name, in insertion order of first
//     occurrence, into (item, quantity, unit price) line items.
//
// DETERMINISM:
//   The allocator owns a single sequential random stream. For a fixed seed
//   and identical inputs the output is identical. The stream is consumed
//   in a fixed order (all phase 1 draws, then all phase 2 draws), so both
//   phases replay exactly. The source is injectable for tests.
//
// CONCURRENCY:
//   A single Run is synchronous and single-threaded. The allocator must not
//   be shared across concurrent runs: the random stream is the only mutable
//   state and it requires sequential use.
//
// =============================================================================

package generator

import (
	"math/rand"
	"time"

	"github.com/ginjaninja78/receipt-generator/internal/catalog"
	"github.com/ginjaninja78/receipt-generator/internal/types"
)

// =============================================================================
// RANDOM SOURCE
// =============================================================================

// Source is the random stream consumed by the allocator.
// *rand.Rand satisfies it; tests may supply a scripted implementation.
type Source interface {
	// Intn returns a uniformly distributed integer in [0, n).
	Intn(n int) int
}

// =============================================================================
// ALLOCATOR
// =============================================================================

// Allocator generates synthetic receipts from a catalog.
// It holds a read-only reference to the catalog and a sequential random
// stream; it keeps no other state between Generate calls.
type Allocator struct {
	catalog *catalog.Catalog
	source  Source
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithSeed seeds the allocator's random stream for reproducible output.
func WithSeed(seed int64) Option {
	return func(a *Allocator) {
		a.source = rand.New(rand.NewSource(seed))
	}
}

// WithSource replaces the random stream entirely.
func WithSource(src Source) Option {
	return func(a *Allocator) {
		a.source = src
	}
}

// New creates an Allocator over the given catalog.
// It fails with InvalidCatalogError if the catalog is empty. Without a seed
// option the stream is time-seeded and runs are not reproducible.
func New(cat *catalog.Catalog, opts ...Option) (*Allocator, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, NewInvalidCatalogError()
	}

	a := &Allocator{
		catalog: cat,
		source:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// =============================================================================
// RESULT TYPE
// =============================================================================

// Result is the outcome of one generation run.
type Result struct {
	// Receipts holds exactly the requested number of receipts, in slot
	// order. Receipts that received no purchase events have an empty
	// line-item list.
	Receipts []types.Receipt

	// RealizedTotal is the cumulative price reached by demand generation.
	// Always >= the requested target, overshooting by less than the
	// highest catalog price.
	RealizedTotal int64

	// EventCount is the number of purchase events generated in phase 1.
	EventCount int
}

// QuantityByItem aggregates total quantity per item across all receipts,
// in catalog order with zero-quantity items omitted. This is the series
// behind the report's bar chart.
func (r Result) QuantityByItem(cat *catalog.Catalog) []types.LineItem {
	counts := make(map[string]int)
	for _, receipt := range r.Receipts {
		for _, li := range receipt.LineItems {
			counts[li.Item] += li.Quantity
		}
	}

	out := make([]types.LineItem, 0, len(counts))
	for _, item := range cat.Items() {
		if qty := counts[item.Name]; qty > 0 {
			out = append(out, types.LineItem{
				Item:      item.Name,
				Quantity:  qty,
				UnitPrice: item.Price,
			})
		}
	}
	return out
}

// =============================================================================
// GENERATION
// =============================================================================

// Generate runs the allocation algorithm and returns the generated
// receipts together with the realized total.
//
// Preconditions are checked before any draw is made:
//   - targetAmount must be positive (InvalidTargetError)
//   - receiptCount must be positive (InvalidReceiptCountError)
//
// No partial results are returned on failure.
func (a *Allocator) Generate(targetAmount int64, receiptCount int) (Result, error) {
	if targetAmount <= 0 {
		return Result{}, NewInvalidTargetError(targetAmount)
	}
	if receiptCount <= 0 {
		return Result{}, NewInvalidReceiptCountError(receiptCount)
	}
	if a.catalog.Len() == 0 {
		return Result{}, NewInvalidCatalogError()
	}

	events, realized := a.generateDemand(targetAmount)
	buckets := a.distribute(events, receiptCount)
	receipts := collapse(buckets)

	return Result{
		Receipts:      receipts,
		RealizedTotal: realized,
		EventCount:    len(events),
	}, nil
}

// generateDemand performs phase 1: uniform draws with replacement until the
// running total reaches the target.
func (a *Allocator) generateDemand(targetAmount int64) ([]types.PurchaseEvent, int64) {
	var (
		events []types.PurchaseEvent
		total  int64
	)

	n := a.catalog.Len()
	for total < targetAmount {
		item := a.catalog.At(a.source.Intn(n))
		events = append(events, types.PurchaseEvent{
			Item:  item.Name,
			Price: item.Price,
		})
		total += item.Price
	}

	return events, total
}

// distribute performs phase 2: each event is assigned independently and
// uniformly at random to one of receiptCount buckets. Assignment is per
// event, not per item, so heavily skewed receipt sizes are possible and
// expected for large event counts.
func (a *Allocator) distribute(events []types.PurchaseEvent, receiptCount int) [][]types.PurchaseEvent {
	buckets := make([][]types.PurchaseEvent, receiptCount)
	for _, event := range events {
		slot := a.source.Intn(receiptCount)
		buckets[slot] = append(buckets[slot], event)
	}
	return buckets
}

// collapse performs phase 3: group each bucket's events by item name,
// counting occurrences. Line items appear in insertion order of first
// occurrence, which is deterministic for a fixed random stream.
func collapse(buckets [][]types.PurchaseEvent) []types.Receipt {
	receipts := make([]types.Receipt, len(buckets))
	for i, bucket := range buckets {
		receipts[i] = types.Receipt{
			ID:        i + 1,
			LineItems: collapseBucket(bucket),
		}
	}
	return receipts
}

// collapseBucket aggregates one receipt's events into line items.
func collapseBucket(bucket []types.PurchaseEvent) []types.LineItem {
	lineItems := make([]types.LineItem, 0, len(bucket))
	index := make(map[string]int, len(bucket))

	for _, event := range bucket {
		if pos, seen := index[event.Item]; seen {
			lineItems[pos].Quantity++
			continue
		}
		index[event.Item] = len(lineItems)
		lineItems = append(lineItems, types.LineItem{
			Item:      event.Item,
			Quantity:  1,
			UnitPrice: event.Price,
		})
	}

	return lineItems
}
