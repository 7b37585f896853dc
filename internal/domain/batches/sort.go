package batches

import (
	"sort"

	"freshstock/internal/core/apperror"
)

// SortKey selects the ordering for batch listings.
// The one-letter wire codes match what the batch listing endpoint accepts.
type SortKey string

const (
	// SortByBatchNumber orders by supplier lot number ("L")
	SortByBatchNumber SortKey = "L"
	// SortByQuantity orders by remaining quantity ("Q")
	SortByQuantity SortKey = "Q"
	// SortByDueDate orders by expiry, soonest first ("V")
	SortByDueDate SortKey = "V"
)

// comparators maps each sort key to its less-than function.
var comparators = map[SortKey]func(a, b *BatchStock) bool{
	SortByBatchNumber: func(a, b *BatchStock) bool { return a.BatchNumber < b.BatchNumber },
	SortByQuantity:    func(a, b *BatchStock) bool { return a.Quantity < b.Quantity },
	SortByDueDate:     func(a, b *BatchStock) bool { return a.DueDate.Before(b.DueDate) },
}

// ParseSortKey validates a wire code. Empty input defaults to no sorting,
// signalled by returning ok=false with a nil error.
func ParseSortKey(s string) (SortKey, bool, error) {
	if s == "" {
		return "", false, nil
	}
	key := SortKey(s)
	if _, known := comparators[key]; !known {
		return "", false, apperror.NewValidation("unknown sort key").
			WithDetail("value", s).
			WithDetail("accepted", []string{string(SortByBatchNumber), string(SortByQuantity), string(SortByDueDate)})
	}
	return key, true, nil
}

// SortBatches orders the slice in place by the given key. Stable so that
// repeated listings with equal keys keep a deterministic order.
func SortBatches(list []*BatchStock, key SortKey) {
	less, known := comparators[key]
	if !known {
		return
	}
	sort.SliceStable(list, func(i, j int) bool {
		return less(list[i], list[j])
	})
}
