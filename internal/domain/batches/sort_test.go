package batches

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshstock/internal/core/id"
)

func lot(number string, quantity int, due time.Time) *BatchStock {
	return NewBatchStock(number, id.New(), id.New(), quantity, time.Time{}, due)
}

func TestParseSortKey(t *testing.T) {
	key, ok, err := ParseSortKey("V")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, SortByDueDate, key)

	_, ok, err = ParseSortKey("")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = ParseSortKey("X")
	assert.Error(t, err)
}

func TestSortBatches(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	list := []*BatchStock{
		lot("LOT-C", 30, base.Add(72*time.Hour)),
		lot("LOT-A", 10, base.Add(24*time.Hour)),
		lot("LOT-B", 20, base),
	}

	SortBatches(list, SortByBatchNumber)
	assert.Equal(t, "LOT-A", list[0].BatchNumber)
	assert.Equal(t, "LOT-C", list[2].BatchNumber)

	SortBatches(list, SortByQuantity)
	assert.Equal(t, 10, list[0].Quantity)
	assert.Equal(t, 30, list[2].Quantity)

	SortBatches(list, SortByDueDate)
	assert.Equal(t, "LOT-B", list[0].BatchNumber)
	assert.Equal(t, "LOT-C", list[2].BatchNumber)
}

func TestSortBatches_StableOnEqualKeys(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	first := lot("LOT-1", 5, due)
	second := lot("LOT-2", 5, due)
	list := []*BatchStock{first, second}

	SortBatches(list, SortByQuantity)
	assert.Same(t, first, list[0])
	assert.Same(t, second, list[1])
}

func TestSortBatches_UnknownKeyLeavesOrder(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	list := []*BatchStock{
		lot("LOT-B", 2, base),
		lot("LOT-A", 1, base),
	}

	SortBatches(list, SortKey("bogus"))
	assert.Equal(t, "LOT-B", list[0].BatchNumber)
}
