package normalize

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id int64, orderID, productID string) *model.Transaction {
	return &model.Transaction{ID: id, OrderID: orderID, ProductID: productID}
}

func ids(txns []*model.Transaction) []int64 {
	out := make([]int64, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}

func TestDeduplicate(t *testing.T) {
	t.Run("keeps the earliest loaded duplicate", func(t *testing.T) {
		res, err := Deduplicate([]*model.Transaction{
			line(1, "CA-1", "P1"),
			line(2, "CA-1", "P1"),
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, ids(res.Kept))
		assert.Equal(t, []int64{2}, res.RemovedIDs())
	})

	t.Run("minimum id wins regardless of input order", func(t *testing.T) {
		res, err := Deduplicate([]*model.Transaction{
			line(9, "CA-1", "P1"),
			line(4, "CA-1", "P1"),
			line(7, "CA-1", "P1"),
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{4}, ids(res.Kept))
		assert.ElementsMatch(t, []int64{9, 7}, res.RemovedIDs())
	})

	t.Run("same order with different products is not a duplicate", func(t *testing.T) {
		res, err := Deduplicate([]*model.Transaction{
			line(1, "CA-1", "P1"),
			line(2, "CA-1", "P2"),
			line(3, "CA-2", "P1"),
		})
		require.NoError(t, err)
		assert.Len(t, res.Kept, 3)
		assert.Empty(t, res.Removed)
	})

	t.Run("duplicate free input passes through unchanged", func(t *testing.T) {
		in := []*model.Transaction{
			line(3, "US-3", "P9"),
			line(1, "US-1", "P1"),
			line(2, "US-2", "P1"),
		}
		res, err := Deduplicate(in)
		require.NoError(t, err)
		assert.ElementsMatch(t, in, res.Kept)
		assert.Empty(t, res.RemovedIDs())
	})

	t.Run("empty input", func(t *testing.T) {
		res, err := Deduplicate(nil)
		require.NoError(t, err)
		assert.Empty(t, res.Kept)
		assert.Empty(t, res.Removed)
	})

	t.Run("non unique id aborts", func(t *testing.T) {
		res, err := Deduplicate([]*model.Transaction{
			line(1, "CA-1", "P1"),
			line(1, "CA-2", "P2"),
		})
		assert.ErrorIs(t, err, ErrPreconditionViolation)
		assert.Nil(t, res)
	})
}

func TestDeduplicate_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := rnd.Intn(200)
		perm := rnd.Perm(n)
		records := make([]*model.Transaction, n)
		minID := map[model.LineKey]int64{}
		for i := 0; i < n; i++ {
			rec := line(int64(perm[i]+1), fmt.Sprintf("O-%d", rnd.Intn(20)), fmt.Sprintf("P-%d", rnd.Intn(5)))
			records[i] = rec
			if cur, ok := minID[rec.Key()]; !ok || rec.ID < cur {
				minID[rec.Key()] = rec.ID
			}
		}

		res, err := Deduplicate(records)
		require.NoError(t, err)

		seen := map[model.LineKey]bool{}
		for _, k := range res.Kept {
			assert.False(t, seen[k.Key()], "key %v kept twice", k.Key())
			seen[k.Key()] = true
			assert.Equal(t, minID[k.Key()], k.ID)
		}
		assert.Len(t, res.Kept, len(minID))
		assert.Equal(t, n, len(res.Kept)+len(res.Removed))
	}
}
