package normalize

import (
	"fmt"

	"github.com/nimasrn/retail-normalizer/internal/model"
)

// Dedup is the outcome of grouping a batch by (order id, product id).
type Dedup struct {
	Kept    []*model.Transaction
	Removed []*model.Transaction
}

func (d *Dedup) RemovedIDs() []int64 {
	ids := make([]int64, len(d.Removed))
	for i, t := range d.Removed {
		ids[i] = t.ID
	}
	return ids
}

// Deduplicate keeps, for every (order id, product id) pair, the record with the
// smallest id and reports every other member of the group as removed.
// Kept records appear in the order their group was first seen.
func Deduplicate(records []*model.Transaction) (*Dedup, error) {
	seenIDs := make(map[int64]struct{}, len(records))
	groups := make(map[model.LineKey]int, len(records))
	out := &Dedup{Kept: make([]*model.Transaction, 0, len(records))}

	for _, rec := range records {
		if rec == nil {
			continue
		}
		if _, ok := seenIDs[rec.ID]; ok {
			return nil, fmt.Errorf("%w: id %d appears more than once", ErrPreconditionViolation, rec.ID)
		}
		seenIDs[rec.ID] = struct{}{}

		key := rec.Key()
		idx, ok := groups[key]
		if !ok {
			groups[key] = len(out.Kept)
			out.Kept = append(out.Kept, rec)
			continue
		}

		current := out.Kept[idx]
		if rec.ID < current.ID {
			out.Kept[idx] = rec
			out.Removed = append(out.Removed, current)
			continue
		}
		out.Removed = append(out.Removed, rec)
	}

	return out, nil
}
