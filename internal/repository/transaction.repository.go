package repository

import (
	"context"

	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/nimasrn/retail-normalizer/pkg/database"
)

const (
	defaultInsertBatchSize = 500
	deleteChunkSize        = 500
)

type TransactionRepository struct {
	*database.DB
}

func NewTransactionRepository(db *database.DB) *TransactionRepository {
	return &TransactionRepository{
		db,
	}
}

// CreateBatch inserts txns in load order and writes the assigned ids back.
func (r *TransactionRepository) CreateBatch(ctx context.Context, txns []*model.Transaction, batchSize int) error {
	if len(txns) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = defaultInsertBatchSize
	}

	entities := toTransactionEntities(txns)
	if err := r.Write(ctx).CreateInBatches(entities, batchSize).Error; err != nil {
		return err
	}

	for i, e := range entities {
		txns[i].ID = e.ID
	}
	return nil
}

// ListAll returns every stored line ordered by id.
func (r *TransactionRepository) ListAll(ctx context.Context) ([]*model.Transaction, error) {
	var entities []*TransactionEntity
	if err := r.Read(ctx).Order("id ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toTransactionModels(entities), nil
}

func (r *TransactionRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	var deleted int64
	for start := 0; start < len(ids); start += deleteChunkSize {
		end := min(start+deleteChunkSize, len(ids))
		res := r.Write(ctx).Where("id IN ?", ids[start:end]).Delete(&TransactionEntity{})
		if res.Error != nil {
			return deleted, res.Error
		}
		deleted += res.RowsAffected
	}
	return deleted, nil
}

// UpdateDerived stores the derived columns of an enriched line.
func (r *TransactionRepository) UpdateDerived(ctx context.Context, txn *model.Transaction) error {
	if !txn.Enriched() {
		return ErrNotEnriched
	}
	res := r.Write(ctx).Model(&TransactionEntity{}).
		Where("id = ?", txn.ID).
		Updates(map[string]any{
			"shipping_duration_days": *txn.ShippingDurationDays,
			"customer_tier":          string(*txn.CustomerTier),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.Read(ctx).Model(&TransactionEntity{}).Count(&n).Error
	return n, err
}

// CountDuplicateGroups counts (order_id, product_id) pairs stored more than once.
func (r *TransactionRepository) CountDuplicateGroups(ctx context.Context) (int64, error) {
	db := r.Read(ctx)
	groups := db.Model(&TransactionEntity{}).
		Select("order_id, product_id").
		Group("order_id, product_id").
		Having("COUNT(*) > 1")

	var n int64
	err := db.Table("(?) AS dup", groups).Count(&n).Error
	return n, err
}

// Truncate removes every stored line.
func (r *TransactionRepository) Truncate(ctx context.Context) error {
	return r.Write(ctx).Where("1 = 1").Delete(&TransactionEntity{}).Error
}
