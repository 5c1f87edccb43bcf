package service

import (
	"context"

	"github.com/rjbiz/jams/common"
	"github.com/rjbiz/jams/models"
	"gorm.io/gorm"
)

// Ledger 成本流水，只追加
type Ledger interface {
	Append(ctx context.Context, entry *models.CostEntry) error
	List(ctx context.Context, filter LedgerFilter, params common.PaginationParams) ([]models.CostEntry, int64, error)
}

type LedgerFilter struct {
	Day      string
	Provider string
}

type gormLedger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) Ledger {
	return &gormLedger{db: db}
}

func (l *gormLedger) Append(ctx context.Context, entry *models.CostEntry) error {
	return gorm.G[models.CostEntry](l.db).Create(ctx, entry)
}

func (l *gormLedger) List(ctx context.Context, filter LedgerFilter, params common.PaginationParams) ([]models.CostEntry, int64, error) {
	query := l.db.WithContext(ctx).Model(&models.CostEntry{})
	if filter.Day != "" {
		query = query.Where("day = ?", filter.Day)
	}
	if filter.Provider != "" {
		query = query.Where("provider = ?", filter.Provider)
	}

	entries := make([]models.CostEntry, 0)
	total, err := common.PaginateQuery(query.Order("id DESC"), params, &entries)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
