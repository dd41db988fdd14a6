package repositories

import (
	"context"
	"fmt"

	"veriban/internal/models"
	"veriban/internal/services/bank"

	"gorm.io/gorm"
)

// BankDirectoryStore is the Postgres-backed bank.DirectoryStore. The seed
// tool fills it from the same CSV the file-backed store reads.
type BankDirectoryStore struct {
	db *gorm.DB
}

func NewBankDirectoryStore(db *gorm.DB) *BankDirectoryStore {
	return &BankDirectoryStore{db: db}
}

func (s *BankDirectoryStore) BankByCode(ctx context.Context, bankCode string) (*bank.Record, error) {
	var row models.BankRecord
	if err := s.db.WithContext(ctx).Where("bank_code = ?", bankCode).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, bank.ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank record: %w", err)
	}
	return toDirectoryRecord(&row), nil
}

func (s *BankDirectoryStore) BankByBIC(ctx context.Context, bic string) (*bank.Record, error) {
	var row models.BankRecord
	if err := s.db.WithContext(ctx).Where("bic = ?", bic).Order("bank_code").First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, bank.ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank record: %w", err)
	}
	return toDirectoryRecord(&row), nil
}

func (s *BankDirectoryStore) List(ctx context.Context, limit, offset int) ([]bank.Record, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.BankRecord{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bank records: %w", err)
	}

	var rows []models.BankRecord
	err := s.db.WithContext(ctx).
		Order("bank_code").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bank records: %w", err)
	}

	records := make([]bank.Record, 0, len(rows))
	for i := range rows {
		records = append(records, *toDirectoryRecord(&rows[i]))
	}
	return records, total, nil
}

// ReplaceAll swaps the whole directory table inside one transaction. Rows
// are hard-deleted: a soft-deleted bank code would collide with its
// re-inserted replacement on the unique index.
func (s *BankDirectoryStore) ReplaceAll(ctx context.Context, records []bank.Record) error {
	rows := make([]models.BankRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, models.BankRecord{
			BankCode: rec.BankCode,
			BIC:      rec.BIC,
			BankName: rec.BankName,
			Country:  rec.Country,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()
		if err := del.Delete(&models.BankRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear bank directory: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return fmt.Errorf("failed to insert bank directory: %w", err)
		}
		return nil
	})
}

func (s *BankDirectoryStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.BankRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count bank records: %w", err)
	}
	return n, nil
}

func toDirectoryRecord(row *models.BankRecord) *bank.Record {
	return &bank.Record{
		BankCode: row.BankCode,
		BIC:      row.BIC,
		BankName: row.BankName,
		Country:  row.Country,
	}
}
