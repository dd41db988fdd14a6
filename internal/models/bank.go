package models

import (
	"gorm.io/gorm"
)

// BankRecord is one row of the bank directory: a national bank code with the
// BIC and institution name it resolves to.
type BankRecord struct {
	gorm.Model
	BankCode string `gorm:"uniqueIndex;not null"` // Unique index on BankCode
	BIC      string `gorm:"index;not null"`
	BankName string `gorm:"not null"`
	Country  string `gorm:"size:2;not null;default:'DE'"`
}

// BankRecordInput is the payload accepted when seeding or upserting
// directory entries over the admin API.
type BankRecordInput struct {
	BankCode string `json:"bank_code"`
	BIC      string `json:"bic"`
	BankName string `json:"bank_name"`
	Country  string `json:"country"`
}

// BankRecordResponse is the directory entry as returned to clients.
type BankRecordResponse struct {
	BankCode string `json:"bank_code"`
	BIC      string `json:"bic"`
	BankName string `json:"bank_name"`
	Country  string `json:"country"`
}

// ToResponse converts a stored record into its API representation.
func (b *BankRecord) ToResponse() BankRecordResponse {
	return BankRecordResponse{
		BankCode: b.BankCode,
		BIC:      b.BIC,
		BankName: b.BankName,
		Country:  b.Country,
	}
}
