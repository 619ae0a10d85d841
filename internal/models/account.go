package models

import "time"

// Ledger entry categories.
const (
	CategoryRevenue        = "Revenue"
	CategoryExpenses       = "Expenses"
	CategoryAssets         = "Assets"
	CategoryLiabilities    = "Liabilities"
	CategoryCapital        = "Capital"
	CategoryInvestments    = "Investments"
	CategoryOperational    = "Operational"
	CategoryAdministrative = "Administrative"
)

// LedgerEntry is a single ledger record. Amounts are stored in paise
// (1/100 rupee) as integers to avoid float error, e.g. 12.34 = 1234.
type LedgerEntry struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     uint      `gorm:"index;not null" json:"-"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	ItemName    string    `gorm:"size:128;not null" json:"itemName"`
	Category    string    `gorm:"size:32;index;not null" json:"category"`
	PaymentType string    `gorm:"size:32;not null" json:"paymentType"`
	CreditPaise int64     `gorm:"not null" json:"-"`
	DebitPaise  int64     `gorm:"not null" json:"-"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Stamp assigns identity and ownership before the entry is persisted.
func (e *LedgerEntry) Stamp(id string, owner uint) {
	e.ID = id
	e.OwnerID = owner
}
