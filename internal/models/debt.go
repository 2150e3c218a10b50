package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DebtStatusPending   = "pending"
	DebtStatusCompleted = "completed"

	CurrencyUSD = "USD"
	CurrencyINR = "INR"
)

// Debt is a bookkeeping record of money owed by the debtor to the creditor.
// The only lifecycle transition is pending -> completed, performed by the
// creditor; completed is terminal.
type Debt struct {
	ID            string     `json:"id" gorm:"primaryKey;size:36"`
	Amount        float64    `json:"amount" gorm:"not null"`
	Currency      string     `json:"currency" gorm:"size:3;not null"`
	Description   string     `json:"description" gorm:"size:255"`
	DateOfLending time.Time  `json:"date_of_lending" gorm:"not null"`
	DueDate       *time.Time `json:"due_date"`
	Status        string     `json:"status" gorm:"size:10;not null;default:pending;index"`
	CreditorID    string     `json:"creditor_id" gorm:"size:36;not null;index"`
	DebtorID      string     `json:"debtor_id" gorm:"size:36;not null;index"`

	Creditor User `json:"creditor,omitempty" gorm:"foreignKey:CreditorID"`
	Debtor   User `json:"debtor,omitempty" gorm:"foreignKey:DebtorID"`
}

func (d *Debt) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

type LendMoneyRequest struct {
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	Currency    string     `json:"currency" validate:"required,oneof=USD INR"`
	Description string     `json:"description" validate:"omitempty,max=255"`
	DueDate     *time.Time `json:"dueDate"`
	DebtorID    string     `json:"debtorId" validate:"required,uuid"`
}
