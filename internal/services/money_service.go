package services

import (
	"errors"
	"time"

	"github.com/pixperk/pocketmind-server/internal/models"

	"gorm.io/gorm"
)

// Transaction listing filters: whether the caller is the creditor, the
// debtor, or either side of the ledger.
const (
	TransactionTypeLent  = "lent"
	TransactionTypeDebts = "debts"
	TransactionTypeAll   = "all"
)

type MoneyService struct {
	db *gorm.DB
}

func NewMoneyService(db *gorm.DB) *MoneyService {
	return &MoneyService{db: db}
}

// LendMoney records a pending debt with the caller as creditor. The debtor
// must exist and must not be the caller.
func (s *MoneyService) LendMoney(creditorID string, req *models.LendMoneyRequest) (*models.Debt, error) {
	var debtor models.User
	if err := s.db.First(&debtor, "id = ?", req.DebtorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDebtorNotFound
		}
		return nil, err
	}

	if req.DebtorID == creditorID {
		return nil, ErrSelfLoan
	}

	debt := models.Debt{
		Amount:        req.Amount,
		Currency:      req.Currency,
		Description:   req.Description,
		DateOfLending: time.Now(),
		DueDate:       req.DueDate,
		Status:        models.DebtStatusPending,
		CreditorID:    creditorID,
		DebtorID:      req.DebtorID,
	}

	if err := s.db.Create(&debt).Error; err != nil {
		return nil, err
	}

	return &debt, nil
}

// ClearDebt marks a debt completed via a single conditional update scoped to
// the creditor. Zero rows affected conflates "no such debt" and "caller is
// not the creditor" so existence never leaks.
func (s *MoneyService) ClearDebt(debtID, creditorID string) (*models.Debt, error) {
	result := s.db.Model(&models.Debt{}).
		Where("id = ? AND creditor_id = ?", debtID, creditorID).
		Update("status", models.DebtStatusCompleted)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var debt models.Debt
	if err := s.db.First(&debt, "id = ?", debtID).Error; err != nil {
		return nil, err
	}
	return &debt, nil
}

// GetTransactions lists the caller's debts. isCompleted narrows by status
// when non-nil; txType narrows to the lent or owed side, or returns the
// union for "all".
func (s *MoneyService) GetTransactions(userID string, isCompleted *bool, txType string) ([]models.Debt, error) {
	query := s.db.Model(&models.Debt{})

	switch txType {
	case TransactionTypeLent:
		query = query.Where("creditor_id = ?", userID)
	case TransactionTypeDebts:
		query = query.Where("debtor_id = ?", userID)
	case TransactionTypeAll, "":
		query = query.Where("creditor_id = ? OR debtor_id = ?", userID, userID)
	}

	if isCompleted != nil {
		status := models.DebtStatusPending
		if *isCompleted {
			status = models.DebtStatusCompleted
		}
		query = query.Where("status = ?", status)
	}

	var debts []models.Debt
	if err := query.Preload("Creditor").Preload("Debtor").
		Order("date_of_lending DESC").
		Find(&debts).Error; err != nil {
		return nil, err
	}
	return debts, nil
}
