package handlers

import (
	"errors"
	"net/http"

	"github.com/pixperk/pocketmind-server/internal/middleware"
	"github.com/pixperk/pocketmind-server/internal/models"
	"github.com/pixperk/pocketmind-server/internal/services"
	"github.com/pixperk/pocketmind-server/internal/utils"
	"github.com/pixperk/pocketmind-server/pkg/validator"

	"github.com/gin-gonic/gin"
)

type MoneyHandler struct {
	moneyService *services.MoneyService
}

func NewMoneyHandler(moneyService *services.MoneyService) *MoneyHandler {
	return &MoneyHandler{moneyService: moneyService}
}

func (h *MoneyHandler) LendMoney(c *gin.Context) {
	creditorID := middleware.UserID(c)

	var req models.LendMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, validator.FormatErrors(err))
		return
	}

	debt, err := h.moneyService.LendMoney(creditorID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "money lent successfully", debt)
}

func (h *MoneyHandler) ClearDebt(c *gin.Context) {
	creditorID := middleware.UserID(c)

	debtID := c.Param("debtId")
	if debtID == "" {
		utils.Error(c, http.StatusBadRequest, "debt id is required")
		return
	}

	debt, err := h.moneyService.ClearDebt(debtID, creditorID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFound(c, "debt not found or you are not the creditor")
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "debt marked as cleared", debt)
}

func (h *MoneyHandler) GetTransactions(c *gin.Context) {
	userID := middleware.UserID(c)

	// Query booleans are only the literal strings "true" and "false";
	// anything else is rejected.
	var isCompleted *bool
	switch c.Query("isCompleted") {
	case "":
	case "true":
		v := true
		isCompleted = &v
	case "false":
		v := false
		isCompleted = &v
	default:
		utils.Error(c, http.StatusBadRequest, "isCompleted must be a boolean")
		return
	}

	txType := c.Query("type")
	switch txType {
	case "", services.TransactionTypeLent, services.TransactionTypeDebts, services.TransactionTypeAll:
	default:
		utils.Error(c, http.StatusBadRequest, "type must be one of: lent, debts, all")
		return
	}

	debts, err := h.moneyService.GetTransactions(userID, isCompleted, txType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, debts)
}
