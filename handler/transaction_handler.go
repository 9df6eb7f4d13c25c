package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/andrew-chang-dewitt/hoops/common"
	"github.com/andrew-chang-dewitt/hoops/model"
	"github.com/andrew-chang-dewitt/hoops/service"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	service *service.TransactionService
}

func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CreateTransaction godoc
// @Summary      Record a transaction
// @Description  Persists a new monetary event. The timestamp defaults to now when omitted.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transaction body model.CreateTransactionRequest true "Transaction to record"
// @Success      201  {object}  model.Transaction
// @Failure      400  {object}  common.AppError "Invalid request body"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      500  {object}  common.AppError "Internal server error while recording transaction"
// @Router       /transaction [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateTransactionRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	if _, appErr := currentUserID(r); appErr != nil {
		return appErr
	}

	transaction, err := h.service.RecordTransaction(req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not record transaction", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
	return nil
}

// ListTransactions godoc
// @Summary      List transactions
// @Description  Returns transactions ordered ascending by timestamp. An absent limit returns every record.
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of records to return"
// @Success      200  {array}   model.Transaction
// @Failure      400  {object}  common.AppError "Invalid limit query parameter"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      500  {object}  common.AppError "Internal server error while listing transactions"
// @Router       /transaction [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, appErr := currentUserID(r); appErr != nil {
		return appErr
	}

	var limit *int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return common.NewAppError(http.StatusBadRequest, "Invalid limit query parameter", err)
		}
		limit = &parsed
	}

	transactions, err := h.service.ListTransactions(limit)
	if err != nil {
		switch err {
		case service.ErrInvalidLimit:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(transactions)
	return nil
}
