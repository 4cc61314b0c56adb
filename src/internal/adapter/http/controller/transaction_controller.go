package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/commons"
)

// TransactionController serves the pre-submit validation endpoints: the client
// checks a payload before building the real operation request, and gets back
// the normalized values it should display.
type TransactionController struct{}

func NewTransactionController() *TransactionController {
	return &TransactionController{}
}

func (c *TransactionController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/transactions/validate", c.validateTransaction).Methods(http.MethodPost)
	r.HandleFunc("/investments/validate", c.validateInvestment).Methods(http.MethodPost)
}

func (c *TransactionController) validateTransaction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.TransactionValidationResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	normalized, err := req.Normalized()
	if err != nil {
		response := commons.ErrorResponse[models.TransactionValidationResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response := commons.SuccessResponse("transaction is valid", normalized)
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *TransactionController) validateInvestment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.InvestmentValidationResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	normalized, err := req.Normalized()
	if err != nil {
		response := commons.ErrorResponse[models.InvestmentValidationResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response := commons.SuccessResponse("investment is valid", normalized)
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
