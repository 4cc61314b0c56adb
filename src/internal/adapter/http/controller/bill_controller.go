package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/commons"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/service_interfaces"
)

type BillController struct {
	service service_interfaces.BillService
}

func NewBillController(service service_interfaces.BillService) *BillController {
	return &BillController{service: service}
}

func (c *BillController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/bills/types", c.listTypes).Methods(http.MethodGet)
	r.HandleFunc("/bills/pay", c.payBill).Methods(http.MethodPost)
}

func (c *BillController) listTypes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListBillTypes(r.Context())
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *BillController) payBill(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.PayBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.PayBillResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.PayBill(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
