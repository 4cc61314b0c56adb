package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/commons"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/service_interfaces"
)

type VerificationController struct {
	service service_interfaces.VerificationService
}

func NewVerificationController(service service_interfaces.VerificationService) *VerificationController {
	return &VerificationController{service: service}
}

// RegisterRoutes mounts the user-facing verification endpoints.
func (c *VerificationController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/verifications", c.submit).Methods(http.MethodPost)
	r.HandleFunc("/verifications/otp/send", c.sendOTP).Methods(http.MethodPost)
	r.HandleFunc("/verifications/otp/verify", c.confirmOTP).Methods(http.MethodPost)
}

// RegisterAdminRoutes mounts the review endpoints, kept on a separate router
// behind the admin key.
func (c *VerificationController) RegisterAdminRoutes(r *mux.Router) {
	r.HandleFunc("/verifications/pending", c.pending).Methods(http.MethodGet)
	r.HandleFunc("/verifications/approve", c.approve).Methods(http.MethodPost)
	r.HandleFunc("/verifications/reject", c.reject).Methods(http.MethodPost)
	r.HandleFunc("/verifications/stats", c.stats).Methods(http.MethodGet)
	r.HandleFunc("/verifications/dashboard", c.dashboard).Methods(http.MethodGet)
}

func (c *VerificationController) submit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.SubmitVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.VerificationResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.Submit(r.Context(), req)
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

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *VerificationController) sendOTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.SignupResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.SendOTP(r.Context(), req)
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

func (c *VerificationController) confirmOTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.SignupResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.ConfirmOTP(r.Context(), req)
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

func (c *VerificationController) pending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	response, err := c.service.Pending(r.Context(), limit, offset)
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

func (c *VerificationController) approve(w http.ResponseWriter, r *http.Request) {
	c.review(w, r, c.service.Approve)
}

func (c *VerificationController) reject(w http.ResponseWriter, r *http.Request) {
	c.review(w, r, c.service.Reject)
}

// review shares the decode/respond plumbing between approve and reject.
func (c *VerificationController) review(
	w http.ResponseWriter,
	r *http.Request,
	decide func(ctx context.Context, req models.ReviewVerificationRequest) (commons.Response[models.VerificationResponse], error),
) {
	start := time.Now()

	var req models.ReviewVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.VerificationResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := decide(r.Context(), req)
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

func (c *VerificationController) stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.Stats(r.Context())
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

func (c *VerificationController) dashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.Dashboard(r.Context())
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
