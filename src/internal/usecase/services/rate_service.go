package services

import (
	"context"
	"time"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/commons"
	"github.com/mahfadha/wallet-gateway/src/internal/logger"
	"github.com/mahfadha/wallet-gateway/src/internal/rates"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/service_interfaces"
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

// Verify that RateService implements the service_interfaces.RateService interface
var _ service_interfaces.RateService = (*RateService)(nil)

type RateService struct{}

func NewRateService() *RateService {
	return &RateService{}
}

func (s *RateService) Convert(_ context.Context, req models.ConvertRequest) (commons.Response[models.ConversionResponse], error) {
	logger.Info("rate service convert request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("rate service convert validation failed", err, nil)
		return commons.ErrorResponse[models.ConversionResponse]("validation failed", err.Error()), err
	}

	amount, _ := validation.Amount(req.Amount)
	conversion, verr := rates.Convert(amount, req.FromCurrency, req.ToCurrency)
	if verr != nil {
		logger.Error("rate service convert failed", verr, logger.Fields{
			"fromCurrency": req.FromCurrency,
			"toCurrency":   req.ToCurrency,
		})
		return commons.ErrorResponse[models.ConversionResponse](verr.Message), verr
	}

	response := models.ConversionResponse{
		FromAmount:   conversion.FromAmount.StringFixed(2),
		ToAmount:     conversion.ToAmount.StringFixed(2),
		FromCurrency: conversion.FromCurrency,
		ToCurrency:   conversion.ToCurrency,
		Rate:         conversion.Rate.String(),
		Timestamp:    conversion.Timestamp.Format(time.RFC3339),
	}

	logger.Info("rate service convert success", logger.Fields{
		"fromCurrency": response.FromCurrency,
		"toCurrency":   response.ToCurrency,
		"toAmount":     response.ToAmount,
	})

	return commons.SuccessResponse("conversion completed successfully", response), nil
}

func (s *RateService) Pairs(_ context.Context) (commons.Response[[]models.RatePairResponse], error) {
	pairs := rates.Pairs()
	out := make([]models.RatePairResponse, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, models.RatePairResponse{
			FromCurrency: pair.FromCurrency,
			ToCurrency:   pair.ToCurrency,
			Rate:         pair.Rate.String(),
		})
	}
	return commons.SuccessResponse("rates fetched successfully", out), nil
}
