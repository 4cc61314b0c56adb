package services

import (
	"context"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/commons"
	"github.com/mahfadha/wallet-gateway/src/internal/logger"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/service_interfaces"
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

// Verify that UserService implements the service_interfaces.UserService interface
var _ service_interfaces.UserService = (*UserService)(nil)

type UserService struct {
	backend backend.Client
}

func NewUserService(backendClient backend.Client) *UserService {
	return &UserService{backend: backendClient}
}

// Signup forwards an already-validated signup to the backend auth surface.
// Field validation happens in the controller so field-keyed errors reach the
// form without a backend round trip.
func (s *UserService) Signup(ctx context.Context, signup validation.Signup) (commons.Response[models.SignupResponse], error) {
	logger.Info("user service signup request", logger.Fields{
		"email": signup.Email,
	})

	if err := s.backend.SignUp(ctx, signup.Email, signup.Password, signup.Name, signup.Phone); err != nil {
		logger.Error("user service signup failed", err, logger.Fields{
			"email": signup.Email,
		})
		return commons.ErrorResponse[models.SignupResponse]("failed to sign up", "Unable to create the account right now"), err
	}

	logger.Info("user service signup success", logger.Fields{
		"email": signup.Email,
	})

	response := models.SignupResponse{
		Email: signup.Email,
		Phone: signup.Phone,
	}
	return commons.SuccessResponse("account created successfully", response), nil
}
