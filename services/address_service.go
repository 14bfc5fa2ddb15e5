package services

import (
	"context"
	"errors"

	"storefront/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AddressService appends shipping addresses to the user profile. The list
// is append-only; there is no update or delete.
type AddressService struct {
	userRepo IUserRepository
	logger   *zap.Logger
}

func NewAddressService(ur IUserRepository, logger *zap.Logger) *AddressService {
	return &AddressService{userRepo: ur, logger: logger}
}

func (s *AddressService) AddAddress(ctx context.Context, email string, address models.Address) *ServiceError {
	err := s.userRepo.AppendAddress(ctx, email, address)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errNotFound("User not found")
	}
	if err != nil {
		s.logger.Error("Failed to append address", zap.Error(err), zap.String("email", email))
		return errInternal("Internal Server Error")
	}
	return nil
}

func (s *AddressService) ListAddresses(ctx context.Context, email string) ([]models.Address, *ServiceError) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errNotFound("User not found")
	}
	return user.Addresses, nil
}
