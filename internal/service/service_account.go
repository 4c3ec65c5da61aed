package service

import (
	"context"
	"fmt"

	"github.com/ametelin/veriauth/internal/logger"
	"github.com/ametelin/veriauth/internal/store"
	"github.com/ametelin/veriauth/models"
)

// accountService implements AccountService. The administrative accessors are
// deliberately thin: they operate on the store as given and carry no
// invariants of their own.
type accountService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAccountService constructs an AccountService over the given repository.
func NewAccountService(userRepository store.UserRepository, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every stored account.
func (s *accountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// DeleteUser removes a single account unconditionally; verification state
// does not gate deletion.
func (s *accountService) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Debug().Err(err).Str("id", id).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// DeleteAllUsers removes every account and reports how many were removed.
func (s *accountService) DeleteAllUsers(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.userRepository.DeleteAllUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("deleting all users failed: %w", err)
	}

	log.Info().Int64("deleted", deleted).Msg("all users deleted")

	return deleted, nil
}
