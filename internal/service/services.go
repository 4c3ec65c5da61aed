package service

import (
	"github.com/ametelin/veriauth/internal/config"
	"github.com/ametelin/veriauth/internal/logger"
	"github.com/ametelin/veriauth/internal/store"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
}

func NewServices(storages *store.Storages, dispatcher MailDispatcher, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, dispatcher, cfg, logger),
		AccountService: NewAccountService(storages.UserRepository, logger),
	}
}
