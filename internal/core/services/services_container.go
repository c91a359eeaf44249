package services

import (
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Person = NewPersonService(repos.PersonRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.PersonRepo)
	container.User = NewUserService(repos.UserRepo,
		WithLockoutPolicy(cfg.LockoutMaxFailedAttempts, cfg.LockoutDuration),
	)
	container.TokenService = NewTokenService(cfg, repos.RevokedTokenRepo)

	if cfg.GoogleEnabled() {
		container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	}
	container.Auth = NewAuthService(container.User, container.TokenService, container.GoogleOAuthHandler)

	return container
}
