package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/utils"
	"github.com/google/uuid"
)

const (
	defaultLockoutMaxFailedAttempts = 5
	defaultLockoutDuration          = 5 * time.Minute
)

type userService struct {
	BaseService
	userRepo        portsrepo.UserRepositoryFacade
	maxFailedLogins int
	lockoutDuration time.Duration
}

// UserServiceOption configures the user service.
type UserServiceOption func(*userService)

// WithLockoutPolicy sets how many consecutive failed logins lock an account and for how long.
func WithLockoutPolicy(maxFailedAttempts int, duration time.Duration) UserServiceOption {
	return func(s *userService) {
		if maxFailedAttempts > 0 {
			s.maxFailedLogins = maxFailedAttempts
		}
		if duration > 0 {
			s.lockoutDuration = duration
		}
	}
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, opts ...UserServiceOption) portssvc.UserSvcFacade {
	s := &userService{
		BaseService:     newBaseService(),
		userRepo:        userRepo,
		maxFailedLogins: defaultLockoutMaxFailedAttempts,
		lockoutDuration: defaultLockoutDuration,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userService) CreateLocalUser(ctx context.Context, firstName, lastName, email, password string, roles []domain.Role) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Email:         domain.NormalizeEmail(email),
		FirstName:     firstName,
		LastName:      lastName,
		PasswordHash:  &hash,
		AuthProvider:  domain.ProviderLocal,
		Roles:         roles,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user")
		}
		return nil, err
	}
	s.LogInfo(ctx, "User created", slog.String("new_user_id", user.UserID))
	return &user, nil
}

// EnsureAdmin keeps the configured administrator account in sync:
// it is created when missing, granted the Admin role and given the configured password.
func (s *userService) EnsureAdmin(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return s.CreateLocalUser(ctx, "Admin", "Administrator", email, password, []domain.Role{domain.RoleAdmin, domain.RoleClient})
	}
	if err != nil {
		return nil, err
	}

	if !user.HasRole(domain.RoleAdmin) {
		user.Roles = append(user.Roles, domain.RoleAdmin)
		if err := s.userRepo.UpdateUserRoles(ctx, user.UserID, user.Roles); err != nil {
			return nil, fmt.Errorf("failed to grant admin role: %w", err)
		}
		s.LogInfo(ctx, "Admin role granted", slog.String("admin_user_id", user.UserID))
	}

	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		hash, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.userRepo.UpdatePasswordHash(ctx, user.UserID, hash); err != nil {
			return nil, fmt.Errorf("failed to update admin password: %w", err)
		}
		user.PasswordHash = &hash
	}
	return user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	invalid := apperrors.NewUnauthorizedError("Invalid email or password")

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalid
		}
		s.LogError(ctx, err, "Failed to load user for login")
		return nil, err
	}

	now := s.Now()
	if user.IsLockedOut(now) {
		s.GetLogger(ctx).Warn("Login attempt on locked account", slog.String("login_user_id", user.UserID))
		return nil, fmt.Errorf("%w until %s", apperrors.ErrLockedOut, user.LockoutEnd.UTC().Format(time.RFC3339))
	}

	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		lockoutEnd, err := s.userRepo.RecordFailedLogin(ctx, user.UserID, s.maxFailedLogins, now.Add(s.lockoutDuration))
		if err != nil {
			s.LogError(ctx, err, "Failed to record failed login", slog.String("login_user_id", user.UserID))
			return nil, err
		}
		if lockoutEnd != nil && lockoutEnd.After(now) {
			s.GetLogger(ctx).Warn("Account locked after repeated failed logins", slog.String("login_user_id", user.UserID))
			return nil, fmt.Errorf("%w until %s", apperrors.ErrLockedOut, lockoutEnd.UTC().Format(time.RFC3339))
		}
		return nil, invalid
	}

	if user.AccessFailedCount != 0 || user.LockoutEnd != nil {
		if err := s.userRepo.UpdateLoginState(ctx, user.UserID, 0, nil); err != nil {
			s.LogError(ctx, err, "Failed to reset login state", slog.String("login_user_id", user.UserID))
			return nil, err
		}
		user.AccessFailedCount = 0
		user.LockoutEnd = nil
	}
	return user, nil
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, string(domain.ProviderGoogle), identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, identity.Email); err == nil {
		return nil, apperrors.NewAppError(http.StatusConflict, "An account with this email already exists. Sign in with your password.", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := s.Now()
	subject := identity.Subject
	user = &domain.User{
		UserID:         uuid.NewString(),
		Email:          domain.NormalizeEmail(identity.Email),
		FirstName:      identity.GivenName,
		LastName:       identity.FamilyName,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &subject,
		Roles:          []domain.Role{domain.RoleClient},
		CreatedAt:      now,
		LastUpdatedAt:  now,
	}
	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to save google user")
		return nil, err
	}
	s.LogInfo(ctx, "Google user created", slog.String("new_user_id", user.UserID))
	return user, nil
}
