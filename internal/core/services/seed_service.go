package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
)

// SeedService prepares bootstrap data at startup.
type SeedService struct {
	BaseService
	cfg         *config.Config
	userService portssvc.UserSvcFacade
	personRepo  portsrepo.PersonRepositoryFacade
}

// NewSeedService creates a SeedService.
func NewSeedService(cfg *config.Config, userService portssvc.UserSvcFacade, personRepo portsrepo.PersonRepositoryFacade) *SeedService {
	return &SeedService{BaseService: newBaseService(), cfg: cfg, userService: userService, personRepo: personRepo}
}

// Seed ensures the configured administrator and, when enabled, sample persons.
func (s *SeedService) Seed(ctx context.Context) error {
	if s.cfg.AdminEmail != "" && s.cfg.AdminPassword != "" {
		admin, err := s.userService.EnsureAdmin(ctx, s.cfg.AdminEmail, s.cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		s.LogInfo(ctx, "Admin user ensured", slog.String("admin_user_id", admin.UserID))
	}

	if !s.cfg.SeedSampleData {
		return nil
	}
	count, err := s.personRepo.CountPersons(ctx)
	if err != nil {
		return fmt.Errorf("failed to count persons: %w", err)
	}
	if count > 0 {
		s.LogDebug(ctx, "Persons present, skipping sample data", slog.Int64("count", count))
		return nil
	}
	for _, p := range samplePersons() {
		saved, err := s.personRepo.SavePerson(ctx, p)
		if err != nil {
			return fmt.Errorf("failed to seed person %q: %w", p.Name, err)
		}
		s.LogInfo(ctx, "Sample person seeded", slog.Int64("person_id", saved.PersonID))
	}
	return nil
}

func samplePersons() []domain.Person {
	return []domain.Person{
		{
			Name:                 "Stavby Novák s.r.o.",
			IdentificationNumber: "25596641",
			TaxNumber:            "CZ25596641",
			AccountNumber:        "1234567890",
			BankCode:             "0800",
			IBAN:                 "CZ6508000000001234567890",
			Telephone:            "+420777123456",
			Mail:                 "info@stavby-novak.cz",
			Street:               "Na Příkopě 12",
			Zip:                  "11000",
			City:                 "Praha",
			Country:              domain.CountryCzechia,
		},
		{
			Name:                 "Tatra Soft a.s.",
			IdentificationNumber: "35757442",
			TaxNumber:            "SK2020273893",
			AccountNumber:        "2900123456",
			BankCode:             "1100",
			IBAN:                 "SK3111000000002900123456",
			Telephone:            "+421905123456",
			Mail:                 "office@tatrasoft.sk",
			Street:               "Mlynské nivy 5",
			Zip:                  "82109",
			City:                 "Bratislava",
			Country:              domain.CountrySlovakia,
			Note:                 "Sample data",
		},
	}
}
