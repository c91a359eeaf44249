package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
)

type personService struct {
	BaseService
	personRepo portsrepo.PersonRepositoryFacade
}

// NewPersonService creates the person service.
func NewPersonService(personRepo portsrepo.PersonRepositoryFacade) portssvc.PersonSvcFacade {
	return &personService{BaseService: newBaseService(), personRepo: personRepo}
}

var _ portssvc.PersonSvcFacade = (*personService)(nil)

func (s *personService) ListPersons(ctx context.Context) ([]domain.Person, error) {
	persons, err := s.personRepo.FindPersons(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list persons")
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	if persons == nil {
		return []domain.Person{}, nil
	}
	return persons, nil
}

func (s *personService) GetPersonByID(ctx context.Context, personID int64) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find person", slog.Int64("person_id", personID))
		}
		return nil, err
	}
	return person, nil
}

func (s *personService) CreatePerson(ctx context.Context, req dto.PersonRequest) (*domain.Person, error) {
	person := req.ToDomain()
	saved, err := s.personRepo.SavePerson(ctx, person)
	if err != nil {
		s.LogError(ctx, err, "Failed to save person")
		return nil, err
	}
	s.LogInfo(ctx, "Person created", slog.Int64("person_id", saved.PersonID))
	return saved, nil
}

func (s *personService) UpdatePerson(ctx context.Context, personID int64, req dto.PersonRequest) (*domain.Person, error) {
	updated, err := s.personRepo.ReplacePerson(ctx, personID, req.ToDomain())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to replace person", slog.Int64("person_id", personID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Person superseded by new version",
		slog.Int64("person_id", personID),
		slog.Int64("new_person_id", updated.PersonID),
	)
	return updated, nil
}

func (s *personService) DeletePerson(ctx context.Context, personID int64) error {
	if err := s.personRepo.MarkPersonHidden(ctx, personID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to hide person", slog.Int64("person_id", personID))
		}
		return err
	}
	s.LogInfo(ctx, "Person hidden", slog.Int64("person_id", personID))
	return nil
}

func (s *personService) GetPersonStatistics(ctx context.Context) ([]domain.PersonStatistic, error) {
	stats, err := s.personRepo.GetPersonStatistics(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute person statistics")
		return nil, fmt.Errorf("failed to compute person statistics: %w", err)
	}
	if stats == nil {
		return []domain.PersonStatistic{}, nil
	}
	return stats, nil
}
