package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/copaamateur/copa-backend/models"
	"github.com/copaamateur/copa-backend/repositories"
)

type CreateParticipantInput struct {
	TeamID    *int       `json:"team_id"`
	Name      string     `json:"name"`
	Position  *string    `json:"position"`
	Number    *int       `json:"number"`
	BirthDate *time.Time `json:"birth_date"`
}

type ParticipantService interface {
	CreateParticipant(ctx context.Context, input CreateParticipantInput) (*models.Participant, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.Participant, error)
	UpdateParticipant(ctx context.Context, id int, input CreateParticipantInput) (*models.Participant, error)
	DeleteParticipant(ctx context.Context, id int) error
}

type participantService struct {
	participantRepo repositories.ParticipantRepository
}

func NewParticipantService(participantRepo repositories.ParticipantRepository) ParticipantService {
	return &participantService{participantRepo: participantRepo}
}

func (s *participantService) CreateParticipant(ctx context.Context, input CreateParticipantInput) (*models.Participant, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: participant name is required", ErrValidationFailed)
	}

	p := &models.Participant{
		TeamID:    input.TeamID,
		Name:      strings.TrimSpace(input.Name),
		Position:  input.Position,
		Number:    input.Number,
		BirthDate: input.BirthDate,
	}
	if err := s.participantRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repositories.ErrParticipantTeamInvalid) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}
	return p, nil
}

func (s *participantService) ListByTeam(ctx context.Context, teamID int) ([]*models.Participant, error) {
	participants, err := s.participantRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for team %d: %w", teamID, err)
	}
	return participants, nil
}

func (s *participantService) UpdateParticipant(ctx context.Context, id int, input CreateParticipantInput) (*models.Participant, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: participant name is required", ErrValidationFailed)
	}

	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to load participant %d: %w", id, err)
	}
	p.TeamID = input.TeamID
	p.Name = strings.TrimSpace(input.Name)
	p.Position = input.Position
	p.Number = input.Number
	p.BirthDate = input.BirthDate

	if err := s.participantRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repositories.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to update participant %d: %w", id, err)
	}
	return p, nil
}

func (s *participantService) DeleteParticipant(ctx context.Context, id int) error {
	if err := s.participantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrParticipantNotFound) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("failed to delete participant %d: %w", id, err)
	}
	return nil
}
