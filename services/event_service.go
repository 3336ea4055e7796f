package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/copaamateur/copa-backend/models"
	"github.com/copaamateur/copa-backend/repositories"
	"github.com/copaamateur/copa-backend/storage"
	"golang.org/x/sync/errgroup"
)

type CreateEventInput struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	Location    *string   `json:"location"`
}

type EventService interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error)
	GetEventByID(ctx context.Context, id int) (*models.Event, error)
	GetEventDetail(ctx context.Context, id int) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, id int, input CreateEventInput) (*models.Event, error)
	UploadPoster(ctx context.Context, id int, contentType string, file io.Reader) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int) error
}

type eventService struct {
	eventRepo     repositories.EventRepository
	eventTeamRepo repositories.EventTeamRepository
	matchRepo     repositories.MatchRepository
	uploader      storage.FileUploader
}

func NewEventService(
	eventRepo repositories.EventRepository,
	eventTeamRepo repositories.EventTeamRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
) EventService {
	return &eventService{
		eventRepo:     eventRepo,
		eventTeamRepo: eventTeamRepo,
		matchRepo:     matchRepo,
		uploader:      uploader,
	}
}

func (s *eventService) fillPosterURL(event *models.Event) {
	if event.PosterKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*event.PosterKey)
		event.PosterURL = &url
	}
}

func (s *eventService) CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrEventTitleRequired
	}

	event := &models.Event{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id int) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event %d: %w", id, err)
	}
	s.fillPosterURL(event)
	return event, nil
}

// GetEventDetail загружает событие вместе с командами и матчами;
// связанные выборки выполняются параллельно.
func (s *eventService) GetEventDetail(ctx context.Context, id int) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		eventTeams, err := s.eventTeamRepo.ListByEvent(gCtx, nil, id)
		if err != nil {
			return fmt.Errorf("failed to list teams for event %d: %w", id, err)
		}
		event.Teams = make([]models.EventTeam, 0, len(eventTeams))
		for _, et := range eventTeams {
			event.Teams = append(event.Teams, *et)
		}
		return nil
	})

	g.Go(func() error {
		matches, err := s.matchRepo.ListByEvent(gCtx, nil, id, repositories.MatchFilter{})
		if err != nil {
			return fmt.Errorf("failed to list matches for event %d: %w", id, err)
		}
		event.Matches = make([]models.Match, 0, len(matches))
		for _, m := range matches {
			event.Matches = append(event.Matches, *m)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	for _, e := range events {
		s.fillPosterURL(e)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id int, input CreateEventInput) (*models.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrEventTitleRequired
	}

	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Title = strings.TrimSpace(input.Title)
	event.Description = input.Description
	event.Date = input.Date
	event.Location = input.Location

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event %d: %w", id, err)
	}
	return event, nil
}

func (s *eventService) UploadPoster(ctx context.Context, id int, contentType string, file io.Reader) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("events/%d/poster", id)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload poster for event %d: %w", id, err)
	}

	if err := s.eventRepo.UpdatePosterKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save poster key for event %d: %w", id, err)
	}
	event.PosterKey = &result.Key
	event.PosterURL = &result.Location
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int) error {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}

	if event.PosterKey != nil && s.uploader != nil {
		_ = s.uploader.Delete(ctx, *event.PosterKey)
	}
	return nil
}
