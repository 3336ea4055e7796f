package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/copaamateur/copa-backend/models"
	"github.com/copaamateur/copa-backend/repositories"
	"github.com/copaamateur/copa-backend/storage"
)

type CreateSponsorInput struct {
	Name    string  `json:"name"`
	Website *string `json:"website"`
	Tier    *string `json:"tier"`
}

type SponsorService interface {
	CreateSponsor(ctx context.Context, input CreateSponsorInput) (*models.Sponsor, error)
	ListSponsors(ctx context.Context) ([]*models.Sponsor, error)
	UpdateSponsor(ctx context.Context, id int, input CreateSponsorInput) (*models.Sponsor, error)
	UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Sponsor, error)
	DeleteSponsor(ctx context.Context, id int) error
}

type sponsorService struct {
	sponsorRepo repositories.SponsorRepository
	uploader    storage.FileUploader
}

func NewSponsorService(sponsorRepo repositories.SponsorRepository, uploader storage.FileUploader) SponsorService {
	return &sponsorService{sponsorRepo: sponsorRepo, uploader: uploader}
}

func (s *sponsorService) fillLogoURL(sponsor *models.Sponsor) {
	if sponsor.LogoKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*sponsor.LogoKey)
		sponsor.LogoURL = &url
	}
}

func (s *sponsorService) CreateSponsor(ctx context.Context, input CreateSponsorInput) (*models.Sponsor, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrSponsorNameRequired
	}

	sponsor := &models.Sponsor{
		Name:    strings.TrimSpace(input.Name),
		Website: input.Website,
		Tier:    input.Tier,
	}
	if err := s.sponsorRepo.Create(ctx, sponsor); err != nil {
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}
	return sponsor, nil
}

func (s *sponsorService) ListSponsors(ctx context.Context) ([]*models.Sponsor, error) {
	sponsors, err := s.sponsorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	for _, sp := range sponsors {
		s.fillLogoURL(sp)
	}
	return sponsors, nil
}

func (s *sponsorService) UpdateSponsor(ctx context.Context, id int, input CreateSponsorInput) (*models.Sponsor, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrSponsorNameRequired
	}

	sponsor, err := s.sponsorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to load sponsor %d: %w", id, err)
	}
	sponsor.Name = strings.TrimSpace(input.Name)
	sponsor.Website = input.Website
	sponsor.Tier = input.Tier

	if err := s.sponsorRepo.Update(ctx, sponsor); err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to update sponsor %d: %w", id, err)
	}
	s.fillLogoURL(sponsor)
	return sponsor, nil
}

func (s *sponsorService) UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Sponsor, error) {
	sponsor, err := s.sponsorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to load sponsor %d: %w", id, err)
	}

	key := fmt.Sprintf("sponsors/%d/logo", id)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo for sponsor %d: %w", id, err)
	}

	if err := s.sponsorRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save logo key for sponsor %d: %w", id, err)
	}
	sponsor.LogoKey = &result.Key
	sponsor.LogoURL = &result.Location
	return sponsor, nil
}

func (s *sponsorService) DeleteSponsor(ctx context.Context, id int) error {
	sponsor, err := s.sponsorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return ErrSponsorNotFound
		}
		return fmt.Errorf("failed to load sponsor %d: %w", id, err)
	}

	if err := s.sponsorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return ErrSponsorNotFound
		}
		return fmt.Errorf("failed to delete sponsor %d: %w", id, err)
	}

	if sponsor.LogoKey != nil && s.uploader != nil {
		_ = s.uploader.Delete(ctx, *sponsor.LogoKey)
	}
	return nil
}
