package service

import (
	"context"
	"errors"

	"coursecatalog/internal/model"
	"coursecatalog/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService interface {
	Get(ctx context.Context, userID string) (*model.Profile, error)
	Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	p, err := s.profileRepo.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (s *profileService) Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	if err := s.profileRepo.UpsertProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
