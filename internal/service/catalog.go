package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
)

// ExperienceStore is the read side of the catalog.
type ExperienceStore interface {
	List(ctx context.Context, f repository.ExperienceFilter) ([]model.Experience, error)
	GetByID(ctx context.Context, id string) (model.Experience, error)
	ListSlotsFrom(ctx context.Context, experienceID string, from time.Time) ([]model.Slot, error)
}

// CatalogFilter narrows ListExperiences.  Category "all" is the same as
// no category.
type CatalogFilter struct {
	Category string
	Search   string
}

type CatalogService struct {
	store ExperienceStore
	now   func() time.Time
}

func NewCatalogService(store ExperienceStore, now func() time.Time) *CatalogService {
	if now == nil {
		now = time.Now
	}
	return &CatalogService{store: store, now: now}
}

func (s *CatalogService) ListExperiences(ctx context.Context, f CatalogFilter) ([]model.Experience, error) {
	rf := repository.ExperienceFilter{Category: strings.TrimSpace(f.Category), Search: f.Search}
	if strings.EqualFold(rf.Category, "all") {
		rf.Category = ""
	}
	out, err := s.store.List(ctx, rf)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return out, nil
}

// GetExperience returns the experience with its slots from today (UTC)
// onwards.
func (s *CatalogService) GetExperience(ctx context.Context, id string) (model.Experience, error) {
	e, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Experience{}, ErrExperienceNotFound
	}
	if err != nil {
		return model.Experience{}, fmt.Errorf("get experience: %w", err)
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	slots, err := s.store.ListSlotsFrom(ctx, id, today)
	if err != nil {
		return model.Experience{}, fmt.Errorf("list slots: %w", err)
	}
	e.Slots = slots
	return e, nil
}
