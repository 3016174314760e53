package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
)

type experienceStoreMock struct{ mock.Mock }

func (m *experienceStoreMock) List(ctx context.Context, f repository.ExperienceFilter) ([]model.Experience, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]model.Experience)
	return out, args.Error(1)
}

func (m *experienceStoreMock) GetByID(ctx context.Context, id string) (model.Experience, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Experience), args.Error(1)
}

func (m *experienceStoreMock) ListSlotsFrom(ctx context.Context, experienceID string, from time.Time) ([]model.Slot, error) {
	args := m.Called(ctx, experienceID, from)
	out, _ := args.Get(0).([]model.Slot)
	return out, args.Error(1)
}

func TestListExperiences_Filters(t *testing.T) {
	tests := []struct {
		name string
		in   CatalogFilter
		want repository.ExperienceFilter
	}{
		{"none", CatalogFilter{}, repository.ExperienceFilter{}},
		{"all means no category", CatalogFilter{Category: "all"}, repository.ExperienceFilter{}},
		{"category", CatalogFilter{Category: "Nature"}, repository.ExperienceFilter{Category: "Nature"}},
		{"search passes through", CatalogFilter{Search: "Kyoto"}, repository.ExperienceFilter{Search: "Kyoto"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := &experienceStoreMock{}
			st.On("List", mock.Anything, tc.want).Return([]model.Experience{{ID: "exp-1"}}, nil)

			got, err := NewCatalogService(st, clock).ListExperiences(context.Background(), tc.in)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			st.AssertExpectations(t)
		})
	}
}

func TestGetExperience(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	st := &experienceStoreMock{}
	st.On("GetByID", mock.Anything, "exp-1").Return(model.Experience{ID: "exp-1", Title: "Desert Camel Trek"}, nil)
	st.On("ListSlotsFrom", mock.Anything, "exp-1", today).Return([]model.Slot{{ID: "s1"}, {ID: "s2"}}, nil)

	e, err := NewCatalogService(st, clock).GetExperience(context.Background(), "exp-1")
	require.NoError(t, err)
	assert.Equal(t, "Desert Camel Trek", e.Title)
	assert.Len(t, e.Slots, 2)
	st.AssertExpectations(t)
}

func TestGetExperience_NotFound(t *testing.T) {
	st := &experienceStoreMock{}
	st.On("GetByID", mock.Anything, "nope").Return(model.Experience{}, repository.ErrNotFound)

	_, err := NewCatalogService(st, clock).GetExperience(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrExperienceNotFound)
	st.AssertNotCalled(t, "ListSlotsFrom", mock.Anything, mock.Anything, mock.Anything)
}
