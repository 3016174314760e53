package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceList_NoFilter(t *testing.T) {
	db, mock := newMock(t)
	rows := sqlmock.NewRows(experienceCols).
		AddRow(experienceVals("e2", "Cultural Temple Tour", "99.99")...).
		AddRow(experienceVals("e1", "Wine Tasting Experience", "159.99")...)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE 1=1") + `\s+ORDER BY e.created_at DESC`).
		WithoutArgs().
		WillReturnRows(rows)

	got, err := NewExperienceRepo(db).List(context.Background(), ExperienceFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e2", got[0].ID)
	assert.Equal(t, "99.99", got[0].Price.String())
	assert.Equal(t, 4.9, got[0].Rating)
	assert.Equal(t, 180, got[0].Duration)
}

func TestExperienceList_CategoryAndSearch(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("e.category = ? AND (LOWER(e.title) LIKE ?")).
		WithArgs("Cultural", "%kyoto%", "%kyoto%", "%kyoto%").
		WillReturnRows(sqlmock.NewRows(experienceCols))

	got, err := NewExperienceRepo(db).List(context.Background(), ExperienceFilter{Category: "Cultural", Search: "  Kyoto "})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestExperienceList_EscapesWildcards(t *testing.T) {
	db, mock := newMock(t)
	pat := `%50\%\_off%`
	mock.ExpectQuery("LIKE").
		WithArgs(pat, pat, pat).
		WillReturnRows(sqlmock.NewRows(experienceCols))

	_, err := NewExperienceRepo(db).List(context.Background(), ExperienceFilter{Search: "50%_OFF"})
	require.NoError(t, err)
}

func TestExperienceGetByID(t *testing.T) {
	db, mock := newMock(t)
	q := regexp.QuoteMeta("FROM experiences e WHERE e.id = ?")
	mock.ExpectQuery(q).WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(experienceCols).AddRow(experienceVals("e1", "Glacier Hiking Adventure", "269.99")...))
	mock.ExpectQuery(q).WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(experienceCols))

	repo := NewExperienceRepo(db)
	e, err := repo.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Glacier Hiking Adventure", e.Title)

	_, err = repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExperienceListSlotsFrom(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("s.experience_id = ? AND s.date >= ?") + `\s+` + regexp.QuoteMeta("ORDER BY s.date ASC, s.start_time ASC")).
		WithArgs("e1", "2025-06-20").
		WillReturnRows(sqlmock.NewRows(slotCols).
			AddRow(slotVals("s1", "e1", 8, 2)...).
			AddRow(slotVals("s2", "e1", 10, 0)...))

	slots, err := NewExperienceRepo(db).ListSlotsFrom(context.Background(), "e1", slotDay)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, 2, slots[0].BookedCount)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, slotDay, slots[0].Date)
}

func TestExperienceList_QueryError(t *testing.T) {
	db, mock := newMock(t)
	boom := errors.New("boom")
	mock.ExpectQuery("FROM experiences").WillReturnError(boom)

	_, err := NewExperienceRepo(db).List(context.Background(), ExperienceFilter{})
	assert.ErrorIs(t, err, boom)
}
