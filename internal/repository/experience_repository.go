package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/experience-booking/internal/model"
)

// ExperienceRepo reads the experiences catalog and its slots.
type ExperienceRepo struct {
	db *sql.DB
}

func NewExperienceRepo(db *sql.DB) *ExperienceRepo { return &ExperienceRepo{db: db} }

// ExperienceFilter narrows List.  Empty fields do not filter.
type ExperienceFilter struct {
	Category string // exact match
	Search   string // case-insensitive substring of title, description or location
}

const experienceColumns = `e.id, e.title, e.description, e.location, e.price, e.image_url,
	e.category, e.rating, e.duration, e.created_at, e.updated_at`

const slotColumns = `s.id, s.experience_id, s.date, s.start_time, s.end_time,
	s.capacity, s.booked_count, s.created_at, s.updated_at`

func experienceDest(e *model.Experience) []any {
	return []any{&e.ID, &e.Title, &e.Description, &e.Location, &e.Price, &e.ImageURL,
		&e.Category, &e.Rating, &e.Duration, &e.CreatedAt, &e.UpdatedAt}
}

func slotDest(s *model.Slot) []any {
	return []any{&s.ID, &s.ExperienceID, &s.Date, &s.StartTime, &s.EndTime,
		&s.Capacity, &s.BookedCount, &s.CreatedAt, &s.UpdatedAt}
}

// likeEscaper escapes LIKE wildcards so user input is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// List returns experiences matching f, newest first.
func (r *ExperienceRepo) List(ctx context.Context, f ExperienceFilter) ([]model.Experience, error) {
	where := []string{}
	args := []any{}

	if f.Category != "" {
		where = append(where, "e.category = ?")
		args = append(args, f.Category)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pat := "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
		where = append(where, "(LOWER(e.title) LIKE ? OR LOWER(e.description) LIKE ? OR LOWER(e.location) LIKE ?)")
		args = append(args, pat, pat, pat)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	q := `SELECT ` + experienceColumns + `
		FROM experiences e
		WHERE ` + cond + `
		ORDER BY e.created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	out := []model.Experience{}
	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(experienceDest(&e)...); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns a single experience without slots.
func (r *ExperienceRepo) GetByID(ctx context.Context, id string) (model.Experience, error) {
	var e model.Experience
	err := r.db.QueryRowContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences e WHERE e.id = ? LIMIT 1`, id,
	).Scan(experienceDest(&e)...)
	if err != nil {
		return model.Experience{}, notFound(err)
	}
	return e, nil
}

// ListSlotsFrom returns the experience's slots dated on or after from,
// ordered by date then start time.
func (r *ExperienceRepo) ListSlotsFrom(ctx context.Context, experienceID string, from time.Time) ([]model.Slot, error) {
	const q = `SELECT ` + slotColumns + `
		FROM slots s
		WHERE s.experience_id = ? AND s.date >= ?
		ORDER BY s.date ASC, s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, experienceID, from.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	out := []model.Slot{}
	for rows.Next() {
		var s model.Slot
		if err := rows.Scan(slotDest(&s)...); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
