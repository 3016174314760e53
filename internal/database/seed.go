package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type seedExperience struct {
	title, description, location, price, imageURL, category string
	rating                                                  float64
	duration                                                int
}

var seedExperiences = []seedExperience{
	{"Sunset Safari Adventure", "Experience the thrill of wildlife spotting during golden hour. Our expert guides will take you through pristine landscapes where you can witness majestic animals in their natural habitat.", "Serengeti, Tanzania", "249.99", "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=800", "Adventure", 4.8, 240},
	{"Traditional Cooking Class", "Learn to cook authentic local dishes with a professional chef. Discover secret family recipes and cooking techniques passed down through generations.", "Tuscany, Italy", "129.99", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=800", "Food & Wine", 4.9, 180},
	{"Mountain Hiking Expedition", "Challenge yourself with breathtaking mountain trails. Perfect for adventure seekers looking to conquer new heights and enjoy spectacular panoramic views.", "Swiss Alps, Switzerland", "189.99", "https://images.unsplash.com/photo-1551632811-561732d1e306?w=800", "Nature", 4.7, 360},
	{"Scuba Diving Paradise", "Explore vibrant coral reefs and swim alongside tropical fish. All equipment included, suitable for both beginners and experienced divers.", "Great Barrier Reef, Australia", "299.99", "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800", "Water Sports", 5.0, 240},
	{"Cultural Temple Tour", "Journey through ancient temples and learn about rich cultural heritage. Experience spiritual ceremonies and traditional rituals with local guides.", "Kyoto, Japan", "99.99", "https://images.unsplash.com/photo-1528164344705-47542687000d?w=800", "Cultural", 4.9, 180},
	{"Northern Lights Expedition", "Witness the magical Aurora Borealis dancing across the Arctic sky. Includes warm clothing, hot beverages, and professional photography guidance.", "Tromsø, Norway", "349.99", "https://images.unsplash.com/photo-1579033461380-adb47c3eb938?w=800", "Nature", 4.8, 300},
	{"Wine Tasting Experience", "Sample exquisite wines from prestigious vineyards. Learn about wine-making processes while enjoying cheese pairings and stunning countryside views.", "Bordeaux, France", "159.99", "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?w=800", "Food & Wine", 4.9, 240},
	{"Rainforest Canopy Zipline", "Soar through lush rainforest canopy on thrilling ziplines. Experience the jungle from a unique perspective with certified safety equipment.", "Costa Rica", "179.99", "https://images.unsplash.com/photo-1606086518254-7f2dbb6c2f44?w=800", "Adventure", 4.7, 180},
	{"Surfing Lessons at Sunset", "Learn to ride the waves with experienced surf instructors. Perfect for beginners, all equipment provided including wetsuit and surfboard.", "Bali, Indonesia", "89.99", "https://images.unsplash.com/photo-1502933691298-84fc14542831?w=800", "Water Sports", 4.8, 120},
	{"Desert Camel Trek", "Experience traditional desert travel on camelback through golden sand dunes. Includes traditional tea ceremony and stargazing session.", "Sahara Desert, Morocco", "199.99", "https://images.unsplash.com/photo-1509316785289-025f5b846b35?w=800", "Adventure", 4.6, 300},
	{"Street Food Walking Tour", "Discover hidden culinary gems on a guided street food adventure. Taste authentic local delicacies from the best street vendors.", "Bangkok, Thailand", "69.99", "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=800", "Food & Wine", 4.9, 180},
	{"Glacier Hiking Adventure", "Trek across ancient ice formations with professional glacier guides. All safety equipment provided including crampons and ice axes.", "Patagonia, Argentina", "269.99", "https://images.unsplash.com/photo-1483728642387-6c3bdd6c93e5?w=800", "Nature", 4.8, 420},
}

var seedTimeSlots = []struct {
	start, end string
	capacity   int
}{
	{"09:00", "12:00", 8},
	{"14:00", "17:00", 10},
	{"18:00", "21:00", 6},
}

// SeedDays is the number of consecutive days, starting today, that receive slots.
const SeedDays = 30

// SeedSummary reports how many rows Seed inserted.
type SeedSummary struct {
	Experiences int
	Slots       int
	PromoCodes  int
}

// Seed wipes all tables and loads the demo catalog.  Slot dates start at
// the UTC day of now; promo validity windows are relative to now.
func Seed(ctx context.Context, db *sql.DB, now time.Time) (SeedSummary, error) {
	var sum SeedSummary

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return sum, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"bookings", "slots", "experiences", "promo_codes", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return sum, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Strictly decreasing created_at gives the catalog a stable newest-first order.
	base := now.UTC().Truncate(time.Millisecond)
	for i, e := range seedExperiences {
		expID := uuid.NewString()
		created := experienceCreatedAt(base, i)
		price, err := decimal.NewFromString(e.price)
		if err != nil {
			return sum, err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO experiences (id, title, description, location, price, image_url, category, rating, duration, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			expID, e.title, e.description, e.location, price, e.imageURL, e.category, e.rating, e.duration, created, created,
		); err != nil {
			return sum, fmt.Errorf("insert experience %q: %w", e.title, err)
		}
		sum.Experiences++

		// One multi-row insert per experience keeps round trips low.
		var (
			sb   strings.Builder
			args []any
		)
		sb.WriteString("INSERT INTO slots (id, experience_id, date, start_time, end_time, capacity, booked_count) VALUES ")
		for day := 0; day < SeedDays; day++ {
			date := today.AddDate(0, 0, day)
			for _, ts := range seedTimeSlots {
				if len(args) > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString("(?, ?, ?, ?, ?, ?, ?)")
				args = append(args, uuid.NewString(), expID, date, ts.start, ts.end, ts.capacity, rand.Intn(3))
				sum.Slots++
			}
		}
		if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
			return sum, fmt.Errorf("insert slots for %q: %w", e.title, err)
		}
	}

	promos := []struct {
		code, kind, value string
		from, to          time.Time
	}{
		{"SAVE10", "PERCENTAGE", "10", now.AddDate(0, -1, 0), now.AddDate(1, 0, 0)},
		{"FLAT100", "FLAT", "100", now.AddDate(0, -1, 0), now.AddDate(1, 0, 0)},
		{"WELCOME20", "PERCENTAGE", "20", now.AddDate(0, -1, 0), now.AddDate(0, 6, 0)},
	}
	for _, p := range promos {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO promo_codes (code, discount_type, discount_value, valid_from, valid_to, active)
			VALUES (?, ?, ?, ?, ?, 1)`,
			p.code, p.kind, p.value, p.from.UTC(), p.to.UTC(),
		); err != nil {
			return sum, fmt.Errorf("insert promo %s: %w", p.code, err)
		}
		sum.PromoCodes++
	}

	if err := tx.Commit(); err != nil {
		return sum, err
	}
	committed = true
	return sum, nil
}

// experienceCreatedAt gives the i-th seeded experience a timestamp one
// second older than the previous one.
func experienceCreatedAt(base time.Time, i int) time.Time {
	return base.Add(-time.Duration(i) * time.Second)
}
