package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
)

// memStore is an in-memory BookingStore.  InTx holds a single lock for the
// whole transaction and applies writes only when fn succeeds, which models
// the slot row lock and rollback of the MySQL implementation.
type memStore struct {
	mu          sync.Mutex
	experiences map[string]model.Experience
	slots       map[string]model.Slot
	promos      map[string]model.PromoCode
	bookings    map[string]model.Booking

	// failInsert, failIncrement and failCommit inject storage errors.
	failInsert    error
	failIncrement error
	failCommit    error
	// staleLock makes LockSlot report an empty slot so the guarded
	// increment is the only capacity check left.
	staleLock bool
}

func newMemStore() *memStore {
	return &memStore{
		experiences: map[string]model.Experience{},
		slots:       map[string]model.Slot{},
		promos:      map[string]model.PromoCode{},
		bookings:    map[string]model.Booking{},
	}
}

type memTx struct {
	s        *memStore
	slots    map[string]model.Slot
	bookings []model.Booking
}

func (m *memStore) InTx(ctx context.Context, fn func(repository.BookingTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{s: m, slots: map[string]model.Slot{}}
	if err := fn(tx); err != nil {
		return err
	}
	if m.failCommit != nil {
		return m.failCommit
	}
	for id, sl := range tx.slots {
		m.slots[id] = sl
	}
	for _, b := range tx.bookings {
		m.bookings[b.ID] = b
	}
	return nil
}

func (t *memTx) slot(id string) (model.Slot, bool) {
	if sl, ok := t.slots[id]; ok {
		return sl, true
	}
	sl, ok := t.s.slots[id]
	return sl, ok
}

func (t *memTx) LockSlot(ctx context.Context, slotID string) (model.Slot, model.Experience, error) {
	sl, ok := t.slot(slotID)
	if !ok {
		return model.Slot{}, model.Experience{}, repository.ErrNotFound
	}
	exp := t.s.experiences[sl.ExperienceID]
	if t.s.staleLock {
		sl.BookedCount = 0
	}
	return sl, exp, nil
}

func (t *memTx) FindPromo(ctx context.Context, code string) (model.PromoCode, error) {
	p, ok := t.s.promos[code]
	if !ok {
		return model.PromoCode{}, repository.ErrNotFound
	}
	return p, nil
}

func (t *memTx) InsertBooking(ctx context.Context, b *model.Booking) error {
	if t.s.failInsert != nil {
		return t.s.failInsert
	}
	t.bookings = append(t.bookings, *b)
	return nil
}

func (t *memTx) IncrementBooked(ctx context.Context, slotID string) error {
	if t.s.failIncrement != nil {
		return t.s.failIncrement
	}
	sl, ok := t.slot(slotID)
	if !ok || sl.BookedCount >= sl.Capacity {
		return repository.ErrConflict
	}
	sl.BookedCount++
	t.slots[slotID] = sl
	return nil
}

func (m *memStore) GetByIDForUser(ctx context.Context, bookingID, userID string) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[bookingID]
	if !ok || b.UserID != userID {
		return model.Booking{}, repository.ErrNotFound
	}
	e, s := m.experiences[b.ExperienceID], m.slots[b.SlotID]
	b.Experience, b.Slot = &e, &s
	return b, nil
}

func (m *memStore) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Booking{}
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) slotState(id string) model.Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[id]
}

func (m *memStore) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

var errDisk = errors.New("disk full")
