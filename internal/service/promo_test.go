package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
)

type promoLookupMock struct{ mock.Mock }

func (m *promoLookupMock) GetByCode(ctx context.Context, code string) (model.PromoCode, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(model.PromoCode), args.Error(1)
}

func TestValidatePromoCode(t *testing.T) {
	active := model.PromoCode{
		Code: "SAVE10", DiscountType: model.DiscountPercentage, DiscountValue: model.MustMoney("10"),
		ValidFrom: fixedNow.AddDate(0, -1, 0), ValidTo: fixedNow.AddDate(0, 1, 0), Active: true,
	}
	inactive := active
	inactive.Active = false
	expired := active
	expired.ValidTo = fixedNow.Add(-1)
	notYet := active
	notYet.ValidFrom = fixedNow.Add(1)

	tests := []struct {
		name    string
		code    string
		promo   model.PromoCode
		lookErr error
		wantErr error
	}{
		{"valid", "SAVE10", active, nil, nil},
		{"unknown", "NOPE", model.PromoCode{}, repository.ErrNotFound, ErrPromoNotFound},
		{"inactive", "SAVE10", inactive, nil, ErrPromoInactive},
		{"expired", "SAVE10", expired, nil, ErrPromoExpired},
		{"not yet valid", "SAVE10", notYet, nil, ErrPromoExpired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			look := &promoLookupMock{}
			look.On("GetByCode", mock.Anything, tc.code).Return(tc.promo, tc.lookErr)
			svc := NewPromoService(look, clock)

			got, err := svc.ValidatePromoCode(context.Background(), tc.code)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SAVE10", got.Code)
			assert.Equal(t, model.DiscountPercentage, got.DiscountType)
			assert.Equal(t, "10.00", got.DiscountValue.String())
			look.AssertExpectations(t)
		})
	}
}

func TestValidatePromoCode_EmptyCode(t *testing.T) {
	look := &promoLookupMock{}
	svc := NewPromoService(look, clock)

	_, err := svc.ValidatePromoCode(context.Background(), "")
	assert.ErrorIs(t, err, ErrPromoRequired)
	assert.ErrorIs(t, err, ErrInvalid)
	look.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
}

func TestValidatePromoCode_StorageError(t *testing.T) {
	look := &promoLookupMock{}
	look.On("GetByCode", mock.Anything, "SAVE10").Return(model.PromoCode{}, errDisk)
	svc := NewPromoService(look, clock)

	_, err := svc.ValidatePromoCode(context.Background(), "SAVE10")
	assert.True(t, errors.Is(err, errDisk))
	assert.False(t, errors.Is(err, ErrNotFound))
}

// A code rejected at preview can still be submitted; the booking goes
// through at full price.
func TestPromoPreviewAndCommitDisagree(t *testing.T) {
	store := seededStore("100", 5, 0)
	look := &promoLookupMock{}
	look.On("GetByCode", mock.Anything, "OLD").Return(store.promos["OLD"], nil)

	_, err := NewPromoService(look, clock).ValidatePromoCode(context.Background(), "OLD")
	require.ErrorIs(t, err, ErrPromoExpired)

	b, err := NewBookingService(store, clock).CreateBooking(context.Background(), "user-1",
		CreateBookingInput{ExperienceID: "exp-1", SlotID: "slot-1", PromoCode: "OLD"})
	require.NoError(t, err)
	assert.Equal(t, "100.00", b.TotalPrice.String())
}
