package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/spfbase/payments/internal/entity"
)

func ptr[T any](v T) *T {
	return &v
}

func TestService_DiscountActive(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   int
		expiry  *time.Time
		want    bool
	}{
		{name: "future expiry", value: 20, expiry: ptr(now.Add(time.Hour)), want: true},
		{name: "past expiry", value: 20, expiry: ptr(now.Add(-time.Hour)), want: false},
		{name: "expiry equals now", value: 20, expiry: ptr(now), want: false},
		{name: "no expiry", value: 20, expiry: nil, want: false},
		{name: "zero discount", value: 0, expiry: ptr(now.Add(time.Hour)), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := entity.Service{
				PriceMain:      decimal.RequireFromString("100.00"),
				DiscountValue:  tt.value,
				DiscountExpiry: tt.expiry,
				Status:         entity.ServiceStatusOn,
			}

			require.Equal(t, tt.want, s.DiscountActive(now))
		})
	}
}

func TestService_Price(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		price    string
		discount int
		want     string
	}{
		{name: "no discount", price: "100.00", discount: 0, want: "100.00"},
		{name: "half off", price: "100.00", discount: 50, want: "50.00"},
		{name: "half up rounding", price: "99.99", discount: 50, want: "50.00"},
		{name: "full discount", price: "100.00", discount: 100, want: "0.00"},
		{name: "small discount", price: "33.33", discount: 10, want: "30.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := entity.Service{
				PriceMain:      decimal.RequireFromString(tt.price),
				DiscountValue:  tt.discount,
				DiscountExpiry: &future,
				Status:         entity.ServiceStatusOn,
			}

			require.Equal(t, tt.want, s.Price(now).StringFixed(2))
		})
	}
}

func TestService_PriceExpiredDiscount(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)

	s := entity.Service{
		PriceMain:      decimal.RequireFromString("100.00"),
		DiscountValue:  50,
		DiscountExpiry: &past,
	}

	require.Equal(t, "100.00", s.Price(now).StringFixed(2))
}

func TestService_IsPurchasable(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		status   entity.ServiceStatus
		stock    *int
		deadline *time.Time
		want     bool
	}{
		{name: "on without limits", status: entity.ServiceStatusOn, want: true},
		{name: "off", status: entity.ServiceStatusOff, want: false},
		{name: "archived", status: entity.ServiceStatusArchive, want: false},
		{name: "zero stock", status: entity.ServiceStatusOn, stock: ptr(0), want: false},
		{name: "positive stock", status: entity.ServiceStatusOn, stock: ptr(3), want: true},
		{name: "deadline passed", status: entity.ServiceStatusOn, deadline: ptr(now.Add(-time.Hour)), want: false},
		{name: "deadline ahead", status: entity.ServiceStatusOn, deadline: ptr(now.Add(time.Hour)), want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := entity.Service{
				Status:       tt.status,
				Stock:        tt.stock,
				SellDeadline: tt.deadline,
			}

			require.Equal(t, tt.want, s.IsPurchasable(now))
		})
	}
}

func TestService_SnapshotFreezesTerms(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)

	s := entity.Service{
		ID:             "svc-1",
		Name:           "Курс по Go",
		CreationDate:   now.AddDate(0, -1, 0),
		PriceMain:      decimal.RequireFromString("100.00"),
		DiscountValue:  30,
		DiscountExpiry: &future,
		Status:         entity.ServiceStatusOn,
	}

	snap := s.Snapshot(now)
	require.Equal(t, 30, snap.DiscountValue)
	require.Equal(t, "svc-1", snap.ServiceID)
	require.Equal(t, "70.00", snap.Price().StringFixed(2))

	// The snapshot keeps its discount even after the catalog discount ends.
	expired := s
	expired.DiscountExpiry = ptr(now.Add(-time.Hour))
	require.Equal(t, "100.00", expired.Price(now).StringFixed(2))
	require.Equal(t, "70.00", snap.Price().StringFixed(2))
}

func TestService_SnapshotInactiveDiscountZeroed(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	s := entity.Service{
		ID:             "svc-1",
		Name:           "Курс по Go",
		PriceMain:      decimal.RequireFromString("100.00"),
		DiscountValue:  30,
		DiscountExpiry: &past,
	}

	snap := s.Snapshot(now)
	require.Equal(t, 0, snap.DiscountValue)
	require.Equal(t, "100.00", snap.Price().StringFixed(2))
}

func TestService_Validate(t *testing.T) {
	t.Parallel()

	valid := entity.Service{
		Name:      "Курс",
		PriceMain: decimal.RequireFromString("10.00"),
		Status:    entity.ServiceStatusOn,
	}
	require.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	require.ErrorIs(t, noName.Validate(), entity.ErrInvalidArgument)

	badDiscount := valid
	badDiscount.DiscountValue = 101
	require.ErrorIs(t, badDiscount.Validate(), entity.ErrInvalidArgument)

	negativeStock := valid
	negativeStock.Stock = ptr(-1)
	require.ErrorIs(t, negativeStock.Validate(), entity.ErrInvalidArgument)

	negativePrice := valid
	negativePrice.PriceMain = decimal.RequireFromString("-1")
	require.ErrorIs(t, negativePrice.Validate(), entity.ErrInvalidArgument)

	badStatus := valid
	badStatus.Status = "unknown"
	require.ErrorIs(t, badStatus.Validate(), entity.ErrInvalidArgument)
}

func TestServicePatch_Apply(t *testing.T) {
	t.Parallel()

	now := time.Now()

	s := entity.Service{
		Name:           "Курс",
		PriceMain:      decimal.RequireFromString("10.00"),
		DiscountValue:  20,
		DiscountExpiry: &now,
		Status:         entity.ServiceStatusOn,
		Stock:          ptr(5),
	}

	patched, err := entity.ServicePatch{
		Name:                ptr("Новый курс"),
		PriceMain:           ptr(decimal.RequireFromString("15.00")),
		ClearDiscountExpiry: true,
		ClearStock:          true,
	}.Apply(s)
	require.NoError(t, err)

	require.Equal(t, "Новый курс", patched.Name)
	require.Equal(t, "15.00", patched.PriceMain.StringFixed(2))
	require.Nil(t, patched.DiscountExpiry)
	require.Nil(t, patched.Stock)
	require.Equal(t, 20, patched.DiscountValue)

	_, err = entity.ServicePatch{DiscountValue: ptr(200)}.Apply(s)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
