package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ServiceStatus string

const (
	ServiceStatusOn      ServiceStatus = "on"
	ServiceStatusOff     ServiceStatus = "off"
	ServiceStatusArchive ServiceStatus = "archive"
)

func (s ServiceStatus) String() string {
	return string(s)
}

func (s ServiceStatus) Validate() error {
	switch s {
	case ServiceStatusOn, ServiceStatusOff, ServiceStatusArchive:
		return nil
	default:
		return fmt.Errorf("%w: unknown service status %q", ErrInvalidArgument, string(s))
	}
}

// Service is a purchasable catalog entry. Stock == nil means unlimited.
type Service struct {
	ID                      string
	Name                    string
	Description             string
	CreationDate            time.Time
	PriceMain               decimal.Decimal
	DiscountValue           int // 0-100
	DiscountExpiry          *time.Time
	Status                  ServiceStatus
	Stock                   *int
	SellDeadline            *time.Time
	RequiresOfferAcceptance bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (s Service) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: service name is empty", ErrInvalidArgument)
	}

	if s.DiscountValue < 0 || s.DiscountValue > 100 {
		return fmt.Errorf("%w: discount value %d is out of [0, 100]", ErrInvalidArgument, s.DiscountValue)
	}

	if s.Stock != nil && *s.Stock < 0 {
		return fmt.Errorf("%w: stock %d is negative", ErrInvalidArgument, *s.Stock)
	}

	if s.PriceMain.IsNegative() {
		return fmt.Errorf("%w: price %s is negative", ErrInvalidArgument, s.PriceMain)
	}

	return s.Status.Validate()
}

// DiscountActive reports whether the discount applies at the given moment.
// The expiry boundary is exclusive: a discount whose expiry equals now is
// already over.
func (s Service) DiscountActive(now time.Time) bool {
	if s.DiscountValue <= 0 {
		return false
	}

	if s.DiscountExpiry == nil {
		return false
	}

	return s.DiscountExpiry.After(now)
}

// Price returns the effective price: PriceMain reduced by an active discount,
// rounded half-up to two decimal places.
func (s Service) Price(now time.Time) decimal.Decimal {
	if !s.DiscountActive(now) {
		return s.PriceMain.Round(2)
	}

	return discountedPrice(s.PriceMain, s.DiscountValue)
}

// IsPurchasable reports whether a new sale of this service may start.
func (s Service) IsPurchasable(now time.Time) bool {
	if s.Status != ServiceStatusOn {
		return false
	}

	if s.Stock != nil && *s.Stock <= 0 {
		return false
	}

	if s.SellDeadline != nil && !s.SellDeadline.After(now) {
		return false
	}

	return true
}

// Snapshot freezes the service's sale terms for embedding into a payment.
func (s Service) Snapshot(now time.Time) ServiceSnapshot {
	discount := 0
	if s.DiscountActive(now) {
		discount = s.DiscountValue
	}

	return ServiceSnapshot{
		Name:          s.Name,
		CreationDate:  s.CreationDate,
		PriceMain:     s.PriceMain,
		DiscountValue: discount,
		ServiceID:     s.ID,
	}
}

// ServiceSnapshot is an immutable copy of a service's sale terms captured at
// reservation time. Later catalog edits never change it. ServiceID links back
// to the source service so cancelled reservations can restore stock; it is
// empty for manually entered lines.
type ServiceSnapshot struct {
	Name          string          `json:"name"`
	CreationDate  time.Time       `json:"creation_date"`
	PriceMain     decimal.Decimal `json:"price_main"`
	DiscountValue int             `json:"discount_value"`
	ServiceID     string          `json:"service_id,omitempty"`
}

// Price of a snapshot line. The discount captured at reservation time applies
// unconditionally: expiry was already checked when the snapshot was taken.
func (s ServiceSnapshot) Price() decimal.Decimal {
	if s.DiscountValue <= 0 {
		return s.PriceMain.Round(2)
	}

	return discountedPrice(s.PriceMain, s.DiscountValue)
}

func discountedPrice(priceMain decimal.Decimal, discount int) decimal.Decimal {
	oneHundred := decimal.New(100, 0)
	multiplier := oneHundred.Sub(decimal.New(int64(discount), 0)).Div(oneHundred)

	return priceMain.Mul(multiplier).Round(2)
}

// ServicePatch is a partial service update. Nil means the field is untouched;
// Clear* flags reset the corresponding optional field.
type ServicePatch struct {
	Name                    *string
	Description             *string
	PriceMain               *decimal.Decimal
	DiscountValue           *int
	DiscountExpiry          *time.Time
	ClearDiscountExpiry     bool
	Status                  *ServiceStatus
	Stock                   *int
	ClearStock              bool
	SellDeadline            *time.Time
	ClearSellDeadline       bool
	RequiresOfferAcceptance *bool
}

// Apply merges the patch into the service and validates the result.
func (p ServicePatch) Apply(s Service) (Service, error) {
	if p.Name != nil {
		s.Name = *p.Name
	}

	if p.Description != nil {
		s.Description = *p.Description
	}

	if p.PriceMain != nil {
		s.PriceMain = *p.PriceMain
	}

	if p.DiscountValue != nil {
		s.DiscountValue = *p.DiscountValue
	}

	if p.ClearDiscountExpiry {
		s.DiscountExpiry = nil
	} else if p.DiscountExpiry != nil {
		s.DiscountExpiry = p.DiscountExpiry
	}

	if p.Status != nil {
		s.Status = *p.Status
	}

	if p.ClearStock {
		s.Stock = nil
	} else if p.Stock != nil {
		s.Stock = p.Stock
	}

	if p.ClearSellDeadline {
		s.SellDeadline = nil
	} else if p.SellDeadline != nil {
		s.SellDeadline = p.SellDeadline
	}

	if p.RequiresOfferAcceptance != nil {
		s.RequiresOfferAcceptance = *p.RequiresOfferAcceptance
	}

	err := s.Validate()
	if err != nil {
		return Service{}, err
	}

	return s, nil
}
