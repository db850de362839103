package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spfbase/payments/internal/entity"
)

// Reserve takes stock for every requested position and returns the snapshot
// lines a payment is created with, one line per unit. The reservation is all
// or nothing: if any position cannot be taken, units already taken are
// returned and no snapshot is produced.
func (s *Service) Reserve(ctx context.Context, items []entity.ReservationItem) ([]entity.ServiceSnapshot, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty reservation", entity.ErrInvalidArgument)
	}

	// Collapse duplicated positions, keeping first occurrence order.
	order := make([]string, 0, len(items))
	wanted := make(map[string]int, len(items))

	for _, item := range items {
		if item.ServiceID == "" {
			return nil, fmt.Errorf("%w: empty service id", entity.ErrInvalidArgument)
		}

		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity %d of service %q", entity.ErrInvalidArgument, item.Quantity, item.ServiceID)
		}

		if _, ok := wanted[item.ServiceID]; !ok {
			order = append(order, item.ServiceID)
		}

		wanted[item.ServiceID] += item.Quantity
	}

	now := time.Now()
	services := make(map[string]entity.Service, len(order))

	for _, id := range order {
		svc, err := s.repo.Service(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get service %q: %w", id, err)
		}

		if !svc.IsPurchasable(now) {
			return nil, fmt.Errorf("%w: service %q", entity.ErrServiceInactive, id)
		}

		if svc.Stock != nil && *svc.Stock < wanted[id] {
			return nil, fmt.Errorf("%w: service %q has %d left, requested %d",
				entity.ErrInsufficientStock, id, *svc.Stock, wanted[id])
		}

		services[id] = svc
	}

	// The pre-check above cannot hold stock, so the decrement re-checks
	// atomically and may still refuse under concurrent reservations.
	applied := make([]string, 0, len(order))

	for _, id := range order {
		ok, err := s.repo.DecrementStock(ctx, id, wanted[id], now)
		if err == nil && !ok {
			err = fmt.Errorf("%w: service %q", entity.ErrInsufficientStock, id)
		}

		if err != nil {
			s.rollbackReservation(ctx, applied, wanted, now)

			return nil, fmt.Errorf("reserve service %q: %w", id, err)
		}

		applied = append(applied, id)
	}

	snapshots := make([]entity.ServiceSnapshot, 0, len(items))

	for _, id := range order {
		snap := services[id].Snapshot(now)

		for i := 0; i < wanted[id]; i++ {
			snapshots = append(snapshots, snap)
		}
	}

	return snapshots, nil
}

// rollbackReservation returns taken units in reverse order. Failures are
// logged, not returned: the caller is already failing the reservation.
func (s *Service) rollbackReservation(ctx context.Context, applied []string, wanted map[string]int, now time.Time) {
	for i := len(applied) - 1; i >= 0; i-- {
		id := applied[i]

		err := s.repo.IncrementStock(ctx, id, wanted[id], now)
		if err != nil {
			slog.ErrorContext(ctx, fmt.Sprintf("Не удалось вернуть %d ед. услуги %q на склад: %v", wanted[id], id, err))
		}
	}
}

// restoreSnapshotStock puts one unit per snapshot line back on the shelf.
// Lines without a service reference are skipped, as are services sold without
// a stock limit.
func (s *Service) restoreSnapshotStock(ctx context.Context, snapshot []entity.ServiceSnapshot) {
	now := time.Now()

	for _, line := range snapshot {
		if line.ServiceID == "" {
			continue
		}

		err := s.repo.IncrementStock(ctx, line.ServiceID, 1, now)
		if err != nil {
			slog.ErrorContext(ctx, fmt.Sprintf("Не удалось вернуть услугу %q на склад: %v", line.ServiceID, err))
		}
	}
}
