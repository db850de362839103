package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spfbase/payments/internal/entity"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateService(ctx context.Context, s entity.Service) error {
	const q = `
	INSERT INTO services (
		id,
		name,
		description,
		creation_date,
		price_main,
		discount_value,
		discount_expiry,
		status,
		stock,
		sell_deadline,
		requires_offer_acceptance,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		s.ID,
		s.Name,
		s.Description,
		s.CreationDate,
		s.PriceMain,
		s.DiscountValue,
		s.DiscountExpiry,
		s.Status,
		s.Stock,
		s.SellDeadline,
		s.RequiresOfferAcceptance,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (r *Repository) Service(ctx context.Context, id string) (entity.Service, error) {
	q := selectService + " WHERE id = $1"
	return scanService(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Services(ctx context.Context) (services []entity.Service, err error) {
	q := selectService + " ORDER BY name"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}

		services = append(services, s)
	}

	return services, nil
}

func (r *Repository) UpdateService(ctx context.Context, s entity.Service) error {
	const q = `
	UPDATE services SET
		name = $2,
		description = $3,
		price_main = $4,
		discount_value = $5,
		discount_expiry = $6,
		status = $7,
		stock = $8,
		sell_deadline = $9,
		requires_offer_acceptance = $10,
		updated_at = $11
	WHERE id = $1
	`

	result, err := r.db.Exec(
		ctx,
		q,
		s.ID,
		s.Name,
		s.Description,
		s.PriceMain,
		s.DiscountValue,
		s.DiscountExpiry,
		s.Status,
		s.Stock,
		s.SellDeadline,
		s.RequiresOfferAcceptance,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteService(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// DecrementStock atomically takes qty units off the service's stock. NULL
// stock means unlimited and always succeeds without mutation. Returns false
// when the remaining stock is smaller than qty; nothing is changed then.
func (r *Repository) DecrementStock(ctx context.Context, id string, qty int, updatedAt time.Time) (bool, error) {
	const q = `
	UPDATE services SET
		stock = CASE WHEN stock IS NULL THEN NULL ELSE stock - $2 END,
		updated_at = $3
	WHERE id = $1 AND (stock IS NULL OR stock >= $2)
	`

	result, err := r.db.Exec(ctx, q, id, qty, updatedAt)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

// IncrementStock returns qty units to the service's stock. Unlimited stock
// and missing rows are both no-ops: restoring a reservation must not fail
// because the catalog entry changed meanwhile.
func (r *Repository) IncrementStock(ctx context.Context, id string, qty int, updatedAt time.Time) error {
	const q = `
	UPDATE services SET stock = stock + $2, updated_at = $3
	WHERE id = $1 AND stock IS NOT NULL
	`

	_, err := r.db.Exec(ctx, q, id, qty, updatedAt)

	return err
}

func (r *Repository) CreatePayment(ctx context.Context, p entity.Payment) error {
	snapshot, err := json.Marshal(p.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	const q = `
	INSERT INTO payments (
		id,
		status,
		buyer_id,
		snapshot,
		commission_key,
		tax_receipt_id,
		received_amount,
		payer_amount,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.Exec(
		ctx,
		q,
		p.ID,
		p.Status,
		p.BuyerID,
		snapshot,
		p.CommissionKey,
		zeronull.Text(p.TaxReceiptID),
		p.ReceivedAmount,
		p.PayerAmount,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (r *Repository) Payment(ctx context.Context, id string) (entity.Payment, error) {
	q := selectPayment + " WHERE id = $1"
	return scanPayment(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error) {
	stmt := sq.Select(
		"id",
		"status",
		"buyer_id",
		"snapshot",
		"commission_key",
		"tax_receipt_id",
		"received_amount",
		"payer_amount",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("payments").PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.BuyerID != nil {
		stmt = stmt.Where(sq.Eq{"buyer_id": *f.BuyerID})
	}

	stmt = stmt.
		OrderBy("created_at DESC").
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments := make([]entity.Payment, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var (
			p        entity.Payment
			snapshot []byte
			count    int
		)

		err = rows.Scan(
			&p.ID,
			&p.Status,
			&p.BuyerID,
			&snapshot,
			&p.CommissionKey,
			(*zeronull.Text)(&p.TaxReceiptID),
			&p.ReceivedAmount,
			&p.PayerAmount,
			&p.CreatedAt,
			&p.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		err = json.Unmarshal(snapshot, &p.Snapshot)
		if err != nil {
			return nil, 0, fmt.Errorf("unmarshal snapshot of %s: %w", p.ID, err)
		}

		totalCount = count

		payments = append(payments, p)
	}

	return payments, totalCount, nil
}

func (r *Repository) UpdatePayment(ctx context.Context, p entity.Payment) error {
	snapshot, err := json.Marshal(p.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	const q = `
	UPDATE payments SET
		status = $2,
		buyer_id = $3,
		snapshot = $4,
		commission_key = $5,
		tax_receipt_id = $6,
		received_amount = $7,
		payer_amount = $8,
		updated_at = $9
	WHERE id = $1
	`

	result, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.Status,
		p.BuyerID,
		snapshot,
		p.CommissionKey,
		zeronull.Text(p.TaxReceiptID),
		p.ReceivedAmount,
		p.PayerAmount,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeletePayment(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) EnqueueReceipt(ctx context.Context, paymentID string, lines []entity.FiscalLine, createdAt time.Time) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal fiscal lines: %w", err)
	}

	const q = `
	INSERT INTO fiscal_queue (payment_id, service_lines, created_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (payment_id) DO NOTHING
	`

	_, err = r.db.Exec(ctx, q, paymentID, payload, createdAt)

	return err
}

func (r *Repository) DequeueReceipt(ctx context.Context, paymentID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM fiscal_queue WHERE payment_id = $1`, paymentID)

	return err
}

func (r *Repository) PendingReceipts(ctx context.Context) (entries []entity.FiscalQueueEntry, err error) {
	rows, err := r.db.Query(ctx, `SELECT payment_id, service_lines FROM fiscal_queue ORDER BY created_at`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		var (
			entry   entity.FiscalQueueEntry
			payload []byte
		)

		err = rows.Scan(&entry.PaymentID, &payload)
		if err != nil {
			return nil, err
		}

		err = json.Unmarshal(payload, &entry.Lines)
		if err != nil {
			return nil, fmt.Errorf("unmarshal fiscal lines of %s: %w", entry.PaymentID, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func scanService(row pgx.Row) (s entity.Service, err error) {
	err = row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.CreationDate,
		&s.PriceMain,
		&s.DiscountValue,
		&s.DiscountExpiry,
		&s.Status,
		&s.Stock,
		&s.SellDeadline,
		&s.RequiresOfferAcceptance,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Service{}, entity.ErrNotFound
		}

		return entity.Service{}, err
	}

	return s, nil
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	var snapshot []byte

	err = row.Scan(
		&p.ID,
		&p.Status,
		&p.BuyerID,
		&snapshot,
		&p.CommissionKey,
		(*zeronull.Text)(&p.TaxReceiptID),
		&p.ReceivedAmount,
		&p.PayerAmount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Payment{}, entity.ErrNotFound
		}

		return entity.Payment{}, err
	}

	err = json.Unmarshal(snapshot, &p.Snapshot)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("unmarshal snapshot of %s: %w", p.ID, err)
	}

	return p, nil
}
