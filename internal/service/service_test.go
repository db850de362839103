package service_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spfbase/payments/internal/entity"
	"github.com/spfbase/payments/internal/mocks"
	"github.com/spfbase/payments/internal/service"
	"github.com/spfbase/payments/pkg/config"
)

const notificationSecret = "s3cr3t"

func ptr[T any](v T) *T {
	return &v
}

func newService(t *testing.T) (*service.Service, *mocks.MockRepository, *mocks.MockTaxService, *mocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	tax := mocks.NewMockTaxService(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	gw := config.Gateway{
		Receiver:     "41001000040",
		Secret:       notificationSecret,
		CheckoutURL:  "https://gateway.test/quickpay/confirm.xml",
		SuccessURL:   "https://example.test/payment",
		BuyerPaysFee: true,
	}

	return service.New(repo, tax, producer, gw), repo, tax, producer
}

func catalogService(id string, price string, stock *int) entity.Service {
	return entity.Service{
		ID:           id,
		Name:         "Курс по Go",
		CreationDate: time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC),
		PriceMain:    decimal.RequireFromString(price),
		Status:       entity.ServiceStatusOn,
		Stock:        stock,
	}
}

func TestService_Reserve(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Service(ctx, "svc-1").Return(catalogService("svc-1", "100.00", ptr(5)), nil)
	repo.EXPECT().Service(ctx, "svc-2").Return(catalogService("svc-2", "50.00", nil), nil)
	repo.EXPECT().DecrementStock(ctx, "svc-1", 2, gomock.Any()).Return(true, nil)
	repo.EXPECT().DecrementStock(ctx, "svc-2", 1, gomock.Any()).Return(true, nil)

	snapshot, err := s.Reserve(ctx, []entity.ReservationItem{
		{ServiceID: "svc-1", Quantity: 1},
		{ServiceID: "svc-2", Quantity: 1},
		{ServiceID: "svc-1", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, snapshot, 3)
	require.Equal(t, "svc-1", snapshot[0].ServiceID)
	require.Equal(t, "svc-1", snapshot[1].ServiceID)
	require.Equal(t, "svc-2", snapshot[2].ServiceID)
}

func TestService_ReserveRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Service(ctx, "svc-1").Return(catalogService("svc-1", "100.00", ptr(5)), nil)
	repo.EXPECT().Service(ctx, "svc-2").Return(catalogService("svc-2", "50.00", ptr(5)), nil)
	repo.EXPECT().DecrementStock(ctx, "svc-1", 1, gomock.Any()).Return(true, nil)
	// Concurrent buyer took the last unit between the check and the take.
	repo.EXPECT().DecrementStock(ctx, "svc-2", 1, gomock.Any()).Return(false, nil)
	repo.EXPECT().IncrementStock(ctx, "svc-1", 1, gomock.Any()).Return(nil)

	_, err := s.Reserve(ctx, []entity.ReservationItem{
		{ServiceID: "svc-1", Quantity: 1},
		{ServiceID: "svc-2", Quantity: 1},
	})
	require.ErrorIs(t, err, entity.ErrInsufficientStock)
}

func TestService_ReserveFailsFast(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	inactive := catalogService("svc-1", "100.00", nil)
	inactive.Status = entity.ServiceStatusOff

	repo.EXPECT().Service(ctx, "svc-1").Return(inactive, nil)

	_, err := s.Reserve(ctx, []entity.ReservationItem{{ServiceID: "svc-1", Quantity: 1}})
	require.ErrorIs(t, err, entity.ErrServiceInactive)
}

func TestService_ReserveInsufficientStockPrecheck(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Service(ctx, "svc-1").Return(catalogService("svc-1", "100.00", ptr(1)), nil)

	_, err := s.Reserve(ctx, []entity.ReservationItem{{ServiceID: "svc-1", Quantity: 2}})
	require.ErrorIs(t, err, entity.ErrInsufficientStock)
}

func TestService_ReserveBadQuantity(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newService(t)

	_, err := s.Reserve(context.Background(), []entity.ReservationItem{{ServiceID: "svc-1", Quantity: 0}})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = s.Reserve(context.Background(), nil)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_CreatePayment(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Service(ctx, "svc-1").Return(catalogService("svc-1", "100.00", ptr(5)), nil)
	repo.EXPECT().DecrementStock(ctx, "svc-1", 1, gomock.Any()).Return(true, nil)
	repo.EXPECT().CreatePayment(ctx, gomock.Any()).Return(nil)

	p, err := s.CreatePayment(ctx, "buyer-7",
		[]entity.ReservationItem{{ServiceID: "svc-1", Quantity: 1}},
		entity.CommissionKeyWallet, "")
	require.NoError(t, err)

	require.Len(t, p.ID, 32)
	require.Equal(t, entity.PaymentStatusPending, p.Status)
	require.Equal(t, "buyer-7", p.BuyerID)
	require.Equal(t, "100.00", p.Total().StringFixed(2))
}

func TestService_CreatePaymentRetriesIDCollision(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Service(ctx, "svc-1").Return(catalogService("svc-1", "100.00", nil), nil)
	repo.EXPECT().DecrementStock(ctx, "svc-1", 1, gomock.Any()).Return(true, nil)

	var ids []string

	repo.EXPECT().CreatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p entity.Payment) error {
			ids = append(ids, p.ID)
			return entity.ErrAlreadyExists
		})
	repo.EXPECT().CreatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p entity.Payment) error {
			ids = append(ids, p.ID)
			return nil
		})

	p, err := s.CreatePayment(ctx, "buyer-7",
		[]entity.ReservationItem{{ServiceID: "svc-1", Quantity: 1}},
		entity.CommissionKeyCard, entity.PaymentStatusPending)
	require.NoError(t, err)

	require.Len(t, ids, 2)
	require.NotEqual(t, ids[0], ids[1])
	require.Equal(t, ids[1], p.ID)
}

func TestService_CreatePaymentBadKey(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newService(t)

	_, err := s.CreatePayment(context.Background(), "buyer-7",
		[]entity.ReservationItem{{ServiceID: "svc-1", Quantity: 1}}, "cash", "")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_EditPaymentStatusLocked(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Payment(ctx, "pay-1").Return(entity.Payment{
		ID:     "pay-1",
		Status: entity.PaymentStatusDone,
	}, nil)

	_, err := s.EditPayment(ctx, "pay-1", entity.PaymentPatch{
		Status: ptr(entity.PaymentStatusPending),
	})
	require.ErrorIs(t, err, entity.ErrStatusLocked)
}

func TestService_EditPaymentCancelRestoresStock(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	p := entity.Payment{
		ID:     "pay-1",
		Status: entity.PaymentStatusPending,
		Snapshot: []entity.ServiceSnapshot{
			{ServiceID: "svc-1", PriceMain: decimal.RequireFromString("100.00")},
			{ServiceID: "svc-1", PriceMain: decimal.RequireFromString("100.00")},
			{PriceMain: decimal.RequireFromString("50.00")}, // manual line, no stock
		},
	}

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	repo.EXPECT().IncrementStock(ctx, "svc-1", 1, gomock.Any()).Return(nil).Times(2)
	repo.EXPECT().UpdatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got entity.Payment) error {
			require.Equal(t, entity.PaymentStatusCancelled, got.Status)
			return nil
		})

	updated, err := s.EditPayment(ctx, "pay-1", entity.PaymentPatch{
		Status: ptr(entity.PaymentStatusCancelled),
	})
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusCancelled, updated.Status)
}

func TestService_EditPaymentRefundVoidsReceipt(t *testing.T) {
	t.Parallel()

	s, repo, tax, _ := newService(t)
	ctx := context.Background()

	p := entity.Payment{
		ID:           "pay-1",
		Status:       entity.PaymentStatusDone,
		TaxReceiptID: "receipt-9",
	}

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	tax.EXPECT().CancelReceipt(ctx, "receipt-9", entity.ReceiptCancelRefund).Return(nil)
	repo.EXPECT().DequeueReceipt(ctx, "pay-1").Return(nil)
	repo.EXPECT().UpdatePayment(ctx, gomock.Any()).Return(nil)

	updated, err := s.EditPayment(ctx, "pay-1", entity.PaymentPatch{
		Status: ptr(entity.PaymentStatusCancelled),
	})
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusCancelled, updated.Status)
	require.Empty(t, updated.TaxReceiptID)
}

func TestService_EditPaymentMarkDoneQueuesReceipt(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	p := entity.Payment{
		ID:            "pay-1",
		Status:        entity.PaymentStatusPending,
		CommissionKey: entity.CommissionKeyWallet,
		Snapshot: []entity.ServiceSnapshot{
			{Name: "Курс", PriceMain: decimal.RequireFromString("100.00")},
		},
	}

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	repo.EXPECT().EnqueueReceipt(ctx, "pay-1", gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().UpdatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got entity.Payment) error {
			require.Equal(t, entity.PaymentStatusDone, got.Status)
			return nil
		})

	updated, err := s.EditPayment(ctx, "pay-1", entity.PaymentPatch{
		Status: ptr(entity.PaymentStatusDone),
	})
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusDone, updated.Status)
}

func TestService_DeletePaymentRestoresPendingStock(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	p := entity.Payment{
		ID:     "pay-1",
		Status: entity.PaymentStatusPending,
		Snapshot: []entity.ServiceSnapshot{
			{ServiceID: "svc-1", PriceMain: decimal.RequireFromString("100.00")},
		},
	}

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	repo.EXPECT().IncrementStock(ctx, "svc-1", 1, gomock.Any()).Return(nil)
	repo.EXPECT().DeletePayment(ctx, "pay-1").Return(nil)

	require.NoError(t, s.DeletePayment(ctx, "pay-1"))
}

func TestService_DeleteDonePaymentKeepsStock(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	p := entity.Payment{
		ID:     "pay-1",
		Status: entity.PaymentStatusDone,
		Snapshot: []entity.ServiceSnapshot{
			{ServiceID: "svc-1", PriceMain: decimal.RequireFromString("100.00")},
		},
	}

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	repo.EXPECT().DeletePayment(ctx, "pay-1").Return(nil)

	require.NoError(t, s.DeletePayment(ctx, "pay-1"))
}

func TestService_DeletePaymentVoidsReceipt(t *testing.T) {
	t.Parallel()

	s, repo, tax, _ := newService(t)
	ctx := context.Background()

	p := entity.Payment{
		ID:           "pay-1",
		Status:       entity.PaymentStatusDone,
		TaxReceiptID: "receipt-9",
	}

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	tax.EXPECT().CancelReceipt(ctx, "receipt-9", entity.ReceiptCancelErroneous).Return(nil)
	repo.EXPECT().DeletePayment(ctx, "pay-1").Return(nil)

	require.NoError(t, s.DeletePayment(ctx, "pay-1"))
}

func TestService_CheckoutURL(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	p := entity.Payment{
		ID:            "pay-1",
		Status:        entity.PaymentStatusPending,
		CommissionKey: entity.CommissionKeyWallet,
		Snapshot: []entity.ServiceSnapshot{
			{PriceMain: decimal.RequireFromString("100.00")},
		},
	}

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)

	checkout, err := s.CheckoutURL(ctx, "pay-1")
	require.NoError(t, err)

	u, err := url.Parse(checkout)
	require.NoError(t, err)

	q := u.Query()
	require.Equal(t, "41001000040", q.Get("receiver"))
	require.Equal(t, "button", q.Get("quickpay-form"))
	require.Equal(t, "PC", q.Get("paymentType"))
	require.Equal(t, "101.00", q.Get("sum"))
	require.Equal(t, "pay-1", q.Get("label"))
	require.Equal(t, "https://example.test/payment/pay-1/status", q.Get("successURL"))
}

func TestService_CheckoutURLNotPending(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Payment(ctx, "pay-1").Return(entity.Payment{
		ID:     "pay-1",
		Status: entity.PaymentStatusDone,
	}, nil)

	_, err := s.CheckoutURL(ctx, "pay-1")
	require.ErrorIs(t, err, entity.ErrStatusLocked)
}

func signedNotification(label, amount string) entity.GatewayNotification {
	n := entity.GatewayNotification{
		OpType:   "p2p-incoming",
		OpID:     "op-1",
		Amount:   amount,
		Currency: "643",
		Datetime: "2024-03-15T12:00:00Z",
		Sender:   "410011111111111",
		HeldFlag: "false",
		Label:    label,
	}
	n.Signature = n.Digest(notificationSecret)

	return n
}

func TestService_HandleGatewayNotificationInvalidSignature(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newService(t)

	n := signedNotification("pay-1", "100.00")
	n.Signature = "0000000000000000000000000000000000000000"

	err := s.HandleGatewayNotification(context.Background(), n)
	require.ErrorIs(t, err, entity.ErrInvalidSignature)
}

func TestService_HandleGatewayNotificationEmptyLabel(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newService(t)

	err := s.HandleGatewayNotification(context.Background(), signedNotification("", "100.00"))
	require.NoError(t, err)
}

func TestService_HandleGatewayNotificationUnknownLabel(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Payment(ctx, "ghost").Return(entity.Payment{}, entity.ErrNotFound)

	err := s.HandleGatewayNotification(ctx, signedNotification("ghost", "100.00"))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_HandleGatewayNotificationCompletes(t *testing.T) {
	t.Parallel()

	s, repo, _, producer := newService(t)
	ctx := context.Background()

	p := entity.Payment{
		ID:            "pay-1",
		Status:        entity.PaymentStatusPending,
		BuyerID:       "buyer-7",
		CommissionKey: entity.CommissionKeyWallet,
		Snapshot: []entity.ServiceSnapshot{
			{Name: "Курс", PriceMain: decimal.RequireFromString("100.00")},
		},
	}

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	repo.EXPECT().UpdatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got entity.Payment) error {
			require.Equal(t, entity.PaymentStatusDone, got.Status)
			require.Equal(t, "100.00", got.ReceivedAmount.StringFixed(2))
			return nil
		})
	repo.EXPECT().EnqueueReceipt(ctx, "pay-1", gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().SendPaymentCompleted(ctx, "pay-1", "buyer-7", gomock.Any())

	err := s.HandleGatewayNotification(ctx, signedNotification("pay-1", "100.00"))
	require.NoError(t, err)
}

func TestService_HandleGatewayNotificationPartialStaysPending(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	p := entity.Payment{
		ID:            "pay-1",
		Status:        entity.PaymentStatusPending,
		CommissionKey: entity.CommissionKeyWallet,
		Snapshot: []entity.ServiceSnapshot{
			{Name: "Курс", PriceMain: decimal.RequireFromString("100.00")},
		},
	}

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	repo.EXPECT().UpdatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got entity.Payment) error {
			require.Equal(t, entity.PaymentStatusPending, got.Status)
			require.Equal(t, "40.00", got.ReceivedAmount.StringFixed(2))
			return nil
		})

	err := s.HandleGatewayNotification(ctx, signedNotification("pay-1", "40.00"))
	require.NoError(t, err)
}

func TestService_HandleGatewayNotificationAccumulatesToDone(t *testing.T) {
	t.Parallel()

	s, repo, _, producer := newService(t)
	ctx := context.Background()

	// 60.00 already arrived earlier; this transfer brings the remainder.
	p := entity.Payment{
		ID:             "pay-1",
		Status:         entity.PaymentStatusPending,
		BuyerID:        "buyer-7",
		CommissionKey:  entity.CommissionKeyWallet,
		ReceivedAmount: decimal.RequireFromString("60.00"),
		Snapshot: []entity.ServiceSnapshot{
			{Name: "Курс", PriceMain: decimal.RequireFromString("100.00")},
		},
	}

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	repo.EXPECT().UpdatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got entity.Payment) error {
			require.Equal(t, entity.PaymentStatusDone, got.Status)
			require.Equal(t, "100.00", got.ReceivedAmount.StringFixed(2))
			return nil
		})
	repo.EXPECT().EnqueueReceipt(ctx, "pay-1", gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().SendPaymentCompleted(ctx, "pay-1", "buyer-7", gomock.Any())

	err := s.HandleGatewayNotification(ctx, signedNotification("pay-1", "40.00"))
	require.NoError(t, err)
}

func TestService_HandleGatewayNotificationCardWithdrawCompletes(t *testing.T) {
	t.Parallel()

	s, repo, _, producer := newService(t)
	ctx := context.Background()

	// The buyer paid exactly the checkout sum: 103.09 charged, 100.00 credited.
	p := entity.Payment{
		ID:            "pay-1",
		Status:        entity.PaymentStatusPending,
		BuyerID:       "buyer-7",
		CommissionKey: entity.CommissionKeyCard,
		Snapshot: []entity.ServiceSnapshot{
			{Name: "Курс", PriceMain: decimal.RequireFromString("100.00")},
		},
	}

	checkout, err := entity.GrossUp(p.Total(), entity.CommissionKeyCard, true)
	require.NoError(t, err)

	n := entity.GatewayNotification{
		OpType:         "card-incoming",
		OpID:           "op-1",
		Amount:         "100.00",
		Currency:       "643",
		Datetime:       "2024-03-15T12:00:00Z",
		Sender:         "",
		HeldFlag:       "false",
		Label:          "pay-1",
		WithdrawAmount: checkout.StringFixed(2),
	}
	n.Signature = n.Digest(notificationSecret)

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	repo.EXPECT().UpdatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got entity.Payment) error {
			require.Equal(t, entity.PaymentStatusDone, got.Status)
			require.Equal(t, "100.00", got.ReceivedAmount.StringFixed(2))
			require.Equal(t, "103.09", got.PayerAmount.StringFixed(2))
			return nil
		})
	repo.EXPECT().EnqueueReceipt(ctx, "pay-1", gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().SendPaymentCompleted(ctx, "pay-1", "buyer-7", gomock.Any())

	require.NoError(t, s.HandleGatewayNotification(ctx, n))
}

func TestService_HandleGatewayNotificationHeldStaysPending(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	p := entity.Payment{
		ID:            "pay-1",
		Status:        entity.PaymentStatusPending,
		CommissionKey: entity.CommissionKeyWallet,
		Snapshot: []entity.ServiceSnapshot{
			{Name: "Курс", PriceMain: decimal.RequireFromString("100.00")},
		},
	}

	n := entity.GatewayNotification{
		OpType:   "p2p-incoming",
		OpID:     "op-1",
		Amount:   "100.00",
		Currency: "643",
		Datetime: "2024-03-15T12:00:00Z",
		Sender:   "410011111111111",
		HeldFlag: "true",
		Label:    "pay-1",
	}
	n.Signature = n.Digest(notificationSecret)

	repo.EXPECT().Payment(ctx, "pay-1").Return(p, nil)
	repo.EXPECT().UpdatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got entity.Payment) error {
			require.Equal(t, entity.PaymentStatusPending, got.Status)
			return nil
		})

	require.NoError(t, s.HandleGatewayNotification(ctx, n))
}

func TestService_HandleGatewayNotificationMalformedAmount(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Payment(ctx, "pay-1").Return(entity.Payment{
		ID:     "pay-1",
		Status: entity.PaymentStatusPending,
	}, nil)

	err := s.HandleGatewayNotification(ctx, signedNotification("pay-1", "not-a-number"))
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_IssuePendingReceipts(t *testing.T) {
	t.Parallel()

	s, repo, tax, _ := newService(t)
	ctx := context.Background()

	lines := []entity.FiscalLine{{Name: "Курс (от 15.02.2024)", Amount: decimal.RequireFromString("100.00")}}

	repo.EXPECT().PendingReceipts(ctx).Return([]entity.FiscalQueueEntry{
		{PaymentID: "pay-1", Lines: lines},
		{PaymentID: "pay-2", Lines: lines},
	}, nil)

	// pay-1 gets its receipt.
	repo.EXPECT().Payment(ctx, "pay-1").Return(entity.Payment{
		ID:     "pay-1",
		Status: entity.PaymentStatusDone,
	}, nil)
	tax.EXPECT().RegisterIncome(ctx, lines).Return("receipt-1", nil)
	repo.EXPECT().UpdatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got entity.Payment) error {
			require.Equal(t, "receipt-1", got.TaxReceiptID)
			return nil
		})
	repo.EXPECT().DequeueReceipt(ctx, "pay-1").Return(nil)

	// pay-2 fails and must stay queued.
	repo.EXPECT().Payment(ctx, "pay-2").Return(entity.Payment{
		ID:     "pay-2",
		Status: entity.PaymentStatusDone,
	}, nil)
	tax.EXPECT().RegisterIncome(ctx, lines).Return("", errors.New("tax api down"))

	err := s.IssuePendingReceipts(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "pay-2")
	require.NotContains(t, err.Error(), "pay-1:")
}

func TestService_IssuePendingReceiptsSkipsIssued(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().PendingReceipts(ctx).Return([]entity.FiscalQueueEntry{
		{PaymentID: "pay-1"},
	}, nil)
	repo.EXPECT().Payment(ctx, "pay-1").Return(entity.Payment{
		ID:           "pay-1",
		TaxReceiptID: "receipt-1",
	}, nil)
	repo.EXPECT().DequeueReceipt(ctx, "pay-1").Return(nil)

	require.NoError(t, s.IssuePendingReceipts(ctx))
}

func TestService_IssuePendingReceiptsDropsDeletedPayment(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().PendingReceipts(ctx).Return([]entity.FiscalQueueEntry{
		{PaymentID: "pay-gone"},
	}, nil)
	repo.EXPECT().Payment(ctx, "pay-gone").Return(entity.Payment{}, entity.ErrNotFound)
	repo.EXPECT().DequeueReceipt(ctx, "pay-gone").Return(nil)

	require.NoError(t, s.IssuePendingReceipts(ctx))
}
