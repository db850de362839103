package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spfbase/payments/internal/api"
	"github.com/spfbase/payments/internal/entity"
	"github.com/spfbase/payments/internal/mocks"
)

type testAPI struct {
	server      *httptest.Server
	serviceMock *mocks.MockService
	authMock    *mocks.MockAuthService
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	router := api.NewRouter(api.NewHandler(serviceMock), api.NewMiddleware(authMock, false, ""))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return testAPI{
		server:      server,
		serviceMock: serviceMock,
		authMock:    authMock,
	}
}

func (c testAPI) do(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, c.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func manager() entity.User {
	return entity.User{
		Name: "manager",
		Permissions: []string{
			entity.PermissionServiceControl,
			entity.PermissionPaymentControl,
		},
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	resp := c.do(t, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Services(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	future := time.Now().Add(24 * time.Hour)

	c.serviceMock.EXPECT().Services(gomock.Any()).Return([]entity.Service{
		{
			ID:             "svc-1",
			Name:           "Курс по Go",
			CreationDate:   time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC),
			PriceMain:      decimal.RequireFromString("100.00"),
			DiscountValue:  30,
			DiscountExpiry: &future,
			Status:         entity.ServiceStatusOn,
		},
	}, nil)

	resp := c.do(t, http.MethodGet, "/api/services", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []api.ServiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	require.Equal(t, "svc-1", got[0].ID)
	require.Equal(t, "100.00", got[0].PriceMain)
	require.Equal(t, "70.00", got[0].Price)
	require.Equal(t, 30, got[0].DiscountValue)
}

func TestHandler_ServiceNotFound(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.serviceMock.EXPECT().Service(gomock.Any(), "ghost").Return(entity.Service{}, entity.ErrNotFound)

	resp := c.do(t, http.MethodGet, "/api/services/ghost", "", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_CreateServiceRequiresToken(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	resp := c.do(t, http.MethodPost, "/api/services", "", `{"name":"Курс"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_CreateServiceRequiresPermission(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(entity.User{Name: "viewer"}, nil)

	resp := c.do(t, http.MethodPost, "/api/services", "dev", `{"name":"Курс"}`)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandler_CreateService(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(manager(), nil)
	c.serviceMock.EXPECT().CreateService(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, svc entity.Service) (entity.Service, error) {
			require.Equal(t, "Курс по Go", svc.Name)
			require.Equal(t, "100.5", svc.PriceMain.String())

			svc.ID = "svc-1"
			svc.Status = entity.ServiceStatusOn
			svc.CreationDate = time.Now()

			return svc, nil
		})

	resp := c.do(t, http.MethodPost, "/api/services", "dev",
		`{"name":"Курс по Go","priceMain":"100.50"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.ServiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "svc-1", got.ID)
	require.Equal(t, "100.50", got.PriceMain)
}

func TestHandler_CreatePayment(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(manager(), nil)
	c.serviceMock.EXPECT().CreatePayment(gomock.Any(), "buyer-7",
		[]entity.ReservationItem{{ServiceID: "svc-1", Quantity: 2}},
		entity.CommissionKeyWallet, entity.PaymentStatus("")).
		Return(entity.Payment{
			ID:            "pay-1",
			Status:        entity.PaymentStatusPending,
			BuyerID:       "buyer-7",
			CommissionKey: entity.CommissionKeyWallet,
			Snapshot: []entity.ServiceSnapshot{
				{Name: "Курс", PriceMain: decimal.RequireFromString("100.00")},
				{Name: "Курс", PriceMain: decimal.RequireFromString("100.00")},
			},
		}, nil)

	resp := c.do(t, http.MethodPost, "/api/payments", "dev",
		`{"buyerId":"buyer-7","items":[{"serviceId":"svc-1","quantity":2}],"commissionKey":"wallet"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.PaymentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "pay-1", got.ID)
	require.Equal(t, "pending", got.Status)
	require.Equal(t, "200.00", got.Total)
	require.Len(t, got.Snapshot, 2)
}

func TestHandler_CreatePaymentOutOfStock(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(manager(), nil)
	c.serviceMock.EXPECT().CreatePayment(gomock.Any(), "buyer-7", gomock.Any(),
		entity.CommissionKeyWallet, entity.PaymentStatus("")).
		Return(entity.Payment{}, entity.ErrInsufficientStock)

	resp := c.do(t, http.MethodPost, "/api/payments", "dev",
		`{"buyerId":"buyer-7","items":[{"serviceId":"svc-1","quantity":1}],"commissionKey":"wallet"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_PaymentsBadPagination(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(manager(), nil)

	resp := c.do(t, http.MethodGet, "/api/payments?page=0", "dev", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Payments(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	status := entity.PaymentStatusDone

	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(manager(), nil)
	c.serviceMock.EXPECT().Payments(gomock.Any(), entity.PaymentFilter{
		Status: &status,
		Page:   2,
		Limit:  10,
	}).Return([]entity.Payment{{ID: "pay-1", Status: entity.PaymentStatusDone}}, 11, nil)

	resp := c.do(t, http.MethodGet, "/api/payments?status=done&page=2&limit=10", "dev", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.PaymentsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, 11, got.TotalCount)
	require.Len(t, got.Payments, 1)
	require.Equal(t, "pay-1", got.Payments[0].ID)
}

func TestHandler_EditPaymentStatusLocked(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(manager(), nil)
	c.serviceMock.EXPECT().EditPayment(gomock.Any(), "pay-1", gomock.Any()).
		Return(entity.Payment{}, entity.ErrStatusLocked)

	resp := c.do(t, http.MethodPatch, "/api/payments/pay-1", "dev", `{"status":"declined"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_Checkout(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.serviceMock.EXPECT().CheckoutURL(gomock.Any(), "pay-1").
		Return("https://gateway.test/quickpay/confirm.xml?label=pay-1", nil)

	client := c.server.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := client.Get(c.server.URL + "/api/payments/pay-1/checkout")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	require.Equal(t, "https://gateway.test/quickpay/confirm.xml?label=pay-1", resp.Header.Get("Location"))
}

func webhookForm(secret, label, amount string) url.Values {
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

	return url.Values{
		"notification_type": {n.OpType},
		"operation_id":      {n.OpID},
		"amount":            {n.Amount},
		"currency":          {n.Currency},
		"datetime":          {n.Datetime},
		"sender":            {n.Sender},
		"codepro":           {n.HeldFlag},
		"label":             {n.Label},
		"sha1_hash":         {n.Digest(secret)},
	}
}

func TestHandler_GatewayWebhook(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.serviceMock.EXPECT().HandleGatewayNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n entity.GatewayNotification) error {
			require.Equal(t, "pay-1", n.Label)
			require.Equal(t, "100.00", n.Amount)
			require.NotEmpty(t, n.Signature)
			return nil
		})

	resp, err := c.server.Client().PostForm(
		c.server.URL+"/api/callbacks/gateway",
		webhookForm("s3cr3t", "pay-1", "100.00"),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_GatewayWebhookBadSignature(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.serviceMock.EXPECT().HandleGatewayNotification(gomock.Any(), gomock.Any()).
		Return(entity.ErrInvalidSignature)

	resp, err := c.server.Client().PostForm(
		c.server.URL+"/api/callbacks/gateway",
		webhookForm("wrong", "pay-1", "100.00"),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandler_GatewayWebhookAPIKey(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	router := api.NewRouter(api.NewHandler(serviceMock), api.NewMiddleware(authMock, true, "callback-key"))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	form := webhookForm("s3cr3t", "pay-1", "100.00")

	// No key: rejected before the notification is even parsed.
	resp, err := server.Client().PostForm(server.URL+"/api/callbacks/gateway", form)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	serviceMock.EXPECT().HandleGatewayNotification(gomock.Any(), gomock.Any()).Return(nil)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/callbacks/gateway", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Api-Key", "callback-key")

	resp, err = server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_GatewayWebhookUnknownPayment(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.serviceMock.EXPECT().HandleGatewayNotification(gomock.Any(), gomock.Any()).
		Return(entity.ErrNotFound)

	resp, err := c.server.Client().PostForm(
		c.server.URL+"/api/callbacks/gateway",
		webhookForm("s3cr3t", "ghost", "100.00"),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
