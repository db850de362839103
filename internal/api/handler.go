package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/spfbase/payments/internal/entity"
)

// @title Payments API
// @version 1.0
// @description Service catalog, payment ledger and gateway webhook API
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	CreateService(ctx context.Context, svc entity.Service) (entity.Service, error)
	Service(ctx context.Context, id string) (entity.Service, error)
	Services(ctx context.Context) ([]entity.Service, error)
	EditService(ctx context.Context, id string, patch entity.ServicePatch) (entity.Service, error)
	DeleteService(ctx context.Context, id string) error

	CreatePayment(ctx context.Context, buyerID string, items []entity.ReservationItem,
		key entity.CommissionKey, status entity.PaymentStatus) (entity.Payment, error)
	Payment(ctx context.Context, id string) (entity.Payment, error)
	Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error)
	EditPayment(ctx context.Context, id string, patch entity.PaymentPatch) (entity.Payment, error)
	DeletePayment(ctx context.Context, id string) error
	CheckoutURL(ctx context.Context, id string) (string, error)
	ReceiptPNG(ctx context.Context, paymentID string) ([]byte, error)

	HandleGatewayNotification(ctx context.Context, n entity.GatewayNotification) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type ServiceResponse struct {
	ID                      string     `json:"id"`
	Name                    string     `json:"name"`
	Description             string     `json:"description,omitempty"`
	CreationDate            time.Time  `json:"creationDate"`
	PriceMain               string     `json:"priceMain"`
	Price                   string     `json:"price"`
	DiscountValue           int        `json:"discountValue"`
	DiscountExpiry          *time.Time `json:"discountExpiry,omitempty"`
	Status                  string     `json:"status"`
	Stock                   *int       `json:"stock,omitempty"`
	SellDeadline            *time.Time `json:"sellDeadline,omitempty"`
	RequiresOfferAcceptance bool       `json:"requiresOfferAcceptance"`
}

func toServiceResponse(s entity.Service, now time.Time) ServiceResponse {
	discount := 0
	if s.DiscountActive(now) {
		discount = s.DiscountValue
	}

	return ServiceResponse{
		ID:                      s.ID,
		Name:                    s.Name,
		Description:             s.Description,
		CreationDate:            s.CreationDate,
		PriceMain:               s.PriceMain.StringFixed(2),
		Price:                   s.Price(now).StringFixed(2),
		DiscountValue:           discount,
		DiscountExpiry:          s.DiscountExpiry,
		Status:                  s.Status.String(),
		Stock:                   s.Stock,
		SellDeadline:            s.SellDeadline,
		RequiresOfferAcceptance: s.RequiresOfferAcceptance,
	}
}

type CreateServiceRequest struct {
	Name                    string          `json:"name"`
	Description             string          `json:"description"`
	PriceMain               decimal.Decimal `json:"priceMain"`
	DiscountValue           int             `json:"discountValue"`
	DiscountExpiry          *time.Time      `json:"discountExpiry"`
	Status                  string          `json:"status"`
	Stock                   *int            `json:"stock"`
	SellDeadline            *time.Time      `json:"sellDeadline"`
	RequiresOfferAcceptance bool            `json:"requiresOfferAcceptance"`
}

// CreateService adds a catalog entry
// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param CreateServiceRequest body CreateServiceRequest true "New service"
// @Success 201 {object} ServiceResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to create service"
// @Router /services [post]
// @Security BearerAuth
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateServiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	svc, err := h.s.CreateService(ctx, entity.Service{
		Name:                    req.Name,
		Description:             req.Description,
		PriceMain:               req.PriceMain,
		DiscountValue:           req.DiscountValue,
		DiscountExpiry:          req.DiscountExpiry,
		Status:                  entity.ServiceStatus(req.Status),
		Stock:                   req.Stock,
		SellDeadline:            req.SellDeadline,
		RequiresOfferAcceptance: req.RequiresOfferAcceptance,
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Некорректные параметры услуги")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось создать услугу")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, toServiceResponse(svc, time.Now()))
}

// Service returns one catalog entry
// @Summary Get service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} ServiceResponse
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 500 {object} ErrorResponse "Failed to get service"
// @Router /services/{id} [get]
func (h *Handler) Service(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	svc, err := h.s.Service(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Услуга не найдена")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось получить услугу")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, toServiceResponse(svc, time.Now()))
}

// Services returns the catalog
// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} ServiceResponse
// @Failure 500 {object} ErrorResponse "Failed to get services"
// @Router /services [get]
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services, err := h.s.Services(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось получить список услуг")
		return
	}

	now := time.Now()
	res := make([]ServiceResponse, 0, len(services))

	for _, svc := range services {
		res = append(res, toServiceResponse(svc, now))
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

type EditServiceRequest struct {
	Name                    *string          `json:"name"`
	Description             *string          `json:"description"`
	PriceMain               *decimal.Decimal `json:"priceMain"`
	DiscountValue           *int             `json:"discountValue"`
	DiscountExpiry          *time.Time       `json:"discountExpiry"`
	ClearDiscountExpiry     bool             `json:"clearDiscountExpiry"`
	Status                  *string          `json:"status"`
	Stock                   *int             `json:"stock"`
	ClearStock              bool             `json:"clearStock"`
	SellDeadline            *time.Time       `json:"sellDeadline"`
	ClearSellDeadline       bool             `json:"clearSellDeadline"`
	RequiresOfferAcceptance *bool            `json:"requiresOfferAcceptance"`
}

// EditService updates catalog entry fields
// @Summary Edit service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param EditServiceRequest body EditServiceRequest true "Fields to change"
// @Success 200 {object} ServiceResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 500 {object} ErrorResponse "Failed to edit service"
// @Router /services/{id} [patch]
// @Security BearerAuth
func (h *Handler) EditService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EditServiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	patch := entity.ServicePatch{
		Name:                    req.Name,
		Description:             req.Description,
		PriceMain:               req.PriceMain,
		DiscountValue:           req.DiscountValue,
		DiscountExpiry:          req.DiscountExpiry,
		ClearDiscountExpiry:     req.ClearDiscountExpiry,
		Stock:                   req.Stock,
		ClearStock:              req.ClearStock,
		SellDeadline:            req.SellDeadline,
		ClearSellDeadline:       req.ClearSellDeadline,
		RequiresOfferAcceptance: req.RequiresOfferAcceptance,
	}

	if req.Status != nil {
		status := entity.ServiceStatus(*req.Status)
		patch.Status = &status
	}

	svc, err := h.s.EditService(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Услуга не найдена")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Некорректные параметры услуги")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось изменить услугу")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, toServiceResponse(svc, time.Now()))
}

// DeleteService removes a catalog entry
// @Summary Delete service
// @Tags services
// @Param id path string true "Service ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 500 {object} ErrorResponse "Failed to delete service"
// @Router /services/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.DeleteService(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Услуга не найдена")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось удалить услугу")
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type SnapshotLineResponse struct {
	Name          string    `json:"name"`
	CreationDate  time.Time `json:"creationDate"`
	PriceMain     string    `json:"priceMain"`
	Price         string    `json:"price"`
	DiscountValue int       `json:"discountValue"`
	ServiceID     string    `json:"serviceId,omitempty"`
}

type PaymentResponse struct {
	ID             string                 `json:"id"`
	Status         string                 `json:"status"`
	BuyerID        string                 `json:"buyerId"`
	Snapshot       []SnapshotLineResponse `json:"snapshot"`
	CommissionKey  string                 `json:"commissionKey"`
	TaxReceiptID   string                 `json:"taxReceiptId,omitempty"`
	ReceivedAmount string                 `json:"receivedAmount"`
	PayerAmount    string                 `json:"payerAmount"`
	Total          string                 `json:"total"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

func toPaymentResponse(p entity.Payment) PaymentResponse {
	snapshot := make([]SnapshotLineResponse, 0, len(p.Snapshot))

	for _, line := range p.Snapshot {
		snapshot = append(snapshot, SnapshotLineResponse{
			Name:          line.Name,
			CreationDate:  line.CreationDate,
			PriceMain:     line.PriceMain.StringFixed(2),
			Price:         line.Price().StringFixed(2),
			DiscountValue: line.DiscountValue,
			ServiceID:     line.ServiceID,
		})
	}

	return PaymentResponse{
		ID:             p.ID,
		Status:         p.Status.String(),
		BuyerID:        p.BuyerID,
		Snapshot:       snapshot,
		CommissionKey:  p.CommissionKey.String(),
		TaxReceiptID:   p.TaxReceiptID,
		ReceivedAmount: p.ReceivedAmount.StringFixed(2),
		PayerAmount:    p.PayerAmount.StringFixed(2),
		Total:          p.Total().StringFixed(2),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type ReservationItemRequest struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity"`
}

type CreatePaymentRequest struct {
	BuyerID       string                   `json:"buyerId"`
	Items         []ReservationItemRequest `json:"items"`
	CommissionKey string                   `json:"commissionKey"`
	Status        string                   `json:"status"`
}

// CreatePayment reserves stock and opens a ledger record
// @Summary Create payment
// @Tags payments
// @Accept json
// @Produce json
// @Param CreatePaymentRequest body CreatePaymentRequest true "New payment"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 409 {object} ErrorResponse "Service is not purchasable or out of stock"
// @Failure 500 {object} ErrorResponse "Failed to create payment"
// @Router /payments [post]
// @Security BearerAuth
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	items := make([]entity.ReservationItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.ReservationItem{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
		})
	}

	p, err := h.s.CreatePayment(ctx, req.BuyerID, items,
		entity.CommissionKey(req.CommissionKey), entity.PaymentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Услуга не найдена")
		case errors.Is(err, entity.ErrServiceInactive):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Услуга недоступна для покупки")
		case errors.Is(err, entity.ErrInsufficientStock):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Недостаточно мест")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Некорректные параметры платежа")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось создать платёж")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, toPaymentResponse(p))
}

// Payment returns one ledger record
// @Summary Get payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} PaymentResponse
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to get payment"
// @Router /payments/{id} [get]
// @Security BearerAuth
func (h *Handler) Payment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.s.Payment(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Платёж не найден")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось получить платёж")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, toPaymentResponse(p))
}

type PaymentsResponse struct {
	Payments   []PaymentResponse `json:"payments"`
	TotalCount int               `json:"totalCount"`
}

// Payments lists ledger records
// @Summary List payments
// @Tags payments
// @Produce json
// @Param status query string false "Filter by status"
// @Param buyerId query string false "Filter by buyer"
// @Param page query int false "Page number, from 1"
// @Param limit query int false "Page size"
// @Success 200 {object} PaymentsResponse
// @Failure 400 {object} ErrorResponse "Bad filter"
// @Failure 500 {object} ErrorResponse "Failed to get payments"
// @Router /payments [get]
// @Security BearerAuth
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var f entity.PaymentFilter

	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.PaymentStatus(v)

		err := status.Validate()
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Неизвестный статус")
			return
		}

		f.Status = &status
	}

	if v := r.URL.Query().Get("buyerId"); v != "" {
		f.BuyerID = &v
	}

	var err error

	f.Page, f.Limit, err = parsePagination(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Некорректная пагинация")
		return
	}

	payments, total, err := h.s.Payments(ctx, f)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось получить список платежей")
		return
	}

	res := PaymentsResponse{
		Payments:   make([]PaymentResponse, 0, len(payments)),
		TotalCount: total,
	}

	for _, p := range payments {
		res.Payments = append(res.Payments, toPaymentResponse(p))
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

type EditPaymentRequest struct {
	Status        *string `json:"status"`
	BuyerID       *string `json:"buyerId"`
	CommissionKey *string `json:"commissionKey"`
}

// EditPayment changes a ledger record
// @Summary Edit payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param EditPaymentRequest body EditPaymentRequest true "Fields to change"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Status change not allowed"
// @Failure 500 {object} ErrorResponse "Failed to edit payment"
// @Router /payments/{id} [patch]
// @Security BearerAuth
func (h *Handler) EditPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EditPaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	var patch entity.PaymentPatch

	if req.Status != nil {
		status := entity.PaymentStatus(*req.Status)
		patch.Status = &status
	}

	if req.CommissionKey != nil {
		key := entity.CommissionKey(*req.CommissionKey)
		patch.CommissionKey = &key
	}

	patch.BuyerID = req.BuyerID

	p, err := h.s.EditPayment(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Платёж не найден")
		case errors.Is(err, entity.ErrStatusLocked):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Недопустимая смена статуса")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Некорректные параметры платежа")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось изменить платёж")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, toPaymentResponse(p))
}

// DeletePayment removes a ledger record
// @Summary Delete payment
// @Tags payments
// @Param id path string true "Payment ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to delete payment"
// @Router /payments/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.DeletePayment(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Платёж не найден")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось удалить платёж")
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Checkout redirects the buyer to the gateway payment form
// @Summary Checkout redirect
// @Tags payments
// @Param id path string true "Payment ID"
// @Success 307 "Redirect to the gateway form"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment is not pending"
// @Failure 500 {object} ErrorResponse "Failed to build checkout URL"
// @Router /payments/{id}/checkout [get]
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checkoutURL, err := h.s.CheckoutURL(ctx, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Платёж не найден")
		case errors.Is(err, entity.ErrStatusLocked):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Платёж уже обработан")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось сформировать ссылку на оплату")
		}

		return
	}

	http.Redirect(w, r, checkoutURL, http.StatusTemporaryRedirect)
}

// ReceiptPNG returns the printable fiscal receipt
// @Summary Receipt image
// @Tags payments
// @Produce png
// @Param id path string true "Payment ID"
// @Success 200 {file} binary "PNG image"
// @Failure 404 {object} ErrorResponse "Payment or receipt not found"
// @Failure 500 {object} ErrorResponse "Failed to get receipt"
// @Router /payments/{id}/receipt.png [get]
func (h *Handler) ReceiptPNG(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	png, err := h.s.ReceiptPNG(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Чек не найден")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось получить чек")
		}

		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// GatewayWebhook receives signed transfer notifications from the gateway.
// The response body is plain text: the gateway only checks the status code
// and retries on failures.
// @Summary Gateway webhook
// @Tags callbacks
// @Accept x-www-form-urlencoded
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 400 {string} string "Malformed notification"
// @Failure 403 {string} string "Invalid hash"
// @Failure 404 {string} string "Payment not found"
// @Router /callbacks/gateway [post]
func (h *Handler) GatewayWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Malformed form", http.StatusBadRequest)
		return
	}

	n := entity.GatewayNotification{
		OpType:         r.PostFormValue("notification_type"),
		OpID:           r.PostFormValue("operation_id"),
		Amount:         r.PostFormValue("amount"),
		Currency:       r.PostFormValue("currency"),
		Datetime:       r.PostFormValue("datetime"),
		Sender:         r.PostFormValue("sender"),
		HeldFlag:       r.PostFormValue("codepro"),
		Signature:      r.PostFormValue("sha1_hash"),
		Label:          r.PostFormValue("label"),
		WithdrawAmount: r.PostFormValue("withdraw_amount"),
		UnacceptedFlag: r.PostFormValue("unaccepted"),
	}

	err = h.s.HandleGatewayNotification(ctx, n)

	switch {
	case err == nil:
	case errors.Is(err, entity.ErrInvalidSignature):
		http.Error(w, "Invalid hash", http.StatusForbidden)
		return
	case errors.Is(err, entity.ErrNotFound):
		http.Error(w, "Payment not found", http.StatusNotFound)
		return
	case errors.Is(err, entity.ErrInvalidArgument):
		http.Error(w, "Malformed notification", http.StatusBadRequest)
		return
	default:
		// The gateway retries on 5xx, which is exactly what a transient
		// storage failure needs.
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось обработать уведомление")
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	_, _ = fmt.Fprint(w, "OK")
}

func parsePagination(r *http.Request) (page, limit uint64, err error) {
	if v := r.URL.Query().Get("page"); v != "" {
		page, err = strconv.ParseUint(v, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, fmt.Errorf("%w: page %q", entity.ErrInvalidArgument, v)
		}
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.ParseUint(v, 10, 64)
		if err != nil || limit == 0 {
			return 0, 0, fmt.Errorf("%w: limit %q", entity.ErrInvalidArgument, v)
		}
	}

	return page, limit, nil
}
