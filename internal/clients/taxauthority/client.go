package taxauthority

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spfbase/payments/internal/entity"
	"github.com/spfbase/payments/pkg/config"
	"github.com/spfbase/payments/pkg/transport"
)

// The tax service expects all timestamps in UTC+3 regardless of where the
// caller runs.
var mskZone = time.FixedZone("MSK", 3*60*60)

// Client talks to the self-employment tax service and turns completed
// payments into registered income receipts.
type Client struct {
	baseURL string
	inn     string
	token   string
	http    *http.Client
}

func NewClient(cfg config.Tax) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		inn:     cfg.INN,
		token:   cfg.Token,
		http: &http.Client{
			Timeout:   time.Second * 10,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type IncomeRequest struct {
	OperationTime                   string          `json:"operationTime"`
	RequestTime                     string          `json:"requestTime"`
	Services                        []IncomeService `json:"services"`
	TotalAmount                     string          `json:"totalAmount"` // "200.40", two decimal places.
	Client                          IncomeClient    `json:"client"`
	PaymentType                     string          `json:"paymentType"`
	IgnoreMaxTotalIncomeRestriction bool            `json:"ignoreMaxTotalIncomeRestriction"`
}

type IncomeService struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Quantity int             `json:"quantity"`
}

type IncomeClient struct {
	ContactPhone *string `json:"contactPhone"`
	DisplayName  *string `json:"displayName"`
	INN          *string `json:"inn"`
	IncomeType   string  `json:"incomeType"`
}

type IncomeResponse struct {
	ApprovedReceiptUUID string `json:"approvedReceiptUuid"`
}

// RegisterIncome reports the sold positions as income and returns the
// receipt id assigned by the tax service.
func (c *Client) RegisterIncome(ctx context.Context, lines []entity.FiscalLine) (string, error) {
	now := operationTime()

	services := make([]IncomeService, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		amount := line.Amount.Round(2)

		services = append(services, IncomeService{
			Name:     line.Name,
			Amount:   amount,
			Quantity: 1,
		})

		total = total.Add(amount)
	}

	reqData := IncomeRequest{
		OperationTime: now,
		RequestTime:   now,
		Services:      services,
		TotalAmount:   total.StringFixed(2),
		Client: IncomeClient{
			IncomeType: "FROM_INDIVIDUAL",
		},
		PaymentType:                     "CASH",
		IgnoreMaxTotalIncomeRestriction: false,
	}

	body, err := c.post(ctx, "/income", reqData)
	if err != nil {
		return "", err
	}

	var res IncomeResponse

	err = json.Unmarshal(body, &res)
	if err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if res.ApprovedReceiptUUID == "" {
		return "", fmt.Errorf("approvedReceiptUuid missing in response: %s", body)
	}

	return res.ApprovedReceiptUUID, nil
}

type CancelRequest struct {
	OperationTime string  `json:"operationTime"`
	RequestTime   string  `json:"requestTime"`
	Comment       string  `json:"comment"`
	ReceiptUUID   string  `json:"receiptUuid"`
	PartnerCode   *string `json:"partnerCode"`
}

// CancelReceipt voids an issued receipt with one of the reasons the tax
// service accepts verbatim.
func (c *Client) CancelReceipt(ctx context.Context, receiptID string, reason entity.ReceiptCancelReason) error {
	now := operationTime()

	reqData := CancelRequest{
		OperationTime: now,
		RequestTime:   now,
		Comment:       reason.Comment(),
		ReceiptUUID:   receiptID,
	}

	_, err := c.post(ctx, "/cancel", reqData)

	return err
}

// ReceiptPNG downloads the printable receipt image.
func (c *Client) ReceiptPNG(ctx context.Context, receiptID string) ([]byte, error) {
	url := fmt.Sprintf("%s/receipt/%s/%s/print", c.baseURL, c.inn, receiptID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d\n%s", resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) post(ctx context.Context, path string, reqData any) ([]byte, error) {
	b, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d\n%s", resp.StatusCode, body)
	}

	return body, nil
}

func operationTime() string {
	return time.Now().In(mskZone).Format(time.RFC3339)
}
