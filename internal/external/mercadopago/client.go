package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"MotoYaCheckout/internal/domain/checkout"
	"MotoYaCheckout/pkg/metrics"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const maxErrorBody = 1 << 20

// Client creates checkout preferences through the Mercado Pago SDK with a fixed access token.
type Client struct {
	preferences preference.Client
}

// New builds a client. baseURL replaces the SDK's API host, so tests and sandboxes can point
// it elsewhere. The SDK's own retrying requester is replaced by httpClient.
func New(baseURL, accessToken string, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}

	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	cfg, err := config.New(accessToken, config.WithHTTPClient(&requester{base: base, http: httpClient}))
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Client{preferences: preference.NewClient(cfg)}, nil
}

// CreatePreference submits a checkout preference. Every call carries a fresh idempotency key.
func (c *Client) CreatePreference(ctx context.Context, pref checkout.Preference) (checkout.Session, error) {
	start := time.Now()
	session, err := c.createPreference(ctx, pref)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.PaymentClientDuration.WithLabelValues("create_preference", outcome).Observe(time.Since(start).Seconds())

	return session, err
}

func (c *Client) createPreference(ctx context.Context, pref checkout.Preference) (checkout.Session, error) {
	ex := &exchange{}
	resp, err := c.preferences.Create(withExchange(ctx, ex), toPreferenceRequest(pref))
	if err != nil {
		return checkout.Session{}, classify(ctx, ex, err)
	}

	if resp == nil || resp.ID == "" || resp.InitPoint == "" {
		return checkout.Session{}, fmt.Errorf("%w: missing id or init_point", ErrInvalidResponse)
	}

	return checkout.Session{
		ID:        resp.ID,
		InitPoint: resp.InitPoint,
	}, nil
}

// classify maps an SDK failure onto the package errors using what the requester saw on the wire.
func classify(ctx context.Context, ex *exchange, err error) error {
	switch {
	case ex.transportErr != nil:
		return fmt.Errorf("%w: %w", ErrUnavailable, ex.transportErr)
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %w", ErrUnavailable, ctx.Err())
	case ex.status != 0 && ex.status/100 != 2:
		return newAPIError(ex.status, ex.body)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
}

func toPreferenceRequest(pref checkout.Preference) preference.Request {
	items := make([]preference.ItemRequest, 0, len(pref.Items))
	for _, item := range pref.Items {
		items = append(items, preference.ItemRequest{
			Title:      item.Title,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			CurrencyID: item.CurrencyID,
		})
	}

	return preference.Request{
		Items: items,
		BackURLs: &preference.BackURLsRequest{
			Success: pref.BackURLs.Success,
			Failure: pref.BackURLs.Failure,
			Pending: pref.BackURLs.Pending,
		},
		AutoReturn:      pref.AutoReturn,
		NotificationURL: pref.NotificationURL,
	}
}

type errorResp struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var body errorResp
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Code = body.Error
		apiErr.Message = body.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("%d %s", status, http.StatusText(status))
	}
	return apiErr
}

// exchange records the last HTTP round trip of one SDK call.
type exchange struct {
	status       int
	body         []byte
	transportErr error
}

type exchangeKey struct{}

func withExchange(ctx context.Context, ex *exchange) context.Context {
	return context.WithValue(ctx, exchangeKey{}, ex)
}

// requester is the SDK's HTTP hook: it rewrites the API host, adds the idempotency key
// and records status and error bodies for classify.
type requester struct {
	base *url.URL
	http *http.Client
}

func (r *requester) Do(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = r.base.Scheme
	req.URL.Host = r.base.Host
	req.Host = r.base.Host
	if r.base.Path != "" && !strings.HasPrefix(req.URL.Path, r.base.Path+"/") {
		req.URL.Path = r.base.Path + req.URL.Path
	}
	if req.Header.Get("X-Idempotency-Key") == "" {
		req.Header.Set("X-Idempotency-Key", uuid.New().String())
	}

	ex, _ := req.Context().Value(exchangeKey{}).(*exchange)

	resp, err := r.http.Do(req)
	if err != nil {
		if ex != nil {
			ex.transportErr = err
		}
		return nil, err
	}
	if ex == nil {
		return resp, nil
	}

	ex.status = resp.StatusCode
	if resp.StatusCode/100 != 2 {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
		if readErr != nil {
			ex.transportErr = readErr
			return nil, readErr
		}
		ex.body = body
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}
	return resp, nil
}
