package checkout

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CurrencyARS        = "ARS"
	AutoReturnApproved = "approved"

	// StatusPagePath is the frontend page that handles every checkout outcome.
	StatusPagePath = "/payment_status.html"
)

var ErrInvalidPreference = errors.New("invalid preference")

type Item struct {
	Title      string
	Quantity   int
	UnitPrice  float64
	CurrencyID string
}

type BackURLs struct {
	Success string
	Failure string
	Pending string
}

// Preference is the checkout preference submitted to the payment processor.
type Preference struct {
	Items           []Item
	BackURLs        BackURLs
	AutoReturn      string
	NotificationURL string
}

// Session is the processor's answer: an opaque checkout id and the URL that starts the checkout.
type Session struct {
	ID        string
	InitPoint string
}

// NewPreference builds a single-item ARS preference. All back URLs point at the status page
// on baseURL, the origin that served the creation request.
func NewPreference(order OrderRequest, baseURL, notificationURL string) Preference {
	statusPage := strings.TrimRight(baseURL, "/") + StatusPagePath

	return Preference{
		Items: []Item{
			{
				Title:      order.Title,
				Quantity:   order.Quantity,
				UnitPrice:  order.UnitPrice,
				CurrencyID: CurrencyARS,
			},
		},
		BackURLs: BackURLs{
			Success: statusPage,
			Failure: statusPage,
			Pending: statusPage,
		},
		AutoReturn:      AutoReturnApproved,
		NotificationURL: notificationURL,
	}
}

func (p Preference) Validate() error {
	if len(p.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidPreference)
	}
	for _, item := range p.Items {
		if item.Title == "" {
			return fmt.Errorf("%w: empty title", ErrInvalidPreference)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: quantity %d", ErrInvalidPreference, item.Quantity)
		}
		if item.UnitPrice <= 0 {
			return fmt.Errorf("%w: unit price %v", ErrInvalidPreference, item.UnitPrice)
		}
	}
	if p.BackURLs.Success == StatusPagePath {
		return fmt.Errorf("%w: back urls have no origin", ErrInvalidPreference)
	}
	return nil
}
