package checkout

import "context"

//go:generate mockgen -source port.go -destination mock_port.go -package checkout

// PaymentClient is an authenticated handle to the payment processor.
// Any failure (auth, validation, rate limit, network) is returned as a single opaque error.
type PaymentClient interface {
	CreatePreference(ctx context.Context, pref Preference) (Session, error)
}
