package payment

import "context"

// Intent is the gateway's handle for a created payment attempt.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway is the external payment collaborator. CreateIntent registers a
// charge attempt and returns the client secret the frontend completes it
// with; ConfirmIntent reports whether the attempt definitively succeeded.
type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*Intent, error)
	ConfirmIntent(ctx context.Context, intentID string) (bool, error)
}
