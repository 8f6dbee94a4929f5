package auth

import (
	"context"

	"github.com/jonwraymond/credops/secret"
)

// Credentials is the part of the credential store this package uses.
// *credential.Store satisfies it.
type Credentials interface {
	Get(ctx context.Context, req secret.Requirement) (string, error)
}
