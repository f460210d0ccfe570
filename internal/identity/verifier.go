// Package identity resolves opaque external credentials into a stable
// provider-side subject and profile. Nothing downstream of the auth handler
// sees these; the sync engine works with the already-resolved local user ID.
package identity

import (
	"context"

	"google.golang.org/api/idtoken"
)

// Identity is the profile asserted by the external provider.
type Identity struct {
	SubjectID   string
	Email       string
	DisplayName string
	PhotoURL    string
}

type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

// GoogleVerifier validates Google ID tokens against a client ID audience.
type GoogleVerifier struct {
	ClientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{ClientID: clientID}
}

func (g *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, g.ClientID)
	if err != nil {
		return nil, err
	}

	id := &Identity{SubjectID: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		id.DisplayName = v
	}
	if v, ok := payload.Claims["picture"].(string); ok {
		id.PhotoURL = v
	}
	return id, nil
}
