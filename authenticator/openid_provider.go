package authenticator

import (
	"context"
	"errors"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OpenIDVerifier implements the Verifier interface for OpenID Connect ID tokens
type OpenIDVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// OpenIDConfig holds OpenID Connect configuration
type OpenIDConfig struct {
	IssuerURL string
	ClientID  string
}

// NewOpenIDVerifier discovers the issuer and creates a verifier for tokens issued to ClientID
func NewOpenIDVerifier(ctx context.Context, cfg OpenIDConfig) (*OpenIDVerifier, error) {
	if cfg.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, err
	}

	return WrapIDTokenVerifier(provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})), nil
}

// WrapIDTokenVerifier wraps an already configured ID token verifier
func WrapIDTokenVerifier(verifier *oidc.IDTokenVerifier) *OpenIDVerifier {
	return &OpenIDVerifier{verifier: verifier}
}

// Verify validates the token signature, issuer, audience and expiry
func (v *OpenIDVerifier) Verify(ctx context.Context, rawToken string) (Claims, error) {
	if rawToken == "" {
		return nil, errors.New("empty token")
	}

	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}

	return claims, nil
}
