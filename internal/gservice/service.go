// Package gservice constructs typed Google API clients bound to shared OAuth2 credentials.
package gservice

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/hal9000y/gmail-calendar-mcp/internal/auth"
)

func tokenSource(ctx context.Context, tok *auth.Token) (oauth2.TokenSource, error) {
	if _, err := tok.OAuthToken(); err != nil {
		return nil, fmt.Errorf("tok.OAuthToken failed: %w", err)
	}

	return tok.TokenSource(ctx), nil
}
