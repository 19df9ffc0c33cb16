// Package tool implements the MCP tools and resources exposed by the server.
package tool

import (
	"encoding/base64"
	"fmt"

	"google.golang.org/api/gmail/v1"
)

const (
	fallbackSubject = "No Subject"
	fallbackSender  = "Unknown"
)

func headerValue(payload *gmail.MessagePart, name, fallback string) string {
	if payload == nil {
		return fallback
	}

	for _, h := range payload.Headers {
		if h.Name == name {
			return h.Value
		}
	}

	return fallback
}

func decodeBody(data string) (string, error) {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return "", fmt.Errorf("base64 decode failed: %w", err)
		}
	}

	return string(decoded), nil
}

func normalizeMaxResults(maxResults, def int64) int64 {
	if maxResults == 0 {
		return def
	}
	if maxResults > 50 {
		return 50
	}
	return maxResults
}
