// Package aiserver es el cliente del servicio de inferencia de llantos.
// Contrato: POST multipart {file: wav, user_id, species} => JSON
// {label: confianza} en el vocabulario del servicio (whining/relax/
// hostile/...); el renombre a nuestro vocabulario lo hace el dominio.
package aiserver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-cry-monitor/internal/platform/httpclient"
)

var ErrNotConfigured = errors.New("aiserver: url not configured")

type Client struct {
	url  string
	http *httpclient.Client
}

func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:  strings.TrimSpace(url),
		http: httpclient.New(timeout),
	}
}

// NewWithHTTP permite inyectar el cliente HTTP (tests).
func NewWithHTTP(url string, hc *httpclient.Client) *Client {
	return &Client{url: strings.TrimSpace(url), http: hc}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.url != ""
}

func (c *Client) Classify(ctx context.Context, wav []byte, species, userID string) (map[string]float64, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	out := map[string]float64{}
	err := c.http.PostMultipart(ctx, c.url,
		httpclient.FilePart{
			Field:       "file",
			Name:        "file.wav",
			ContentType: "audio/wav",
			Data:        wav,
		},
		map[string]string{
			"user_id": userID,
			"species": species,
		},
		&out,
	)
	if err != nil {
		return nil, fmt.Errorf("aiserver: %w", err)
	}
	return out, nil
}
