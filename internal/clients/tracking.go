package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
)

// TrackingClient reads the carrier tracking-event feed for a tracking code.
type TrackingClient struct {
	baseURL string
	http    *http.Client
}

func NewTrackingClient(baseURL string, timeout time.Duration) *TrackingClient {
	return &TrackingClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type trackingResponse struct {
	Eventos []struct {
		Data      time.Time `json:"data"`
		Local     string    `json:"local"`
		Descricao string    `json:"descricao"`
	} `json:"eventos"`
}

func (c *TrackingClient) Events(ctx context.Context, trackingCode string) ([]entities.TrackingEvent, error) {
	url := fmt.Sprintf("%s/rastreio/%s", c.baseURL, trackingCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tracking request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tracking lookup failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, entities.ErrTrackingNotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tracking lookup failed: unexpected status %d", res.StatusCode)
	}

	var body trackingResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("tracking lookup failed: %w", err)
	}

	events := make([]entities.TrackingEvent, 0, len(body.Eventos))
	for _, ev := range body.Eventos {
		events = append(events, entities.TrackingEvent{
			OccurredAt:  ev.Data,
			Location:    ev.Local,
			Description: ev.Descricao,
		})
	}
	return events, nil
}
