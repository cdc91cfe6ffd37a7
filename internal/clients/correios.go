package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
)

// CarrierClient is the HTTP implementation of the carrier rate collaborator.
// Every failure mode (timeout, bad status, malformed body) is reported as
// entities.ErrCarrierUnavailable so the quote engine can fall back without
// inspecting transport details.
type CarrierClient struct {
	baseURL string
	http    *http.Client
}

func NewCarrierClient(baseURL string, timeout time.Duration) *CarrierClient {
	return &CarrierClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type rateRequest struct {
	Zona          string  `json:"zona"`
	Servico       string  `json:"servico"`
	PesoKg        float64 `json:"peso_kg"`
	ComprimentoCm float64 `json:"comprimento_cm"`
	AlturaCm      float64 `json:"altura_cm"`
	LarguraCm     float64 `json:"largura_cm"`
}

type rateResponse struct {
	ValorCentavos int64 `json:"valor_centavos"`
	PrazoMinDias  int   `json:"prazo_min_dias"`
	PrazoMaxDias  int   `json:"prazo_max_dias"`
}

func (c *CarrierClient) GetRate(ctx context.Context, zone entities.Zone, pkg entities.Package, tier entities.ServiceTier) (entities.Quote, error) {
	body, err := json.Marshal(rateRequest{
		Zona:          string(zone),
		Servico:       string(tier),
		PesoKg:        pkg.WeightKg,
		ComprimentoCm: pkg.LengthCm,
		AlturaCm:      pkg.HeightCm,
		LarguraCm:     pkg.WidthCm,
	})
	if err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %w", entities.ErrCarrierUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/frete", bytes.NewReader(body))
	if err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %w", entities.ErrCarrierUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %w", entities.ErrCarrierUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return entities.Quote{}, fmt.Errorf("%w: unexpected status %d", entities.ErrCarrierUnavailable, res.StatusCode)
	}

	var rate rateResponse
	if err := json.NewDecoder(res.Body).Decode(&rate); err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %w", entities.ErrCarrierUnavailable, err)
	}
	if rate.ValorCentavos < 0 || rate.PrazoMinDias <= 0 || rate.PrazoMaxDias < rate.PrazoMinDias {
		return entities.Quote{}, fmt.Errorf("%w: malformed rate response", entities.ErrCarrierUnavailable)
	}

	return entities.Quote{
		Tier:       tier,
		PriceCents: rate.ValorCentavos,
		Lead:       entities.LeadTime{MinDays: rate.PrazoMinDias, MaxDays: rate.PrazoMaxDias},
	}, nil
}
