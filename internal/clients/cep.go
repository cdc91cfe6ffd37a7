package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
	"github.com/gmarcondes/papelaria-fulfillment/internal/shipping"
)

// CEPClient resolves postal codes against a ViaCEP-compatible service.
type CEPClient struct {
	baseURL string
	http    *http.Client
}

func NewCEPClient(baseURL string, timeout time.Duration) *CEPClient {
	return &CEPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type cepResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

func (c *CEPClient) Lookup(ctx context.Context, cep string) (entities.Address, error) {
	digits, err := shipping.NormalizeCEP(cep)
	if err != nil {
		return entities.Address{}, err
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to build cep request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return entities.Address{}, fmt.Errorf("cep lookup failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusBadRequest {
		return entities.Address{}, entities.ErrInvalidPostalCode
	}
	if res.StatusCode != http.StatusOK {
		return entities.Address{}, fmt.Errorf("cep lookup failed: unexpected status %d", res.StatusCode)
	}

	var body cepResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entities.Address{}, fmt.Errorf("cep lookup failed: %w", err)
	}
	if body.Erro {
		return entities.Address{}, entities.ErrAddressNotFound
	}

	return entities.Address{
		CEP:          body.CEP,
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
