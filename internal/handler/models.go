package handler

import (
	"time"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
)

// TransitionRequest is the body of PUT /pedidos/{pedido_id}/status.
type TransitionRequest struct {
	NovoStatus         string `json:"novo_status" validate:"required"`
	CodigoRastreamento string `json:"codigo_rastreamento,omitempty"`
	Observacoes        string `json:"observacoes,omitempty"`
}

// StatusType pairs a status value with its human label.
type StatusType struct {
	Valor  string `json:"valor"`
	Rotulo string `json:"rotulo"`
}

type HistoryEntry struct {
	Status      string    `json:"status"`
	Rotulo      string    `json:"rotulo"`
	Data        time.Time `json:"data"`
	Responsavel string    `json:"responsavel,omitempty"`
	Observacoes string    `json:"observacoes,omitempty"`
}

type OrderItem struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade int    `json:"quantidade"`
}

type Order struct {
	PedidoID           string         `json:"pedido_id"`
	ClienteEmail       string         `json:"cliente_email,omitempty"`
	ValorSubtotal      int64          `json:"valor_subtotal"`
	Status             string         `json:"status"`
	RotuloStatus       string         `json:"rotulo_status"`
	CodigoRastreamento string         `json:"codigo_rastreamento,omitempty"`
	CriadoEm           time.Time      `json:"criado_em"`
	Itens              []OrderItem    `json:"itens,omitempty"`
	Historico          []HistoryEntry `json:"historico,omitempty"`
}

type NextStatuses struct {
	StatusAtual string   `json:"status_atual"`
	Proximos    []string `json:"proximos"`
}

// QuoteRequest is the body of POST /frete/calcular. Monetary values are in
// integer centavos.
type QuoteRequest struct {
	CEPDestino  string      `json:"cep_destino" validate:"required"`
	Produtos    []QuoteItem `json:"produtos" validate:"required,min=1,dive"`
	ValorPedido int64       `json:"valor_pedido" validate:"gte=0"`
}

type QuoteItem struct {
	ProdutoID  string `json:"produto_id" validate:"required"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
}

type Package struct {
	PesoKg        float64 `json:"peso_kg"`
	ComprimentoCm float64 `json:"comprimento_cm"`
	AlturaCm      float64 `json:"altura_cm"`
	LarguraCm     float64 `json:"largura_cm"`
}

type ServiceQuote struct {
	Servico       string `json:"servico"`
	ValorCentavos int64  `json:"valor_centavos"`
	PrazoMinDias  int    `json:"prazo_min_dias"`
	PrazoMaxDias  int    `json:"prazo_max_dias"`
}

type QuoteResponse struct {
	Zona        string         `json:"zona"`
	FreteGratis bool           `json:"frete_gratis"`
	Pacote      Package        `json:"pacote"`
	Servicos    []ServiceQuote `json:"servicos"`
}

type Address struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
	UF         string `json:"uf"`
}

type TrackingEvent struct {
	Data      time.Time `json:"data"`
	Local     string    `json:"local"`
	Descricao string    `json:"descricao"`
}

// CheckoutOrder is the Kafka checkout event creating a new order.
type CheckoutOrder struct {
	PedidoID      string      `json:"pedido_id" validate:"required"`
	ClienteEmail  string      `json:"cliente_email" validate:"required,email"`
	ValorSubtotal int64       `json:"valor_subtotal" validate:"gte=0"`
	CriadoEm      time.Time   `json:"criado_em"`
	Itens         []QuoteItem `json:"itens" validate:"required,min=1,dive"`
}

func OrderEntityToJSON(o entities.Order) Order {
	out := Order{
		PedidoID:           o.ID,
		ClienteEmail:       o.CustomerEmail,
		ValorSubtotal:      o.SubtotalCents,
		Status:             string(o.Status),
		RotuloStatus:       o.Status.Label(),
		CodigoRastreamento: o.TrackingCode,
		CriadoEm:           o.CreatedAt,
	}
	for _, it := range o.Items {
		out.Itens = append(out.Itens, OrderItem{ProdutoID: it.ProductID, Quantidade: it.Quantity})
	}
	for _, h := range o.History {
		out.Historico = append(out.Historico, HistoryEntityToJSON(h))
	}
	return out
}

func HistoryEntityToJSON(h entities.HistoryEntry) HistoryEntry {
	return HistoryEntry{
		Status:      string(h.Status),
		Rotulo:      h.Status.Label(),
		Data:        h.ChangedAt,
		Responsavel: h.ActorID,
		Observacoes: h.Note,
	}
}

func QuoteResultToJSON(r entities.QuoteResult) QuoteResponse {
	out := QuoteResponse{
		Zona:        string(r.Zone),
		FreteGratis: r.FreeShipping,
		Pacote: Package{
			PesoKg:        r.Package.WeightKg,
			ComprimentoCm: r.Package.LengthCm,
			AlturaCm:      r.Package.HeightCm,
			LarguraCm:     r.Package.WidthCm,
		},
		Servicos: make([]ServiceQuote, 0, len(r.Quotes)),
	}
	for _, q := range r.Quotes {
		out.Servicos = append(out.Servicos, ServiceQuote{
			Servico:       string(q.Tier),
			ValorCentavos: q.PriceCents,
			PrazoMinDias:  q.Lead.MinDays,
			PrazoMaxDias:  q.Lead.MaxDays,
		})
	}
	return out
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		CEP:        a.CEP,
		Logradouro: a.Street,
		Bairro:     a.Neighborhood,
		Cidade:     a.City,
		UF:         a.State,
	}
}

func TrackingEventsToJSON(events []entities.TrackingEvent) []TrackingEvent {
	out := make([]TrackingEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, TrackingEvent{Data: ev.OccurredAt, Local: ev.Location, Descricao: ev.Description})
	}
	return out
}

func CheckoutOrderToEntity(o CheckoutOrder) entities.Order {
	order := entities.Order{
		ID:            o.PedidoID,
		CustomerEmail: o.ClienteEmail,
		SubtotalCents: o.ValorSubtotal,
		CreatedAt:     o.CriadoEm,
	}
	for _, it := range o.Itens {
		order.Items = append(order.Items, entities.OrderItem{ProductID: it.ProdutoID, Quantity: it.Quantidade})
	}
	return order
}

func QuoteItemsToBasket(items []QuoteItem) []entities.BasketItem {
	basket := make([]entities.BasketItem, 0, len(items))
	for _, it := range items {
		basket = append(basket, entities.BasketItem{ProductID: it.ProdutoID, Quantity: it.Quantidade})
	}
	return basket
}
