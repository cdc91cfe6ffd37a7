package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
	"github.com/gmarcondes/papelaria-fulfillment/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	Transition(ctx context.Context, orderID string, target entities.Status, meta entities.TransitionMeta, actorID string) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetHistory(ctx context.Context, orderID string) ([]entities.HistoryEntry, error)
	NextValidStates(ctx context.Context, orderID string) (entities.Status, []entities.Status, error)
	ListByStatus(ctx context.Context, status entities.Status, filter entities.ListFilter) ([]entities.Order, error)
	AggregateCounts(ctx context.Context) (map[entities.Status]int64, error)
}

type QuoteService interface {
	Quote(ctx context.Context, cep string, items []entities.BasketItem, subtotalCents int64) (entities.QuoteResult, error)
}

type AddressResolver interface {
	Lookup(ctx context.Context, cep string) (entities.Address, error)
}

type TrackingFeed interface {
	Events(ctx context.Context, trackingCode string) ([]entities.TrackingEvent, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	quotes   QuoteService
	cep      AddressResolver
	tracking TrackingFeed
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, quotes QuoteService, cep AddressResolver, tracking TrackingFeed) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		quotes:   quotes,
		cep:      cep,
		tracking: tracking,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/pedidos", func(r chi.Router) {
		r.Get("/status/tipos", h.ListStatusTypes)
		r.Get("/status/estatisticas", h.AggregateCounts)
		r.Get("/status/{status}", h.ListByStatus)
		r.Get("/{pedido_id}", h.GetOrder)
		r.Put("/{pedido_id}/status", h.Transition)
		r.Get("/{pedido_id}/historico", h.GetHistory)
		r.Get("/{pedido_id}/proximos-status", h.NextStatuses)
	})
	r.Post("/frete/calcular", h.CalculateShipping)
	r.Get("/cep/{cep}", h.LookupCEP)
	r.Get("/rastreamento/{codigo}", h.TrackShipment)
}

// ListStatusTypes lists the closed status enumeration.
// @Summary      Listar tipos de status
// @Tags         pedidos
// @Success      200  {array}  StatusType
// @Router       /pedidos/status/tipos [get]
func (h *HTTPHandler) ListStatusTypes(w http.ResponseWriter, r *http.Request) {
	statuses := entities.AllStatuses()
	out := make([]StatusType, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StatusType{Valor: string(s), Rotulo: s.Label()})
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// GetOrder returns an order snapshot.
// @Summary      Buscar pedido
// @Tags         pedidos
// @Param        pedido_id  path  string  true  "Identificador do pedido"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /pedidos/{pedido_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "pedido_id")

	order, err := h.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		h.writeOrderError(ctx, w, err, orderID)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Transition applies a status change to an order.
// @Summary      Atualizar status do pedido
// @Tags         pedidos
// @Param        pedido_id  path  string             true  "Identificador do pedido"
// @Param        body       body  TransitionRequest  true  "Novo status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Status desconhecido, transição ilegal ou código de rastreamento ausente"
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Transição concorrente"
// @Router       /pedidos/{pedido_id}/status [put]
func (h *HTTPHandler) Transition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "pedido_id")

	var req TransitionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	meta := entities.TransitionMeta{
		TrackingCode: req.CodigoRastreamento,
		Note:         req.Observacoes,
	}
	actorID := r.Header.Get("X-Operator-ID")

	order, err := h.orders.Transition(ctx, orderID, entities.Status(req.NovoStatus), meta, actorID)
	if err != nil {
		h.writeOrderError(ctx, w, err, orderID)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetHistory returns the status audit trail of an order.
// @Summary      Histórico de status
// @Tags         pedidos
// @Param        pedido_id  path  string  true  "Identificador do pedido"
// @Success      200  {array}  HistoryEntry
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /pedidos/{pedido_id}/historico [get]
func (h *HTTPHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "pedido_id")

	history, err := h.orders.GetHistory(ctx, orderID)
	if err != nil {
		h.writeOrderError(ctx, w, err, orderID)
		return
	}

	out := make([]HistoryEntry, 0, len(history))
	for _, entry := range history {
		out = append(out, HistoryEntityToJSON(entry))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// NextStatuses reports the valid target statuses for an order.
// @Summary      Próximos status válidos
// @Tags         pedidos
// @Param        pedido_id  path  string  true  "Identificador do pedido"
// @Success      200  {object}  NextStatuses
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /pedidos/{pedido_id}/proximos-status [get]
func (h *HTTPHandler) NextStatuses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "pedido_id")

	current, next, err := h.orders.NextValidStates(ctx, orderID)
	if err != nil {
		h.writeOrderError(ctx, w, err, orderID)
		return
	}

	out := NextStatuses{StatusAtual: string(current), Proximos: make([]string, 0, len(next))}
	for _, s := range next {
		out.Proximos = append(out.Proximos, string(s))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// ListByStatus lists orders in a given status with optional filters.
// @Summary      Listar pedidos por status
// @Tags         pedidos
// @Param        status         path   string  true   "Status"
// @Param        data_inicio    query  string  false  "Data inicial (RFC3339 ou AAAA-MM-DD)"
// @Param        data_fim       query  string  false  "Data final (RFC3339 ou AAAA-MM-DD)"
// @Param        cliente_email  query  string  false  "E-mail do cliente"
// @Param        limite         query  int     false  "Limite de resultados"
// @Success      200  {array}  Order
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /pedidos/status/{status} [get]
func (h *HTTPHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := entities.Status(chi.URLParam(r, "status"))

	filter := entities.ListFilter{
		CustomerEmail: r.URL.Query().Get("cliente_email"),
	}
	if v := r.URL.Query().Get("data_inicio"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			utils.WriteError(w, "invalid data_inicio", http.StatusBadRequest)
			return
		}
		filter.DateFrom = t
	}
	if v := r.URL.Query().Get("data_fim"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			utils.WriteError(w, "invalid data_fim", http.StatusBadRequest)
			return
		}
		filter.DateTo = t
	}
	if v := r.URL.Query().Get("limite"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			utils.WriteError(w, "invalid limite", http.StatusBadRequest)
			return
		}
		filter.Limit = n
	}

	orders, err := h.orders.ListByStatus(ctx, status, filter)
	if errors.Is(err, entities.ErrUnknownStatus) {
		utils.WriteError(w, "unknown status", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// AggregateCounts returns order counts per status.
// @Summary      Estatísticas por status
// @Tags         pedidos
// @Success      200  {object}  map[string]int64
// @Router       /pedidos/status/estatisticas [get]
func (h *HTTPHandler) AggregateCounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.orders.AggregateCounts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to aggregate counts", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make(map[string]int64, len(counts))
	for status, total := range counts {
		out[string(status)] = total
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// CalculateShipping quotes shipping for a destination and basket.
// @Summary      Calcular frete
// @Tags         frete
// @Param        body  body  QuoteRequest  true  "Destino e itens"
// @Success      200  {object}  QuoteResponse
// @Failure      400  {object}  utils.ErrorResponse "CEP inválido"
// @Router       /frete/calcular [post]
func (h *HTTPHandler) CalculateShipping(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req QuoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.quotes.Quote(ctx, req.CEPDestino, QuoteItemsToBasket(req.Produtos), req.ValorPedido)
	if errors.Is(err, entities.ErrInvalidPostalCode) {
		utils.WriteError(w, "invalid destination postal code", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to quote shipping", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, QuoteResultToJSON(result), http.StatusOK)
}

// LookupCEP resolves a postal code to an address.
// @Summary      Consultar CEP
// @Tags         frete
// @Param        cep  path  string  true  "CEP"
// @Success      200  {object}  Address
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /cep/{cep} [get]
func (h *HTTPHandler) LookupCEP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cep := chi.URLParam(r, "cep")

	address, err := h.cep.Lookup(ctx, cep)
	if errors.Is(err, entities.ErrInvalidPostalCode) {
		utils.WriteError(w, "invalid postal code", http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrAddressNotFound) {
		utils.WriteError(w, "address not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to lookup cep", slog.Any("error", err))
		utils.WriteError(w, "address service unavailable", http.StatusBadGateway)
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusOK)
}

// TrackShipment returns the carrier event feed for a tracking code.
// @Summary      Rastrear objeto
// @Tags         frete
// @Param        codigo  path  string  true  "Código de rastreamento"
// @Success      200  {array}  TrackingEvent
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /rastreamento/{codigo} [get]
func (h *HTTPHandler) TrackShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "codigo")

	events, err := h.tracking.Events(ctx, code)
	if errors.Is(err, entities.ErrTrackingNotFound) {
		utils.WriteError(w, "tracking code not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to fetch tracking events", slog.Any("error", err))
		utils.WriteError(w, "tracking service unavailable", http.StatusBadGateway)
		return
	}
	utils.WriteJSON(w, TrackingEventsToJSON(events), http.StatusOK)
}

// writeOrderError maps service errors for order-scoped endpoints. Caller
// mistakes keep their details; conflicts are distinguishable so the operator
// can retry from a fresh read.
func (h *HTTPHandler) writeOrderError(ctx context.Context, w http.ResponseWriter, err error, orderID string) {
	var invalid *entities.InvalidTransitionError
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.As(err, &invalid):
		utils.WriteError(w, invalid.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownStatus):
		utils.WriteError(w, "unknown status", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingTrackingCode):
		utils.WriteError(w, "codigo_rastreamento is required for status enviado", http.StatusBadRequest)
	case errors.Is(err, entities.ErrTransitionConflict):
		utils.WriteError(w, "order status changed concurrently, retry with fresh status", http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "order operation failed", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
