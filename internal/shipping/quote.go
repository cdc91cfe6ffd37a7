package shipping

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
	"golang.org/x/sync/errgroup"
)

// RateProvider is the external carrier integration. Implementations are
// expected to fail (timeouts, malformed responses, unsupported tiers); the
// engine absorbs every failure into the local fallback formula.
type RateProvider interface {
	GetRate(ctx context.Context, zone entities.Zone, pkg entities.Package, tier entities.ServiceTier) (entities.Quote, error)
}

// SettingsRepo reads the persisted name/value configuration rows.
type SettingsRepo interface {
	GetAll(ctx context.Context) (map[string]string, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// Engine orchestrates zone resolution, package aggregation and rate lookup
// into per-tier quotes. For a syntactically valid destination it always
// returns a priced answer; carrier outages are indistinguishable from live
// quotes at the boundary.
type Engine struct {
	logger      *slog.Logger
	provider    RateProvider
	aggregator  *Aggregator
	settings    SettingsRepo
	cache       Cache
	rateTimeout time.Duration
}

func NewEngine(
	logger *slog.Logger,
	provider RateProvider,
	aggregator *Aggregator,
	settings SettingsRepo,
	cache Cache,
	rateTimeout time.Duration,
) *Engine {
	return &Engine{
		logger:      logger.With(slog.String("service", "shipping")),
		provider:    provider,
		aggregator:  aggregator,
		settings:    settings,
		cache:       cache,
		rateTimeout: rateTimeout,
	}
}

func (e *Engine) Quote(ctx context.Context, cep string, items []entities.BasketItem, subtotalCents int64) (entities.QuoteResult, error) {
	zone, err := ResolveZone(cep)
	if err != nil {
		return entities.QuoteResult{}, err
	}

	key := quoteCacheKey(cep, items, subtotalCents)
	if data, ok := e.cache.Get(key); ok {
		var cached entities.QuoteResult
		if err := cached.Unmarshal(data); err == nil {
			return cached, nil
		}
		// Corrupted entry, recompute.
	}

	table := e.loadPricingTable(ctx)

	var result entities.QuoteResult
	if subtotalCents >= table.FreeShippingThresholdCents() {
		result = e.freeShippingResult(ctx, zone, items, table)
	} else {
		result = e.pricedResult(ctx, zone, items, table)
	}

	if data, err := result.Marshal(); err == nil {
		e.cache.Set(key, data)
	}
	return result, nil
}

// freeShippingResult returns both tiers at zero price with the engine's own
// lead times. No carrier call is made.
func (e *Engine) freeShippingResult(ctx context.Context, zone entities.Zone, items []entities.BasketItem, table *PricingTable) entities.QuoteResult {
	quotes := make([]entities.Quote, 0, 2)
	for _, tier := range entities.ServiceTiers() {
		quotes = append(quotes, entities.Quote{
			Tier:       tier,
			PriceCents: 0,
			Lead:       table.Lead(zone, tier),
		})
		quotesTotal.WithLabelValues(string(tier), "free").Inc()
	}
	return entities.QuoteResult{
		Zone:         zone,
		Package:      e.aggregator.Aggregate(ctx, items),
		Quotes:       quotes,
		FreeShipping: true,
	}
}

func (e *Engine) pricedResult(ctx context.Context, zone entities.Zone, items []entities.BasketItem, table *PricingTable) entities.QuoteResult {
	pkg := e.aggregator.Aggregate(ctx, items)

	tiers := entities.ServiceTiers()
	quotes := make([]entities.Quote, len(tiers))

	// One carrier call per tier, in parallel. Failures never propagate: each
	// tier independently degrades to the fallback formula.
	var g errgroup.Group
	for i, tier := range tiers {
		i, tier := i, tier
		g.Go(func() error {
			quotes[i] = e.tierQuote(ctx, zone, pkg, tier, table)
			return nil
		})
	}
	g.Wait()

	return entities.QuoteResult{Zone: zone, Package: pkg, Quotes: quotes}
}

func (e *Engine) tierQuote(ctx context.Context, zone entities.Zone, pkg entities.Package, tier entities.ServiceTier, table *PricingTable) entities.Quote {
	rctx, cancel := context.WithTimeout(ctx, e.rateTimeout)
	defer cancel()

	quote, err := e.provider.GetRate(rctx, zone, pkg, tier)
	if err == nil && quote.PriceCents >= 0 && quote.Lead.MinDays > 0 {
		quote.Tier = tier
		quotesTotal.WithLabelValues(string(tier), "carrier").Inc()
		return quote
	}

	if err != nil {
		carrierErrors.Inc()
		e.logger.WarnContext(ctx, "carrier rate lookup failed, using fallback pricing",
			slog.String("zone", string(zone)), slog.String("tier", string(tier)), slog.Any("error", err))
	}

	quotesTotal.WithLabelValues(string(tier), "fallback").Inc()
	return entities.Quote{
		Tier:       tier,
		PriceCents: table.FallbackPrice(zone, tier, pkg.WeightKg),
		Lead:       table.Lead(zone, tier),
	}
}

// loadPricingTable snapshots persisted overrides over the compiled defaults.
// A broken settings store degrades to defaults; configuration changes apply
// to subsequent calls only.
func (e *Engine) loadPricingTable(ctx context.Context) *PricingTable {
	values, err := e.settings.GetAll(ctx)
	if err != nil {
		e.logger.WarnContext(ctx, "failed to load shipping settings, using defaults", slog.Any("error", err))
		return DefaultPricingTable()
	}
	return PricingTableFromSettings(values)
}

func quoteCacheKey(cep string, items []entities.BasketItem, subtotalCents int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "frete:%s:%d", cep, subtotalCents)
	for _, item := range items {
		fmt.Fprintf(&b, ":%s x%d", item.ProductID, item.Quantity)
	}
	return b.String()
}
