package shipping

import (
	"context"
	"log/slog"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
)

// Carrier-mandated minimums. A package below these is rejected at the counter,
// so aggregation clamps every dimension up to them.
const (
	MinWeightKg = 0.3
	MinLengthCm = 16
	MinHeightCm = 2
	MinWidthCm  = 11
)

// Per-unit defaults used when the catalog has no data for a product. Sized for
// the typical stationery item (a boxed pen set).
const (
	defaultUnitWeightKg = 0.3
	defaultUnitLengthCm = 16
	defaultUnitHeightCm = 2
	defaultUnitWidthCm  = 11
)

// Catalog is the external collaborator that knows product dimensions.
type Catalog interface {
	ProductDimensions(ctx context.Context, productID string) (entities.ProductDims, error)
}

// Aggregator folds a basket into one shippable package. It never fails: a
// missing or broken catalog degrades to default per-unit attributes.
type Aggregator struct {
	logger  *slog.Logger
	catalog Catalog
}

func NewAggregator(logger *slog.Logger, catalog Catalog) *Aggregator {
	return &Aggregator{
		logger:  logger.With(slog.String("component", "package_aggregator")),
		catalog: catalog,
	}
}

// Aggregate computes total weight as the sum of unit weight times quantity and
// takes the largest single-item measure per axis; items are boxed together,
// not stacked by volume.
func (a *Aggregator) Aggregate(ctx context.Context, items []entities.BasketItem) entities.Package {
	var pkg entities.Package

	for _, item := range items {
		dims, err := a.catalog.ProductDimensions(ctx, item.ProductID)
		if err != nil {
			a.logger.WarnContext(ctx, "catalog lookup failed, using default dimensions",
				slog.String("product_id", item.ProductID), slog.Any("error", err))
			dims = entities.ProductDims{
				WeightKg: defaultUnitWeightKg,
				LengthCm: defaultUnitLengthCm,
				HeightCm: defaultUnitHeightCm,
				WidthCm:  defaultUnitWidthCm,
			}
		}

		pkg.WeightKg += dims.WeightKg * float64(item.Quantity)
		pkg.LengthCm = max(pkg.LengthCm, dims.LengthCm)
		pkg.HeightCm = max(pkg.HeightCm, dims.HeightCm)
		pkg.WidthCm = max(pkg.WidthCm, dims.WidthCm)
	}

	pkg.WeightKg = max(pkg.WeightKg, MinWeightKg)
	pkg.LengthCm = max(pkg.LengthCm, MinLengthCm)
	pkg.HeightCm = max(pkg.HeightCm, MinHeightCm)
	pkg.WidthCm = max(pkg.WidthCm, MinWidthCm)

	return pkg
}
