package repo

import (
	"database/sql"
	"time"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
)

type Order struct {
	OrderID       string         `db:"order_id"`
	CustomerEmail string         `db:"customer_email"`
	SubtotalCents int64          `db:"subtotal_cents"`
	Status        string         `db:"status"`
	TrackingCode  sql.NullString `db:"tracking_code"`
	CreatedAt     time.Time      `db:"created_at"`
}

type HistoryRow struct {
	OrderID   string         `db:"order_id"`
	Status    string         `db:"status"`
	ChangedAt time.Time      `db:"changed_at"`
	ActorID   sql.NullString `db:"actor_id"`
	Note      sql.NullString `db:"note"`
}

type ItemRow struct {
	OrderID   string `db:"order_id"`
	ProductID string `db:"product_id"`
	Quantity  int    `db:"quantity"`
}

type ProductRow struct {
	ProductID string          `db:"product_id"`
	WeightKg  sql.NullFloat64 `db:"weight_kg"`
	LengthCm  sql.NullFloat64 `db:"length_cm"`
	HeightCm  sql.NullFloat64 `db:"height_cm"`
	WidthCm   sql.NullFloat64 `db:"width_cm"`
}

func OrderToEntity(o Order, items []ItemRow, history []HistoryRow) entities.Order {
	order := entities.Order{
		ID:            o.OrderID,
		CustomerEmail: o.CustomerEmail,
		SubtotalCents: o.SubtotalCents,
		Status:        entities.Status(o.Status),
		TrackingCode:  nullStringToString(o.TrackingCode),
		CreatedAt:     o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, entities.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			})
		}
	}

	if len(history) > 0 {
		order.History = make([]entities.HistoryEntry, 0, len(history))
		for _, h := range history {
			order.History = append(order.History, HistoryToEntity(h))
		}
	}

	return order
}

func HistoryToEntity(h HistoryRow) entities.HistoryEntry {
	return entities.HistoryEntry{
		Status:    entities.Status(h.Status),
		ChangedAt: h.ChangedAt,
		ActorID:   nullStringToString(h.ActorID),
		Note:      nullStringToString(h.Note),
	}
}

func ProductToDims(p ProductRow) entities.ProductDims {
	return entities.ProductDims{
		WeightKg: p.WeightKg.Float64,
		LengthCm: p.LengthCm.Float64,
		HeightCm: p.HeightCm.Float64,
		WidthCm:  p.WidthCm.Float64,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
