package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type OrderItem struct {
	ProductID string
	Quantity  int
}

// HistoryEntry is one row of the append-only audit trail. Entries are never
// reordered or deleted; the last entry always mirrors Order.Status.
type HistoryEntry struct {
	Status    Status
	ChangedAt time.Time
	ActorID   string
	Note      string
}

type Order struct {
	ID            string
	CustomerEmail string
	SubtotalCents int64
	Status        Status
	TrackingCode  string
	CreatedAt     time.Time

	Items   []OrderItem
	History []HistoryEntry
}

// TransitionMeta carries the optional payload of a status transition.
// TrackingCode is mandatory when the target status is StatusShipped.
type TransitionMeta struct {
	TrackingCode string
	Note         string
}

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrder        = errors.New("invalid order data")
	ErrUnknownStatus       = errors.New("unknown order status")
	ErrMissingTrackingCode = errors.New("tracking code is required to mark an order as shipped")
	// ErrTransitionConflict is returned to the loser of two concurrent
	// transitions on the same order; callers may retry after a fresh read.
	ErrTransitionConflict = errors.New("order status changed concurrently")
)

// ListFilter narrows ListByStatus projections. Zero values mean "no filter".
type ListFilter struct {
	DateFrom      time.Time
	DateTo        time.Time
	CustomerEmail string
	Limit         int
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(HistoryEntry{})
}
