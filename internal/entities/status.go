package entities

import "fmt"

// Status is the lifecycle state of an order. The set is closed: values outside
// the constants below are rejected before they reach the store.
type Status string

const (
	StatusPending    Status = "pendente"
	StatusConfirmed  Status = "confirmado"
	StatusProcessing Status = "processando"
	StatusShipped    Status = "enviado"
	StatusDelivered  Status = "entregue"
	StatusCancelled  Status = "cancelado"
)

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
}

// statusTransitions is the full transition graph. Absent edges are illegal,
// terminal states have no entry value.
var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

var statusLabels = map[Status]string{
	StatusPending:    "Aguardando confirmação",
	StatusConfirmed:  "Pedido confirmado",
	StatusProcessing: "Em separação",
	StatusShipped:    "Enviado",
	StatusDelivered:  "Entregue",
	StatusCancelled:  "Cancelado",
}

func (s Status) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Label returns the human readable pt-BR label shown to operators.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0 && s.IsValid()
}

// CanTransitionTo reports whether the edge (s, target) exists in the graph.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// NextStatuses returns the valid target statuses from s. Terminal states and
// unknown statuses return an empty slice.
func (s Status) NextStatuses() []Status {
	next := statusTransitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// InvalidTransitionError names both ends of a rejected edge so the operator
// can correct the request.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}
