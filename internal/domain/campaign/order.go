package campaign

type OrderStatus string

const (
	OrderActive    OrderStatus = "active"
	OrderCompleted OrderStatus = "completed"
	OrderExpired   OrderStatus = "expired"
)

// Order is a Galactic Order: a time-boxed, faction-wide objective with a
// shared reward pool. Progress is target-count based.
type Order struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	TargetCount int            `json:"target_count"`
	Progress    int            `json:"progress"`
	TurnsLeft   int            `json:"turns_left"`
	Reward      map[string]int `json:"reward"`
	Status      OrderStatus    `json:"status"`
}

// OrderOutcome is surfaced from a turn advance when the active order ends.
// The reward payload is carried on completion and on expiry alike; the GM
// layer distributes it to all factions either way.
type OrderOutcome struct {
	Order     Order          `json:"order"`
	Completed bool           `json:"completed"`
	Reward    map[string]int `json:"reward"`
}

// AdvanceOrder applies one turn to an active order. observed is the current
// value of the order's progress metric (a count against TargetCount); progress
// never moves backwards. Completion wins when the target is reached on the
// same turn the budget runs out.
func AdvanceOrder(order *Order, observed int) (OrderOutcome, bool) {
	if order == nil || order.Status != OrderActive {
		return OrderOutcome{}, false
	}
	if observed > order.Progress {
		order.Progress = observed
	}
	if order.Progress >= order.TargetCount {
		order.Status = OrderCompleted
		return OrderOutcome{Order: *order, Completed: true, Reward: order.Reward}, true
	}
	order.TurnsLeft--
	if order.TurnsLeft <= 0 {
		order.Status = OrderExpired
		return OrderOutcome{Order: *order, Completed: false, Reward: order.Reward}, true
	}
	return OrderOutcome{}, false
}
