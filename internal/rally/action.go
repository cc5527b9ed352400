package rally

// Action is a kind of ball contact a player can attempt
type Action int

const (
	// ActionUnknown is the zero value; it has no attribute mapping
	ActionUnknown Action = iota
	ActionServe
	ActionReceive
	ActionSet
	ActionAttack
	ActionBlock
	ActionDig
)

// String returns the lower-case action name
func (a Action) String() string {
	switch a {
	case ActionServe:
		return "serve"
	case ActionReceive:
		return "receive"
	case ActionSet:
		return "set"
	case ActionAttack:
		return "attack"
	case ActionBlock:
		return "block"
	case ActionDig:
		return "dig"
	default:
		return "unknown"
	}
}
