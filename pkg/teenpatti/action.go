package teenpatti

import (
	"encoding/json"
	"fmt"
)

// Action represents an action a player can take
type Action string

// action constants
const (
	Join  Action = "join"
	Ready Action = "ready"
	See   Action = "see"
	Call  Action = "call"
	Raise Action = "raise"
	Fold  Action = "fold"
	Show  Action = "show"
	Leave Action = "leave"
)

var allowedActions = map[Action]bool{
	Join:  true,
	Ready: true,
	See:   true,
	Call:  true,
	Raise: true,
	Fold:  true,
	Show:  true,
	Leave: true,
}

// ActionFromString returns an action for the given string
func ActionFromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Join:
		return "Join"
	case Ready:
		return "Ready"
	case See:
		return "See"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	case Fold:
		return "Fold"
	case Show:
		return "Show"
	case Leave:
		return "Leave"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case Join:
		return "joined the game"
	case Ready:
		return "is ready"
	case See:
		return "looked at their cards"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", amount)
	case Fold:
		return "folded"
	case Show:
		return "called for a show"
	case Leave:
		return "left the game"
	}

	return ""
}

// LastAction is a lightweight record of the most recent accepted action,
// kept on the game for transient log-style display
type LastAction struct {
	PlayerID string `json:"playerId"`
	Action   Action `json:"action"`
	Amount   int    `json:"amount,omitempty"`
}
