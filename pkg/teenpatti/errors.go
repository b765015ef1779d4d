package teenpatti

import (
	"errors"
	"fmt"
)

// ErrGameFull is returned when a fourth player attempts to join
var ErrGameFull = errors.New("game is full")

// ErrPlayerNotFound is returned when a player is not seated in the game
var ErrPlayerNotFound = errors.New("player not found")

// ErrNotPlayersTurn is returned when a player acts out of turn
var ErrNotPlayersTurn = errors.New("it is not your turn")

// ErrRoundNotStarted is returned when a betting action happens before the deal
var ErrRoundNotStarted = errors.New("the round has not started")

// ErrRoundOver is returned when an action is attempted on a finished round
var ErrRoundOver = errors.New("the round is over")

// ErrRoundInProgress is returned when a join or deal happens mid-round
var ErrRoundInProgress = errors.New("a round is already in progress")

// ErrPlayerFolded is returned when a folded player attempts an action
var ErrPlayerFolded = errors.New("player has folded")

// ErrPlayerNotActive is returned when an inactive player attempts an action
var ErrPlayerNotActive = errors.New("player is not active")

// ErrInsufficientChips is returned when a player cannot cover a bet
var ErrInsufficientChips = errors.New("not enough chips")

// ErrShowRequiresTwoPlayers is returned when a show is attempted with more or
// fewer than two active players
var ErrShowRequiresTwoPlayers = errors.New("a show requires exactly two active players")

// ErrPlayersNotReady is returned when a round starts before everyone is ready
var ErrPlayersNotReady = errors.New("not all players are ready")

// ErrRaiseNotExact is returned when a seen player's raise is not an exact
// multiple of their stake multiplier
var ErrRaiseNotExact = errors.New("raise amount must be a multiple of your stake multiplier")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d-%d players, got %d", p.Min, p.Max, p.Got)
}

// RaiseTooLowError is returned when a raise is below the legal minimum
type RaiseTooLowError struct {
	Minimum int
	Got     int
}

func (r RaiseTooLowError) Error() string {
	return fmt.Sprintf("raise must be at least ${%d}, got ${%d}", r.Minimum, r.Got)
}
