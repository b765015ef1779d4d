package teenpatti

import "teenpatti-server/pkg/deck"

// PlayerState is the visible state of a seated player
type PlayerState struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SeatPosition int    `json:"seatPosition"`
	Chips        int    `json:"chips"`
	IsReady      bool   `json:"isReady"`
	HasSeen      bool   `json:"hasSeen"`
	HasFolded    bool   `json:"hasFolded"`
	IsActive     bool   `json:"isActive"`
	CurrentBet   int    `json:"currentBet"`
	TotalBet     int    `json:"totalBet"`
	CardsInHand  int    `json:"cardsInHand"`
	// Hand is only populated when the viewer is entitled to see it
	Hand deck.Hand `json:"hand,omitempty"`
}

// GameState is a copy of the game suitable for broadcast. The deck is never
// included.
type GameState struct {
	ID          string         `json:"id"`
	Status      Status         `json:"status"`
	Players     []*PlayerState `json:"players"`
	CurrentTurn string         `json:"currentTurn,omitempty"`
	Pot         int            `json:"pot"`
	CurrentBet  int            `json:"currentBet"`
	MinBet      int            `json:"minBet"`
	RoundNumber int            `json:"roundNumber"`
	Winner      string         `json:"winner,omitempty"`
	LastAction  *LastAction    `json:"lastAction,omitempty"`
	RoundResult *RoundResult   `json:"roundResult,omitempty"`
}

// Snapshot returns the full game state with every hand visible. Per-recipient
// redaction is the transport's concern; use PlayerView for that.
func (g *Game) Snapshot() *GameState {
	return g.buildState(func(*Player) bool { return true })
}

// PlayerView returns the game state as the given viewer may see it: their own
// hand once they have seen it, other hands only after a finished showdown.
// An unknown id gets the spectator view.
func (g *Game) PlayerView(viewerID string) *GameState {
	return g.buildState(func(player *Player) bool {
		if g.status == StatusFinished && g.roundResult != nil && g.roundResult.WinningHand != nil && player.canAct() {
			// hands are face up after a showdown, but not after a fold-to-win
			return true
		}

		return player.ID == viewerID && player.HasSeen
	})
}

func (g *Game) buildState(showHand func(*Player) bool) *GameState {
	players := make([]*PlayerState, len(g.players))
	for i, player := range g.players {
		ps := &PlayerState{
			ID:           player.ID,
			Name:         player.Name,
			SeatPosition: player.SeatPosition,
			Chips:        player.Chips,
			IsReady:      player.IsReady,
			HasSeen:      player.HasSeen,
			HasFolded:    player.HasFolded,
			IsActive:     player.IsActive,
			CurrentBet:   player.CurrentBet,
			TotalBet:     player.TotalBet,
			CardsInHand:  len(player.hand),
		}

		if showHand(player) {
			ps.Hand = player.Hand()
		}

		players[i] = ps
	}

	return &GameState{
		ID:          g.id,
		Status:      g.status,
		Players:     players,
		CurrentTurn: g.CurrentTurn(),
		Pot:         g.pot,
		CurrentBet:  g.currentBet,
		MinBet:      g.options.MinBet,
		RoundNumber: g.roundNumber,
		Winner:      g.winnerID,
		LastAction:  g.lastAction,
		RoundResult: g.roundResult,
	}
}
