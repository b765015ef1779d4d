package teenpatti

import "teenpatti-server/pkg/deck"

// Player is a seated player in a Teen Patti game.
// The id is supplied by the client and must be stable across reconnects.
type Player struct {
	ID           string
	Name         string
	SeatPosition int
	Chips        int
	IsReady      bool
	HasSeen      bool
	HasFolded    bool
	IsActive     bool
	CurrentBet   int
	TotalBet     int

	hand deck.Hand

	// leaving marks a player who left mid-round; the seat is released once
	// the round settles
	leaving bool
}

func newPlayer(id, name string, seatPosition, chips int) *Player {
	return &Player{
		ID:           id,
		Name:         name,
		SeatPosition: seatPosition,
		Chips:        chips,
	}
}

// Hand returns a shallow copy of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// resetForRound re-derives every per-round field from scratch so no stale
// state can leak between rounds
func (p *Player) resetForRound(hand deck.Hand) {
	p.HasSeen = false
	p.HasFolded = false
	p.IsActive = true
	p.CurrentBet = 0
	p.TotalBet = 0
	p.hand = hand
}

// multiplier is the stake multiplier: blind players pay the nominal bet,
// seen players pay double
func (p *Player) multiplier() int {
	if p.HasSeen {
		return 2
	}

	return 1
}

// canAct returns true if the player is still contesting the pot
func (p *Player) canAct() bool {
	return p.IsActive && !p.HasFolded
}

// bet moves chips from the player into the round.
// The caller must have already verified the player can cover the amount.
func (p *Player) bet(amount int) {
	p.Chips -= amount
	p.CurrentBet = amount
	p.TotalBet += amount
}
