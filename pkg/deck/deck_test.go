package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())

	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])

	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *deck.Cards[51])

	// every (rank, suit) combination appears exactly once
	seen := make(map[Card]int)
	for _, card := range deck.Cards {
		seen[*card]++
	}

	assert.Equal(t, 52, len(seen))
	for card, count := range seen {
		assert.Equal(t, 1, count, "card %s appeared %d times", card.String(), count)
	}
}

func TestDeck_Shuffle(t *testing.T) {
	deck := New()
	before := deck.HashCode()

	deck.Shuffle(1)
	assert.Equal(t, int64(1), deck.GetSeed())
	assert.Equal(t, 52, deck.CardsLeft())
	assert.NotEqual(t, before, deck.HashCode())

	shuffled := deck.HashCode()
	deck.Shuffle(0)
	assert.NotEqual(t, shuffled, deck.HashCode())
	assert.Equal(t, 52, deck.CardsLeft())
}

func TestDeck_ShuffleIsDeterministicBySeed(t *testing.T) {
	d1 := New()
	d1.Shuffle(42)

	d2 := New()
	d2.Shuffle(42)

	assert.Equal(t, d1.HashCode(), d2.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}
}

func TestDeck_DealHands(t *testing.T) {
	a := assert.New(t)

	deck := New()
	deck.Shuffle(1)

	hands, err := deck.DealHands(3)
	a.NoError(err)
	a.Len(hands, 3)
	a.Equal(52-9, deck.CardsLeft())

	seen := make(map[Card]bool)
	for _, hand := range hands {
		a.Len(hand, 3)
		for _, card := range hand {
			a.False(seen[*card], "card %s dealt twice", card.String())
			seen[*card] = true
		}
	}
}

func TestDeck_DealHandsRoundRobin(t *testing.T) {
	a := assert.New(t)

	deck := New()
	hands, err := deck.DealHands(2)
	a.NoError(err)

	// unshuffled deck starts 2c,3c,4c,...; seat one gets every other card
	a.Equal("2c,4c,6c", CardsToString(hands[0]))
	a.Equal("3c,5c,7c", CardsToString(hands[1]))
}

func TestDeck_DealHandsInsufficientCards(t *testing.T) {
	a := assert.New(t)

	deck := New()
	for i := 0; i < 45; i++ {
		_, err := deck.Draw()
		a.NoError(err)
	}

	// 7 cards left; three hands need 9
	hands, err := deck.DealHands(3)
	a.Nil(hands)
	a.Equal(ErrInsufficientCards, err)
	a.Equal(7, deck.CardsLeft())

	hands, err = deck.DealHands(2)
	a.NoError(err)
	a.Len(hands, 2)
	a.Equal(1, deck.CardsLeft())
}
