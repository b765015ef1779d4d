package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("2♣", (&Card{Rank: 2, Suit: Clubs}).String())
	a.Equal("10♢", (&Card{Rank: 10, Suit: Diamonds}).String())
	a.Equal("J♡", (&Card{Rank: Jack, Suit: Hearts}).String())
	a.Equal("Q♠", (&Card{Rank: Queen, Suit: Spades}).String())
	a.Equal("K♣", (&Card{Rank: King, Suit: Clubs}).String())
	a.Equal("A♠", (&Card{Rank: Ace, Suit: Spades}).String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True((&Card{Rank: 2, Suit: Clubs}).Equal(&Card{Rank: 2, Suit: Clubs}))
	a.False((&Card{Rank: 2, Suit: Clubs}).Equal(&Card{Rank: 2, Suit: Spades}))
	a.False((&Card{Rank: 2, Suit: Clubs}).Equal(&Card{Rank: 3, Suit: Clubs}))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: 2, Suit: Clubs}, *CardFromString("2c"))
	a.Equal(Card{Rank: 14, Suit: Spades}, *CardFromString("14s"))
	a.Equal(Card{Rank: 10, Suit: Hearts}, *CardFromString("10h"))
	a.Nil(CardFromString(""))

	a.PanicsWithValue("could not parse card: 15c", func() {
		CardFromString("15c")
	})

	a.PanicsWithValue("could not parse card: 2x", func() {
		CardFromString("2x")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("2c,13d,14s")
	a.Len(cards, 3)
	a.Equal(Card{Rank: 2, Suit: Clubs}, *cards[0])
	a.Equal(Card{Rank: 13, Suit: Diamonds}, *cards[1])
	a.Equal(Card{Rank: 14, Suit: Spades}, *cards[2])

	a.Len(CardsFromString(""), 0)
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	a.Equal("2c,13d,14s", CardsToString(CardsFromString("2c,13d,14s")))
	a.Equal("", CardToString(nil))
}
