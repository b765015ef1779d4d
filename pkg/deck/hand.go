package deck

import "strings"

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Clone returns a shallow copy of the hand
func (h Hand) Clone() Hand {
	return append(Hand{}, h...)
}

func (h Hand) String() string {
	cards := make([]string, len(h))
	for i, card := range h {
		cards[i] = card.String()
	}

	return strings.Join(cards, ",")
}
