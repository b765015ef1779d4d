package teenpatti

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"teenpatti-server/pkg/deck"
)

// Category represents the type of 3-card hand, weakest first
type Category int

const (
	// HighCard is three unpaired, unsuited, non-consecutive cards
	HighCard Category = iota
	// Pair is two cards of the same rank
	Pair
	// Color is three cards of one suit, non-consecutive
	Color
	// Sequence is three consecutive ranks of mixed suits
	Sequence
	// PureSequence is three consecutive ranks of one suit
	PureSequence
	// Trail is three cards of the same rank
	Trail
)

// categoryOffset dominates any within-category tiebreak, so hands from
// different categories can never compare equal
const categoryOffset = 1_000_000

// aceTwoThreeHigh ranks the A-2-3 sequence above A-K-Q within the
// sequence categories
const aceTwoThreeHigh = deck.Ace + 1

// HandResult contains the analysis of a 3-card hand
type HandResult struct {
	Category    Category `json:"category"`
	Value       int      `json:"value"`
	Description string   `json:"description"`
}

// Name returns a human-readable name for the category
func (c Category) Name() string {
	switch c {
	case Trail:
		return "Trail"
	case PureSequence:
		return "Pure Sequence"
	case Sequence:
		return "Sequence"
	case Color:
		return "Color"
	case Pair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Evaluate analyzes a 3-card hand and returns its category, a single
// comparable value, and a description.
// Category precedence: Trail > Pure Sequence > Sequence > Color > Pair > High Card.
// A-2-3 counts as a sequence and ranks above every other sequence.
func Evaluate(hand deck.Hand) (HandResult, error) {
	if len(hand) != deck.HandSize {
		return HandResult{}, fmt.Errorf("expected a %d-card hand, got %d cards", deck.HandSize, len(hand))
	}

	ranks := []int{hand[0].Rank, hand[1].Rank, hand[2].Rank}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	suited := hand[0].Suit == hand[1].Suit && hand[1].Suit == hand[2].Suit
	seqHigh := sequenceHigh(ranks)

	switch {
	case ranks[0] == ranks[1] && ranks[1] == ranks[2]:
		return result(Trail, ranks[0], "Trail of %ss", rankName(ranks[0])), nil
	case suited && seqHigh > 0:
		return result(PureSequence, seqHigh, "Pure Sequence, %s high", seqHighName(seqHigh)), nil
	case seqHigh > 0:
		return result(Sequence, seqHigh, "Sequence, %s high", seqHighName(seqHigh)), nil
	case suited:
		return result(Color, kicker(ranks), "Color, %s high", rankName(ranks[0])), nil
	case ranks[0] == ranks[1] || ranks[1] == ranks[2]:
		pairRank, kickerRank := ranks[1], ranks[0]
		if ranks[0] == ranks[1] {
			kickerRank = ranks[2]
		}
		return result(Pair, pairRank*15+kickerRank, "Pair of %ss", rankName(pairRank)), nil
	default:
		return result(HighCard, kicker(ranks), "%s High", rankName(ranks[0])), nil
	}
}

// Compare evaluates both hands and returns -1 if a is weaker, 1 if a is
// stronger, and 0 on a true tie. Compare(a, b) == -Compare(b, a).
func Compare(a, b deck.Hand) (int, error) {
	resultA, err := Evaluate(a)
	if err != nil {
		return 0, err
	}

	resultB, err := Evaluate(b)
	if err != nil {
		return 0, err
	}

	if resultA.Value > resultB.Value {
		return 1, nil
	}

	if resultA.Value < resultB.Value {
		return -1, nil
	}

	return 0, nil
}

// FindWinners returns the ids holding the strongest hand, along with that
// hand's result. More than one id is returned only on a true tie.
func FindWinners(hands map[string]deck.Hand) ([]string, HandResult, error) {
	var best HandResult
	winners := make([]string, 0, 1)

	ids := make([]string, 0, len(hands))
	for id := range hands {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		hr, err := Evaluate(hands[id])
		if err != nil {
			return nil, HandResult{}, err
		}

		if len(winners) == 0 || hr.Value > best.Value {
			best = hr
			winners = []string{id}
		} else if hr.Value == best.Value {
			winners = append(winners, id)
		}
	}

	return winners, best, nil
}

// sequenceHigh returns the high card of a 3-card run, or 0 if the ranks are
// not consecutive. Ranks must be sorted descending. A-2-3 is a valid run and
// outranks A-K-Q.
func sequenceHigh(ranks []int) int {
	if ranks[0] == deck.Ace && ranks[1] == 3 && ranks[2] == 2 {
		return aceTwoThreeHigh
	}

	if ranks[0] == ranks[1]+1 && ranks[1] == ranks[2]+1 {
		return ranks[0]
	}

	return 0
}

func kicker(ranks []int) int {
	return ranks[0]*225 + ranks[1]*15 + ranks[2]
}

func result(category Category, tiebreak int, format string, a ...interface{}) HandResult {
	return HandResult{
		Category:    category,
		Value:       int(category)*categoryOffset + tiebreak,
		Description: fmt.Sprintf(format, a...),
	}
}

func seqHighName(high int) string {
	if high == aceTwoThreeHigh {
		return "A-2-3"
	}

	return rankName(high)
}

func rankName(rank int) string {
	switch rank {
	case deck.Jack:
		return "J"
	case deck.Queen:
		return "Q"
	case deck.King:
		return "K"
	case deck.Ace:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

// describeHands renders "id: description" pairs for the game log
func describeHands(results map[string]HandResult) string {
	parts := make([]string, 0, len(results))
	for id, hr := range results {
		parts = append(parts, fmt.Sprintf("%s: %s", id, hr.Description))
	}
	sort.Strings(parts)

	return strings.Join(parts, "; ")
}
