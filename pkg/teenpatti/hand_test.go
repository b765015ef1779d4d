package teenpatti

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"teenpatti-server/pkg/deck"
)

func hand(s string) deck.Hand {
	return deck.CardsFromString(s)
}

func TestEvaluate_Categories(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		hand        string
		category    Category
		description string
	}{
		{"14c,14d,14s", Trail, "Trail of As"},
		{"2c,2d,2s", Trail, "Trail of 2s"},
		{"12h,13h,14h", PureSequence, "Pure Sequence, A high"},
		{"14s,2s,3s", PureSequence, "Pure Sequence, A-2-3 high"},
		{"4c,5c,3c", PureSequence, "Pure Sequence, 5 high"},
		{"12h,13s,14h", Sequence, "Sequence, A high"},
		{"14s,2c,3s", Sequence, "Sequence, A-2-3 high"},
		{"2d,14d,9d", Color, "Color, A high"},
		{"5h,9h,13h", Color, "Color, K high"},
		{"10c,10d,5s", Pair, "Pair of 10s"},
		{"2c,14d,2s", Pair, "Pair of 2s"},
		{"14c,10d,5s", HighCard, "A High"},
		{"2c,9d,5s", HighCard, "9 High"},
	}

	for _, test := range tests {
		hr, err := Evaluate(hand(test.hand))
		a.NoError(err, test.hand)
		a.Equal(test.category, hr.Category, test.hand)
		a.Equal(test.description, hr.Description, test.hand)
	}
}

func TestEvaluate_BadHandSize(t *testing.T) {
	a := assert.New(t)

	_, err := Evaluate(hand("2c,3c"))
	a.EqualError(err, "expected a 3-card hand, got 2 cards")

	_, err = Evaluate(hand("2c,3c,4c,5c"))
	a.EqualError(err, "expected a 3-card hand, got 4 cards")
}

func TestEvaluate_Totality(t *testing.T) {
	// every distinct 3-card combination from a full deck must evaluate cleanly
	d := deck.New()
	cards := d.Cards

	count := 0
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			for k := j + 1; k < len(cards); k++ {
				hr, err := Evaluate(deck.Hand{cards[i], cards[j], cards[k]})
				if err != nil {
					t.Fatalf("Evaluate(%s,%s,%s) returned error: %v",
						cards[i], cards[j], cards[k], err)
				}

				if hr.Value <= 0 {
					t.Fatalf("Evaluate(%s,%s,%s) returned non-positive value %d",
						cards[i], cards[j], cards[k], hr.Value)
				}

				count++
			}
		}
	}

	assert.Equal(t, 22100, count)
}

func TestCompare_Antisymmetry(t *testing.T) {
	a := assert.New(t)

	hands := []string{
		"14c,14d,14s",
		"12h,13h,14h",
		"14s,2s,3s",
		"12h,13s,14h",
		"2d,14d,9d",
		"10c,10d,5s",
		"14c,10d,5s",
		"2c,9d,5s",
	}

	for _, x := range hands {
		for _, y := range hands {
			xy, err := Compare(hand(x), hand(y))
			a.NoError(err)

			yx, err := Compare(hand(y), hand(x))
			a.NoError(err)

			a.Equal(xy, -yx, "compare(%s, %s)", x, y)
		}
	}
}

func TestCompare_CategoryPrecedence(t *testing.T) {
	a := assert.New(t)

	// strongest to weakest
	ordered := []string{
		"2c,2d,2s",    // weakest trail
		"14h,13h,12h", // A-high pure sequence
		"14s,13c,12h", // sequence
		"14d,13d,11d", // color
		"14c,14d,13s", // strongest pair
		"14c,13d,11s", // high card
	}

	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			cmp, err := Compare(hand(ordered[i]), hand(ordered[j]))
			a.NoError(err)
			a.Equal(1, cmp, "%s should beat %s", ordered[i], ordered[j])
		}
	}
}

func TestCompare_AceTwoThreeOutranksItsCategory(t *testing.T) {
	a := assert.New(t)

	// A-2-3 beats A-K-Q within the same sequence family
	cmp, err := Compare(hand("14s,2s,3s"), hand("14h,13h,12h"))
	a.NoError(err)
	a.Equal(1, cmp)

	cmp, err = Compare(hand("14s,2c,3s"), hand("14h,13s,12h"))
	a.NoError(err)
	a.Equal(1, cmp)

	// but a pure sequence still beats a mixed A-2-3
	cmp, err = Compare(hand("14s,2c,3s"), hand("4h,5h,6h"))
	a.NoError(err)
	a.Equal(-1, cmp)
}

func TestCompare_WithinCategory(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		stronger string
		weaker   string
	}{
		{"14c,14d,14s", "13c,13d,13s"},       // trail by rank
		{"10h,9h,8h", "9c,8c,7c"},            // pure sequence by high card
		{"10h,9c,8h", "9c,8d,7c"},            // sequence by high card
		{"14d,9d,5d", "13h,12h,10h"},         // color by highest card
		{"14d,9d,5d", "14h,9h,4h"},           // color by lowest card
		{"10c,10d,14s", "10h,10s,13s"},       // pair by kicker
		{"11c,11d,2s", "10h,10s,14s"},        // pair by pair rank
		{"14c,9d,5s", "13h,12d,10s"},         // high card
		{"14c,9d,5s", "14h,9h,4s"},           // high card kicker
	}

	for _, test := range tests {
		cmp, err := Compare(hand(test.stronger), hand(test.weaker))
		a.NoError(err)
		a.Equal(1, cmp, "%s should beat %s", test.stronger, test.weaker)
	}
}

func TestCompare_TrueTie(t *testing.T) {
	a := assert.New(t)

	cmp, err := Compare(hand("14c,13d,11s"), hand("14h,13s,11d"))
	a.NoError(err)
	a.Equal(0, cmp)
}

func TestFindWinners(t *testing.T) {
	a := assert.New(t)

	winners, best, err := FindWinners(map[string]deck.Hand{
		"p1": hand("14c,10d,5s"),
		"p2": hand("10c,10d,5c"),
		"p3": hand("2c,3d,4s"),
	})
	a.NoError(err)
	a.Equal([]string{"p3"}, winners)
	a.Equal(Sequence, best.Category)

	// true tie surfaces both ids
	winners, best, err = FindWinners(map[string]deck.Hand{
		"p1": hand("14c,13d,11s"),
		"p2": hand("14h,13s,11d"),
	})
	a.NoError(err)
	a.Equal([]string{"p1", "p2"}, winners)
	a.Equal(HighCard, best.Category)
}
