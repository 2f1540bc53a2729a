package deck

import (
	"testing"

	"cardtable-server/internal/rng"

	"github.com/stretchr/testify/assert"
)

func drawAll(t *testing.T, d *Deck) []Card {
	t.Helper()

	cards := make([]Card, 0, d.CardsLeft())
	for {
		card, err := d.Draw()
		if err == ErrEmptyDeck {
			return cards
		}

		assert.NoError(t, err)
		cards = append(cards, *card)
	}
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())
	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	seen := make(map[Card]bool)
	for _, card := range drawAll(t, d) {
		a.False(seen[card], "duplicate card: %s", card)
		seen[card] = true
	}

	// exactly the Cartesian product of suits and ranks
	a.Equal(52, len(seen))
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			a.True(seen[Card{Rank: rank, Suit: suit}])
		}
	}
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		a.NotNil(card)
		a.NoError(err)
		a.Equal(52-i-1, d.CardsLeft())
	}

	a.False(d.CanDraw(1))

	card, err := d.Draw()
	a.Nil(card)
	a.Equal(ErrEmptyDeck, err)

	// drawing from an empty deck stays empty
	card, err = d.Draw()
	a.Nil(card)
	a.Equal(ErrEmptyDeck, err)
}

func TestDeck_Reset(t *testing.T) {
	a := assert.New(t)

	d := New()

	c1, err := d.Draw()
	a.NoError(err)
	c2, err := d.Draw()
	a.NoError(err)
	c3, err := d.Draw()
	a.NoError(err)

	a.Equal(49, d.CardsLeft())
	a.NotEqual(*c1, *c2)
	a.NotEqual(*c1, *c3)
	a.NotEqual(*c2, *c3)

	d.Reset()
	a.Equal(52, d.CardsLeft())
	a.Equal(52, len(drawAll(t, d)))

	_, err = d.Draw()
	a.Equal(ErrEmptyDeck, err)
}

func TestDeck_ShuffleSeeded(t *testing.T) {
	a := assert.New(t)

	d1 := NewWithRNG(rng.NewSeeded(1))
	d2 := NewWithRNG(rng.NewSeeded(1))
	a.Equal(CardsToString(drawAll(t, d1)), CardsToString(drawAll(t, d2)))

	// a shuffled deck should not come out in build order
	d3 := NewWithRNG(rng.NewSeeded(1))
	unshuffled := &Deck{}
	unshuffled.build()
	a.NotEqual(CardsToString(unshuffled.cards), CardsToString(d3.cards))
}

// TestDeck_ShuffleDistribution is a smoke test against a broken or no-op
// shuffle. It tracks where a fixed card lands over many shuffles and runs a
// chi-square test over 13 position buckets. The threshold is generous; a
// uniform shuffle sits near 12 (the degrees of freedom).
func TestDeck_ShuffleDistribution(t *testing.T) {
	const trials = 2600
	const buckets = 13

	fixed := Card{Rank: Ace, Suit: Spades}
	generator := rng.NewSeeded(1)

	counts := make([]int, buckets)
	for i := 0; i < trials; i++ {
		d := NewWithRNG(generator)
		for pos, card := range d.cards {
			if card == fixed {
				counts[pos*buckets/52]++
				break
			}
		}
	}

	expected := float64(trials) / buckets
	chi2 := 0.0
	for _, observed := range counts {
		diff := float64(observed) - expected
		chi2 += diff * diff / expected
	}

	assert.Less(t, chi2, 50.0, "shuffle distribution is suspicious: %v", counts)
}
