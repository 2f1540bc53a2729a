package deck

import (
	"errors"

	"cardtable-server/internal/rng"
)

// ErrEmptyDeck is an error when Draw() is attempted and there are no more cards.
// An empty deck is an expected end state, so callers should treat this as an
// absent result rather than a failure.
var ErrEmptyDeck = errors.New("no cards left in the deck")

// Deck represents a shuffled playing deck.
// A Deck is not safe for concurrent use; callers like table.Table serialize
// access with their own lock.
type Deck struct {
	cards []Card
	rng   rng.Generator
}

// New returns a new, shuffled 52-card deck using crypto-backed randomness
func New() *Deck {
	return NewWithRNG(rng.Crypto{})
}

// NewWithRNG returns a new, shuffled deck using the provided generator.
// Pass an rng.Seeded for deterministic behavior in tests.
func NewWithRNG(generator rng.Generator) *Deck {
	d := &Deck{rng: generator}
	d.build()
	d.shuffle()

	return d
}

func (d *Deck) build() {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.cards = cards
}

// shuffle performs a Fisher-Yates shuffle over the generator
func (d *Deck) shuffle() {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw will draw the top card, transferring it to the caller.
// If there are no more cards, an ErrEmptyDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.cards)
	if n == 0 {
		return nil, ErrEmptyDeck
	}

	card := d.cards[n-1]
	d.cards = d.cards[:n-1]

	return &card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards)
}

// Reset discards any remaining cards and rebuilds a fresh, shuffled 52-card
// deck. Cards drawn previously are not returned; they are simply recreated.
func (d *Deck) Reset() {
	d.build()
	d.shuffle()
}
