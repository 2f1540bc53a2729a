package table

import (
	"fmt"
	"sync"
	"time"

	"cardtable-server/internal/rng"
	"cardtable-server/pkg/deck"

	"github.com/google/uuid"
)

// welcomeMessage greets a newly opened table
const welcomeMessage = "Welcome to Card Table! Draw a card to begin."

// Table is a single-player card table. It owns one deck plus the pile of
// cards drawn from it. Draw and Reset mutate the deck, so all operations
// take the table lock.
type Table struct {
	UUID    string    `json:"uuid"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`

	mu         sync.Mutex
	deck       *deck.Deck
	drawn      deck.Hand
	message    string
	version    uint64
	lastActive time.Time
}

// State is a point-in-time snapshot of a table, safe to hand to encoders
// and other goroutines after the table lock is released.
type State struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	Created   time.Time `json:"created"`
	CardsLeft int       `json:"cardsLeft"`
	Drawn     deck.Hand `json:"drawn"`
	Message   string    `json:"message"`
	Version   uint64    `json:"version"`
}

// New opens a table with a freshly shuffled deck
func New(name string) *Table {
	return NewWithRNG(name, rng.Crypto{})
}

// NewWithRNG opens a table whose deck shuffles over the provided generator
func NewWithRNG(name string, generator rng.Generator) *Table {
	now := time.Now()
	return &Table{
		UUID:       uuid.New().String(),
		Name:       name,
		Created:    now,
		deck:       deck.NewWithRNG(generator),
		message:    welcomeMessage,
		lastActive: now,
	}
}

// Draw removes the top card from the deck and adds it to the drawn pile.
// When the deck is empty, a nil card and deck.ErrEmptyDeck are returned;
// the table stays usable and only the status message changes.
func (t *Table) Draw() (*deck.Card, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.touch()

	card, err := t.deck.Draw()
	if err != nil {
		t.message = "No cards left in deck!"
		return nil, err
	}

	t.drawn.AddCard(*card)
	t.message = fmt.Sprintf("You drew: %s", card)

	return card, nil
}

// Reset discards the drawn pile and reshuffles a fresh 52-card deck
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.touch()
	t.deck.Reset()
	t.drawn = nil
	t.message = "Deck reshuffled! Cards returned to deck."
}

// CardsLeft returns the number of cards remaining in the deck
func (t *Table) CardsLeft() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.deck.CardsLeft()
}

// State returns a snapshot of the table
func (t *Table) State() *State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return &State{
		UUID:      t.UUID,
		Name:      t.Name,
		Created:   t.Created,
		CardsLeft: t.deck.CardsLeft(),
		Drawn:     t.drawn.Clone(),
		Message:   t.message,
		Version:   t.version,
	}
}

// LastActive returns the time of the most recent draw or reset
func (t *Table) LastActive() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.lastActive
}

// touch must be called with the lock held
func (t *Table) touch() {
	t.version++
	t.lastActive = time.Now()
}
