package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits returns the four suits in their canonical order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Glyph returns the Unicode symbol for the suit
func (s Suit) Glyph() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		panic("unknown suit")
	}
}

// Rank represents a card rank. The value is the display label; ranks carry
// no numeric ordering here, so games that score must map ranks themselves.
type Rank string

// rank constants
const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks returns the thirteen ranks in their canonical order
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

// Label returns the display label for the rank
func (r Rank) Label() string {
	return string(r)
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	return c.Rank.Label() + c.Suit.Glyph()
}

var cardRx = regexp.MustCompile(`^(10|[A2-9JQK])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank-label><suit> where suit in [cdhs],
// e.g. "Ah" or "10s". Intended for building test fixtures.
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	var suit Suit
	switch match[2] {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{
		Rank: Rank(match[1]),
		Suit: suit,
	}
}

// CardsFromString will return a slice of cards from a string like "Ah,10s,2c"
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (Ac)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Diamonds:
		suit = "d"
	case Hearts:
		suit = "h"
	case Spades:
		suit = "s"
	}

	return card.Rank.Label() + suit
}

// CardsToString will convert a slice of cards to a string in the format of Ah,10s,2c,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
