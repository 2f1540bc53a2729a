package util

import (
	"fmt"

	"cardtable-server/internal/rng"
)

var adjectives = []string{
	"Lucky", "Golden", "Velvet", "Midnight", "Crimson", "Emerald", "Silver", "Royal", "Wild", "Quiet",
	"Smoky", "High-Stakes", "Friendly", "Crooked", "Honest", "Dusty", "Neon", "Grand", "Lone", "Double",
}

var nouns = []string{
	"Ace", "Deuce", "Joker", "Dealer", "Shuffle", "Draw", "Cut", "Flush", "Spade", "Heart",
	"Diamond", "Club", "Table", "Deck", "Parlor", "Saloon", "Lounge", "Card", "Hand", "Pile",
}

// RandomTableName returns a name for an unnamed table, like "Lucky Ace"
func RandomTableName(generator rng.Generator) string {
	adjective := adjectives[generator.Intn(len(adjectives))]
	noun := nouns[generator.Intn(len(nouns))]

	return fmt.Sprintf("%s %s", adjective, noun)
}
