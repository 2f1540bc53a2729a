package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand(t *testing.T) {
	a := assert.New(t)

	var h Hand
	a.Nil(h.LastCard())
	a.Equal("", h.String())

	h.AddCard(CardFromString("Ah"))
	h.AddCard(CardFromString("10s"))

	a.True(h.HasCard(CardFromString("Ah")))
	a.False(h.HasCard(CardFromString("2c")))
	a.Equal(CardFromString("10s"), *h.LastCard())
	a.Equal("Ah,10s", h.String())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	h := Hand(CardsFromString("Ah,10s"))
	h2 := h.Clone()
	h2.AddCard(CardFromString("2c"))

	a.Equal(2, len(h))
	a.Equal(3, len(h2))
}
