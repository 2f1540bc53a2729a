package room

import (
	"testing"

	"cardtable-server/internal/rng"
	"cardtable-server/pkg/table"

	"github.com/stretchr/testify/assert"
)

func receive(t *testing.T, client *Client) *Response {
	t.Helper()

	select {
	case msg := <-client.SendChan():
		res, ok := msg.(*Response)
		if !ok {
			t.Fatalf("expected *Response, got %T", msg)
		}
		return res
	default:
		t.Fatal("no message waiting for client")
		return nil
	}
}

func TestDealer_Draw(t *testing.T) {
	a := assert.New(t)

	tbl := table.NewWithRNG("test table", rng.NewSeeded(1))
	dealer := NewDealer(nil, tbl)

	client := NewClient(nil, "1.2.3.4", tbl)
	dealer.AddClient(client)
	a.Equal(1, len(dealer.Clients()))

	dealer.ReceivedMessage(client, &PayloadIn{Action: "draw", Context: "ctx-1"})

	res := receive(t, client)
	a.Equal("card", res.Key)
	a.Equal("ctx-1", res.Context)
	a.NotEmpty(res.Value)
	a.Equal(51, tbl.CardsLeft())
}

func TestDealer_DrawEmptyDeck(t *testing.T) {
	a := assert.New(t)

	tbl := table.NewWithRNG("test table", rng.NewSeeded(1))
	for i := 0; i < 52; i++ {
		_, err := tbl.Draw()
		a.NoError(err)
	}

	dealer := NewDealer(nil, tbl)
	client := NewClient(nil, "1.2.3.4", tbl)
	dealer.AddClient(client)

	dealer.ReceivedMessage(client, &PayloadIn{Action: "draw"})

	res := receive(t, client)
	a.Equal("noCards", res.Key)
	a.Equal("No cards left in deck!", res.Value)
}

func TestDealer_Reset(t *testing.T) {
	a := assert.New(t)

	tbl := table.NewWithRNG("test table", rng.NewSeeded(1))
	_, err := tbl.Draw()
	a.NoError(err)

	dealer := NewDealer(nil, tbl)
	client := NewClient(nil, "1.2.3.4", tbl)
	dealer.AddClient(client)

	dealer.ReceivedMessage(client, &PayloadIn{Action: "reset", Context: "ctx-2"})

	res := receive(t, client)
	a.Equal("status", res.Key)
	a.Equal("OK", res.Value)
	a.Equal("ctx-2", res.Context)
	a.Equal(52, tbl.CardsLeft())
}

func TestDealer_UnsupportedAction(t *testing.T) {
	a := assert.New(t)

	tbl := table.New("test table")
	dealer := NewDealer(nil, tbl)
	client := NewClient(nil, "1.2.3.4", tbl)
	dealer.AddClient(client)

	dealer.ReceivedMessage(client, &PayloadIn{Action: "fold"})

	res := receive(t, client)
	a.Equal("error", res.Key)
	a.Equal("unsupported action: fold", res.Value)
}

func TestDealer_RemoveClient(t *testing.T) {
	a := assert.New(t)

	tbl := table.New("test table")
	dealer := NewDealer(nil, tbl)

	c1 := NewClient(nil, "1.2.3.4", tbl)
	c2 := NewClient(nil, "5.6.7.8", tbl)
	dealer.AddClient(c1)
	dealer.AddClient(c2)

	a.False(dealer.RemoveClient(c1))
	a.True(dealer.RemoveClient(c2))
}
