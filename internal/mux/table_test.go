package mux

import (
	"net/http"
	"testing"

	"cardtable-server/pkg/deck"
	"cardtable-server/pkg/table"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMux_postTable(t *testing.T) {
	a := assert.New(t)
	_, ts := testServer(t, table.RegistryOptions{})

	state := createTable(t, ts, "my table")
	a.Equal("my table", state.Name)
	a.Equal(52, state.CardsLeft)
	a.Equal(deck.Hand{}, state.Drawn)
	a.NotEmpty(state.Message)

	// empty name gets a generated one
	state = createTable(t, ts, "")
	a.NotEmpty(state.Name)

	var errResp errorResponse
	assertPost(t, ts, "/table", postTablePayload{Name: "ab"}, &errResp, http.StatusBadRequest)
	a.Equal("name must be 3-40 characters", errResp.Message)
}

func TestMux_postTable_atCapacity(t *testing.T) {
	a := assert.New(t)
	_, ts := testServer(t, table.RegistryOptions{MaxTables: 1})

	createTable(t, ts, "only table")

	var errResp errorResponse
	assertPost(t, ts, "/table", postTablePayload{Name: "one too many"}, &errResp, http.StatusServiceUnavailable)
	a.Equal("too many open tables", errResp.Message)
}

func TestMux_getTable(t *testing.T) {
	a := assert.New(t)
	_, ts := testServer(t, table.RegistryOptions{})

	var states []*table.State
	assertGet(t, ts, "/table", &states, http.StatusOK)
	a.Equal(0, len(states))

	createTable(t, ts, "table one")
	createTable(t, ts, "table two")

	assertGet(t, ts, "/table", &states, http.StatusOK)
	a.Equal(2, len(states))
}

func TestMux_getTableUUID(t *testing.T) {
	a := assert.New(t)
	_, ts := testServer(t, table.RegistryOptions{})

	created := createTable(t, ts, "my table")

	var state table.State
	assertGet(t, ts, "/table/"+created.UUID, &state, http.StatusOK)
	a.Equal(created.UUID, state.UUID)
	a.Equal(52, state.CardsLeft)

	var errResp errorResponse
	assertGet(t, ts, "/table/"+uuid.New().String(), &errResp, http.StatusNotFound)
	a.Equal(http.StatusNotFound, errResp.StatusCode)
}

func TestMux_postTableUUIDDraw(t *testing.T) {
	a := assert.New(t)
	_, ts := testServer(t, table.RegistryOptions{})

	created := createTable(t, ts, "my table")

	seen := make(map[deck.Card]bool)
	for i := 0; i < 52; i++ {
		var res drawResponse
		assertPost(t, ts, "/table/"+created.UUID+"/draw", nil, &res, http.StatusOK)
		a.NotNil(res.Card)
		a.Equal(52-i-1, res.CardsLeft)
		a.Equal(res.Card.String(), res.Display)
		a.Equal("You drew: "+res.Display, res.Message)

		a.False(seen[*res.Card], "duplicate card: %s", res.Card)
		seen[*res.Card] = true
	}

	a.Equal(52, len(seen))

	// the 53rd draw is absent, not an error
	var res drawResponse
	assertPost(t, ts, "/table/"+created.UUID+"/draw", nil, &res, http.StatusOK)
	a.Nil(res.Card)
	a.Equal("", res.Display)
	a.Equal(0, res.CardsLeft)
	a.Equal("No cards left in deck!", res.Message)
}

func TestMux_postTableUUIDReset(t *testing.T) {
	a := assert.New(t)
	_, ts := testServer(t, table.RegistryOptions{})

	created := createTable(t, ts, "my table")

	for i := 0; i < 3; i++ {
		var res drawResponse
		assertPost(t, ts, "/table/"+created.UUID+"/draw", nil, &res, http.StatusOK)
		a.NotNil(res.Card)
	}

	var state table.State
	assertPost(t, ts, "/table/"+created.UUID+"/reset", nil, &state, http.StatusOK)
	a.Equal(52, state.CardsLeft)
	a.Equal(deck.Hand{}, state.Drawn)
	a.Equal("Deck reshuffled! Cards returned to deck.", state.Message)
}

func TestMux_deleteTableUUID(t *testing.T) {
	a := assert.New(t)
	_, ts := testServer(t, table.RegistryOptions{})

	created := createTable(t, ts, "my table")

	var status statusResponse
	assertDelete(t, ts, "/table/"+created.UUID, &status, http.StatusOK)
	a.Equal("OK", status.Status)

	var errResp errorResponse
	assertGet(t, ts, "/table/"+created.UUID, &errResp, http.StatusNotFound)
}
