package mux

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"cardtable-server/internal/rng"
	"cardtable-server/internal/util"
	"cardtable-server/pkg/deck"
	"cardtable-server/pkg/table"

	"github.com/gorilla/mux"
)

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.registry.List())
	}
}

type postTablePayload struct {
	Name string `json:"name"`
}

func (m *Mux) postTable() http.HandlerFunc {
	var wordChar = regexp.MustCompile(`\w`)
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Name == "" {
			pp.Name = util.RandomTableName(rng.Crypto{})
		} else if !wordChar.MatchString(pp.Name) || len(pp.Name) < 3 || len(pp.Name) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name must be 3-40 characters"))
			return
		}

		tbl, err := m.registry.Create(pp.Name)
		if err != nil {
			if errors.Is(err, table.ErrTooManyTables) {
				writeJSONError(w, http.StatusServiceUnavailable, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, tbl.State())
	}
}

func (m *Mux) getTableUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		writeJSON(w, http.StatusOK, tbl.State())
	})
}

type statusResponse struct {
	Status string `json:"status"`
}

func (m *Mux) deleteTableUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)

		m.registry.Delete(tbl.UUID)
		m.host.TableClosed(tbl.UUID)

		writeJSON(w, http.StatusOK, statusResponse{Status: "OK"})
	})
}

type drawResponse struct {
	// Card is null when the deck is empty
	Card      *deck.Card `json:"card"`
	Display   string     `json:"display,omitempty"`
	CardsLeft int        `json:"cardsLeft"`
	Message   string     `json:"message"`
}

func (m *Mux) postTableUUIDDraw() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)

		// an empty deck is an expected outcome, not an error
		card, err := tbl.Draw()
		if err != nil && !errors.Is(err, deck.ErrEmptyDeck) {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.host.StateChanged(tbl.UUID)

		state := tbl.State()
		res := drawResponse{
			Card:      card,
			CardsLeft: state.CardsLeft,
			Message:   state.Message,
		}
		if card != nil {
			res.Display = card.String()
		}

		writeJSON(w, http.StatusOK, res)
	})
}

func (m *Mux) postTableUUIDReset() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)

		tbl.Reset()
		m.host.StateChanged(tbl.UUID)

		writeJSON(w, http.StatusOK, tbl.State())
	})
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := mux.Vars(r)["uuid"]
		tbl, ok := m.registry.Get(uuid)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTableKey, tbl)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
