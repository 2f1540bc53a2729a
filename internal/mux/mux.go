package mux

import (
	"net/http"

	"cardtable-server/pkg/room"
	"cardtable-server/pkg/table"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const ctxTableKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *table.Registry
	host     *room.Host
}

// NewMux returns a new HTTP mux
func NewMux(version string, registry *table.Registry) *Mux {
	host := room.NewHost()
	host.StartShift()

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
		host:     host,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodDelete).Path("").Handler(this.deleteTableUUID())
	tr.Methods(http.MethodPost).Path("/draw").Handler(this.postTableUUIDDraw())
	tr.Methods(http.MethodPost).Path("/reset").Handler(this.postTableUUIDReset())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())

	return this
}
