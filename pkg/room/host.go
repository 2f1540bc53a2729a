package room

import (
	"github.com/sirupsen/logrus"
)

// Host is responsible for dispatching connected clients to dealers
type Host struct {
	dealers      map[string]*Dealer
	connect      chan *Client
	disconnect   chan *Client
	stateChanged chan string
	tableClosed  chan string
}

// NewHost returns a new dispatch object
func NewHost() *Host {
	return &Host{
		dealers:      make(map[string]*Dealer),
		connect:      make(chan *Client, 256),
		disconnect:   make(chan *Client, 256),
		stateChanged: make(chan string, 256),
		tableClosed:  make(chan string, 256),
	}
}

// StartShift starts the Host run loop
func (h *Host) StartShift() {
	go h.runLoop()
}

func (h *Host) runLoop() {
	for {
		select {
		case client := <-h.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
			dealer, found := h.dealers[client.table.UUID]
			if !found {
				dealer = NewDealer(h, client.table)
				dealer.StartShift()
				h.dealers[client.table.UUID] = dealer
			}

			dealer.AddClient(client)
		case client := <-h.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			dealer, found := h.dealers[client.table.UUID]
			if !found {
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()
				delete(h.dealers, client.table.UUID)
			}
		case uuid := <-h.stateChanged:
			if dealer, found := h.dealers[uuid]; found {
				dealer.StateChanged()
			}
		case uuid := <-h.tableClosed:
			dealer, found := h.dealers[uuid]
			if !found {
				continue
			}

			for _, client := range dealer.Clients() {
				// the client's write pump may already be gone; never let a
				// dead client wedge the run loop
				select {
				case client.Close <- "table closed":
				default:
				}
			}

			dealer.EndShift()
			delete(h.dealers, uuid)
		}
	}
}

// ClientConnected is called when a client connects to the server
func (h *Host) ClientConnected(client *Client) {
	h.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (h *Host) ClientDisconnected(client *Client) {
	h.disconnect <- client
}

// StateChanged is called when a table changed outside of a websocket action
func (h *Host) StateChanged(uuid string) {
	h.stateChanged <- uuid
}

// TableClosed is called when a table is removed from the registry.
// Connected clients are sent a close frame.
func (h *Host) TableClosed(uuid string) {
	h.tableClosed <- uuid
}
