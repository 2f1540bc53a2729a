package room

import (
	"errors"
	"fmt"
	"sync"

	"cardtable-server/pkg/deck"
	"cardtable-server/pkg/table"

	"github.com/sirupsen/logrus"
)

// Dealer runs a single table: it accepts actions from connected clients and
// fans the resulting table state out to everyone watching.
type Dealer struct {
	host    *Host
	table   *table.Table
	clients map[*Client]bool
	lock    sync.RWMutex

	stateChanged chan bool
	close        chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(host *Host, tbl *table.Table) *Dealer {
	return &Dealer{
		host:         host,
		table:        tbl,
		clients:      make(map[*Client]bool),
		stateChanged: make(chan bool, 256),
		close:        make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	log := logrus.WithFields(logrus.Fields{
		"uuid": d.table.UUID,
		"name": d.table.Name,
	})

	log.Debug("creating dealer run loop")
	for {
		select {
		case <-d.stateChanged:
			d.sendTableState()
		case <-d.close:
			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- true
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	return nClients == 0
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// StateChanged lets the dealer know the table changed outside of a
// websocket action (for example, through the REST endpoints)
func (d *Dealer) StateChanged() {
	d.stateChanged <- true
}

// ReceivedMessage handles a table action from a connected client
func (d *Dealer) ReceivedMessage(client *Client, msg *PayloadIn) {
	switch msg.Action {
	case "draw":
		card, err := d.table.Draw()
		if err != nil {
			if errors.Is(err, deck.ErrEmptyDeck) {
				client.Send(&Response{
					Key:     "noCards",
					Value:   "No cards left in deck!",
					Context: msg.Context,
				})
			} else {
				client.Send(newErrorResponse(msg.Context, err))
			}
		} else {
			client.Send(&Response{
				Key:     "card",
				Value:   card.String(),
				Data:    card,
				Context: msg.Context,
			})
		}

		d.stateChanged <- true
	case "reset":
		d.table.Reset()
		client.Send(&Response{
			Key:     "status",
			Value:   "OK",
			Context: msg.Context,
		})

		d.stateChanged <- true
	default:
		client.Send(newErrorResponse(msg.Context, fmt.Errorf("unsupported action: %s", msg.Action)))
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendTableState() {
	state := d.table.State()
	for _, client := range d.Clients() {
		if !client.Send(&Response{Key: "state", Data: state}) {
			logrus.WithField("client", client.String()).Warn("client send buffer full, dropping state")
		}
	}
}
