package room

import (
	"fmt"

	"cardtable-server/pkg/table"

	"github.com/gorilla/websocket"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer

	table      *table.Table
	remoteAddr string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, remoteAddr string, tbl *table.Table) *Client {
	return &Client{
		send:       make(chan interface{}, 256),
		Close:      make(chan string, 1),
		Conn:       conn,
		table:      tbl,
		remoteAddr: remoteAddr,
	}
}

// Send sends a message to the web client.
// Returns false if the client's send buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// Table returns the table the client is watching
func (c *Client) Table() *table.Table {
	return c.table
}

// String returns a traceable identifier for the client and table
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.remoteAddr, c.table.UUID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.dealer == nil {
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
