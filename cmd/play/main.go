// Command play is a terminal client for cardtable-server. It opens (or
// joins) a table, watches it over a websocket, and maps single keystrokes
// to table actions.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"cardtable-server/pkg/deck"
	"cardtable-server/pkg/room"
	"cardtable-server/pkg/table"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var server = flag.String("server", "http://localhost:5000", "the cardtable-server base URL")
var tableUUID = flag.String("table", "", "join an existing table instead of opening a new one")
var tableName = flag.String("name", "", "the name for a newly opened table")

const colorRed = "\033[31m"
const colorReset = "\033[0m"

func main() {
	flag.Parse()

	state := resolveTable()

	wsURL := "ws" + strings.TrimPrefix(*server, "http") + "/table/" + state.UUID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		logrus.WithError(err).WithField("url", wsURL).Fatal("could not connect")
	}

	stdin := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(stdin)
	if err != nil {
		logrus.WithError(err).Fatal("could not enter raw mode")
	}
	defer func() {
		_ = term.Restore(stdin, oldState)
		fmt.Println()
	}()

	render(state)

	done := make(chan bool)
	go readLoop(conn, done)
	go inputLoop(conn)

	<-done
}

// resolveTable opens a new table, or fetches the one named by -table
func resolveTable() *table.State {
	client := &http.Client{Timeout: time.Second * 10}

	var resp *http.Response
	var err error
	if *tableUUID != "" {
		resp, err = client.Get(*server + "/table/" + *tableUUID)
	} else {
		var body bytes.Buffer
		_ = json.NewEncoder(&body).Encode(map[string]string{"name": *tableName})
		resp, err = client.Post(*server+"/table", "application/json", &body)
	}

	if err != nil {
		logrus.WithError(err).Fatal("could not reach server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logrus.WithField("statusCode", resp.StatusCode).Fatal("could not open table")
	}

	var state table.State
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		logrus.WithError(err).Fatal("could not decode table")
	}

	return &state
}

type payloadOut struct {
	Key  string          `json:"key"`
	Data json.RawMessage `json:"data"`
}

func readLoop(conn *websocket.Conn, done chan bool) {
	defer close(done)

	for {
		var msg payloadOut
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		if msg.Key != "state" {
			continue
		}

		var state table.State
		if err := json.Unmarshal(msg.Data, &state); err != nil {
			continue
		}

		render(&state)
	}
}

func inputLoop(conn *websocket.Conn) {
	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return
		}

		switch buf[0] {
		case 'd':
			_ = conn.WriteJSON(room.PayloadIn{Action: "draw"})
		case 'r':
			_ = conn.WriteJSON(room.PayloadIn{Action: "reset"})
		case 'q', 3: // 3 is ctrl-c
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "quit")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))

			// the server answers with its own close frame; don't wait forever
			time.AfterFunc(time.Second*2, func() {
				_ = conn.Close()
			})
			return
		}
	}
}

func render(state *table.State) {
	// clear screen, home cursor; raw mode needs \r\n
	fmt.Print("\033[2J\033[H")

	fmt.Printf("%s\r\n", state.Name)
	fmt.Printf("Cards in deck: %d\r\n\r\n", state.CardsLeft)

	fmt.Printf("Your cards (%d):\r\n", len(state.Drawn))
	for i, card := range state.Drawn {
		if i > 0 {
			fmt.Print(" ")
		}

		if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
			fmt.Print(colorRed + card.String() + colorReset)
		} else {
			fmt.Print(card.String())
		}
	}
	fmt.Print("\r\n\r\n")

	if state.Message != "" {
		fmt.Printf("%s\r\n\r\n", state.Message)
	}

	fmt.Print("[d]raw  [r]eshuffle  [q]uit\r\n")
}
