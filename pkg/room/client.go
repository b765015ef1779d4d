package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a player or spectator connected to a game via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// PlayerID is the client-supplied stable player id
	PlayerID string

	// PlayerName is the display name
	PlayerName string

	// GameID is the game the client is attached to
	GameID string

	send   chan interface{}
	dealer *Dealer
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, gameID, playerID, playerName string) *Client {
	return &Client{
		Conn:       conn,
		Close:      make(chan string),
		PlayerID:   playerID,
		PlayerName: playerName,
		GameID:     gameID,
		send:       make(chan interface{}, 256),
	}
}

// Send sends a message to the web client without blocking.
// Returns false if the client's buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("send buffer full, dropping message")
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and game
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.PlayerID, c.GameID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
