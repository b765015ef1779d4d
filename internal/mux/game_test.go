package mux

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"teenpatti-server/pkg/room"
	"teenpatti-server/pkg/teenpatti"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostGame(t *testing.T) {
	ts := testServer(t, room.Options{})

	var created createGameResponse
	assertPost(t, ts, "/game", &created, 201)
	assert.Equal(t, gameIDLength, len(created.ID))

	var state teenpatti.GameState
	assertGet(t, ts, "/game/"+created.ID, &state, 200)
	assert.Equal(t, created.ID, state.ID)
	assert.Equal(t, teenpatti.StatusWaiting, state.Status)
}

func TestGetGameID_notFound(t *testing.T) {
	ts := testServer(t, room.Options{})
	assertGet(t, ts, "/game/nope1234", nil, 404)
}

func TestGetGameIDWS_requiresPlayerID(t *testing.T) {
	ts := testServer(t, room.Options{})

	var errResp errorResponse
	assertGet(t, ts, "/game/abcd1234/ws", &errResp, 400)
	assert.Equal(t, "playerId is required", errResp.Message)
}

func TestGetGameIDWS(t *testing.T) {
	ts := testServer(t, room.Options{})

	conn := dialWS(t, ts.URL, "g-1", "p1", "Alice")
	defer conn.Close()

	// connecting creates the game and sends the initial state
	msg := readUntilKey(t, conn, "game")
	var state teenpatti.GameState
	require.NoError(t, json.Unmarshal(msg.Data, &state))
	assert.Equal(t, "g-1", state.ID)

	sendPayload(t, conn, &room.PayloadIn{Action: "join", Context: "c1"})
	msg = readUntilKey(t, conn, "status")
	assert.Equal(t, "OK", msg.Value)
	assert.Equal(t, "c1", msg.Context)

	var snapshot teenpatti.GameState
	assertGet(t, ts, "/game/g-1", &snapshot, 200)
	require.Equal(t, 1, len(snapshot.Players))
	assert.Equal(t, "p1", snapshot.Players[0].ID)
	assert.Equal(t, "Alice", snapshot.Players[0].Name)
}

func TestGetGameIDWS_randomName(t *testing.T) {
	ts := testServer(t, room.Options{})

	conn := dialWS(t, ts.URL, "g-2", "p1", "")
	defer conn.Close()

	readUntilKey(t, conn, "game")
	msg := readUntilKey(t, conn, "clientState")

	var states []struct {
		PlayerID   string `json:"playerId"`
		PlayerName string `json:"playerName"`
	}
	require.NoError(t, json.Unmarshal(msg.Data, &states))
	require.Equal(t, 1, len(states))
	assert.Equal(t, "p1", states[0].PlayerID)
	assert.NotEqual(t, "", states[0].PlayerName)
}

type wsMessage struct {
	Key     string          `json:"key"`
	Value   string          `json:"value"`
	Context string          `json:"context"`
	Data    json.RawMessage `json:"data"`
}

func dialWS(t *testing.T, baseURL, gameID, playerID, name string) *websocket.Conn {
	t.Helper()

	url := fmt.Sprintf("%s/game/%s/ws?playerId=%s&name=%s",
		strings.Replace(baseURL, "http", "ws", 1), gameID, playerID, name)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func sendPayload(t *testing.T, conn *websocket.Conn, payload *room.PayloadIn) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(payload))
}

func readUntilKey(t *testing.T, conn *websocket.Conn, key string) *wsMessage {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 2))
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("did not receive %q message: %v", key, err)
			return nil
		}

		if msg.Key == key {
			return &msg
		}
	}
}
