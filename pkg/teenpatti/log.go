package teenpatti

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"teenpatti-server/pkg/deck"
)

// LogMessage is the format the game sends log messages in.
// If PlayerIDs is empty, assume it's a general statement, otherwise the
// message will be sent like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string    `json:"uuid"`
	PlayerIDs []string  `json:"playerIds"`
	Cards     deck.Hand `json:"cards,omitempty"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
}

func newLogMessage(playerID string, format string, a ...interface{}) *LogMessage {
	var playerIDs []string
	if playerID != "" {
		playerIDs = []string{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

func newLogMessageWithPlayers(playerIDs []string, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}
