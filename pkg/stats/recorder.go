// Package stats persists per-player round outcomes for durable leaderboard
// and profile storage. The engine never calls it directly; the room layer
// notifies it once per player after a round settles.
package stats

import (
	"context"

	"teenpatti-server/pkg/teenpatti"
)

// Recorder receives one notification per player at the end of every round
type Recorder interface {
	RecordRoundResult(ctx context.Context, gameID string, roundNumber int, result *teenpatti.PlayerResult) error
}

// NullRecorder discards every result. It keeps the server usable without a
// database and keeps tests quiet.
type NullRecorder struct{}

// RecordRoundResult does nothing
func (NullRecorder) RecordRoundResult(context.Context, string, int, *teenpatti.PlayerResult) error {
	return nil
}
