package stats

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"teenpatti-server/pkg/teenpatti"
)

// PostgresRecorder writes round results to Postgres
type PostgresRecorder struct {
	db *sql.DB
}

// NewPostgresRecorder returns a recorder backed by the given database
func NewPostgresRecorder(db *sql.DB) *PostgresRecorder {
	return &PostgresRecorder{db: db}
}

// RecordRoundResult appends the player's outcome to the round history and
// folds it into their aggregate stats in a single transaction
func (r *PostgresRecorder) RecordRoundResult(ctx context.Context, gameID string, roundNumber int, result *teenpatti.PlayerResult) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	commit := false
	defer func() {
		if !commit {
			if err := tx.Rollback(); err != nil {
				logrus.WithError(err).Error("could not rollback transaction")
			}
		}
	}()

	const insertRound = `
INSERT INTO player_rounds (game_id, round_number, player_id, player_name, won, chip_delta)
VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := tx.ExecContext(ctx, insertRound,
		gameID, roundNumber, result.PlayerID, result.PlayerName, result.Won, result.ChipDelta); err != nil {
		return err
	}

	const upsertStats = `
INSERT INTO player_stats (player_id, player_name, rounds_played, rounds_won, net_chips)
VALUES ($1, $2, 1, $3, $4)
ON CONFLICT (player_id) DO UPDATE
SET player_name   = EXCLUDED.player_name,
    rounds_played = player_stats.rounds_played + 1,
    rounds_won    = player_stats.rounds_won + EXCLUDED.rounds_won,
    net_chips     = player_stats.net_chips + EXCLUDED.net_chips,
    updated       = NOW() AT TIME ZONE 'UTC'`

	won := 0
	if result.Won {
		won = 1
	}

	if _, err := tx.ExecContext(ctx, upsertStats,
		result.PlayerID, result.PlayerName, won, result.ChipDelta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	commit = true
	return nil
}
