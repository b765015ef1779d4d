package room

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"teenpatti-server/pkg/stats"
	"teenpatti-server/pkg/teenpatti"
)

// nextRoundDelay is how long a finished round lingers before the next deal
const nextRoundDelay = time.Second * 5

// Dealer owns a single game instance and serializes every action against it.
// All game access happens on the dealer's run loop, so the engine itself
// needs no locking.
type Dealer struct {
	game     *teenpatti.Game
	recorder stats.Recorder
	logger   logrus.FieldLogger

	startDelay  time.Duration
	turnTimeout time.Duration

	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool

	// run-loop-only state
	startTimer      *time.Timer
	nextTimer       *time.Timer
	turnTimer       *time.Timer
	turnTimerPlayer string
	turnTimerRound  int
	recordedRound   int
}

// NewDealer creates a new dealer for the game
// This is called from a blocking state, so it needs to return quickly
func NewDealer(logger logrus.FieldLogger, game *teenpatti.Game, recorder stats.Recorder, startDelay, turnTimeout time.Duration) *Dealer {
	if recorder == nil {
		recorder = stats.NullRecorder{}
	}

	return &Dealer{
		game:          game,
		recorder:      recorder,
		logger:        logger.WithField("game", game.ID()),
		startDelay:    startDelay,
		turnTimeout:   turnTimeout,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Game returns the dealer's game instance. Only tests should touch it
// directly; everything else goes through the run loop.
func (d *Dealer) Game() *teenpatti.Game {
	return d.game
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

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")

	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case messages := <-d.game.LogChan():
			for _, client := range d.Clients() {
				client.Send(&Response{Key: "logs", Data: messages})
			}
		case <-d.close:
			d.stopTimers()
			d.logger.Debug("terminating dealer run loop")
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

	d.execInRunLoop <- func() {
		client.Send(d.gameResponse(client, ""))
		d.sendClientState()
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.execInRunLoop <- d.sendClientState
		return false
	}

	return true
}

// SeatedPlayers returns the number of players seated at the game, or 0 once
// the dealer has been shut down
func (d *Dealer) SeatedPlayers() int {
	result := make(chan int, 1)
	fn := func() {
		result <- d.game.PlayerCount()
	}

	select {
	case d.execInRunLoop <- fn:
	case <-d.close:
		return 0
	}

	select {
	case n := <-result:
		return n
	case <-d.close:
		return 0
	}
}

// Snapshot returns the game as the given viewer may see it.
// An empty viewer id gets the spectator view. Returns nil once the dealer has
// been shut down.
func (d *Dealer) Snapshot(viewerID string) *teenpatti.GameState {
	result := make(chan *teenpatti.GameState, 1)
	fn := func() {
		result <- d.game.PlayerView(viewerID)
	}

	select {
	case d.execInRunLoop <- fn:
	case <-d.close:
		return nil
	}

	select {
	case state := <-result:
		return state
	case <-d.close:
		return nil
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	action, err := teenpatti.ActionFromString(msg.Action)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	d.execInRunLoop <- func() {
		if err := d.apply(c, action, msg.Amount); err != nil {
			d.logger.WithError(err).WithField("client", c.String()).Debug("action rejected")
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(OK(msg.Context))
		d.afterAction()
	}
}

// apply dispatches an action to the game. The action set is closed; a new
// action kind must be handled here or the switch panics in development.
func (d *Dealer) apply(c *Client, action teenpatti.Action, amount int) error {
	switch action {
	case teenpatti.Join:
		return d.game.Join(c.PlayerID, c.PlayerName)
	case teenpatti.Ready:
		return d.game.Ready(c.PlayerID)
	case teenpatti.See:
		return d.game.SeeCards(c.PlayerID)
	case teenpatti.Call:
		return d.game.CallBet(c.PlayerID)
	case teenpatti.Raise:
		return d.game.RaiseBet(c.PlayerID, amount)
	case teenpatti.Fold:
		return d.game.FoldHand(c.PlayerID)
	case teenpatti.Show:
		return d.game.ShowHands(c.PlayerID)
	case teenpatti.Leave:
		return d.game.RemovePlayer(c.PlayerID)
	}

	panic("unhandled action: " + action.String())
}

// afterAction runs on the run loop after every accepted action: broadcast
// the new state, manage the start/turn timers, and settle a finished round.
func (d *Dealer) afterAction() {
	d.sendGameData()

	if d.game.CanStart() && d.startTimer == nil {
		d.scheduleStart()
	}

	switch d.game.Status() {
	case teenpatti.StatusPlaying:
		d.resetTurnTimer()
	case teenpatti.StatusFinished:
		d.stopTurnTimer()
		d.settleRound()
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	var lastAction *Response
	if la := d.game.LastAction(); la != nil {
		lastAction = &Response{Key: "lastAction", Data: la}
	}

	for _, client := range d.Clients() {
		client.Send(d.gameResponse(client, ""))
		if lastAction != nil {
			client.Send(lastAction)
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendClientState() {
	type clientState struct {
		PlayerID    string `json:"playerId"`
		PlayerName  string `json:"playerName"`
		IsConnected bool   `json:"isConnected"`
	}

	states := make([]clientState, 0)
	for _, client := range d.Clients() {
		states = append(states, clientState{
			PlayerID:    client.PlayerID,
			PlayerName:  client.PlayerName,
			IsConnected: true,
		})
	}

	for _, client := range d.Clients() {
		client.Send(&Response{Key: "clientState", Data: states})
	}
}

func (d *Dealer) gameResponse(client *Client, ctx string) *Response {
	return &Response{
		Key:     "game",
		Value:   d.game.Name(),
		Data:    d.game.PlayerView(client.PlayerID),
		Context: ctx,
	}
}

// scheduleStart arms the cosmetic grace delay between everyone readying up
// and the deal
func (d *Dealer) scheduleStart() {
	d.startTimer = time.AfterFunc(d.startDelay, func() {
		d.execInRunLoop <- func() {
			d.startTimer = nil
			if !d.game.CanStart() {
				return
			}

			if err := d.game.StartRound(); err != nil {
				d.logger.WithError(err).Error("could not start round")
				return
			}

			d.afterAction()
		}
	})
}

// settleRound notifies the stats recorder once per player and schedules the
// next round. Recording happens off the run loop; the engine is already done
// with the round by the time we get here.
func (d *Dealer) settleRound() {
	result := d.game.GetRoundResult()
	round := d.game.RoundNumber()
	if result == nil || round <= d.recordedRound {
		return
	}

	d.recordedRound = round

	gameID := d.game.ID()
	logger := d.logger
	recorder := d.recorder
	go func() {
		for _, pr := range result.Results {
			if err := recorder.RecordRoundResult(context.Background(), gameID, round, pr); err != nil {
				logger.WithError(err).WithField("player", pr.PlayerID).Error("could not record round result")
			}
		}
	}()

	if d.nextTimer != nil {
		d.nextTimer.Stop()
	}

	d.nextTimer = time.AfterFunc(nextRoundDelay, func() {
		d.execInRunLoop <- func() {
			d.nextTimer = nil
			if d.game.Status() != teenpatti.StatusFinished {
				return
			}

			if err := d.game.NextRound(); err != nil {
				d.logger.WithError(err).Debug("could not advance to the next round")
				return
			}

			d.afterAction()
		}
	})
}

// resetTurnTimer arms the turn clock for the current player. The engine has
// no timeouts of its own; the dealer folds on the player's behalf at the
// deadline. A clock already running for the same player and round is left
// alone, so turn-independent actions like See cannot extend it.
func (d *Dealer) resetTurnTimer() {
	if d.turnTimeout <= 0 {
		return
	}

	playerID := d.game.CurrentTurn()
	round := d.game.RoundNumber()
	if playerID == "" {
		d.stopTurnTimer()
		return
	}

	if d.turnTimer != nil && d.turnTimerPlayer == playerID && d.turnTimerRound == round {
		return
	}

	d.stopTurnTimer()
	d.turnTimerPlayer = playerID
	d.turnTimerRound = round
	d.turnTimer = time.AfterFunc(d.turnTimeout, func() {
		d.execInRunLoop <- func() {
			if d.game.Status() != teenpatti.StatusPlaying ||
				d.game.CurrentTurn() != playerID ||
				d.game.RoundNumber() != round {
				return
			}

			d.logger.WithField("player", playerID).Info("turn clock expired, folding")
			if err := d.game.FoldHand(playerID); err != nil {
				d.logger.WithError(err).Error("could not fold on the player's behalf")
				return
			}

			d.afterAction()
		}
	})
}

func (d *Dealer) stopTurnTimer() {
	if d.turnTimer != nil {
		d.turnTimer.Stop()
		d.turnTimer = nil
	}
}

func (d *Dealer) stopTimers() {
	d.stopTurnTimer()

	if d.startTimer != nil {
		d.startTimer.Stop()
		d.startTimer = nil
	}

	if d.nextTimer != nil {
		d.nextTimer.Stop()
		d.nextTimer = nil
	}
}
