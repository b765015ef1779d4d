// Package room multiplexes many independent game instances and relays client
// intents between websockets and the engine. Each game gets its own dealer
// run loop; actions against one game are applied strictly one at a time,
// while different games run fully in parallel.
package room

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"teenpatti-server/pkg/stats"
	"teenpatti-server/pkg/teenpatti"
)

// Options configure a registry and the games it creates
type Options struct {
	// GameOptions are applied to every new game
	GameOptions teenpatti.Options

	// StartGameDelay is the cosmetic grace period between everyone
	// readying up and the deal
	StartGameDelay time.Duration

	// TurnTimeout, when > 0, folds the current player at the deadline
	TurnTimeout time.Duration

	// Recorder receives round results; nil means results are discarded
	Recorder stats.Recorder

	Logger logrus.FieldLogger
}

// Registry owns the set of live game instances. It is the only long-lived
// mutable state in the process and is safe for concurrent use.
type Registry struct {
	opts    Options
	dealers map[string]*Dealer
	lock    sync.Mutex
}

// NewRegistry returns a new registry. Registries are independent; tests may
// create as many as they like.
func NewRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	if opts.Recorder == nil {
		opts.Recorder = stats.NullRecorder{}
	}

	return &Registry{
		opts:    opts,
		dealers: make(map[string]*Dealer),
	}
}

// GetOrCreate returns the dealer for the game id, creating a fresh waiting
// game on first reference
func (r *Registry) GetOrCreate(gameID string) *Dealer {
	r.lock.Lock()
	defer r.lock.Unlock()

	if dealer, ok := r.dealers[gameID]; ok {
		return dealer
	}

	game := teenpatti.NewGame(r.opts.Logger, gameID, r.opts.GameOptions)
	dealer := NewDealer(r.opts.Logger, game, r.opts.Recorder, r.opts.StartGameDelay, r.opts.TurnTimeout)
	dealer.StartShift()
	r.dealers[gameID] = dealer

	r.opts.Logger.WithField("game", gameID).Debug("created game")
	return dealer
}

// Get returns the dealer for the game id if it exists
func (r *Registry) Get(gameID string) (*Dealer, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()

	dealer, ok := r.dealers[gameID]
	return dealer, ok
}

// Remove evicts a game. It is idempotent; removing an unknown id is a no-op.
func (r *Registry) Remove(gameID string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	dealer, ok := r.dealers[gameID]
	if !ok {
		return
	}

	dealer.EndShift()
	delete(r.dealers, gameID)
	r.opts.Logger.WithField("game", gameID).Debug("removed game")
}

// Count returns the number of live games
func (r *Registry) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()

	return len(r.dealers)
}

// ClientConnected is called when a client connects to the server
func (r *Registry) ClientConnected(client *Client) {
	r.GetOrCreate(client.GameID).AddClient(client)
}

// ClientDisconnected is called when a client disconnects from the server.
// The game is evicted once it has neither connected clients nor seated
// players.
func (r *Registry) ClientDisconnected(client *Client) {
	dealer, ok := r.Get(client.GameID)
	if !ok {
		return
	}

	if dealer.RemoveClient(client) && dealer.SeatedPlayers() == 0 {
		r.Remove(client.GameID)
	}
}
