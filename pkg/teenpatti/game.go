package teenpatti

import (
	"github.com/sirupsen/logrus"

	"teenpatti-server/pkg/deck"
)

// Status is the lifecycle phase of a game.
// A round only ever moves waiting → playing → finished; a finished game may
// be reset into a fresh playing round.
type Status string

// status constants
const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// player count limits
const (
	MinPlayers = 2
	MaxPlayers = 3
)

// Options are options for creating a new game
type Options struct {
	// MinBet is the boot collected from every player at round start
	MinBet int
	// StartingChips is each player's stack when they first sit down
	StartingChips int
}

// DefaultOptions returns the default options for a game
func DefaultOptions() Options {
	return Options{
		MinBet:        10,
		StartingChips: 1000,
	}
}

// Game is a single Teen Patti game instance. It is not safe for concurrent
// use; the caller must serialize all access per game (see pkg/room).
type Game struct {
	id         string
	options    Options
	players    []*Player
	idToPlayer map[string]*Player
	deck       *deck.Deck

	status      Status
	pot         int
	currentBet  int
	roundNumber int
	turnIndex   int
	winnerID    string
	lastAction  *LastAction
	roundResult *RoundResult

	// chip balances as of the start of the round, to derive per-player deltas
	chipsAtRoundStart map[string]int

	logger  logrus.FieldLogger
	logChan chan []*LogMessage
}

// PlayerResult is one player's outcome for a completed round
type PlayerResult struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Won        bool   `json:"won"`
	ChipDelta  int    `json:"chipDelta"`
}

// RoundResult describes how a round was settled
type RoundResult struct {
	WinnerID    string          `json:"winnerId"`
	Pot         int             `json:"pot"`
	SplitPot    bool            `json:"splitPot"`
	WinningHand *HandResult     `json:"winningHand,omitempty"`
	Results     []*PlayerResult `json:"results"`
}

// NewGame returns a new game in the waiting state
func NewGame(logger logrus.FieldLogger, id string, opts Options) *Game {
	if opts.MinBet <= 0 {
		opts.MinBet = DefaultOptions().MinBet
	}

	if opts.StartingChips <= 0 {
		opts.StartingChips = DefaultOptions().StartingChips
	}

	return &Game{
		id:                id,
		options:           opts,
		players:           make([]*Player, 0, MaxPlayers),
		idToPlayer:        make(map[string]*Player),
		status:            StatusWaiting,
		turnIndex:         -1,
		chipsAtRoundStart: make(map[string]int),
		logger:            logger,
		logChan:           make(chan []*LogMessage, 256),
	}
}

// ID returns the game id
func (g *Game) ID() string {
	return g.id
}

// Name returns "teen-patti"
func (g *Game) Name() string {
	return "teen-patti"
}

// Status returns the current lifecycle phase
func (g *Game) Status() Status {
	return g.status
}

// Options returns the game options
func (g *Game) Options() Options {
	return g.options
}

// LogChan returns a channel the game sends log messages to
func (g *Game) LogChan() <-chan []*LogMessage {
	return g.logChan
}

// CurrentTurn returns the id of the player whose turn it is, or "" if no
// round is in progress
func (g *Game) CurrentTurn() string {
	if g.status != StatusPlaying || g.turnIndex < 0 {
		return ""
	}

	return g.players[g.turnIndex].ID
}

// PlayerCount returns the number of seated players
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// RoundNumber returns the current round number, starting at 1 for the first
// dealt round
func (g *Game) RoundNumber() int {
	return g.roundNumber
}

// LastAction returns the most recent accepted action, or nil
func (g *Game) LastAction() *LastAction {
	return g.lastAction
}

// Pot returns the number of chips at stake
func (g *Game) Pot() int {
	return g.pot
}

// Join seats a new player. Joining with an already-seated id is an
// idempotent reconnect: nothing changes, no error is returned.
func (g *Game) Join(playerID, playerName string) error {
	if _, ok := g.idToPlayer[playerID]; ok {
		// reconnect
		return nil
	}

	if g.status == StatusPlaying {
		return ErrRoundInProgress
	}

	if len(g.players) >= MaxPlayers {
		return ErrGameFull
	}

	player := newPlayer(playerID, playerName, len(g.players)+1, g.options.StartingChips)
	g.players = append(g.players, player)
	g.idToPlayer[playerID] = player

	g.recordAction(playerID, Join, 0)
	g.sendLogMessages(newLogMessage(playerID, "{} joined with ${%d}", player.Chips))

	return nil
}

// Ready marks a seated player as ready to start. Safe to resend.
func (g *Game) Ready(playerID string) error {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return ErrPlayerNotFound
	}

	if player.IsReady {
		return nil
	}

	player.IsReady = true
	g.recordAction(playerID, Ready, 0)
	g.sendLogMessages(newLogMessage(playerID, "{} is ready"))

	return nil
}

// CanStart returns true once at least two players are seated and everyone is
// ready
func (g *Game) CanStart() bool {
	if g.status != StatusWaiting || len(g.players) < MinPlayers {
		return false
	}

	for _, player := range g.players {
		if !player.IsReady {
			return false
		}
	}

	return true
}

// StartRound transitions waiting → playing: fresh shuffled deck, three cards
// per player in seat order, per-round fields reset, and the boot collected
// from every player into the pot. The transition fails before any mutation
// if a player cannot cover the boot.
func (g *Game) StartRound() error {
	if g.status == StatusPlaying {
		return ErrRoundInProgress
	}

	if len(g.players) < MinPlayers {
		return PlayerCountError{Min: MinPlayers, Max: MaxPlayers, Got: len(g.players)}
	}

	for _, player := range g.players {
		if !player.IsReady {
			return ErrPlayersNotReady
		}

		if player.Chips < g.options.MinBet {
			return ErrInsufficientChips
		}
	}

	d := deck.New()
	d.Shuffle(0)

	hands, err := d.DealHands(len(g.players))
	if err != nil {
		return err
	}

	g.chipsAtRoundStart = make(map[string]int)
	for _, player := range g.players {
		g.chipsAtRoundStart[player.ID] = player.Chips
	}

	pot := 0
	for i, player := range g.players {
		player.resetForRound(hands[i])
		player.Chips -= g.options.MinBet
		player.TotalBet = g.options.MinBet
		pot += g.options.MinBet
	}

	g.deck = d
	g.pot = pot
	g.currentBet = g.options.MinBet
	g.roundNumber++
	g.turnIndex = 0
	g.winnerID = ""
	g.roundResult = nil
	g.status = StatusPlaying

	g.sendLogMessages(
		newLogMessage("", "Round %d: cards dealt, boot of ${%d} collected", g.roundNumber, g.options.MinBet),
		newLogMessage(g.players[0].ID, "{} is first to act"),
	)

	return nil
}

// NextRound advances a finished game into a fresh round. Chip balances
// persist; everything per-round is reset.
func (g *Game) NextRound() error {
	if g.status != StatusFinished {
		return ErrRoundNotStarted
	}

	g.status = StatusWaiting
	return g.StartRound()
}

// SeeCards marks the player as having viewed their own cards. It does not
// consume a turn, may be invoked at any time during play, and is safe to
// resend.
func (g *Game) SeeCards(playerID string) error {
	if g.status != StatusPlaying {
		return ErrRoundNotStarted
	}

	player, ok := g.idToPlayer[playerID]
	if !ok {
		return ErrPlayerNotFound
	}

	if player.HasFolded {
		return ErrPlayerFolded
	}

	if !player.IsActive {
		return ErrPlayerNotActive
	}

	if player.HasSeen {
		return nil
	}

	player.HasSeen = true
	g.recordAction(playerID, See, 0)
	g.sendLogMessages(newLogMessage(playerID, "{} looked at their cards"))

	return nil
}

// CallBet puts the required stake into the pot and passes the turn.
// A blind player pays the nominal bet; a seen player pays double.
func (g *Game) CallBet(playerID string) error {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return err
	}

	required := g.currentBet * player.multiplier()
	if player.Chips < required {
		return ErrInsufficientChips
	}

	player.bet(required)
	g.pot += required

	g.recordAction(playerID, Call, required)
	g.sendLogMessages(newLogMessage(playerID, "{} %s", Call.LogMessage(required)))

	g.advanceTurn()
	return nil
}

// RaiseBet puts at least double the current stake into the pot and rebases
// the table's nominal bet to the blind-equivalent amount.
// A seen player's raise must be an even amount so the rebase stays exact.
func (g *Game) RaiseBet(playerID string, amount int) error {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return err
	}

	multiplier := player.multiplier()

	minimum := 2 * g.currentBet * multiplier
	if amount < minimum {
		return RaiseTooLowError{Minimum: minimum, Got: amount}
	}

	if amount%multiplier != 0 {
		return ErrRaiseNotExact
	}

	if player.Chips < amount {
		return ErrInsufficientChips
	}

	player.bet(amount)
	g.pot += amount
	g.currentBet = amount / multiplier

	g.recordAction(playerID, Raise, amount)
	g.sendLogMessages(newLogMessage(playerID, "{} %s", Raise.LogMessage(amount)))

	g.advanceTurn()
	return nil
}

// FoldHand folds the current player. If only one contender remains, the
// round ends immediately and they take the pot.
func (g *Game) FoldHand(playerID string) error {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return err
	}

	g.foldPlayer(player)
	return nil
}

// foldPlayer applies a fold for the player, whether voluntary or implicit
func (g *Game) foldPlayer(player *Player) {
	wasTurn := g.CurrentTurn() == player.ID

	player.HasFolded = true
	player.IsActive = false

	g.recordAction(player.ID, Fold, 0)
	g.sendLogMessages(newLogMessage(player.ID, "{} folded"))

	remaining := g.activePlayers()
	if len(remaining) == 1 {
		g.endRound([]*Player{remaining[0]}, nil)
		return
	}

	if wasTurn {
		g.advanceTurn()
	}
}

// ShowHands settles the pot by comparing the last two contenders' hands.
// A show is legal regardless of whose turn it is, but only when exactly two
// active, non-folded players remain.
func (g *Game) ShowHands(playerID string) error {
	if g.status != StatusPlaying {
		return ErrRoundNotStarted
	}

	player, ok := g.idToPlayer[playerID]
	if !ok {
		return ErrPlayerNotFound
	}

	if !player.canAct() {
		return ErrPlayerNotActive
	}

	contenders := g.activePlayers()
	if len(contenders) != 2 {
		return ErrShowRequiresTwoPlayers
	}

	hands := make(map[string]deck.Hand, len(contenders))
	results := make(map[string]HandResult, len(contenders))
	for _, contender := range contenders {
		hands[contender.ID] = contender.Hand()
	}

	winnerIDs, best, err := FindWinners(hands)
	if err != nil {
		return err
	}

	for id, hand := range hands {
		hr, _ := Evaluate(hand)
		results[id] = hr
	}

	g.recordAction(playerID, Show, 0)
	g.sendLogMessages(newLogMessage(playerID, "{} called for a show: %s", describeHands(results)))

	winners := make([]*Player, len(winnerIDs))
	for i, id := range winnerIDs {
		winners[i] = g.idToPlayer[id]
	}

	g.endRound(winners, &best)
	return nil
}

// RemovePlayer handles a player leaving. Mid-round it is an implicit fold and
// the seat is only released once the round settles, since turn order walks the
// seat slice; otherwise the player is unseated immediately and the remaining
// seats compacted.
func (g *Game) RemovePlayer(playerID string) error {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return ErrPlayerNotFound
	}

	if g.status == StatusPlaying {
		player.leaving = true
		if player.canAct() {
			g.foldPlayer(player)
			return nil
		}

		g.recordAction(playerID, Leave, 0)
		g.sendLogMessages(newLogMessage(playerID, "{} left the game"))
		return nil
	}

	g.unseat(playerID)

	g.recordAction(playerID, Leave, 0)
	g.sendLogMessages(newLogMessage(playerID, "{} left the game"))

	return nil
}

// unseat removes the player and compacts the remaining seats.
// Must never run while a round is in progress.
func (g *Game) unseat(playerID string) {
	players := make([]*Player, 0, len(g.players)-1)
	for _, p := range g.players {
		if p.ID != playerID {
			p.SeatPosition = len(players) + 1
			players = append(players, p)
		}
	}

	g.players = players
	delete(g.idToPlayer, playerID)
}

// releaseLeavers unseats everyone who left during the round
func (g *Game) releaseLeavers() {
	for _, p := range append([]*Player{}, g.players...) {
		if p.leaving {
			g.unseat(p.ID)
		}
	}
}

// GetRoundResult returns the settled round, or nil if the round is still in
// progress
func (g *Game) GetRoundResult() *RoundResult {
	return g.roundResult
}

// validateTurn checks every precondition for a turn-consuming action without
// mutating anything
func (g *Game) validateTurn(playerID string) (*Player, error) {
	if g.status == StatusFinished {
		return nil, ErrRoundOver
	}

	if g.status != StatusPlaying {
		return nil, ErrRoundNotStarted
	}

	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if player.HasFolded {
		return nil, ErrPlayerFolded
	}

	if !player.IsActive {
		return nil, ErrPlayerNotActive
	}

	if g.CurrentTurn() != playerID {
		return nil, ErrNotPlayersTurn
	}

	return player, nil
}

// activePlayers returns the players still contesting the pot, in seat order
func (g *Game) activePlayers() []*Player {
	players := make([]*Player, 0, len(g.players))
	for _, player := range g.players {
		if player.canAct() {
			players = append(players, player)
		}
	}

	return players
}

// advanceTurn passes the turn to the next contender in fixed seat order,
// wrapping around
func (g *Game) advanceTurn() {
	if g.status != StatusPlaying {
		return
	}

	for i := 1; i <= len(g.players); i++ {
		index := (g.turnIndex + i) % len(g.players)
		if g.players[index].canAct() {
			g.turnIndex = index
			return
		}
	}
}

// endRound credits the pot, finishes the round, and records per-player
// results for the stats recorder. On a true tie the pot is split equally,
// odd chips going to the earliest seat, which is also recorded as the winner.
func (g *Game) endRound(winners []*Player, winningHand *HandResult) {
	first := winners[0]
	for _, winner := range winners[1:] {
		if winner.SeatPosition < first.SeatPosition {
			first = winner
		}
	}

	pot := g.pot
	share := pot / len(winners)
	remainder := pot % len(winners)

	for _, winner := range winners {
		winner.Chips += share
	}
	first.Chips += remainder

	g.pot = 0
	g.turnIndex = -1
	g.winnerID = first.ID
	g.status = StatusFinished

	wonBy := make(map[string]bool, len(winners))
	winnerIDs := make([]string, len(winners))
	for i, winner := range winners {
		wonBy[winner.ID] = true
		winnerIDs[i] = winner.ID
	}

	results := make([]*PlayerResult, len(g.players))
	for i, player := range g.players {
		results[i] = &PlayerResult{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Won:        wonBy[player.ID],
			ChipDelta:  player.Chips - g.chipsAtRoundStart[player.ID],
		}
	}

	g.roundResult = &RoundResult{
		WinnerID:    first.ID,
		Pot:         pot,
		SplitPot:    len(winners) > 1,
		WinningHand: winningHand,
		Results:     results,
	}

	if len(winners) > 1 {
		g.sendLogMessages(newLogMessageWithPlayers(winnerIDs, "{} split the pot of ${%d}", pot))
	} else {
		g.sendLogMessages(newLogMessage(first.ID, "{} won the pot of ${%d}", pot))
	}

	g.releaseLeavers()
}

func (g *Game) recordAction(playerID string, action Action, amount int) {
	g.lastAction = &LastAction{
		PlayerID: playerID,
		Action:   action,
		Amount:   amount,
	}
}

func (g *Game) sendLogMessages(msg ...*LogMessage) {
	if g.logChan == nil {
		return
	}

	select {
	case g.logChan <- msg:
	default:
		if g.logger != nil {
			g.logger.Warn("log channel is full, dropping messages")
		}
	}
}
