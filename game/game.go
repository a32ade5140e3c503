package game

import (
	"context"
	"log/slog"
	"time"

	"neon-snake/game/effects"
	"neon-snake/game/entity"
	"neon-snake/game/manager"
	"neon-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Options configures a Game. Zero values fall back to the classic setup.
type Options struct {
	Grid      types.Grid
	Speed     float64 // initial ticks per second
	Seed      uint64  // 0 seeds from the clock
	GridLines bool
	Store     manager.ScoreStore
	Logger    *slog.Logger
	Now       func() time.Time
}

// EventKind identifies an engine notification.
type EventKind int

const (
	EventFood EventKind = iota
	EventNewBest
	EventSpeedUp
	EventGameOver
)

// Event is delivered to listeners synchronously from Tick.
type Event struct {
	Kind  EventKind
	Score int
	Speed float64
	Run   manager.RunRecord // set for EventGameOver
}

// Listener receives engine events.
type Listener func(Event)

// TickResult summarises one Tick call.
type TickResult struct {
	Stepped bool
	Ate     bool
	Ended   bool
	Reason  types.CollisionType
	Score   int
}

// Game owns all simulation state. It is not safe for concurrent use; a
// single driver goroutine calls Tick, Render and the input methods.
type Game struct {
	grid         types.Grid
	steps        int
	snake        *entity.Snake
	state        types.State
	stopped      bool
	gridLines    bool
	runID        string
	startTime    time.Time
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	particles    *effects.System
	listeners    []Listener
	logger       *slog.Logger
	now          func() time.Time
}

// NewGame builds a game in the Ready state. The best score is read from
// opts.Store here and nowhere else.
func NewGame(ctx context.Context, opts Options) *Game {
	grid := opts.Grid
	if grid.Width <= 0 || grid.Height <= 0 {
		grid = types.Grid{Width: types.TileCount, Height: types.TileCount}
	}
	// Smaller boards cannot hold the start strip with room to move.
	grid.Width = max(grid.Width, types.MinGridSize)
	grid.Height = max(grid.Height, types.MinGridSize)
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		grid:         grid,
		snake:        entity.NewSnake(startPosition(grid), types.StartLength, types.Up),
		state:        types.Ready,
		gridLines:    opts.GridLines,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(ctx, opts.Store, opts.Speed, logger),
		particles:    effects.NewSystem(rng),
		logger:       logger,
		now:          now,
	}
	// The start screen shows the board as the first run will begin.
	g.foodMgr.Place(g.snake)
	return g
}

// startPosition keeps the classic (10,10) head on a 20x20 board and
// centres it on other sizes.
func startPosition(grid types.Grid) types.Point {
	if grid.Width == types.TileCount && grid.Height == types.TileCount {
		return types.StartPosition
	}
	return types.Point{X: grid.Width / 2, Y: grid.Height / 2}
}

// Subscribe registers l for engine events.
func (g *Game) Subscribe(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) emit(e Event) {
	for _, l := range g.listeners {
		l(e)
	}
}

// Reset starts a fresh run: 3-segment vertical strip heading up, score 0,
// initial speed, new food, state Running.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(startPosition(g.grid), types.StartLength, types.Up)
	g.stateMgr.Reset()
	g.particles.Reset()
	g.steps = 0
	g.runID = uuid.New().String()
	g.startTime = g.now()
	g.state = types.Running

	g.logger.Info("run started", "run", g.runID, "best", g.stateMgr.GetHighScore())
	if !g.foodMgr.Place(g.snake) {
		g.end(types.BoardFull)
	}
}

// SetDirection queues a heading change for the next tick. Reversals,
// repeats, changes outside Running and a second change within one tick
// are dropped.
func (g *Game) SetDirection(dir types.Direction) bool {
	if g.state != types.Running {
		return false
	}
	return g.snake.SetDirection(dir)
}

// Tick advances the simulation by one step. It does nothing unless the
// game is Running.
func (g *Game) Tick() TickResult {
	if g.state != types.Running || g.stopped {
		return TickResult{Score: g.stateMgr.GetScore()}
	}
	g.steps++

	newHead := g.snake.NextHead()
	if c := g.collisionMgr.CheckCollision(newHead, g.snake); c != types.NoCollision {
		g.end(c)
		return TickResult{Stepped: true, Ended: true, Reason: c, Score: g.stateMgr.GetScore()}
	}

	g.snake.Move(newHead)

	res := TickResult{Stepped: true}
	if g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood()) {
		res.Ate = true
		g.eat(newHead)
		if !g.foodMgr.Place(g.snake) {
			res.Ended = true
			res.Reason = types.BoardFull
		}
	} else {
		g.snake.RemoveTail()
	}

	g.particles.Update()
	g.snake.UnlockTurn()

	if res.Ended {
		g.end(res.Reason)
	}
	res.Score = g.stateMgr.GetScore()
	return res
}

func (g *Game) eat(at types.Point) {
	newBest, steps := g.stateMgr.AddPoints(types.FoodReward)
	score := g.stateMgr.GetScore()

	g.particles.Burst(at, effects.RGB{R: ColorFood.R, G: ColorFood.G, B: ColorFood.B})
	g.emit(Event{Kind: EventFood, Score: score})
	if newBest {
		g.emit(Event{Kind: EventNewBest, Score: score})
	}
	if steps > 0 {
		g.logger.Debug("speed up", "run", g.runID, "score", score, "speed", g.stateMgr.Speed())
		g.emit(Event{Kind: EventSpeedUp, Score: score, Speed: g.stateMgr.Speed()})
	}
}

func (g *Game) end(reason types.CollisionType) {
	g.state = types.Over
	run := manager.RunRecord{
		ID:        g.runID,
		StartTime: g.startTime,
		EndTime:   g.now(),
		Score:     g.stateMgr.GetScore(),
		Length:    g.snake.Len(),
		Reason:    reason,
	}
	g.logger.Info("run over", "run", run.ID, "score", run.Score, "reason", reason.String(), "steps", g.steps)
	g.emit(Event{Kind: EventGameOver, Score: run.Score, Run: run})
}

// Pause freezes a Running game. It is a no-op in any other state.
func (g *Game) Pause() {
	if g.state == types.Running {
		g.state = types.Paused
	}
}

// Resume continues a Paused game. It is a no-op in any other state.
func (g *Game) Resume() {
	if g.state == types.Paused {
		g.state = types.Running
	}
}

// TogglePause alternates between Running and Paused.
func (g *Game) TogglePause() {
	switch g.state {
	case types.Running:
		g.Pause()
	case types.Paused:
		g.Resume()
	}
}

// Stop halts the engine for good. Drivers exit once Stopped is true.
func (g *Game) Stop() {
	g.stopped = true
}

func (g *Game) Stopped() bool {
	return g.stopped
}

// Grid is the board size, fixed at construction.
func (g *Game) Grid() types.Grid {
	return g.grid
}

// Steps counts the ticks of the current run.
func (g *Game) Steps() int {
	return g.steps
}

func (g *Game) State() types.State {
	return g.state
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) BestScore() int {
	return g.stateMgr.GetHighScore()
}

// Speed is the current tick rate in ticks per second.
func (g *Game) Speed() float64 {
	return g.stateMgr.Speed()
}

// Interval is the wait before the next tick. Drivers re-read it every
// cycle so speed changes apply from the next tick on.
func (g *Game) Interval() time.Duration {
	return g.stateMgr.Interval()
}

func (g *Game) RunID() string {
	return g.runID
}

// Particles returns a copy of the live particles.
func (g *Game) Particles() []effects.Particle {
	parts := g.particles.Particles()
	out := make([]effects.Particle, len(parts))
	copy(out, parts)
	return out
}
