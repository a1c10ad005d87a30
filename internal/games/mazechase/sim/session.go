package sim

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"
)

// State is the session state.
type State uint8

const (
	StateWelcome State = iota
	StatePlaying
	StatePaused
	StateStopped
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes engine diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeed seeds the session's random source.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithLevelTuning derives the configuration used for each level from the
// base configuration.
func WithLevelTuning(fn func(level int, base Config) Config) Option {
	return func(s *Session) {
		s.tune = fn
	}
}

// Session owns one run of the game: the world, its entities and the
// pending event queue. It is not safe for concurrent use.
type Session struct {
	base  Config
	cfg   Config // effective for the current level
	mazes MazeSource
	log   *log.Logger
	seed  int64
	rng   *rand.Rand
	tune  func(level int, base Config) Config

	state      State
	score      int
	lives      int
	level      int
	bonusEaten int
	clock      int // ticks spent in PLAYING

	grid     *Grid
	terrain  *terrain
	items    *Collectibles
	player   *Player
	pursuers []*Pursuer
	nextID   EntityID

	collide Cooldowns
	portals Cooldowns

	spawnTimer int
	deathTimer int
	lastDeath  int
	hasDied    bool
	advanced   bool // a level advance already happened this tick

	events []Event
}

// NewSession validates cfg, loads level 1 and returns a session in WELCOME.
func NewSession(cfg Config, mazes MazeSource, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if mazes == nil {
		return nil, &ConfigError{Field: "MazeSource", Reason: "is nil"}
	}
	s := &Session{
		base:    cfg,
		mazes:   mazes,
		log:     log.New(io.Discard),
		seed:    1,
		collide: make(Cooldowns),
		portals: make(Cooldowns),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rng = rand.New(rand.NewSource(s.seed))

	if err := s.loadLevel(1); err != nil {
		return nil, err
	}
	s.lives = s.cfg.Lives
	s.state = StateWelcome
	return s, nil
}

// loadLevel replaces the world with the given level's maze. On failure the
// current world is left untouched.
func (s *Session) loadLevel(level int) error {
	cfg := s.base
	if s.tune != nil {
		cfg = s.tune(level, s.base)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("sim: level %d tuning: %w", level, err)
		}
	}
	m, err := s.mazes.Maze(level)
	if err != nil {
		return fmt.Errorf("sim: maze for level %d: %w", level, err)
	}
	g, err := Load(m, cfg.Codes)
	if err != nil {
		return err
	}
	if len(g.FindAll(TileGhostSpawn)) == 0 {
		return &NoValidSpawnError{Maze: m.Name, Entity: "pursuer"}
	}
	spawn, err := playerSpawn(g)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.level = level
	s.grid = g
	s.terrain = newTerrain(g, s.rng)
	s.items = Place(g, cfg, s.rng)
	s.player = newPlayer(spawn, cfg)
	s.pursuers = nil
	s.nextID = PlayerID + 1
	s.collide.Clear()
	s.portals.Clear()
	s.spawnTimer = 0
	s.deathTimer = 0

	s.log.Debug("level loaded", "level", level, "maze", g.Name(), "items", s.items.Remaining(), "spawn", spawn)
	return nil
}

// playerSpawn finds the first EMPTY tile straight below the pen's middle
// column, falling back to the first EMPTY tile of the grid.
func playerSpawn(g *Grid) (Coord, error) {
	pen := g.FindAll(TileGhostSpawn)
	if len(pen) > 0 {
		minCol, maxCol, maxRow := pen[0].Col, pen[0].Col, pen[0].Row
		for _, p := range pen[1:] {
			minCol = min(minCol, p.Col)
			maxCol = max(maxCol, p.Col)
			maxRow = max(maxRow, p.Row)
		}
		col := (minCol + maxCol + 1) / 2
		for r := maxRow + 1; r < g.Height()-1; r++ {
			if g.TileAt(C(col, r)) == TileEmpty {
				return C(col, r), nil
			}
		}
	}
	if empty := g.FindAll(TileEmpty); len(empty) > 0 {
		return empty[0], nil
	}
	return Coord{}, &NoValidSpawnError{Maze: g.Name(), Entity: "player"}
}

// Start leaves WELCOME for PLAYING, or resumes from PAUSED.
func (s *Session) Start() {
	switch s.state {
	case StateWelcome:
		s.setState(StatePlaying)
		s.emit(GameStarted{Level: s.level})
	case StatePaused:
		s.setState(StatePlaying)
	}
}

// TogglePause switches between PLAYING and PAUSED.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.setState(StatePaused)
	case StatePaused:
		s.setState(StatePlaying)
	}
}

// Restart returns to WELCOME with a fresh run on level 1.
func (s *Session) Restart() {
	if s.state == StateWelcome {
		return
	}
	if err := s.loadLevel(1); err != nil {
		s.fault("restart", err)
		return
	}
	s.score = 0
	s.lives = s.cfg.Lives
	s.bonusEaten = 0
	s.hasDied = false
	s.player.Power = PowerNormal
	s.setState(StateWelcome)
}

// Steer buffers the player's next direction.
func (s *Session) Steer(d Dir) {
	s.player.Queue(d)
}

// Tick advances the simulation by one step and drains the event queue.
func (s *Session) Tick() []Event {
	s.advanced = false

	s.guard("animate", s.items.Animate)

	if s.state == StatePlaying {
		s.clock++
		if s.deathTimer == 0 {
			s.guard("player", s.stepPlayer)
		}
	}
	if s.state == StatePlaying {
		s.guard("pursuers", s.stepPursuers)
		s.guard("spawn", s.stepSpawner)
	}
	if s.state == StatePlaying {
		s.guard("deadlines", s.stepDeadlines)
		s.collide.Decay()
		s.portals.Decay()
	}

	out := s.events
	s.events = nil
	return out
}

func (s *Session) stepPlayer() {
	s.player.advance(s.grid, s.cfg.MouthTicks)
	s.checkPlayer()
}

func (s *Session) stepPursuers() {
	for _, q := range s.pursuers {
		if q.update(s.terrain, s.cfg.PenTimeoutTicks) {
			s.emit(PursuerReleased{ID: q.ID})
		}
		if s.transit(&q.Mover, q.ID) {
			q.ClearRoute()
		}
	}
}

// stepSpawner fires on the first PLAYING tick of a level and then once
// every SpawnIntervalTicks.
func (s *Session) stepSpawner() {
	if s.spawnTimer > 0 {
		s.spawnTimer--
		return
	}
	s.spawnTimer = s.cfg.SpawnIntervalTicks - 1
	s.spawnPursuer()
}

func (s *Session) spawnPursuer() {
	if len(s.pursuers) >= s.cfg.maxPursuers() {
		return
	}
	inPlay := mapset.New[string]()
	for _, q := range s.pursuers {
		inPlay.Put(q.Identity.Name)
	}
	var available []Identity
	for _, id := range s.cfg.Identities {
		if !inPlay.Has(id.Name) {
			available = append(available, id)
		}
	}
	pen := s.grid.FindAll(TileGhostSpawn)
	if len(available) == 0 || len(pen) == 0 {
		return
	}
	at := pen[s.rng.Intn(len(pen))]
	ident := available[s.rng.Intn(len(available))]
	q := newPursuer(s.nextID, ident, at, s.cfg)
	s.nextID++
	s.pursuers = append(s.pursuers, q)
	s.emit(PursuerSpawned{ID: q.ID, Name: ident.Name, Tile: at})
}

func (s *Session) stepDeadlines() {
	if s.player.expire(s.clock, s.cfg.PlayerSpeed) {
		s.emit(PowerExpired{})
	}
	if s.deathTimer > 0 {
		s.deathTimer--
	}
}

// checkCleared advances the level once every collectible is gone.
func (s *Session) checkCleared() {
	if s.advanced || s.items.Remaining() > 0 {
		return
	}
	s.advanced = true
	cleared := s.level
	if err := s.loadLevel(cleared + 1); err != nil {
		s.fault("level", err)
		s.setState(StateGameOver)
		s.emit(GameOver{Score: s.score, Level: s.level})
		return
	}
	s.emit(LevelCleared{Level: cleared, Next: s.level})
}

func (s *Session) setState(to State) {
	if s.state == to {
		return
	}
	from := s.state
	s.state = to
	s.emit(StateChanged{From: from, To: to})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) fault(step string, err error) {
	s.log.Error("tick step failed", "step", step, "tick", s.clock, "error", err)
	s.emit(Fault{Step: step, Err: err})
}

// guard runs one tick step, converting a panic into a Fault event.
func (s *Session) guard(step string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.fault(step, fmt.Errorf("sim: %s step panicked: %v", step, r))
		}
	}()
	fn()
}

// State returns the session state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the 1-based current level.
func (s *Session) Level() int { return s.level }

// Clock returns the number of ticks spent in PLAYING.
func (s *Session) Clock() int { return s.clock }

// Grid returns the current level's grid.
func (s *Session) Grid() *Grid { return s.grid }

// Config returns the configuration in effect for the current level.
func (s *Session) Config() Config { return s.cfg }
