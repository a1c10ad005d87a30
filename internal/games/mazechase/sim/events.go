package sim

// EventKind enumerates the events a session can emit.
type EventKind uint8

const (
	KindGameStarted EventKind = iota
	KindDotChomped
	KindPowerPelletActivated
	KindPowerExpired
	KindBonusEaten
	KindPursuerEaten
	KindPlayerEliminated
	KindContact
	KindPortalTransit
	KindPursuerSpawned
	KindPursuerReleased
	KindLevelCleared
	KindStateChanged
	KindGameOver
	KindFault
)

var eventKindNames = [...]string{
	KindGameStarted:          "game-started",
	KindDotChomped:           "dot-chomped",
	KindPowerPelletActivated: "power-pellet-activated",
	KindPowerExpired:         "power-expired",
	KindBonusEaten:           "bonus-eaten",
	KindPursuerEaten:         "pursuer-eaten",
	KindPlayerEliminated:     "player-eliminated",
	KindContact:              "contact",
	KindPortalTransit:        "portal-transit",
	KindPursuerSpawned:       "pursuer-spawned",
	KindPursuerReleased:      "pursuer-released",
	KindLevelCleared:         "level-cleared",
	KindStateChanged:         "state-changed",
	KindGameOver:             "game-over",
	KindFault:                "fault",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is one entry of the per-tick event queue. The set of
// implementations is closed to this package.
type Event interface {
	Kind() EventKind
	simEvent()
}

// GameStarted is emitted when the session first enters PLAYING.
type GameStarted struct {
	Level int
}

// DotChomped is emitted when a dot is eaten.
type DotChomped struct {
	Tile   Coord
	Points int
}

// PowerPelletActivated is emitted when a super-dot is eaten.
type PowerPelletActivated struct {
	Tile   Coord
	Points int
	Until  int // tick at which empowerment ends
}

// PowerExpired is emitted when empowerment ends.
type PowerExpired struct{}

// BonusEaten is emitted when a bonus item is eaten.
type BonusEaten struct {
	Tile   Coord
	Label  string
	Points int
	Index  int // zero-based count of bonus items eaten before this one
}

// PursuerEaten is emitted when the empowered player catches a pursuer.
type PursuerEaten struct {
	ID     EntityID
	Name   string
	Points int
}

// PlayerEliminated is emitted when a pursuer catches the player.
type PlayerEliminated struct {
	By        EntityID
	LivesLeft int
}

// Contact is emitted when the player and a pursuer share a tile. It is
// rate-limited per pair.
type Contact struct {
	Pursuer EntityID
	Tile    Coord
}

// PortalTransit is emitted when an entity passes through a portal.
type PortalTransit struct {
	Entity EntityID
	From   Coord
	To     Coord
}

// PursuerSpawned is emitted when the scheduler puts a pursuer in the pen.
type PursuerSpawned struct {
	ID   EntityID
	Name string
	Tile Coord
}

// PursuerReleased is emitted when a pursuer leaves the PENNED state.
type PursuerReleased struct {
	ID EntityID
}

// LevelCleared is emitted once the last collectible of a level is eaten.
type LevelCleared struct {
	Level int // the level that was cleared
	Next  int
}

// StateChanged is emitted on every session state transition.
type StateChanged struct {
	From State
	To   State
}

// GameOver is emitted when the last life is lost.
type GameOver struct {
	Score int
	Level int
}

// Fault is emitted when a subsystem step failed during a tick.
type Fault struct {
	Step string
	Err  error
}

func (GameStarted) Kind() EventKind          { return KindGameStarted }
func (DotChomped) Kind() EventKind           { return KindDotChomped }
func (PowerPelletActivated) Kind() EventKind { return KindPowerPelletActivated }
func (PowerExpired) Kind() EventKind         { return KindPowerExpired }
func (BonusEaten) Kind() EventKind           { return KindBonusEaten }
func (PursuerEaten) Kind() EventKind         { return KindPursuerEaten }
func (PlayerEliminated) Kind() EventKind     { return KindPlayerEliminated }
func (Contact) Kind() EventKind              { return KindContact }
func (PortalTransit) Kind() EventKind        { return KindPortalTransit }
func (PursuerSpawned) Kind() EventKind       { return KindPursuerSpawned }
func (PursuerReleased) Kind() EventKind      { return KindPursuerReleased }
func (LevelCleared) Kind() EventKind         { return KindLevelCleared }
func (StateChanged) Kind() EventKind         { return KindStateChanged }
func (GameOver) Kind() EventKind             { return KindGameOver }
func (Fault) Kind() EventKind                { return KindFault }

func (GameStarted) simEvent()          {}
func (DotChomped) simEvent()           {}
func (PowerPelletActivated) simEvent() {}
func (PowerExpired) simEvent()         {}
func (BonusEaten) simEvent()           {}
func (PursuerEaten) simEvent()         {}
func (PlayerEliminated) simEvent()     {}
func (Contact) simEvent()              {}
func (PortalTransit) simEvent()        {}
func (PursuerSpawned) simEvent()       {}
func (PursuerReleased) simEvent()      {}
func (LevelCleared) simEvent()         {}
func (StateChanged) simEvent()         {}
func (GameOver) simEvent()             {}
func (Fault) simEvent()                {}
