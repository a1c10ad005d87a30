package sim

// EntityKind tags the variant of a movable entity.
type EntityKind uint8

const (
	EntityPlayer EntityKind = iota
	EntityPursuer
)

func (k EntityKind) String() string {
	if k == EntityPlayer {
		return "player"
	}
	return "pursuer"
}

// EntityID identifies an entity within a session. The player is always 0.
type EntityID int

// PlayerID is the entity id of the player.
const PlayerID EntityID = 0

// PowerState is the player's power mode.
type PowerState uint8

const (
	PowerNormal PowerState = iota
	PowerEmpowered
)

func (p PowerState) String() string {
	if p == PowerEmpowered {
		return "empowered"
	}
	return "normal"
}

// Player is the user-controlled entity.
type Player struct {
	Mover
	Power          PowerState
	EmpoweredUntil int // tick at which empowerment ends
	Spawn          Coord
	LeftSpawn      bool // collisions are ignored until the player leaves Spawn
	MouthOpen      bool

	mouthTicks int
}

func newPlayer(spawn Coord, cfg Config) *Player {
	return &Player{
		Mover: newMover(spawn, cfg.TileSize, cfg.PlayerSpeed),
		Spawn: spawn,
	}
}

// Empower arms or re-arms the power deadline. A second pickup replaces the
// pending deadline rather than adding to it.
func (p *Player) Empower(now, duration int, speed float64) {
	p.Power = PowerEmpowered
	p.EmpoweredUntil = now + duration
	p.Speed = speed
}

// expire drops empowerment once its deadline is reached.
func (p *Player) expire(now int, speed float64) bool {
	if p.Power != PowerEmpowered || now < p.EmpoweredUntil {
		return false
	}
	p.Power = PowerNormal
	p.EmpoweredUntil = 0
	p.Speed = speed
	return true
}

// advance moves the player one tick and updates the spawn and mouth flags.
func (p *Player) advance(g *Grid, mouthEvery int) bool {
	arrived := p.Step(g, PlayerRule)
	if arrived && p.Pos != p.Spawn {
		p.LeftSpawn = true
	}
	if p.Moving && mouthEvery > 0 {
		p.mouthTicks++
		if p.mouthTicks >= mouthEvery {
			p.mouthTicks = 0
			p.MouthOpen = !p.MouthOpen
		}
	}
	return arrived
}
