package sim

// Identity describes one pursuer that may be released into a level.
type Identity struct {
	Name   string
	Color  string
	Points int
}

// DefaultIdentities is the pursuer pool used when none is configured.
var DefaultIdentities = []Identity{
	{Name: "NullPointer", Color: "#FF0000"},
	{Name: "PushProduction", Color: "#FFB8FF"},
	{Name: "Glitchy", Color: "#00FFFF"},
	{Name: "Regexorcist", Color: "#FFB852"},
	{Name: "RaceCondition", Color: "#00FF00"},
	{Name: "HeapReaper", Color: "#FF8800"},
	{Name: "GhostException", Color: "#AA00FF"},
	{Name: "StackOverghost", Color: "#0088FF"},
	{Name: "SyntaxTerror", Color: "#FFFFFF"},
}

// DefaultBonusTable is the escalating reward for successive bonus items.
var DefaultBonusTable = []int{100, 300, 500, 700, 1000, 2000, 3000, 5000}

// DefaultBonusLabels names bonus items in placement order.
var DefaultBonusLabels = []string{"cherry", "strawberry", "orange", "apple"}

// Config holds every engine tunable. It is treated as immutable once a
// Session has been built from it. Durations are in ticks (60 ticks = 1 second).
type Config struct {
	TileSize     float64 // pixels per tile, for interpolation only
	PlayerSpeed  float64 // pixels per tick
	PoweredSpeed float64 // pixels per tick while empowered
	PursuerSpeed float64 // pixels per tick

	Lives int

	DotPoints      int
	SuperDotPoints int
	PursuerPoints  int // used when an identity has no Points
	BonusTable     []int
	BonusLabels    []string

	EmpowerTicks           int
	PenTimeoutTicks        int
	SpawnIntervalTicks     int
	MaxPursuers            int
	CollisionCooldownTicks int
	PortalCooldownTicks    int
	DeathThrottleTicks     int
	DeathMessageTicks      int
	BonusAnimTicks         int
	MouthTicks             int

	BonusCount       int
	BonusMinDistance int
	ScatterDistance  int
	ScatterTries     int

	Codes      CodePolicy
	Identities []Identity
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		TileSize:     10,
		PlayerSpeed:  2,
		PoweredSpeed: 4,
		PursuerSpeed: 2,

		Lives: 3,

		DotPoints:      10,
		SuperDotPoints: 50,
		PursuerPoints:  200,
		BonusTable:     append([]int(nil), DefaultBonusTable...),
		BonusLabels:    append([]string(nil), DefaultBonusLabels...),

		EmpowerTicks:           300,
		PenTimeoutTicks:        120,
		SpawnIntervalTicks:     200,
		MaxPursuers:            6,
		CollisionCooldownTicks: 30,
		PortalCooldownTicks:    30,
		DeathThrottleTicks:     90,
		DeathMessageTicks:      90,
		BonusAnimTicks:         30,
		MouthTicks:             8,

		BonusCount:       2,
		BonusMinDistance: 5,
		ScatterDistance:  6,
		ScatterTries:     10,

		Codes:      StrictCodes,
		Identities: append([]Identity(nil), DefaultIdentities...),
	}
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	switch {
	case c.TileSize <= 0:
		return &ConfigError{Field: "TileSize", Reason: "must be positive"}
	case c.PlayerSpeed <= 0 || c.PoweredSpeed <= 0 || c.PursuerSpeed <= 0:
		return &ConfigError{Field: "Speed", Reason: "speeds must be positive"}
	case c.PlayerSpeed > c.TileSize || c.PoweredSpeed > c.TileSize || c.PursuerSpeed > c.TileSize:
		return &ConfigError{Field: "Speed", Reason: "a speed may not exceed the tile size"}
	case c.Lives <= 0:
		return &ConfigError{Field: "Lives", Reason: "must be at least 1"}
	case len(c.BonusTable) == 0:
		return &ConfigError{Field: "BonusTable", Reason: "must not be empty"}
	case c.MaxPursuers < 0:
		return &ConfigError{Field: "MaxPursuers", Reason: "must not be negative"}
	case c.SpawnIntervalTicks <= 0:
		return &ConfigError{Field: "SpawnIntervalTicks", Reason: "must be positive"}
	case c.ScatterTries <= 0:
		return &ConfigError{Field: "ScatterTries", Reason: "must be positive"}
	}
	seen := make(map[string]bool, len(c.Identities))
	for _, id := range c.Identities {
		if id.Name == "" {
			return &ConfigError{Field: "Identities", Reason: "identity without a name"}
		}
		if seen[id.Name] {
			return &ConfigError{Field: "Identities", Reason: "duplicate identity " + id.Name}
		}
		seen[id.Name] = true
	}
	return nil
}

func (c Config) pursuerPoints(id Identity) int {
	if id.Points > 0 {
		return id.Points
	}
	if c.PursuerPoints > 0 {
		return c.PursuerPoints
	}
	return 200
}

func (c Config) bonusReward(eaten int) int {
	if eaten >= len(c.BonusTable) {
		eaten = len(c.BonusTable) - 1
	}
	return c.BonusTable[eaten]
}

func (c Config) maxPursuers() int {
	if c.MaxPursuers < len(c.Identities) {
		return c.MaxPursuers
	}
	return len(c.Identities)
}
