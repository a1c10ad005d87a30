package sim

// TileKind classifies a grid cell.
type TileKind uint8

// Canonical tile kinds. Value 5 is intentionally unassigned.
const (
	TileEmpty         TileKind = 0
	TileWall          TileKind = 1
	TileDot           TileKind = 2
	TileGhostDoor     TileKind = 3
	TileTunnel        TileKind = 4
	TileCorner        TileKind = 6
	TileGhostSpawn    TileKind = 7
	TilePortal        TileKind = 8
	TileSuperDot      TileKind = 9
	TilePortalBlocker TileKind = 10
	TileFruit         TileKind = 11 // render marker only, never stored on a grid
)

func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "EMPTY"
	case TileWall:
		return "WALL"
	case TileDot:
		return "DOT"
	case TileGhostDoor:
		return "GHOST_DOOR"
	case TileTunnel:
		return "TUNNEL"
	case TileCorner:
		return "CORNER"
	case TileGhostSpawn:
		return "GHOST_SPAWN"
	case TilePortal:
		return "PORTAL"
	case TileSuperDot:
		return "SUPER_DOT"
	case TilePortalBlocker:
		return "PORTAL_BLOCKER"
	case TileFruit:
		return "FRUIT"
	default:
		return "UNKNOWN"
	}
}

// IsPen reports whether the tile belongs to the pursuer pen.
func (k TileKind) IsPen() bool {
	return k == TileGhostSpawn || k == TileGhostDoor
}

// Legacy maze codes as stored by the maze repository.
const (
	CodeWall       = 0
	CodeEmpty      = 1
	CodeSuperDot   = 2
	CodeGhostSpawn = 3
	CodePortal     = 4
	CodeGhostDoor  = 5
)

var legacyCodes = map[int]TileKind{
	CodeWall:       TileWall,
	CodeEmpty:      TileEmpty,
	CodeSuperDot:   TileSuperDot,
	CodeGhostSpawn: TileGhostSpawn,
	CodePortal:     TilePortal,
	CodeGhostDoor:  TileGhostDoor,
}

// CodePolicy decides what happens to maze codes outside the legacy set.
type CodePolicy uint8

const (
	// StrictCodes rejects unknown codes with an InvalidMapError.
	StrictCodes CodePolicy = iota
	// LenientCodes decodes unknown codes as EMPTY.
	LenientCodes
)

// ParseCodePolicy maps a config string to a policy. Unknown names are strict.
func ParseCodePolicy(s string) CodePolicy {
	if s == "lenient" {
		return LenientCodes
	}
	return StrictCodes
}

// decodeTile maps a legacy code to a tile kind under the given policy.
func decodeTile(code int, policy CodePolicy) (TileKind, bool) {
	if k, ok := legacyCodes[code]; ok {
		return k, true
	}
	if policy == LenientCodes {
		return TileEmpty, true
	}
	return TileEmpty, false
}
