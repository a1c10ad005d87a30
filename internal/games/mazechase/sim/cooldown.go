package sim

// CooldownKey identifies a cooldown entry. Pair cooldowns set Other; tile
// cooldowns set Tile and leave Other at -1.
type CooldownKey struct {
	Entity EntityID
	Other  EntityID
	Tile   Coord
}

func pairKey(a, b EntityID) CooldownKey {
	return CooldownKey{Entity: a, Other: b}
}

func tileKey(e EntityID, tile Coord) CooldownKey {
	return CooldownKey{Entity: e, Other: -1, Tile: tile}
}

// Cooldowns counts down per-key tick windows.
type Cooldowns map[CooldownKey]int

// Ready reports whether key has no pending cooldown.
func (c Cooldowns) Ready(key CooldownKey) bool {
	return c[key] <= 0
}

// Set arms key for ticks ticks.
func (c Cooldowns) Set(key CooldownKey, ticks int) {
	if ticks <= 0 {
		return
	}
	c[key] = ticks
}

// Decay counts every entry down by one, dropping those that reach zero.
func (c Cooldowns) Decay() {
	for k, v := range c {
		if v <= 1 {
			delete(c, k)
			continue
		}
		c[k] = v - 1
	}
}

// Clear removes every entry.
func (c Cooldowns) Clear() {
	clear(c)
}
