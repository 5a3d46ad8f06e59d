package backend

import "github.com/lixenwraith/termkit/theme"

// PairDriver is the slice of a terminal driver the pair pool needs:
// the pair-count ceiling and the palette-definition primitive.
// Implementations reduce each abstract color to their supported palette
// before registering the pair.
type PairDriver interface {
	// PairCount returns the maximum number of color pairs the terminal
	// supports, including the reserved default pair 0
	PairCount() int

	// InitPair registers a pair under the given slot
	InitPair(slot int16, pair theme.ColorPair)
}

// PairPool maps color pairs to driver slots. Slots are issued from 1
// upward; slot 0 is the terminal's default pair and is never allocated.
// The pool holds at most PairCount()−1 entries.
//
// Eviction is deliberately not LRU: at capacity the pool always
// reclaims the highest slot it has issued, whichever pair holds it.
// This matches the existing driver protocol; cycling through more
// distinct pairs than the terminal has slots can visibly thrash the
// reclaimed slot.
type PairPool struct {
	driver PairDriver
	pairs  map[theme.ColorPair]int16
}

// NewPairPool creates an empty pool bound to a driver
func NewPairPool(driver PairDriver) *PairPool {
	return &PairPool{
		driver: driver,
		pairs:  make(map[theme.ColorPair]int16),
	}
}

// GetOrCreate returns the slot for a pair, registering it with the
// driver on first use. Never fails: at capacity it reuses the highest
// issued slot. Memoized hits do not touch the driver.
func (pp *PairPool) GetOrCreate(pair theme.ColorPair) int16 {
	if slot, ok := pp.pairs[pair]; ok {
		return slot
	}
	return pp.insert(pair)
}

// insert registers a new pair, evicting if the terminal is out of slots
func (pp *PairPool) insert(pair theme.ColorPair) int16 {
	n := int16(1 + len(pp.pairs))
	target := n
	if pp.driver.PairCount() <= int(n) {
		// The world is too small for both of us
		target = n - 1
		for p, slot := range pp.pairs {
			if slot == target {
				delete(pp.pairs, p)
			}
		}
	}
	pp.pairs[pair] = target
	pp.driver.InitPair(target, pair)
	return target
}

// Len returns the number of cached pairs
func (pp *PairPool) Len() int {
	return len(pp.pairs)
}

// Contains reports whether a pair is currently cached
func (pp *PairPool) Contains(pair theme.ColorPair) bool {
	_, ok := pp.pairs[pair]
	return ok
}
