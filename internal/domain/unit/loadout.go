package unit

// Loadout is the ordered part composition of a unit. Order matters to the
// simulation (front parts absorb damage first), so builders emit parts in a
// deliberate, deterministic sequence.
type Loadout []Part

// Cost returns the total energy cost of the composition.
func (l Loadout) Cost() int {
	total := 0
	for _, p := range l {
		total += p.Cost()
	}
	return total
}

// Count returns how many parts of the given kind the loadout carries.
func (l Loadout) Count(kind Part) int {
	n := 0
	for _, p := range l {
		if p == kind {
			n++
		}
	}
	return n
}

// WorkParts is shorthand for Count(PartWork).
func (l Loadout) WorkParts() int {
	return l.Count(PartWork)
}

// CarryCap returns the total energy the loadout can carry.
func (l Loadout) CarryCap() int {
	return l.Count(PartCarry) * CarryCapacity
}

// Empty reports whether the loadout has no parts.
func (l Loadout) Empty() bool {
	return len(l) == 0
}

// Repeat appends n copies of the part and returns the extended loadout.
func (l Loadout) Repeat(kind Part, n int) Loadout {
	for i := 0; i < n; i++ {
		l = append(l, kind)
	}
	return l
}
