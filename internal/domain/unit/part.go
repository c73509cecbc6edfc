package unit

// Part is one capability-part in a unit's body. Costs are fixed by the
// simulation rules and never configurable.
type Part int

const (
	PartMove Part = iota
	PartCarry
	PartWork
	PartAttack
	PartRanged
	PartHeal
	PartClaim
	PartTough
)

var partCosts = map[Part]int{
	PartMove:   50,
	PartCarry:  50,
	PartWork:   100,
	PartAttack: 80,
	PartRanged: 150,
	PartHeal:   250,
	PartClaim:  600,
	PartTough:  10,
}

var partNames = map[Part]string{
	PartMove:   "move",
	PartCarry:  "carry",
	PartWork:   "work",
	PartAttack: "attack",
	PartRanged: "ranged",
	PartHeal:   "heal",
	PartClaim:  "claim",
	PartTough:  "tough",
}

// Cost returns the part's fixed energy cost. Unknown parts cost 0 so a
// malformed body degrades to an unaffordable-looking zero rather than a panic.
func (p Part) Cost() int {
	return partCosts[p]
}

func (p Part) String() string {
	if name, ok := partNames[p]; ok {
		return name
	}
	return "unknown"
}

// WorkPower is the energy one work part harvests per tick.
const WorkPower = 2

// BuildPower is the construction progress one work part contributes per tick.
const BuildPower = 5

// CarryCapacity is the energy one carry part can hold.
const CarryCapacity = 50
