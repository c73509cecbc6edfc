package simulation

import (
	"context"
	"fmt"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/spawn"
	"github.com/jappenzeller/colonybot/internal/domain/unit"
)

// World is a deterministic colony model: energy flows, unit expiry, spawn
// execution, and capacity construction, reduced to what the decision core
// observes and commands. It implements spawn.Actions, so the real
// scheduler drives it through the same port the game adapter would use.
//
// The model exists to catch death spirals: feedback loops where the
// scheduler's own decisions starve the economy it depends on.
type World struct {
	name string
	tick int64

	level    int
	progress float64

	energyAvailable int
	energyCapacity  int
	energyStored    int
	energyOnGround  int

	// sources is the number of home energy sources; each yields up to
	// sourceYield energy per tick when worked.
	sources int

	lastIncome float64

	units      []*simUnit
	nextUnitID int

	// spawnBusyUntil is the tick the in-progress spawn completes.
	spawnBusyUntil int64

	capacityWork colony.CapacityWork
	remotes      []colony.RemoteSite

	homeThreat float64
}

type simUnit struct {
	id      string
	role    colony.Role
	loadout unit.Loadout
	ttl     int
	site    string
}

const (
	unitLifetime    = 1500
	renewalWindow   = 200
	renewalGain     = 300
	sourceYield     = 10
	spawnBaseEnergy = 300
	ticksPerPart    = 3
	haulRoundTrip   = 10
)

// NewWorld creates a bootstrap-state colony: no units, base spawner energy,
// and the given number of home sources.
func NewWorld(name string, sources int) *World {
	return &World{
		name:            name,
		level:           1,
		energyAvailable: spawnBaseEnergy,
		energyCapacity:  spawnBaseEnergy,
		sources:         sources,
	}
}

// SetRemotes installs the remote sites the colony monitors.
func (w *World) SetRemotes(remotes []colony.RemoteSite) {
	w.remotes = remotes
}

// SetLevel forces the colony level, for expansion scenarios.
func (w *World) SetLevel(level int) {
	w.level = level
}

// SetHomeThreat injects hostile presence in the home colony.
func (w *World) SetHomeThreat(threat float64) {
	w.homeThreat = threat
}

// SpawnUnit implements spawn.Actions.
func (w *World) SpawnUnit(_ context.Context, _ string, req *spawn.Request) (spawn.ActionStatus, error) {
	if w.tick < w.spawnBusyUntil {
		return spawn.StatusBusy, nil
	}
	cost := req.Loadout.Cost()
	if cost > w.energyAvailable {
		return spawn.StatusInsufficientEnergy, nil
	}

	w.energyAvailable -= cost
	w.spawnBusyUntil = w.tick + int64(ticksPerPart*len(req.Loadout))
	w.nextUnitID++
	w.units = append(w.units, &simUnit{
		id:      fmt.Sprintf("%s-%d", req.Role, w.nextUnitID),
		role:    req.Role,
		loadout: req.Loadout,
		ttl:     unitLifetime,
		site:    req.Assignment,
	})
	return spawn.StatusOK, nil
}

// RenewNearestExpiring implements spawn.Actions.
func (w *World) RenewNearestExpiring(_ context.Context, _ string) (spawn.ActionStatus, error) {
	if w.tick < w.spawnBusyUntil {
		return spawn.StatusBusy, nil
	}

	var target *simUnit
	for _, u := range w.units {
		if u.ttl >= renewalWindow {
			continue
		}
		if target == nil || u.ttl < target.ttl {
			target = u
		}
	}
	if target == nil {
		return spawn.StatusRejected, nil
	}

	cost := target.loadout.Cost() / 10
	if cost > w.energyAvailable {
		return spawn.StatusInsufficientEnergy, nil
	}
	w.energyAvailable -= cost
	target.ttl += renewalGain
	if target.ttl > unitLifetime {
		target.ttl = unitLifetime
	}
	return spawn.StatusOK, nil
}

// Step advances the world one tick: harvest, haul, consume, build, expire.
func (w *World) Step() {
	w.tick++

	// Harvest: work parts against source throughput.
	harvestPower := 0
	for _, u := range w.units {
		if u.role == colony.RoleHarvester {
			harvestPower += u.loadout.WorkParts() * unit.WorkPower
		}
	}
	income := harvestPower
	if max := w.sources * sourceYield; income > max {
		income = max
	}
	w.energyOnGround += income
	w.lastIncome = float64(income)

	// Haul: carry throughput moves ground energy into the spawner complex,
	// overflowing into storage.
	haulPower := 0
	for _, u := range w.units {
		if u.role == colony.RoleHauler {
			haulPower += u.loadout.CarryCap() / haulRoundTrip
		}
	}
	moved := haulPower
	if moved > w.energyOnGround {
		moved = w.energyOnGround
	}
	w.energyOnGround -= moved

	free := w.energyCapacity - w.energyAvailable
	if moved <= free {
		w.energyAvailable += moved
	} else {
		w.energyAvailable = w.energyCapacity
		w.energyStored += moved - free
	}

	// The spawner trickles its own energy back; this is what lets a fully
	// collapsed colony eventually afford a minimal harvester again.
	if w.energyAvailable < spawnBaseEnergy {
		w.energyAvailable++
	}

	// Upgraders consume available energy into level progress.
	upgradePower := 0
	for _, u := range w.units {
		if u.role == colony.RoleUpgrader {
			upgradePower += u.loadout.WorkParts()
		}
	}
	if upgradePower > w.energyAvailable {
		upgradePower = w.energyAvailable
	}
	w.energyAvailable -= upgradePower
	w.progress += float64(upgradePower) / float64(1000*w.level)
	if w.progress >= 1 {
		w.levelUp()
	}

	// Builders progress capacity construction.
	if w.capacityWork.RemainingCost > 0 {
		buildPower := 0
		builders := 0
		for _, u := range w.units {
			if u.role == colony.RoleBuilder {
				buildPower += u.loadout.WorkParts() * unit.BuildPower
				builders++
			}
		}
		w.capacityWork.BuilderWorkParts = buildPower / unit.BuildPower
		w.capacityWork.UnitsBuilding = builders
		spent := buildPower
		if spent > w.capacityWork.RemainingCost {
			spent = w.capacityWork.RemainingCost
		}
		w.capacityWork.RemainingCost -= spent
		if w.capacityWork.RemainingCost == 0 {
			w.energyCapacity = w.capacityWork.FutureCapacity
			w.capacityWork = colony.CapacityWork{}
		}
	}

	// Expiry.
	alive := w.units[:0]
	for _, u := range w.units {
		u.ttl--
		if u.ttl > 0 {
			alive = append(alive, u)
		}
	}
	w.units = alive
}

// levelUp raises the colony level and opens a capacity expansion the
// builders must complete before the new capacity is usable.
func (w *World) levelUp() {
	w.progress = 0
	w.level++
	w.capacityWork = colony.CapacityWork{
		RemainingCost:  1500 * w.level,
		FutureCapacity: w.energyCapacity + 300,
	}
}

// Tick returns the current world tick.
func (w *World) Tick() int64 {
	return w.tick
}

// Count returns the number of living units with the role.
func (w *World) Count(role colony.Role) int {
	n := 0
	for _, u := range w.units {
		if u.role == role {
			n++
		}
	}
	return n
}

// Snapshot produces the colony state the decision core observes this tick.
// Targets are left nil: the coordinator's workforce assessment supplies
// them, exactly as in production.
func (w *World) Snapshot() *colony.State {
	counts := make(map[colony.Role]int)
	nearExpiry := 0
	cheapest := 0
	for _, u := range w.units {
		counts[u.role]++
		if u.ttl < renewalWindow {
			nearExpiry++
			if cost := u.loadout.Cost(); cheapest == 0 || cost < cheapest {
				cheapest = cost
			}
		}
	}

	sites := 0
	if w.capacityWork.RemainingCost > 0 {
		sites = 1
	}

	return &colony.State{
		Name:                   w.name,
		Tick:                   w.tick,
		Level:                  w.level,
		Progress:               w.progress,
		EnergyAvailable:        w.energyAvailable,
		EnergyCapacity:         w.energyCapacity,
		EnergyStored:           w.energyStored,
		EnergyIncome:           w.lastIncome,
		MaxEnergyIncome:        float64(w.sources * sourceYield),
		Counts:                 counts,
		HomeThreat:             w.homeThreat,
		SpawnerBusy:            w.tick < w.spawnBusyUntil,
		ConstructionSites:      sites,
		HasStorage:             w.energyStored > 0,
		EnergyOnGround:         w.energyOnGround,
		StorageFreeCapacity:    w.energyCapacity - w.energyAvailable,
		NearExpiryUnits:        nearExpiry,
		CheapestNearExpiryCost: cheapest,
		ComputeBucket:          10000,
		Remotes:                w.remotes,
		Capacity:               w.capacityWork,
	}
}
