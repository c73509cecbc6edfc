package colony

// RemoteSite summarizes one remote location monitored by a colony. The
// snapshot carries them in a fixed order; target resolution scans that order
// and takes the first site whose coverage falls short of its need.
type RemoteSite struct {
	Name string

	// Sources is the number of harvestable energy sources at the site.
	Sources int

	// Distance is the path length from the home colony in tiles. It feeds
	// the transport ceiling: longer hauls need more haulers per source.
	Distance int

	Threat float64

	// Reserved reports whether the site's controller currently holds our
	// reservation.
	Reserved bool

	// IntelAge is the number of ticks since the site was last scouted.
	// Negative means never scouted.
	IntelAge int64

	AssignedHarvesters int
	AssignedHaulers    int
	HasDefender        bool
}

// intelStaleAfter is how many ticks scouting intel stays fresh.
const intelStaleAfter = 1500

// transportLegTiles is the haul distance one hauler covers per source
// before a second hauler is needed.
const transportLegTiles = 50

// TransportCeiling returns how many haulers the site can usefully employ,
// scaling with source count and haul distance.
func (r RemoteSite) TransportCeiling() int {
	if r.Sources <= 0 {
		return 0
	}
	legs := 1 + r.Distance/transportLegTiles
	return r.Sources * legs
}

// NeedsHarvester reports whether the site has an unharvested source.
func (r RemoteSite) NeedsHarvester() bool {
	return r.AssignedHarvesters < r.Sources
}

// NeedsHauler reports whether the site is below its transport ceiling.
// A site with no assigned harvesters has nothing to haul.
func (r RemoteSite) NeedsHauler() bool {
	return r.AssignedHarvesters > 0 && r.AssignedHaulers < r.TransportCeiling()
}

// NeedsReservation reports whether the site lacks our reservation.
// Sites under threat are not worth reserving until cleared.
func (r RemoteSite) NeedsReservation() bool {
	return !r.Reserved && r.Threat == 0
}

// NeedsScout reports whether the site's intel is absent or stale.
func (r RemoteSite) NeedsScout() bool {
	return r.IntelAge < 0 || r.IntelAge > intelStaleAfter
}

// NeedsDefender reports whether the site is threatened and undefended.
func (r RemoteSite) NeedsDefender() bool {
	return r.Threat > 0 && !r.HasDefender
}
