package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
)

const (
	// Namespace for all metrics
	namespace = "colonybot"
	// Subsystem for scheduler metrics
	subsystem = "scheduler"
)

// ProductionMetricsCollector records the per-tick decisions of the
// production scheduler for Prometheus scraping.
type ProductionMetricsCollector struct {
	ticksTotal      *prometheus.CounterVec
	spawnsTotal     *prometheus.CounterVec
	renewalsTotal   *prometheus.CounterVec
	rejectionsTotal *prometheus.CounterVec
	energyAvailable *prometheus.GaugeVec
	phase           *prometheus.GaugeVec
	unitCounts      *prometheus.GaugeVec
}

// NewProductionMetricsCollector creates the collector and registers its
// metrics on the given registry.
func NewProductionMetricsCollector(registry *prometheus.Registry) *ProductionMetricsCollector {
	c := &ProductionMetricsCollector{
		ticksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ticks_total",
				Help:      "Total scheduling passes executed per colony",
			},
			[]string{"colony"},
		),
		spawnsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "spawns_total",
				Help:      "Spawn commands issued by colony, role, and action status",
			},
			[]string{"colony", "role", "status"},
		),
		renewalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "renewals_total",
				Help:      "Renewal commands issued by colony and action status",
			},
			[]string{"colony", "status"},
		),
		rejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "candidate_rejections_total",
				Help:      "Candidates dropped at admission by colony and reason",
			},
			[]string{"colony", "reason"},
		),
		energyAvailable: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "energy_available",
				Help:      "Energy available at the last observed tick",
			},
			[]string{"colony"},
		),
		phase: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "phase",
				Help:      "Strategic phase flag per colony (1 = active phase)",
			},
			[]string{"colony", "phase"},
		),
		unitCounts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "unit_count",
				Help:      "Living unit count per colony and role",
			},
			[]string{"colony", "role"},
		),
	}

	registry.MustRegister(
		c.ticksTotal,
		c.spawnsTotal,
		c.renewalsTotal,
		c.rejectionsTotal,
		c.energyAvailable,
		c.phase,
		c.unitCounts,
	)

	return c
}

// RecordTick updates the per-tick observation gauges
func (c *ProductionMetricsCollector) RecordTick(state *colony.State) {
	if state == nil {
		return
	}
	c.ticksTotal.WithLabelValues(state.Name).Inc()
	c.energyAvailable.WithLabelValues(state.Name).Set(float64(state.EnergyAvailable))
	for _, role := range colony.AllRoles() {
		c.unitCounts.WithLabelValues(state.Name, role.String()).Set(float64(state.Count(role)))
	}
}

// RecordSpawn counts an issued spawn command and its synchronous outcome
func (c *ProductionMetricsCollector) RecordSpawn(colonyName string, role colony.Role, status string) {
	c.spawnsTotal.WithLabelValues(colonyName, role.String(), status).Inc()
}

// RecordRenewal counts an issued renewal command and its synchronous outcome
func (c *ProductionMetricsCollector) RecordRenewal(colonyName string, status string) {
	c.renewalsTotal.WithLabelValues(colonyName, status).Inc()
}

// RecordRejection counts a candidate dropped at admission
func (c *ProductionMetricsCollector) RecordRejection(colonyName string, reason string) {
	c.rejectionsTotal.WithLabelValues(colonyName, reason).Inc()
}

// RecordPhase marks the colony's current strategic phase
func (c *ProductionMetricsCollector) RecordPhase(colonyName string, phase economy.Phase) {
	for _, p := range []economy.Phase{
		economy.PhaseBootstrap, economy.PhaseDeveloping, economy.PhaseStable, economy.PhaseEmergency,
	} {
		v := 0.0
		if p == phase {
			v = 1.0
		}
		c.phase.WithLabelValues(colonyName, string(p)).Set(v)
	}
}
