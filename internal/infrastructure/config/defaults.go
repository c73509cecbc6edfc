package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "colonybot"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "colonybot"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "colonybot.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Daemon defaults
	if cfg.Daemon.TickRate == 0 {
		cfg.Daemon.TickRate = 10
	}
	if cfg.Daemon.PIDFile == "" {
		cfg.Daemon.PIDFile = "/tmp/colonybot.pid"
	}
	if cfg.Daemon.ShutdownTimeout == 0 {
		cfg.Daemon.ShutdownTimeout = 10 * time.Second
	}
	if len(cfg.Daemon.Colonies) == 0 {
		cfg.Daemon.Colonies = []string{"W1N1"}
	}

	// Scheduler defaults
	if cfg.Scheduler.Weights.Harvester == 0 {
		cfg.Scheduler.Weights.Harvester = 100
	}
	if cfg.Scheduler.Weights.Hauler == 0 {
		cfg.Scheduler.Weights.Hauler = 80
	}
	if cfg.Scheduler.Weights.Upgrader == 0 {
		cfg.Scheduler.Weights.Upgrader = 40
	}
	if cfg.Scheduler.Weights.Builder == 0 {
		cfg.Scheduler.Weights.Builder = 50
	}
	if cfg.Scheduler.Weights.Defender == 0 {
		cfg.Scheduler.Weights.Defender = 60
	}
	if cfg.Scheduler.Weights.Expansion == 0 {
		cfg.Scheduler.Weights.Expansion = 30
	}
	if cfg.Scheduler.Weights.Scout == 0 {
		cfg.Scheduler.Weights.Scout = 10
	}
	if cfg.Scheduler.StoredEnergyHighWater == 0 {
		cfg.Scheduler.StoredEnergyHighWater = 10000
	}
	if cfg.Scheduler.ExpansionLevel == 0 {
		cfg.Scheduler.ExpansionLevel = 3
	}
	if cfg.Scheduler.ExpansionMinHarvesters == 0 {
		cfg.Scheduler.ExpansionMinHarvesters = 2
	}
	if cfg.Scheduler.ExpansionMinHaulers == 0 {
		cfg.Scheduler.ExpansionMinHaulers = 1
	}
	if cfg.Scheduler.MinimumCounts == nil {
		cfg.Scheduler.MinimumCounts = map[string]int{
			"harvester": 1,
			"hauler":    1,
			"upgrader":  1,
		}
	}

	// Governor defaults
	if cfg.Governor.SuppressCapacityRatio == 0 {
		cfg.Governor.SuppressCapacityRatio = 1.3
	}
	if cfg.Governor.SuppressEtaTicks == 0 {
		cfg.Governor.SuppressEtaTicks = 500
	}
	if cfg.Governor.DelayEtaTicks == 0 {
		cfg.Governor.DelayEtaTicks = 300
	}
	if cfg.Governor.BuildEfficiency == 0 {
		cfg.Governor.BuildEfficiency = 0.4
	}
	if cfg.Governor.CheapRenewalFraction == 0 {
		cfg.Governor.CheapRenewalFraction = 0.5
	}

	// Metrics defaults
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9091
	}
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Economy defaults
	if cfg.Economy.RefreshInterval == 0 {
		cfg.Economy.RefreshInterval = 100
	}
	if cfg.Economy.EmergencyHostileDPS == 0 {
		cfg.Economy.EmergencyHostileDPS = 200
	}
	if cfg.Economy.BootstrapMaxLevel == 0 {
		cfg.Economy.BootstrapMaxLevel = 2
	}
	if cfg.Economy.DevelopingMaxLevel == 0 {
		cfg.Economy.DevelopingMaxLevel = 5
	}
	if cfg.Economy.LowComputeBucket == 0 {
		cfg.Economy.LowComputeBucket = 1000
	}
	if cfg.Economy.TelemetryWindow == 0 {
		cfg.Economy.TelemetryWindow = 100
	}
}
