package config

type JanitorCfg struct {
	// CallsPerSec defines how many cleanup sweeps the janitor performs per
	// second. A sweep scans every entry and removes the expired ones, so a
	// handful of calls per second is enough for most workloads. Increasing
	// this value reclaims memory sooner but costs CPU proportionally to the
	// entry count.
	CallsPerSec int64 `yaml:"calls_per_sec"`
}

func (cfg *JanitorCfg) Enabled() bool {
	return cfg != nil
}
