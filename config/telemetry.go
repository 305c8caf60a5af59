package config

import "time"

type TelemetryCfg struct {
	// LogsInterval defines how often counter snapshots are logged.
	// Example: "5s".
	LogsInterval time.Duration `yaml:"logs_interval"`
}

func (cfg *TelemetryCfg) Enabled() bool {
	return cfg != nil
}
