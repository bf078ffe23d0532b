package config

import "time"

const defaultPort = 8080

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       100,
	Burst:      200,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Enabled: false,
	Port:    6060,
}

var defaultStats = Stats{
	Interval: 30 * time.Second,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default pprof settings.
func DefaultPprof() Pprof {
	return defaultPprof
}

// DefaultStats returns the default stats worker settings.
func DefaultStats() Stats {
	return defaultStats
}
