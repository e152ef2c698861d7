package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// ServiceName is the default service identifier used in logs and traces
	// when the config does not override it.
	ServiceName = "nutrivida_backend"
)
