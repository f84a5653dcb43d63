package config

const (
	KeyAPIURL     = "magic_api_url"
	KeyAPITimeout = "magic_api_timeout"
	KeyLogLevel   = "log_level"
	KeyHost       = "host"
	KeyPort       = "port"
)
