package config

const (
	KeyLogLevel     = "log_level"
	KeyHTTPHost     = "http_host"
	KeyHTTPPort     = "http_port"
	KeyCandleOffset = "default_candle_lighting_offset"
)
