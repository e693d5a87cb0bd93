package usecasecontract

import "time"

// IConfigProvider exposes the settings read by bootstrap and the HTTP layer.
type IConfigProvider interface {
	GetPort() string
	GetCORSAllowOrigins() []string
	GetRateLimitPerSecond() float64
	GetPageCacheTTL() time.Duration
}
