package middleware

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"wedding-assistant/config"
	"wedding-assistant/pkg/log"
)

type Middleware struct {
	l        log.Logger
	config   *config.Config
	limiters *lru.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(l log.Logger, cfg *config.Config) Middleware {
	requestsPerMin := cfg.RateLimit.RequestsPerMin
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return Middleware{
		l:      l,
		config: cfg,
		limiters: lru.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}
