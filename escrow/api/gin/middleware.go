package gin

import (
	"crypto/subtle"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/multiversx/mx-chain-go/api/shared"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader      = "X-Request-ID"
	requestIDContextKey  = "requestID"
	apiTokenHeader       = "X-Api-Token"
	unknownRoute         = "unknown"
	maxTrackedClients    = 10000
	clientIdleTimeout    = 10 * time.Minute
	clientsSweepInterval = time.Minute
)

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if len(requestID) == 0 {
			requestID = uuid.New().String()
		}

		c.Set(requestIDContextKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}

func metricsMiddleware(metrics HTTPMetricsHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if len(route) == 0 {
			route = unknownRoute
		}

		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status())
		log.Trace("served request", "method", c.Request.Method, "route", route,
			"status", c.Writer.Status(), "duration", time.Since(start), "request id", c.GetString(requestIDContextKey))
	}
}

// clientRateLimiter keeps one token bucket per client IP. Buckets idle for clientIdleTimeout are
// evicted and at most maxTrackedClients are tracked at once
type clientRateLimiter struct {
	mut       sync.Mutex
	limiters  map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	getTime   func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientRateLimiter(requestsPerSecond float64, burst int) (*clientRateLimiter, error) {
	if requestsPerSecond <= 0 || burst < 1 {
		return nil, ErrInvalidRateLimit
	}

	return &clientRateLimiter{
		limiters:  make(map[string]*clientLimiter),
		limit:     rate.Limit(requestsPerSecond),
		burst:     burst,
		lastSweep: time.Now(),
		getTime:   time.Now,
	}, nil
}

func (crl *clientRateLimiter) allow(client string) bool {
	crl.mut.Lock()
	defer crl.mut.Unlock()

	now := crl.getTime()
	if now.Sub(crl.lastSweep) >= clientsSweepInterval {
		crl.sweep(now)
	}

	entry, found := crl.limiters[client]
	if !found {
		if len(crl.limiters) >= maxTrackedClients {
			log.Debug("rate limiter is tracking too many clients, rejecting", "client", client)
			return false
		}

		entry = &clientLimiter{
			limiter: rate.NewLimiter(crl.limit, crl.burst),
		}
		crl.limiters[client] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (crl *clientRateLimiter) sweep(now time.Time) {
	for client, entry := range crl.limiters {
		if now.Sub(entry.lastSeen) >= clientIdleTimeout {
			delete(crl.limiters, client)
		}
	}
	crl.lastSweep = now
}

func (crl *clientRateLimiter) numClients() int {
	crl.mut.Lock()
	defer crl.mut.Unlock()

	return len(crl.limiters)
}

func (crl *clientRateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !crl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, shared.GenericAPIResponse{
				Data:  nil,
				Error: "too many requests",
				Code:  shared.ReturnCodeSystemBusy,
			})
			return
		}

		c.Next()
	}
}

// jsonContentTypeMiddleware only lets JSON bodies through. Browsers cannot send them cross-origin
// without a CORS preflight
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != gin.MIMEJSON {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, shared.GenericAPIResponse{
				Data:  nil,
				Error: ErrUnsupportedContentType.Error(),
				Code:  shared.ReturnCodeRequestError,
			})
			return
		}

		c.Next()
	}
}

// apiTokenMiddleware requires the configured token in the apiTokenHeader
func apiTokenMiddleware(token string) gin.HandlerFunc {
	expected := []byte(token)

	return func(c *gin.Context) {
		provided := []byte(c.GetHeader(apiTokenHeader))
		if subtle.ConstantTimeCompare(provided, expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, shared.GenericAPIResponse{
				Data:  nil,
				Error: ErrInvalidApiToken.Error(),
				Code:  shared.ReturnCodeRequestError,
			})
			return
		}

		c.Next()
	}
}
