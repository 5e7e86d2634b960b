package httpv1

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	APIKeyHeader = "X-API-Key"

	ctxUserID   = "user_id"
	ctxUsername = "username"

	bearerPrefix = "Bearer "
)

type RateLimitConfig struct {
	RPS       float64
	Burst     int
	ExpiresIn time.Duration
}

// APIKeyAuth accepts requests whose X-API-Key matches one of keys.
func APIKeyAuth(keys []string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + APIKeyHeader,
		Validator: func(key string, c echo.Context) (bool, error) {
			for _, k := range keys {
				if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
					return true, nil
				}
			}
			return false, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			log.WithFields(log.Fields{
				"path":   c.Path(),
				"remote": c.RealIP(),
			}).Warn("api key rejected")
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid or missing API key"})
		},
	})
}

// KeyRateLimit applies a token bucket per API key, falling back to the client IP.
func KeyRateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RPS),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if key := c.Request().Header.Get(APIKeyHeader); key != "" {
				return key, nil
			}
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
		},
	})
}

// JWTAuth validates the bearer token and stores the user in the echo context.
func JWTAuth(auth service.Auth) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			}

			claims, err := auth.ParseToken(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				log.WithField("path", c.Path()).Debug(err)
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: service.ErrInvalidToken.Error()})
			}

			c.Set(ctxUserID, claims.UserID)
			c.Set(ctxUsername, claims.Username)
			return next(c)
		}
	}
}

func userID(c echo.Context) int {
	id, _ := c.Get(ctxUserID).(int)
	return id
}

// RequestLogger writes one logrus entry per request.
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
				"remote_ip":  v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	})
}

func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}
