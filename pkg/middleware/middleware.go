package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

// XStaffIDHeader carries the id of the staff user acting on the request.
// Authentication happens upstream; the header is trusted as is.
const XStaffIDHeader = "X-Staff-Id"

type staffKey struct{}

func SetStaffContext(ctx context.Context, staffID int64) context.Context {
	return context.WithValue(ctx, staffKey{}, staffID)
}

// StaffFromContext returns nil when the request carried no staff id.
func StaffFromContext(ctx context.Context) *int64 {
	id, ok := ctx.Value(staffKey{}).(int64)
	if !ok {
		return nil
	}
	return &id
}

func StaffContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		raw := req.Header.Get(XStaffIDHeader)
		if raw == "" {
			return next(c)
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid "+XStaffIDHeader+" header")
		}
		c.SetRequest(req.WithContext(SetStaffContext(req.Context(), id)))
		return next(c)
	}
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(cfg logger.Log) middleware.RequestLoggerConfig {
	log := logger.NewLogger(cfg, "echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
