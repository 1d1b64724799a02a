package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type LoggerOpts func(*middleware.RequestLoggerConfig)

// WithSkipPrefixes drops records for request paths starting with any prefix.
func WithSkipPrefixes(prefixes ...string) LoggerOpts {
	return func(cfg *middleware.RequestLoggerConfig) {
		cfg.Skipper = func(c echo.Context) bool {
			path := c.Request().URL.Path
			for _, p := range prefixes {
				if strings.HasPrefix(path, p) {
					return true
				}
			}
			return false
		}
	}
}

func WithLogger(logger *slog.Logger) LoggerOpts {
	return func(cfg *middleware.RequestLoggerConfig) {
		cfg.LogValuesFunc = logValues(logger)
	}
}

func Logger(opts ...LoggerOpts) echo.MiddlewareFunc {
	o := defaultOpt()
	for _, opt := range opts {
		opt(&o)
	}

	return middleware.RequestLoggerWithConfig(o)
}

func defaultOpt() middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogLatency:   true,
		LogURI:       true,
		LogMethod:    true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			return logValues(slog.Default())(c, v)
		},
	}
}

func logValues(logger *slog.Logger) func(echo.Context, middleware.RequestLoggerValues) error {
	return func(c echo.Context, v middleware.RequestLoggerValues) error {
		attrs := []slog.Attr{
			slog.String("method", v.Method),
			slog.String("uri", v.URI),
			slog.Int("status", v.Status),
			slog.Duration("latency", v.Latency),
		}
		if v.RequestID != "" {
			attrs = append(attrs, slog.String("request_id", v.RequestID))
		}

		ctx := c.Request().Context()
		switch {
		case v.Error != nil && v.Status >= http.StatusInternalServerError:
			attrs = append(attrs, slog.String("err", v.Error.Error()))
			logger.LogAttrs(ctx, slog.LevelError, "REQUEST_ERROR", attrs...)
		case v.Error != nil:
			attrs = append(attrs, slog.String("err", v.Error.Error()))
			logger.LogAttrs(ctx, slog.LevelWarn, "REQUEST_ERROR", attrs...)
		default:
			logger.LogAttrs(ctx, slog.LevelInfo, "REQUEST", attrs...)
		}
		return nil
	}
}
