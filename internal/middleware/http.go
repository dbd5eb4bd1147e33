package middleware

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"
)

// AccessLog writes one structured line per request through zap.
func AccessLog(log *zap.Logger, proxies TrustedProxies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return handlers.CustomLoggingHandler(io.Discard, next, func(_ io.Writer, p handlers.LogFormatterParams) {
			log.Info("http",
				zap.String("method", p.Request.Method),
				zap.String("path", p.URL.Path),
				zap.Int("status", p.StatusCode),
				zap.Int("size", p.Size),
				zap.Duration("duration", time.Since(p.TimeStamp)),
				zap.String("ip", proxies.ClientIP(p.Request)),
			)
		})
	}
}

type recoveryLogger struct{ log *zap.Logger }

func (l recoveryLogger) Println(v ...any) {
	l.log.Error("panic in http handler", zap.String("panic", fmt.Sprint(v...)))
}

// Recover answers 500 when a handler panics.
func Recover(log *zap.Logger) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{log}))
}

// RateLimitHTTP limits requests that change state. Reads pass through.
// Clients are keyed by proxies.ClientIP.
func RateLimitHTTP(rl *RateLimiter, proxies TrustedProxies, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}
			ip := proxies.ClientIP(r)
			if !rl.Allow(ip) {
				log.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", r.URL.Path))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				io.WriteString(w, `{"error":"too many requests"}`+"\n")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
