package middleware

import (
	"context"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "termine-api/gen/termine/v1"
)

// ForwardedForKey is the metadata key carrying the original client address.
const ForwardedForKey = "x-forwarded-for"

const (
	cleanupInterval = time.Minute
	staleAfter      = 3 * time.Minute
)

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter keeps one token bucket per client address.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	r       rate.Limit
	burst   int
	stop    chan struct{}
	once    sync.Once
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		r:       rate.Limit(rps),
		burst:   burst,
		stop:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) cleanup() {
	t := time.NewTicker(cleanupInterval)
	defer t.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case now := <-t.C:
			rl.evict(now)
		}
	}
}

func (rl *RateLimiter) evict(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, c := range rl.clients {
		if now.Sub(c.seen) > staleAfter {
			delete(rl.clients, key)
		}
	}
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if c, ok := rl.clients[key]; ok {
		c.seen = time.Now()
		return c.lim
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.clients[key] = &client{lim: l, seen: time.Now()}
	return l
}

// Allow reports whether key may make another request now.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.get(key).Allow()
}

// calls that write or run the overlap check
var limited = map[string]bool{
	pb.TermineService_CreateAppointment_FullMethodName:   true,
	pb.TermineService_UpdateAppointment_FullMethodName:   true,
	pb.TermineService_DeleteAppointment_FullMethodName:   true,
	pb.TermineService_ValidateAppointment_FullMethodName: true,
	pb.TermineService_CreateCustomer_FullMethodName:      true,
	pb.TermineService_UpdateCustomer_FullMethodName:      true,
	pb.TermineService_DeleteCustomer_FullMethodName:      true,
}

func peerHost(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// clientKey prefers the address forwarded by the gRPC-Web bridge, whose own
// connection would otherwise put every browser into one bucket. The bridge
// dials over loopback; forwarded metadata from any other peer is ignored.
func clientKey(ctx context.Context) string {
	host := peerHost(ctx)
	if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
		return host
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(ForwardedForKey); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}
	return host
}

func RateLimit(rl *RateLimiter, log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !limited[info.FullMethod] {
			return next(ctx, req)
		}
		ip := clientKey(ctx)
		if !rl.Allow(ip) {
			log.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("method", info.FullMethod))
			return nil, status.Error(codes.ResourceExhausted, "too many requests")
		}
		return next(ctx, req)
	}
}
