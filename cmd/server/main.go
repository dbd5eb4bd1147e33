package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "termine-api/gen/termine/v1"
	"termine-api/internal/config"
	gweb "termine-api/internal/grpcweb"
	"termine-api/internal/handler"
	"termine-api/internal/jobs"
	"termine-api/internal/logging"
	"termine-api/internal/middleware"
	"termine-api/internal/rest"
	"termine-api/internal/schedule"
	"termine-api/internal/service"
	"termine-api/internal/store"
	"termine-api/internal/store/filestore"
	"termine-api/internal/store/postgres"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case store.DriverPostgres:
		st, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to postgres")
		if err := st.Migrate(ctx, cfg.MigrationsPath); err != nil {
			st.Close()
			return nil, err
		}
		logger.Info("migration applied", zap.String("path", cfg.MigrationsPath))
		return st, nil
	case store.DriverFile:
		st, err := filestore.Open(cfg.DataFile, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("using file store", zap.String("path", cfg.DataFile))
		return st, nil
	case store.DriverMemory:
		logger.Warn("using in-memory store, data is lost on exit")
		return filestore.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer st.Close()

	validator := schedule.NewValidator(st, cfg.Policy(), cfg.Location(), logger)
	appointments := service.NewAppointmentService(st, validator, logger)
	customers := service.NewCustomerService(st, logger)

	proxies, err := middleware.ParseTrustedProxies(cfg.Proxies())
	if err != nil {
		return fmt.Errorf("config: TRUSTED_PROXIES: %w", err)
	}

	// grpc server
	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rl.Stop()
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.Recovery(logger),
			middleware.Logging(logger),
			middleware.RateLimit(rl, logger),
		),
	)
	pb.RegisterTermineServiceServer(srv, handler.New(appointments, customers, logger))

	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	errc := make(chan error, 2)
	go func() {
		logger.Info("grpc listening", zap.String("port", cfg.Port))
		if err := srv.Serve(lis); err != nil {
			errc <- fmt.Errorf("grpc: %w", err)
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.New("127.0.0.1:"+cfg.Port, logger)
	if err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	bridge.TrustProxies(proxies)
	defer bridge.Close()

	httpSrv := &http.Server{
		Addr: ":" + cfg.WebPort,
		Handler: rest.NewServer(rest.NewHandler(appointments, customers, logger), rest.Options{
			Origins: cfg.Origins(),
			Limiter: rl,
			Proxies: proxies,
			Bridge:  bridge.Handler(),
			Log:     logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("http listening", zap.String("port", cfg.WebPort), zap.Int("trusted_proxies", len(cfg.Proxies())))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http: %w", err)
		}
	}()

	sweep, err := jobs.New(cfg.StatusSweepCron, cfg.Location(), appointments, logger)
	if err != nil {
		return err
	}
	sweep.Start()
	defer sweep.Stop()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-ch:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errc:
		srv.Stop()
		httpSrv.Close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	srv.GracefulStop()
	return nil
}
