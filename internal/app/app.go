package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/re-fagiano/fixlab/internal/config"
	"github.com/re-fagiano/fixlab/internal/platform/closer"
	"github.com/re-fagiano/fixlab/internal/platform/logger"
	"github.com/re-fagiano/fixlab/internal/transport/http/health"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initFrontend,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(_ context.Context) error {
		return logger.Sync()
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

// initFrontend only warns: the API stays usable without a built frontend,
// SPA requests answer 503 until the dist directory shows up.
func (a *app) initFrontend(ctx context.Context) error {
	if !a.di.SPAHandler(ctx).Ready() {
		logger.Warn(ctx, "frontend build not found, serving API only",
			logger.String("dist_dir", config.C().Storage.DistDir()),
		)
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Route("/api/v1", func(api chi.Router) {
		a.di.CustomerHandler(ctx).Register(api)
		a.di.TicketHandler(ctx).Register(api)
		a.di.PartHandler(ctx).Register(api)
		a.di.DashboardHandler(ctx).Register(api)
		a.di.CalendarHandler(ctx).Register(api)
		a.di.DiagnosisHandler(ctx).Register(api)
		a.di.BackupHandler(ctx).Register(api)
	})

	r.Handle("/api/deepseek", a.di.ProxyHandler(ctx))
	r.HandleFunc("/health", health.HealthCheck)
	r.Handle("/*", a.di.SPAHandler(ctx))

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(ctx,
			"🚀 fixlab server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			config.C().Server.ShutdownTimeout(),
		)
		defer cancel()

		return a.server.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
