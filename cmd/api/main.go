package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/venturechess/portfolio/backend/internal/client/backend"
	"github.com/venturechess/portfolio/backend/internal/config"
	"github.com/venturechess/portfolio/backend/internal/handler"
	contactHandler "github.com/venturechess/portfolio/backend/internal/handler/contact"
	"github.com/venturechess/portfolio/backend/internal/handler/site"
	"github.com/venturechess/portfolio/backend/internal/handler/system"
	"github.com/venturechess/portfolio/backend/internal/logging"
	"github.com/venturechess/portfolio/backend/internal/model/content"
	contactService "github.com/venturechess/portfolio/backend/internal/service/contact"
	"github.com/venturechess/portfolio/backend/internal/service/contactform"
	statusService "github.com/venturechess/portfolio/backend/internal/service/status"
	"github.com/venturechess/portfolio/backend/internal/store"
)

const (
	feedBuffer         = 16
	formSweepInterval  = 5 * time.Minute
	formIdleExpiration = 30 * time.Minute
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if envErr != nil {
		logger.Info("no .env file loaded, continuing with process environment", zap.Error(envErr))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	siteContent, err := content.Load(cfg.Site.ContentFile)
	if err != nil {
		return err
	}
	page, err := site.NewPage()
	if err != nil {
		return err
	}

	// Visitor forms reach the backend over HTTP even when it runs in this process.
	client := backend.New(cfg.Site.BackendBaseURL, backend.WithHTTPClient(&http.Client{Timeout: cfg.Site.BackendTimeout}))
	forms := contactform.NewRegistry(client, logger.Named("contactform"))
	pageHandler := site.New(page, content.NewStaticProvider(siteContent), forms, cfg.Site.CookieSecure, logger.Named("site"))

	g, gctx := errgroup.WithContext(ctx)

	var (
		apiContacts *contactHandler.Handler
		apiSystem   *system.Handler
	)
	if cfg.Server.ServeAPI {
		db, err := store.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer db.Close()
		logger.Info("store opened", zap.String("driver", cfg.Store.Driver), zap.String("path", cfg.Store.Path))

		feed := contactService.NewFeed(feedBuffer, logger.Named("feed"))
		contacts := contactService.NewService(db, feed, logger.Named("contact"))
		apiContacts = contactHandler.New(contacts, feed, logger)
		apiSystem = system.New(db, statusService.NewService(db), logger)

		g.Go(func() error { return feed.Run(gctx) })
	}

	router := handler.NewRouter(logger, cfg.CORS, pageHandler, apiContacts, apiSystem)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g.Go(func() error { return forms.Run(gctx, formSweepInterval, formIdleExpiration) })
	g.Go(func() error {
		logger.Info("portfolio listening",
			zap.String("addr", cfg.Server.Addr),
			zap.Bool("api", cfg.Server.ServeAPI),
			zap.String("backend", client.BaseURL()))
		return runServer(gctx, srv)
	})

	return g.Wait()
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
