package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sproutly/SPROUT-MOBILE/api"
	"github.com/Sproutly/SPROUT-MOBILE/generator"
	"github.com/Sproutly/SPROUT-MOBILE/session"
	. "github.com/Sproutly/SPROUT-MOBILE/shared"
	"github.com/Sproutly/SPROUT-MOBILE/status"
	"github.com/Sproutly/SPROUT-MOBILE/store"
	"github.com/Sproutly/SPROUT-MOBILE/syncer"

	"github.com/facebookgo/inject"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var (
	ctx             = context.Background()
	logger          = NewLogger("sprout-mobile")
	config          *AppConfig
	db              *gorm.DB
	clock           = &RealClock{}
	stringGenerator = &generator.StringGenerator{}

	sessionStore *session.FileStore
	logoutGuard  = &session.LogoutGuard{}
	cacheStore   = &store.Store{}
	apiClient    = &api.DefaultClient{}

	refresher = &syncer.Refresher{}
	replayer  = &syncer.Replayer{}

	statusService        = &status.StatusService{}
	statusHandlerFactory = &status.HandlerFactory{}
)

func init() {
	checkErrAndExit(initAppConfiguration())
	checkErrAndExit(initSessionStore())
	checkErrAndExit(initCacheDatabase())
	checkErrAndExit(initApplicationGraph())
}

func initAppConfiguration() (err error) {
	config, err = InitAppConfiguration()
	return
}

func initSessionStore() error {
	sessionStore = session.NewFileStore(config.StateDir, logger)
	return nil
}

func initCacheDatabase() (err error) {
	db, err = store.Open(config.CacheDbPath)
	if err != nil {
		return
	}

	db.LogMode(true)
	db.SetLogger(logger)
	return
}

func initApplicationGraph() error {
	g := inject.Graph{}
	g.Provide(
		&inject.Object{Value: config},
		&inject.Object{Value: logger},
		&inject.Object{Value: clock},
		&inject.Object{Value: db},
		&inject.Object{Value: stringGenerator},
		&inject.Object{Value: sessionStore},
		&inject.Object{Value: logoutGuard},
		&inject.Object{Value: cacheStore},
		&inject.Object{Value: apiClient},
		&inject.Object{Value: refresher},
		&inject.Object{Value: replayer},
		&inject.Object{Value: statusService},
		&inject.Object{Value: statusHandlerFactory},
	)
	if err := g.Populate(); err != nil {
		return errors.Wrap(err, "failed to populate")
	}

	// Session expiry wipes the mirror: cached rows belong to the user who
	// fetched them.
	apiClient.OnSessionExpired = func() {
		if err := cacheStore.ClearAllCache(); err != nil {
			logger.Err(ctx, "failed to wipe cache on session expiry", "err", err.Error())
		}
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go syncer.Every(ctx, "mirror-refresh", config.RefreshInterval(), logger, refresher.RefreshAll)
	go syncer.Every(ctx, "outbox-replay", config.ReplayInterval(), logger, replayer.Replay)

	startHttpServer(ctx)
}

func startHttpServer(ctx context.Context) {
	statusOpts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(status.EncodeError),
	}

	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	router.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if db == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	router.Handle("/statusz", statusHandlerFactory.Status(statusOpts)).Methods(http.MethodGet)

	server := &http.Server{
		Addr:    config.StatusListenAddr,
		Handler: logger.RequestLoggerMiddleware(router),
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		checkErrAndExit(err)
	}
}

func checkErrAndExit(err error) {
	if err == nil {
		return
	}
	fmt.Println(err.Error())
	os.Exit(1)
}
