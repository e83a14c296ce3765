package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ontravel-app/travel-journal-api/internal/adapters/firebasedb"
	"github.com/ontravel-app/travel-journal-api/internal/adapters/httpapi"
	memaccountdir "github.com/ontravel-app/travel-journal-api/internal/adapters/memory/accountdir"
	memgeocoder "github.com/ontravel-app/travel-journal-api/internal/adapters/memory/geocoder"
	memtripstore "github.com/ontravel-app/travel-journal-api/internal/adapters/memory/tripstore"
	"github.com/ontravel-app/travel-journal-api/internal/adapters/nominatim"
	postgres "github.com/ontravel-app/travel-journal-api/internal/adapters/postgres"
	pgaccountdir "github.com/ontravel-app/travel-journal-api/internal/adapters/postgres/accountdir"
	pgtripstore "github.com/ontravel-app/travel-journal-api/internal/adapters/postgres/tripstore"
	"github.com/ontravel-app/travel-journal-api/internal/app/accounts"
	"github.com/ontravel-app/travel-journal-api/internal/app/trips"
	"github.com/ontravel-app/travel-journal-api/internal/platform/config"
	"github.com/ontravel-app/travel-journal-api/internal/platform/logger"
	accountdirport "github.com/ontravel-app/travel-journal-api/internal/ports/out/accountdir"
	geocoderport "github.com/ontravel-app/travel-journal-api/internal/ports/out/geocoder"
	tripstoreport "github.com/ontravel-app/travel-journal-api/internal/ports/out/tripstore"
)

func main() {
	// Local convenience only; real deployments set the environment directly.
	_ = godotenv.Load()

	log := logger.New("travel-journal-api")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	var (
		dir     accountdirport.Directory
		store   tripstoreport.Store
		cleanup func()
	)

	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(context.Background(), cfg.PostgresDSN, postgres.PoolOptions{})
		if err != nil {
			log.Fatal().Err(err).Msg("invalid postgres config")
		}
		cleanup = pool.Close
		if err := postgres.Migrate(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("migrate postgres schema")
		}
		dir = pgaccountdir.NewRepo(pool)
		store = pgtripstore.NewRepo(pool)
	case "firebase":
		client := firebasedb.NewClient(cfg.FirebaseURL, cfg.FirebaseTimeout)
		dir = firebasedb.NewAccountDirectory(client)
		store = firebasedb.NewTripStore(client)
	default:
		dir = memaccountdir.NewRepo()
		store = memtripstore.NewRepo()
	}

	if cleanup != nil {
		defer cleanup()
	}

	var geo geocoderport.Geocoder
	switch cfg.GeocoderBackend {
	case "nominatim":
		geo = nominatim.New(cfg.NominatimURL, cfg.GeocoderUserAgent, cfg.NominatimTimeout)
	default:
		geo = memgeocoder.New()
	}

	accountSvc := accounts.NewService(dir)
	tripSvc := trips.NewService(store, geo)

	api := httpapi.NewServer(accountSvc, tripSvc, log)
	handler := httpapi.NewRouter(api, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Int("port", cfg.HTTPPort).
			Str("storage", cfg.StorageBackend).
			Str("geocoder", cfg.GeocoderBackend).
			Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
