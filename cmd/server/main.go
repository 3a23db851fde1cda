package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	staticcatalog "crusade/internal/adapter/catalog/static"
	httpadapter "crusade/internal/adapter/http"
	metricsinmem "crusade/internal/adapter/metrics/inmemory"
	gormrepo "crusade/internal/adapter/repo/gorm"
	"crusade/internal/adapter/repo/memory"
	"crusade/internal/app/events"
	"crusade/internal/app/ports"
	"crusade/internal/app/shop"
	"crusade/internal/app/status"
	"crusade/internal/app/turn"
	"crusade/internal/domain/campaign"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	catalog := mustLoadCatalog()
	stateRepo, planetRepo, txManager := mustBuildRepos()
	mustSeed(stateRepo, planetRepo, catalog)
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		StatusUC: status.UseCase{StateRepo: stateRepo, PlanetRepo: planetRepo},
		ShopUC: shop.UseCase{
			TxManager:  txManager,
			StateRepo:  stateRepo,
			PlanetRepo: planetRepo,
			Catalog:    catalog.Shop,
			Factions:   catalog.Factions,
			Metrics:    kpiRecorder,
		},
		TurnUC: turn.UseCase{
			TxManager:  txManager,
			StateRepo:  stateRepo,
			PlanetRepo: planetRepo,
			Metrics:    kpiRecorder,
		},
		EventsUC: events.UseCase{
			TxManager:  txManager,
			StateRepo:  stateRepo,
			PlanetRepo: planetRepo,
			Rand:       rand.New(rand.NewSource(seedFromEnv())),
		},
		KPI:   kpiRecorder,
		GMKey: strings.TrimSpace(os.Getenv("CRUSADE_GM_KEY")),
	}

	addr := strings.TrimSpace(os.Getenv("CRUSADE_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("crusade server listening on %s", addr)
	s.Spin()
}

func mustLoadCatalog() *staticcatalog.Catalog {
	path := strings.TrimSpace(os.Getenv("CRUSADE_GALAXY_FILE"))
	if path == "" {
		if _, err := os.Stat("./galaxy.yaml"); err == nil {
			path = "./galaxy.yaml"
		}
	}
	if path == "" {
		return staticcatalog.Default()
	}
	c, err := staticcatalog.Load(path)
	if err != nil {
		log.Fatalf("load galaxy file %s: %v", path, err)
	}
	return c
}

func mustBuildRepos() (ports.CampaignStateRepository, ports.PlanetRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("CRUSADE_DB_DSN"))
	if dsn == "" {
		log.Println("CRUSADE_DB_DSN not set, using in-memory storage")
		store := memory.NewStore()
		return memory.NewCampaignStateRepo(store), memory.NewPlanetRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if dir := strings.TrimSpace(os.Getenv("CRUSADE_MIGRATIONS_DIR")); dir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}
	return gormrepo.NewCampaignStateRepo(db), gormrepo.NewPlanetRepo(db), gormrepo.NewTxManager(db)
}

func mustSeed(stateRepo ports.CampaignStateRepository, planetRepo ports.PlanetRepository, catalog *staticcatalog.Catalog) {
	ctx := context.Background()

	_, err := stateRepo.Get(ctx)
	if err != nil && errors.Is(err, ports.ErrNotFound) {
		if saveErr := stateRepo.SaveWithVersion(ctx, campaign.NewState(), 0); saveErr != nil {
			log.Fatalf("seed campaign state: %v (did you run SQL migrations?)", saveErr)
		}
	} else if err != nil {
		log.Fatalf("load campaign state: %v (did you run SQL migrations?)", err)
	}

	existing, err := planetRepo.List(ctx)
	if err != nil {
		log.Fatalf("list planets: %v", err)
	}
	if len(existing) > 0 {
		return
	}
	for _, planet := range catalog.Planets() {
		if err := planetRepo.Save(ctx, planet); err != nil {
			log.Fatalf("seed planet %s: %v", planet.ID, err)
		}
	}
}

func seedFromEnv() int64 {
	raw := strings.TrimSpace(os.Getenv("CRUSADE_RANDOM_SEED"))
	if raw == "" {
		return time.Now().UnixNano()
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Now().UnixNano()
	}
	return n
}
