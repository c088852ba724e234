package main

import (
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Uyaaan/Bean-There/internal/cafe"
	"github.com/Uyaaan/Bean-There/internal/config"
	"github.com/Uyaaan/Bean-There/internal/db"
	"github.com/Uyaaan/Bean-There/internal/router"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg := config.Load()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres(cfg.DatabaseURL)
	defer pgDB.Close()

	// ───────────────────────── STORAGE COLLABORATORS ─────────────────────────
	cafeRepo := cafe.NewPostgresRepository(pgDB)
	localStore := cafe.NewLocalStore(cfg.LocalDBPath)

	var listCache *cafe.ListCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("❌ Invalid REDIS_URL:", err)
		}
		listCache = cafe.NewListCache(redis.NewClient(opts), 5*time.Minute)
		log.Println("✅ Cafe list cache enabled")
	}

	// ───────────────────────── SERVICE + HANDLER ─────────────────────────
	cafeService := cafe.NewService(cafeRepo, localStore, listCache)
	cafeHandler := cafe.NewHandler(cafeService)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(cafeHandler, cfg.AllowOrigins)

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost%s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
