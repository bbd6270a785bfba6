package main // Entry point package

import (
	"log" // Logging library
	"os"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/library-portal/internal/catalog"
	"github.com/iliyamo/library-portal/internal/chat"
	"github.com/iliyamo/library-portal/internal/config"
	"github.com/iliyamo/library-portal/internal/handler"
	"github.com/iliyamo/library-portal/internal/queue"
	"github.com/iliyamo/library-portal/internal/request"
	"github.com/iliyamo/library-portal/internal/router"
	"github.com/iliyamo/library-portal/internal/session"
	"github.com/iliyamo/library-portal/internal/storage"
)

// openStore selects the storage-port backend from config. Redis and MySQL
// failures degrade to the in-memory store with a logged warning so the
// portal always comes up.
func openStore(cfg config.Config) storage.Store {
	switch cfg.StorageDriver {
	case "redis":
		if client := config.NewRedisClient(); client != nil {
			log.Println("storage: using redis")
			return storage.NewRedis(client)
		}
		log.Println("storage: redis unreachable, falling back to memory")
	case "mysql":
		st, err := storage.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err == nil {
			log.Println("storage: using mysql")
			return st
		}
		log.Printf("storage: mysql unavailable (%v), falling back to memory", err)
	}
	log.Println("storage: using memory")
	return storage.NewMemory()
}

func main() {
	_ = godotenv.Load() // optional .env; real env vars win

	cfg := config.Load()

	store := openStore(cfg)
	catalogStore := catalog.NewStore(store)
	ledger := request.NewLedger(store)
	chatClient := chat.NewClient(cfg.ChatAPIKey, cfg.ChatModel, cfg.ChatBaseURL)

	sessions, err := session.NewManager(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("sessions: %v", err)
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, sessions), cfg.JWTSecret)
	router.RegisterPortal(e,
		handler.NewCatalogHandler(catalogStore),
		handler.NewBagHandler(catalogStore, sessions),
		handler.NewRequestHandler(ledger),
		handler.NewChatHandler(chatClient),
		handler.NewContentHandler(),
		cfg.JWTSecret,
	)
	router.RegisterAdmin(e, handler.NewAdminHandler(catalogStore, ledger), cfg.JWTSecret)

	// Notification consumer; disabled when no broker is configured for dev.
	if os.Getenv("ORDER_CONSUMER_ENABLED") != "false" {
		go func() {
			if err := queue.StartOrderConsumer(); err != nil {
				log.Printf("order-consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
