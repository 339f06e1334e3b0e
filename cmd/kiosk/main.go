package main

import (
	"log"
	"os"
	"time"

	"star-barista/config"
	httpapi "star-barista/internal/api/http"
	"star-barista/internal/chat"
	"star-barista/internal/fuzzy"
	"star-barista/internal/intent"
	"star-barista/internal/menu"
	"star-barista/internal/service"
	"star-barista/internal/storage"
	"star-barista/internal/trends"
)

const sessionTTL = 24 * time.Hour

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.TopicCheckouts)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	catalog := menu.Default()
	resolver := intent.NewResolver(fuzzy.NewMatcher(catalog))
	engine := chat.NewEngine(catalog, resolver, repo)

	chatSvc := service.NewChatService(
		storage.NewSessionStore(rdb, sessionTTL),
		engine,
		storage.NewKafkaPublisher(writer),
		service.DefaultQRGenerator{BaseURL: os.Getenv("PUBLIC_BASE_URL")},
		repo,
	)

	handler := httpapi.NewHandler(chatSvc, catalog, trends.NewStore(rdb), repo)
	httpapi.StartServer(config.Addr("8080"), httpapi.NewRouter(handler))
}
