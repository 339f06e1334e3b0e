package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"star-barista/config"
	"star-barista/internal/trends"
)

func main() {
	config.Load()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.TopicCheckouts, "trends-svc")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := trends.NewConsumer(reader, trends.NewStore(rdb))
	consumer.Start(ctx)
}
