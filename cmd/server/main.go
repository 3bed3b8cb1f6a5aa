package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
