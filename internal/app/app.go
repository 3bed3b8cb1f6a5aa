package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/item"
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/mechanics"
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/world"
	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
	"github.com/dwbrown115/GameServerTestGame-sub004/logging/sinks"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/catalog"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

const (
	listenAddr = ":8080"
	tickRate   = 15 // ticks per second
	// demoHitEvery spaces out the synthetic contact events that exercise the
	// demo item's mechanics.
	demoHitEvery = 30
)

// Run wires the logging router, settings catalog, world, and item generator,
// spawns a demo item, and serves world snapshots over websocket until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg := logging.DefaultConfig()
	if path := os.Getenv("EVENT_LOG_PATH"); path != "" {
		cfg.EnabledSinks = append(cfg.EnabledSinks, "json")
		cfg.JSON.FilePath = path
	}
	var named []logging.NamedSink
	if cfg.HasSink("console") {
		named = append(named, logging.NamedSink{Name: "console", Sink: sinks.NewConsoleSink(os.Stdout)})
	}
	if cfg.HasSink("json") && cfg.JSON.FilePath != "" {
		file, err := os.OpenFile(cfg.JSON.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("app: open event log: %w", err)
		}
		defer file.Close()
		named = append(named, logging.NamedSink{Name: "json", Sink: sinks.NewJSONSink(file, cfg.JSON.FlushInterval)})
	}
	router, err := logging.NewRouter(nil, cfg, named)
	if err != nil {
		return err
	}
	defer router.Close(context.Background())

	resolver, err := catalog.Load(catalog.DefaultPaths()...)
	if err != nil {
		return err
	}

	w := world.New(world.Config{Seed: "demo", Publisher: router})
	player := w.SpawnActor(&world.Actor{ID: "player-1", Tags: []string{"player"}, X: 80, Y: 80, Health: 100, MaxHealth: 100})
	mob := w.SpawnActor(&world.Actor{ID: "mob-1", Tags: []string{"mob"}, X: 140, Y: 80, Health: 80, MaxHealth: 80})

	generator, err := item.NewGenerator(w, resolver, mechanics.DefaultRegistry())
	if err != nil {
		return err
	}
	params := item.DefaultParams()

	built, err := generator.Build(player.ID, item.Instruction{
		Primary: item.PayloadProjectile,
		Modifiers: []contract.Kind{
			contract.KindDamageOverTime,
			contract.KindDrain,
			contract.KindRippleOnHit,
		},
	}, params)
	if err != nil {
		return err
	}
	if _, err := generator.Build(player.ID, item.Instruction{Primary: item.PayloadAura}, params); err != nil {
		return err
	}

	hub := NewHub(w)
	runner := newHitRunner(w, params.DamagePerTick)
	w.Relay().Subscribe(runner)

	mux := http.NewServeMux()
	mux.HandleFunc("/join", hub.HandleJoin)
	mux.HandleFunc("/ws", hub.HandleWS)
	server := &http.Server{Addr: listenAddr, Handler: mux}

	loopCtx, cancelLoop := context.WithCancel(ctx)
	defer cancelLoop()
	go runLoop(loopCtx, hub, built.PayloadID, mob.ID)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// runLoop drives the fixed-rate simulation and periodically injects a
// synthetic contact between the demo projectile and a mob so the bounce,
// damage-over-time, drain, and ripple paths all run.
func runLoop(ctx context.Context, hub *Hub, payloadID, mobID string) {
	interval := time.Second / tickRate
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	dt := interval.Seconds()
	frame := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hub.Step(dt)
			frame++
			if frame%demoHitEvery == 0 {
				hub.With(func(w *world.World) {
					if _, ok := w.Payload(payloadID); ok {
						w.EmitContact(world.ContactEnter, payloadID, mobID)
					}
				})
			}
		}
	}
}
