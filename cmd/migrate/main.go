// Command migrate applies or inspects the embedded schema migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// The database is taken from DATABASE_DSN (or the config file). Default
// command is up.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/tweeter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tweeter-backend/internal/config"
)

func main() {
	flag.Parse()
	cmd := "up"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Database.DSN == "" {
		log.Fatal("DATABASE_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	provider, db, err := postgres.NewMigrator(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open migrator: %v", err)
	}
	defer db.Close()

	switch cmd {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		for _, r := range results {
			fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
		}
		fmt.Printf("%d migration(s) applied\n", len(results))
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Printf("rolled back %s\n", r.Source.Path)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("migrate status: %v", err)
		}
		for _, s := range statuses {
			fmt.Printf("%-8s %s\n", s.State, s.Source.Path)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want up, down or status)\n", cmd)
		os.Exit(2)
	}
}
