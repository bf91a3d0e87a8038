// Command seeder fills a deployment with demo users, follows, tweets,
// replies and likes. It writes through the same services as the API, so
// it works against either storage driver; with the memory driver the data
// is gone when the process exits, which makes that mode a smoke test.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/tweeter-backend/internal/app"
	"github.com/heartmarshall/tweeter-backend/internal/app/seeder"
	"github.com/heartmarshall/tweeter-backend/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	st, err := app.OpenStorage(ctx, appCfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	svc := app.NewServices(appCfg, st, logger)
	pipeline := seeder.NewPipeline(logger, seeder.Services{
		Accounts: svc.Auth,
		Graph:    svc.Social,
		Posts:    svc.Content,
		Likes:    svc.Interaction,
	}, *seederCfg)

	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
