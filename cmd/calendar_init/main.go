package main

import (
	"context"
	"flag"
	"log"

	"timesheets/internal/config"
	"timesheets/internal/logger"
	"timesheets/internal/model"
	"timesheets/internal/service"
)

// One-shot loader for the calendar dimension. The server seeds it on first
// start; this tool exists for fresh databases and for reloading a different
// year range with -force.
func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	from := flag.Int("from", 0, "first year (default from config)")
	to := flag.Int("to", 0, "last year (default from config)")
	force := flag.Bool("force", false, "clear existing rows before seeding")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	if *from == 0 {
		*from = cfg.Calendar.FromYear
	}
	if *to == 0 {
		*to = cfg.Calendar.ToYear
	}

	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}
	if err := db.AutoMigrate(&model.Calendar{}); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	ctx := context.Background()
	svc := service.NewCalendarService(db)

	if *force {
		if err := svc.Clear(ctx); err != nil {
			log.Fatal("clear failed: ", err)
		}
	}

	n, err := svc.Seed(ctx, *from, *to)
	if err != nil {
		log.Fatal("seed failed: ", err)
	}
	if n == 0 {
		logger.Info("calendar already seeded, nothing to do")
		return
	}
	logger.Info("calendar seeded", "rows", n, "from", *from, "to", *to)
}
