package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/zey-2/tg-prog-foundation-bot/internal/clock"
	"github.com/zey-2/tg-prog-foundation-bot/internal/config"
	"github.com/zey-2/tg-prog-foundation-bot/internal/course"
	"github.com/zey-2/tg-prog-foundation-bot/internal/database"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/service"
	"github.com/zey-2/tg-prog-foundation-bot/internal/telegram"
	"github.com/zey-2/tg-prog-foundation-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found")
	}

	cfg := config.Load()
	if cfg.BotToken == "" {
		logrus.Fatal("BOT_TOKEN is required")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logrus.Fatalf("Invalid timezone %q: %v", cfg.Timezone, err)
	}

	// A data error refuses to start the process; running on an empty or
	// partial schedule would be worse than not running.
	crs, err := course.Load(cfg.CourseFile, loc)
	if err != nil {
		logrus.Fatalf("Failed to load course data: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	logrus.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	dm := database.NewInstance(db)
	clk := clock.NewReal(loc)

	bot, err := telegram.New(cfg.BotToken, crs, dm, clk)
	if err != nil {
		logrus.Fatalf("Failed to start telegram bot: %v", err)
	}

	dispatcher := service.NewDispatcher(dm, bot.Notifier(), clk, crs, cfg.DryRun)
	dispatcher.Start()
	defer dispatcher.Stop()

	// SIGHUP reloads the course file in place; SIGINT/SIGTERM shut down.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for sig := range signals {
			if sig != syscall.SIGHUP {
				logrus.Infof("Received %s, shutting down", sig)
				bot.Stop()
				return
			}

			reloaded, err := course.Load(cfg.CourseFile, loc)
			if err != nil {
				logrus.Errorf("Reload failed, keeping current schedule: %v", err)
				continue
			}
			bot.SetCourse(reloaded)
			dispatcher.Reload(reloaded)
			logrus.Infof("Course data reloaded: %d sessions", len(reloaded.Sessions))
		}
	}()

	logrus.Infof("Starting bot for %q in %s (dry_run=%v)", crs.Title, cfg.Timezone, cfg.DryRun)
	bot.Start()
}
