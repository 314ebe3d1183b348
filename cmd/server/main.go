package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"
	"timesheets/internal/config"
	"timesheets/internal/handler"
	"timesheets/internal/logger"
	"timesheets/internal/middleware"
	"timesheets/internal/model"
	"timesheets/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&model.Client{}, &model.AppUser{}, &model.EpicArea{}, &model.Epic{},
		&model.Rate{}, &model.Forecast{}, &model.TimeLog{}, &model.Calendar{},
	); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	calendarSvc := service.NewCalendarService(db)
	n, err := calendarSvc.Seed(context.Background(), cfg.Calendar.FromYear, cfg.Calendar.ToYear)
	if err != nil {
		slog.Error("calendar seed failed", "err", err)
		os.Exit(1)
	}
	if n > 0 {
		slog.Info("calendar seeded", "rows", n,
			"from", cfg.Calendar.FromYear, "to", cfg.Calendar.ToYear)
	}

	r := buildRouter(cfg, db, calendarSvc)

	slog.Info("server starting", "addr", cfg.Addr(), "driver", cfg.Database.Driver)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}

// buildRouter is the single composition root: every record service's routes
// are registered here exactly once.
func buildRouter(cfg *config.Config, db *gorm.DB, calendarSvc *service.CalendarService) *gin.Engine {
	rateSvc := service.NewRateService(db)

	clientH := handler.NewClientHandler(service.NewClientService(db))
	userH := handler.NewUserHandler(service.NewUserService(db))
	epicH := handler.NewEpicHandler(service.NewEpicService(db), service.NewEpicAreaService(db))
	rateH := handler.NewRateHandler(rateSvc)
	forecastH := handler.NewForecastHandler(service.NewForecastService(db))
	timelogH := handler.NewTimeLogHandler(service.NewTimeLogService(db, rateSvc))
	calendarH := handler.NewCalendarHandler(calendarSvc)
	authH := handler.NewAuthHandler(service.NewAuthService(db), []byte(cfg.Auth.Secret))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Metrics())
	r.Use(middleware.Timeout(time.Duration(cfg.Server.TimeoutSeconds) * time.Second))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/login", authH.Login)

	api := r.Group("/api")
	if cfg.Auth.Enabled {
		api.Use(middleware.JWTAuth([]byte(cfg.Auth.Secret)))
	}

	api.POST("/clients/", clientH.Create)
	api.GET("/clients/", clientH.List)
	api.GET("/clients/:id", clientH.Get)

	api.POST("/users/", userH.Create)
	api.GET("/users/", userH.List)
	api.GET("/users/:id", userH.Get)

	api.POST("/epics/", epicH.Create)
	api.GET("/epics/", epicH.List)
	api.GET("/epics/:id", epicH.Get)
	api.POST("/epic_areas/", epicH.CreateArea)
	api.GET("/epic_areas/", epicH.ListAreas)

	api.POST("/rates/", rateH.Create)
	api.GET("/rates/", rateH.List)

	api.POST("/forecasts/", forecastH.Create)
	api.GET("/forecasts/", forecastH.List)
	api.GET("/forecasts/users/:user_id", forecastH.ListByUser)
	api.GET("/forecasts/users/:user_id/epics/:epic_id", forecastH.MonthDays)
	api.GET("/forecasts/users/:user_id/epics/year/:year/month/:month", forecastH.ListByUserYearMonth)
	api.GET("/forecasts/users/:user_id/epics/:epic_id/year/:year/month/:month", forecastH.ListByUserEpicYearMonth)
	api.DELETE("/forecasts/", forecastH.Delete)

	api.POST("/timelogs/", timelogH.Create)
	api.GET("/timelogs/lists/:filters", timelogH.List)
	api.PUT("/timelogs/", timelogH.Update)
	api.DELETE("/timelogs/", timelogH.Delete)

	api.GET("/calendar/", calendarH.List)

	return r
}
