package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/recruitai/backend/internal/analyzer"
	"github.com/recruitai/backend/internal/api"
	"github.com/recruitai/backend/internal/batch"
	"github.com/recruitai/backend/internal/config"
	"github.com/recruitai/backend/internal/history"
	"github.com/recruitai/backend/internal/logger"
	"github.com/recruitai/backend/internal/settings"
	"github.com/recruitai/backend/internal/store"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging, cfg.LogPath())
	api.Debug = cfg.Server.Debug

	// Durable state: one DuckDB file, byte-quota enforced per write
	kv, err := store.NewDuckKV(cfg.StorePath(), cfg.Storage.QuotaBytes, logger.Component(log, "store"))
	if err != nil {
		log.WithError(err).Fatal("failed to open the state store")
	}
	defer kv.Close()

	settingsMgr := settings.NewManager(kv, logger.Component(log, "settings"))
	jobHistory := history.NewJobDescriptions(kv, logger.Component(log, "history"))
	docHistory := history.NewDocuments(kv, logger.Component(log, "history"))

	if cfg.Analyzer.APIKey == "" {
		log.Warn("no analyzer API key configured, analysis runs will fail per item")
	}
	gemini := analyzer.NewGeminiClient(cfg.Analyzer.APIKey,
		analyzer.WithModel(cfg.Analyzer.Model),
		analyzer.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Analyzer.TimeoutSeconds) * time.Second,
		}),
	)

	maxAge := time.Duration(cfg.Retention.ItemMaxAgeDays) * 24 * time.Hour
	batchMgr := batch.NewManager(kv, gemini, jobHistory, docHistory, maxAge, logger.Component(log, "batch"))

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/api/health" || path == "/api/batch/status"
		},
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(map[string]interface{}{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		Skipper: func(c echo.Context) bool {
			// Submission starts a background run and returns at once;
			// uploads may be slow on large files.
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/api/items") && c.Request().Method == http.MethodPost
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	handlers := api.NewHandlers(&api.Dependencies{
		Batch:       batchMgr,
		JobHistory:  jobHistory,
		DocHistory:  docHistory,
		Settings:    settingsMgr,
		MaxFileSize: cfg.Retention.MaxUploadBytes,
		Version:     Version,
	})
	api.RegisterRoutes(e, handlers)

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	fmt.Printf("\n")
	fmt.Printf("╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║           RecruitAI Screening Server                      ║\n")
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Version:    %-45s║\n", Version)
	fmt.Printf("║  Build Time: %-45s║\n", BuildTime)
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Config:    %-46s║\n", *configPath)
	fmt.Printf("║  Listen:    http://%-38s║\n", cfg.GetServerAddr())
	fmt.Printf("║  Store:     %-46s║\n", cfg.StorePath())
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")

	e.Logger.Fatal(e.StartServer(s))
}
