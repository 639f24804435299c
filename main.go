package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pepdex/config"
	"pepdex/models"
	"pepdex/providers"
	"pepdex/providers/ctgov"
	"pepdex/providers/pubmed"
	"pepdex/seed"
	"pepdex/services"
)

var (
	claimsUpsertedCounter  prometheus.Counter
	refreshFailuresCounter prometheus.Counter
	peptidesScannedCounter prometheus.Counter
)

func init() {
	claimsUpsertedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "claims_upserted_total",
		Help: "Total number of live-refresh claims written to the database.",
	})
	refreshFailuresCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "refresh_failures_total",
		Help: "Total number of peptides whose live refresh failed.",
	})
	peptidesScannedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "peptides_scanned_total",
		Help: "Total number of peptides scanned by the live refresh.",
	})
	prometheus.MustRegister(claimsUpsertedCounter, refreshFailuresCounter, peptidesScannedCounter)
}

// apiKeyAuthMiddleware schützt die Admin-Endpunkte. Ohne konfigurierten Key
// sind die Trigger offen (lokale Entwicklung).
func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to peptide database.")

	logging.Info("Running database auto-migration...")
	err = db.AutoMigrate(
		&models.Peptide{}, &models.PeptideProfile{}, &models.Alias{},
		&models.Jurisdiction{}, &models.RegulatoryStatus{},
		&models.UseCase{}, &models.PeptideUseCase{},
		&models.DosingEntry{}, &models.SafetyEntry{},
		&models.Citation{}, &models.Claim{},
	)
	if err != nil {
		logging.Fatal("Auto-migration failed", zap.Error(err))
	}

	// Setup Services
	evidenceProviders := []providers.Provider{
		pubmed.NewFetcher(cfg, logging),
		ctgov.NewFetcher(cfg, logging),
	}
	ingestService := services.NewIngestService(db, logging, seed.Catalog)
	refreshService := services.NewRefreshService(db, logging, evidenceProviders)

	if cfg.IngestOnBoot {
		logging.Info("Running seed ingestion on boot...")
		if res, err := ingestService.Run(context.Background()); err != nil {
			logging.Fatal("Seed ingestion failed", zap.Error(err))
		} else {
			logging.Info("Seed ingestion on boot finished",
				zap.Int("processed", res.Processed), zap.Int("total", res.Total))
		}
	}

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupPeptideRoutes(router, db, logging)
	setupAdminRoutes(router, cfg, ingestService, refreshService, logging)

	// Setup Cron
	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.CronSchedule, func() {
		logging.Info("Running scheduled live refresh...")
		runRefresh(refreshService, services.RefreshOptions{
			BatchSize:         cfg.RefreshBatchSize,
			SourcesPerPeptide: cfg.RefreshSourcesPerPeptide,
		}, logging)
	})
	cronScheduler.Start()

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

// runRefresh führt einen Refresh-Batch aus und aktualisiert die Metriken.
func runRefresh(refreshService *services.RefreshService, opts services.RefreshOptions, log *zap.Logger) {
	res, err := refreshService.Run(context.Background(), opts)
	if err != nil {
		log.Error("Live refresh batch failed", zap.Error(err))
		return
	}
	peptidesScannedCounter.Add(float64(res.PeptidesScanned))
	claimsUpsertedCounter.Add(float64(res.ClaimsUpserted))
	refreshFailuresCounter.Add(float64(res.Failures))
	log.Info("Live refresh finished",
		zap.Int("peptides_scanned", res.PeptidesScanned),
		zap.Int("claims_upserted", res.ClaimsUpserted),
		zap.Int("peptides_with_no_hits", res.PeptidesWithNoHits),
		zap.Int("failures", res.Failures))
}

// setupPeptideRoutes konfiguriert die Read-Only-Verzeichnis-Endpunkte.
func setupPeptideRoutes(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	rg := router.Group("/peptides")

	rg.GET("/", func(c *gin.Context) {
		query := db.Model(&models.Peptide{}).Where("published = ?", true)
		if class := c.Query("class"); class != "" {
			query = query.Where("class = ?", class)
		}

		var peptides []models.Peptide
		if err := query.Order("name asc").Find(&peptides).Error; err != nil {
			log.Error("Database query for peptides failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, peptides)
	})

	rg.GET("/:slug", func(c *gin.Context) {
		slug := c.Param("slug")

		var peptide models.Peptide
		if err := db.Where("slug = ? AND published = ?", slug, true).First(&peptide).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "peptide not found"})
				return
			}
			log.Error("DB error fetching peptide", zap.String("slug", slug), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		var profile models.PeptideProfile
		db.Where("peptide_id = ?", peptide.ID).First(&profile)
		var aliases []models.Alias
		db.Where("peptide_id = ?", peptide.ID).Find(&aliases)
		var statuses []models.RegulatoryStatus
		db.Where("peptide_id = ?", peptide.ID).Find(&statuses)
		var useCases []models.PeptideUseCase
		db.Where("peptide_id = ?", peptide.ID).Find(&useCases)
		var dosing []models.DosingEntry
		db.Where("peptide_id = ?", peptide.ID).Find(&dosing)
		var safety []models.SafetyEntry
		db.Where("peptide_id = ?", peptide.ID).Find(&safety)
		var claims []models.Claim
		db.Where("peptide_id = ?", peptide.ID).Order("section asc, id asc").Find(&claims)

		c.JSON(http.StatusOK, gin.H{
			"peptide":             peptide,
			"profile":             profile,
			"aliases":             aliases,
			"regulatory_statuses": statuses,
			"use_cases":           useCases,
			"dosing":              dosing,
			"safety":              safety,
			"claims":              claims,
		})
	})
}

// setupAdminRoutes konfiguriert die API-Key-geschützten Trigger-Endpunkte.
// Beide Trigger laufen asynchron; der Aufrufer bekommt sofort 202.
func setupAdminRoutes(router *gin.Engine, cfg *config.Config, ingestService *services.IngestService, refreshService *services.RefreshService, log *zap.Logger) {
	rg := router.Group("/admin")
	rg.Use(apiKeyAuthMiddleware(cfg))

	rg.POST("/ingest", func(c *gin.Context) {
		go func() {
			res, err := ingestService.Run(context.Background())
			if err != nil {
				log.Error("Async seed ingestion failed", zap.Error(err))
				return
			}
			log.Info("Async seed ingestion completed",
				zap.Int("processed", res.Processed), zap.Int("total", res.Total))
		}()
		c.JSON(http.StatusAccepted, gin.H{"message": "Seed ingestion triggered."})
	})

	rg.POST("/refresh", func(c *gin.Context) {
		// Leerer Body ist erlaubt: dann gelten die Defaults
		var opts services.RefreshOptions
		if err := c.ShouldBindJSON(&opts); err != nil {
			opts = services.RefreshOptions{}
		}
		go runRefresh(refreshService, opts, log)
		c.JSON(http.StatusAccepted, gin.H{"message": "Live refresh triggered."})
	})
}
