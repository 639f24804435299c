package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	HTTPPort string `envconfig:"HTTP_PORT" default:"5151"`

	// API-Key für die Admin-Endpunkte (Ingestion/Refresh-Trigger)
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	PubMedBaseURL string `envconfig:"PUBMED_BASE_URL" default:"https://eutils.ncbi.nlm.nih.gov/entrez/eutils"`
	PubMedAPIKey  string `envconfig:"PUBMED_API_KEY"`

	CTGovBaseURL string `envconfig:"CTGOV_BASE_URL" default:"https://clinicaltrials.gov/api/v2"`

	CronSchedule string `envconfig:"CRON_SCHEDULE" default:"0 */6 * * *"`

	// Defaults für den Live-Refresh-Batch (werden pro Lauf geclampt)
	RefreshBatchSize         int `envconfig:"REFRESH_BATCH_SIZE" default:"12"`
	RefreshSourcesPerPeptide int `envconfig:"REFRESH_SOURCES_PER_PEPTIDE" default:"2"`

	// Führt die Seed-Ingestion einmalig beim Start aus (für frische Deployments)
	IngestOnBoot bool `envconfig:"INGEST_ON_BOOT" default:"false"`
}

// DSN gibt den Data Source Name für die PostgreSQL-Verbindung zurück.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
