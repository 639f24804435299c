package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pepdex/models"
	"pepdex/providers"
)

// Clamping-Grenzen und Defaults für den Refresh-Batch.
const (
	minBatchSize     = 1
	maxBatchSize     = 50
	defaultBatchSize = 12

	minSourcesPerPeptide     = 1
	maxSourcesPerPeptide     = 3
	defaultSourcesPerPeptide = 2
)

// RefreshOptions konfigurieren einen Refresh-Lauf. Nullwerte fallen auf die
// Defaults zurück.
type RefreshOptions struct {
	BatchSize         int `json:"batch_size"`
	SourcesPerPeptide int `json:"sources_per_peptide"`
}

// RefreshResult fasst einen Refresh-Lauf zusammen. Mehr Detail gibt der
// Kontrakt nicht her; pro-Peptid-Fehler landen im Log.
type RefreshResult struct {
	PeptidesScanned    int `json:"peptides_scanned"`
	ClaimsUpserted     int `json:"claims_upserted"`
	PeptidesWithNoHits int `json:"peptides_with_no_hits"`
	Failures           int `json:"failures"`
}

// RefreshService ist Komponente B: der geplante Harvester, der Peptide nach
// Staleness auswählt, beide Quellen abfragt und Live-Claims ersetzt.
// Peptide werden unabhängig voneinander verarbeitet; ein Fehler bei einem
// Peptid bricht nie den Batch ab.
type RefreshService struct {
	DB        *gorm.DB
	Logger    *zap.Logger
	Providers []providers.Provider
}

// NewRefreshService erstellt eine neue Instanz des RefreshService.
func NewRefreshService(db *gorm.DB, logger *zap.Logger, provs []providers.Provider) *RefreshService {
	return &RefreshService{DB: db, Logger: logger, Providers: provs}
}

// Run wählt einen Batch veröffentlichter Peptide nach Staleness (nie
// refreshte zuerst) und verarbeitet jedes einzeln.
func (s *RefreshService) Run(ctx context.Context, opts RefreshOptions) (RefreshResult, error) {
	batchSize := clamp(opts.BatchSize, minBatchSize, maxBatchSize, defaultBatchSize)
	sources := clamp(opts.SourcesPerPeptide, minSourcesPerPeptide, maxSourcesPerPeptide, defaultSourcesPerPeptide)

	var res RefreshResult
	db := s.DB.WithContext(ctx)

	var peptides []models.Peptide
	err := db.Where("published = ?", true).
		Order("last_live_refresh_at ASC NULLS FIRST, id ASC").
		Limit(batchSize).
		Find(&peptides).Error
	if err != nil {
		return res, err
	}

	// In-Run-Dedup-Cache für Citations, scoped auf diesen Lauf
	citationCache := make(map[string]uint)

	for i := range peptides {
		p := &peptides[i]
		res.PeptidesScanned++

		upserted, noHits, err := s.refreshPeptide(ctx, db, p, sources, citationCache)
		if err != nil {
			// Failure-Isolation: last_live_refresh_at bleibt unberührt,
			// das Peptid rückt beim nächsten Batch wieder nach vorn.
			s.Logger.Error("Peptide refresh failed",
				zap.String("slug", p.Slug),
				zap.Error(err))
			res.Failures++
			continue
		}
		res.ClaimsUpserted += upserted
		if noHits {
			res.PeptidesWithNoHits++
		}
	}

	s.Logger.Info("Live refresh batch completed",
		zap.Int("peptides_scanned", res.PeptidesScanned),
		zap.Int("claims_upserted", res.ClaimsUpserted),
		zap.Int("peptides_with_no_hits", res.PeptidesWithNoHits),
		zap.Int("failures", res.Failures))
	return res, nil
}

// refreshPeptide fragt beide Quellen parallel ab (Fan-out/Fan-in: beide
// Zweige müssen abschließen, ein Fehler in einem Zweig lässt den Versuch
// scheitern), ersetzt bei Treffern die Live-Claims und rückt den
// Freshness-Zeitstempel nur bei Erfolg vor.
func (s *RefreshService) refreshPeptide(ctx context.Context, db *gorm.DB, peptide *models.Peptide, sources int, citationCache map[string]uint) (int, bool, error) {
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		candidates []providers.Candidate
		harvestErr error
	)
	for _, prov := range s.Providers {
		wg.Add(1)
		go func(prov providers.Provider) {
			defer wg.Done()
			result, err := prov.Harvest(ctx, peptide.Name, sources)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if harvestErr == nil {
					harvestErr = err
				}
				return
			}
			candidates = append(candidates, result...)
		}(prov)
	}
	wg.Wait()
	if harvestErr != nil {
		return 0, false, harvestErr
	}

	if len(candidates) == 0 {
		// Kein Treffer ist kein Fehler: Freshness rückt vor, vorhandene
		// Live-Claims eines früheren Laufs bleiben stehen.
		if err := s.touchRefreshedAt(db, peptide.ID); err != nil {
			return 0, false, err
		}
		return 0, true, nil
	}

	// Nur maschinell erzeugte Zeilen in den Live-Sektionen ersetzen;
	// kuratierte Claims in denselben Sektionen bleiben unangetastet.
	err := db.Where("peptide_id = ? AND section IN ? AND claim_text LIKE ?",
		peptide.ID, models.LiveSections, models.LiveClaimPrefix+"%").
		Delete(&models.Claim{}).Error
	if err != nil {
		return 0, false, err
	}

	upserted := 0
	for _, c := range candidates {
		citationID, err := resolveCitation(db, citationCache, c.SourceURL, c.SourceTitle, c.PublishedAt)
		if err != nil {
			return upserted, false, err
		}
		// Insert-only: der vorausgehende Delete hat Konflikte geräumt
		err = db.Create(&models.Claim{
			PeptideID:     peptide.ID,
			Section:       c.Section,
			ClaimText:     c.ClaimText,
			EvidenceGrade: c.EvidenceGrade,
			CitationID:    &citationID,
		}).Error
		if err != nil {
			return upserted, false, err
		}
		upserted++
	}

	if err := s.touchRefreshedAt(db, peptide.ID); err != nil {
		return upserted, false, err
	}
	return upserted, false, nil
}

// touchRefreshedAt setzt last_live_refresh_at auf jetzt.
func (s *RefreshService) touchRefreshedAt(db *gorm.DB, peptideID uint) error {
	return db.Model(&models.Peptide{}).
		Where("id = ?", peptideID).
		Update("last_live_refresh_at", time.Now()).Error
}

// clamp ersetzt Nullwerte durch den Default und begrenzt auf [min, max].
func clamp(v, min, max, def int) int {
	if v == 0 {
		v = def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
