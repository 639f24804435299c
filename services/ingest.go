package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pepdex/models"
	"pepdex/seed"
)

// IngestService ist Komponente A: die deterministische, idempotente
// Bulk-Ingestion des Seed-Katalogs. Jeder Store-Fehler bricht den gesamten
// Lauf ab (kein Partial-Success, im Gegensatz zum Live-Refresh).
type IngestService struct {
	DB      *gorm.DB
	Logger  *zap.Logger
	Catalog []seed.Record
}

// IngestResult fasst einen Ingestion-Lauf zusammen.
type IngestResult struct {
	Processed int `json:"processed"`
	Total     int `json:"total"`
}

// NewIngestService erstellt eine neue Instanz des IngestService.
func NewIngestService(db *gorm.DB, logger *zap.Logger, catalog []seed.Record) *IngestService {
	return &IngestService{DB: db, Logger: logger, Catalog: catalog}
}

// Run verarbeitet jeden Seed-Record genau einmal, in Katalog-Reihenfolge.
func (s *IngestService) Run(ctx context.Context) (IngestResult, error) {
	res := IngestResult{Total: len(s.Catalog)}
	db := s.DB.WithContext(ctx)

	jurisdictionIDs, err := s.ensureJurisdictions(db)
	if err != nil {
		return res, err
	}
	usID, ok := jurisdictionIDs["US"]
	if !ok {
		// US ist der implizite Rechtsraum des Seed-Formats; ohne ihn
		// kann kein Record verarbeitet werden.
		return res, errors.New("ingest: US jurisdiction could not be resolved")
	}

	// In-Run-Dedup-Cache für Citations, scoped auf diesen Aufruf
	citationCache := make(map[string]uint)

	for _, rec := range s.Catalog {
		if err := s.ingestRecord(db, rec, jurisdictionIDs, usID, citationCache); err != nil {
			return res, err
		}
		res.Processed++
	}

	s.Logger.Info("Seed ingestion completed",
		zap.Int("processed", res.Processed),
		zap.Int("total", res.Total))
	return res, nil
}

// ensureJurisdictions upserted den festen Rechtsraum-Satz einmal global und
// gibt das code → id Lookup zurück.
func (s *IngestService) ensureJurisdictions(db *gorm.DB) (map[string]uint, error) {
	for _, j := range seed.Jurisdictions {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).Create(&models.Jurisdiction{Code: j.Code, Name: j.Name}).Error
		if err != nil {
			return nil, fmt.Errorf("ingest jurisdiction %s: %w", j.Code, err)
		}
	}

	var rows []models.Jurisdiction
	if err := db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("ingest jurisdictions: %w", err)
	}
	ids := make(map[string]uint, len(rows))
	for _, row := range rows {
		ids[row.Code] = row.ID
	}
	return ids, nil
}

// ingestRecord schreibt einen einzelnen Seed-Record. Jeder Fehler wird mit
// Entität und Seed-Slug angereichert und propagiert.
func (s *IngestService) ingestRecord(db *gorm.DB, rec seed.Record, jurisdictionIDs map[string]uint, usID uint, citationCache map[string]uint) error {
	log := s.Logger.With(zap.String("slug", rec.Slug))

	// Peptid per Slug upserten und ID auflösen
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "class", "published"}),
	}).Create(&models.Peptide{Slug: rec.Slug, Name: rec.Name, Class: rec.Class, Published: true}).Error
	if err != nil {
		return fmt.Errorf("ingest peptide %s: %w", rec.Slug, err)
	}
	var peptide models.Peptide
	if err := db.Where("slug = ?", rec.Slug).First(&peptide).Error; err != nil {
		return fmt.Errorf("ingest peptide %s: %w", rec.Slug, err)
	}

	// Profil wird pro Ingestion vollständig ersetzt
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "peptide_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"intro", "mechanism", "effectiveness", "description"}),
	}).Create(&models.PeptideProfile{
		PeptideID:     peptide.ID,
		Intro:         rec.Profile.Intro,
		Mechanism:     rec.Profile.Mechanism,
		Effectiveness: rec.Profile.Effectiveness,
		Description:   rec.Profile.Description,
	}).Error
	if err != nil {
		return fmt.Errorf("ingest profile %s: %w", rec.Slug, err)
	}

	// Aliase sind rein additiv
	for _, alias := range rec.Aliases {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Alias{PeptideID: peptide.ID, Alias: alias}).Error
		if err != nil {
			return fmt.Errorf("ingest alias %s: %w", rec.Slug, err)
		}
	}

	if err := s.reconcileStatuses(db, rec, peptide.ID, jurisdictionIDs); err != nil {
		return err
	}
	if err := s.ingestUseCases(db, rec, peptide.ID, usID); err != nil {
		return err
	}
	if err := s.ingestDosing(db, rec, peptide.ID, usID); err != nil {
		return err
	}
	if err := s.ingestSafety(db, rec, peptide.ID, usID); err != nil {
		return err
	}
	if err := s.ingestClaims(db, rec, peptide.ID, citationCache); err != nil {
		return err
	}

	log.Debug("Seed record ingested")
	return nil
}

// reconcileStatuses wendet die Reconciliation-Regel an: pro (Peptid,
// Rechtsraum) werden alle Zeilen gelöscht, die nicht dem neu berechneten
// Status entsprechen, danach wird der berechnete Status upserted.
func (s *IngestService) reconcileStatuses(db *gorm.DB, rec seed.Record, peptideID uint, jurisdictionIDs map[string]uint) error {
	for _, j := range seed.Jurisdictions {
		jid, ok := jurisdictionIDs[j.Code]
		if !ok {
			continue
		}
		status := seed.StatusFor(rec.StatusModel, j.Code)

		err := db.Where("peptide_id = ? AND jurisdiction_id = ? AND status <> ?", peptideID, jid, status).
			Delete(&models.RegulatoryStatus{}).Error
		if err != nil {
			return fmt.Errorf("ingest regulatory status %s/%s: %w", rec.Slug, j.Code, err)
		}

		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "peptide_id"}, {Name: "jurisdiction_id"}, {Name: "status"}},
			DoUpdates: clause.AssignmentColumns([]string{"notes"}),
		}).Create(&models.RegulatoryStatus{
			PeptideID:      peptideID,
			JurisdictionID: jid,
			Status:         status,
			Notes:          fmt.Sprintf("Derived from status model %q.", rec.StatusModel),
		}).Error
		if err != nil {
			return fmt.Errorf("ingest regulatory status %s/%s: %w", rec.Slug, j.Code, err)
		}
	}
	return nil
}

// ingestUseCases upserted die geteilten UseCases und die US-scoped
// Peptid-Verknüpfungen.
func (s *IngestService) ingestUseCases(db *gorm.DB, rec seed.Record, peptideID, usID uint) error {
	for _, uc := range rec.UseCases {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).Create(&models.UseCase{Slug: uc.Slug, Name: uc.Name}).Error
		if err != nil {
			return fmt.Errorf("ingest use case %s/%s: %w", rec.Slug, uc.Slug, err)
		}
		var useCase models.UseCase
		if err := db.Where("slug = ?", uc.Slug).First(&useCase).Error; err != nil {
			return fmt.Errorf("ingest use case %s/%s: %w", rec.Slug, uc.Slug, err)
		}

		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "peptide_id"}, {Name: "use_case_id"}, {Name: "jurisdiction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"evidence_grade", "consumer_summary", "clinical_summary"}),
		}).Create(&models.PeptideUseCase{
			PeptideID:       peptideID,
			UseCaseID:       useCase.ID,
			JurisdictionID:  usID,
			EvidenceGrade:   uc.EvidenceGrade,
			ConsumerSummary: uc.ConsumerSummary,
			ClinicalSummary: uc.ClinicalSummary,
		}).Error
		if err != nil {
			return fmt.Errorf("ingest peptide use case %s/%s: %w", rec.Slug, uc.Slug, err)
		}
	}
	return nil
}

// ingestDosing implementiert das update-if-exists-else-insert-Muster über
// den natürlichen Schlüssel (Peptid, Rechtsraum, Kontext, Population) —
// kein Store-Level-Conflict-Key, daher Lookup mit Branch.
func (s *IngestService) ingestDosing(db *gorm.DB, rec seed.Record, peptideID, usID uint) error {
	for _, d := range rec.Dosing {
		var existing models.DosingEntry
		err := db.Where("peptide_id = ? AND jurisdiction_id = ? AND context = ? AND population = ?",
			peptideID, usID, d.Context, d.Population).First(&existing).Error

		switch {
		case err == nil:
			err = db.Model(&existing).Updates(map[string]any{
				"route":            d.Route,
				"starting_dose":    d.StartingDose,
				"maintenance_dose": d.MaintenanceDose,
				"frequency":        d.Frequency,
				"notes":            d.Notes,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			err = db.Create(&models.DosingEntry{
				PeptideID:       peptideID,
				JurisdictionID:  usID,
				Context:         d.Context,
				Population:      d.Population,
				Route:           d.Route,
				StartingDose:    d.StartingDose,
				MaintenanceDose: d.MaintenanceDose,
				Frequency:       d.Frequency,
				Notes:           d.Notes,
			}).Error
		}
		if err != nil {
			return fmt.Errorf("ingest dosing %s/%s/%s: %w", rec.Slug, d.Context, d.Population, err)
		}
	}
	return nil
}

// ingestSafety ersetzt den Safety-Eintrag (US-Scope) vollständig.
func (s *IngestService) ingestSafety(db *gorm.DB, rec seed.Record, peptideID, usID uint) error {
	if rec.Safety == nil {
		return nil
	}
	adverse, _ := json.Marshal(rec.Safety.AdverseEffects)
	contra, _ := json.Marshal(rec.Safety.Contraindications)
	interactions, _ := json.Marshal(rec.Safety.Interactions)

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "peptide_id"}, {Name: "jurisdiction_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"adverse_effects", "contraindications", "interactions", "monitoring"}),
	}).Create(&models.SafetyEntry{
		PeptideID:         peptideID,
		JurisdictionID:    usID,
		AdverseEffects:    adverse,
		Contraindications: contra,
		Interactions:      interactions,
		Monitoring:        rec.Safety.Monitoring,
	}).Error
	if err != nil {
		return fmt.Errorf("ingest safety %s: %w", rec.Slug, err)
	}
	return nil
}

// ingestClaims löst Citations über den In-Run-Cache auf und schreibt Claims
// idempotent über das Tripel (peptide_id, section, claim_text).
func (s *IngestService) ingestClaims(db *gorm.DB, rec seed.Record, peptideID uint, citationCache map[string]uint) error {
	for _, c := range rec.Claims {
		var citationID *uint
		if c.Citation != nil {
			id, err := resolveCitation(db, citationCache, c.Citation.SourceURL, c.Citation.SourceTitle, c.Citation.PublishedAt)
			if err != nil {
				return fmt.Errorf("ingest citation %s: %w", rec.Slug, err)
			}
			citationID = &id
		}

		var existing models.Claim
		err := db.Where("peptide_id = ? AND section = ? AND claim_text = ?",
			peptideID, c.Section, c.Text).First(&existing).Error

		switch {
		case err == nil:
			// Idempotenz: identischer Text aktualisiert nur Grade und
			// Citation-Verknüpfung, dupliziert nie.
			err = db.Model(&existing).Updates(map[string]any{
				"evidence_grade": c.EvidenceGrade,
				"citation_id":    citationID,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			err = db.Create(&models.Claim{
				PeptideID:     peptideID,
				Section:       c.Section,
				ClaimText:     c.Text,
				EvidenceGrade: c.EvidenceGrade,
				CitationID:    citationID,
			}).Error
		}
		if err != nil {
			return fmt.Errorf("ingest claim %s: %w", rec.Slug, err)
		}
	}
	return nil
}
