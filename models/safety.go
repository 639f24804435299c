package models

import (
	"time"

	"gorm.io/datatypes"
)

// SafetyEntry bündelt Sicherheitsinformationen pro (Peptid, Rechtsraum) und
// wird bei jeder Seed-Ingestion vollständig ersetzt.
type SafetyEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PeptideID      uint `json:"peptide_id" gorm:"index:idx_safety_entries_unique,unique;not null"`
	JurisdictionID uint `json:"jurisdiction_id" gorm:"index:idx_safety_entries_unique,unique;not null"`

	// Listenförmige Felder als JSON-Arrays
	AdverseEffects    datatypes.JSON `json:"adverse_effects,omitempty" gorm:"type:jsonb"`
	Contraindications datatypes.JSON `json:"contraindications,omitempty" gorm:"type:jsonb"`
	Interactions      datatypes.JSON `json:"interactions,omitempty" gorm:"type:jsonb"`

	Monitoring string `json:"monitoring,omitempty" gorm:"type:text"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (SafetyEntry) TableName() string {
	return "safety_entries"
}
