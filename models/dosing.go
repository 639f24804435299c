package models

import (
	"time"
)

// DosingEntry beschreibt ein Dosierungsschema pro (Peptid, Rechtsraum,
// Kontext, Population). Kein Store-Level-Conflict-Key: der natürliche
// Schlüssel wird per Lookup aufgelöst (update-if-exists, else insert).
type DosingEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PeptideID      uint `json:"peptide_id" gorm:"index;not null"`
	JurisdictionID uint `json:"jurisdiction_id" gorm:"index;not null"`

	Context    string `json:"context" gorm:"size:64;not null"`     // z.B. "clinical", "research"
	Population string `json:"population" gorm:"size:128;not null"` // z.B. "adults"

	Route           string `json:"route,omitempty" gorm:"size:64"`
	StartingDose    string `json:"starting_dose,omitempty"`
	MaintenanceDose string `json:"maintenance_dose,omitempty"`
	Frequency       string `json:"frequency,omitempty"`
	Notes           string `json:"notes,omitempty" gorm:"type:text"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (DosingEntry) TableName() string {
	return "dosing_entries"
}
