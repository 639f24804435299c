package models

import (
	"time"
)

// Jurisdiction repräsentiert einen Rechtsraum (fester Satz: US, EU, UK, CA, AU).
type Jurisdiction struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"uniqueIndex;size:8;not null"`
	Name string `json:"name" gorm:"not null"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (Jurisdiction) TableName() string {
	return "jurisdictions"
}

// RegulatoryStatus ist der regulatorische Status eines Peptids in einem
// Rechtsraum. Pro (Peptid, Rechtsraum) überlebt nach einer Reconciliation
// höchstens eine Zeile.
type RegulatoryStatus struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PeptideID      uint   `json:"peptide_id" gorm:"index:idx_reg_status_unique,unique;not null"`
	JurisdictionID uint   `json:"jurisdiction_id" gorm:"index:idx_reg_status_unique,unique;not null"`
	Status         string `json:"status" gorm:"index:idx_reg_status_unique,unique;size:64;not null"`

	Notes string `json:"notes,omitempty" gorm:"type:text"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (RegulatoryStatus) TableName() string {
	return "regulatory_statuses"
}
