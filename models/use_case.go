package models

import (
	"time"
)

// UseCase ist ein Anwendungsfall (z.B. "Wundheilung"), geteilt über Peptide hinweg.
type UseCase struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`
	Name string `json:"name" gorm:"not null"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (UseCase) TableName() string {
	return "use_cases"
}

// PeptideUseCase verknüpft Peptid und Anwendungsfall pro Rechtsraum und trägt
// Evidenzgrad sowie Consumer-/Klinik-Zusammenfassungen.
type PeptideUseCase struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PeptideID      uint `json:"peptide_id" gorm:"index:idx_peptide_use_cases_unique,unique;not null"`
	UseCaseID      uint `json:"use_case_id" gorm:"index:idx_peptide_use_cases_unique,unique;not null"`
	JurisdictionID uint `json:"jurisdiction_id" gorm:"index:idx_peptide_use_cases_unique,unique;not null"`

	EvidenceGrade   string `json:"evidence_grade" gorm:"size:4"`
	ConsumerSummary string `json:"consumer_summary,omitempty" gorm:"type:text"`
	ClinicalSummary string `json:"clinical_summary,omitempty" gorm:"type:text"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (PeptideUseCase) TableName() string {
	return "peptide_use_cases"
}
