package models

import (
	"time"
)

// Sektionen der Claim-Taxonomie. ResearchFeed und ClinicalTrials sind die
// beiden Live-Refresh-Sektionen; nur dort ersetzt der Refresh Zeilen mit
// dem Prefix LiveClaimPrefix.
const (
	SectionOverview         = "overview"
	SectionMechanism        = "mechanism"
	SectionClinicalEvidence = "clinical_evidence"
	SectionSafety           = "safety"
	SectionResearchFeed     = "research_feed"
	SectionClinicalTrials   = "clinical_trials"

	// LiveClaimPrefix markiert maschinell erzeugte Claims.
	LiveClaimPrefix = "Live refresh:"
)

// LiveSections sind die Sektionen, die der Live-Refresh bewirtschaftet.
var LiveSections = []string{SectionResearchFeed, SectionClinicalTrials}

// Claim ist eine evidenzbasierte Aussage zu einem Peptid. Das Tripel
// (peptide_id, section, claim_text) ist der Idempotenz-Schlüssel.
type Claim struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PeptideID uint   `json:"peptide_id" gorm:"index:idx_claims_identity,unique;not null"`
	Section   string `json:"section" gorm:"index:idx_claims_identity,unique;size:64;not null"`
	ClaimText string `json:"claim_text" gorm:"index:idx_claims_identity,unique;size:1024;not null"`

	EvidenceGrade string `json:"evidence_grade" gorm:"size:4"`
	CitationID    *uint  `json:"citation_id,omitempty" gorm:"index"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (Claim) TableName() string {
	return "claims"
}
