package models

import (
	"time"
)

// Peptide repräsentiert einen Wirkstoff-Eintrag im Verzeichnis (Root-Entität).
type Peptide struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug  string `json:"slug" gorm:"uniqueIndex;not null"`
	Name  string `json:"name" gorm:"not null"`
	Class string `json:"class,omitempty" gorm:"index"`

	Published bool `json:"published" gorm:"index;default:true"`

	// Zeitpunkt des letzten erfolgreichen Live-Refresh (NULL = noch nie)
	LastLiveRefreshAt *time.Time `json:"last_live_refresh_at,omitempty" gorm:"index"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (Peptide) TableName() string {
	return "peptides"
}

// PeptideProfile enthält die redaktionellen Langtexte zu einem Peptid (1:1).
type PeptideProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PeptideID uint `json:"peptide_id" gorm:"uniqueIndex;not null"`

	Intro         string `json:"intro,omitempty" gorm:"type:text"`
	Mechanism     string `json:"mechanism,omitempty" gorm:"type:text"`
	Effectiveness string `json:"effectiveness,omitempty" gorm:"type:text"`
	Description   string `json:"description,omitempty" gorm:"type:text"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (PeptideProfile) TableName() string {
	return "peptide_profiles"
}

// Alias ist eine alternative Bezeichnung für ein Peptid. Aliase werden nur
// hinzugefügt, nie entfernt.
type Alias struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	PeptideID uint   `json:"peptide_id" gorm:"index:idx_aliases_unique,unique;not null"`
	Alias     string `json:"alias" gorm:"index:idx_aliases_unique,unique;size:256;not null"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (Alias) TableName() string {
	return "aliases"
}
