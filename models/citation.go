package models

import (
	"time"
)

// Citation ist eine externe Quelle. Das Paar (source_url, published_at) ist
// die stabile externe Identität; die Pipeline legt es nie doppelt an.
type Citation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SourceURL string `json:"source_url" gorm:"index:idx_citations_identity,unique;size:512;not null"`
	// Normalisiertes Datum im Format YYYY-MM-DD
	PublishedAt string `json:"published_at" gorm:"index:idx_citations_identity,unique;size:10;not null;default:''"`

	// Kann leer angelegt und später nachgetragen werden
	SourceTitle string `json:"source_title,omitempty" gorm:"type:text"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (Citation) TableName() string {
	return "citations"
}
