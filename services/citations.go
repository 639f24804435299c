package services

import (
	"errors"

	"gorm.io/gorm"

	"pepdex/models"
)

// citationKey bildet den Dedup-Schlüssel einer Citation: sourceUrl|publishedAt.
// Beide Komponenten (Seed-Ingestion und Live-Refresh) nutzen dieselbe Form,
// aber getrennte Cache-Instanzen pro Lauf.
func citationKey(sourceURL, publishedAt string) string {
	return sourceURL + "|" + publishedAt
}

// resolveCitation löst eine Citation über den In-Run-Cache bzw. den Store auf
// und legt sie bei Bedarf an. Ein leerer gespeicherter Titel wird nachgetragen,
// sobald ein Titel bekannt ist. Gibt die Citation-ID zurück.
func resolveCitation(db *gorm.DB, cache map[string]uint, sourceURL, sourceTitle, publishedAt string) (uint, error) {
	key := citationKey(sourceURL, publishedAt)
	if id, ok := cache[key]; ok {
		return id, nil
	}

	var citation models.Citation
	err := db.Where("source_url = ? AND published_at = ?", sourceURL, publishedAt).First(&citation).Error
	switch {
	case err == nil:
		if citation.SourceTitle == "" && sourceTitle != "" {
			if err := db.Model(&citation).Update("source_title", sourceTitle).Error; err != nil {
				return 0, err
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		citation = models.Citation{
			SourceURL:   sourceURL,
			PublishedAt: publishedAt,
			SourceTitle: sourceTitle,
		}
		if err := db.Create(&citation).Error; err != nil {
			return 0, err
		}
	default:
		return 0, err
	}

	cache[key] = citation.ID
	return citation.ID, nil
}
