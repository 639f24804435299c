package providers

import "context"

// Candidate ist ein normalisierter Claim-Kandidat aus einer externen Quelle.
// Alle Felder sind bereits normalisiert (Titel, Datum, Grade), bevor der
// Kandidat den Provider verlässt.
type Candidate struct {
	Section       string
	ClaimText     string
	EvidenceGrade string
	SourceURL     string
	SourceTitle   string
	// Normalisiertes Datum im Format YYYY-MM-DD
	PublishedAt string
}

// Provider ist das Interface, das jede Evidenz-Quelle (z.B. PubMed,
// ClinicalTrials.gov) implementieren muss.
type Provider interface {
	// Harvest sucht bis zu limit Ergebnisse für den gegebenen Term und gibt
	// normalisierte Claim-Kandidaten zurück.
	Harvest(ctx context.Context, term string, limit int) ([]Candidate, error)

	// Name gibt den eindeutigen Namen des Providers zurück (z.B. "pubmed").
	Name() string
}
