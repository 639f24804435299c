// Package seed enthält den statischen, versionierten Seed-Katalog für die
// Bulk-Ingestion sowie die Abbildung Status-Modell → regulatorischer Status.
package seed

import "pepdex/models"

// Jurisdictions ist der feste Satz an Rechtsräumen. Wird einmalig beim
// Ingestion-Lauf upserted; "US" ist der implizite Rechtsraum für Use-Case-,
// Dosierungs- und Safety-Zeilen des Seed-Formats.
var Jurisdictions = []models.Jurisdiction{
	{Code: "US", Name: "United States"},
	{Code: "EU", Name: "European Union"},
	{Code: "UK", Name: "United Kingdom"},
	{Code: "CA", Name: "Canada"},
	{Code: "AU", Name: "Australia"},
}

// Status-Modelle der Seed-Records.
const (
	ModelResearchOnly    = "research-only"
	ModelApprovedRx      = "approved-rx"
	ModelInvestigational = "investigational"
	ModelGrayMarket      = "gray-market"
)

// StatusFor bildet ein Status-Modell und einen Jurisdiction-Code auf den
// regulatorischen Statuswert ab. Reine Funktion, keine Seiteneffekte.
func StatusFor(model, code string) string {
	switch model {
	case ModelApprovedRx:
		return "APPROVED"
	case ModelInvestigational:
		if code == "US" || code == "EU" {
			return "INVESTIGATIONAL"
		}
		return "RESEARCH_ONLY"
	case ModelGrayMarket:
		if code == "AU" {
			return "PRESCRIPTION_ONLY"
		}
		return "NOT_APPROVED"
	default:
		return "RESEARCH_ONLY"
	}
}

// ProfileSeed sind die redaktionellen Langtexte eines Records.
type ProfileSeed struct {
	Intro         string
	Mechanism     string
	Effectiveness string
	Description   string
}

// UseCaseSeed verknüpft den Record mit einem Anwendungsfall (US-Scope).
type UseCaseSeed struct {
	Slug            string
	Name            string
	EvidenceGrade   string
	ConsumerSummary string
	ClinicalSummary string
}

// DosingSeed ist ein Dosierungsschema (US-Scope). (Context, Population)
// bildet zusammen mit Peptid und Rechtsraum den natürlichen Schlüssel.
type DosingSeed struct {
	Context         string
	Population      string
	Route           string
	StartingDose    string
	MaintenanceDose string
	Frequency       string
	Notes           string
}

// SafetySeed bündelt Sicherheitsinformationen (US-Scope).
type SafetySeed struct {
	AdverseEffects    []string
	Contraindications []string
	Interactions      []string
	Monitoring        string
}

// CitationSeed referenziert eine externe Quelle. (SourceURL, PublishedAt)
// ist die Dedup-Identität.
type CitationSeed struct {
	SourceURL   string
	SourceTitle string
	PublishedAt string
}

// ClaimSeed ist eine kuratierte Aussage mit Beleg.
type ClaimSeed struct {
	Section       string
	Text          string
	EvidenceGrade string
	Citation      *CitationSeed
}

// Record ist ein vollständiger Seed-Eintrag für ein Peptid.
type Record struct {
	Slug        string
	Name        string
	Class       string
	Aliases     []string
	StatusModel string
	Profile     ProfileSeed
	UseCases    []UseCaseSeed
	Dosing      []DosingSeed
	Safety      *SafetySeed
	Claims      []ClaimSeed
}
