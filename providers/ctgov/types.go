// Package ctgov enthält die Logik für die ClinicalTrials.gov v2 API.
package ctgov

// StudiesResponse repräsentiert die JSON-Antwort des studies-Endpunkts.
// Alle Felder dekodieren fehlende Werte zu leeren Strings; Kandidaten ohne
// Pflichtfelder werden übersprungen statt zu scheitern.
type StudiesResponse struct {
	Studies []Study `json:"studies"`
}

// Study ist ein einzelner Studien-Record.
type Study struct {
	ProtocolSection ProtocolSection `json:"protocolSection"`
}

// ProtocolSection bündelt die relevanten Module eines Studien-Records.
type ProtocolSection struct {
	IdentificationModule IdentificationModule `json:"identificationModule"`
	StatusModule         StatusModule         `json:"statusModule"`
	DesignModule         DesignModule         `json:"designModule"`
}

// IdentificationModule enthält Registry-ID und Kurztitel.
type IdentificationModule struct {
	NCTID      string `json:"nctId"`
	BriefTitle string `json:"briefTitle"`
}

// StatusModule enthält Status und Aktualisierungsdaten.
type StatusModule struct {
	OverallStatus            string     `json:"overallStatus"`
	LastUpdatePostDateStruct DateStruct `json:"lastUpdatePostDateStruct"`
	LastUpdateSubmitDate     DateStruct `json:"lastUpdateSubmitDateStruct"`
}

// DateStruct kapselt ein Datum im Registry-Format.
type DateStruct struct {
	Date string `json:"date"`
}

// DesignModule enthält den Studientyp (z.B. INTERVENTIONAL).
type DesignModule struct {
	StudyType string `json:"studyType"`
}
