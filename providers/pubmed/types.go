// Package pubmed enthält die Logik für die Interaktion mit der PubMed eutils API.
package pubmed

import "encoding/json"

// ESearchResponse repräsentiert die JSON-Antwort von ESearch für die ID-Suche.
type ESearchResponse struct {
	ESearchResult struct {
		IdList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// ESummaryResponse repräsentiert die JSON-Antwort von ESummary. Das result-
// Objekt mappt jede UID auf ihr Summary; der Schlüssel "uids" enthält die
// Liste und wird beim Dekodieren übersprungen.
type ESummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

// DocSummary ist das Summary einer einzelnen Publikation.
type DocSummary struct {
	UID     string `json:"uid"`
	Title   string `json:"title"`
	PubDate string `json:"pubdate"`
}
