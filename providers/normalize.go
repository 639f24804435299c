package providers

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// maxTitleLen ist die maximale Titellänge nach Normalisierung.
const maxTitleLen = 220

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	yearRegex       = regexp.MustCompile(`(19|20)\d{2}`)
)

// dateLayouts sind die Datumsformate, die externe Quellen erfahrungsgemäß
// liefern (ISO, PubMed-Pubdate-Varianten, Monatsangaben).
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006 Jan 2",
	"2006 Jan",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01",
	"2006",
}

// NormalizeTitle kollabiert Whitespace, normalisiert Unicode (NFC) und kürzt
// auf 220 Zeichen mit Ellipsen-Marker.
func NormalizeTitle(title string) string {
	t := norm.NFC.String(title)
	t = strings.TrimSpace(whitespaceRegex.ReplaceAllString(t, " "))
	runes := []rune(t)
	if len(runes) > maxTitleLen {
		return string(runes[:maxTitleLen]) + "…"
	}
	return t
}

// InferPubmedGrade leitet den Evidenzgrad aus einem Publikationstitel ab:
// B bei Hinweisen auf Meta-Analysen, systematische Reviews, RCTs oder
// Phase-3-Studien, sonst C.
func InferPubmedGrade(title string) string {
	t := strings.ToLower(title)
	for _, marker := range []string{"meta-analysis", "systematic review", "randomized", "randomised", "phase 3"} {
		if strings.Contains(t, marker) {
			return "B"
		}
	}
	return "C"
}

// InferTrialsGrade leitet den Evidenzgrad aus Studientyp und -status ab:
// B für abgeschlossene interventionelle Studien, sonst C.
func InferTrialsGrade(studyType, status string) string {
	if strings.Contains(strings.ToUpper(studyType), "INTERVENTIONAL") &&
		strings.Contains(strings.ToUpper(status), "COMPLETED") {
		return "B"
	}
	return "C"
}

// ToIsoDate normalisiert heterogene Datumsangaben auf YYYY-MM-DD. Nicht
// parsebare Strings fallen auf das erste gefundene Jahr (<Jahr>-01-01)
// zurück, sonst auf das aktuelle Datum.
func ToIsoDate(raw string) string {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if year := yearRegex.FindString(s); year != "" {
		return year + "-01-01"
	}
	return time.Now().Format("2006-01-02")
}
