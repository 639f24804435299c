package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"pepdex/config"
	"pepdex/models"
	"pepdex/providers"
)

// requestTimeout gilt pro externem Call und wird über Context-Cancellation
// durchgesetzt.
const requestTimeout = 15 * time.Second

var httpClient = &http.Client{Timeout: requestTimeout}

// Fetcher kapselt die Logik zur Interaktion mit PubMed (esearch + esummary).
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt eine neue Instanz des PubMed-Fetchers.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "pubmed"
}

// Harvest führt die zweistufige Suche aus: erst IDs (sortiert nach
// Publikationsdatum), dann Summaries. Jedes Ergebnis mit nicht-leerem Titel
// wird zu einem Claim-Kandidaten in der Research-Feed-Sektion.
func (f *Fetcher) Harvest(ctx context.Context, term string, limit int) ([]providers.Candidate, error) {
	log := f.Logger.With(zap.String("term", term))

	ids, err := f.searchIDs(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("pubmed esearch: %w", err)
	}
	if len(ids) == 0 {
		log.Debug("No PubMed IDs found for term")
		return nil, nil
	}

	summaries, err := f.fetchSummaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("pubmed esummary: %w", err)
	}

	var candidates []providers.Candidate
	for _, id := range ids {
		doc, ok := summaries[id]
		if !ok {
			continue
		}
		title := providers.NormalizeTitle(doc.Title)
		if title == "" {
			continue
		}
		candidates = append(candidates, providers.Candidate{
			Section:       models.SectionResearchFeed,
			ClaimText:     fmt.Sprintf("%s Recent PubMed publication (%s) reports %q.", models.LiveClaimPrefix, id, title),
			EvidenceGrade: providers.InferPubmedGrade(title),
			SourceURL:     fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%s/", id),
			SourceTitle:   title,
			PublishedAt:   providers.ToIsoDate(doc.PubDate),
		})
	}

	log.Debug("PubMed harvest finished", zap.Int("candidates", len(candidates)))
	return candidates, nil
}

// searchIDs führt eine ESearch-Abfrage durch und gibt die nach
// Publikationsdatum sortierten PMIDs zurück.
func (f *Fetcher) searchIDs(ctx context.Context, term string, retmax int) ([]string, error) {
	searchURL := fmt.Sprintf("%s/esearch.fcgi?db=pubmed&retmode=json&retmax=%d&sort=pub+date&term=%s",
		f.Config.PubMedBaseURL, retmax, url.QueryEscape(term))
	if f.Config.PubMedAPIKey != "" {
		searchURL += "&api_key=" + f.Config.PubMedAPIKey
	}

	var esearchResp ESearchResponse
	if err := f.getJSON(ctx, searchURL, &esearchResp); err != nil {
		return nil, err
	}
	return esearchResp.ESearchResult.IdList, nil
}

// fetchSummaries löst Titel und Publikationsdatum für die gegebenen PMIDs auf.
func (f *Fetcher) fetchSummaries(ctx context.Context, ids []string) (map[string]DocSummary, error) {
	summaryURL := fmt.Sprintf("%s/esummary.fcgi?db=pubmed&id=%s&retmode=json",
		f.Config.PubMedBaseURL, strings.Join(ids, ","))
	if f.Config.PubMedAPIKey != "" {
		summaryURL += "&api_key=" + f.Config.PubMedAPIKey
	}

	var esummaryResp ESummaryResponse
	if err := f.getJSON(ctx, summaryURL, &esummaryResp); err != nil {
		return nil, err
	}

	summaries := make(map[string]DocSummary, len(ids))
	for uid, raw := range esummaryResp.Result {
		if uid == "uids" {
			continue
		}
		var doc DocSummary
		if err := json.Unmarshal(raw, &doc); err != nil {
			// Einzelnes kaputtes Summary überspringen, nicht den ganzen Call
			f.Logger.Warn("Skipping malformed esummary entry", zap.String("uid", uid), zap.Error(err))
			continue
		}
		summaries[uid] = doc
	}
	return summaries, nil
}

// getJSON führt einen GET mit per-Call-Deadline aus und dekodiert die Antwort.
// Ein Nicht-2xx-Status ist ein harter Fehler, es wird kein Partial-Parsing
// versucht.
func (f *Fetcher) getJSON(ctx context.Context, rawURL string, out any) error {
	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
