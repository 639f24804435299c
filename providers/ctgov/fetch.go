package ctgov

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"pepdex/config"
	"pepdex/models"
	"pepdex/providers"
)

// statusFallback wird verwendet, wenn die Registry keinen Status liefert.
const statusFallback = "Status not reported"

const requestTimeout = 15 * time.Second

var httpClient = &http.Client{Timeout: requestTimeout}

// Fetcher kapselt die Logik zur Interaktion mit ClinicalTrials.gov v2.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt eine neue Instanz des ClinicalTrials.gov-Fetchers.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "ctgov"
}

// Harvest fragt den studies-Endpunkt ab. Ein Kandidat braucht Registry-ID
// und nicht-leeren Kurztitel; alles andere wird übersprungen.
func (f *Fetcher) Harvest(ctx context.Context, term string, limit int) ([]providers.Candidate, error) {
	log := f.Logger.With(zap.String("term", term))

	studiesURL := fmt.Sprintf("%s/studies?query.term=%s&pageSize=%d&format=json",
		f.Config.CTGovBaseURL, url.QueryEscape(term), limit)

	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, studiesURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ctgov studies: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ctgov studies: unexpected status %d", resp.StatusCode)
	}

	var studiesResp StudiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&studiesResp); err != nil {
		return nil, fmt.Errorf("ctgov studies: %w", err)
	}

	var candidates []providers.Candidate
	for _, study := range studiesResp.Studies {
		ident := study.ProtocolSection.IdentificationModule
		title := providers.NormalizeTitle(ident.BriefTitle)
		if ident.NCTID == "" || title == "" {
			continue
		}

		statusMod := study.ProtocolSection.StatusModule
		status := statusMod.OverallStatus
		if status == "" {
			status = statusFallback
		}

		rawDate := statusMod.LastUpdatePostDateStruct.Date
		if rawDate == "" {
			rawDate = statusMod.LastUpdateSubmitDate.Date
		}

		candidates = append(candidates, providers.Candidate{
			Section:       models.SectionClinicalTrials,
			ClaimText:     fmt.Sprintf("%s ClinicalTrials.gov study %s (%q) is listed as %s.", models.LiveClaimPrefix, ident.NCTID, title, status),
			EvidenceGrade: providers.InferTrialsGrade(study.ProtocolSection.DesignModule.StudyType, statusMod.OverallStatus),
			SourceURL:     fmt.Sprintf("https://clinicaltrials.gov/study/%s", ident.NCTID),
			SourceTitle:   title,
			PublishedAt:   providers.ToIsoDate(rawDate),
		})
	}

	log.Debug("ClinicalTrials.gov harvest finished", zap.Int("candidates", len(candidates)))
	return candidates, nil
}
