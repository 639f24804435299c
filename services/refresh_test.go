package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pepdex/models"
	"pepdex/providers"
)

// fakeProvider ist ein programmierbarer Provider für Refresh-Tests. Er
// protokolliert Harvest-Aufrufe (Term und Limit) threadsicher.
type fakeProvider struct {
	name       string
	candidates map[string][]providers.Candidate
	failTerms  map[string]bool

	mu    sync.Mutex
	terms []string
	limit int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Harvest(ctx context.Context, term string, limit int) ([]providers.Candidate, error) {
	f.mu.Lock()
	f.terms = append(f.terms, term)
	f.limit = limit
	f.mu.Unlock()

	if f.failTerms[term] {
		return nil, errors.New("upstream unavailable")
	}
	return f.candidates[term], nil
}

func (f *fakeProvider) seenTerms(t *testing.T) []string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.terms))
	copy(out, f.terms)
	return out
}

func createPeptide(t *testing.T, db *gorm.DB, slug string, refreshedAt *time.Time) models.Peptide {
	t.Helper()
	p := models.Peptide{Slug: slug, Name: slug, Published: true, LastLiveRefreshAt: refreshedAt}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create peptide %s: %v", slug, err)
	}
	return p
}

func liveCandidate(term string, n int) providers.Candidate {
	return providers.Candidate{
		Section:       models.SectionResearchFeed,
		ClaimText:     fmt.Sprintf("%s Recent PubMed publication (%d) reports %q.", models.LiveClaimPrefix, n, term),
		EvidenceGrade: "C",
		SourceURL:     fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%d/", n),
		SourceTitle:   term,
		PublishedAt:   "2024-02-01",
	}
}

func TestRefreshBatchOrderingAndLimit(t *testing.T) {
	db := newTestDB(t)

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	createPeptide(t, db, "never-refreshed", nil)
	createPeptide(t, db, "stale", &old)
	createPeptide(t, db, "fresh", &recent)

	prov := &fakeProvider{name: "fake"}
	svc := NewRefreshService(db, zap.NewNop(), []providers.Provider{prov})

	res, err := svc.Run(context.Background(), RefreshOptions{BatchSize: 2})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.PeptidesScanned != 2 {
		t.Fatalf("peptides scanned = %d, want 2", res.PeptidesScanned)
	}

	// NULL zuerst, dann das ältere Datum; das frischeste Peptid fällt aus
	// dem Batch
	terms := prov.seenTerms(t)
	if len(terms) != 2 {
		t.Fatalf("harvest calls = %d, want 2", len(terms))
	}
	seen := map[string]bool{terms[0]: true, terms[1]: true}
	if !seen["never-refreshed"] || !seen["stale"] {
		t.Errorf("batch selected %v, want never-refreshed and stale", terms)
	}
}

func TestRefreshSourcesPerPeptideClamped(t *testing.T) {
	db := newTestDB(t)
	createPeptide(t, db, "bpc-157", nil)

	prov := &fakeProvider{name: "fake"}
	svc := NewRefreshService(db, zap.NewNop(), []providers.Provider{prov})

	if _, err := svc.Run(context.Background(), RefreshOptions{SourcesPerPeptide: 99}); err != nil {
		t.Fatalf("run: %v", err)
	}

	prov.mu.Lock()
	defer prov.mu.Unlock()
	if prov.limit != 3 {
		t.Errorf("harvest limit = %d, want clamped 3", prov.limit)
	}
}

func TestRefreshNoHitsAdvancesTimestamp(t *testing.T) {
	db := newTestDB(t)
	p := createPeptide(t, db, "tb-500", nil)

	// Bestehender Live-Claim aus einem früheren Lauf
	stale := models.Claim{
		PeptideID: p.ID,
		Section:   models.SectionResearchFeed,
		ClaimText: models.LiveClaimPrefix + " Recent PubMed publication (99) reports \"Old finding\".",
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("create stale claim: %v", err)
	}

	prov := &fakeProvider{name: "fake"}
	svc := NewRefreshService(db, zap.NewNop(), []providers.Provider{prov})

	res, err := svc.Run(context.Background(), RefreshOptions{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.PeptidesWithNoHits != 1 {
		t.Errorf("no-hits = %d, want 1", res.PeptidesWithNoHits)
	}
	if res.Failures != 0 {
		t.Errorf("failures = %d, want 0", res.Failures)
	}

	var reloaded models.Peptide
	if err := db.First(&reloaded, p.ID).Error; err != nil {
		t.Fatalf("reload peptide: %v", err)
	}
	if reloaded.LastLiveRefreshAt == nil {
		t.Error("last_live_refresh_at not advanced on no-hits run")
	}
	// Alte Live-Claims bleiben bei leerem Ergebnis stehen
	if n := count(t, db, &models.Claim{}); n != 1 {
		t.Errorf("claims = %d, want 1", n)
	}
}

func TestRefreshFailureLeavesTimestampUntouched(t *testing.T) {
	db := newTestDB(t)
	failing := createPeptide(t, db, "failing", nil)
	healthy := createPeptide(t, db, "healthy", nil)

	prov := &fakeProvider{
		name:      "fake",
		failTerms: map[string]bool{"failing": true},
		candidates: map[string][]providers.Candidate{
			"healthy": {liveCandidate("healthy", 1)},
		},
	}
	svc := NewRefreshService(db, zap.NewNop(), []providers.Provider{prov})

	res, err := svc.Run(context.Background(), RefreshOptions{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// Der Batch bricht nicht ab: das gesunde Peptid wird trotzdem verarbeitet
	if res.PeptidesScanned != 2 {
		t.Errorf("peptides scanned = %d, want 2", res.PeptidesScanned)
	}
	if res.Failures != 1 {
		t.Errorf("failures = %d, want 1", res.Failures)
	}
	if res.ClaimsUpserted != 1 {
		t.Errorf("claims upserted = %d, want 1", res.ClaimsUpserted)
	}

	var reloaded models.Peptide
	if err := db.First(&reloaded, failing.ID).Error; err != nil {
		t.Fatalf("reload failing peptide: %v", err)
	}
	if reloaded.LastLiveRefreshAt != nil {
		t.Error("failed peptide got its timestamp advanced")
	}
	reloaded = models.Peptide{}
	if err := db.First(&reloaded, healthy.ID).Error; err != nil {
		t.Fatalf("reload healthy peptide: %v", err)
	}
	if reloaded.LastLiveRefreshAt == nil {
		t.Error("healthy peptide missing advanced timestamp")
	}
}

func TestRefreshReplacesOnlyPrefixedClaims(t *testing.T) {
	db := newTestDB(t)
	p := createPeptide(t, db, "semaglutide", nil)

	curated := models.Claim{
		PeptideID:     p.ID,
		Section:       models.SectionResearchFeed,
		ClaimText:     "Editorially curated note on recent publications.",
		EvidenceGrade: "B",
	}
	staleLive := models.Claim{
		PeptideID: p.ID,
		Section:   models.SectionClinicalTrials,
		ClaimText: models.LiveClaimPrefix + ` ClinicalTrials.gov study NCT00000001 ("Old study") is listed as TERMINATED.`,
	}
	overview := models.Claim{
		PeptideID: p.ID,
		Section:   models.SectionOverview,
		ClaimText: models.LiveClaimPrefix + " looking text in a curated section stays put.",
	}
	for _, c := range []*models.Claim{&curated, &staleLive, &overview} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("create claim: %v", err)
		}
	}

	prov := &fakeProvider{
		name: "fake",
		candidates: map[string][]providers.Candidate{
			"semaglutide": {liveCandidate("semaglutide", 42)},
		},
	}
	svc := NewRefreshService(db, zap.NewNop(), []providers.Provider{prov})

	res, err := svc.Run(context.Background(), RefreshOptions{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.ClaimsUpserted != 1 {
		t.Fatalf("claims upserted = %d, want 1", res.ClaimsUpserted)
	}

	var claims []models.Claim
	if err := db.Where("peptide_id = ?", p.ID).Find(&claims).Error; err != nil {
		t.Fatalf("load claims: %v", err)
	}
	texts := make(map[string]bool, len(claims))
	for _, c := range claims {
		texts[c.ClaimText] = true
	}

	if !texts[curated.ClaimText] {
		t.Error("curated claim in live section was deleted")
	}
	if !texts[overview.ClaimText] {
		t.Error("prefixed claim outside live sections was deleted")
	}
	if texts[staleLive.ClaimText] {
		t.Error("stale live claim survived the refresh")
	}
	if !texts[liveCandidate("semaglutide", 42).ClaimText] {
		t.Error("new live claim missing")
	}
	if len(claims) != 3 {
		t.Errorf("claims = %d, want 3", len(claims))
	}
}

func TestRefreshFanInCombinesProviders(t *testing.T) {
	db := newTestDB(t)
	p := createPeptide(t, db, "cjc-1295", nil)

	pubs := &fakeProvider{
		name: "pubmed",
		candidates: map[string][]providers.Candidate{
			"cjc-1295": {liveCandidate("cjc-1295", 7)},
		},
	}
	trials := &fakeProvider{
		name: "ctgov",
		candidates: map[string][]providers.Candidate{
			"cjc-1295": {{
				Section:       models.SectionClinicalTrials,
				ClaimText:     models.LiveClaimPrefix + ` ClinicalTrials.gov study NCT02345678 ("GH secretagogue trial") is listed as COMPLETED.`,
				EvidenceGrade: "B",
				SourceURL:     "https://clinicaltrials.gov/study/NCT02345678",
				PublishedAt:   "2023-06-01",
			}},
		},
	}
	svc := NewRefreshService(db, zap.NewNop(), []providers.Provider{pubs, trials})

	res, err := svc.Run(context.Background(), RefreshOptions{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.ClaimsUpserted != 2 {
		t.Fatalf("claims upserted = %d, want 2", res.ClaimsUpserted)
	}

	if n := count(t, db, &models.Claim{}); n != 2 {
		t.Errorf("claims = %d, want 2", n)
	}
	if n := count(t, db, &models.Citation{}); n != 2 {
		t.Errorf("citations = %d, want 2", n)
	}

	var claims []models.Claim
	if err := db.Where("peptide_id = ?", p.ID).Find(&claims).Error; err != nil {
		t.Fatalf("load claims: %v", err)
	}
	for _, c := range claims {
		if c.CitationID == nil {
			t.Errorf("claim %q missing citation link", c.ClaimText)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max, def int
		want             int
	}{
		{0, 1, 50, 12, 12},
		{-3, 1, 50, 12, 1},
		{200, 1, 50, 12, 50},
		{7, 1, 50, 12, 7},
	}
	for _, tc := range cases {
		if got := clamp(tc.v, tc.min, tc.max, tc.def); got != tc.want {
			t.Errorf("clamp(%d, %d, %d, %d) = %d, want %d", tc.v, tc.min, tc.max, tc.def, got, tc.want)
		}
	}
}
