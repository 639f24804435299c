package services

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pepdex/models"
	"pepdex/seed"
)

// newTestDB öffnet eine benannte In-Memory-SQLite-Datenbank und migriert das
// vollständige Schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Peptide{}, &models.PeptideProfile{}, &models.Alias{},
		&models.Jurisdiction{}, &models.RegulatoryStatus{},
		&models.UseCase{}, &models.PeptideUseCase{},
		&models.DosingEntry{}, &models.SafetyEntry{},
		&models.Citation{}, &models.Claim{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func testRecord(slug string) seed.Record {
	return seed.Record{
		Slug:        slug,
		Name:        slug,
		Class:       "healing",
		Aliases:     []string{slug + "-alias-1", slug + "-alias-2"},
		StatusModel: seed.ModelResearchOnly,
		Profile: seed.ProfileSeed{
			Intro:     "Kurzbeschreibung",
			Mechanism: "Wirkmechanismus",
		},
		UseCases: []seed.UseCaseSeed{
			{Slug: "tissue-repair", Name: "Tissue Repair", EvidenceGrade: "C", ConsumerSummary: "Summary"},
		},
		Dosing: []seed.DosingSeed{
			{Context: "research", Population: "adult", Route: "subcutaneous", StartingDose: "250 mcg", Frequency: "daily"},
		},
		Safety: &seed.SafetySeed{
			AdverseEffects: []string{"injection site irritation"},
			Monitoring:     "none established",
		},
		Claims: []seed.ClaimSeed{
			{
				Section:       models.SectionOverview,
				Text:          "Preclinical data suggests accelerated tendon healing.",
				EvidenceGrade: "C",
				Citation: &seed.CitationSeed{
					SourceURL:   "https://pubmed.ncbi.nlm.nih.gov/31552190/",
					SourceTitle: "Shared source",
					PublishedAt: "2019-09-20",
				},
			},
		},
	}
}

func TestIngestIdempotence(t *testing.T) {
	db := newTestDB(t)
	catalog := []seed.Record{testRecord("bpc-157"), testRecord("tb-500")}
	svc := NewIngestService(db, zap.NewNop(), catalog)

	res, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if res.Processed != 2 || res.Total != 2 {
		t.Fatalf("first run result = %+v", res)
	}

	before := map[string]int64{
		"peptides":  count(t, db, &models.Peptide{}),
		"profiles":  count(t, db, &models.PeptideProfile{}),
		"aliases":   count(t, db, &models.Alias{}),
		"statuses":  count(t, db, &models.RegulatoryStatus{}),
		"use_cases": count(t, db, &models.PeptideUseCase{}),
		"dosing":    count(t, db, &models.DosingEntry{}),
		"safety":    count(t, db, &models.SafetyEntry{}),
		"citations": count(t, db, &models.Citation{}),
		"claims":    count(t, db, &models.Claim{}),
	}
	if before["peptides"] != 2 {
		t.Fatalf("peptides = %d, want 2", before["peptides"])
	}
	if before["aliases"] != 4 {
		t.Fatalf("aliases = %d, want 4", before["aliases"])
	}

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	after := map[string]int64{
		"peptides":  count(t, db, &models.Peptide{}),
		"profiles":  count(t, db, &models.PeptideProfile{}),
		"aliases":   count(t, db, &models.Alias{}),
		"statuses":  count(t, db, &models.RegulatoryStatus{}),
		"use_cases": count(t, db, &models.PeptideUseCase{}),
		"dosing":    count(t, db, &models.DosingEntry{}),
		"safety":    count(t, db, &models.SafetyEntry{}),
		"citations": count(t, db, &models.Citation{}),
		"claims":    count(t, db, &models.Claim{}),
	}
	for table, n := range before {
		if after[table] != n {
			t.Errorf("%s: %d rows after re-run, want %d", table, after[table], n)
		}
	}
}

func TestIngestCitationDedup(t *testing.T) {
	db := newTestDB(t)
	// Beide Records zitieren dieselbe Quelle (URL + Datum)
	catalog := []seed.Record{testRecord("bpc-157"), testRecord("tb-500")}
	svc := NewIngestService(db, zap.NewNop(), catalog)

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if n := count(t, db, &models.Citation{}); n != 1 {
		t.Fatalf("citations = %d, want 1", n)
	}

	var claims []models.Claim
	if err := db.Find(&claims).Error; err != nil {
		t.Fatalf("load claims: %v", err)
	}
	if len(claims) != 2 {
		t.Fatalf("claims = %d, want 2", len(claims))
	}
	if claims[0].CitationID == nil || claims[1].CitationID == nil {
		t.Fatal("claims missing citation link")
	}
	if *claims[0].CitationID != *claims[1].CitationID {
		t.Errorf("citation ids differ: %d vs %d", *claims[0].CitationID, *claims[1].CitationID)
	}
}

func TestIngestStatusReconciliation(t *testing.T) {
	db := newTestDB(t)
	rec := testRecord("cjc-1295")
	svc := NewIngestService(db, zap.NewNop(), []seed.Record{rec})

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// Status-Modell ändert sich zwischen den Läufen
	rec.StatusModel = seed.ModelInvestigational
	svc.Catalog = []seed.Record{rec}
	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var eu models.Jurisdiction
	if err := db.Where("code = ?", "EU").First(&eu).Error; err != nil {
		t.Fatalf("load EU jurisdiction: %v", err)
	}
	var statuses []models.RegulatoryStatus
	if err := db.Where("jurisdiction_id = ?", eu.ID).Find(&statuses).Error; err != nil {
		t.Fatalf("load statuses: %v", err)
	}

	// Reconciliation ersetzt, sie akkumuliert nicht
	if len(statuses) != 1 {
		t.Fatalf("EU statuses = %d, want 1", len(statuses))
	}
	if statuses[0].Status != "INVESTIGATIONAL" {
		t.Errorf("EU status = %q, want INVESTIGATIONAL", statuses[0].Status)
	}
}

func TestIngestDosingUpdatesInPlace(t *testing.T) {
	db := newTestDB(t)
	rec := testRecord("ipamorelin")
	svc := NewIngestService(db, zap.NewNop(), []seed.Record{rec})

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	rec.Dosing[0].StartingDose = "300 mcg"
	svc.Catalog = []seed.Record{rec}
	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var entries []models.DosingEntry
	if err := db.Find(&entries).Error; err != nil {
		t.Fatalf("load dosing: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dosing entries = %d, want 1", len(entries))
	}
	if entries[0].StartingDose != "300 mcg" {
		t.Errorf("starting dose = %q, want %q", entries[0].StartingDose, "300 mcg")
	}
}

func TestResolveCitationBackfillsTitle(t *testing.T) {
	db := newTestDB(t)
	cache := make(map[string]uint)

	id1, err := resolveCitation(db, cache, "https://example.org/paper", "", "2022-01-01")
	if err != nil {
		t.Fatalf("resolve without title: %v", err)
	}

	// Neuer Lauf, neuer Cache: jetzt ist ein Titel bekannt
	id2, err := resolveCitation(db, make(map[string]uint), "https://example.org/paper", "Late-arriving title", "2022-01-01")
	if err != nil {
		t.Fatalf("resolve with title: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("citation ids differ: %d vs %d", id1, id2)
	}

	var citation models.Citation
	if err := db.First(&citation, id1).Error; err != nil {
		t.Fatalf("load citation: %v", err)
	}
	if citation.SourceTitle != "Late-arriving title" {
		t.Errorf("source title = %q, want backfilled title", citation.SourceTitle)
	}
}
