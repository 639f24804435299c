package seed

import "pepdex/models"

// Catalog ist der kuratierte Seed-Datensatz. Reihenfolge ist stabil; die
// Ingestion verarbeitet die Records in Katalog-Reihenfolge.
var Catalog = []Record{
	{
		Slug:        "bpc-157",
		Name:        "BPC-157",
		Class:       "Synthetic gastric pentadecapeptide",
		Aliases:     []string{"Body Protection Compound 157", "PL 14736", "Bepecin"},
		StatusModel: ModelGrayMarket,
		Profile: ProfileSeed{
			Intro:         "BPC-157 is a synthetic pentadecapeptide derived from a protective protein found in human gastric juice.",
			Mechanism:     "Promotes angiogenesis via VEGFR2 activation and modulates the nitric oxide pathway; upregulates growth hormone receptor expression in fibroblasts.",
			Effectiveness: "Animal data across tendon, ligament and gut injury models is consistent; controlled human data is essentially absent.",
			Description:   "Widely discussed in the gray-market research community for soft-tissue recovery. No regulatory body has approved BPC-157 for human use; available human reports are anecdotal.",
		},
		UseCases: []UseCaseSeed{
			{
				Slug:            "tendon-repair",
				Name:            "Tendon and ligament repair",
				EvidenceGrade:   "C",
				ConsumerSummary: "Rodent studies show faster tendon-to-bone healing; no controlled human trials exist.",
				ClinicalSummary: "Transected Achilles tendon models in rats show accelerated fibroblast outgrowth under BPC-157 across oral and injected routes.",
			},
			{
				Slug:            "gut-healing",
				Name:            "Gastrointestinal protection",
				EvidenceGrade:   "C",
				ConsumerSummary: "Derived from a stomach protein; animal data supports mucosal protection.",
				ClinicalSummary: "Cytoprotective effects in NSAID- and alcohol-induced lesion models; periodontitis and fistula models respond in rodents.",
			},
		},
		Dosing: []DosingSeed{
			{
				Context:         "research",
				Population:      "adults",
				Route:           "subcutaneous",
				StartingDose:    "200 mcg/day",
				MaintenanceDose: "250-500 mcg/day",
				Frequency:       "once or twice daily",
				Notes:           "Doses extrapolated from animal studies (10 mcg/kg); no validated human dosing exists.",
			},
		},
		Safety: &SafetySeed{
			AdverseEffects:    []string{"injection site irritation", "nausea (anecdotal)", "dizziness (anecdotal)"},
			Contraindications: []string{"active malignancy (theoretical, pro-angiogenic mechanism)", "pregnancy and lactation"},
			Interactions:      []string{"unknown; no formal interaction studies"},
			Monitoring:        "No established monitoring. Given the pro-angiogenic mechanism, caution with any history of cancer.",
		},
		Claims: []ClaimSeed{
			{
				Section:       models.SectionMechanism,
				Text:          "BPC-157 accelerates healing of transected rat Achilles tendon via growth hormone receptor upregulation.",
				EvidenceGrade: "C",
				Citation: &CitationSeed{
					SourceURL:   "https://pubmed.ncbi.nlm.nih.gov/21030672/",
					SourceTitle: "Growth hormone-promoted tendon fibroblast proliferation is potentiated by BPC 157",
					PublishedAt: "2011-01-15",
				},
			},
			{
				Section:       models.SectionOverview,
				Text:          "No randomized controlled human trials of BPC-157 have been published.",
				EvidenceGrade: "B",
				Citation: &CitationSeed{
					SourceURL:   "https://pubmed.ncbi.nlm.nih.gov/31552190/",
					SourceTitle: "Stable gastric pentadecapeptide BPC 157: novel therapy in gastrointestinal tract",
					PublishedAt: "2019-09-20",
				},
			},
		},
	},
	{
		Slug:        "tb-500",
		Name:        "TB-500",
		Class:       "Thymosin beta-4 fragment",
		Aliases:     []string{"Thymosin Beta-4", "TB4", "Tβ4"},
		StatusModel: ModelGrayMarket,
		Profile: ProfileSeed{
			Intro:         "TB-500 is the synthetic version of the actin-binding peptide region of thymosin beta-4.",
			Mechanism:     "Sequesters G-actin and promotes cell migration; upregulates cell-building proteins involved in tissue repair and reduces inflammation.",
			Effectiveness: "Preclinical wound-healing and cardiac repair data; human evidence limited to small dermal ulcer trials of the parent molecule.",
			Description:   "Banned in most competitive sport under the WADA prohibited list. Sold as a research chemical; pharmaceutical-grade thymosin beta-4 remains investigational.",
		},
		UseCases: []UseCaseSeed{
			{
				Slug:            "tendon-repair",
				Name:            "Tendon and ligament repair",
				EvidenceGrade:   "C",
				ConsumerSummary: "Often stacked with BPC-157 for soft-tissue injuries; evidence is preclinical.",
				ClinicalSummary: "Actin-mediated cell migration supports tissue remodeling in animal models; no tendon-specific human data.",
			},
		},
		Dosing: []DosingSeed{
			{
				Context:         "research",
				Population:      "adults",
				Route:           "subcutaneous",
				StartingDose:    "2 mg twice weekly",
				MaintenanceDose: "2 mg weekly",
				Frequency:       "loading 4-6 weeks, then maintenance",
				Notes:           "Community-reported protocol; not derived from any clinical trial.",
			},
		},
		Safety: &SafetySeed{
			AdverseEffects:    []string{"headache (anecdotal)", "lethargy after injection (anecdotal)"},
			Contraindications: []string{"active malignancy (theoretical)", "competitive athletes (WADA prohibited)"},
			Interactions:      []string{"unknown; no formal interaction studies"},
			Monitoring:        "No established monitoring.",
		},
		Claims: []ClaimSeed{
			{
				Section:       models.SectionOverview,
				Text:          "No randomized controlled human trials of BPC-157 have been published.",
				EvidenceGrade: "B",
				// Gleiche Quelle wie im BPC-157-Record: exerziert die
				// Citation-Deduplizierung innerhalb eines Laufs.
				Citation: &CitationSeed{
					SourceURL:   "https://pubmed.ncbi.nlm.nih.gov/31552190/",
					SourceTitle: "Stable gastric pentadecapeptide BPC 157: novel therapy in gastrointestinal tract",
					PublishedAt: "2019-09-20",
				},
			},
			{
				Section:       models.SectionMechanism,
				Text:          "Thymosin beta-4 promotes dermal wound repair through actin-mediated cell migration.",
				EvidenceGrade: "C",
				Citation: &CitationSeed{
					SourceURL:   "https://pubmed.ncbi.nlm.nih.gov/10556048/",
					SourceTitle: "Thymosin beta4 accelerates wound healing",
					PublishedAt: "1999-11-01",
				},
			},
		},
	},
	{
		Slug:        "cjc-1295",
		Name:        "CJC-1295",
		Class:       "GHRH analogue",
		Aliases:     []string{"Modified GRF 1-29", "DAC:GRF"},
		StatusModel: ModelInvestigational,
		Profile: ProfileSeed{
			Intro:         "CJC-1295 is a long-acting growth-hormone-releasing-hormone analogue with drug affinity complex modification.",
			Mechanism:     "Binds GHRH receptors in the anterior pituitary and extends half-life via covalent albumin binding, producing sustained GH and IGF-1 elevation.",
			Effectiveness: "Phase 1/2 data show dose-dependent GH and IGF-1 increases lasting up to 14 days per dose.",
			Description:   "Clinical development for lipodystrophy stalled; the compound persists in research-chemical circulation.",
		},
		UseCases: []UseCaseSeed{
			{
				Slug:            "growth-hormone-support",
				Name:            "Growth hormone axis support",
				EvidenceGrade:   "B",
				ConsumerSummary: "Raises GH and IGF-1 for days after a single dose in early human trials.",
				ClinicalSummary: "Healthy-adult phase 1 studies showed 2- to 10-fold GH increases sustained over 6 days and IGF-1 elevation up to 11 days.",
			},
		},
		Dosing: []DosingSeed{
			{
				Context:         "clinical",
				Population:      "adults",
				Route:           "subcutaneous",
				StartingDose:    "30 mcg/kg weekly",
				MaintenanceDose: "30-60 mcg/kg weekly",
				Frequency:       "weekly or biweekly",
				Notes:           "Doses from published phase 1 protocols.",
			},
		},
		Safety: &SafetySeed{
			AdverseEffects:    []string{"injection site reactions", "transient flushing", "headache", "water retention"},
			Contraindications: []string{"active malignancy", "proliferative diabetic retinopathy"},
			Interactions:      []string{"insulin and oral hypoglycemics (GH antagonizes insulin action)"},
			Monitoring:        "IGF-1 levels and fasting glucose during sustained use.",
		},
		Claims: []ClaimSeed{
			{
				Section:       models.SectionClinicalEvidence,
				Text:          "Single subcutaneous doses of CJC-1295 increased plasma GH concentrations 2- to 10-fold in healthy adults.",
				EvidenceGrade: "B",
				Citation: &CitationSeed{
					SourceURL:   "https://pubmed.ncbi.nlm.nih.gov/16352683/",
					SourceTitle: "Prolonged stimulation of growth hormone and IGF-I secretion by CJC-1295 in healthy adults",
					PublishedAt: "2006-03-01",
				},
			},
		},
	},
	{
		Slug:        "ipamorelin",
		Name:        "Ipamorelin",
		Class:       "Ghrelin receptor agonist (GHRP)",
		Aliases:     []string{"NNC 26-0161"},
		StatusModel: ModelInvestigational,
		Profile: ProfileSeed{
			Intro:         "Ipamorelin is a selective pentapeptide growth hormone secretagogue.",
			Mechanism:     "Agonizes the ghrelin/GHS receptor to trigger pulsatile GH release without the cortisol and prolactin response of earlier GHRPs.",
			Effectiveness: "Phase 2 data in postoperative ileus failed efficacy endpoints; GH-release pharmacology is well characterized.",
			Description:   "Commonly combined with CJC-1295 in gray-market protocols; pharmaceutical development was discontinued.",
		},
		UseCases: []UseCaseSeed{
			{
				Slug:            "growth-hormone-support",
				Name:            "Growth hormone axis support",
				EvidenceGrade:   "C",
				ConsumerSummary: "Produces clean GH pulses in pharmacology studies; clinical outcome data is lacking.",
				ClinicalSummary: "Selective GHSR agonism with minimal ACTH/cortisol effect demonstrated in human pharmacodynamic studies.",
			},
		},
		Dosing: []DosingSeed{
			{
				Context:         "research",
				Population:      "adults",
				Route:           "subcutaneous",
				StartingDose:    "100 mcg/day",
				MaintenanceDose: "200-300 mcg/day",
				Frequency:       "once to three times daily",
				Notes:           "Community protocol; phase 2 trials used intravenous weight-based dosing.",
			},
		},
		Safety: &SafetySeed{
			AdverseEffects:    []string{"transient hunger", "headache", "flushing"},
			Contraindications: []string{"active malignancy"},
			Interactions:      []string{"insulin sensitivity may shift under sustained GH elevation"},
			Monitoring:        "IGF-1 if used beyond short cycles.",
		},
		Claims: []ClaimSeed{
			{
				Section:       models.SectionMechanism,
				Text:          "Ipamorelin releases growth hormone without significantly elevating cortisol or prolactin.",
				EvidenceGrade: "B",
				Citation: &CitationSeed{
					SourceURL:   "https://pubmed.ncbi.nlm.nih.gov/9849822/",
					SourceTitle: "Ipamorelin, the first selective growth hormone secretagogue",
					PublishedAt: "1998-11-01",
				},
			},
		},
	},
	{
		Slug:        "semaglutide",
		Name:        "Semaglutide",
		Class:       "GLP-1 receptor agonist",
		Aliases:     []string{"Ozempic", "Wegovy", "Rybelsus"},
		StatusModel: ModelApprovedRx,
		Profile: ProfileSeed{
			Intro:         "Semaglutide is a GLP-1 receptor agonist approved for type 2 diabetes and chronic weight management.",
			Mechanism:     "Activates GLP-1 receptors to enhance glucose-dependent insulin secretion, suppress glucagon and slow gastric emptying; central appetite suppression drives weight loss.",
			Effectiveness: "Large randomized trials show ~15% mean body-weight reduction and significant cardiovascular risk reduction.",
			Description:   "The benchmark peptide therapeutic: full regulatory approval across major jurisdictions with extensive outcome data.",
		},
		UseCases: []UseCaseSeed{
			{
				Slug:            "weight-management",
				Name:            "Chronic weight management",
				EvidenceGrade:   "A",
				ConsumerSummary: "Approved for weight management; trial participants lost around 15% of body weight over 68 weeks.",
				ClinicalSummary: "STEP 1 (NEJM 2021): -14.9% mean weight change vs -2.4% placebo at week 68 with 2.4 mg weekly.",
			},
			{
				Slug:            "glycemic-control",
				Name:            "Glycemic control in type 2 diabetes",
				EvidenceGrade:   "A",
				ConsumerSummary: "Approved for type 2 diabetes with strong HbA1c reduction.",
				ClinicalSummary: "SUSTAIN program demonstrated superior HbA1c reduction versus comparators including sitagliptin and exenatide ER.",
			},
		},
		Dosing: []DosingSeed{
			{
				Context:         "clinical",
				Population:      "adults",
				Route:           "subcutaneous",
				StartingDose:    "0.25 mg weekly",
				MaintenanceDose: "1.0-2.4 mg weekly",
				Frequency:       "weekly, 4-week titration steps",
				Notes:           "Label dosing; titrate to limit gastrointestinal effects.",
			},
			{
				Context:         "clinical",
				Population:      "adults-oral",
				Route:           "oral",
				StartingDose:    "3 mg daily",
				MaintenanceDose: "7-14 mg daily",
				Frequency:       "daily, fasted",
				Notes:           "Oral formulation (Rybelsus) requires 30 min fast after dosing.",
			},
		},
		Safety: &SafetySeed{
			AdverseEffects:    []string{"nausea", "vomiting", "diarrhea", "constipation", "gallbladder events"},
			Contraindications: []string{"personal/family history of medullary thyroid carcinoma", "MEN 2 syndrome", "pregnancy"},
			Interactions:      []string{"delays gastric emptying; may alter absorption of oral drugs", "insulin/sulfonylureas (hypoglycemia risk)"},
			Monitoring:        "Weight, HbA1c, renal function during dose escalation; pancreatitis symptoms.",
		},
		Claims: []ClaimSeed{
			{
				Section:       models.SectionClinicalEvidence,
				Text:          "Once-weekly semaglutide 2.4 mg produced 14.9% mean weight loss at 68 weeks in adults with overweight or obesity.",
				EvidenceGrade: "A",
				Citation: &CitationSeed{
					SourceURL:   "https://pubmed.ncbi.nlm.nih.gov/33567185/",
					SourceTitle: "Once-Weekly Semaglutide in Adults with Overweight or Obesity",
					PublishedAt: "2021-03-18",
				},
			},
			{
				Section:       models.SectionSafety,
				Text:          "Gastrointestinal adverse events are the most common reason for semaglutide discontinuation in trials.",
				EvidenceGrade: "A",
				Citation: &CitationSeed{
					SourceURL:   "https://pubmed.ncbi.nlm.nih.gov/33567185/",
					SourceTitle: "Once-Weekly Semaglutide in Adults with Overweight or Obesity",
					PublishedAt: "2021-03-18",
				},
			},
		},
	},
}
