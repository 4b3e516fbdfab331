package resolve

import (
	"math"
	"testing"

	"github.com/carelens/carematch/internal/domain"
)

func floatp(f float64) *float64 { return &f }

func auth(name, postcode, city, phone string) *domain.AuthoritativeRecord {
	return &domain.AuthoritativeRecord{
		ID: "loc-1", Name: name, Postcode: postcode, City: city, Phone: phone,
	}
}

func TestResolve_NamePostcode(t *testing.T) {
	idx := BuildIndex([]domain.AuxiliaryRecord{
		{Name: "oak lodge", Postcode: "b1 1aa", FeeResidentialFrom: floatp(950)},
		{Name: "riverside manor", Postcode: "b2 2bb"},
	})
	r := New(idx, nil)

	rec, strat := r.Resolve(auth("Oak Lodge", "B1 1AA", "", ""))
	if rec == nil {
		t.Fatal("expected a match")
	}
	if strat != domain.StrategyNamePostcode {
		t.Errorf("strategy = %s, want name_postcode", strat)
	}
	if rec.FeeResidentialFrom == nil || *rec.FeeResidentialFrom != 950 {
		t.Errorf("wrong record matched: %+v", rec)
	}
}

func TestResolve_NameCityFallback(t *testing.T) {
	idx := BuildIndex([]domain.AuxiliaryRecord{
		{Name: "Oak Lodge", City: "Birmingham"},
	})
	r := New(idx, nil)

	rec, strat := r.Resolve(auth("oak lodge", "B9 9ZZ", "BIRMINGHAM", ""))
	if rec == nil {
		t.Fatal("expected a match")
	}
	if strat != domain.StrategyNameCity {
		t.Errorf("strategy = %s, want name_city", strat)
	}
}

func TestResolve_FuzzySamePostcode(t *testing.T) {
	idx := BuildIndex([]domain.AuxiliaryRecord{
		{Name: "Oak Lodge", Postcode: "B1 1AA"},
	})
	r := New(idx, nil)

	// Substring relation scores 0.8, exactly at threshold.
	rec, strat := r.Resolve(auth("Oak Lodge Care Home", "B1 1AA", "", ""))
	if rec == nil {
		t.Fatal("expected a fuzzy match")
	}
	if strat != domain.StrategyFuzzyName {
		t.Errorf("strategy = %s, want fuzzy_name", strat)
	}
}

func TestResolve_FuzzyBelowThreshold(t *testing.T) {
	idx := BuildIndex([]domain.AuxiliaryRecord{
		{Name: "Riverside Manor", Postcode: "B1 1AA"},
	})
	r := New(idx, nil)

	rec, strat := r.Resolve(auth("Oak Lodge Care Home", "B1 1AA", "", ""))
	if rec != nil {
		t.Fatalf("expected no match, got %+v", rec)
	}
	if strat != domain.StrategyNone {
		t.Errorf("strategy = %s, want none", strat)
	}
}

func TestResolve_PhoneLastResort(t *testing.T) {
	idx := BuildIndex([]domain.AuxiliaryRecord{
		{Name: "The Willows", City: "Leeds", Phone: "0113 496 0000"},
	})
	r := New(idx, nil)

	rec, strat := r.Resolve(auth("Willows Residential", "LS1 1AA", "", "(0113) 496-0000"))
	if rec == nil {
		t.Fatal("expected a phone match")
	}
	if strat != domain.StrategyPhone {
		t.Errorf("strategy = %s, want phone", strat)
	}
}

func TestResolve_NoMatchIsRoutine(t *testing.T) {
	r := New(BuildIndex(nil), nil)
	rec, strat := r.Resolve(auth("Oak Lodge", "B1 1AA", "Birmingham", "0121 1"))
	if rec != nil || strat != domain.StrategyNone {
		t.Errorf("expected none, got %+v / %s", rec, strat)
	}
}

func TestResolve_EmptyKeysNeverMatch(t *testing.T) {
	// Two records with empty names must not collide on an empty composite key.
	idx := BuildIndex([]domain.AuxiliaryRecord{
		{Postcode: "B1 1AA"},
		{Postcode: "B1 1AA", City: "Birmingham"},
	})
	r := New(idx, nil)

	rec, _ := r.Resolve(&domain.AuthoritativeRecord{ID: "x", Postcode: "B1 1AA"})
	if rec != nil {
		t.Errorf("empty-name record matched: %+v", rec)
	}
}

func TestBuildIndex_RicherRecordWins(t *testing.T) {
	richer := domain.AuxiliaryRecord{
		Name: "Oak Lodge", Postcode: "B1 1AA",
		FeeResidentialFrom: floatp(900), ReviewScore: floatp(9.1),
	}
	idx := BuildIndex([]domain.AuxiliaryRecord{
		{Name: "Oak Lodge", Postcode: "B1 1AA"},
		richer,
	})
	rec := idx.byNamePostcode["oak lodge|B11AA"]
	if rec == nil || rec.ReviewScore == nil {
		t.Fatalf("expected richer record to win, got %+v", rec)
	}
}

func TestBuildIndex_TieKeepsFirstSeen(t *testing.T) {
	idx := BuildIndex([]domain.AuxiliaryRecord{
		{Name: "Oak Lodge", Postcode: "B1 1AA", City: "Birmingham"},
		{Name: "Oak Lodge", Postcode: "B1 1AA", City: "Solihull"},
	})
	rec := idx.byNamePostcode["oak lodge|B11AA"]
	if rec == nil || rec.City != "Birmingham" {
		t.Fatalf("expected first-seen record on tie, got %+v", rec)
	}
}

func TestNameSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical after normalization", "Oak Lodge", "oak   lodge", 1.0},
		{"substring", "Oak Lodge", "Oak Lodge Care Home", 0.8},
		{"disjoint", "Oak Lodge Care Home", "Riverside Manor", 0.0},
		{"partial overlap", "oak lodge home", "oak lodge house", 0.5},
		{"empty", "", "Oak Lodge", 0.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NameSimilarity(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("NameSimilarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestNameSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Oak Lodge", "Oak Lodge Care Home"},
		{"Riverside Manor", "Oak Lodge"},
		{"st marys", "st marys nursing"},
		{"", "x"},
	}
	for _, p := range pairs {
		if NameSimilarity(p[0], p[1]) != NameSimilarity(p[1], p[0]) {
			t.Errorf("similarity not symmetric for %q / %q", p[0], p[1])
		}
	}
}
