package weights

import (
	"errors"
	"math"
	"testing"

	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
)

func sumOf(m map[category.Name]float64) float64 {
	s := 0.0
	for _, w := range m {
		s += w
	}
	return s
}

func TestNew_DefaultBaseSumsTo100(t *testing.T) {
	if got := sumOf(DefaultBase()); math.Abs(got-100) > sumEpsilon {
		t.Fatalf("default base sums to %v", got)
	}
	if _, err := New(nil, nil); err != nil {
		t.Fatalf("New with default base: %v", err)
	}
}

func TestNew_RejectsBadTables(t *testing.T) {
	t.Run("bad sum", func(t *testing.T) {
		_, err := New(map[category.Name]float64{category.CareQuality: 50}, nil)
		if !errors.Is(err, domain.ErrInvalidWeightConfig) {
			t.Errorf("err = %v, want ErrInvalidWeightConfig", err)
		}
	})
	t.Run("unknown category", func(t *testing.T) {
		_, err := New(map[category.Name]float64{"sparkle": 100}, nil)
		if !errors.Is(err, domain.ErrInvalidWeightConfig) {
			t.Errorf("err = %v, want ErrInvalidWeightConfig", err)
		}
	})
	t.Run("negative weight", func(t *testing.T) {
		_, err := New(map[category.Name]float64{
			category.CareQuality: 110, category.Safety: -10,
		}, nil)
		if !errors.Is(err, domain.ErrInvalidWeightConfig) {
			t.Errorf("err = %v, want ErrInvalidWeightConfig", err)
		}
	})
}

func TestCompute_NoRulesFired(t *testing.T) {
	eng, _ := New(nil, nil)
	active, fired, err := eng.Compute(&domain.RequestProfile{})
	if err != nil {
		t.Fatal(err)
	}
	if len(fired) != 0 {
		t.Errorf("fired = %v, want none", fired)
	}
	if math.Abs(active[category.CareQuality]-18) > sumEpsilon {
		t.Errorf("care_quality = %v, want base 18", active[category.CareQuality])
	}
	if math.Abs(sumOf(active)-100) > sumEpsilon {
		t.Errorf("sum = %v", sumOf(active))
	}
}

func TestCompute_RulesShiftWeight(t *testing.T) {
	eng, _ := New(nil, nil)
	profile := &domain.RequestProfile{
		Medical:  domain.MedicalNeeds{Dementia: true},
		Timeline: domain.Timeline{MoveInWeeks: 2},
	}
	active, fired, err := eng.Compute(profile)
	if err != nil {
		t.Fatal(err)
	}
	if len(fired) != 2 {
		t.Fatalf("fired = %v, want medical_focus and urgent_timeline", fired)
	}
	if active[category.MedicalFit] <= 18 {
		t.Errorf("medical_fit = %v, want boosted above base 16", active[category.MedicalFit])
	}
	if active[category.Lifestyle] >= 6 {
		t.Errorf("lifestyle = %v, want reduced below base 6", active[category.Lifestyle])
	}
	if math.Abs(sumOf(active)-100) > sumEpsilon {
		t.Errorf("sum = %v", sumOf(active))
	}
}

func TestCompute_StackedPenaltiesNeverGoNegative(t *testing.T) {
	eng, _ := New(nil, nil)
	// Fires medical_focus, urgent_timeline, and safeguarding_concern:
	// lifestyle base 6 takes -3 -3 -2.
	profile := &domain.RequestProfile{
		Medical:  domain.MedicalNeeds{Dementia: true},
		Timeline: domain.Timeline{MoveInWeeks: 1},
		Safety:   domain.SafetyNeeds{SafeguardingConcern: true},
	}
	active, _, err := eng.Compute(profile)
	if err != nil {
		t.Fatal(err)
	}
	for cat, w := range active {
		if w < 0 {
			t.Errorf("%s = %v, want >= 0", cat, w)
		}
	}
	if math.Abs(sumOf(active)-100) > sumEpsilon {
		t.Errorf("sum = %v", sumOf(active))
	}
}

func TestCompute_PrioritiesRenormalize(t *testing.T) {
	eng, _ := New(nil, nil)
	profile := &domain.RequestProfile{
		Priorities: []domain.RankedPriority{
			{Category: "affordability", Weight: 3},
			{Category: "care_quality", Weight: 1},
		},
	}
	active, _, err := eng.Compute(profile)
	if err != nil {
		t.Fatal(err)
	}
	if active[category.Affordability] <= 14 {
		t.Errorf("affordability = %v, want lifted by ranking", active[category.Affordability])
	}
	if math.Abs(sumOf(active)-100) > sumEpsilon {
		t.Errorf("sum = %v", sumOf(active))
	}
}

func TestCompute_UnknownPriorityCategory(t *testing.T) {
	eng, _ := New(nil, nil)
	profile := &domain.RequestProfile{
		Priorities: []domain.RankedPriority{{Category: "price", Weight: 1}},
	}
	_, _, err := eng.Compute(profile)
	if !errors.Is(err, domain.ErrUnknownCategory) {
		t.Errorf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestCompute_DoesNotMutateBase(t *testing.T) {
	base := DefaultBase()
	eng, _ := New(base, nil)
	profile := &domain.RequestProfile{Medical: domain.MedicalNeeds{Nursing: true}}
	if _, _, err := eng.Compute(profile); err != nil {
		t.Fatal(err)
	}
	if base[category.MedicalFit] != 16 {
		t.Errorf("base table mutated: %v", base[category.MedicalFit])
	}
	// Engine's own copy must also be untouched between runs.
	active, _, _ := eng.Compute(&domain.RequestProfile{})
	if math.Abs(active[category.MedicalFit]-16) > sumEpsilon {
		t.Errorf("engine base drifted: %v", active[category.MedicalFit])
	}
}
