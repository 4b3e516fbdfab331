package scoring

import "fmt"

// Registry holds the calculators for one engine instance. Constructed once
// at startup and passed by reference; there is no ambient global registry.
type Registry struct {
	calcs []Calculator
}

// NewRegistry creates a registry from the given calculators. Duplicate
// category names are rejected.
func NewRegistry(calcs ...Calculator) (*Registry, error) {
	seen := make(map[string]bool, len(calcs))
	for _, c := range calcs {
		name := string(c.Name())
		if seen[name] {
			return nil, fmt.Errorf("duplicate calculator %q", name)
		}
		seen[name] = true
	}
	return &Registry{calcs: calcs}, nil
}

// DefaultRegistry returns the registry with all built-in calculators.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(
		CareQuality{},
		MedicalFit{},
		Affordability{},
		Safety{},
		LocationFit{},
		Reputation{},
		Staffing{},
		FinancialStability{},
		Lifestyle{},
		Availability{},
	)
	if err != nil {
		// Built-in set is statically correct; reaching this is a bug.
		panic(err)
	}
	return reg
}

// Calculators returns the registered calculators in registration order.
func (r *Registry) Calculators() []Calculator {
	return r.calcs
}

// MaxTotal is the sum of all registered point budgets.
func (r *Registry) MaxTotal() float64 {
	sum := 0.0
	for _, c := range r.calcs {
		sum += c.MaxPoints()
	}
	return sum
}
