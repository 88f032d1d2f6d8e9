// Package rules declares the constraint catalog a league-phase draw must
// honor and the engine that evaluates it. Rules are pure named predicates
// registered in a fixed order; every evaluation runs the full selection and
// reports violated names in registration order, so identical draws always
// produce identical reports.
package rules

import (
	"slices"

	"github.com/albapepper/drawcert/internal/draw"
	"github.com/albapepper/drawcert/internal/tournament"
)

// Kind classifies how a rule reads the draw.
type Kind string

const (
	KindGlobal Kind = "global" // whole-draw aggregate
	KindUnary  Kind = "unary"  // per club
	KindBinary Kind = "binary" // per club pair
	KindSoft   Kind = "soft"   // scheduling preference
)

// Severity separates verdict-carrying rules from advisory ones.
type Severity string

const (
	SeverityHard Severity = "hard"
	SeveritySoft Severity = "soft"
)

// Rule is one named constraint over a complete draw. Predicates are pure:
// same draw in, same answer out, no mutation.
type Rule struct {
	Name        string
	Kind        Kind
	Severity    Severity
	Description string
	check       func(*draw.Draw) bool
}

// Satisfied reports whether d passes the rule.
func (r Rule) Satisfied(d *draw.Draw) bool {
	return r.check != nil && r.check(d)
}

// Info is the serializable catalog entry for one rule.
type Info struct {
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Set is the ordered rule catalog bound to one tournament format.
// Registration order is the evaluation and reporting order.
type Set struct {
	format tournament.Format
	rules  []Rule
}

// NewSet registers the eight canonical league-phase rules against f.
func NewSet(f tournament.Format) *Set {
	s := &Set{format: f}
	s.register(Rule{
		Name:        "total_matches",
		Kind:        KindGlobal,
		Severity:    SeverityHard,
		Description: "the draw contains exactly the configured total number of matches",
		check:       s.checkTotalMatches,
	})
	s.register(Rule{
		Name:        "matches_per_club",
		Kind:        KindUnary,
		Severity:    SeverityHard,
		Description: "every club plays exactly the configured number of matches",
		check:       s.checkMatchesPerClub,
	})
	s.register(Rule{
		Name:        "home_away_balance",
		Kind:        KindUnary,
		Severity:    SeverityHard,
		Description: "every club plays exactly the configured number of home and away matches",
		check:       s.checkHomeAwayBalance,
	})
	s.register(Rule{
		Name:        "opponents_per_pot",
		Kind:        KindUnary,
		Severity:    SeverityHard,
		Description: "every club faces exactly the configured number of opponents from each pot",
		check:       s.checkOpponentsPerPot,
	})
	s.register(Rule{
		Name:        "pot_home_away_distribution",
		Kind:        KindUnary,
		Severity:    SeverityHard,
		Description: "every club's fixtures against each pot respect the configured home/away split",
		check:       s.checkPotHomeAwayDistribution,
	})
	s.register(Rule{
		Name:        "no_same_country_opponents",
		Kind:        KindBinary,
		Severity:    SeverityHard,
		Description: "no club faces more same-country opponents than the configured maximum",
		check:       s.checkNoSameCountryOpponents,
	})
	s.register(Rule{
		Name:        "max_opponents_per_foreign_country",
		Kind:        KindUnary,
		Severity:    SeverityHard,
		Description: "no club faces more opponents from a single foreign country than the configured maximum",
		check:       s.checkMaxOpponentsPerForeignCountry,
	})
	s.register(Rule{
		Name:        "no_consecutive_matches",
		Kind:        KindSoft,
		Severity:    SeveritySoft,
		Description: "no club plays more consecutive home or away matches than the configured maximum",
		check:       s.checkNoConsecutiveMatches,
	})
	return s
}

func (s *Set) register(r Rule) {
	s.rules = append(s.rules, r)
}

// Rules returns the catalog in registration order.
func (s *Set) Rules() []Rule {
	return slices.Clone(s.rules)
}

// Hard returns the verdict-carrying rules in registration order.
func (s *Set) Hard() []Rule {
	return s.BySeverity(SeverityHard)
}

// Soft returns the advisory rules in registration order.
func (s *Set) Soft() []Rule {
	return s.BySeverity(SeveritySoft)
}

// BySeverity filters the catalog, preserving registration order.
func (s *Set) BySeverity(sev Severity) []Rule {
	var out []Rule
	for _, r := range s.rules {
		if r.Severity == sev {
			out = append(out, r)
		}
	}
	return out
}

// Lookup finds a rule by name.
func (s *Set) Lookup(name string) (Rule, bool) {
	for _, r := range s.rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Describe returns the serializable catalog in registration order.
func (s *Set) Describe() []Info {
	return Describe(s.rules)
}

// Describe converts rules to their catalog entries, preserving order.
func Describe(rs []Rule) []Info {
	out := make([]Info, 0, len(rs))
	for _, r := range rs {
		out = append(out, Info{
			Name:        r.Name,
			Kind:        r.Kind,
			Severity:    r.Severity,
			Description: r.Description,
		})
	}
	return out
}

// Evaluate runs every rule against d and returns the names of the violated
// ones in registration order. Evaluation never stops at the first failure.
func (s *Set) Evaluate(d *draw.Draw) []string {
	return violated(s.rules, d)
}

// EvaluateSeverity runs only the rules of one severity, in registration
// order.
func (s *Set) EvaluateSeverity(d *draw.Draw, sev Severity) []string {
	return violated(s.BySeverity(sev), d)
}

func violated(rs []Rule, d *draw.Draw) []string {
	names := make([]string, 0)
	for _, r := range rs {
		if !r.Satisfied(d) {
			names = append(names, r.Name)
		}
	}
	return names
}
