// Package validate certifies a draw against a tournament format. It layers
// structural invariants, hard rules, and soft rules into a single report
// that is deterministic for a given draw and never produced by a partial
// evaluation.
package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/albapepper/drawcert/internal/draw"
	"github.com/albapepper/drawcert/internal/rules"
	"github.com/albapepper/drawcert/internal/tournament"
)

// Report is the complete outcome of one validation: the verdict, every
// blocking error, and every advisory warning. Warnings never affect Valid.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Summary renders the one-line human-readable result.
func (r Report) Summary() string {
	verdict := "valid"
	if !r.Valid {
		verdict = "invalid"
	}
	return fmt.Sprintf("draw %s: %d error(s), %d warning(s)", verdict, len(r.Errors), len(r.Warnings))
}

// Validator certifies draws against one tournament format. It holds no
// per-call state, never mutates the draw, and is safe for concurrent use.
type Validator struct {
	format tournament.Format
	rules  *rules.Set
}

// New builds a validator and its rule set for f.
func New(f tournament.Format) *Validator {
	return &Validator{format: f, rules: rules.NewSet(f)}
}

// Rules exposes the underlying catalog for listing and tooling.
func (v *Validator) Rules() *rules.Set { return v.rules }

// Format returns the format the validator judges against.
func (v *Validator) Format() tournament.Format { return v.format }

// Validate runs the three diagnostic layers over d: structural invariants
// with per-instance detail, the hard rules folded into one combined error,
// and the soft rules folded into one combined warning. Every layer runs to
// completion, so the report is always the full picture.
func (v *Validator) Validate(d *draw.Draw) Report {
	report := Report{
		Errors:   v.structural(d),
		Warnings: make([]string, 0),
	}

	if hard := v.rules.EvaluateSeverity(d, rules.SeverityHard); len(hard) > 0 {
		report.Errors = append(report.Errors, "hard constraints violated: "+strings.Join(hard, ", "))
	}
	if soft := v.rules.EvaluateSeverity(d, rules.SeveritySoft); len(soft) > 0 {
		report.Warnings = append(report.Warnings, "soft constraints not satisfied: "+strings.Join(soft, ", "))
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// structural reports the shape defects of the draw itself, one entry per
// offending instance: fixtures in insertion order, then per-club findings
// in club-ID order.
func (v *Validator) structural(d *draw.Draw) []string {
	errs := make([]string, 0)

	for _, m := range d.Matches() {
		if m.Home.ID == m.Away.ID {
			errs = append(errs, fmt.Sprintf("club %s is drawn against itself on matchday %d", m.Home.ID, m.Matchday))
		}
		if m.Matchday < 1 || m.Matchday > v.format.Matchdays {
			errs = append(errs, fmt.Sprintf("match %s: matchday must be between 1 and %d", m, v.format.Matchdays))
		}
	}

	if got, want := d.MatchCount(), v.format.ExpectedTotalMatches(); got != want {
		errs = append(errs, fmt.Sprintf("draw has %d matches, expected %d", got, want))
	}

	for _, c := range d.Clubs() {
		perDay := make(map[int]int)
		for _, m := range d.MatchesFor(c) {
			perDay[m.Matchday]++
		}
		for day := 1; day <= v.format.Matchdays; day++ {
			if n := perDay[day]; n != 1 {
				errs = append(errs, fmt.Sprintf("club %s has %d matches on matchday %d, expected exactly 1", c.ID, n, day))
			}
		}
	}

	// No unordered club pair meets more than once, whichever way around the
	// fixtures are directed. Pairs are reported in first-seen order.
	type pair struct{ a, b string }
	meetings := make(map[pair][]int)
	var order []pair
	for _, m := range d.Matches() {
		p := pair{a: m.Home.ID, b: m.Away.ID}
		if p.b < p.a {
			p.a, p.b = p.b, p.a
		}
		if _, ok := meetings[p]; !ok {
			order = append(order, p)
		}
		meetings[p] = append(meetings[p], m.Matchday)
	}
	for _, p := range order {
		if days := meetings[p]; len(days) > 1 {
			slices.Sort(days)
			errs = append(errs, fmt.Sprintf("clubs %s and %s meet %d times (matchdays %v), expected at most once", p.a, p.b, len(days), days))
		}
	}

	// Also covered by the home_away_balance rule; reported here with
	// per-club detail.
	for _, c := range d.Clubs() {
		if got, want := len(d.HomeMatchesFor(c)), v.format.HomeMatchesPerClub; got != want {
			errs = append(errs, fmt.Sprintf("club %s has %d home matches, expected %d", c.ID, got, want))
		}
		if got, want := len(d.AwayMatchesFor(c)), v.format.AwayMatchesPerClub; got != want {
			errs = append(errs, fmt.Sprintf("club %s has %d away matches, expected %d", c.ID, got, want))
		}
	}

	return errs
}
