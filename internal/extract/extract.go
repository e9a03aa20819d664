// Package extract normalizes free-form code text into a problem instance the
// simulators can run against. Extraction is total: malformed or absent input
// degrades to built-in defaults instead of returning an error, which keeps
// every downstream simulator total as well.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/algolens/algolens/api/schemas"
)

// Bracket-literal patterns, scanned in order. The generic form catches any
// [...] literal; the qualified form catches assignments to the usual
// array-holding identifier names so that `nums = [...]` is recognized even
// when the generic form already saw it.
var sequencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\[([^\[\]]*)\]`),
	regexp.MustCompile(`(?i)\b(?:arr|nums|array|data|list|values|items)\s*=\s*\[([^\[\]]*)\]`),
}

// Target patterns, scanned in order; the first match wins.
var targetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\btarget\s*=\s*(-?\d+)`),
	regexp.MustCompile(`(?i)\bfind\(\s*(-?\d+)\s*\)`),
	regexp.MustCompile(`(?i)\bsearch\([^()]*,\s*(-?\d+)\s*\)`),
	regexp.MustCompile(`==\s*(-?\d+)`),
	regexp.MustCompile(`(?i)\btarget\s*:\s*(-?\d+)`),
}

// Extractor turns raw text plus optional overrides into a ProblemInstance.
// The zero value is not usable; construct with New so the fallback defaults
// are always present.
type Extractor struct {
	defaultSequence []int
	defaultTarget   int
}

// New builds an Extractor with the given fallback sequence and target.
// The sequence is copied; callers may reuse their slice.
func New(defaultSequence []int, defaultTarget int) *Extractor {
	return &Extractor{
		defaultSequence: append([]int(nil), defaultSequence...),
		defaultTarget:   defaultTarget,
	}
}

// Extract builds a ProblemInstance from code text. An explicit sequence
// string ("1, 3, 5") takes precedence over anything found in the text; an
// explicit target does the same. The result always has at least one
// non-empty sequence and a defined target.
func (e *Extractor) Extract(text string, explicitSequence string, explicitTarget *int) schemas.ProblemInstance {
	sequences := e.extractSequences(text, explicitSequence)
	target := e.extractTarget(text, explicitTarget)
	return schemas.ProblemInstance{Sequences: sequences, Target: target}
}

func (e *Extractor) extractSequences(text, explicit string) [][]int {
	if explicit != "" {
		if seq := parseIntList(strings.Split(explicit, ",")); len(seq) > 0 {
			return [][]int{seq}
		}
	}

	var (
		sequences [][]int
		seen      = map[string]bool{}
	)
	for _, re := range sequencePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			seq := parseIntList(strings.Split(m[1], ","))
			if len(seq) == 0 {
				continue
			}
			// The qualified pattern re-matches literals the generic one
			// already produced; keep one copy of each.
			key := intsKey(seq)
			if seen[key] {
				continue
			}
			seen[key] = true
			sequences = append(sequences, seq)
		}
	}
	if len(sequences) == 0 {
		sequences = [][]int{append([]int(nil), e.defaultSequence...)}
	}
	return sequences
}

func (e *Extractor) extractTarget(text string, explicit *int) int {
	if explicit != nil {
		return *explicit
	}
	for _, re := range targetPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}
	return e.defaultTarget
}

// ParseList parses a comma-separated integer list, discarding anything
// non-numeric. Used for explicit sequence overrides arriving as flags.
func ParseList(s string) []int {
	return parseIntList(strings.Split(s, ","))
}

// parseIntList parses comma-split tokens as integers, discarding anything
// non-numeric.
func parseIntList(tokens []string) []int {
	var out []int
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func intsKey(seq []int) string {
	var b strings.Builder
	for i, n := range seq {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
