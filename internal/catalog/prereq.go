package catalog

import "strings"

// Resolver extracts the required skill names from a skill's free-form
// prerequisite prose. Implementations are best-effort: prose that does not
// literally contain a known skill name yields no enforced requirement.
type Resolver interface {
	Requirements(raw string) []string
}

// NameSet answers whether a skill name exists, compared after normalization.
// *Catalog satisfies it.
type NameSet interface {
	HasName(name string) bool
}

// TextResolver is the heuristic prose resolver. It recognizes three literal
// conventions used in the skill table, in order:
//
//  1. bracket-delimited names, e.g. "Must know [Field Dressing] first"
//  2. a "Requirement:" clause, split on commas and the word "and"
//  3. the entire string being exactly one known skill name
//
// The result preserves the order names first appear in the text, without
// duplicates.
type TextResolver struct {
	Known NameSet
}

// NewResolver returns a TextResolver reading against known.
func NewResolver(known NameSet) *TextResolver {
	return &TextResolver{Known: known}
}

const requirementMarker = "requirement:"

// Requirements implements Resolver.
func (r *TextResolver) Requirements(raw string) []string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	var (
		found []string
		seen  = make(map[string]bool)
	)
	add := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		norm := Normalize(candidate)
		if norm == "" || seen[norm] || !r.Known.HasName(candidate) {
			return
		}
		seen[norm] = true
		found = append(found, candidate)
	}

	// Bracketed names first.
	rest := text
	for {
		open := strings.Index(rest, "[")
		if open < 0 {
			break
		}
		close := strings.Index(rest[open:], "]")
		if close < 0 {
			break
		}
		add(rest[open+1 : open+close])
		rest = rest[open+close+1:]
	}

	// Then a "Requirement:" clause, truncated at the first period.
	if i := strings.Index(strings.ToLower(text), requirementMarker); i >= 0 {
		clause := text[i+len(requirementMarker):]
		if dot := strings.Index(clause, "."); dot >= 0 {
			clause = clause[:dot]
		}
		for _, part := range splitRequirementList(clause) {
			add(part)
		}
	}

	// Finally, the whole string as a single name.
	if len(found) == 0 {
		add(text)
	}

	return found
}

// splitRequirementList splits a requirement clause on commas and on the
// standalone word "and".
func splitRequirementList(clause string) []string {
	var parts []string
	for _, byComma := range strings.Split(clause, ",") {
		for _, piece := range strings.Split(" "+byComma+" ", " and ") {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				parts = append(parts, piece)
			}
		}
	}
	return parts
}
