package catalog

import (
	"reflect"
	"testing"
)

func testResolver(t *testing.T) *TextResolver {
	t.Helper()
	c, err := New([]Skill{
		{Path: "Warrior", Name: "Shield Wall", Tier: 1},
		{Path: "Warrior", Name: "Iron Will", Tier: 2},
		{Path: "Healer", Name: "Field Dressing", Tier: 1},
		{Path: "Scholar", Name: "Sharp Mind", Tier: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewResolver(c)
}

func TestRequirementsBrackets(t *testing.T) {
	r := testResolver(t)

	got := r.Requirements("You must first learn [Shield Wall] and then [Field Dressing] from a mentor.")
	want := []string{"Shield Wall", "Field Dressing"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Requirements = %v, want %v", got, want)
	}
}

func TestRequirementsClause(t *testing.T) {
	r := testResolver(t)

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			"comma separated",
			"Requirement: Shield Wall, Iron Will. May only be used once per day.",
			[]string{"Shield Wall", "Iron Will"},
		},
		{
			"joined with and",
			"requirement: Shield Wall and Field Dressing",
			[]string{"Shield Wall", "Field Dressing"},
		},
		{
			"truncated at first period",
			"Requirement: Shield Wall. Also mentions Iron Will later.",
			[]string{"Shield Wall"},
		},
		{
			"unknown names ignored",
			"Requirement: Basket Weaving, Iron Will.",
			[]string{"Iron Will"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Requirements(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Requirements(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRequirementsWholeString(t *testing.T) {
	r := testResolver(t)

	got := r.Requirements("  Iron Will. ")
	if !reflect.DeepEqual(got, []string{"Iron Will."}) {
		t.Errorf("Requirements = %v, want the whole string as one requirement", got)
	}
}

func TestRequirementsFailOpen(t *testing.T) {
	r := testResolver(t)

	for _, raw := range []string{
		"",
		"Must be approved by a marshal before each event.",
		"Requires roleplay of intense study.",
	} {
		if got := r.Requirements(raw); len(got) != 0 {
			t.Errorf("Requirements(%q) = %v, want none (fail-open)", raw, got)
		}
	}
}

func TestRequirementsDeduplicated(t *testing.T) {
	r := testResolver(t)

	got := r.Requirements("[Shield Wall] and [Shield Wall]. Requirement: Shield Wall.")
	if !reflect.DeepEqual(got, []string{"Shield Wall"}) {
		t.Errorf("Requirements = %v, want single de-duplicated entry", got)
	}
}
