package search

import (
	"testing"

	"github.com/dd0wney/cluso-graphrag/pkg/graph"
)

func matcherTestGraph() *graph.Graph {
	return &graph.Graph{
		Nodes: []graph.Node{
			{ID: "A", Text: "CISO role", Type: "ROLE"},
			{ID: "B", Text: "MFA concept", Type: "CONCEPT"},
			{ID: "ISM-1433", Text: "Control ISM-1433", Type: "CONTROL"},
			{ID: "C", Text: "unrelated", Type: "CONCEPT"},
		},
	}
}

func TestTokenize(t *testing.T) {
	terms := Tokenize("  CISO   multi-factor\tMFA ")
	want := []string{"ciso", "multi-factor", "mfa"}
	if len(terms) != len(want) {
		t.Fatalf("Expected %d terms, got %d", len(want), len(terms))
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("Term %d: expected %q, got %q", i, want[i], terms[i])
		}
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize("   "); len(got) != 0 {
		t.Errorf("Expected no terms for whitespace query, got %v", got)
	}
}

func TestMatch_CaseInsensitiveSubstring(t *testing.T) {
	matches := Match(matcherTestGraph(), []string{"ciso"})
	if len(matches) != 1 || matches[0].ID != "A" {
		t.Fatalf("Expected only node A, got %+v", matches)
	}
}

func TestMatch_MatchesOnID(t *testing.T) {
	matches := Match(matcherTestGraph(), []string{"ism-1433"})
	if len(matches) != 1 || matches[0].ID != "ISM-1433" {
		t.Fatalf("Expected the control node, got %+v", matches)
	}
}

func TestMatch_ORAcrossTerms(t *testing.T) {
	matches := Match(matcherTestGraph(), []string{"ciso", "mfa"})
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	// Storage order, not term order
	if matches[0].ID != "A" || matches[1].ID != "B" {
		t.Errorf("Expected storage order A, B; got %s, %s", matches[0].ID, matches[1].ID)
	}
}

func TestMatch_NodeReturnedOncePerQuery(t *testing.T) {
	// Both terms hit node A; it must not be duplicated
	matches := Match(matcherTestGraph(), []string{"ciso", "role"})
	if len(matches) != 1 {
		t.Errorf("Expected a single match, got %d", len(matches))
	}
}

// An empty term list is vacuously false for every node: no term can match.
func TestMatch_EmptyTermsMatchNothing(t *testing.T) {
	if matches := Match(matcherTestGraph(), nil); len(matches) != 0 {
		t.Errorf("Expected no matches for empty term list, got %d", len(matches))
	}
	if matches := Match(matcherTestGraph(), []string{}); len(matches) != 0 {
		t.Errorf("Expected no matches for empty term slice, got %d", len(matches))
	}
}

func TestMatch_NoMatches(t *testing.T) {
	if matches := Match(matcherTestGraph(), []string{"zzz"}); len(matches) != 0 {
		t.Errorf("Expected no matches, got %d", len(matches))
	}
}
