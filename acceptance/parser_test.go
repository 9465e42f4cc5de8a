package acceptance

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFeature_SingleScenario(t *testing.T) {
	content := `;===============================================================
; next bumps the final letter.
;===============================================================
GIVEN the identifier "1a".

WHEN running "next" "1a".

THEN stdout is "1b".
THEN it succeeds.
`
	feature, err := ParseFeature(content, "testdata/next.txt")
	if err != nil {
		t.Fatalf("ParseFeature() error = %v", err)
	}
	want := &Feature{
		SourceFile: "testdata/next.txt",
		Scenarios: []Scenario{{
			Description: "next bumps the final letter.",
			Line:        2,
			Steps: []Step{
				{Keyword: "GIVEN", Text: `the identifier "1a".`, Line: 4},
				{Keyword: "WHEN", Text: `running "next" "1a".`, Line: 6},
				{Keyword: "THEN", Text: `stdout is "1b".`, Line: 8},
				{Keyword: "THEN", Text: "it succeeds.", Line: 9},
			},
		}},
	}
	if diff := cmp.Diff(want, feature); diff != "" {
		t.Errorf("feature mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFeature_MultipleScenariosAndComments(t *testing.T) {
	content := ";===\n" +
		"; first\n" +
		";===\n" +
		"; a plain comment\n" +
		"WHEN running \"parent\" \"1a\".\n" +
		"THEN stdout is \"1\".\n" +
		"\n" +
		";===\n" +
		"; second\n" +
		";===\n" +
		"WHEN running \"parent\" \"1\".\n" +
		"THEN it fails with \"has no parent\".\n"

	feature, err := ParseFeature(content, "x.txt")
	if err != nil {
		t.Fatalf("ParseFeature() error = %v", err)
	}
	if len(feature.Scenarios) != 2 {
		t.Fatalf("len(Scenarios) = %d, want 2", len(feature.Scenarios))
	}
	if got := feature.Scenarios[0].Description; got != "first" {
		t.Errorf("Scenarios[0].Description = %q", got)
	}
	if got := len(feature.Scenarios[0].Steps); got != 2 {
		t.Errorf("Scenarios[0] has %d steps, want 2", got)
	}
	second := feature.Scenarios[1]
	if second.Description != "second" || second.Line != 9 {
		t.Errorf("Scenarios[1] = %q at line %d", second.Description, second.Line)
	}
}

func TestParseFeature_CRLF(t *testing.T) {
	content := ";===\r\n; crlf\r\n;===\r\nWHEN running \"next\" \"1\".\r\n"
	feature, err := ParseFeature(content, "crlf.txt")
	if err != nil {
		t.Fatalf("ParseFeature() error = %v", err)
	}
	if got := feature.Scenarios[0].Steps[0].Text; got != `running "next" "1".` {
		t.Errorf("Text = %q", got)
	}
}

func TestParseFeature_StepsWithoutHeader(t *testing.T) {
	feature, err := ParseFeature("WHEN running \"next\" \"1\".\n", "bare.txt")
	if err != nil {
		t.Fatalf("ParseFeature() error = %v", err)
	}
	if len(feature.Scenarios) != 1 || feature.Scenarios[0].Description != "" {
		t.Fatalf("expected one unnamed scenario, got %+v", feature.Scenarios)
	}
}

func TestParseFeature_IgnoresUnknownLines(t *testing.T) {
	content := "WHEN running \"next\" \"1\".\nWHENEVER this is prose\nand so is this\n"
	feature, err := ParseFeature(content, "prose.txt")
	if err != nil {
		t.Fatalf("ParseFeature() error = %v", err)
	}
	if got := len(feature.Scenarios[0].Steps); got != 1 {
		t.Errorf("got %d steps, want 1", got)
	}
}

func TestParseFeature_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{"no WHEN step", ";===\n; lonely\n;===\nTHEN it succeeds.\n", 2},
		{"unterminated header", ";===\n; open\n", 1},
		{"step inside header", ";===\n; open\nWHEN running \"next\" \"1\".\n", 3},
		{"two descriptions", ";===\n; one\n; two\n;===\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFeature(tt.content, "bad.txt")
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("got error %v, want *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d (%v)", pe.Line, tt.wantLine, pe)
			}
		})
	}
}
