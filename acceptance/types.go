// Package acceptance parses GWT (Given-When-Then) scenario files. The zk
// conformance suite reads them to drive the CLI end to end.
package acceptance

import "regexp"

// Step represents a single GIVEN, WHEN, or THEN statement in a scenario.
type Step struct {
	// Keyword is the step type: "GIVEN", "WHEN", or "THEN".
	Keyword string
	// Text is the step description without the keyword prefix.
	Text string
	// Line is the source line number where this step appears.
	Line int
}

// quotedArgRE matches a double-quoted argument. Inside the quotes a backslash
// escapes the next character.
var quotedArgRE = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)

// Args returns the double-quoted arguments of the step in order, unquoted.
// `WHEN running "next" "1a".` yields ["next", "1a"].
func (s Step) Args() []string {
	matches := quotedArgRE.FindAllStringSubmatch(s.Text, -1)
	args := make([]string, len(matches))
	for i, m := range matches {
		args[i] = unescapeArg(m[1])
	}
	return args
}

func unescapeArg(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		out = append(out, s[i])
	}
	return string(out)
}

// Scenario represents a named acceptance scenario containing a sequence of steps.
type Scenario struct {
	// Description is the human-readable scenario title from the ;=== header.
	Description string
	// Steps is the ordered sequence of GIVEN/WHEN/THEN steps.
	Steps []Step
	// Line is the source line number of the scenario description header.
	Line int
}

// StepsFor returns the scenario's steps with the given keyword, in order.
func (s Scenario) StepsFor(keyword string) []Step {
	var out []Step
	for _, st := range s.Steps {
		if st.Keyword == keyword {
			out = append(out, st)
		}
	}
	return out
}

// Feature represents a parsed scenario file containing one or more scenarios.
type Feature struct {
	// SourceFile is the path to the file this feature was parsed from.
	SourceFile string
	// Scenarios is the list of scenarios defined in the file.
	Scenarios []Scenario
}
