package acceptance

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// keywords are the recognized step prefixes.
var keywords = []string{"GIVEN", "WHEN", "THEN"}

// ParseError reports a structural problem in a scenario file.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// isSeparatorLine returns true if the line consists only of ;= characters.
func isSeparatorLine(trimmed string) bool {
	return trimmed != "" && strings.Trim(trimmed, ";=") == ""
}

// isCommentLine returns true if the line is a ; comment (not a separator).
func isCommentLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, ";") && !isSeparatorLine(trimmed)
}

// parseKeyword extracts a GIVEN/WHEN/THEN keyword and remaining text from a line.
// Returns empty keyword if the line doesn't start with a known keyword.
func parseKeyword(trimmed string) (keyword, text string) {
	for _, kw := range keywords {
		if rest, ok := strings.CutPrefix(trimmed, kw); ok {
			if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
				continue
			}
			return kw, strings.TrimSpace(rest)
		}
	}
	return "", ""
}

// ParseFeature parses a GWT scenario file's content into a Feature.
// A scenario header is a ; description line between two ;=== separators.
// Other ; lines are comments. Steps before any header belong to an unnamed
// scenario. Every scenario must have at least one WHEN step.
func ParseFeature(content string, sourcePath string) (*Feature, error) {
	feature := &Feature{SourceFile: sourcePath}

	sc := bufio.NewScanner(strings.NewReader(content))
	lineNum := 0
	inHeader := false
	headerLine := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(strings.TrimSuffix(sc.Text(), "\r"))

		switch {
		case isSeparatorLine(line):
			if !inHeader {
				headerLine = lineNum
			}
			inHeader = !inHeader
		case inHeader && isCommentLine(line):
			if n := len(feature.Scenarios); n > 0 && feature.Scenarios[n-1].Line >= headerLine {
				return nil, &ParseError{Path: sourcePath, Line: lineNum, Msg: "scenario header has more than one description line"}
			}
			feature.Scenarios = append(feature.Scenarios, Scenario{
				Description: strings.TrimSpace(strings.TrimPrefix(line, ";")),
				Line:        lineNum,
			})
		case isCommentLine(line), line == "":
		default:
			if inHeader {
				return nil, &ParseError{Path: sourcePath, Line: lineNum, Msg: "unexpected text inside scenario header"}
			}
			keyword, text := parseKeyword(line)
			if keyword == "" {
				continue
			}
			if len(feature.Scenarios) == 0 {
				feature.Scenarios = append(feature.Scenarios, Scenario{})
			}
			last := &feature.Scenarios[len(feature.Scenarios)-1]
			last.Steps = append(last.Steps, Step{Keyword: keyword, Text: text, Line: lineNum})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", sourcePath, err)
	}
	if inHeader {
		return nil, &ParseError{Path: sourcePath, Line: headerLine, Msg: "unterminated scenario header"}
	}

	for _, s := range feature.Scenarios {
		if len(s.StepsFor("WHEN")) == 0 {
			return nil, &ParseError{Path: sourcePath, Line: s.Line, Msg: fmt.Sprintf("scenario %q has no WHEN step", s.Description)}
		}
	}
	return feature, nil
}

// ParseFeatureFileImpl reads a scenario file from disk and parses it.
// This is an Impl function exempt from coverage requirements.
func ParseFeatureFileImpl(path string) (*Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFeature(string(data), path)
}
