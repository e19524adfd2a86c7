// Package parser provides low-level GEDCOM line tokenization.
//
// This package converts raw GEDCOM text into flat Record structures
// carrying level, optional cross-reference pointer, tag, and data.
// Lines that do not match the record grammar are skipped by default,
// so malformed or blank lines never abort a run; the only hard
// tokenization failure is a level token that cannot be parsed as an
// integer.
//
// Example usage:
//
//	p := parser.NewParser()
//	records, err := p.Parse(reader)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rec := range records {
//	    fmt.Printf("Level %d: %s = %s\n", rec.Level, rec.Tag, rec.Data)
//	}
package parser

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Record is the tokenized form of one matched line segment.
// GEDCOM line format: LEVEL [POINTER] TAG [DATA]
// Examples:
//
//	0 HEAD
//	0 @I1@ INDI
//	1 NAME John /Smith/
//	2 GIVN John
type Record struct {
	// Level is the declared nesting depth (0 = top-level record).
	Level int

	// Pointer is the cross-reference identifier including its @...@
	// delimiters, or the empty string when absent.
	Pointer string

	// Tag names the record's type.
	Tag string

	// Data is the free text after the tag, trimmed of surrounding
	// whitespace; empty when absent.
	Data string

	// LineNumber is the 1-based source line the record came from.
	LineNumber int
}

// recordPattern matches one record within a physical line: optional
// leading whitespace, a level number without leading zeros, an
// optional @...@ pointer, a tag of word characters, and optional data
// running to the end of the line.
var recordPattern = regexp.MustCompile(`\s*(0|[1-9][0-9]*) (@[^@]+@ |\b)([A-Za-z0-9_]+)( [^\n\r]*|\b)`)

// Parser tokenizes GEDCOM text into Record structures.
type Parser struct {
	lineNumber int
	strict     bool
	maxDepth   int
}

// NewParser creates a new Parser instance with the lenient defaults:
// unmatched lines are skipped and nesting depth is unlimited.
func NewParser() *Parser {
	return &Parser{}
}

// Reset resets the parser state for reuse.
func (p *Parser) Reset() {
	p.lineNumber = 0
}

// SetStrict controls whether non-blank lines that match no record
// produce an error instead of being skipped.
func (p *Parser) SetStrict(strict bool) {
	p.strict = strict
}

// SetMaxNestingDepth caps the accepted level value. A cap of 0 (the
// default) disables the check; over-deep records are then handled by
// the tree builder's orphaning policy rather than rejected here.
func (p *Parser) SetMaxNestingDepth(depth int) {
	if depth < 0 {
		depth = 0
	}
	p.maxDepth = depth
}

// ParseLine tokenizes a single physical line. It returns every record
// matched within the line, in order. A line with no match returns an
// empty slice and no error unless strict mode is enabled and the line
// is not blank. A level token that overflows integer parsing is an
// error regardless of mode.
func (p *Parser) ParseLine(input string) ([]*Record, error) {
	p.lineNumber++

	line := strings.TrimRight(input, "\r\n")

	matches := recordPattern.FindAllStringSubmatch(line, -1)
	if matches == nil {
		if p.strict && strings.TrimSpace(line) != "" {
			return nil, wrapParseError(p.lineNumber, "line matches no record", line, &UnmatchedLineError{
				Text: line,
			})
		}
		return nil, nil
	}

	records := make([]*Record, 0, len(matches))
	for _, groups := range matches {
		level, err := strconv.Atoi(groups[1])
		if err != nil {
			return nil, wrapParseError(p.lineNumber, "invalid level number", line, &InvalidLevelError{
				Raw:    groups[1],
				Reason: "not a representable integer",
			})
		}
		if p.maxDepth > 0 && level > p.maxDepth {
			return nil, wrapParseError(p.lineNumber, "maximum nesting depth exceeded", line, &InvalidLevelError{
				Raw:    groups[1],
				Reason: "exceeds max depth",
			})
		}

		records = append(records, &Record{
			Level:      level,
			Pointer:    strings.TrimSpace(groups[2]),
			Tag:        groups[3],
			Data:       strings.TrimSpace(groups[4]),
			LineNumber: p.lineNumber,
		})
	}

	return records, nil
}

// Parse reads GEDCOM text from a reader and returns all tokenized
// records in document order. Supports all line ending styles: LF
// (Unix), CRLF (Windows), CR (old Macintosh). The first level parse
// failure aborts the run with no partial result.
func (p *Parser) Parse(r io.Reader) ([]*Record, error) {
	p.Reset()

	scanner := bufio.NewScanner(r)
	scanner.Split(ScanLines)
	var (
		records  []*Record
		prevLine string
	)

	for scanner.Scan() {
		text := scanner.Text()
		recs, err := p.ParseLine(text)
		if err != nil {
			return nil, enrichParseError(err, prevLine, text)
		}
		records = append(records, recs...)
		prevLine = text
	}

	if err := scanner.Err(); err != nil {
		return nil, wrapParseError(p.lineNumber, "error reading input", "", err)
	}

	return records, nil
}

// ScanLines is a split function for bufio.Scanner that handles all
// GEDCOM line ending styles: LF, CRLF, and CR (old Macintosh).
// This is based on bufio.ScanLines but adds CR-only support.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	// Look for CR or LF
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' {
			// Found LF - this could be standalone or part of CRLF
			return i + 1, data[0:i], nil
		}
		if data[i] == '\r' {
			// Found CR - check if followed by LF (CRLF)
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					// CRLF - return line without either terminator
					return i + 2, data[0:i], nil
				}
				// CR alone - return line
				return i + 1, data[0:i], nil
			}
			// CR at end of data - need more data to determine if CRLF
			if !atEOF {
				return 0, nil, nil
			}
			// At EOF with CR - treat as line ending
			return i + 1, data[0:i], nil
		}
	}

	// If we're at EOF, return remaining data as final line
	if atEOF {
		return len(data), data, nil
	}

	// Request more data
	return 0, nil, nil
}
