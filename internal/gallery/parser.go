package gallery

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/quietloop/artstream/internal/model"
)

// State identifies which field the parser is waiting for next.
//
// The parser cycles through the four states for every record:
//
//	StateTitle -> StateDimensions -> StateCategory -> StateArt -> StateTitle
type State int

const (
	// StateTitle waits for a non-blank line to use as the record title.
	StateTitle State = iota

	// StateDimensions waits for a "<width>x<height>" token. Any other line
	// is discarded without leaving the state.
	StateDimensions

	// StateCategory waits for a non-blank line to use as the category.
	StateCategory

	// StateArt accumulates non-blank art lines until the declared height
	// is reached.
	StateArt
)

// String returns the state name for logs and test failures.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateDimensions:
		return "dimensions"
	case StateCategory:
		return "category"
	case StateArt:
		return "art"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// dimensionPattern matches the dimension token line, e.g. "80x25".
var dimensionPattern = regexp.MustCompile(`^(\d+)x(\d+)$`)

// Parser segments a stream of text lines into Records.
//
// Parser is an incremental state machine: feed it one line at a time and it
// returns a Record whenever one completes. It holds at most one in-progress
// record, so a multi-megabyte database can be parsed with constant memory.
//
// Parsing is best-effort by design. Malformed dimension tokens, stray lines
// and incomplete records never produce errors; a corrupt database simply
// degrades to fewer usable records.
//
// Example:
//
//	p := gallery.NewParser()
//	for scanner.Scan() {
//	    if rec := p.Feed(scanner.Text()); rec != nil {
//	        records = append(records, rec)
//	    }
//	}
//	if rec := p.Flush(); rec != nil {
//	    records = append(records, rec)
//	}
type Parser struct {
	state State

	// In-progress record fields, populated as states advance.
	title      string
	dimensions string
	width      int
	height     int
	category   string

	// Art accumulator for the current record.
	artLines []string
}

// NewParser creates a Parser in the initial title-waiting state.
func NewParser() *Parser {
	return &Parser{state: StateTitle}
}

// State returns the parser's current state.
func (p *Parser) State() State {
	return p.state
}

// Feed consumes a single line and advances the state machine.
//
// It returns a completed Record when the line finishes one, otherwise nil.
// Feed never fails: lines that do not fit the current state are ignored.
//
// Blank-line handling depends on the state. While waiting for a field a
// blank line means "not there yet" and is skipped. While accumulating art,
// blank lines are skipped too and do not count toward the declared height,
// which is what allows art to contain intentional blank rows without
// terminating the record.
func (p *Parser) Feed(line string) *model.Record {
	switch p.state {
	case StateTitle:
		if !isBlank(line) {
			p.title = line
			p.state = StateDimensions
		}

	case StateDimensions:
		if w, h, ok := parseDimensions(line); ok {
			p.dimensions = line
			p.width = w
			p.height = h
			p.state = StateCategory
		}
		// Non-matching lines (blank or otherwise) are discarded here;
		// they are not reinterpreted as a new title.

	case StateCategory:
		if !isBlank(line) {
			p.category = line
			p.artLines = p.artLines[:0]
			p.state = StateArt
		}

	case StateArt:
		if isBlank(line) {
			return nil
		}
		p.artLines = append(p.artLines, line)
		if len(p.artLines) >= p.height {
			return p.complete()
		}
	}

	return nil
}

// Flush emits the trailing record when the line source ended mid-art.
//
// The record is emitted even if fewer than the declared height of art lines
// were read, as long as title, dimensions and category were all captured and
// at least one art line accumulated. In any other state, or with an empty
// accumulator, Flush returns nil. Truncated trailing data is expected in
// real databases; dropping it would lose a usable entry.
func (p *Parser) Flush() *model.Record {
	if p.state != StateArt || len(p.artLines) == 0 {
		return nil
	}
	return p.complete()
}

// complete builds the Record from the accumulated fields and resets the
// machine to the title-waiting state.
func (p *Parser) complete() *model.Record {
	rec := model.NewRecord(
		p.title,
		p.dimensions,
		p.width,
		p.height,
		p.category,
		strings.Join(p.artLines, "\n"),
	)

	p.title = ""
	p.dimensions = ""
	p.width = 0
	p.height = 0
	p.category = ""
	p.artLines = nil
	p.state = StateTitle

	return rec
}

// parseDimensions parses a "<width>x<height>" token.
//
// Both components must be positive: a zero height would complete a record
// with no art, so zero-valued tokens are rejected like any other malformed
// line. Tokens too large for int fail strconv and are rejected the same way.
func parseDimensions(line string) (width, height int, ok bool) {
	m := dimensionPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}

	width, err := strconv.Atoi(m[1])
	if err != nil || width <= 0 {
		return 0, 0, false
	}
	height, err = strconv.Atoi(m[2])
	if err != nil || height <= 0 {
		return 0, 0, false
	}

	return width, height, true
}

// isBlank reports whether the line holds no visible content.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// maxLineSize is the scanner buffer cap for a single database line.
// Wide art pieces can run long, but anything past this is garbage.
const maxLineSize = 1024 * 1024

// Parse drains a line source and returns every record it contains, in file
// order.
//
// The reader is consumed exactly once, line by line; the whole input is
// never materialized. The only error Parse can return is an I/O failure
// from the underlying reader - malformed content is absorbed silently.
func Parse(r io.Reader) ([]*model.Record, error) {
	p := NewParser()
	var records []*model.Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		if rec := p.Feed(scanner.Text()); rec != nil {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading database: %w", err)
	}

	if rec := p.Flush(); rec != nil {
		records = append(records, rec)
	}

	return records, nil
}
