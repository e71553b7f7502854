// Package gallery parses flat-file art databases into records.
//
// # Database Format
//
// A database is UTF-8 text. Each record is four parts, with no explicit
// end-of-record delimiter:
//
//	<title line>
//	<width>x<height>
//	<category line>
//	<height-many non-blank art lines>
//
// Blank lines between art lines are ignored and do not count toward the
// declared height. That rule exists because art legitimately contains blank
// rows as part of the picture; the declared height, not a blank line, is
// what ends a record.
//
// # Parsing
//
// Parser is a four-state machine driven one line at a time:
//
//	p := gallery.NewParser()
//	if rec := p.Feed(line); rec != nil {
//	    // a record just completed
//	}
//
// Parse wraps the machine around an io.Reader, and LoadFile / LoadFiles
// wrap it around files on disk.
//
// # Error Philosophy
//
// The parser is deliberately lenient. Malformed dimension tokens are
// skipped, lines in the wrong state are discarded, and an incomplete
// trailing record is either flushed (when it has at least one art line)
// or silently dropped. Only I/O failures surface as errors.
package gallery
