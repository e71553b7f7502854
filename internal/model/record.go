package model

import (
	"fmt"
	"strings"
)

// Record represents one entry in an art database.
//
// A Record holds everything needed to display a single piece:
//   - Title and Category for the caption
//   - Width and Height, the declared dimensions of the art
//   - Dimensions, the raw "<width>x<height>" token as it appeared in the file
//   - Art, the picture itself, lines joined with "\n"
//
// Records are built once at load time and never mutated afterwards. The
// parser only emits a Record when title, dimensions and category are all
// populated and at least one art line was read.
//
// Example:
//
//	rec := model.NewRecord("Cat", "3x2", 3, 2, "ascii-one-line", "/\\_/\\\n( o.o )")
//	fmt.Println(rec.Title)      // "Cat"
//	fmt.Println(rec.LineCount()) // 2
type Record struct {
	// Title is the display name of the entry.
	Title string

	// Dimensions is the raw dimension token from the database, e.g. "80x25".
	Dimensions string

	// Width is the declared art width in columns.
	Width int

	// Height is the declared art height in rows. For a record flushed at
	// end of stream the actual art may hold fewer lines than Height.
	Height int

	// Category is the grouping label of the entry.
	Category string

	// Art is the picture text, lines joined with "\n".
	Art string
}

// NewRecord creates a Record from already-validated fields.
//
// The parser is the only producer of Records; it guarantees that width and
// height are positive and that art is non-empty before calling this.
func NewRecord(title, dimensions string, width, height int, category, art string) *Record {
	return &Record{
		Title:      title,
		Dimensions: dimensions,
		Width:      width,
		Height:     height,
		Category:   category,
		Art:        art,
	}
}

// ArtLines splits the art text back into individual lines.
func (r *Record) ArtLines() []string {
	if r.Art == "" {
		return nil
	}
	return strings.Split(r.Art, "\n")
}

// LineCount returns the number of art lines actually stored.
//
// This usually equals Height; it is smaller only for a trailing record that
// was cut short by the end of the database.
func (r *Record) LineCount() int {
	return len(r.ArtLines())
}

// Complete reports whether the art holds exactly the declared height.
func (r *Record) Complete() bool {
	return r.LineCount() == r.Height
}

// String returns a short human-readable summary, useful in logs and events.
func (r *Record) String() string {
	return fmt.Sprintf("%s [%s] (%s)", r.Title, r.Dimensions, r.Category)
}
