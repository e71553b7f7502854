package convert

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"strings"

	"golang.org/x/image/draw"

	"github.com/quietloop/artstream/internal/model"
)

// DefaultRamp is the light-to-dark character ramp used when none is
// configured.
const DefaultRamp = " .:-=+*#%@"

// DefaultWidth is the target character width used when none is configured.
const DefaultWidth = 64

// Converter turns raster images into ASCII-art records.
//
// The image is downscaled to a character grid and each cell's luminance is
// mapped onto a character ramp, darkest pixels getting the densest
// characters.
//
// Example:
//
//	conv := convert.NewConverter(convert.DefaultRamp, 48)
//	rec, err := conv.ConvertFile("cat.png", "Cat", "pets")
//	if err != nil {
//	    return err
//	}
//	ioutils.AppendFile(dbPath, []byte(convert.Encode(rec)))
type Converter struct {
	ramp  []rune
	width int
}

// NewConverter creates a Converter.
//
// ramp is ordered light to dark; an empty ramp falls back to DefaultRamp.
// width is the target character width; values < 1 fall back to DefaultWidth.
func NewConverter(ramp string, width int) *Converter {
	if ramp == "" {
		ramp = DefaultRamp
	}
	if width < 1 {
		width = DefaultWidth
	}
	return &Converter{
		ramp:  []rune(ramp),
		width: width,
	}
}

// Convert decodes image data (PNG or JPEG) and renders it as a Record.
//
// The row count is derived from the source aspect ratio, halved because
// terminal cells are roughly twice as tall as they are wide.
func (c *Converter) Convert(data []byte, title, category string) (*model.Record, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	cols := c.width
	rows := bounds.Dy() * cols / bounds.Dx() / 2
	if rows < 1 {
		rows = 1
	}

	// Catmull-Rom keeps gradients smooth at character-grid resolution.
	dst := image.NewGray(image.Rect(0, 0, cols, rows))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		var sb strings.Builder
		for x := 0; x < cols; x++ {
			luma := dst.GrayAt(x, y).Y
			idx := int(255-luma) * (len(c.ramp) - 1) / 255
			sb.WriteRune(c.ramp[idx])
		}
		line := strings.TrimRight(sb.String(), " ")
		if line == "" {
			// The database parser skips blank lines, which would break the
			// declared height on reload. Keep every row visible.
			line = string(c.ramp[min(1, len(c.ramp)-1)])
		}
		lines[y] = line
	}

	return model.NewRecord(
		title,
		fmt.Sprintf("%dx%d", cols, rows),
		cols,
		rows,
		category,
		strings.Join(lines, "\n"),
	), nil
}

// ConvertFile reads an image file and converts it.
func (c *Converter) ConvertFile(path, title, category string) (*model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}
	return c.Convert(data, title, category)
}

// Encode renders a record in database text form, ready to append to an art
// database file. The trailing blank line separates it from the next entry.
func Encode(rec *model.Record) string {
	var sb strings.Builder
	sb.WriteString(rec.Title)
	sb.WriteString("\n")
	sb.WriteString(rec.Dimensions)
	sb.WriteString("\n")
	sb.WriteString(rec.Category)
	sb.WriteString("\n")
	sb.WriteString(rec.Art)
	sb.WriteString("\n\n")
	return sb.String()
}
