// Package convert imports raster images into the art database format.
//
// Converter downscales a PNG or JPEG to a character grid and maps each
// cell's luminance onto a light-to-dark character ramp. Encode renders the
// resulting record in database text form so it can be appended to an
// existing database file and picked up on the next run:
//
//	conv := convert.NewConverter(settings.ImportRamp, settings.ImportWidth)
//	rec, err := conv.ConvertFile("cat.png", "Cat", "pets")
//	...
//	ioutils.AppendFile(dbPath, []byte(convert.Encode(rec)))
package convert
