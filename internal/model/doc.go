// Package model defines the core data structure shared by every part of
// artstream.
//
// # Record
//
// Record represents a single parsed art entry:
//
//	rec := model.NewRecord("Cat", "3x2", 3, 2, "pets", art)
//	for _, line := range rec.ArtLines() {
//	    fmt.Println(line)
//	}
//
// Records are immutable by convention: the gallery parser constructs them,
// appends them to a slice, and from then on everything else only reads.
// That is what lets the stream engine and the interrupt path share the
// collection without locking.
package model
