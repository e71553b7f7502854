package gallery

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/quietloop/artstream/internal/model"
)

// LoadFile parses a single database file into records.
//
// A missing or unreadable file is a load-time fatal condition for the
// caller; unlike parse problems it is reported as an error.
func LoadFile(path string) ([]*model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing database %s: %w", path, err)
	}

	return records, nil
}

// LoadFiles parses several database files with bounded concurrency and
// returns the combined collection.
//
// Files are parsed in parallel (at most maxParallel at a time; values < 1
// mean unbounded), but the result preserves ordering: records keep their
// file order, and files are concatenated in argument order. The first file
// error aborts the load.
//
// Example:
//
//	records, err := gallery.LoadFiles(ctx, []string{"pets.db", "castles.db"}, 4)
func LoadFiles(ctx context.Context, paths []string, maxParallel int) ([]*model.Record, error) {
	perFile := make([][]*model.Record, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if maxParallel > 0 {
		g.SetLimit(maxParallel)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := LoadFile(path)
			if err != nil {
				return err
			}
			perFile[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*model.Record
	for _, records := range perFile {
		all = append(all, records...)
	}
	return all, nil
}
