package basket

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
)

// Progress receives one Add(1) per written line.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(n int) error
}

// Stats describes a finished (or aborted) generation pass.
type Stats struct {
	Lines int64
	Bytes int64
	Seed  uint64
}

type options struct {
	seed     uint64
	seeded   bool
	progress Progress
}

// Option configures Generate.
type Option func(*options)

// WithSeed makes the output reproducible: the same seed and Params always
// produce the same file.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithProgress reports every written line to p.
func WithProgress(p Progress) Option {
	return func(o *options) {
		o.progress = p
	}
}

// Generate writes the dataset described by p to p.OutputPath, creating the
// file or truncating an existing one.
//
// Params are validated before the file is touched. Cancelling ctx stops the
// pass at the next line and leaves the partially written file in place.
func Generate(ctx context.Context, p Params, opts ...Option) (stats Stats, err error) {
	if err := p.Validate(); err != nil {
		return Stats{}, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = rand.Uint64()
	}
	stats.Seed = o.seed

	sampler, err := NewSeededSampler(o.seed, p.Items, p.MaxBasket)
	if err != nil {
		return stats, err
	}

	file, err := os.Create(p.OutputPath)
	if err != nil {
		return stats, fmt.Errorf("%w: create %s: %w", ErrIOFailure, p.OutputPath, err)
	}

	stats.Lines, stats.Bytes, err = writeAndClose(ctx, file, p.OutputPath, sampler, p.Customers, o.progress)
	return stats, err
}

// writeAndClose writes the dataset to wc and always closes it. A close error
// is reported only when writing succeeded.
func writeAndClose(ctx context.Context, wc io.WriteCloser, name string, s *Sampler, customers int, progress Progress) (lines, bytes int64, err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrIOFailure, name, cerr)
		}
	}()

	return writeDataset(ctx, wc, s, customers, progress)
}

// countingWriter counts the bytes accepted by the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// writeDataset reports in bytes only what reached w, not what is still
// sitting in the buffer.
func writeDataset(ctx context.Context, w io.Writer, s *Sampler, customers int, progress Progress) (lines, bytes int64, err error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	var basket []int
	var line []byte
	for c := range customers {
		if err := ctx.Err(); err != nil {
			return lines, cw.n, fmt.Errorf("generation stopped at customer %d: %w", c, err)
		}

		basket = s.AppendBasket(basket[:0])
		line = Transaction{Customer: c, Items: basket}.AppendLine(line[:0])

		if _, err := bw.Write(line); err != nil {
			return lines, cw.n, fmt.Errorf("%w: write customer %d: %w", ErrIOFailure, c, err)
		}
		lines++

		if progress != nil {
			if err := progress.Add(1); err != nil {
				return lines, cw.n, fmt.Errorf("report progress at customer %d: %w", c, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return lines, cw.n, fmt.Errorf("%w: flush: %w", ErrIOFailure, err)
	}
	return lines, cw.n, nil
}
