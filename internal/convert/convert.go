// Package convert runs one export-to-ledger conversion.
package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cleared-dev/csv2html/internal/gnucash"
	"github.com/cleared-dev/csv2html/internal/ledger"
	"github.com/cleared-dev/csv2html/internal/model"
	"github.com/cleared-dev/csv2html/internal/render"
)

// RowSource yields export rows until io.EOF.
type RowSource interface {
	Read() (model.Row, error)
	Line() int
}

// Options controls a conversion.
type Options struct {
	Document          render.Document
	InvertBalanceSign bool
	Logger            *slog.Logger
}

// Stats summarizes a finished conversion.
type Stats struct {
	Rows         int
	Transactions int
	Accounts     int
}

// Run streams every row of src into a ledger document written to w.
// The first error aborts the conversion; w is left with whatever was
// written up to that point.
func Run(src RowSource, w io.Writer, opts Options) (Stats, error) {
	var stats Stats

	out := render.NewWriter(w)
	if err := out.WriteHead(opts.Document); err != nil {
		return stats, err
	}

	b := ledger.NewBuilder(out, ledger.Options{
		InvertBalanceSign: opts.InvertBalanceSign,
		Logger:            opts.Logger,
	})
	for {
		row, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, err
		}
		stats.Rows++
		if err := b.Add(row); err != nil {
			return stats, fmt.Errorf("line %d: %w", src.Line(), err)
		}
	}
	if err := b.Close(); err != nil {
		return stats, err
	}
	stats.Transactions = b.Flushed()
	stats.Accounts = b.Accounts()

	if err := out.WriteFoot(opts.Document); err != nil {
		return stats, err
	}
	return stats, nil
}

// File converts the export at inputPath into the document at outputPath.
// An outputPath of "-" writes to stdout. A file output is written to a
// temporary file in the same directory and renamed into place on success,
// so a failed conversion leaves any existing file untouched.
func File(inputPath, outputPath string, opts Options) (Stats, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	src, err := gnucash.NewReader(in)
	if err != nil {
		return Stats{}, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	if outputPath == "-" {
		bw := bufio.NewWriter(os.Stdout)
		stats, err := Run(src, bw, opts)
		if err != nil {
			return stats, fmt.Errorf("converting %s: %w", inputPath, err)
		}
		return stats, bw.Flush()
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".*")
	if err != nil {
		return Stats{}, fmt.Errorf("creating output: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	bw := bufio.NewWriter(tmp)
	stats, err := Run(src, bw, opts)
	if err != nil {
		tmp.Close()
		return stats, fmt.Errorf("converting %s: %w", inputPath, err)
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return stats, fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return stats, fmt.Errorf("closing output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return stats, fmt.Errorf("setting output mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return stats, fmt.Errorf("moving output into place: %w", err)
	}
	return stats, nil
}
