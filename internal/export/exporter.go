package export

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"page-export/internal/db"
	"page-export/internal/helper"
	"page-export/internal/models"
	"page-export/internal/parser"
)

type SessionProvider interface {
	WithSession(ctx context.Context, fn func(*db.Session) error) error
}

type Exporter struct {
	store     SessionProvider
	writer    Writer
	outputDir string

	// DryRun prints the rows to Out instead of writing files.
	DryRun bool
	Out    io.Writer
}

// Result describes one exported file. Path is empty for a dry run.
type Result struct {
	FileID int64
	Path   string
	Rows   []models.Row
}

type Summary struct {
	Written []string
	Invalid int
	Empty   int
}

func NewExporter(store SessionProvider, writer Writer, outputDir string) *Exporter {
	return &Exporter{store: store, writer: writer, outputDir: outputDir, Out: os.Stdout}
}

// Run exports every identifier in input, in order. Malformed identifiers and
// files without pages are reported and skipped; a database or write failure
// stops the run.
func (e *Exporter) Run(ctx context.Context, input string) (*Summary, error) {
	summary := &Summary{}
	for _, id := range parser.ParseIdentifiers(input) {
		if !id.Valid() {
			log.Warn().Str("input", id.Raw).Msgf("Invalid fileId: %s", id.Raw)
			summary.Invalid++
			continue
		}

		res, err := e.ExportFile(ctx, id.ID)
		if err != nil {
			return summary, err
		}
		switch {
		case res == nil:
			summary.Empty++
		case res.Path != "":
			summary.Written = append(summary.Written, res.Path)
		}
	}

	log.Info().
		Int("written", len(summary.Written)).
		Int("invalid", summary.Invalid).
		Int("empty", summary.Empty).
		Msg("Export finished")
	return summary, nil
}

// ExportFile writes the output file for one identifier. It returns nil when
// the file has no pages.
func (e *Exporter) ExportFile(ctx context.Context, fileID int64) (*Result, error) {
	var rows []models.Row
	err := e.store.WithSession(ctx, func(s *db.Session) error {
		var err error
		rows, err = Collect(ctx, s, fileID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		log.Info().Int64("file_id", fileID).Msgf("No pages found for fileId %d", fileID)
		return nil, nil
	}

	if e.DryRun {
		helper.PrettyPrint(e.Out, rows)
		return &Result{FileID: fileID, Rows: rows}, nil
	}

	path := OutputPath(e.outputDir, fileID, e.writer.Ext())
	if err := e.writer.Write(path, rows); err != nil {
		return nil, err
	}

	log.Info().
		Int64("file_id", fileID).
		Int("rows", len(rows)).
		Str("file", path).
		Msgf("%s file created: %s", strings.ToUpper(e.writer.Ext()), path)
	return &Result{FileID: fileID, Path: path, Rows: rows}, nil
}
