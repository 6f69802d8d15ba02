package usecase

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cp25sy5-modjot/compute-sales/internal/ports"
)

// ErrLoadFailed marks a run that never reached aggregation because one or
// both input documents could not be loaded.
var ErrLoadFailed = errors.New("input documents could not be loaded")

// fallbackRunID is used when the catalog filename yields no usable token.
const fallbackRunID = "run"

// ComputeService sequences one full run: load both documents, validate,
// aggregate, format, and persist the report.
type ComputeService struct {
	loader ports.DocumentLoader
	sink   ports.ReportSink
	log    zerolog.Logger
	out    io.Writer
}

func NewComputeService(loader ports.DocumentLoader, sink ports.ReportSink, log zerolog.Logger, out io.Writer) *ComputeService {
	return &ComputeService{
		loader: loader,
		sink:   sink,
		log:    log,
		out:    out,
	}
}

func (s *ComputeService) Run(catalogPath, salesPath string) error {
	start := time.Now()

	// Both loads are attempted even if the first fails, so a single run
	// surfaces every loader problem.
	rawCatalog, catalogErr := s.loader.Load(catalogPath)
	rawSales, salesErr := s.loader.Load(salesPath)

	if catalogErr != nil {
		s.log.Error().Msg(catalogErr.Error())
	}
	if salesErr != nil {
		s.log.Error().Msg(salesErr.Error())
	}
	if catalogErr != nil || salesErr != nil {
		s.log.Error().Msg("aborting: " + ErrLoadFailed.Error())
		return ErrLoadFailed
	}

	catalog := BuildCatalog(rawCatalog, s.log)
	records := ParseSales(rawSales, s.log)
	result := Aggregate(catalog, records, s.log)
	elapsed := time.Since(start)

	s.log.Info().
		Int("catalog_entries", len(catalog)).
		Int("sale_records", len(records)).
		Int("sale_ids", len(result.TotalsBySaleID)).
		Msg("processing complete")

	text := FormatReport(result, elapsed)
	fmt.Fprint(s.out, text)

	return s.sink.WriteReport(RunID(catalogPath), text)
}

// RunID derives the run identifier from the catalog filename: the text
// before the first dot, trimmed, or a fixed fallback when that is empty.
func RunID(catalogPath string) string {
	base := filepath.Base(catalogPath)
	name, _, _ := strings.Cut(base, ".")
	name = strings.TrimSpace(name)
	if name == "" {
		return fallbackRunID
	}
	return name
}
