package report

import (
	"os"
	"path/filepath"
)

const (
	latestReportName = "SalesResults.txt"
	reportSuffix     = "_SalesResults.txt"
	consoleSuffix    = "_Console.txt"
)

// DirSink owns the output directory and the naming of the run artifacts.
type DirSink struct {
	dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

// ConsoleLog creates the directory and the per-run console transcript file.
// The caller owns the returned file and must close it.
func (s *DirSink) ConsoleLog(runID string) (*os.File, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(s.dir, runID+consoleSuffix))
}

// WriteReport writes the latest-run report and the run-id qualified copy.
// Both files hold identical bytes; the latest-run file is overwritten.
func (s *DirSink) WriteReport(runID, text string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, latestReportName), []byte(text), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, runID+reportSuffix), []byte(text), 0o644)
}
