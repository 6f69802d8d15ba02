package ports

// ReportSink persists the report text of a finished run.
type ReportSink interface {
	WriteReport(runID, text string) error
}
