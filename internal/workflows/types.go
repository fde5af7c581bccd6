package workflows

import "bioatlas/internal/activities"

type SummaryReportInput struct {
	ReportID string `json:"report_id"`
	Limit    int    `json:"limit,omitempty"`
}

type SummaryReportProgress struct {
	ReportID    string `json:"report_id"`
	Stage       string `json:"stage"`
	StagesDone  int    `json:"stages_done"`
	StagesTotal int    `json:"stages_total"`
	Path        string `json:"path,omitempty"`
	Error       string `json:"error,omitempty"`
}

// SummaryReportResult is returned by the workflow once the artifact is written.
type SummaryReportResult = activities.ReportArtifact
