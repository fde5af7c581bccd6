package activities

import "bioatlas/internal/engine"

type StageInput struct {
	Limit int `json:"limit,omitempty"`
}

type WriteReportInput struct {
	ReportID string               `json:"report_id"`
	Report   engine.SummaryReport `json:"report"`
}

type ReportArtifact struct {
	ReportID string `json:"report_id"`
	Path     string `json:"path"`
}
