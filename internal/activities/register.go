package activities

import "go.temporal.io/sdk/worker"

func Register(w worker.Worker, a *Activities) {
	w.RegisterActivity(a.ReportOverviewActivity)
	w.RegisterActivity(a.ReportAreasActivity)
	w.RegisterActivity(a.ReportGapsActivity)
	w.RegisterActivity(a.ReportResearchersActivity)
	w.RegisterActivity(a.ReportOrganismsActivity)
	w.RegisterActivity(a.ReportInsightsActivity)
	w.RegisterActivity(a.WriteReportActivity)
}
