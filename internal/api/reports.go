package api

import (
	"errors"
	"fmt"
	"net/http"

	"bioatlas/internal/activities"
	"bioatlas/internal/engine"
	"bioatlas/internal/util"
	"bioatlas/internal/workflows"

	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	tclient "go.temporal.io/sdk/client"
)

var (
	errNotFound          = fmt.Errorf("not found")
	errWorkflowsDisabled = errors.New("workflow client not configured")
)

type reportRequest struct {
	ReportID string `json:"report_id" validate:"omitempty,uuid"`
	Limit    int    `json:"limit" validate:"gte=0"`
}

func reportWorkflowID(id string) string { return "report-" + id }

// POST /reports starts a SummaryReportWorkflow. An empty body is accepted.
func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	if s.temporal == nil {
		writeErr(w, http.StatusServiceUnavailable, errWorkflowsDisabled)
		return
	}
	var req reportRequest
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	if req.ReportID == "" {
		req.ReportID = uuid.NewString()
	}

	we, err := s.temporal.ExecuteWorkflow(r.Context(), tclient.StartWorkflowOptions{
		ID:                                       reportWorkflowID(req.ReportID),
		TaskQueue:                                s.cfg.TemporalTaskQueue,
		WorkflowIDReusePolicy:                    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}, workflows.SummaryReportWorkflow, workflows.SummaryReportInput{ReportID: req.ReportID, Limit: req.Limit})
	if err != nil {
		var started *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &started) {
			writeErr(w, http.StatusConflict, err)
			return
		}
		s.logger.Error("start report workflow", "report_id", req.ReportID, "error", err)
		writeErr(w, http.StatusBadGateway, err)
		return
	}
	s.logger.Info("report workflow started", "report_id", req.ReportID, "workflow_id", we.GetID())
	writeJSON(w, http.StatusAccepted, map[string]any{"report_id": req.ReportID, "workflow_id": we.GetID(), "run_id": we.GetRunID()})
}

// GET /reports/{id} and /reports/{id}/progress
func (s *Server) handleReportsScoped(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	parts := scopedParts(r, "/reports/")
	if len(parts) > 2 || (len(parts) == 2 && parts[1] != "progress") {
		writeErr(w, http.StatusNotFound, errNotFound)
		return
	}
	id := parts[0]
	if _, err := uuid.Parse(id); err != nil {
		s.fail(w, r, fmt.Errorf("%w: report id must be a uuid", util.ErrInvalidArgument))
		return
	}

	if len(parts) == 1 {
		var report engine.SummaryReport
		if err := util.ReadJSON(activities.ReportPath(s.cfg.DataOutRoot, id), &report); err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
		return
	}

	if s.temporal == nil {
		writeErr(w, http.StatusServiceUnavailable, errWorkflowsDisabled)
		return
	}
	var prog workflows.SummaryReportProgress
	resp, err := s.temporal.QueryWorkflow(r.Context(), reportWorkflowID(id), "", workflows.QueryGetReportProgress)
	if err != nil {
		var nf *serviceerror.NotFound
		if errors.As(err, &nf) {
			writeErr(w, http.StatusNotFound, err)
			return
		}
		s.logger.Error("query report progress", "report_id", id, "error", err)
		writeErr(w, http.StatusBadGateway, err)
		return
	}
	if err := resp.Get(&prog); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prog)
}
