package domain

import "time"

// Stage marks the orchestrator's position in the request lifecycle.
type Stage string

const (
	StageInit            Stage = "init"
	StageContentAnalysis Stage = "content_analysis"
	StageParallelAgents  Stage = "parallel_agents"
	StageDecisionRouting Stage = "decision_routing"
	StageAutoExecute     Stage = "auto_execute"
	StageHumanApproval   Stage = "human_approval"
	StageErrorHandler    Stage = "error_handler"
	StageFinalize        Stage = "finalize"
)

// Decision is the terminal decision kind. Exactly one is produced per request.
type Decision string

const (
	DecisionAutoApplied     Decision = "auto-applied"
	DecisionPendingApproval Decision = "pending-approval"
	DecisionErrorFallback   Decision = "error-fallback"
)

// ApprovalOutcome is the simulated human-approval verdict attached to a
// pending-approval decision. It marks the suggestion, it never replaces it.
type ApprovalOutcome string

const (
	ApprovalApproved    ApprovalOutcome = "approved"
	ApprovalNeedsReview ApprovalOutcome = "needs-review"
)

// NameSource records which path produced the suggested name.
type NameSource string

const (
	NameSourceCompletion NameSource = "completion"
	NameSourceFallback   NameSource = "fallback"
)

// ConfidenceScores are the sub-scores the overall confidence is composed from.
// Overall is always clamped to [0,1].
type ConfidenceScores struct {
	ContentRichness   float64 `json:"contentRichness"`
	ExtractionDensity float64 `json:"extractionDensity"`
	NamingAgreement   float64 `json:"namingAgreement"`
	Overall           float64 `json:"overall"`
}

// WorkflowState is the mutable record threaded through the pipeline stages.
// Each stage returns a partial update merged into it; the state is local to
// one request and discarded after the response is produced.
type WorkflowState struct {
	ID     string
	Sample ContentSample

	Entities    ExtractedEntities
	Tags        []string
	Category    Category
	Subcategory string

	Naming     NamingSuggestion
	NameSource NameSource
	Scores     ConfidenceScores
	Folders    []FolderSuggestion

	Stage           Stage
	Decision        Decision
	Approval        ApprovalOutcome
	Err             error
	CompletedStages []string

	StartedAt   time.Time
	CompletedAt time.Time
}

// RecordStage appends the stage to the append-only completion trace.
func (s *WorkflowState) RecordStage(stage Stage) {
	s.Stage = stage
	s.CompletedStages = append(s.CompletedStages, string(stage))
}
