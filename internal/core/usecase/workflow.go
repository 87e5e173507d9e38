package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/filewise-ai/filewise/internal/core/analysis"
	"github.com/filewise-ai/filewise/internal/core/domain"
	"github.com/filewise-ai/filewise/internal/core/ports"
)

const (
	// autoApplyThreshold gates the automatic-execution branch.
	autoApplyThreshold = 0.85
	// approvalThreshold separates approved from needs-review inside the
	// human-approval branch.
	approvalThreshold = 0.7

	// fallbackConfidence is the fixed confidence assigned when the
	// deterministic namer replaced an unusable completion result. It sits at
	// the auto-apply threshold, never above it, so fallback names always go
	// through confirmation.
	fallbackConfidence = 0.85
	// errorConfidence is the fixed confidence of the error-fallback path.
	errorConfidence = 0.3

	// maxFinalNameLen bounds the suggested name including its extension.
	maxFinalNameLen = 100
)

// Workflow sequences content analysis, entity extraction, completion-assisted
// naming and deterministic fallback synthesis into one request lifecycle with
// confidence-based routing. The completion capability is injected at
// construction so tests can substitute a fake.
type Workflow struct {
	completion ports.CompletionProvider
	folders    *FolderAgent
	log        *slog.Logger
	now        func() time.Time
}

func NewWorkflow(completion ports.CompletionProvider, log *slog.Logger) *Workflow {
	return &Workflow{
		completion: completion,
		folders:    NewFolderAgent(completion),
		log:        log,
		now:        time.Now,
	}
}

// Analyze runs the full state machine for one content sample. The only error
// it can return is domain.ErrInvalidInput for a malformed sample; every other
// failure is recovered internally into a lower-confidence recommendation.
func (w *Workflow) Analyze(ctx context.Context, sample domain.ContentSample) (domain.Recommendation, error) {
	if err := sample.Validate(); err != nil {
		return domain.Recommendation{}, err
	}

	st := &domain.WorkflowState{
		ID:     uuid.NewString(),
		Sample: sample,
	}

	for stage := domain.StageInit; stage != ""; {
		stage = w.step(ctx, st, stage)
	}

	return w.recommendation(st), nil
}

// step executes one stage and returns the next one. The empty stage
// terminates the loop; no state is ever re-entered.
func (w *Workflow) step(ctx context.Context, st *domain.WorkflowState, stage domain.Stage) domain.Stage {
	switch stage {
	case domain.StageInit:
		st.StartedAt = w.now()
		st.RecordStage(stage)
		return domain.StageContentAnalysis

	case domain.StageContentAnalysis:
		w.contentAnalysis(st)
		st.RecordStage(stage)
		return domain.StageParallelAgents

	case domain.StageParallelAgents:
		w.parallelAgents(ctx, st)
		st.RecordStage(stage)
		return domain.StageDecisionRouting

	case domain.StageDecisionRouting:
		w.decisionRouting(st)
		st.RecordStage(stage)
		return routeDecision(st.Scores.Overall, st.Err != nil)

	case domain.StageAutoExecute:
		st.Decision = domain.DecisionAutoApplied
		st.RecordStage(stage)
		return domain.StageFinalize

	case domain.StageHumanApproval:
		st.Decision = domain.DecisionPendingApproval
		if st.Scores.Overall > approvalThreshold {
			st.Approval = domain.ApprovalApproved
		} else {
			st.Approval = domain.ApprovalNeedsReview
		}
		st.RecordStage(stage)
		return domain.StageFinalize

	case domain.StageErrorHandler:
		w.errorHandler(st)
		st.RecordStage(stage)
		return domain.StageFinalize

	case domain.StageFinalize:
		st.CompletedAt = w.now()
		st.RecordStage(stage)
		return ""

	default:
		return ""
	}
}

// routeDecision is the pure routing function: an error at any prior stage
// forces the error-fallback branch exclusively, high confidence auto-applies,
// everything else asks for confirmation.
func routeDecision(confidence float64, hasError bool) domain.Stage {
	switch {
	case hasError:
		return domain.StageErrorHandler
	case confidence > autoApplyThreshold:
		return domain.StageAutoExecute
	default:
		return domain.StageHumanApproval
	}
}

func (w *Workflow) contentAnalysis(st *domain.WorkflowState) {
	st.Entities = analysis.Extract(st.Sample.PreviewText)
	st.Category, st.Subcategory = analysis.Categorize(st.Sample.PreviewText, st.Entities)
	st.Tags = analysis.Tags(st.Sample.PreviewText, st.Entities)

	w.log.Debug("content_analysis",
		"workflow_id", st.ID,
		"category", st.Category,
		"subcategory", st.Subcategory,
		"entities", st.Entities.PopulatedFields(),
		"tags", len(st.Tags),
	)
}

// parallelAgents runs the independent analyses concurrently. Each agent reads
// only from the post-content-analysis snapshot and writes its own result
// slot, so concurrent and sequential execution are observably identical.
func (w *Workflow) parallelAgents(ctx context.Context, st *domain.WorkflowState) {
	snapshot := *st

	var (
		wg        sync.WaitGroup
		naming    domain.NamingSuggestion
		namingErr error
		folders   []domain.FolderSuggestion
		richness  float64
		density   float64
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		naming, namingErr = w.completion.SuggestName(ctx, ports.NamingRequest{
			Sample:      snapshot.Sample,
			Entities:    snapshot.Entities,
			Category:    snapshot.Category,
			Subcategory: snapshot.Subcategory,
			Tags:        snapshot.Tags,
		})
	}()
	go func() {
		defer wg.Done()
		folders = w.folders.Suggest(ctx, ports.FolderRequest{
			OriginalName:    snapshot.Sample.OriginalName,
			Category:        snapshot.Category,
			BusinessContext: businessContext(snapshot),
			BaseDirectory:   snapshot.Sample.BaseDirectory,
		})
	}()
	go func() {
		defer wg.Done()
		richness = contentRichness(snapshot.Sample.PreviewText)
	}()
	go func() {
		defer wg.Done()
		density = snapshot.Entities.Density()
	}()
	wg.Wait()

	st.Folders = folders
	st.Scores.ContentRichness = richness
	st.Scores.ExtractionDensity = density

	switch {
	case namingErr == nil:
		st.Naming = naming
		st.NameSource = domain.NameSourceCompletion

	case domain.IsCompletionFailure(namingErr):
		// A single failed completion call routes immediately to the
		// deterministic path; no retries inside the core.
		w.log.Warn("completion_fallback", "workflow_id", st.ID, "error", namingErr)
		st.Naming = domain.NamingSuggestion{
			Name:       analysis.FallbackName(st.Sample.PreviewText, st.Entities, st.Category, st.Sample.Extension),
			Confidence: fallbackConfidence,
			Reasoning:  fallbackReasoning(st.Entities),
		}
		st.NameSource = domain.NameSourceFallback

	default:
		st.Err = namingErr
	}
}

func (w *Workflow) decisionRouting(st *domain.WorkflowState) {
	if st.NameSource == domain.NameSourceCompletion {
		st.Scores.NamingAgreement = clamp01(st.Naming.Confidence)
		st.Scores.Overall = composeConfidence(st.Scores)
	} else {
		st.Scores.NamingAgreement = 0
		st.Scores.Overall = fallbackConfidence
	}

	if st.Err != nil {
		return
	}

	st.Naming.Name = normalizeFinalName(st.Naming.Name, st.Sample.Extension)
	if len(st.Naming.Alternatives) > 3 {
		st.Naming.Alternatives = st.Naming.Alternatives[:3]
	}
}

// errorHandler recovers any prior stage failure into a deterministic,
// low-confidence suggestion. It never combines with the approval branch.
func (w *Workflow) errorHandler(st *domain.WorkflowState) {
	w.log.Warn("error_fallback", "workflow_id", st.ID, "error", st.Err)

	st.Category = domain.CategoryUnknown
	st.Subcategory = "general"
	st.Naming = domain.NamingSuggestion{
		Name:       analysis.FallbackName(st.Sample.PreviewText, st.Entities, domain.CategoryUnknown, st.Sample.Extension),
		Confidence: errorConfidence,
		Reasoning:  "fallback naming after a processing error",
	}
	st.NameSource = domain.NameSourceFallback
	st.Scores.NamingAgreement = 0
	st.Scores.Overall = errorConfidence
	st.Folders = staticFolderSuggestion(domain.CategoryUnknown, st.Sample.BaseDirectory)
	st.Decision = domain.DecisionErrorFallback
}

func (w *Workflow) recommendation(st *domain.WorkflowState) domain.Recommendation {
	alternatives := st.Naming.Alternatives
	if alternatives == nil {
		alternatives = []string{}
	}
	tags := st.Tags
	if tags == nil {
		tags = []string{}
	}
	folders := st.Folders
	if folders == nil {
		folders = []domain.FolderSuggestion{}
	}

	return domain.Recommendation{
		SuggestedName:     st.Naming.Name,
		Confidence:        st.Scores.Overall,
		Category:          st.Category,
		Subcategory:       st.Subcategory,
		Decision:          st.Decision,
		Approval:          st.Approval,
		NameSource:        st.NameSource,
		Reasoning:         st.Naming.Reasoning,
		Alternatives:      alternatives,
		ContentSummary:    st.Naming.ContentSummary,
		Tags:              tags,
		Entities:          st.Entities,
		FolderSuggestions: folders,
		ProcessingStages:  st.CompletedStages,
		ProcessingTimeMS:  st.CompletedAt.Sub(st.StartedAt).Milliseconds(),
	}
}

// normalizeFinalName guarantees the invariants of the suggested name: never
// empty, always carrying the original extension, bounded length.
func normalizeFinalName(name, extension string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == extension {
		name = "document" + extension
	}
	if !strings.HasSuffix(strings.ToLower(name), strings.ToLower(extension)) {
		name += extension
	}
	if len(name) > maxFinalNameLen {
		base := name[:maxFinalNameLen-len(extension)]
		name = strings.TrimRight(base, "-.") + extension
	}
	return name
}

func businessContext(st domain.WorkflowState) string {
	if st.Entities.Company != "" {
		return st.Entities.Company
	}
	return st.Subcategory
}

func fallbackReasoning(e domain.ExtractedEntities) string {
	populated := e.PopulatedFields()
	if populated == 0 {
		return "deterministic naming from content keywords"
	}
	return fmt.Sprintf("deterministic naming from %d extracted entities", populated)
}
