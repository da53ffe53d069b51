// internals/jobs/queue.go
package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	aiModel "gso_backend/internals/features/ai/model"
	aiService "gso_backend/internals/features/ai/service"
	ipmtModel "gso_backend/internals/features/reports/ipmt/model"
	warModel "gso_backend/internals/features/reports/war/model"
)

/*
Task kinds:
- "generate-description" — fill a WAR's blank description from its activity,
  unit and personnel
- "generate-summary"     — condense a draft's linked WAR descriptions into its
  accomplishment text
*/
const (
	TaskGenerateDescription = "generate-description"
	TaskGenerateSummary     = "generate-summary"
)

type Task struct {
	Kind     string
	TargetID uuid.UUID
	attempts int
}

// Queue dispatches AI generation work off the request path. Delivery is
// at-least-once: a transient failure requeues the task one time.
type Queue struct {
	db    *gorm.DB
	tasks chan Task
	log   *logrus.Logger
}

const maxAttempts = 2

func NewQueue(db *gorm.DB, buffer int) *Queue {
	if buffer <= 0 {
		buffer = 256
	}
	return &Queue{
		db:    db,
		tasks: make(chan Task, buffer),
		log:   logrus.StandardLogger(),
	}
}

// Start launches the worker goroutines. Workers drain until the context is
// cancelled.
func (q *Queue) Start(ctx context.Context, workers int) {
	if workers <= 0 {
		workers = 2
	}
	for i := 0; i < workers; i++ {
		go q.worker(ctx)
	}
}

// Enqueue submits a task fire-and-forget. A full buffer drops the task with a
// warning rather than blocking the request path.
func (q *Queue) Enqueue(kind string, targetID uuid.UUID) {
	select {
	case q.tasks <- Task{Kind: kind, TargetID: targetID}:
	default:
		q.log.WithFields(logrus.Fields{"kind": kind, "target": targetID}).
			Warn("job queue full, task dropped")
	}
}

func (q *Queue) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-q.tasks:
			q.run(ctx, task)
		}
	}
}

func (q *Queue) run(ctx context.Context, task Task) {
	var err error
	switch task.Kind {
	case TaskGenerateDescription:
		err = q.generateDescription(ctx, task.TargetID)
	case TaskGenerateSummary:
		err = q.generateSummary(ctx, task.TargetID)
	default:
		q.log.WithField("kind", task.Kind).Warn("unknown task kind, dropped")
		return
	}

	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// missing target is reported, never raised
		q.log.WithFields(logrus.Fields{"kind": task.Kind, "target": task.TargetID}).
			Warn("task target not found")
		return
	}

	task.attempts++
	if task.attempts < maxAttempts {
		q.log.WithError(err).WithField("kind", task.Kind).Warn("task failed, requeueing")
		select {
		case q.tasks <- task:
		default:
			q.log.WithField("kind", task.Kind).Error("job queue full, retry dropped")
		}
		return
	}
	q.log.WithError(err).WithFields(logrus.Fields{"kind": task.Kind, "target": task.TargetID}).
		Error("task failed permanently")
}

// generateDescription fills a WAR's description from its metadata and records
// the generation in the AI audit table.
func (q *Queue) generateDescription(ctx context.Context, warID uuid.UUID) error {
	var war warModel.WarModel
	if err := q.db.
		Preload("WarUnit").
		Preload("WarActivityName").
		Preload("WarPersonnel").
		First(&war, "war_id = ?", warID).Error; err != nil {
		return err
	}

	activityLabel := "Task"
	if war.WarActivityName != nil {
		activityLabel = war.WarActivityName.ActivityNameName
	} else if war.WarProjectName != nil && *war.WarProjectName != "" {
		activityLabel = *war.WarProjectName
	}
	unitName := ""
	if war.WarUnit != nil {
		unitName = war.WarUnit.UnitName
	}
	personnel := make([]string, 0, len(war.WarPersonnel))
	for i := range war.WarPersonnel {
		personnel = append(personnel, war.WarPersonnel[i].FullName())
	}

	genCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	description, err := aiService.GenerateWarDescription(genCtx, activityLabel, unitName, personnel)
	if err != nil {
		return err
	}

	if err := q.db.Model(&war).Update("war_description", description).Error; err != nil {
		return err
	}

	id := war.WarID
	return q.db.Create(&aiModel.AIReportSummaryModel{
		AISummaryKind:  aiModel.SummaryKindWarDescription,
		AISummaryWarID: &id,
		AISummaryText:  description,
		AISummaryModel: aiService.ModelName(),
	}).Error
}

// generateSummary condenses a draft's linked WAR descriptions into its
// accomplishment text.
func (q *Queue) generateSummary(ctx context.Context, ipmtID uuid.UUID) error {
	var draft ipmtModel.IpmtDraftModel
	if err := q.db.
		Preload("IpmtIndicator").
		Preload("IpmtReports").
		Preload("IpmtReports.WarActivityName").
		First(&draft, "ipmt_id = ?", ipmtID).Error; err != nil {
		return err
	}

	descriptions := make([]string, 0, len(draft.IpmtReports))
	for i := range draft.IpmtReports {
		w := &draft.IpmtReports[i]
		if w.WarDescription != "" {
			descriptions = append(descriptions, w.WarDescription)
		} else if w.WarActivityName != nil {
			descriptions = append(descriptions, w.WarActivityName.ActivityNameName)
		}
	}

	code := ""
	if draft.IpmtIndicator != nil {
		code = draft.IpmtIndicator.IndicatorCode
	}

	genCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	summary, err := aiService.GenerateIpmtSummary(genCtx, code, descriptions)
	if err != nil {
		return err
	}

	if err := q.db.Model(&draft).Update("ipmt_accomplishment", summary).Error; err != nil {
		return err
	}

	return q.db.Create(&aiModel.AIReportSummaryModel{
		AISummaryKind:  aiModel.SummaryKindIpmtSummary,
		AISummaryText:  summary,
		AISummaryModel: aiService.ModelName(),
	}).Error
}
