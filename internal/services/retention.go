package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	surveyclient "github.com/habitloop/habitloop-backend/internal/clients/survey"
	retentionrepos "github.com/habitloop/habitloop-backend/internal/data/repos/retention"
	retentiontypes "github.com/habitloop/habitloop-backend/internal/domain/retention"
	"github.com/habitloop/habitloop-backend/internal/modules/retention"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

// AccountNotifier delivers the "user confirmed deletion" signal to the
// external account service, which owns the actual deletion.
type AccountNotifier interface {
	DeletionConfirmed(ctx context.Context, userID uuid.UUID) error
}

// ScienceContent is the static step-two payload plus the live progress
// summary.
type ScienceContent struct {
	Statements []string                  `json:"statements"`
	Summary    retention.ProgressSummary `json:"summary"`
}

type RetentionService interface {
	Open(ctx context.Context) (retention.Session, error)
	Session(ctx context.Context) (retention.Session, error)
	SelectConcern(ctx context.Context, concern string) (retention.Session, error)
	Continue(ctx context.Context) (retention.Session, error)
	SetAnswer(ctx context.Context, index int, text string) (retention.Session, error)
	StillWantToLeave(ctx context.Context) (retention.Session, error)
	Resume(ctx context.Context) (retention.Session, error)
	KeepAccount(ctx context.Context) (retention.Session, error)
	Close(ctx context.Context) (retention.Session, error)
	ConfirmDelete(ctx context.Context) (retention.Session, error)
	Science(ctx context.Context) (*ScienceContent, error)
}

type flowState struct {
	session retention.Session
	// seq identifies the activation; survey fetches started under an
	// older seq must not touch the current session.
	seq uint64
}

type retentionService struct {
	log            *logger.Logger
	surveyClient   surveyclient.Client
	notifier       AccountNotifier
	exitSurveyRepo retentionrepos.ExitSurveyRepo
	userEventRepo  retentionrepos.UserEventRepo
	habitService   HabitService

	mu    sync.Mutex
	flows map[uuid.UUID]*flowState
}

func NewRetentionService(
	log *logger.Logger,
	surveyClient surveyclient.Client,
	notifier AccountNotifier,
	exitSurveyRepo retentionrepos.ExitSurveyRepo,
	userEventRepo retentionrepos.UserEventRepo,
	habitService HabitService,
) RetentionService {
	return &retentionService{
		log:            log.With("service", "RetentionService"),
		surveyClient:   surveyClient,
		notifier:       notifier,
		exitSurveyRepo: exitSurveyRepo,
		userEventRepo:  userEventRepo,
		habitService:   habitService,
		flows:          make(map[uuid.UUID]*flowState),
	}
}

func (rs *retentionService) Open(ctx context.Context) (retention.Session, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return retention.NewSession(), err
	}

	rs.mu.Lock()
	fs, ok := rs.flows[userID]
	if !ok {
		fs = &flowState{session: retention.NewSession()}
		rs.flows[userID] = fs
	}
	fs.seq++
	seq := fs.seq
	fs.session, _ = retention.Apply(fs.session, retention.Event{Kind: retention.EventOpen})
	session := fs.session
	rs.mu.Unlock()

	rs.recordEvent(ctx, userID, "retention.opened", nil)

	if rs.surveyClient == nil {
		rs.applyFetchResult(userID, seq, nil, false)
		rs.mu.Lock()
		session = rs.flows[userID].session
		rs.mu.Unlock()
		return session, nil
	}

	// Fire-and-forget: the fetch must never block the flow. The request
	// context dies with the HTTP request, so the fetch gets its own.
	go func() {
		fetchCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		questions, err := rs.surveyClient.FetchQuestions(fetchCtx)
		if err != nil {
			rs.log.Debug("Exit survey fetch failed", "error", err, "user_id", userID)
			rs.applyFetchResult(userID, seq, nil, false)
			return
		}
		rs.applyFetchResult(userID, seq, questions, true)
	}()

	return session, nil
}

// applyFetchResult folds a completed survey fetch into the session,
// discarding results from a stale activation.
func (rs *retentionService) applyFetchResult(userID uuid.UUID, seq uint64, questions []string, ok bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	fs, exists := rs.flows[userID]
	if !exists || fs.seq != seq || !fs.session.Active {
		return
	}
	if ok {
		fs.session, _ = retention.Apply(fs.session, retention.Event{Kind: retention.EventQuestionsLoaded, Questions: questions})
	} else {
		fs.session, _ = retention.Apply(fs.session, retention.Event{Kind: retention.EventQuestionsFailed})
	}
}

func (rs *retentionService) Session(ctx context.Context) (retention.Session, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return retention.NewSession(), err
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if fs, ok := rs.flows[userID]; ok {
		return fs.session, nil
	}
	return retention.NewSession(), nil
}

func (rs *retentionService) SelectConcern(ctx context.Context, concern string) (retention.Session, error) {
	return rs.apply(ctx, retention.Event{Kind: retention.EventSelectConcern, Concern: retention.Concern(concern)})
}

func (rs *retentionService) Continue(ctx context.Context) (retention.Session, error) {
	return rs.apply(ctx, retention.Event{Kind: retention.EventContinue})
}

func (rs *retentionService) SetAnswer(ctx context.Context, index int, text string) (retention.Session, error) {
	return rs.apply(ctx, retention.Event{Kind: retention.EventSetAnswer, AnswerIndex: index, AnswerText: text})
}

func (rs *retentionService) StillWantToLeave(ctx context.Context) (retention.Session, error) {
	return rs.apply(ctx, retention.Event{Kind: retention.EventStillWantToLeave})
}

func (rs *retentionService) Resume(ctx context.Context) (retention.Session, error) {
	return rs.apply(ctx, retention.Event{Kind: retention.EventResume})
}

func (rs *retentionService) KeepAccount(ctx context.Context) (retention.Session, error) {
	return rs.apply(ctx, retention.Event{Kind: retention.EventKeepAccount})
}

func (rs *retentionService) Close(ctx context.Context) (retention.Session, error) {
	return rs.apply(ctx, retention.Event{Kind: retention.EventClose})
}

func (rs *retentionService) ConfirmDelete(ctx context.Context) (retention.Session, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return retention.NewSession(), err
	}

	rs.mu.Lock()
	fs, ok := rs.flows[userID]
	if !ok {
		rs.mu.Unlock()
		return retention.NewSession(), nil
	}
	var effect retention.Effect
	fs.session, effect = retention.Apply(fs.session, retention.Event{Kind: retention.EventConfirmDelete})
	session := fs.session
	rs.mu.Unlock()

	if effect.Submit != nil {
		rs.persistExitSurvey(ctx, userID, effect.Submit)
		rs.submitExitSurvey(userID, effect.Submit)
	}
	if effect.SignalDeletion {
		rs.recordEvent(ctx, userID, "retention.deletion_confirmed", map[string]any{"had_survey": effect.Submit != nil})
		if err := rs.notifier.DeletionConfirmed(ctx, userID); err != nil {
			// The confirmation signal is the caller's responsibility to
			// retry; the flow itself has already completed.
			rs.log.Error("Account deletion signal failed", "error", err, "user_id", userID)
		}
	}
	return session, nil
}

// persistExitSurvey keeps a local audit copy. Best effort, like the
// upstream submission.
func (rs *retentionService) persistExitSurvey(ctx context.Context, userID uuid.UUID, submission *retention.Submission) {
	answersJSON, err := json.Marshal(submission.Answers)
	if err != nil {
		return
	}
	row := &retentiontypes.ExitSurveyResponse{
		ID:          uuid.New(),
		UserID:      userID,
		Concern:     submission.Concern,
		AnswersJSON: datatypes.JSON(answersJSON),
	}
	if err := rs.exitSurveyRepo.Create(ctx, nil, row); err != nil {
		rs.log.Warn("Exit survey audit write failed", "error", err, "user_id", userID)
	}
}

// submitExitSurvey forwards answers to the survey service. Any failure
// is swallowed; it never blocks or reverses the deletion decision.
func (rs *retentionService) submitExitSurvey(userID uuid.UUID, submission *retention.Submission) {
	if rs.surveyClient == nil {
		return
	}
	go func() {
		submitCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err := rs.surveyClient.Submit(submitCtx, surveyclient.Submission{
			Concern: submission.Concern,
			Answers: submission.Answers,
		})
		if err != nil {
			rs.log.Debug("Exit survey submission failed", "error", err, "user_id", userID)
		}
	}()
}

func (rs *retentionService) Science(ctx context.Context) (*ScienceContent, error) {
	if _, err := requireUserID(ctx); err != nil {
		return nil, err
	}
	content := &ScienceContent{Statements: retention.ScienceStatements()}
	if rs.habitService != nil {
		if streak, err := rs.habitService.BestCurrentStreak(ctx); err == nil {
			content.Summary.CurrentStreak = streak
		}
		if total, err := rs.habitService.TotalCheckIns(ctx); err == nil {
			content.Summary.TotalCheckIns = int(total)
		}
	}
	return content, nil
}

func (rs *retentionService) apply(ctx context.Context, event retention.Event) (retention.Session, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return retention.NewSession(), err
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	fs, ok := rs.flows[userID]
	if !ok {
		return retention.NewSession(), nil
	}
	fs.session, _ = retention.Apply(fs.session, event)
	return fs.session, nil
}

func (rs *retentionService) recordEvent(ctx context.Context, userID uuid.UUID, kind string, payload map[string]any) {
	if rs.userEventRepo == nil {
		return
	}
	var raw []byte
	if payload != nil {
		raw, _ = json.Marshal(payload)
	}
	event := &retentiontypes.UserEvent{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		PayloadJSON: datatypes.JSON(raw),
	}
	if err := rs.userEventRepo.Create(ctx, nil, event); err != nil {
		rs.log.Debug("User event write failed", "error", err, "kind", kind)
	}
}
