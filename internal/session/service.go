package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/rng"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/store"
)

// Store is the persistence a Service needs. *store.Store satisfies it.
type Store interface {
	SaveRepo() store.SaveRepo
	CommitOutcome(ctx context.Context, out store.Outcome) error
}

var _ Store = (*store.Store)(nil)

// Service starts and finishes register sessions against saved progress.
type Service struct {
	store  Store
	body   specs.ExamBody
	src    rng.Source
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a Service for one exam body. A nil src uses a
// randomly seeded source; a nil logger discards logs.
func NewService(st Store, body specs.ExamBody, src rng.Source, logger *zap.Logger) *Service {
	if src == nil {
		src = rng.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, ok := specs.ParseExamBody(string(body)); !ok {
		body = specs.DefaultExamBody
	}
	return &Service{store: st, body: body, src: src, logger: logger, now: time.Now}
}

// ExamBody returns the exam body the service plays.
func (s *Service) ExamBody() specs.ExamBody {
	return s.body
}

// LoadProgress reads saved progress, or a fresh record when none is saved.
func (s *Service) LoadProgress(ctx context.Context) (progress.RegisterProgress, error) {
	data, err := s.store.SaveRepo().Get(ctx, store.KeyRegisterProgress)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return progress.New(s.body), nil
		}
		return progress.RegisterProgress{}, fmt.Errorf("load progress: %w", err)
	}
	return progress.DecodeRegisterProgress(data, s.body), nil
}

// SaveProgress normalizes and writes progress.
func (s *Service) SaveProgress(ctx context.Context, p progress.RegisterProgress) error {
	data, err := json.Marshal(progress.Normalize(p, s.body))
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.store.SaveRepo().Put(ctx, store.KeyRegisterProgress, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// LoadPlayConfig reads the last stage selection, clamped to what progress
// allows.
func (s *Service) LoadPlayConfig(ctx context.Context, p progress.RegisterProgress) (progress.PlayConfig, error) {
	cfg := progress.DefaultPlayConfig(s.body)
	data, err := s.store.SaveRepo().Get(ctx, store.KeyPlayConfig)
	switch {
	case err == nil:
		cfg = progress.DecodePlayConfig(data, s.body)
	case !errors.Is(err, store.ErrNotFound):
		return cfg, fmt.Errorf("load play config: %w", err)
	}
	cfg.Grade, cfg.Subject = progress.ClampSelection(p, s.body, cfg.Grade, cfg.Subject)
	if !progress.CanPlayStage(p, s.body, cfg.Grade, cfg.Subject, cfg.Stage) {
		cfg.Stage = min(progress.ClearedStage(p, cfg.Grade, cfg.Subject)+1, progress.MaxStage)
	}
	return cfg, nil
}

// SavePlayConfig remembers the stage selection.
func (s *Service) SavePlayConfig(ctx context.Context, cfg progress.PlayConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal play config: %w", err)
	}
	if err := s.store.SaveRepo().Put(ctx, store.KeyPlayConfig, data); err != nil {
		return fmt.Errorf("save play config: %w", err)
	}
	return nil
}

// LoadPracticeConfig reads the last practice selection.
func (s *Service) LoadPracticeConfig(ctx context.Context) (progress.PracticeConfig, error) {
	data, err := s.store.SaveRepo().Get(ctx, store.KeyPracticeConfig)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return progress.DecodePracticeConfig(nil, s.body), fmt.Errorf("load practice config: %w", err)
	}
	return progress.DecodePracticeConfig(data, s.body), nil
}

// SavePracticeConfig remembers the practice selection.
func (s *Service) SavePracticeConfig(ctx context.Context, cfg progress.PracticeConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal practice config: %w", err)
	}
	if err := s.store.SaveRepo().Put(ctx, store.KeyPracticeConfig, data); err != nil {
		return fmt.Errorf("save practice config: %w", err)
	}
	return nil
}

// StartPractice opens a practice session. Nothing is persisted when it ends.
func (s *Service) StartPractice(ctx context.Context, cfg progress.PracticeConfig) (*SessionState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	plan, err := BuildPracticePlan(s.src, cfg)
	if err != nil {
		return nil, err
	}
	state := NewSessionState(plan, uuid.NewString())
	state.StartTime = s.now()
	state.QuestionStartTime = state.StartTime
	s.logger.Info("practice started",
		zap.String("session_id", state.SessionID),
		zap.String("exam", string(cfg.ExamBody)),
		zap.Int("grade", int(cfg.Grade)),
		zap.String("subject", string(cfg.Subject)),
	)
	return state, nil
}

// Start builds a plan for cfg and opens a session on it.
func (s *Service) Start(ctx context.Context, cfg progress.PlayConfig) (*SessionState, error) {
	p, err := s.LoadProgress(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := BuildPlan(s.src, p, s.body, cfg)
	if err != nil {
		return nil, err
	}
	state := NewSessionState(plan, uuid.NewString())
	state.StartTime = s.now()
	state.QuestionStartTime = state.StartTime

	s.logger.Info("session started",
		zap.String("session_id", state.SessionID),
		zap.String("exam", string(s.body)),
		zap.Int("grade", int(plan.Grade)),
		zap.String("subject", string(plan.Subject)),
		zap.Int("stage", plan.Stage),
		zap.Int("problems", len(plan.Problems)),
		zap.Duration("budget", plan.Duration),
	)
	return state, nil
}

// Finish scores the session, applies it to the latest saved progress and
// commits progress, event and snapshot together.
func (s *Service) Finish(ctx context.Context, state *SessionState) (*Result, error) {
	if state == nil || state.Plan == nil {
		return nil, fmt.Errorf("finish session: no plan")
	}
	if state.Plan.Practice {
		state.Phase = PhaseSummary
		return &Result{Summary: BuildSummary(state)}, nil
	}
	p, err := s.LoadProgress(ctx)
	if err != nil {
		return nil, err
	}

	sum := BuildSummary(state)
	res := ApplyOutcome(p, state.Plan, sum)

	data, err := json.Marshal(res.Progress)
	if err != nil {
		return nil, fmt.Errorf("marshal progress: %w", err)
	}
	ev := &store.StageClearEvent{
		Timestamp:   s.now().UTC(),
		SessionID:   state.SessionID,
		ExamBody:    string(state.Plan.ExamBody),
		Grade:       int(state.Plan.Grade),
		Subject:     string(state.Plan.Subject),
		Stage:       state.Plan.Stage,
		Correct:     sum.TotalCorrect,
		Total:       sum.TotalQuestions,
		Rank:        string(sum.Rank),
		Cleared:     sum.Cleared,
		Perfect:     sum.Perfect,
		CoinsEarned: sum.CoinsEarned,
		Unlocked:    res.Unlocked(),
	}
	if err := s.store.CommitOutcome(ctx, store.Outcome{
		ExamBody: string(s.body),
		Progress: data,
		Event:    ev,
	}); err != nil {
		return nil, fmt.Errorf("finish session: %w", err)
	}

	state.Phase = PhaseSummary
	s.logger.Info("session finished",
		zap.String("session_id", state.SessionID),
		zap.Int("correct", sum.TotalCorrect),
		zap.Int("total", sum.TotalQuestions),
		zap.String("rank", string(sum.Rank)),
		zap.Bool("cleared", sum.Cleared),
		zap.Int("coins", sum.CoinsEarned),
		zap.String("unlocked", ev.Unlocked),
		zap.String("badge", res.BadgeID),
	)
	return res, nil
}
