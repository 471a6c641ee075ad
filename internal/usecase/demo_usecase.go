package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bakusoq/internal/domain/entities"
)

var (
	ErrDemoSessionNotFound = errors.New("demo session not found")
	ErrInvalidDemoID       = errors.New("invalid demo session id")
	ErrDemoBusy            = errors.New("demo session is calculating")
	ErrInvalidTransition   = errors.New("invalid demo step transition")
)

const DefaultDemoSessionTTL = 30 * time.Minute

// IDemoUseCase drives the demo wizard: input -> processing -> result -> input.
type IDemoUseCase interface {
	Create(ctx context.Context) entities.DemoSession
	Get(ctx context.Context, id string) (entities.DemoSession, error)
	Calculate(ctx context.Context, id string, params entities.EstimateParams) (entities.DemoSession, error)
	Reset(ctx context.Context, id string) (entities.DemoSession, error)
}

type demoEvent string

const (
	demoEventCalculate demoEvent = "calculate"
	demoEventComplete  demoEvent = "complete"
	demoEventReset     demoEvent = "reset"
)

var demoTransitions = map[entities.DemoStep]map[demoEvent]entities.DemoStep{
	entities.DemoStepInput: {
		demoEventCalculate: entities.DemoStepProcessing,
	},
	entities.DemoStepProcessing: {
		demoEventComplete: entities.DemoStepResult,
	},
	entities.DemoStepResult: {
		demoEventReset: entities.DemoStepInput,
	},
}

type DemoUseCase struct {
	estimates IEstimateUseCase
	ttl       time.Duration
	log       zerolog.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*entities.DemoSession
	inflight sync.WaitGroup
}

var _ IDemoUseCase = (*DemoUseCase)(nil)

func NewDemoUseCase(estimates IEstimateUseCase, ttl time.Duration, log zerolog.Logger) *DemoUseCase {
	if ttl <= 0 {
		ttl = DefaultDemoSessionTTL
	}
	return &DemoUseCase{
		estimates: estimates,
		ttl:       ttl,
		log:       log.With().Str("component", "usecase.demo").Logger(),
		now:       time.Now,
		sessions:  make(map[string]*entities.DemoSession),
	}
}

func (u *DemoUseCase) Create(_ context.Context) entities.DemoSession {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now().UTC()
	u.sweep(now)

	s := &entities.DemoSession{
		ID:        uuid.NewString(),
		Step:      entities.DemoStepInput,
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.sessions[s.ID] = s
	return snapshot(s)
}

func (u *DemoUseCase) Get(_ context.Context, id string) (entities.DemoSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.lookup(id)
	if err != nil {
		return entities.DemoSession{}, err
	}
	return snapshot(s), nil
}

// Calculate moves an input session to processing and computes the estimate in
// the background. The session reaches result once the estimate is ready.
func (u *DemoUseCase) Calculate(ctx context.Context, id string, params entities.EstimateParams) (entities.DemoSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.lookup(id)
	if err != nil {
		return entities.DemoSession{}, err
	}
	if err := u.fire(s, demoEventCalculate, &params, nil); err != nil {
		return entities.DemoSession{}, err
	}

	bg := context.WithoutCancel(ctx)
	u.inflight.Add(1)
	go func(id string, params entities.EstimateParams) {
		defer u.inflight.Done()
		e := u.estimates.RequestEstimate(bg, params)

		u.mu.Lock()
		defer u.mu.Unlock()
		s, ok := u.sessions[id]
		if !ok {
			return
		}
		if err := u.fire(s, demoEventComplete, nil, &e); err != nil {
			u.log.Error().Err(err).Str("session_id", id).Msg("could not complete demo calculation")
		}
	}(s.ID, params)

	return snapshot(s), nil
}

// Reset returns a result session to input. A session already in input is
// left as is.
func (u *DemoUseCase) Reset(_ context.Context, id string) (entities.DemoSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.lookup(id)
	if err != nil {
		return entities.DemoSession{}, err
	}
	if s.Step == entities.DemoStepInput {
		return snapshot(s), nil
	}
	if err := u.fire(s, demoEventReset, nil, nil); err != nil {
		return entities.DemoSession{}, err
	}
	return snapshot(s), nil
}

// Wait blocks until every background calculation has finished.
func (u *DemoUseCase) Wait() {
	u.inflight.Wait()
}

// fire applies ev to s, running the exit action of the current step and the
// entry action of the next one. Callers hold u.mu.
func (u *DemoUseCase) fire(s *entities.DemoSession, ev demoEvent, params *entities.EstimateParams, e *entities.Estimate) error {
	next, ok := demoTransitions[s.Step][ev]
	if !ok {
		if s.Step == entities.DemoStepProcessing {
			return ErrDemoBusy
		}
		return ErrInvalidTransition
	}

	now := u.now().UTC()

	if s.Step == entities.DemoStepProcessing {
		s.LastDuration = now.Sub(s.StartedAt)
	}

	switch next {
	case entities.DemoStepProcessing:
		p := *params
		s.Params = &p
		s.Estimate = nil
		s.StartedAt = now
	case entities.DemoStepResult:
		est := *e
		s.Estimate = &est
	case entities.DemoStepInput:
		s.Params = nil
		s.Estimate = nil
	}

	u.log.Debug().
		Str("session_id", s.ID).
		Str("from", string(s.Step)).
		Str("to", string(next)).
		Msg("demo step changed")

	s.Step = next
	s.UpdatedAt = now
	return nil
}

func (u *DemoUseCase) lookup(id string) (*entities.DemoSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidDemoID
	}
	s, ok := u.sessions[id]
	if !ok {
		return nil, ErrDemoSessionNotFound
	}
	return s, nil
}

// sweep drops idle sessions. Sessions still processing are kept so the
// background calculation has somewhere to land. Callers hold u.mu.
func (u *DemoUseCase) sweep(now time.Time) {
	for id, s := range u.sessions {
		if s.Step == entities.DemoStepProcessing {
			continue
		}
		if now.Sub(s.UpdatedAt) > u.ttl {
			delete(u.sessions, id)
		}
	}
}

func snapshot(s *entities.DemoSession) entities.DemoSession {
	out := *s
	if s.Params != nil {
		p := *s.Params
		out.Params = &p
	}
	if s.Estimate != nil {
		e := *s.Estimate
		out.Estimate = &e
	}
	return out
}
