package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bakusoq/internal/domain/entities"
	"bakusoq/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound    = errors.New("estimate not found")
	ErrInvalidEstimateID   = errors.New("invalid estimate id")
	ErrEstimateLogDisabled = errors.New("estimate log is not configured")
)

const (
	DefaultAITimeout     = 30 * time.Second
	DefaultRecordTimeout = 5 * time.Second
)

// IEstimateUseCase exposes the estimate operations.
//
//   - RequestEstimate: ask the model, fall back to the fixed calculator on any failure
//   - GetByID: load an estimate from the estimate log
type IEstimateUseCase interface {
	RequestEstimate(ctx context.Context, params entities.EstimateParams) entities.Estimate
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
}

// EstimateOptions tunes the requester. Zero values pick the defaults.
type EstimateOptions struct {
	// AITimeout bounds a single model call.
	AITimeout time.Duration
	// FallbackDelay is waited before answering when no model is configured.
	FallbackDelay time.Duration
	// RecordTimeout bounds the estimate log write.
	RecordTimeout time.Duration
}

type EstimateUseCase struct {
	gateway       interfaces.IEstimateModelGateway
	repo          interfaces.IEstimateRepository
	log           zerolog.Logger
	aiTimeout     time.Duration
	fallbackDelay time.Duration
	recordTimeout time.Duration
	now           func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the requester. gateway may be nil when no model
// credential is configured; repo may be nil when the estimate log is disabled.
func NewEstimateUseCase(
	gateway interfaces.IEstimateModelGateway,
	repo interfaces.IEstimateRepository,
	log zerolog.Logger,
	opts EstimateOptions,
) *EstimateUseCase {
	if opts.AITimeout <= 0 {
		opts.AITimeout = DefaultAITimeout
	}
	if opts.FallbackDelay < 0 {
		opts.FallbackDelay = 0
	}
	if opts.RecordTimeout <= 0 {
		opts.RecordTimeout = DefaultRecordTimeout
	}
	return &EstimateUseCase{
		gateway:       gateway,
		repo:          repo,
		log:           log.With().Str("component", "usecase.estimate").Logger(),
		aiTimeout:     opts.AITimeout,
		fallbackDelay: opts.FallbackDelay,
		recordTimeout: opts.RecordTimeout,
		now:           time.Now,
	}
}

// RequestEstimate always returns an estimate. Model failures of any kind are
// logged and answered with the fallback calculation.
func (u *EstimateUseCase) RequestEstimate(ctx context.Context, params entities.EstimateParams) entities.Estimate {
	params = params.Normalize()

	result, source := u.compute(ctx, params)

	e := entities.Estimate{
		ID:        uuid.NewString(),
		Params:    params,
		Result:    result,
		Source:    source,
		CreatedAt: u.now().UTC(),
	}
	u.record(ctx, e)
	return e
}

func (u *EstimateUseCase) compute(ctx context.Context, params entities.EstimateParams) (entities.EstimateResult, entities.EstimateSource) {
	if u.gateway == nil {
		u.log.Debug().Msg("no model credential configured, using fallback estimate")
		u.pace(ctx)
		return u.fallback(params), entities.EstimateSourceFallback
	}

	callCtx, cancel := context.WithTimeout(ctx, u.aiTimeout)
	defer cancel()

	start := u.now()
	raw, err := u.gateway.GenerateEstimate(callCtx, BuildEstimatePrompt(params))
	if err != nil {
		u.log.Warn().Err(err).
			Dur("elapsed", u.now().Sub(start)).
			Msg("model call failed, using fallback estimate")
		return u.fallback(params), entities.EstimateSourceFallback
	}

	result, err := ParseModelEstimate(raw)
	if err != nil {
		u.log.Error().Err(err).
			Int("body_bytes", len(raw)).
			Msg("model response rejected, using fallback estimate")
		return u.fallback(params), entities.EstimateSourceFallback
	}

	u.log.Info().
		Int("items", len(result.Items)).
		Int64("total", result.Total).
		Dur("elapsed", u.now().Sub(start)).
		Msg("model estimate accepted")
	return result, entities.EstimateSourceAI
}

func (u *EstimateUseCase) fallback(params entities.EstimateParams) entities.EstimateResult {
	return ComputeFallbackEstimate(params.AreaTsubo, params.Structure)
}

// pace waits the configured delay so the fallback answer feels like a
// computation. A cancelled context ends the wait early.
func (u *EstimateUseCase) pace(ctx context.Context) {
	if u.fallbackDelay <= 0 {
		return
	}
	t := time.NewTimer(u.fallbackDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (u *EstimateUseCase) record(ctx context.Context, e entities.Estimate) {
	if u.repo == nil {
		return
	}
	// Detached from the request, bounded by recordTimeout.
	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.recordTimeout)
	defer cancel()

	if _, err := u.repo.Create(recCtx, e); err != nil {
		u.log.Error().Err(err).Str("estimate_id", e.ID).Msg("failed to record estimate")
	}
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if u.repo == nil {
		return entities.Estimate{}, ErrEstimateLogDisabled
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
