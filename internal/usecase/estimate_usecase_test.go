package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"bakusoq/internal/domain/entities"
	mock_interfaces "bakusoq/internal/usecase/interfaces/mocks"
)

const validModelBody = `{
	"items": [
		{"category":"上屋解体","name":"作業員","unit":"人/日","quantity":3,"unitPrice":20000,"total":60000},
		{"category":"諸経費","name":"現場管理費","unit":"式","quantity":1,"unitPrice":100000,"total":100000}
	],
	"notes": "AI見積"
}`

func woodParams(area float64) entities.EstimateParams {
	return entities.EstimateParams{AreaTsubo: area, Structure: entities.StructureWood, RoadWidth: entities.RoadWidthNormal}
}

func TestEstimateUseCase_RequestEstimate(t *testing.T) {
	t.Run("no gateway returns the fallback", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, zerolog.Nop(), EstimateOptions{})

		e := uc.RequestEstimate(context.Background(), woodParams(30))
		if e.Source != entities.EstimateSourceFallback {
			t.Fatalf("expected fallback source, got %s", e.Source)
		}
		if !reflect.DeepEqual(e.Result, ComputeFallbackEstimate(30, entities.StructureWood)) {
			t.Fatalf("expected result identical to the fallback calculation")
		}
		if e.ID == "" || e.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamp, got %+v", e)
		}
	})

	t.Run("no gateway pacing stops on cancelled context", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, zerolog.Nop(), EstimateOptions{FallbackDelay: time.Hour})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done := make(chan entities.Estimate, 1)
		go func() { done <- uc.RequestEstimate(ctx, woodParams(30)) }()

		select {
		case e := <-done:
			if e.Result.Total != 1368235 {
				t.Fatalf("unexpected total %d", e.Result.Total)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("pacing ignored the cancelled context")
		}
	})

	t.Run("no gateway waits the pacing delay", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, zerolog.Nop(), EstimateOptions{FallbackDelay: 30 * time.Millisecond})
		start := time.Now()
		uc.RequestEstimate(context.Background(), woodParams(30))
		if time.Since(start) < 30*time.Millisecond {
			t.Fatalf("expected the pacing delay to be waited")
		}
	})

	t.Run("gateway error falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateModelGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, zerolog.Nop(), EstimateOptions{})

		gw.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).Return(nil, errors.New("503"))

		e := uc.RequestEstimate(context.Background(), woodParams(30))
		if e.Source != entities.EstimateSourceFallback || e.Result.Total != 1368235 {
			t.Fatalf("expected fallback estimate, got %s %d", e.Source, e.Result.Total)
		}
	})

	t.Run("malformed body falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateModelGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, zerolog.Nop(), EstimateOptions{})

		gw.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{"items": "none"}`), nil)

		e := uc.RequestEstimate(context.Background(), woodParams(30))
		if e.Source != entities.EstimateSourceFallback {
			t.Fatalf("expected fallback source, got %s", e.Source)
		}
		if e.Result.Notes != FallbackNotes {
			t.Fatalf("expected fallback notes, got %q", e.Result.Notes)
		}
	})

	t.Run("out of range amounts fall back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateModelGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, zerolog.Nop(), EstimateOptions{})

		body := `{"items":[
			{"category":"本体解体","name":"木造","unit":"式","quantity":1,"unitPrice":1e30,"total":1e30},
			{"category":"本体解体","name":"RC造","unit":"m2","quantity":1e6,"unitPrice":1e13,"total":1e19}
		]}`
		gw.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).Return(json.RawMessage(body), nil)

		e := uc.RequestEstimate(context.Background(), woodParams(30))
		if e.Source != entities.EstimateSourceFallback {
			t.Fatalf("expected fallback source, got %s", e.Source)
		}
		if !reflect.DeepEqual(e.Result, ComputeFallbackEstimate(30, entities.StructureWood)) {
			t.Fatalf("expected the fallback estimate, got %+v", e.Result)
		}
		if e.Result.Total <= 0 {
			t.Fatalf("expected a positive total, got %d", e.Result.Total)
		}
	})

	t.Run("empty body falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateModelGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, zerolog.Nop(), EstimateOptions{})

		gw.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).Return(json.RawMessage(""), nil)

		if e := uc.RequestEstimate(context.Background(), woodParams(30)); e.Source != entities.EstimateSourceFallback {
			t.Fatalf("expected fallback source, got %s", e.Source)
		}
	})

	t.Run("slow gateway times out and falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateModelGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, zerolog.Nop(), EstimateOptions{AITimeout: 20 * time.Millisecond})

		gw.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ string) (json.RawMessage, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		)

		e := uc.RequestEstimate(context.Background(), woodParams(30))
		if e.Source != entities.EstimateSourceFallback {
			t.Fatalf("expected fallback source, got %s", e.Source)
		}
	})

	t.Run("valid model answer is used with local totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateModelGateway(ctrl)
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(gw, repo, zerolog.Nop(), EstimateOptions{})

		gw.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (json.RawMessage, error) {
				if !strings.Contains(prompt, "RC造") || !strings.Contains(prompt, "狭い") {
					t.Fatalf("prompt is missing the inputs:\n%s", prompt)
				}
				return json.RawMessage(validModelBody), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.Source != entities.EstimateSourceAI {
					t.Fatalf("expected ai source to be recorded, got %s", e.Source)
				}
				return e, nil
			},
		)

		e := uc.RequestEstimate(context.Background(), entities.EstimateParams{
			AreaTsubo: 40,
			Structure: entities.StructureRC,
			RoadWidth: entities.RoadWidthNarrow,
		})
		if e.Source != entities.EstimateSourceAI {
			t.Fatalf("expected ai source, got %s", e.Source)
		}
		if e.Result.SubTotal != 160000 || e.Result.Tax != 16000 || e.Result.Total != 176000 {
			t.Fatalf("unexpected totals: %+v", e.Result)
		}
		if e.Result.Notes != "AI見積" {
			t.Fatalf("unexpected notes %q", e.Result.Notes)
		}
	})

	t.Run("record failure does not affect the estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, repo, zerolog.Nop(), EstimateOptions{})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		e := uc.RequestEstimate(context.Background(), woodParams(30))
		if e.ID == "" || e.Result.Total != 1368235 {
			t.Fatalf("unexpected estimate: %+v", e)
		}
	})

	t.Run("stuck record is cut off by the record timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, repo, zerolog.Nop(), EstimateOptions{RecordTimeout: 20 * time.Millisecond})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("expected a deadline on the record context")
			}
			<-ctx.Done()
			return entities.Estimate{}, ctx.Err()
		})

		done := make(chan entities.Estimate, 1)
		go func() { done <- uc.RequestEstimate(context.Background(), woodParams(30)) }()

		select {
		case e := <-done:
			if e.Result.Total != 1368235 {
				t.Fatalf("unexpected estimate: %+v", e)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("RequestEstimate blocked on the estimate log")
		}
	})

	t.Run("steel alias is normalized", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, zerolog.Nop(), EstimateOptions{})
		e := uc.RequestEstimate(context.Background(), entities.EstimateParams{AreaTsubo: 30, Structure: entities.StructureSteel})
		if e.Params.Structure != entities.StructureS || e.Params.RoadWidth != entities.RoadWidthNormal {
			t.Fatalf("unexpected params: %+v", e.Params)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, zerolog.Nop(), EstimateOptions{})
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("log disabled", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, zerolog.Nop(), EstimateOptions{})
		_, err := uc.GetByID(context.Background(), "e-1")
		if !errors.Is(err, ErrEstimateLogDisabled) {
			t.Fatalf("expected ErrEstimateLogDisabled, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, repo, zerolog.Nop(), EstimateOptions{})

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "e-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, repo, zerolog.Nop(), EstimateOptions{})

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "e-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, repo, zerolog.Nop(), EstimateOptions{})

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1"}, nil)

		e, err := uc.GetByID(context.Background(), " e-1 ")
		if err != nil || e.ID != "e-1" {
			t.Fatalf("unexpected result: %+v, %v", e, err)
		}
	})
}
