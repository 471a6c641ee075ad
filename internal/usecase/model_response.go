package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"bakusoq/internal/domain/entities"
	"bakusoq/pkg/mathutil"
)

// ModelNotes is used when the model returns no notes.
const ModelNotes = "AI試算結果に基づく概算見積もりです。"

var (
	ErrEmptyModelResponse     = errors.New("empty model response")
	ErrMalformedModelResponse = errors.New("malformed model response")
)

var itemStringFields = []string{"category", "name", "unit"}

// maxModelItems bounds the line count of a model answer.
const maxModelItems = 200

// ParseModelEstimate validates a model JSON body field by field and turns it
// into an EstimateResult. Totals sent by the model are checked for type only;
// every amount is recomputed locally.
func ParseModelEstimate(raw json.RawMessage) (entities.EstimateResult, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return entities.EstimateResult{}, ErrEmptyModelResponse
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entities.EstimateResult{}, fmt.Errorf("%w: %v", ErrMalformedModelResponse, err)
	}
	if doc == nil {
		return entities.EstimateResult{}, fmt.Errorf("%w: body is not an object", ErrMalformedModelResponse)
	}

	rawItems, ok := doc["items"].([]any)
	if !ok {
		return entities.EstimateResult{}, fmt.Errorf("%w: items must be an array", ErrMalformedModelResponse)
	}
	if len(rawItems) == 0 {
		return entities.EstimateResult{}, fmt.Errorf("%w: items is empty", ErrMalformedModelResponse)
	}
	if len(rawItems) > maxModelItems {
		return entities.EstimateResult{}, fmt.Errorf("%w: more than %d items", ErrMalformedModelResponse, maxModelItems)
	}

	items := make([]entities.LineItem, 0, len(rawItems))
	for i, v := range rawItems {
		it, err := parseModelItem(v)
		if err != nil {
			return entities.EstimateResult{}, fmt.Errorf("%w: items[%d]: %v", ErrMalformedModelResponse, i, err)
		}
		items = append(items, it)
	}

	subTotal := decimal.Zero
	for _, it := range items {
		subTotal = subTotal.Add(decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromInt(it.UnitPrice)).Round(0))
	}
	if !mathutil.WithinAmount(subTotal) {
		return entities.EstimateResult{}, fmt.Errorf("%w: subtotal out of range", ErrMalformedModelResponse)
	}

	notes := ModelNotes
	switch n := doc["notes"].(type) {
	case nil:
	case string:
		if n != "" {
			notes = n
		}
	default:
		return entities.EstimateResult{}, fmt.Errorf("%w: notes must be a string", ErrMalformedModelResponse)
	}

	return entities.NewEstimateResult(items, notes), nil
}

func parseModelItem(v any) (entities.LineItem, error) {
	rec, ok := v.(map[string]any)
	if !ok {
		return entities.LineItem{}, errors.New("not an object")
	}

	strs := make(map[string]string, len(itemStringFields))
	for _, key := range itemStringFields {
		s, ok := rec[key].(string)
		if !ok {
			return entities.LineItem{}, fmt.Errorf("%s must be a string", key)
		}
		strs[key] = s
	}

	quantity, err := numberField(rec, "quantity", mathutil.MaxQuantity)
	if err != nil {
		return entities.LineItem{}, err
	}
	unitPrice, err := numberField(rec, "unitPrice", mathutil.MaxUnitPrice)
	if err != nil {
		return entities.LineItem{}, err
	}
	if _, err := numberField(rec, "total", mathutil.MaxAmount); err != nil {
		return entities.LineItem{}, err
	}

	return entities.NewLineItem(
		strs["category"],
		strs["name"],
		strs["unit"],
		mathutil.RoundQuantity(quantity),
		mathutil.RoundYen(unitPrice),
	), nil
}

func numberField(rec map[string]any, key string, limit float64) (float64, error) {
	n, ok := rec[key].(float64)
	if !ok {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	if !mathutil.IsFiniteNonNegative(n) {
		return 0, fmt.Errorf("%s must be a non-negative number", key)
	}
	if n > limit {
		return 0, fmt.Errorf("%s exceeds %g", key, limit)
	}
	return n, nil
}
