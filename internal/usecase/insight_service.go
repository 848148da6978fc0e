package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/recipeview/backend/internal/domain"
	"go.uber.org/zap"
)

// InsightService derives the model-backed facts for a recipe: the total
// nutrition and cost estimate, the per-step ingredient amounts, and the health
// narrative. Each derivation is a single one-shot completion call; failures
// are returned to the caller, never raised, so the page sections stay
// independent.
type InsightService struct {
	completer domain.ChatCompleter
	logger    *zap.Logger
}

// NewInsightService creates an insight service backed by the given completer.
func NewInsightService(completer domain.ChatCompleter, logger *zap.Logger) *InsightService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{
		completer: completer,
		logger:    logger,
	}
}

// costPayload is the shape the cost prompt instructs the model to return.
// Values arrive untyped because models oscillate between numbers and strings.
type costPayload map[string]interface{}

// EstimateCost asks the model for total nutrition and cost given the full
// ingredient list and serving count, then formats the result for display.
// The response must be a single brace-delimited JSON object; anything else is
// a parse failure with no partial recovery.
func (s *InsightService) EstimateCost(ctx context.Context, recipe *domain.Recipe) (*domain.CostEstimate, error) {
	ingredientsText := joinIngredientOriginals(recipe.ExtendedIngredients)
	servings := recipe.ServingsOrDefault()

	raw, err := s.completer.Complete(ctx, costPrompt.systemRole, costPrompt.render(ingredientsText, servings))
	if err != nil {
		return nil, fmt.Errorf("estimate cost: %w", err)
	}

	var payload costPayload
	if err := DecodeModelObject(raw, &payload); err != nil {
		s.logger.Warn("cost estimate response rejected", zap.Error(err))
		return nil, err
	}

	estimate := &domain.CostEstimate{
		Calories: displayValue(payload, "calories", ""),
		Protein:  displayValue(payload, "protein", "g"),
		Fat:      displayValue(payload, "fat", "g"),
	}

	if estimate.TotalCost, err = displayUSD(payload, "total_cost"); err != nil {
		return nil, err
	}
	if estimate.PricePerServing, err = displayUSD(payload, "price_per_serving"); err != nil {
		return nil, err
	}

	return estimate, nil
}

// InferStepAmounts asks the model to infer, per step, which ingredients are
// used and in what approximate amount. Steps where nothing is used are absent
// from the returned map; on failure the caller falls back to the recipe's own
// step-scoped ingredient references.
func (s *InsightService) InferStepAmounts(ctx context.Context, recipe *domain.Recipe) (domain.StepAmountMap, error) {
	instructions := buildInstructionsText(recipe.Instructions)
	ingredients := buildIngredientsText(recipe.ExtendedIngredients)

	raw, err := s.completer.Complete(ctx, stepAmountsPrompt.systemRole, stepAmountsPrompt.render(instructions, ingredients))
	if err != nil {
		return nil, fmt.Errorf("infer step amounts: %w", err)
	}

	var amounts domain.StepAmountMap
	if err := DecodeModelJSON(raw, &amounts); err != nil {
		s.logger.Warn("step amounts response rejected", zap.Error(err))
		return nil, err
	}
	return amounts, nil
}

// AnalyzeHealth asks the model for a plain-text health and nutrition
// discussion of the meal. The text is fence-stripped but otherwise returned
// verbatim; there is no JSON to parse.
func (s *InsightService) AnalyzeHealth(ctx context.Context, recipe *domain.Recipe) (string, error) {
	instructions := buildInstructionsText(recipe.Instructions)
	ingredients := buildIngredientsText(recipe.ExtendedIngredients)

	raw, err := s.completer.Complete(ctx, healthPrompt.systemRole, healthPrompt.render(ingredients, instructions))
	if err != nil {
		return "", fmt.Errorf("analyze health: %w", err)
	}
	return StripCodeFence(raw), nil
}

// displayValue renders a payload entry as provided by the model, with an
// optional unit suffix. Missing entries fall back to "N/A" unsuffixed.
func displayValue(payload costPayload, key, suffix string) string {
	value, ok := payload[key]
	if !ok || value == nil {
		return "N/A"
	}
	return fmt.Sprint(value) + suffix
}

// displayUSD renders a payload entry as a dollar amount rounded half-up to
// two decimals. A missing entry renders "N/A"; a non-numeric one is a parse
// failure.
func displayUSD(payload costPayload, key string) (string, error) {
	value, ok := payload[key]
	if !ok || value == nil {
		return "N/A", nil
	}

	amount, err := toFloat(value)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not numeric: %v", domain.ErrParseFailure, key, value)
	}
	return fmt.Sprintf("$%.2f", math.Round(amount*100)/100), nil
}

func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case json.Number:
		return v.Float64()
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", value)
	}
}
