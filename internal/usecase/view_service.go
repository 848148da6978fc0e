package usecase

import (
	"context"
	"fmt"

	"github.com/recipeview/backend/internal/domain"
	"go.uber.org/zap"
)

// ViewService assembles everything the page renders for one recipe URL.
// Flow: fetch recipe -> derive pure facts -> run the three model calls in
// sequence against the same snapshot. A fetch failure aborts the request; a
// model-call failure only blanks its own section.
type ViewService struct {
	extractor domain.RecipeExtractor
	insights  *InsightService
	logger    *zap.Logger
}

// NewViewService creates a view service with its collaborators.
func NewViewService(extractor domain.RecipeExtractor, insights *InsightService, logger *zap.Logger) *ViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViewService{
		extractor: extractor,
		insights:  insights,
		logger:    logger,
	}
}

// BuildView fetches the recipe behind recipeURL and derives every
// presentation fact from it.
func (s *ViewService) BuildView(ctx context.Context, recipeURL string) (*domain.RecipeView, error) {
	if recipeURL == "" {
		return nil, domain.ErrInvalidRequest
	}

	recipe, err := s.extractor.ExtractRecipe(ctx, recipeURL)
	if err != nil {
		return nil, fmt.Errorf("build view: %w", err)
	}

	view := &domain.RecipeView{
		Recipe:           recipe,
		Nutrition:        ExtractNutritionFacts(recipe.Summary),
		Equipment:        CollectEquipment(recipe.Instructions),
		IngredientLookup: BuildIngredientIndex(recipe.ExtendedIngredients),
		Errors:           domain.SectionErrors{},
	}

	if cost, err := s.insights.EstimateCost(ctx, recipe); err != nil {
		s.logger.Warn("cost estimate unavailable", zap.String("url", recipeURL), zap.Error(err))
		view.Errors[domain.SectionCost] = fmt.Sprintf("Failed to estimate nutrition and cost: %v", err)
	} else {
		view.Cost = cost
	}

	if amounts, err := s.insights.InferStepAmounts(ctx, recipe); err != nil {
		s.logger.Warn("step amounts unavailable", zap.String("url", recipeURL), zap.Error(err))
		view.Errors[domain.SectionSteps] = fmt.Sprintf("Failed to infer step ingredient amounts: %v", err)
	} else {
		view.StepAmounts = amounts
	}

	if analysis, err := s.insights.AnalyzeHealth(ctx, recipe); err != nil {
		s.logger.Warn("health analysis unavailable", zap.String("url", recipeURL), zap.Error(err))
		view.Errors[domain.SectionHealth] = fmt.Sprintf("Failed to analyze health of meal: %v", err)
	} else {
		view.HealthAnalysis = analysis
	}

	return view, nil
}
