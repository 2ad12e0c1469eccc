package assistant

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smartbundle/assistant/internal/domain/profile"
	"github.com/smartbundle/assistant/internal/domain/recommendation"
	"github.com/smartbundle/assistant/internal/domain/shoppinglist"
	"github.com/smartbundle/assistant/internal/ports/inbound"
	"github.com/smartbundle/assistant/internal/ports/outbound"
	"github.com/smartbundle/assistant/pkg/errors"
)

// recentListLimit caps how many of the user's lists are surfaced to the
// completion engine.
const recentListLimit = 3

// defaultHistoryLimit bounds list and history reads when the caller does
// not ask for a specific page size.
const defaultHistoryLimit = 20

// Service implements the assistant pipeline: intake, context assembly,
// completion, and best-effort persistence.
type Service struct {
	profiles        outbound.ProfileRepository
	lists           outbound.ShoppingListRepository
	recommendations outbound.RecommendationRepository
	engine          outbound.CompletionEngine
	logger          *zap.Logger
}

// NewService creates the assistant service.
func NewService(
	profiles outbound.ProfileRepository,
	lists outbound.ShoppingListRepository,
	recommendations outbound.RecommendationRepository,
	engine outbound.CompletionEngine,
	logger *zap.Logger,
) *Service {
	return &Service{
		profiles:        profiles,
		lists:           lists,
		recommendations: recommendations,
		engine:          engine,
		logger:          logger.Named("assistant"),
	}
}

// Query runs the full pipeline for one request. Control flows strictly
// forward: validation, context assembly, completion, persistence. The
// persistence outcome never changes the response; recommendation delivery
// takes priority over recommendation logging.
func (s *Service) Query(ctx context.Context, req inbound.QueryRequest) (*inbound.QueryResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	s.logger.Info("assistant query received",
		zap.String("user_id", req.UserID),
		zap.String("surface", req.ContextTag),
	)

	userContext, err := s.assembleContext(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	systemPrompt := BuildSystemPrompt(userContext)

	answer, err := s.engine.Complete(ctx, systemPrompt, req.Query)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.NewCompletionError("completion call failed", err)
	}

	s.persistRecommendation(ctx, req.UserID, req.Query, answer)

	return &inbound.QueryResult{
		Recommendation: answer,
		Context:        userContext,
	}, nil
}

// RecentLists returns the caller's shopping lists, newest first.
func (s *Service) RecentLists(ctx context.Context, userID string, limit int) ([]*shoppinglist.List, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.NewInvalidRequestError("user_id is required")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	lists, err := s.lists.FindRecentByUserID(ctx, userID, limit)
	if err != nil {
		return nil, errors.NewDependencyError("fetch shopping lists", err)
	}
	return lists, nil
}

// History returns the caller's stored recommendations, newest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]*recommendation.Recommendation, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.NewInvalidRequestError("user_id is required")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	recs, err := s.recommendations.FindRecentByUserID(ctx, userID, limit)
	if err != nil {
		return nil, errors.NewDependencyError("fetch recommendations", err)
	}
	return recs, nil
}

// Rate sets the user rating on a stored recommendation.
func (s *Service) Rate(ctx context.Context, id uuid.UUID, rating int) error {
	if err := recommendation.ValidateRating(rating); err != nil {
		return errors.NewInvalidRequestError(err.Error())
	}

	if err := s.recommendations.SetUserRating(ctx, id, rating); err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return err
		}
		return errors.NewDependencyError("update recommendation rating", err)
	}
	return nil
}

// validateRequest checks the intake contract. No side effects occur before
// this passes.
func validateRequest(req inbound.QueryRequest) error {
	if strings.TrimSpace(req.Query) == "" {
		return errors.NewInvalidRequestError("query is required")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return errors.NewInvalidRequestError("user_id is required")
	}
	return nil
}

// assembleContext issues the profile and recent-list reads concurrently;
// neither depends on the other's result. A missing profile is soft absence,
// not a failure, and degrades to documented defaults.
func (s *Service) assembleContext(ctx context.Context, userID string) (inbound.UserContext, error) {
	var (
		prof  *profile.Profile
		found bool
		lists []*shoppinglist.List
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prof, found, err = s.profiles.FindByUserID(gctx, userID)
		if err != nil {
			return errors.NewDependencyError("fetch profile", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		lists, err = s.lists.FindRecentByUserID(gctx, userID, recentListLimit)
		if err != nil {
			return errors.NewDependencyError("fetch recent lists", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return inbound.UserContext{}, err
	}

	return buildUserContext(prof, found, lists), nil
}

// buildUserContext merges the two reads into the typed context value.
func buildUserContext(prof *profile.Profile, found bool, lists []*shoppinglist.List) inbound.UserContext {
	uc := inbound.UserContext{
		HouseholdSize:       profile.DefaultHouseholdSize,
		DietaryRestrictions: []string{},
		HealthPreferences:   []string{},
		RecentShopping:      []inbound.ListSummary{},
	}

	if found {
		if prof.BudgetLimit != nil {
			uc.BudgetLimit = inbound.BudgetLimit{Amount: *prof.BudgetLimit, Set: true}
		}
		if prof.HouseholdSize > 0 {
			uc.HouseholdSize = prof.HouseholdSize
		}
		if len(prof.DietaryRestrictions) > 0 {
			uc.DietaryRestrictions = prof.DietaryRestrictions
		}
		if len(prof.HealthPreferences) > 0 {
			uc.HealthPreferences = prof.HealthPreferences
		}
	}

	for _, list := range lists {
		if len(uc.RecentShopping) == recentListLimit {
			break
		}
		summary := inbound.ListSummary{
			Title:    list.Title,
			ListType: list.ListType,
			Items:    []inbound.ListItemRef{},
		}
		for _, item := range list.Items {
			summary.Items = append(summary.Items, inbound.ListItemRef{CustomName: item.CustomName})
		}
		uc.RecentShopping = append(uc.RecentShopping, summary)
	}

	return uc
}

// persistRecommendation attempts the best-effort write. Failures are logged
// and counted, never surfaced to the caller.
func (s *Service) persistRecommendation(ctx context.Context, userID, query, answer string) {
	rec, err := recommendation.New(userID, query, answer)
	if err != nil {
		// Unreachable after validateRequest, but the store invariant is
		// checked where the row is built.
		s.logger.Warn("recommendation rejected before write", zap.Error(err))
		recommendationWrites.WithLabelValues("rejected").Inc()
		return
	}

	if err := s.recommendations.Create(ctx, rec); err != nil {
		perr := errors.NewPersistenceError("create recommendation", err)
		s.logger.Warn("recommendation write failed, response unaffected",
			zap.String("user_id", userID),
			zap.Error(perr),
		)
		recommendationWrites.WithLabelValues("failure").Inc()
		return
	}

	recommendationWrites.WithLabelValues("success").Inc()
}
