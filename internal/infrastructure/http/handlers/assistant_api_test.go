package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartbundle/assistant/internal/domain/recommendation"
	"github.com/smartbundle/assistant/internal/domain/shoppinglist"
	"github.com/smartbundle/assistant/internal/ports/inbound"
	apperrors "github.com/smartbundle/assistant/pkg/errors"
)

// stubService implements inbound.AssistantService with canned responses
type stubService struct {
	queryResult *inbound.QueryResult
	queryErr    error
	lists       []*shoppinglist.List
	listsErr    error
	history     []*recommendation.Recommendation
	historyErr  error
	rateErr     error
	gotQuery    inbound.QueryRequest
	gotRateID   uuid.UUID
	gotRating   int
}

func (s *stubService) Query(ctx context.Context, req inbound.QueryRequest) (*inbound.QueryResult, error) {
	s.gotQuery = req
	return s.queryResult, s.queryErr
}

func (s *stubService) RecentLists(ctx context.Context, userID string, limit int) ([]*shoppinglist.List, error) {
	return s.lists, s.listsErr
}

func (s *stubService) History(ctx context.Context, userID string, limit int) ([]*recommendation.Recommendation, error) {
	return s.history, s.historyErr
}

func (s *stubService) Rate(ctx context.Context, id uuid.UUID, rating int) error {
	s.gotRateID = id
	s.gotRating = rating
	return s.rateErr
}

func defaultResult() *inbound.QueryResult {
	return &inbound.QueryResult{
		Recommendation: "Buy oat milk in bulk.",
		Context: inbound.UserContext{
			HouseholdSize:       1,
			DietaryRestrictions: []string{},
			HealthPreferences:   []string{},
			RecentShopping:      []inbound.ListSummary{},
		},
	}
}

func TestAssistantQueryHandler(t *testing.T) {
	t.Run("ValidRequest_Returns200WithContext", func(t *testing.T) {
		stub := &stubService{queryResult: defaultResult()}
		h := NewAssistantHandlers(stub, zap.NewNop())

		body := `{"query":"what should I buy","user_id":"user-1","context":"shopping_assistant"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/query", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Query(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "what should I buy", stub.gotQuery.Query)
		assert.Equal(t, "user-1", stub.gotQuery.UserID)
		assert.Equal(t, "shopping_assistant", stub.gotQuery.ContextTag)

		var resp map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.JSONEq(t, `"Buy oat milk in bulk."`, string(resp["recommendation"]))

		// A missing budget renders as the documented placeholder string
		var ctx map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(resp["context"], &ctx))
		assert.JSONEq(t, `"Not specified"`, string(ctx["budget_limit"]))
		assert.JSONEq(t, `[]`, string(ctx["recent_shopping"]))
	})

	t.Run("MalformedJSON_Returns400", func(t *testing.T) {
		h := NewAssistantHandlers(&stubService{}, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/query", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		h.Query(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("MissingFields_Returns400BeforeService", func(t *testing.T) {
		stub := &stubService{queryResult: defaultResult()}
		h := NewAssistantHandlers(stub, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/query", strings.NewReader(`{"user_id":"u"}`))
		rec := httptest.NewRecorder()

		h.Query(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, stub.gotQuery.UserID)
	})

	t.Run("InvalidRequestError_Returns400", func(t *testing.T) {
		stub := &stubService{queryErr: apperrors.NewInvalidRequestError("query is required")}
		h := NewAssistantHandlers(stub, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/query", strings.NewReader(`{"query":"  ","user_id":"u"}`))
		rec := httptest.NewRecorder()

		h.Query(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "query is required")
	})

	t.Run("CompletionError_Returns502", func(t *testing.T) {
		stub := &stubService{queryErr: apperrors.NewCompletionError("upstream failure", nil)}
		h := NewAssistantHandlers(stub, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/query", strings.NewReader(`{"query":"q","user_id":"u"}`))
		rec := httptest.NewRecorder()

		h.Query(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("DependencyError_Returns502", func(t *testing.T) {
		stub := &stubService{queryErr: apperrors.NewDependencyError("fetch profile", nil)}
		h := NewAssistantHandlers(stub, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/query", strings.NewReader(`{"query":"q","user_id":"u"}`))
		rec := httptest.NewRecorder()

		h.Query(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestRecommendationHandlers(t *testing.T) {
	t.Run("History_MissingUserID_Returns400", func(t *testing.T) {
		h := NewRecommendationHandlers(&stubService{}, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
		rec := httptest.NewRecorder()

		h.History(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("History_ReturnsStoredRows", func(t *testing.T) {
		stored, err := recommendation.New("user-1", "best snacks", "Buy nuts.")
		require.NoError(t, err)
		h := NewRecommendationHandlers(&stubService{history: []*recommendation.Recommendation{stored}}, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?user_id=user-1", nil)
		rec := httptest.NewRecorder()

		h.History(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []RecommendationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "best snacks", resp[0].Query)
		assert.Equal(t, "Buy nuts.", resp[0].AIReasoning)
		assert.Equal(t, recommendation.DefaultConfidence, resp[0].ConfidenceScore)
	})

	t.Run("Rate_ValidRequest_Returns204", func(t *testing.T) {
		stub := &stubService{}
		h := NewRecommendationHandlers(stub, zap.NewNop())
		id := uuid.New()

		r := chi.NewRouter()
		r.Post("/api/v1/recommendations/{id}/rating", h.Rate)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/"+id.String()+"/rating", strings.NewReader(`{"rating":4}`))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, id, stub.gotRateID)
		assert.Equal(t, 4, stub.gotRating)
	})

	t.Run("Rate_BadID_Returns400", func(t *testing.T) {
		h := NewRecommendationHandlers(&stubService{}, zap.NewNop())

		r := chi.NewRouter()
		r.Post("/api/v1/recommendations/{id}/rating", h.Rate)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/not-a-uuid/rating", strings.NewReader(`{"rating":4}`))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Rate_UnknownID_Returns404", func(t *testing.T) {
		h := NewRecommendationHandlers(&stubService{rateErr: apperrors.NewNotFoundError("recommendation")}, zap.NewNop())

		r := chi.NewRouter()
		r.Post("/api/v1/recommendations/{id}/rating", h.Rate)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/"+uuid.NewString()+"/rating", strings.NewReader(`{"rating":2}`))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListHandlers(t *testing.T) {
	t.Run("MissingUserID_Returns400", func(t *testing.T) {
		h := NewListHandlers(&stubService{}, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", nil)
		rec := httptest.NewRecorder()

		h.RecentLists(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ReturnsListsWithItems", func(t *testing.T) {
		list := &shoppinglist.List{
			ID:       uuid.New(),
			UserID:   "user-1",
			Title:    "Weekly Groceries",
			ListType: "grocery",
			Items:    []shoppinglist.Item{{ID: uuid.New(), CustomName: "Oat milk", Quantity: 2}},
		}
		h := NewListHandlers(&stubService{lists: []*shoppinglist.List{list}}, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/lists?user_id=user-1", nil)
		rec := httptest.NewRecorder()

		h.RecentLists(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []ListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "Weekly Groceries", resp[0].Title)
		require.Len(t, resp[0].Items, 1)
		assert.Equal(t, "Oat milk", resp[0].Items[0].CustomName)
	})
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 20, parseLimit("", 20))
	assert.Equal(t, 5, parseLimit("5", 20))
	assert.Equal(t, 20, parseLimit("0", 20))
	assert.Equal(t, 20, parseLimit("-3", 20))
	assert.Equal(t, 20, parseLimit("abc", 20))
	assert.Equal(t, 100, parseLimit("500", 20))
}
