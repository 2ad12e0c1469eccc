package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		code   ErrorCode
		status int
	}{
		{CodeInvalidRequest, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeDependency, http.StatusBadGateway},
		{CodeCompletion, http.StatusBadGateway},
		{CodeConfiguration, http.StatusInternalServerError},
		{CodePersistence, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			err := NewAppError(tc.code, "message", "")
			assert.Equal(t, tc.status, err.StatusCode())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("NilError_ReturnsNil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "unused"))
	})

	t.Run("AppError_PassedThrough", func(t *testing.T) {
		original := NewInvalidRequestError("query is required")

		wrapped := Wrap(original, "unused")

		assert.Same(t, original, wrapped)
	})

	t.Run("PlainError_BecomesInternal", func(t *testing.T) {
		wrapped := Wrap(fmt.Errorf("boom"), "something failed")

		require.NotNil(t, wrapped)
		assert.Equal(t, CodeInternal, wrapped.Code)
		assert.EqualError(t, wrapped.Unwrap(), "boom")
	})
}

func TestConstructors(t *testing.T) {
	t.Run("DependencyError_CarriesCause", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		err := NewDependencyError("fetch profile", cause)

		assert.Equal(t, CodeDependency, err.Code)
		assert.Contains(t, err.Details, "fetch profile")
		assert.Same(t, cause, err.Unwrap())
	})

	t.Run("Is_MatchesCode", func(t *testing.T) {
		err := NewCompletionError("empty reply", nil)

		assert.True(t, Is(err, CodeCompletion))
		assert.False(t, Is(err, CodeDependency))
		assert.False(t, Is(fmt.Errorf("plain"), CodeCompletion))
	})

	t.Run("GetCode_DefaultsToInternal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, GetCode(fmt.Errorf("plain")))
		assert.Equal(t, CodePersistence, GetCode(NewPersistenceError("create row", nil)))
	})

	t.Run("WithMetadata_Accumulates", func(t *testing.T) {
		err := NewCompletionError("status", nil).WithMetadata("status", 502)

		assert.Equal(t, 502, err.Metadata["status"])
	})
}
