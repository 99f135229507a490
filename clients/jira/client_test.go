package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetIssue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/api/2/issue/PROJ-123", r.URL.Path)
			email, token, ok := r.BasicAuth()
			require.True(t, ok, "request must carry basic auth")
			assert.Equal(t, "bot@example.com", email)
			assert.Equal(t, "secret-token", token)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"key": "PROJ-123",
				"fields": {
					"summary": "Add export button",
					"description": "Users need CSV export.",
					"status": {"name": "In Progress"},
					"assignee": {"displayName": "Sam Developer"}
				}
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "bot@example.com", "secret-token")
		maybeIssue, err := client.GetIssue(context.Background(), "PROJ-123")

		require.NoError(t, err)
		require.True(t, maybeIssue.IsPresent())
		issue := maybeIssue.MustGet()
		assert.Equal(t, "PROJ-123", issue.Key)
		assert.Equal(t, "Add export button", issue.Summary)
		assert.Equal(t, "Users need CSV export.", issue.Description)
		assert.Equal(t, "In Progress", issue.Status)
		assert.Equal(t, "Sam Developer", issue.Assignee)
	})

	t.Run("NullDescriptionAndAssignee", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"key": "PROJ-9",
				"fields": {"summary": "Bare issue", "description": null, "status": {"name": "To Do"}, "assignee": null}
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "bot@example.com", "secret-token")
		maybeIssue, err := client.GetIssue(context.Background(), "PROJ-9")

		require.NoError(t, err)
		require.True(t, maybeIssue.IsPresent())
		issue := maybeIssue.MustGet()
		assert.Equal(t, "Bare issue", issue.Summary)
		assert.Empty(t, issue.Description)
		assert.Empty(t, issue.Assignee)
	})

	t.Run("NotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"errorMessages":["Issue does not exist"]}`, http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL, "bot@example.com", "secret-token")
		maybeIssue, err := client.GetIssue(context.Background(), "PROJ-404")

		require.NoError(t, err)
		assert.False(t, maybeIssue.IsPresent())
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, "bot@example.com", "secret-token")
		_, err := client.GetIssue(context.Background(), "PROJ-123")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})
}

func TestClient_AddComment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotBody addCommentRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rest/api/2/issue/PROJ-123/comment", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"10001"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "bot@example.com", "secret-token")
		err := client.AddComment(context.Background(), "PROJ-123", "generated specification text")

		require.NoError(t, err)
		assert.Equal(t, "generated specification text", gotBody.Body)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewClient(server.URL, "bot@example.com", "bad-token")
		err := client.AddComment(context.Background(), "PROJ-123", "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})
}
