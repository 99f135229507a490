package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samber/mo"

	"specsbot/clients"
	"specsbot/models"
)

// Client implements the clients.IssueTrackerClient interface against the
// Jira REST API v2 using basic auth (account email + API token)
type Client struct {
	httpClient *http.Client
	baseURL    string
	email      string
	apiToken   string
}

// issueResponse mirrors the subset of the Jira issue payload the service reads
type issueResponse struct {
	Key    string `json:"key"`
	Fields struct {
		Summary     string `json:"summary"`
		Description string `json:"description"`
		Status      struct {
			Name string `json:"name"`
		} `json:"status"`
		Assignee struct {
			DisplayName string `json:"displayName"`
		} `json:"assignee"`
	} `json:"fields"`
}

// addCommentRequest is the wire format for appending a comment
type addCommentRequest struct {
	Body string `json:"body"`
}

// NewClient creates a new Jira client
func NewClient(baseURL, email, apiToken string) clients.IssueTrackerClient {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		email:      email,
		apiToken:   apiToken,
	}
}

// GetIssue fetches the issue by key. Returns None when Jira reports 404.
func (c *Client) GetIssue(ctx context.Context, issueKey string) (mo.Option[*models.IssueFields], error) {
	url := fmt.Sprintf("%s/rest/api/2/issue/%s", c.baseURL, issueKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return mo.None[*models.IssueFields](), fmt.Errorf("failed to create issue request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mo.None[*models.IssueFields](), fmt.Errorf("issue request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return mo.None[*models.IssueFields](), nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return mo.None[*models.IssueFields](), fmt.Errorf("failed to read issue response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return mo.None[*models.IssueFields](), fmt.Errorf("jira api returned status %d: %s", resp.StatusCode, string(body))
	}

	var issue issueResponse
	if err := json.Unmarshal(body, &issue); err != nil {
		return mo.None[*models.IssueFields](), fmt.Errorf("failed to parse issue response: %w", err)
	}

	fields := &models.IssueFields{
		Key:         issue.Key,
		Summary:     issue.Fields.Summary,
		Description: issue.Fields.Description,
		Status:      issue.Fields.Status.Name,
		Assignee:    issue.Fields.Assignee.DisplayName,
	}
	return mo.Some(fields), nil
}

// AddComment appends body as a comment on the issue identified by issueKey
func (c *Client) AddComment(ctx context.Context, issueKey, body string) error {
	payload, err := json.Marshal(addCommentRequest{Body: body})
	if err != nil {
		return fmt.Errorf("failed to marshal comment request: %w", err)
	}

	url := fmt.Sprintf("%s/rest/api/2/issue/%s/comment", c.baseURL, issueKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create comment request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("comment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("jira api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
