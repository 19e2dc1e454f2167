// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package platform publishes the failure report to the review system
// hosting the pull request.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ansible-lint-toolkit/lint-runner/pkg/errors"
)

// GitHubClient posts comments to the GitHub API.
type GitHubClient struct {
	token  string
	client *http.Client
}

// githubComment is the comment-creation payload. encoding/json handles
// the escaping, so any report text (embedded fences, quotes, newlines)
// round-trips safely.
type githubComment struct {
	Body string `json:"body"`
}

// NewGitHubClient creates a new GitHub client authenticating with token.
func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{
		token: token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// PostComment delivers body as a comment via the pull request's comment
// collection endpoint. It performs exactly one POST; network errors and
// non-2xx responses surface as publish errors and are never converted to
// success.
func (g *GitHubClient) PostComment(ctx context.Context, commentsURL, body string) error {
	if commentsURL == "" {
		return errors.PublishError("no comments endpoint in event payload", nil)
	}

	payload, err := json.Marshal(githubComment{Body: body})
	if err != nil {
		return errors.PublishError("failed to marshal comment", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, commentsURL, bytes.NewReader(payload))
	if err != nil {
		return errors.PublishError("failed to create request", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("token %s", g.token))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "lint-runner/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.PublishError("failed to post comment", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.PublishError(fmt.Sprintf("comment rejected (status %d): %s", resp.StatusCode, string(respBody)), nil)
	}

	return nil
}
