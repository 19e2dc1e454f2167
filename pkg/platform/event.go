// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package platform

import (
	"encoding/json"
	"fmt"
	"os"
)

// Event is the subset of the CI event payload the publisher needs.
type Event struct {
	PullRequest *PullRequestRef `json:"pull_request"`
}

// PullRequestRef locates the pull request's comment collection endpoint.
type PullRequestRef struct {
	CommentsURL string `json:"comments_url"`
	Links       struct {
		Comments struct {
			Href string `json:"href"`
		} `json:"comments"`
	} `json:"_links"`
}

// ReadEvent parses the structured event payload at path.
func ReadEvent(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}

	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", err)
	}
	return &ev, nil
}

// CommentsEndpoint returns the pull request's comment-submission URL, or
// "" when the payload does not describe a pull request.
func (e *Event) CommentsEndpoint() string {
	if e.PullRequest == nil {
		return ""
	}
	if e.PullRequest.CommentsURL != "" {
		return e.PullRequest.CommentsURL
	}
	return e.PullRequest.Links.Comments.Href
}

