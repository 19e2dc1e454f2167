// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ansible-lint-toolkit/lint-runner/pkg/errors"
)

func TestPostComment(t *testing.T) {
	// Embedded fences, quotes and newlines must round-trip through the
	// JSON payload untouched.
	body := "## report\n<details>```\nfailed: \"quoted\"\n```</details>\n"

	var posts int
	var got struct {
		Body string `json:"body"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts++
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "token secret-token" {
			t.Errorf("Authorization = %q", auth)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewGitHubClient("secret-token")
	if err := client.PostComment(context.Background(), server.URL, body); err != nil {
		t.Fatalf("PostComment failed: %v", err)
	}

	if posts != 1 {
		t.Errorf("POST count = %d, want exactly 1", posts)
	}
	if got.Body != body {
		t.Errorf("body did not round-trip: got %q, want %q", got.Body, body)
	}
}

func TestPostCommentRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewGitHubClient("wrong")
	err := client.PostComment(context.Background(), server.URL, "report")
	if err == nil {
		t.Fatal("PostComment succeeded against a rejecting server")
	}
	if !errors.IsType(err, errors.ErrPublish) {
		t.Errorf("error type = %v, want ErrPublish", err)
	}
}

func TestPostCommentNoEndpoint(t *testing.T) {
	client := NewGitHubClient("tok")
	err := client.PostComment(context.Background(), "", "report")
	if !errors.IsType(err, errors.ErrPublish) {
		t.Errorf("missing endpoint error = %v, want ErrPublish", err)
	}
}

func writeEvent(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadEvent(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "comments_url",
			payload: `{"pull_request":{"comments_url":"https://api.example.com/pulls/7/comments"}}`,
			want:    "https://api.example.com/pulls/7/comments",
		},
		{
			name:    "links fallback",
			payload: `{"pull_request":{"_links":{"comments":{"href":"https://api.example.com/links/7/comments"}}}}`,
			want:    "https://api.example.com/links/7/comments",
		},
		{
			name:    "no pull request",
			payload: `{"ref":"refs/heads/main"}`,
			want:    "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := ReadEvent(writeEvent(t, tc.payload))
			if err != nil {
				t.Fatalf("ReadEvent failed: %v", err)
			}
			if got := ev.CommentsEndpoint(); got != tc.want {
				t.Errorf("CommentsEndpoint() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReadEventErrors(t *testing.T) {
	if _, err := ReadEvent(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing payload file did not error")
	}
	if _, err := ReadEvent(writeEvent(t, "{not json")); err == nil {
		t.Error("malformed payload did not error")
	}
}
