// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides structured logging for lint-runner.
package observability

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the structured logger interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// logger wraps slog; logs go to stderr so linter output on stdout
// stays machine-readable.
type logger struct {
	sl *slog.Logger
}

// NewLogger creates a new logger at the given level (debug, info, warn, error).
func NewLogger(level string) Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return &logger{sl: slog.New(handler)}
}

func (l *logger) Debug(msg string, fields ...Field) {
	l.sl.Debug(msg, attrs(fields)...)
}

func (l *logger) Info(msg string, fields ...Field) {
	l.sl.Info(msg, attrs(fields)...)
}

func (l *logger) Warn(msg string, fields ...Field) {
	l.sl.Warn(msg, attrs(fields)...)
}

func (l *logger) Error(msg string, fields ...Field) {
	l.sl.Error(msg, attrs(fields)...)
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{sl: l.sl.With(attrs(fields)...)}
}

func attrs(fields []Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}
