// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the core domain types for quill.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request describes the article the user wants written.
// Title is the only required field.
type Request struct {
	// Title of the article to generate.
	Title string

	// Tags is a comma-separated list of topics (may be empty).
	Tags string

	// Notes are free-form key points to work into the article (may be empty).
	Notes string
}

// IsEmpty reports whether the request has no usable title.
func (r Request) IsEmpty() bool {
	return strings.TrimSpace(r.Title) == ""
}

// NormalizedTags splits the comma-separated tag list, trims each entry,
// and drops empties.
func (r Request) NormalizedTags() []string {
	if strings.TrimSpace(r.Tags) == "" {
		return nil
	}
	parts := strings.Split(r.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Article is a generated article. Once returned by the generator it is
// never mutated; the UI owns display, the exporters own serialization.
type Article struct {
	// ID uniquely identifies this generation.
	ID string

	// Title extracted from the generated Markdown (first # heading),
	// falling back to the requested title.
	Title string

	// Digest is a short summary pulled from the first body paragraph.
	Digest string

	// Outline is the intermediate outline the article was written from.
	Outline string

	// Markdown is the full article body.
	Markdown string

	// Model that produced the article.
	Model string

	// CreatedAt is when generation completed.
	CreatedAt time.Time
}

// NewArticle creates an article with a fresh ID and timestamp.
func NewArticle(title, digest, outline, markdown, modelName string) *Article {
	return &Article{
		ID:        uuid.New().String(),
		Title:     title,
		Digest:    digest,
		Outline:   outline,
		Markdown:  markdown,
		Model:     modelName,
		CreatedAt: time.Now(),
	}
}

// Statistics tracks timing for a single generation, displayed in the
// status bar after completion.
type Statistics struct {
	StartTime time.Time
	EndTime   time.Time
	Chars     int
}

// NewStatistics creates statistics with the start time set to now.
func NewStatistics() *Statistics {
	return &Statistics{StartTime: time.Now()}
}

// Finalize records the end time and the character count of the result.
func (s *Statistics) Finalize(chars int) {
	s.EndTime = time.Now()
	s.Chars = chars
}

// Elapsed returns the total generation duration.
func (s *Statistics) Elapsed() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}
