// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package export writes a page of users to disk, either as zstd-compressed
// JSON or as an xlsx workbook.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/toeirei/roster/internal/model"
)

type Format string

const (
	FormatJSONZstd Format = "json.zst"
	FormatXLSX     Format = "xlsx"
)

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSONZstd, "zst", "json":
		return FormatJSONZstd, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// FormatFromPath guesses the format from a file name.
func FormatFromPath(path string) (Format, bool) {
	p := strings.ToLower(path)
	switch {
	case strings.HasSuffix(p, ".json.zst"), strings.HasSuffix(p, ".zst"):
		return FormatJSONZstd, true
	case strings.HasSuffix(p, ".xlsx"):
		return FormatXLSX, true
	}
	return "", false
}

// Document is the JSON shape of an export.
type Document struct {
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	ExportedAt time.Time    `json:"exported_at"`
	Users      []model.User `json:"users"`
}

func NewDocument(p model.Page, now time.Time) Document {
	users := p.Items
	if users == nil {
		users = []model.User{}
	}
	return Document{Page: p.Number, TotalPages: p.TotalPages, ExportedAt: now.UTC(), Users: users}
}

// Write encodes p in format f.
func Write(w io.Writer, f Format, p model.Page) error {
	switch f {
	case FormatJSONZstd:
		return WriteJSON(w, NewDocument(p, time.Now()))
	case FormatXLSX:
		return WriteXLSX(w, p.Items)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// WriteFile writes p to path, readable by the current user only.
func WriteFile(path string, f Format, p model.Page) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := Write(file, f, p); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
