// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal UI. Presentation and input handling live
// here; session, paging and mutations are delegated to internal/app.
package tui
