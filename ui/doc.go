// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of Roster: the cobra command line in
// ui/cli and the bubbletea interface in ui/tui. Both drive internal/app.
package ui
