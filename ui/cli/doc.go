// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Roster using Cobra.
// It loads configuration, builds the application controller and provides
// commands that delegate to it. CLI code should remain thin: business logic
// lives in internal/app and the packages it wires.
package cli
