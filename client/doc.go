// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package client talks to the remote user directory. Client is the contract
// used by the rest of Roster; HTTPClient implements it against the REST
// service, MemoryClient keeps an in-process directory for tests, demos and
// the stub server, and MockClient lets tests overwrite single methods.
package client
