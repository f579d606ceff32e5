// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/roster/client"
	"github.com/toeirei/roster/internal/app"
	"github.com/toeirei/roster/internal/export"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/stubserver"
	"github.com/toeirei/roster/ui/tui"
)

// setupCLI points the CLI at a stub directory server and an isolated config
// and session location.
func setupCLI(t *testing.T) *client.MemoryClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	remote := client.NewMemoryClient(client.WithSampleData())
	srv := httptest.NewServer(stubserver.New(remote).Handler())
	t.Cleanup(srv.Close)

	t.Setenv("ROSTER_API_BASE_URL", srv.URL+stubserver.Prefix)
	t.Setenv("ROSTER_SESSION_PATH", filepath.Join(t.TempDir(), "session.yaml"))
	return remote
}

// runCLI executes a fresh command tree with args and captures both streams.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func mustLogin(t *testing.T) {
	t.Helper()
	_, _, err := runCLI(t, "login", "--password", client.DemoPassword)
	require.NoError(t, err)
}

func TestLogin_StoresSession(t *testing.T) {
	setupCLI(t)

	out, _, err := runCLI(t, "login", "--password", client.DemoPassword)
	require.NoError(t, err)
	assert.Contains(t, out, client.DemoEmail)

	data, err := os.ReadFile(os.Getenv("ROSTER_SESSION_PATH"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "token:")
}

func TestLogin_PromptsForPassword(t *testing.T) {
	setupCLI(t)
	prev := readPassword
	t.Cleanup(func() { readPassword = prev })
	readPassword = func(*cobra.Command) (string, error) { return client.DemoPassword, nil }

	_, _, err := runCLI(t, "login")
	require.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	setupCLI(t)

	out, errOut, err := runCLI(t, "login", "--email", "peter@klaven", "--password", "nope")
	require.Error(t, err)
	assert.NotContains(t, out, "Logged in")
	assert.NotEmpty(t, errOut)

	_, err = os.Stat(os.Getenv("ROSTER_SESSION_PATH"))
	assert.True(t, os.IsNotExist(err))
}

func TestUsersList_RequiresSession(t *testing.T) {
	setupCLI(t)

	_, _, err := runCLI(t, "users", "list")
	require.Error(t, err)
	assert.Equal(t, i18n.T("session.required"), err.Error())
}

func TestUsersList(t *testing.T) {
	setupCLI(t)
	mustLogin(t)

	out, _, err := runCLI(t, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "george.bluth@reqres.in")
	assert.Contains(t, out, i18n.T("users.page", 1, 2))

	out, _, err = runCLI(t, "users", "list", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "michael.lawson@reqres.in")
	assert.NotContains(t, out, "george.bluth@reqres.in")
}

func TestUsersList_InvalidPage(t *testing.T) {
	setupCLI(t)
	mustLogin(t)

	_, _, err := runCLI(t, "users", "list", "--page", "0")
	require.Error(t, err)
	assert.Equal(t, i18n.T("users.invalid_page"), err.Error())
}

func TestUsersCreateUpdateDelete(t *testing.T) {
	remote := setupCLI(t)
	mustLogin(t)
	ctx := context.Background()

	out, _, err := runCLI(t, "users", "create", "--first-name", "Ada", "--last-name", "Lovelace", "--email", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, i18n.T("users.create_ok"))
	assert.Contains(t, out, "Ada Lovelace")
	assert.Equal(t, 13, remote.Len())

	out, _, err = runCLI(t, "users", "update", "2", "--last-name", "Weber")
	require.NoError(t, err)
	assert.Contains(t, out, i18n.T("users.update_ok"))
	assert.Contains(t, out, `#2 last_name="Weber"`)
	assert.NotContains(t, out, "Janet", "only submitted fields are echoed")
	u, err := remote.GetUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Weber", u.LastName)
	assert.Equal(t, "Janet", u.FirstName)

	out, _, err = runCLI(t, "users", "delete", "3")
	require.NoError(t, err)
	assert.Contains(t, out, i18n.T("users.delete_ok"))
	assert.Equal(t, 12, remote.Len())
}

func TestUsersUpdate_NothingToSend(t *testing.T) {
	setupCLI(t)
	mustLogin(t)

	_, _, err := runCLI(t, "users", "update", "2")
	require.Error(t, err)
	assert.Equal(t, i18n.T("users.nothing_to_update"), err.Error())
}

func TestUsersDelete_InvalidID(t *testing.T) {
	setupCLI(t)

	_, _, err := runCLI(t, "users", "delete", "abc")
	require.Error(t, err)
	assert.Equal(t, i18n.T("users.invalid_id", "abc"), err.Error())
}

func TestUsersDelete_Missing(t *testing.T) {
	setupCLI(t)
	mustLogin(t)

	_, errOut, err := runCLI(t, "users", "delete", "999")
	require.Error(t, err)
	assert.Contains(t, errOut, i18n.T("users.delete_error"))
}

func TestUsersExport(t *testing.T) {
	setupCLI(t)
	mustLogin(t)
	path := filepath.Join(t.TempDir(), "users.xlsx")

	out, _, err := runCLI(t, "users", "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, i18n.T("export.done", 6, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	users, err := export.ReadXLSX(f)
	require.NoError(t, err)
	assert.Len(t, users, 6)
}

func TestUsersExport_UnknownFormat(t *testing.T) {
	setupCLI(t)

	_, _, err := runCLI(t, "users", "export", "--out", filepath.Join(t.TempDir(), "users.csv"))
	require.Error(t, err)
}

func TestLogout(t *testing.T) {
	setupCLI(t)
	mustLogin(t)

	out, _, err := runCLI(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, i18n.T("logout.done"))

	_, _, err = runCLI(t, "users", "list")
	require.Error(t, err)
}

func TestRoot_StartsTUI(t *testing.T) {
	setupCLI(t)
	prev := runTUI
	t.Cleanup(func() { runTUI = prev })

	var got *app.Controller
	runTUI = func(ctx context.Context, ctrl *app.Controller, opts tui.Options) error {
		got = ctrl
		return nil
	}

	_, _, err := runCLI(t)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestConfigShow(t *testing.T) {
	setupCLI(t)

	out, _, err := runCLI(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "base_url:")
	assert.Contains(t, out, "127.0.0.1")
}

func TestConfigWrite(t *testing.T) {
	setupCLI(t)
	path := filepath.Join(t.TempDir(), "roster.yaml")

	_, _, err := runCLI(t, "config", "write", "--path", path)
	require.NoError(t, err)

	_, _, err = runCLI(t, "--config", path, "config", "show")
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
