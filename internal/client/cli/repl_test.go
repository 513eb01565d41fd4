package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	signedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error { s.calls = append(s.calls, name); return nil }

func (s *stubExec) isSignedIn() bool                        { return s.signedIn }
func (s *stubExec) SignIn(ctx context.Context) error        { return s.record("signin") }
func (s *stubExec) SignOut(ctx context.Context) error       { return s.record("signout") }
func (s *stubExec) List(ctx context.Context) error          { return s.record("list") }
func (s *stubExec) RefreshList(ctx context.Context) error   { return s.record("refresh") }
func (s *stubExec) ViewItem(ctx context.Context) error      { return s.record("view") }
func (s *stubExec) NewItem(ctx context.Context) error       { return s.record("new") }
func (s *stubExec) EditItem(ctx context.Context) error      { return s.record("edit") }
func (s *stubExec) SetFormField(ctx context.Context) error  { return s.record("set") }
func (s *stubExec) ShowForm(ctx context.Context) error      { return s.record("form") }
func (s *stubExec) Submit(ctx context.Context) error        { return s.record("submit") }
func (s *stubExec) CancelEdit(ctx context.Context) error    { return s.record("cancel") }
func (s *stubExec) DeleteItem(ctx context.Context) error    { return s.record("delete") }

func runScript(t *testing.T, exec *stubExec, lines ...string) []string {
	t.Helper()

	var printed []string
	oldPrintln := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	defer func() { printlnFn = oldPrintln }()

	scanner := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "(test)" }, scanner)
	return printed
}

func TestREPLDispatchesCommands(t *testing.T) {
	exec := &stubExec{signedIn: true}
	runScript(t, exec,
		"list",
		"l",
		"view",
		"new",
		"set",
		"form",
		"submit",
		"cancel",
		"delete",
		"refresh",
		"logout",
		"exit",
	)
	assert.Equal(t, []string{
		"list", "list", "view", "new", "set", "form",
		"submit", "cancel", "delete", "refresh", "signout",
	}, exec.calls)
}

func TestREPLHelpDependsOnSession(t *testing.T) {
	guest := &stubExec{}
	printed := runScript(t, guest, "help", "exit")
	require.NotEmpty(t, printed)
	joined := strings.Join(printed, "\n")
	assert.Contains(t, joined, "login")
	assert.NotContains(t, joined, "delete")

	user := &stubExec{signedIn: true}
	printed = runScript(t, user, "help", "exit")
	joined = strings.Join(printed, "\n")
	assert.Contains(t, joined, "delete")
	assert.Contains(t, joined, "logout")
}

func TestREPLUnknownAndBlankLines(t *testing.T) {
	exec := &stubExec{}
	printed := runScript(t, exec, "", "   ", "fly", "quit")
	assert.Empty(t, exec.calls)
	assert.Contains(t, strings.Join(printed, "\n"), "Unknown command:")
}

func TestREPLStopsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "list")
	assert.Equal(t, []string{"list"}, exec.calls)
}
