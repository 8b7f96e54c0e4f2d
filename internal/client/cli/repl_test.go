package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Events(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "events")
	f.args = args
	return nil
}
func (f *fakeExec) Filtered(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "filtered")
	return nil
}
func (f *fakeExec) MyEvents(ctx context.Context) error {
	f.calls = append(f.calls, "my")
	return nil
}
func (f *fakeExec) AddEvent(ctx context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}
func (f *fakeExec) UpdateEvent(ctx context.Context) error {
	f.calls = append(f.calls, "update")
	return nil
}
func (f *fakeExec) DeleteEvent(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"events 2 5",
		"filtered",
		"my",
		"add",
		"update",
		"delete",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "events", "filtered", "my", "add", "update", "delete"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}

	if len(exec.args) != 2 || exec.args[0] != "2" || exec.args[1] != "5" {
		t.Fatalf("events args mismatch: %v", exec.args)
	}
}

func TestRunREPL_BlankLinesAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
