package exec

import (
	"context"
	"errors"
	"testing"
)

func TestRealExecutor_Run(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()

	stdout, stderr, err := executor.Run(ctx, "", "echo", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "hello\n" {
		t.Errorf("expected 'hello\\n', got %q", string(stdout))
	}
	if len(stderr) != 0 {
		t.Errorf("expected empty stderr, got %q", string(stderr))
	}
}

func TestRealExecutor_Run_Stderr(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()

	stdout, stderr, err := executor.Run(ctx, "", "sh", "-c", "echo oops >&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stdout) != 0 {
		t.Errorf("expected empty stdout, got %q", string(stdout))
	}
	if string(stderr) != "oops\n" {
		t.Errorf("expected 'oops\\n' on stderr, got %q", string(stderr))
	}
}

func TestRealExecutor_Run_WorkingDir(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()
	dir := t.TempDir()

	stdout, _, err := executor.Run(ctx, dir, "pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// pwd may print a resolved symlink path; only check it's non-empty
	if len(stdout) == 0 {
		t.Error("expected pwd output")
	}
}

func TestMockExecutor_Run(t *testing.T) {
	mock := NewMockExecutor()

	mock.AddExactMatch("sh", []string{"-c", "ls"}, MockResponse{
		Stdout: []byte("a.txt\nb.txt"),
	})

	ctx := context.Background()
	stdout, stderr, err := mock.Run(ctx, "/some/dir", "sh", "-c", "ls")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "a.txt\nb.txt" {
		t.Errorf("expected 'a.txt\\nb.txt', got %q", string(stdout))
	}
	if len(stderr) != 0 {
		t.Errorf("expected empty stderr, got %q", string(stderr))
	}

	calls := mock.GetCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Dir != "/some/dir" || calls[0].Name != "sh" {
		t.Errorf("unexpected call recorded: %+v", calls[0])
	}
}

func TestMockExecutor_Error(t *testing.T) {
	mock := NewMockExecutor()
	wantErr := errors.New("command failed")

	mock.AddExactMatch("sh", []string{"-c", "boom"}, MockResponse{
		Stderr: []byte("kaboom"),
		Err:    wantErr,
	})

	_, stderr, err := mock.Run(context.Background(), "", "sh", "-c", "boom")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if string(stderr) != "kaboom" {
		t.Errorf("expected stderr 'kaboom', got %q", string(stderr))
	}
}

func TestMockExecutor_Unmatched(t *testing.T) {
	mock := NewMockExecutor()

	stdout, stderr, err := mock.Run(context.Background(), "", "unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stdout) != 0 || len(stderr) != 0 {
		t.Error("unmatched command should return empty success")
	}
}

func TestMockExecutor_RuleOrder(t *testing.T) {
	mock := NewMockExecutor()

	mock.AddRule(func(dir, name string, args []string) bool { return true }, MockResponse{Stdout: []byte("first")})
	mock.AddRule(func(dir, name string, args []string) bool { return true }, MockResponse{Stdout: []byte("second")})

	stdout, _, err := mock.Run(context.Background(), "", "anything")
	if err != nil {
		t.Fatal(err)
	}
	if string(stdout) != "first" {
		t.Errorf("first registered rule should win, got %q", string(stdout))
	}
}
