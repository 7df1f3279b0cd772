package lock

import (
	"errors"
	"os"
	"strconv"
	"testing"

	ps "github.com/mitchellh/go-ps"
)

type mockProcess struct {
	pid int
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return "habits" }

func withProcesses(t *testing.T, self int, alive ...int) {
	t.Helper()
	oldFind, oldPid := findProcessFunc, getpidFunc
	t.Cleanup(func() {
		findProcessFunc, getpidFunc = oldFind, oldPid
	})

	running := map[int]bool{self: true}
	for _, pid := range alive {
		running[pid] = true
	}
	getpidFunc = func() int { return self }
	findProcessFunc = func(pid int) (ps.Process, error) {
		if running[pid] {
			return &mockProcess{pid: pid}, nil
		}
		return nil, nil
	}
}

func TestAcquireAndRelease(t *testing.T) {
	withProcesses(t, 100)
	dir := t.TempDir()

	l, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}
	content, _ := os.ReadFile(Path(dir))
	if string(content) != "100\n" {
		t.Errorf("lockfile content = %q", content)
	}

	if err := l.Release(); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	if _, err := os.Stat(Path(dir)); !os.IsNotExist(err) {
		t.Error("lockfile still present after Release()")
	}
}

func TestAcquire_HeldByLiveProcess(t *testing.T) {
	withProcesses(t, 100, 200)
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte("200\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Acquire(dir); !errors.Is(err, ErrLocked) {
		t.Errorf("Acquire() error = %v, want ErrLocked", err)
	}

	pid, alive := Holder(dir)
	if pid != 200 || !alive {
		t.Errorf("Holder() = %d, %v", pid, alive)
	}
}

func TestAcquire_ReplacesStaleLock(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "dead pid", content: "300\n"},
		{name: "garbage", content: "not-a-pid"},
		{name: "empty", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withProcesses(t, 100)
			dir := t.TempDir()
			if err := os.WriteFile(Path(dir), []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			l, err := Acquire(dir)
			if err != nil {
				t.Fatalf("Acquire() failed: %v", err)
			}
			defer l.Release()

			content, _ := os.ReadFile(Path(dir))
			if string(content) != strconv.Itoa(100)+"\n" {
				t.Errorf("lockfile content = %q", content)
			}
		})
	}
}

func TestRelease_LeavesForeignLock(t *testing.T) {
	withProcesses(t, 100)
	dir := t.TempDir()

	l, err := Acquire(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(dir), []byte("555\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := l.Release(); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	if _, err := os.Stat(Path(dir)); err != nil {
		t.Error("Release() removed a lockfile owned by another process")
	}
}
