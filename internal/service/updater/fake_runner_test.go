package updater

import (
	"context"
	"os"

	"github.com/elpinal/rainy/internal/process"
)

// outcome is the scripted result of one command.
type outcome struct {
	status int
	err    error
}

// fakeRunner records every command and returns scripted outcomes.
// A successful `git clone` creates its destination, like the real tool.
type fakeRunner struct {
	calls    []process.Command
	outcomes map[string]outcome
	// afterRun, when set, is called after every recorded command.
	afterRun func(cmd process.Command)
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{outcomes: make(map[string]outcome)}
}

// fail scripts the outcome for key: "git clone", "git pull", "stack" or "cargo".
func (f *fakeRunner) fail(key string, status int, err error) *fakeRunner {
	f.outcomes[key] = outcome{status: status, err: err}

	return f
}

func (f *fakeRunner) Run(_ context.Context, cmd process.Command) (int, error) {
	f.calls = append(f.calls, cmd)

	if f.afterRun != nil {
		defer f.afterRun(cmd)
	}

	result := f.outcomes[commandKey(cmd)]
	if result.err != nil || result.status != 0 {
		return result.status, result.err
	}

	if cmd.Tool == "git" && len(cmd.Args) == 3 && cmd.Args[0] == "clone" {
		if err := os.MkdirAll(cmd.Args[2], 0o755); err != nil {
			return 0, err
		}
	}

	return 0, nil
}

func commandKey(cmd process.Command) string {
	if cmd.Tool == "git" && len(cmd.Args) > 0 {
		return "git " + cmd.Args[0]
	}

	return cmd.Tool
}

// env is an in-memory environment for LookupEnvFunc.
type env map[string]string

func (e env) lookup(key string) (string, bool) {
	value, ok := e[key]

	return value, ok
}

// homeEnv returns an environment whose home points at dir.
func homeEnv(dir string) env {
	return env{HomeEnvVar(): dir}
}
