package updater

import (
	"context"
	"os"
	"runtime"

	"github.com/mitchellh/go-ps"

	"github.com/elpinal/rainy/internal/logger"
)

const baseExecutable = "rainy"

// executableName returns the rainy binary name for this platform.
func executableName() string {
	if runtime.GOOS == "windows" {
		return baseExecutable + ".exe"
	}

	return baseExecutable
}

// otherInstances returns the PIDs of other processes named like rainy.
func otherInstances() ([]int, error) {
	processList, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	var (
		name   = executableName()
		selfID = os.Getpid()
		pids   []int
	)

	for _, process := range processList {
		if process.Pid() == selfID || process.Executable() != name {
			continue
		}

		pids = append(pids, process.Pid())
	}

	return pids, nil
}

// warnIfAlreadyRunning logs a warning when another rainy is running.
// The update continues: runs are not locked against each other.
func warnIfAlreadyRunning(ctx context.Context) {
	pids, err := otherInstances()
	if err != nil {
		logger.DebugKV(ctx, "Unable to list processes", "error", err)
		return
	}

	if len(pids) > 0 {
		logger.WarnKV(ctx, "Another rainy process is running, concurrent updates of the same root are unsupported",
			"pids", pids)
	}
}
