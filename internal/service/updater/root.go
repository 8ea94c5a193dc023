package updater

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/elpinal/rainy/internal/logger"
)

const (
	// RootDirName is the state directory created under the home directory.
	RootDirName = ".rain"
	// BinDirName holds binaries installed by stack.
	BinDirName = "bin"
	// RepoDirName holds the working copies.
	RepoDirName = "repo"

	rootDirMode fs.FileMode = 0o755
)

// LookupEnvFunc has the signature of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// HomeEnvVar returns the platform variable holding the home directory.
func HomeEnvVar() string {
	if runtime.GOOS == "windows" {
		return "USERPROFILE"
	}

	return "HOME"
}

// homeDirectory reads the home variable at the point of use.
func homeDirectory(lookupEnv LookupEnvFunc) (string, error) {
	home, ok := lookupEnv(HomeEnvVar())
	if !ok || home == "" {
		return "", ErrMissingHomeDirectory
	}

	return home, nil
}

// RootPath returns home/.rain without touching the filesystem.
func RootPath(home string) string {
	return filepath.Join(home, RootDirName)
}

// LocateRoot returns home/.rain, creating it and any missing parents.
func LocateRoot(ctx context.Context, home string) (string, error) {
	path := RootPath(home)

	info, err := os.Stat(path)

	switch {
	case err == nil:
		if !info.IsDir() {
			return "", &FilesystemError{Op: "use root", Path: path, Err: errNotDirectory}
		}

		return path, nil
	case errors.Is(err, fs.ErrNotExist):
		logger.DebugKV(ctx, "Root does not exist, creating it", "path", path)

		if err = os.MkdirAll(path, rootDirMode); err != nil {
			return "", &FilesystemError{Op: "mkdir", Path: path, Err: err}
		}

		return path, nil
	default:
		return "", &FilesystemError{Op: "stat", Path: path, Err: err}
	}
}
