package updater

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/go-git/go-git/v5"

	"github.com/elpinal/rainy/internal/config"
	"github.com/elpinal/rainy/internal/logger"
	"github.com/elpinal/rainy/internal/process"
)

const (
	// RainML is the name of the compiler repository.
	RainML = "rain-ml"
	// RainVM is the name of the virtual machine repository.
	RainVM = "rain-vm"

	// RainMLURIEnvVar overrides the source of rain-ml when set and non-empty.
	RainMLURIEnvVar = "RAINY_RAIN_ML_URI"
	// RainVMURIEnvVar overrides the source of rain-vm when set and non-empty.
	RainVMURIEnvVar = "RAINY_RAIN_VM_URI"

	shortRevisionLength = 12
)

// repository is one companion project kept in sync.
type repository struct {
	// name is also the directory name under root/repo.
	name string
	// envVar overrides the source URI.
	envVar string
	// fallback is used when the override is unset or empty.
	fallback string
}

// companionRepositories returns rain-ml and rain-vm, in sync order.
func companionRepositories(cfg *config.Config) (repository, repository) {
	ml := repository{
		name:     RainML,
		envVar:   RainMLURIEnvVar,
		fallback: cfg.Repositories.RainML,
	}

	vm := repository{
		name:     RainVM,
		envVar:   RainVMURIEnvVar,
		fallback: cfg.Repositories.RainVM,
	}

	return ml, vm
}

// uri resolves the source at the point of use.
func (r repository) uri(lookupEnv LookupEnvFunc) string {
	if value, ok := lookupEnv(r.envVar); ok && value != "" {
		return value
	}

	return r.fallback
}

// syncRepository clones uri into dest, or pulls when dest already exists.
func (u *updater) syncRepository(ctx context.Context, repo repository, dest string) error {
	ctx = logger.WithKV(ctx, "repository", repo.name)
	uri := repo.uri(u.lookupEnv)

	logger.DebugKV(ctx, "Connecting", "uri", uri)

	exists, err := pathExists(dest)
	if err != nil {
		return err
	}

	command := process.Command{
		Tool:       config.ToolGit,
		Executable: u.cfg.Tools.Git,
	}

	if exists {
		logger.Debug(ctx, "Executing `git pull`")

		command.Args = []string{"pull"}
		command.Dir = dest
	} else {
		logger.Debug(ctx, "Executing `git clone`")

		command.Args = []string{"clone", uri, dest}
	}

	if err = process.Check(ctx, u.runner, command); err != nil {
		return err
	}

	u.reportRevision(ctx, dest)

	return nil
}

// reportRevision logs the checked-out commit. It never fails the sync.
func (u *updater) reportRevision(ctx context.Context, dest string) {
	revision, err := headRevision(dest)
	if err != nil {
		logger.WarnKV(ctx, "Unable to read the synced revision", "path", dest, "error", err)
		return
	}

	logger.InfoKV(ctx, "Repository synced", "path", dest, "revision", revision)
}

// headRevision returns the abbreviated HEAD commit of the working copy at path.
func headRevision(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", err
	}

	revision := head.Hash().String()
	if len(revision) > shortRevisionLength {
		revision = revision[:shortRevisionLength]
	}

	return revision, nil
}

// pathExists reports whether path exists. Errors other than "not exist" are returned.
func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, &FilesystemError{Op: "stat", Path: path, Err: err}
	}
}
