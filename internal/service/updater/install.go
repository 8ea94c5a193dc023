package updater

import (
	"context"
	"fmt"

	"github.com/elpinal/rainy/internal/config"
	"github.com/elpinal/rainy/internal/logger"
	"github.com/elpinal/rainy/internal/process"
)

// BuildTool selects how a project is built and installed.
type BuildTool int

const (
	// Stack installs a Haskell project with `stack --local-bin-path DEST install`.
	Stack BuildTool = iota + 1
	// Cargo installs a Rust project with `cargo install --path . --force --root DEST`.
	Cargo
)

func (t BuildTool) String() string {
	switch t {
	case Stack:
		return config.ToolStack
	case Cargo:
		return config.ToolCargo
	default:
		return fmt.Sprintf("BuildTool(%d)", int(t))
	}
}

// installArgs returns the arguments that install into dest.
func (t BuildTool) installArgs(dest string) ([]string, error) {
	switch t {
	case Stack:
		return []string{"--local-bin-path", dest, "install"}, nil
	case Cargo:
		return []string{"install", "--path", ".", "--force", "--root", dest}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownBuildTool, t)
	}
}

// executable returns the configured program for t.
func (t BuildTool) executable(tools config.Tools) string {
	switch t {
	case Stack:
		return tools.Stack
	case Cargo:
		return tools.Cargo
	default:
		return ""
	}
}

// install builds the project at source and places its binaries under dest.
func (u *updater) install(ctx context.Context, tool BuildTool, source, dest string) error {
	args, err := tool.installArgs(dest)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Installing", "tool", tool, "source", source, "destination", dest)

	return process.Check(ctx, u.runner, process.Command{
		Tool:       tool.String(),
		Executable: tool.executable(u.cfg.Tools),
		Args:       args,
		Dir:        source,
	})
}
