package xpum

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rileyhilliard/xpumon/internal/errors"
	"github.com/rileyhilliard/xpumon/internal/util"
)

// AutoCommand is the sentinel that triggers fallback resolution.
const AutoCommand = "auto"

// commandFallbacks are tried in priority order when resolving "auto".
var commandFallbacks = []string{"xpumcli", "xpu-smi"}

// ResolveCommand turns a requested binary name into an absolute executable
// path. The "auto" sentinel tries each known fallback in order; absolute
// paths must exist and be executable; bare names resolve via $PATH.
func ResolveCommand(binary string) (string, error) {
	candidates := []string{binary}
	if binary == AutoCommand {
		candidates = commandFallbacks
	}

	var tried []string
	for _, candidate := range candidates {
		if filepath.IsAbs(candidate) {
			if isExecutable(candidate) {
				return candidate, nil
			}
			tried = append(tried, candidate)
			continue
		}
		if resolved, err := exec.LookPath(candidate); err == nil {
			return resolved, nil
		}
		tried = append(tried, candidate)
	}

	return "", errors.New(errors.ErrResolve,
		fmt.Sprintf("Couldn't find a metrics command (tried: %s)", util.JoinOrNone(tried)),
		"Point --cmd or XPUM_MONITOR_CMD at the full path to xpumcli or xpu-smi.")
}

// isExecutable reports whether path is an existing regular file with an
// execute bit set.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
