// Package defaulthooks provides the default hook set of git-repo.
package defaulthooks

import (
	"github.com/lerenn/git-repo/pkg/hooks"
	"github.com/lerenn/git-repo/pkg/logger"
)

// NewDefaultHooksManager creates a hook manager tracing every operation to log.
func NewDefaultHooksManager(log logger.Logger) (hooks.HookManagerInterface, error) {
	hm := hooks.NewHookManager()

	if err := hooks.NewLoggingHook(log).Register(hm, hooks.AllOperations); err != nil {
		return nil, err
	}

	return hm, nil
}
