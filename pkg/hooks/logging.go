package hooks

import (
	"github.com/lerenn/git-repo/pkg/logger"
)

// LoggingHook traces operations at debug level.
type LoggingHook struct {
	logger logger.Logger
}

// NewLoggingHook creates a new LoggingHook instance.
func NewLoggingHook(logger logger.Logger) *LoggingHook {
	return &LoggingHook{
		logger: logger,
	}
}

// Name returns the hook name.
func (h *LoggingHook) Name() string {
	return "logging"
}

// Priority returns 100 so that tracing happens after user hooks.
func (h *LoggingHook) Priority() int {
	return 100
}

// PreExecute logs the operation and its parameters.
func (h *LoggingHook) PreExecute(ctx *HookContext) error {
	h.logger.Logf("%s started with %v", ctx.Operation, ctx.Parameters)
	return nil
}

// PostExecute logs the report of a successful operation.
func (h *LoggingHook) PostExecute(ctx *HookContext) error {
	h.logger.Logf("%s succeeded: %v", ctx.Operation, ctx.Results["report"])
	return nil
}

// OnError logs the failure and the report of the steps that ran.
func (h *LoggingHook) OnError(ctx *HookContext) error {
	h.logger.Logf("%s failed: %v: %v", ctx.Operation, ctx.Error, ctx.Results["report"])
	return nil
}

// Register registers the hook at every stage of operation.
func (h *LoggingHook) Register(hm HookManagerInterface, operation string) error {
	if err := hm.RegisterPreHook(operation, h); err != nil {
		return err
	}
	if err := hm.RegisterPostHook(operation, h); err != nil {
		return err
	}
	return hm.RegisterErrorHook(operation, h)
}
