// Package hooks runs callbacks around repository lifecycle operations.
package hooks

// AllOperations registers a hook for every operation.
const AllOperations = "*"

// HookContext is shared by the hooks of a single operation run.
type HookContext struct {
	Operation  string
	Parameters map[string]interface{}
	// Results holds "report" once the operation returned, and "success" when it did not fail.
	Results map[string]interface{}
	Error   error
}

// Hook defines the interface for all hooks.
type Hook interface {
	Name() string
	// Priority orders hooks of the same stage; lower runs first.
	Priority() int
}

// PreHook runs before an operation; an error cancels it.
type PreHook interface {
	Hook
	PreExecute(ctx *HookContext) error
}

// PostHook runs after an operation succeeded.
type PostHook interface {
	Hook
	PostExecute(ctx *HookContext) error
}

// ErrorHook runs after an operation failed.
type ErrorHook interface {
	Hook
	OnError(ctx *HookContext) error
}
