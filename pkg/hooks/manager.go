package hooks

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// HookManagerInterface defines the interface for hook management.
type HookManagerInterface interface {
	RegisterPreHook(operation string, hook PreHook) error
	RegisterPostHook(operation string, hook PostHook) error
	RegisterErrorHook(operation string, hook ErrorHook) error

	// ExecutePreHooks stops at the first failing hook.
	ExecutePreHooks(operation string, ctx *HookContext) error
	// ExecutePostHooks stops at the first failing hook.
	ExecutePostHooks(operation string, ctx *HookContext) error
	// ExecuteErrorHooks runs every hook and joins their failures.
	ExecuteErrorHooks(operation string, ctx *HookContext) error
}

// hookSet holds the hooks registered for one operation.
type hookSet struct {
	pre   []PreHook
	post  []PostHook
	onErr []ErrorHook
}

// HookManager keeps hooks per operation, plus the ones registered for AllOperations.
type HookManager struct {
	mu   sync.RWMutex
	sets map[string]*hookSet
}

// NewHookManager creates a new HookManager instance.
func NewHookManager() HookManagerInterface {
	return &HookManager{
		sets: make(map[string]*hookSet),
	}
}

// RegisterPreHook registers a pre-hook for an operation, or for AllOperations.
func (hm *HookManager) RegisterPreHook(operation string, hook PreHook) error {
	if hook == nil {
		return ErrNilHook
	}
	hm.register(operation, func(s *hookSet) { s.pre = append(s.pre, hook) })
	return nil
}

// RegisterPostHook registers a post-hook for an operation, or for AllOperations.
func (hm *HookManager) RegisterPostHook(operation string, hook PostHook) error {
	if hook == nil {
		return ErrNilHook
	}
	hm.register(operation, func(s *hookSet) { s.post = append(s.post, hook) })
	return nil
}

// RegisterErrorHook registers an error-hook for an operation, or for AllOperations.
func (hm *HookManager) RegisterErrorHook(operation string, hook ErrorHook) error {
	if hook == nil {
		return ErrNilHook
	}
	hm.register(operation, func(s *hookSet) { s.onErr = append(s.onErr, hook) })
	return nil
}

func (hm *HookManager) register(operation string, add func(*hookSet)) {
	hm.mu.Lock()
	defer hm.mu.Unlock()

	set, ok := hm.sets[operation]
	if !ok {
		set = &hookSet{}
		hm.sets[operation] = set
	}
	add(set)
}

// ExecutePreHooks executes the pre-hooks of an operation.
func (hm *HookManager) ExecutePreHooks(operation string, ctx *HookContext) error {
	for _, hook := range collect(hm, operation, func(s *hookSet) []PreHook { return s.pre }) {
		if err := hook.PreExecute(ctx); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPreHookFailed, hook.Name(), err)
		}
	}
	return nil
}

// ExecutePostHooks executes the post-hooks of an operation.
func (hm *HookManager) ExecutePostHooks(operation string, ctx *HookContext) error {
	for _, hook := range collect(hm, operation, func(s *hookSet) []PostHook { return s.post }) {
		if err := hook.PostExecute(ctx); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPostHook, hook.Name(), err)
		}
	}
	return nil
}

// ExecuteErrorHooks executes the error-hooks of an operation.
func (hm *HookManager) ExecuteErrorHooks(operation string, ctx *HookContext) error {
	var errs []error
	for _, hook := range collect(hm, operation, func(s *hookSet) []ErrorHook { return s.onErr }) {
		if err := hook.OnError(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrErrorHook, hook.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// collect returns the hooks of operation merged with the AllOperations ones, by priority.
func collect[T Hook](hm *HookManager, operation string, pick func(*hookSet) []T) []T {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	var hooks []T
	if set, ok := hm.sets[operation]; ok {
		hooks = append(hooks, pick(set)...)
	}
	if set, ok := hm.sets[AllOperations]; ok && operation != AllOperations {
		hooks = append(hooks, pick(set)...)
	}

	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority() < hooks[j].Priority()
	})
	return hooks
}
