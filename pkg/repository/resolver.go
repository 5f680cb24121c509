package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// NameResolver supplies a replacement when a remote repository name is taken.
type NameResolver interface {
	Resolve(ctx context.Context, taken string) (string, error)
}

// ResolverFunc adapts a function to NameResolver.
type ResolverFunc func(ctx context.Context, taken string) (string, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, taken string) (string, error) {
	return f(ctx, taken)
}

// SuffixResolver resolves conflicts without user input by bumping a numeric suffix:
// "app" becomes "app-1", "app-1" becomes "app-2".
type SuffixResolver struct{}

// Resolve returns the next suffixed candidate.
func (SuffixResolver) Resolve(ctx context.Context, taken string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if i := strings.LastIndex(taken, "-"); i > 0 {
		if n, err := strconv.Atoi(taken[i+1:]); err == nil && n > 0 {
			return fmt.Sprintf("%s-%d", taken[:i], n+1), nil
		}
	}
	return taken + "-1", nil
}
