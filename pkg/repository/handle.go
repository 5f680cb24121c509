package repository

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/git-repo/pkg/git"
)

// Handle describes one repository on both sides.
// A handle is built per invocation and must not be shared between concurrent operations.
type Handle struct {
	// Path is the absolute path of the working copy.
	Path string
	// LocalName is the directory name, or the explicit name when a separate folder is given.
	LocalName string
	// RemoteName is the name on the remote; empty when unknown.
	RemoteName string
	// Credential gates every remote operation.
	Credential Credential
}

// NewHandleParams contains parameters for NewHandle.
type NewHandleParams struct {
	// Name is the repository name, or its path when Folder is empty.
	Name string
	// Folder is an optional local folder holding the working copy.
	Folder string
	// Credential defaults to LocalOnly.
	Credential Credential
}

// NewHandle builds a handle, discovering RemoteName from the origin remote of an existing working copy.
func NewHandle(g git.Git, params NewHandleParams) (*Handle, error) {
	if params.Name == "" {
		return nil, ErrEmptyName
	}

	target := params.Name
	if params.Folder != "" {
		target = params.Folder
	}
	path, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", target, err)
	}

	localName := filepath.Base(path)
	if params.Folder != "" {
		localName = params.Name
	}

	credential := params.Credential
	if credential == nil {
		credential = LocalOnly{}
	}

	return &Handle{
		Path:       path,
		LocalName:  localName,
		RemoteName: discoverRemoteName(g, path),
		Credential: credential,
	}, nil
}

// discoverRemoteName reads the origin URL of an existing working copy.
func discoverRemoteName(g git.Git, path string) string {
	if g == nil {
		return ""
	}
	isRepo, err := g.IsRepository(path)
	if err != nil || !isRepo {
		return ""
	}
	// A working copy without origin has no known remote name.
	url, err := g.GetRemoteURL(path, git.DefaultRemote)
	if err != nil {
		return ""
	}
	return git.RepositoryNameFromURL(url)
}

// remoteIdentity is the name used to address the remote repository.
func (h *Handle) remoteIdentity() string {
	if h.RemoteName != "" {
		return h.RemoteName
	}
	return h.LocalName
}

func (h *Handle) token() (string, bool) {
	auth, ok := h.Credential.(Authenticated)
	if !ok || auth.Token == "" {
		return "", false
	}
	return auth.Token, true
}
