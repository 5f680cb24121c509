package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/git-repo/pkg/reponame"
	"github.com/lerenn/git-repo/pkg/repository/consts"
)

// Rename renames the remote repository and the local directory.
// The halves are independent: a failure of one never prevents the other,
// so names may diverge.
func (o *realOrchestrator) Rename(ctx context.Context, h *Handle, newName string) (*Report, error) {
	return o.executeWithHooks(consts.Rename, map[string]interface{}{
		"path":        h.Path,
		"remote_name": h.remoteIdentity(),
		"new_name":    newName,
	}, func() (*Report, error) {
		return o.rename(ctx, h, newName)
	})
}

func (o *realOrchestrator) rename(ctx context.Context, h *Handle, newName string) (*Report, error) {
	report := newReport(consts.Rename)

	newName = strings.TrimSpace(newName)
	published, err := reponame.Sanitize(newName)
	if err == nil && strings.ContainsAny(newName, `/\`) {
		err = errors.New("path separators are not allowed")
	}
	if err != nil {
		err = fmt.Errorf("%w: %q: %w", ErrInvalidName, newName, err)
		report.fail(StepRenameLocal, err)
		return report, err
	}

	if _, ok := h.token(); !ok {
		o.logger().Errorf("Cannot rename the repository: no access token.")
		report.fail(StepRenameRemote, ErrNoCredential)
		return report, ErrNoCredential
	}

	remoteErr := o.renameRemote(ctx, h, newName, published, report)
	localErr := o.renameLocal(h, newName, report)
	return report, errors.Join(remoteErr, localErr)
}

// renameRemote asks for newName; GitHub stores it as published.
func (o *realOrchestrator) renameRemote(
	ctx context.Context, h *Handle, newName, published string, report *Report,
) error {
	session, err := o.connect(ctx, h, report)
	if err != nil {
		return err
	}

	name := h.remoteIdentity()
	o.logger().Infof("Trying to rename repository on remote...")

	err = session.forge.RenameRepository(ctx, session.account, name, newName)
	if err == nil {
		h.RemoteName = published
		o.logger().Infof("Repository has been successfully renamed on remote.")
		report.info(StepRenameRemote, fmt.Sprintf("renamed %s to %s", name, newName))
		return nil
	}

	err = remoteError(err)
	report.fail(StepRenameRemote, err)
	if errors.Is(err, ErrRemoteNotFound) {
		o.logger().Errorf("Cannot rename the repository. It doesn't exist on remote.")
		return nil
	}
	o.logger().Errorf("Cannot rename the repository on remote: %v", err)
	return err
}

func (o *realOrchestrator) renameLocal(h *Handle, newName string, report *Report) error {
	exists, err := o.deps.FS.Exists(h.Path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrUnexpectedLocal, err)
		report.fail(StepRenameLocal, err)
		return err
	}
	if !exists {
		o.logger().Errorf("Cannot rename the repository. It doesn't exist locally.")
		report.fail(StepRenameLocal, fmt.Errorf("%w: %s", ErrLocalNotFound, h.Path))
		return nil
	}

	newPath := filepath.Join(filepath.Dir(h.Path), newName)
	if err := o.runLocalStep(report, StepRenameLocal, "Renaming the repository locally...",
		"Repository has been successfully renamed locally.", func() error {
			return o.deps.FS.Rename(h.Path, newPath)
		}); err != nil {
		return err
	}

	h.Path = newPath
	h.LocalName = newName
	return nil
}
