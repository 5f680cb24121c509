package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/git-repo/pkg/repository/consts"
)

// Delete deletes the remote repository then the local one.
// Both halves are attempted; their fatal errors are joined.
func (o *realOrchestrator) Delete(ctx context.Context, h *Handle) (*Report, error) {
	return o.executeWithHooks(consts.Delete, map[string]interface{}{
		"path":        h.Path,
		"remote_name": h.remoteIdentity(),
	}, func() (*Report, error) {
		report := newReport(consts.Delete)
		remoteErr := o.deleteRemote(ctx, h, report)
		localErr := o.deleteLocal(h, report)
		return report, errors.Join(remoteErr, localErr)
	})
}

// DeleteRemote deletes the remote repository only.
func (o *realOrchestrator) DeleteRemote(ctx context.Context, h *Handle) (*Report, error) {
	return o.executeWithHooks(consts.DeleteRemote, map[string]interface{}{
		"remote_name": h.remoteIdentity(),
	}, func() (*Report, error) {
		report := newReport(consts.DeleteRemote)
		return report, o.deleteRemote(ctx, h, report)
	})
}

// DeleteLocal deletes the local working copy only.
func (o *realOrchestrator) DeleteLocal(_ context.Context, h *Handle) (*Report, error) {
	return o.executeWithHooks(consts.DeleteLocal, map[string]interface{}{
		"path": h.Path,
	}, func() (*Report, error) {
		report := newReport(consts.DeleteLocal)
		return report, o.deleteLocal(h, report)
	})
}

// deleteRemote returns nil when the remote repository is already gone.
func (o *realOrchestrator) deleteRemote(ctx context.Context, h *Handle, report *Report) error {
	session, err := o.connect(ctx, h, report)
	if err != nil {
		if errors.Is(err, ErrNoCredential) {
			o.logger().Errorf("Cannot remove the repository on remote: no access token.")
		}
		return err
	}

	name := h.remoteIdentity()
	o.logger().Infof("Trying to delete repository %s on remote...", name)

	err = session.forge.DeleteRepository(ctx, session.account, name)
	if err == nil {
		o.logger().Infof("Repository has been successfully deleted on remote.")
		report.info(StepDeleteRemote, fmt.Sprintf("deleted %s", name))
		return nil
	}

	err = remoteError(err)
	report.fail(StepDeleteRemote, err)
	if errors.Is(err, ErrRemoteNotFound) {
		o.logger().Errorf("Cannot remove the repository. It doesn't exist on remote.")
		return nil
	}
	o.logger().Errorf("Cannot remove the repository on remote: %v", err)
	return err
}

// deleteLocal returns nil when the working copy is already gone.
func (o *realOrchestrator) deleteLocal(h *Handle, report *Report) error {
	exists, err := o.deps.FS.Exists(h.Path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrUnexpectedLocal, err)
		report.fail(StepDeleteLocal, err)
		return err
	}
	if !exists {
		o.logger().Errorf("Cannot remove the repository. It doesn't exist locally.")
		report.fail(StepDeleteLocal, fmt.Errorf("%w: %s", ErrLocalNotFound, h.Path))
		return nil
	}

	return o.runLocalStep(report, StepDeleteLocal, "Removing the repository locally...",
		"Repository has been successfully deleted locally.", func() error {
			return o.deps.FS.RemoveAll(h.Path)
		})
}
