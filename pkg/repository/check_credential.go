package repository

import (
	"context"
	"errors"

	"github.com/lerenn/git-repo/pkg/repository/consts"
)

// CheckCredential reports whether the remote accepts the token.
// A rejected token is not an error; any other failure is.
func (o *realOrchestrator) CheckCredential(ctx context.Context, token string) (bool, error) {
	var valid bool

	_, err := o.executeWithHooks(consts.CheckCredential, map[string]interface{}{}, func() (*Report, error) {
		report := newReport(consts.CheckCredential)
		if token == "" {
			report.fail(StepValidateToken, ErrNoCredential)
			return report, ErrNoCredential
		}

		_, err := o.connectWithToken(ctx, token, report)
		if errors.Is(err, ErrInvalidCredential) {
			report.info(StepValidateToken, "token is not valid")
			return report, nil
		}
		if err != nil {
			return report, err
		}

		valid = true
		report.info(StepValidateToken, "token is valid")
		return report, nil
	})

	return valid, err
}
