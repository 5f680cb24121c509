package repository

// Step names recorded in reports.
const (
	StepCheckPath     = "check-path"
	StepInitLocal     = "init-local"
	StepReadme        = "readme"
	StepGitignore     = "gitignore"
	StepCommit        = "commit"
	StepAuthenticate  = "authenticate"
	StepCheckName     = "check-name"
	StepCreateRemote  = "create-remote"
	StepAddRemote     = "add-remote"
	StepPush          = "push"
	StepDeleteRemote  = "delete-remote"
	StepDeleteLocal   = "delete-local"
	StepRenameRemote  = "rename-remote"
	StepRenameLocal   = "rename-local"
	StepValidateToken = "validate-token"
)
