package template

import "errors"

// Error definitions for template package.
var (
	ErrTemplateNotFound    = errors.New("ignore template not found")
	ErrInvalidExtension    = errors.New("ignore template must have the " + Extension + " extension")
	ErrInvalidTemplateName = errors.New("invalid ignore template name")
	ErrSourceNotFound      = errors.New("ignore template source file not found")
)
