// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	Create          = "Create"
	Delete          = "Delete"
	DeleteRemote    = "DeleteRemote"
	DeleteLocal     = "DeleteLocal"
	Rename          = "Rename"
	CheckCredential = "CheckCredential"
)

