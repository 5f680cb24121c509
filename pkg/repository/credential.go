package repository

// Credential is the authentication state of a handle: LocalOnly or Authenticated.
type Credential interface {
	isCredential()
}

// LocalOnly is a handle without remote access.
type LocalOnly struct{}

func (LocalOnly) isCredential() {}

// Authenticated holds the access token used for remote operations.
type Authenticated struct {
	Token string
}

func (Authenticated) isCredential() {}

// String hides the token.
func (a Authenticated) String() string {
	return "Authenticated{Token: ***}"
}

// CredentialFromToken returns LocalOnly for an empty token, Authenticated otherwise.
func CredentialFromToken(token string) Credential {
	if token == "" {
		return LocalOnly{}
	}
	return Authenticated{Token: token}
}
