package git

import "strings"

// RepositoryNameFromURL extracts the bare repository name from a remote URL.
// It handles https://host/user/repo.git, git@host:user/repo.git and local paths.
func RepositoryNameFromURL(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimRight(url, "/")
	url = strings.TrimSuffix(url, ".git")

	if idx := strings.LastIndexAny(url, `/:\`); idx >= 0 {
		url = url[idx+1:]
	}
	return url
}
