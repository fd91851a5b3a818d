// Package github holds the upstream profile projection.
package github

// Profile is the subset of the GitHub user payload this system exposes. It is
// fetched fresh on every request and never persisted.
type Profile struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
