package models

// APIResponse is the JSON envelope of every API response.
//
// Successful calls fill Result; failed calls fill Message and, for
// validation failures, Result with per-field details.
type APIResponse struct {
	Message string `json:"message,omitempty"`
	Result  any    `json:"result,omitempty"`
}

// ExistsResponse answers yes/no questions such as
// "does this user still hold assets".
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// UsernameResponse carries a generated username preview.
type UsernameResponse struct {
	Username string `json:"username"`
}

// VersionResponse is served by the version endpoint.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}
