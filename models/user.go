package models

// Credentials are the login inputs sent to the remote store's auth endpoint.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
