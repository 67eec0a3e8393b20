package models

// LoginResponse is the body returned on successful login: the authenticated
// identity (password hash stripped by User's JSON contract) together with the
// freshly issued bearer token.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// MessageResponse is the generic error body returned by the API.
// Login failures deliberately use one opaque message for every failure
// cause so that the response never reveals whether the username existed.
type MessageResponse struct {
	Message string `json:"message"`
}
