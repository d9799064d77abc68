package types

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	// Stored verbatim; never serialized in API responses.
	Password string `json:"-"`
}
