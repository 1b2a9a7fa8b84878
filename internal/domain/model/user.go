package model

// User is a registered contest participant. The nickname doubles as the
// GitHub login and is unique across all users.
type User struct {
	ID       string `json:"-"`
	Nickname string `json:"nickname"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
}
