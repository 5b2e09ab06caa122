package domain

// Credentials are the email and password pair collected by the login and
// signup forms. They are free text and never validated locally.
type Credentials struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}
