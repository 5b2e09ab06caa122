package auth

// LoginData is the view model for the login form. A failed attempt renders
// the form again with the email the user typed; the password is never
// written back into the page.
type LoginData struct {
	Email string
}

// SignupData is the view model for the signup form.
type SignupData struct {
	Email string
}
