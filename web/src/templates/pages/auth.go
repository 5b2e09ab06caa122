package pages

import (
	"github.com/nfrund/marketplace/internal/view/dto/auth"
	"github.com/nfrund/marketplace/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func Login(data auth.LoginData) cmp.Node {
	return g.Section(
		g.H2(cmp.Text("Login")),
		components.CredentialsForm("/login", "Login", data.Email),
	)
}

func Signup(data auth.SignupData) cmp.Node {
	return g.Section(
		g.H2(cmp.Text("Signup")),
		components.CredentialsForm("/signup", "Signup", data.Email),
	)
}
