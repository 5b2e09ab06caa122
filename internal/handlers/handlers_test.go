package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/marketplace/internal/api"
	"github.com/nfrund/marketplace/internal/domain"
	"github.com/nfrund/marketplace/internal/handlers"
	"github.com/nfrund/marketplace/internal/middleware"
	"github.com/nfrund/marketplace/internal/rendering"
	appsession "github.com/nfrund/marketplace/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

type createCall struct {
	session domain.Session
	form    domain.ProductForm
}

type fakeAPI struct {
	mu sync.Mutex

	loginResult api.LoginResult
	loginErr    error
	logins      []domain.Credentials

	signupErr error
	signups   []domain.Credentials

	products []domain.Product
	listErr  error

	created   domain.Product
	createErr error
	creates   []createCall
}

func (f *fakeAPI) Login(_ context.Context, creds domain.Credentials) (api.LoginResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, creds)
	return f.loginResult, f.loginErr
}

func (f *fakeAPI) Signup(_ context.Context, creds domain.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signups = append(f.signups, creds)
	return f.signupErr
}

func (f *fakeAPI) ListProducts(context.Context) ([]domain.Product, error) {
	return f.products, f.listErr
}

func (f *fakeAPI) CreateProduct(_ context.Context, sess domain.Session, form domain.ProductForm) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, createCall{session: sess, form: form})
	return f.created, f.createErr
}

type recordingEvents struct {
	logins   []string
	signups  []string
	products []domain.Product
}

func (r *recordingEvents) LoginSucceeded(_ context.Context, email string) {
	r.logins = append(r.logins, email)
}

func (r *recordingEvents) SignupCompleted(_ context.Context, email string) {
	r.signups = append(r.signups, email)
}

func (r *recordingEvents) ProductCreated(_ context.Context, p domain.Product) {
	r.products = append(r.products, p)
}

// setupTest wires the handlers the way the server does, plus a probe route
// that echoes the stored token.
func setupTest(t *testing.T, fake *fakeAPI) (*echo.Echo, *recordingEvents) {
	t.Helper()

	e := echo.New()
	renderer := rendering.New()
	e.Renderer = renderer

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	e.Use(session.Middleware(store))
	cookies := appsession.NewCookie()
	e.Use(middleware.Session(cookies))

	events := &recordingEvents{}
	home := handlers.NewHomeHandler()
	authHandler := handlers.NewAuthHandler(fake, cookies, events)
	admin := handlers.NewAdminHandler(fake, events, renderer)

	e.GET("/", home.HomeGet)
	e.GET("/login", authHandler.LoginGet)
	e.POST("/login", authHandler.LoginPost)
	e.GET("/signup", authHandler.SignupGet)
	e.POST("/signup", authHandler.SignupPost)
	e.GET("/admin", admin.AdminGet)
	e.POST("/admin/products", admin.ProductsPost)
	e.GET("/probe/session", func(c echo.Context) error {
		token, _ := middleware.SessionFrom(c).Token()
		return c.String(http.StatusOK, token)
	})

	return e, events
}

func get(e *echo.Echo, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func post(e *echo.Echo, path string, form url.Values, cookies []*http.Cookie, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func hasCookie(rec *httptest.ResponseRecorder, name string) bool {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return true
		}
	}
	return false
}

// login performs a successful login and returns the session cookies.
func login(t *testing.T, e *echo.Echo, fake *fakeAPI, token string) []*http.Cookie {
	t.Helper()
	fake.loginResult = api.LoginResult{Token: token}
	rec := post(e, "/login", url.Values{"email": {"a@b.c"}, "password": {"pw"}}, nil, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	return rec.Result().Cookies()
}

func TestHomeGet(t *testing.T) {
	e, _ := setupTest(t, &fakeAPI{})

	rec := get(e, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "<li>"), "exactly the two featured entries")
	assert.Contains(t, body, "<li><strong>Test Product</strong> - $99</li>")
	assert.Contains(t, body, "<li><strong>Another Product</strong> - $149</li>")
	assert.Less(t, strings.Index(body, "Test Product"), strings.Index(body, "Another Product"))
}

func TestLoginGet(t *testing.T) {
	e, _ := setupTest(t, &fakeAPI{})

	rec := get(e, "/login", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h2>Login</h2>")
	assert.Contains(t, rec.Body.String(), `placeholder="Email"`)
	assert.Contains(t, rec.Body.String(), `placeholder="Password"`)
}

func TestLoginPost(t *testing.T) {
	form := url.Values{"email": {"a@b.c"}, "password": {"secret"}}

	t.Run("token stores the session and redirects", func(t *testing.T) {
		fake := &fakeAPI{loginResult: api.LoginResult{Token: "abc"}}
		e, events := setupTest(t, fake)

		rec := post(e, "/login", form, nil, false)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))
		require.Len(t, fake.logins, 1)
		assert.Equal(t, domain.Credentials{Email: "a@b.c", Password: "secret"}, fake.logins[0])
		assert.Equal(t, []string{"a@b.c"}, events.logins)

		probe := get(e, "/probe/session", rec.Result().Cookies())
		assert.Equal(t, "abc", probe.Body.String())
	})

	t.Run("no token shows login failed", func(t *testing.T) {
		fake := &fakeAPI{}
		e, events := setupTest(t, fake)

		rec := post(e, "/login", form, nil, false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, handlers.MsgLoginFailed)
		assert.Contains(t, body, "<h2>Login</h2>")
		assert.Contains(t, body, `value="a@b.c"`, "form keeps the email")
		assert.NotContains(t, body, `value="secret"`, "password is not written back")
		assert.False(t, hasCookie(rec, appsession.CookieName), "nothing is written to the session")
		assert.Empty(t, events.logins)
	})

	t.Run("malformed response shows login failed", func(t *testing.T) {
		fake := &fakeAPI{loginErr: fmt.Errorf("login: %w", api.ErrMalformedResponse)}
		e, _ := setupTest(t, fake)

		rec := post(e, "/login", form, nil, false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), handlers.MsgLoginFailed)
		assert.False(t, hasCookie(rec, appsession.CookieName))
	})

	t.Run("transport failure shows unavailable", func(t *testing.T) {
		fake := &fakeAPI{loginErr: fmt.Errorf("login: %w: %w", api.ErrUnavailable, context.DeadlineExceeded)}
		e, _ := setupTest(t, fake)

		rec := post(e, "/login", form, nil, false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), handlers.MsgUnavailable)
		assert.NotContains(t, rec.Body.String(), handlers.MsgLoginFailed)
	})
}

func TestSignupPost(t *testing.T) {
	form := url.Values{"email": {"new@b.c"}, "password": {"pw-new"}}

	t.Run("accepted redirects to login with a flash", func(t *testing.T) {
		fake := &fakeAPI{}
		e, events := setupTest(t, fake)

		rec := post(e, "/signup", form, nil, false)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, []string{"new@b.c"}, events.signups)
		assert.False(t, hasCookie(rec, appsession.CookieName), "signup never stores a token")

		next := get(e, "/login", rec.Result().Cookies())
		assert.Contains(t, next.Body.String(), handlers.MsgSignupOK)
	})

	t.Run("rejected shows signup failed", func(t *testing.T) {
		fake := &fakeAPI{signupErr: &api.StatusError{Op: "signup", StatusCode: http.StatusBadRequest}}
		e, events := setupTest(t, fake)

		rec := post(e, "/signup", form, nil, false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, handlers.MsgSignupFailed)
		assert.Contains(t, body, "<h2>Signup</h2>")
		assert.Contains(t, body, `value="new@b.c"`)
		assert.NotContains(t, body, `value="pw-new"`, "password is not written back")
		assert.Empty(t, events.signups)
	})

	t.Run("transport failure shows unavailable", func(t *testing.T) {
		fake := &fakeAPI{signupErr: fmt.Errorf("signup: %w: %w", api.ErrUnavailable, context.Canceled)}
		e, _ := setupTest(t, fake)

		rec := post(e, "/signup", form, nil, false)

		assert.Contains(t, rec.Body.String(), handlers.MsgUnavailable)
	})
}

func TestAdminGet(t *testing.T) {
	t.Run("list equals the decoded products", func(t *testing.T) {
		fake := &fakeAPI{products: []domain.Product{{ID: 1, Name: "X", Price: 10}}}
		e, _ := setupTest(t, fake)

		rec := get(e, "/admin", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<h2>Admin Dashboard</h2>")
		assert.Contains(t, body, `<ul id="product-list" class="products"><li data-id="1">X - $10</li></ul>`)
		assert.Contains(t, body, `placeholder="Product name" value=""`)
	})

	t.Run("reachable without a token", func(t *testing.T) {
		e, _ := setupTest(t, &fakeAPI{})

		rec := get(e, "/admin", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "You are not logged in.")
	})

	t.Run("load failure leaves the list empty", func(t *testing.T) {
		fake := &fakeAPI{listErr: fmt.Errorf("list products: %w", api.ErrMalformedResponse)}
		e, _ := setupTest(t, fake)

		rec := get(e, "/admin", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `<ul id="product-list" class="products"></ul>`)
		assert.Contains(t, body, handlers.MsgProductsFailed)
	})
}

func TestProductsPost(t *testing.T) {
	form := url.Values{"name": {"Y"}, "price": {"20"}}

	t.Run("htmx success appends the item and resets the form", func(t *testing.T) {
		fake := &fakeAPI{created: domain.Product{ID: 2, Name: "Y", Price: 20}}
		e, events := setupTest(t, fake)
		cookies := login(t, e, fake, "abc")

		rec := post(e, "/admin/products", form, cookies, true)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, `<li data-id="2">Y - $20</li>`), body)
		assert.Contains(t, body, `id="add-product-form"`)
		assert.Contains(t, body, `hx-swap-oob="true"`)
		assert.Contains(t, body, `placeholder="Product name" value=""`)
		assert.Contains(t, body, `placeholder="Price" value=""`)
		assert.Equal(t, []domain.Product{{ID: 2, Name: "Y", Price: 20}}, events.products)

		require.Len(t, fake.creates, 1)
		token, ok := fake.creates[0].session.Token()
		assert.True(t, ok)
		assert.Equal(t, "abc", token)
		assert.Equal(t, domain.ProductForm{Name: "Y", Price: "20"}, fake.creates[0].form)
	})

	t.Run("plain post redirects with a flash", func(t *testing.T) {
		fake := &fakeAPI{created: domain.Product{ID: 2, Name: "Y", Price: 20}}
		e, _ := setupTest(t, fake)

		rec := post(e, "/admin/products", form, nil, false)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))

		next := get(e, "/admin", rec.Result().Cookies())
		assert.Contains(t, next.Body.String(), handlers.MsgProductAdded)
	})

	t.Run("anonymous callers still reach the API", func(t *testing.T) {
		fake := &fakeAPI{createErr: &api.StatusError{Op: "create product", StatusCode: http.StatusUnauthorized}}
		e, _ := setupTest(t, fake)

		post(e, "/admin/products", form, nil, true)

		require.Len(t, fake.creates, 1)
		assert.False(t, fake.creates[0].session.IsAuthenticated())
	})

	t.Run("htmx failure keeps the list", func(t *testing.T) {
		fake := &fakeAPI{createErr: &api.StatusError{Op: "create product", StatusCode: http.StatusUnauthorized}}
		e, events := setupTest(t, fake)

		rec := post(e, "/admin/products", form, nil, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
		body := rec.Body.String()
		assert.Contains(t, body, handlers.MsgAddFailed)
		assert.Contains(t, body, `id="notifications"`)
		assert.NotContains(t, body, "<li")
		assert.Empty(t, events.products)
	})

	t.Run("plain failure redirects with an error flash", func(t *testing.T) {
		fake := &fakeAPI{createErr: fmt.Errorf("create product: %w: %w", api.ErrUnavailable, context.DeadlineExceeded)}
		e, _ := setupTest(t, fake)

		rec := post(e, "/admin/products", form, nil, false)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		next := get(e, "/admin", rec.Result().Cookies())
		assert.Contains(t, next.Body.String(), handlers.MsgUnavailable)
	})
}
