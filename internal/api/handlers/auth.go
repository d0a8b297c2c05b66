package handlers

import (
	"errors"
	"net/http"

	"github.com/mkamath/wanderstay/internal/api/middleware"
	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/service"
	"github.com/mkamath/wanderstay/internal/session"
	"github.com/mkamath/wanderstay/internal/validation"
	"github.com/mkamath/wanderstay/internal/web"
)

type AuthHandler struct {
	authService *service.AuthService
	renderer    *web.Renderer
}

func NewAuthHandler(authService *service.AuthService, renderer *web.Renderer) *AuthHandler {
	return &AuthHandler{authService: authService, renderer: renderer}
}

func (h *AuthHandler) ShowSignup(w http.ResponseWriter, r *http.Request) error {
	return h.renderer.Render(w, http.StatusOK, "signup", pageData(r, "Sign up", nil))
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return domain.ValidationError("invalid form submission")
	}

	input := service.RegisterInput{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if violations := validation.ValidateRegistration(validation.RegistrationInput(input)); !violations.OK() {
		return domain.ValidationError(violations.Message())
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameExists) {
			if sess, ok := middleware.GetSession(r.Context()); ok {
				sess.AddFlash(session.FlashError, "A user with that username already exists")
			}
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
			return nil
		}
		return err
	}

	h.establish(w, r, user, "Welcome to Wanderstay!")
	http.Redirect(w, r, "/listings", http.StatusSeeOther)
	return nil
}

func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) error {
	return h.renderer.Render(w, http.StatusOK, "login", pageData(r, "Log in", nil))
}

// Login authenticates and establishes the session. Unknown usernames and
// wrong passwords take the exact same path out.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return domain.ValidationError("invalid form submission")
	}

	user, err := h.authService.Authenticate(r.Context(),
		r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			if sess, ok := middleware.GetSession(r.Context()); ok {
				sess.AddFlash(session.FlashError, "Invalid username or password")
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return nil
		}
		return err
	}

	h.establish(w, r, user, "Welcome back!")
	http.Redirect(w, r, "/listings", http.StatusSeeOther)
	return nil
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) error {
	if sess, ok := middleware.GetSession(r.Context()); ok {
		sess.ClearUserID()
		sess.AddFlash(session.FlashSuccess, "You have been logged out")
	}
	http.Redirect(w, r, "/listings", http.StatusSeeOther)
	return nil
}

// establish rotates the session identity and binds it to the user. Flash
// messages set before login survive the rotation.
func (h *AuthHandler) establish(w http.ResponseWriter, r *http.Request, user *domain.User, greeting string) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		return
	}
	sess.Rotate(r.Context(), w)
	sess.SetUserID(h.authService.Serialize(user))
	sess.AddFlash(session.FlashSuccess, greeting)
}
