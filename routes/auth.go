package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/aimanzahar/mealshare-web/appwrite"
	"github.com/aimanzahar/mealshare-web/session"
)

type credentialsForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginPage renders the login/signup form. The mode toggle is a query
// parameter so the page needs no client-side script.
func (a *App) LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := c.Query("mode")
		if mode != "signup" {
			mode = "login"
		}
		a.renderLogin(c, mode, credentialsForm{}, "")
	}
}

// Login signs the user in against the auth service. Validation failures
// stay inline and never touch the backend; credential rejections surface
// the provider's message verbatim.
func (a *App) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form credentialsForm
		_ = c.ShouldBind(&form)

		if a.Sessions == nil {
			a.renderLogin(c, "login", form, "Missing Appwrite client configuration.")
			return
		}
		if form.Email == "" || form.Password == "" {
			a.renderLogin(c, "login", form, "Email and password are required.")
			return
		}

		ctx := c.Request.Context()
		a.clearExistingSession(ctx, c)

		sess, err := a.Sessions.ForSession("").CreateEmailSession(ctx, form.Email, form.Password)
		if err != nil {
			a.renderLogin(c, "login", form, err.Error())
			return
		}

		a.setSessionCookie(c, sess)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// Signup creates the account with a generated unique ID, then signs the
// new user straight in.
func (a *App) Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form credentialsForm
		_ = c.ShouldBind(&form)

		if a.Sessions == nil {
			a.renderLogin(c, "signup", form, "Missing Appwrite client configuration.")
			return
		}
		if form.Name == "" || form.Email == "" || form.Password == "" {
			a.renderLogin(c, "signup", form, "Name, email, and password are required.")
			return
		}

		ctx := c.Request.Context()
		a.clearExistingSession(ctx, c)

		account := a.Sessions.ForSession("")
		userID, err := uuid.NewV4()
		if err != nil {
			a.renderLogin(c, "signup", form, "Unable to complete the request.")
			return
		}
		if _, err := account.Create(ctx, userID.String(), form.Email, form.Password, form.Name); err != nil {
			// Duplicate account and policy errors come back worded by
			// the provider; show them as-is.
			a.renderLogin(c, "signup", form, err.Error())
			return
		}

		sess, err := account.CreateEmailSession(ctx, form.Email, form.Password)
		if err != nil {
			a.renderLogin(c, "login", form, err.Error())
			return
		}

		a.setSessionCookie(c, sess)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// Logout walks the same state machine as the page: resolve the session,
// then terminate it. Local state always ends anonymous, so the cookie is
// cleared whatever the remote outcome.
func (a *App) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if account := a.accountForRequest(c); account != nil {
			w := session.NewWatcher(account, a.Log)
			w.Start(ctx)
			w.Wait(ctx)
			w.Logout(ctx)
			w.Close()
		}
		a.clearSessionCookie(c)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// clearExistingSession removes any session already bound to this browser
// before a new sign-in, avoiding the service's "session is active" error.
// Best effort: a failure here means there was nothing to clear.
func (a *App) clearExistingSession(ctx context.Context, c *gin.Context) {
	secret := a.sessionSecret(c)
	if secret == "" {
		return
	}
	_ = a.Sessions.ForSession(secret).DeleteCurrentSession(ctx)
	a.clearSessionCookie(c)
}

func (a *App) setSessionCookie(c *gin.Context, sess *appwrite.Session) {
	exp := sess.ExpiresAt()
	tok, err := session.IssueCookieToken(a.SigningKey, sess.UserID, sess.Secret, exp)
	if err != nil {
		a.Log.Error("issue session cookie", zap.Error(err))
		return
	}
	maxAge := int(time.Until(exp).Seconds())
	c.SetCookie(session.CookieName, tok, maxAge, "/", "", secureRequest(c), true)
}

func (a *App) clearSessionCookie(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", secureRequest(c), true)
}

// secureRequest reports whether the client connection is HTTPS, directly
// or via a terminating proxy. The session cookie is only marked Secure
// when it is, so local plain-HTTP development still works.
func secureRequest(c *gin.Context) bool {
	return c.Request.TLS != nil || c.Request.Header.Get("X-Forwarded-Proto") == "https"
}

func (a *App) renderLogin(c *gin.Context, mode string, form credentialsForm, errMsg string) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Mode":    mode,
		"Name":    form.Name,
		"Email":   form.Email,
		"Error":   errMsg,
	})
}
