package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plazasales/storefront/internal/adapters/visitor"
	"github.com/plazasales/storefront/internal/platform/config"
	"github.com/plazasales/storefront/internal/platform/logging"
	"github.com/plazasales/storefront/internal/ports"
)

const (
	// ContextKeyVisitor is the gin context key for the request's visitor.
	ContextKeyVisitor = "visitor"

	defaultVisitorCookie = "sc_visitor"
)

// Visitor returns middleware that identifies the anonymous visitor from a
// signed cookie. A missing, invalid or expired cookie is replaced by a new
// identity; a valid one past half its lifetime is re-issued with the same id.
func Visitor(tokens *visitor.Tokens, cfg config.VisitorConfig) gin.HandlerFunc {
	name := cfg.CookieName
	if name == "" {
		name = defaultVisitorCookie
	}

	return func(c *gin.Context) {
		id, fresh := identify(c, tokens, name)

		if fresh || tokens.NeedsRefresh(id) {
			if !fresh {
				id = tokens.Renew(id)
			}

			if err := setVisitorCookie(c, tokens, cfg, name, id); err != nil {
				logging.FromContext(c.Request.Context()).Warn("failed to sign visitor cookie", "error", err)
			}
		}

		v := &ports.Visitor{ID: id.ID, New: fresh}
		c.Set(ContextKeyVisitor, v)

		ctx := ports.WithVisitor(c.Request.Context(), v)
		ctx = logging.WithVisitorID(ctx, v.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func identify(c *gin.Context, tokens *visitor.Tokens, name string) (visitor.Identity, bool) {
	raw, err := c.Cookie(name)
	if err != nil || raw == "" {
		return tokens.NewIdentity(), true
	}

	id, err := tokens.Parse(raw)
	if err != nil {
		logging.FromContext(c.Request.Context()).Debug("replacing visitor cookie", "error", err)
		return tokens.NewIdentity(), true
	}

	return id, false
}

func setVisitorCookie(c *gin.Context, tokens *visitor.Tokens, cfg config.VisitorConfig, name string, id visitor.Identity) error {
	raw, err := tokens.Sign(id)
	if err != nil {
		return err
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    raw,
		Path:     "/",
		Domain:   cfg.Domain,
		Expires:  id.ExpiresAt,
		MaxAge:   int(time.Until(id.ExpiresAt).Seconds()),
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// GetVisitor returns the visitor set by the Visitor middleware, or nil.
func GetVisitor(c *gin.Context) *ports.Visitor {
	if v, exists := c.Get(ContextKeyVisitor); exists {
		if pv, ok := v.(*ports.Visitor); ok {
			return pv
		}
	}

	return nil
}
