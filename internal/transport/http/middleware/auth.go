package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/weiyuzhang/dealerhub/internal/domain"
)

const errUnauthorized = "未授权访问"

const sessionKey = "session"

// Auth validates a Bearer JWT and stores the resolved domain.Session in
// the gin context.
//
// When jwksURL is non-empty the token is verified against the JWKS
// endpoint (external identity provider, RS256). The key set is
// auto-cached and refreshed every 15 minutes.
//
// When jwksURL is empty, hmacKey is used for HS256 verification — the
// tokens this service issues itself via /api/auth/verify.
//
// A valid session always carries a user ID and an email; tokens missing
// either claim are rejected before any handler runs.
func Auth(jwksURL string, hmacKey []byte) gin.HandlerFunc {
	var cache *jwk.Cache

	if jwksURL != "" {
		c := jwk.NewCache(context.Background())
		if err := c.Register(jwksURL, jwk.WithMinRefreshInterval(15*time.Minute)); err != nil {
			panic("jwk cache register: " + err.Error())
		}
		cache = c
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		var (
			tok jwt.Token
			err error
		)

		if cache != nil {
			keySet, fetchErr := cache.Get(c.Request.Context(), jwksURL)
			if fetchErr != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
				return
			}
			tok, err = jwt.Parse([]byte(rawToken), jwt.WithKeySet(keySet), jwt.WithValidate(true))
		} else {
			tok, err = jwt.Parse([]byte(rawToken), jwt.WithKey(jwa.HS256, hmacKey), jwt.WithValidate(true))
		}

		if err != nil || tok == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		sess, ok := sessionFromToken(tok)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func sessionFromToken(tok jwt.Token) (domain.Session, bool) {
	sess := domain.Session{UserID: tok.Subject()}
	if sess.UserID == "" {
		return domain.Session{}, false
	}

	if v, ok := tok.Get("email"); ok {
		sess.Email, _ = v.(string)
	}
	if sess.Email == "" {
		return domain.Session{}, false
	}

	if v, ok := tok.Get("name"); ok {
		sess.Name, _ = v.(string)
	}

	// type is threaded through for future role checks; only presence of a
	// session is enforced today.
	if v, ok := tok.Get("type"); ok {
		sess.Type, _ = v.(string)
	}
	if sess.Type == "" {
		sess.Type = "user"
	}

	return sess, true
}

// SessionFrom returns the session resolved by Auth for this request.
// ok is false on routes that did not pass through Auth.
func SessionFrom(c *gin.Context) (domain.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return domain.Session{}, false
	}
	sess, ok := v.(domain.Session)
	return sess, ok
}
