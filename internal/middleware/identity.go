package middleware

import (
	"fmt"
	"log"

	"janamat/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const IdentityKey = "identity"
const anonSessionKey = "anon_fingerprint"

type IdentityKind int

const (
	IdentityAnonymous IdentityKind = iota
	IdentityAuthenticated
)

// Identity is the caller identity resolved once at the RPC boundary:
// the authenticated user, or an anonymous fingerprint. The fingerprint
// is a deliberately weak identity; it guarantees one-fingerprint-one-vote,
// not one-person-one-vote.
type Identity struct {
	Kind        IdentityKind
	User        *models.User
	Fingerprint string
}

// VoterKey is the opaque value the vote ledger and comment log key on.
func (id Identity) VoterKey() string {
	if id.Kind == IdentityAuthenticated {
		return fmt.Sprintf("user:%d", id.User.ID)
	}
	return "anon:" + id.Fingerprint
}

// DisplayName returns the username for authenticated callers, empty
// otherwise; the render-time "Anonymous" default lives in the handlers.
func (id Identity) DisplayName() string {
	if id.Kind == IdentityAuthenticated {
		return id.User.Username
	}
	return ""
}

// ResolveIdentity derives the caller identity after LoadUser has run:
// authenticated user, else the fingerprint header, else the User-Agent,
// else a uuid pinned to the session.
func ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, exists := c.Get(CheckUserKey); exists {
			c.Set(IdentityKey, Identity{Kind: IdentityAuthenticated, User: user.(*models.User)})
			c.Next()
			return
		}

		fingerprint := c.GetHeader("X-Voter-Fingerprint")
		if fingerprint == "" {
			fingerprint = c.GetHeader("User-Agent")
		}
		if fingerprint == "" {
			session := sessions.Default(c)
			if v, ok := session.Get(anonSessionKey).(string); ok {
				fingerprint = v
			} else {
				fingerprint = uuid.NewString()
				session.Set(anonSessionKey, fingerprint)
				if err := session.Save(); err != nil {
					log.Printf("Failed to persist anonymous fingerprint: %v", err)
				}
			}
		}

		c.Set(IdentityKey, Identity{Kind: IdentityAnonymous, Fingerprint: fingerprint})
		c.Next()
	}
}

// CurrentIdentity fetches the resolved identity from the context.
func CurrentIdentity(c *gin.Context) Identity {
	if v, exists := c.Get(IdentityKey); exists {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{Kind: IdentityAnonymous, Fingerprint: "anonymous"}
}
