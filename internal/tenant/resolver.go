// ABOUTME: Resolves an authenticated identity to a tenant id and role.
// ABOUTME: Missing provisioning records fall back to a derived tenant.
package tenant

import (
	"context"
	"strings"

	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/pkg/logger"
)

// Session is the resolved identity for one request or CLI invocation. It is
// created at session start, passed explicitly to every handler, and discarded
// at the end; there is no process-global session state.
type Session struct {
	Email    string
	UID      string
	TenantID string
	Role     string

	// Degraded marks sessions whose tenant was derived rather than looked up.
	// The application stays usable with incomplete provisioning data, at the
	// cost of silently isolating misconfigured accounts.
	Degraded bool
}

// probe is one role collection lookup in priority order.
type probe struct {
	collection string
	role       string
}

var probes = []probe{
	{models.CollectionStaff, models.RoleStaff},
	{models.CollectionUsers, models.RoleStaff},
	{models.CollectionPlayers, models.RolePlayer},
}

// Resolver maps identities to tenants by probing role collections.
type Resolver struct {
	store store.Store
	log   logger.Logger
}

// NewResolver creates a Resolver.
func NewResolver(st store.Store, log logger.Logger) *Resolver {
	return &Resolver{store: st, log: log.Named("tenant")}
}

// Resolve probes staff, users, then jugadores for the email; the first
// matching document's tenant id and role win. When nothing matches (or the
// store is unreachable) it derives a deterministic tenant from the email
// local part, or the uid, and marks the session degraded. Resolve never
// fails: absence of a provisioning record is the fallback path, not an error.
func (r *Resolver) Resolve(ctx context.Context, email, uid string) Session {
	for _, p := range probes {
		records, err := r.store.List(ctx, p.collection, "",
			store.WhereEq("email", email), store.Limit(1))
		if err != nil {
			r.log.Warn(ctx, "tenant probe failed",
				logger.String("collection", p.collection), logger.Error(err))
			continue
		}
		if len(records) == 0 {
			continue
		}

		tenantID := records[0].Field("clienteId")
		if tenantID == "" {
			continue
		}
		role := records[0].Field("rol")
		if role == "" {
			role = p.role
		}
		return Session{Email: email, UID: uid, TenantID: tenantID, Role: role}
	}

	derived := DeriveTenantID(email, uid)
	r.log.Warn(ctx, "no provisioning record for identity, using derived tenant",
		logger.String("email", email),
		logger.String("tenantId", derived),
		logger.Bool("degraded", true))

	return Session{
		Email:    email,
		UID:      uid,
		TenantID: derived,
		Role:     models.RoleStaff,
		Degraded: true,
	}
}

// DeriveTenantID builds the deterministic fallback tenant id from the email
// local part, or the uid when the email is unusable.
func DeriveTenantID(email, uid string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		local = uid
	}
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, local)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "desconocido"
	}
	return "cliente-" + slug
}
