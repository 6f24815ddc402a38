package auth

import "github.com/gin-gonic/gin"

const (
	tenantIDKey = "tenant_id"
	usernameKey = "username"
)

// SetTenant attaches the authenticated tenant to the request context.
// Called by the auth middleware only.
func SetTenant(c *gin.Context, tenantID, username string) {
	c.Set(tenantIDKey, tenantID)
	c.Set(usernameKey, username)
}

// TenantID returns the tenant bound to this request, or "" when the
// request never passed the auth middleware.
func TenantID(c *gin.Context) string {
	if val, ok := c.Get(tenantIDKey); ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return ""
}

func Username(c *gin.Context) string {
	if val, ok := c.Get(usernameKey); ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return ""
}
