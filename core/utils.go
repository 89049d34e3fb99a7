package core

import (
	"context"
	"strings"
	"time"
)

// Actor roles. There is no authentication; the role is a capability passed
// down from config (or per request) and checked where creates are gated.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Sleep blocks for d or until ctx is done, whichever comes first. The mock
// services use it so their artificial latencies never outlive a request.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}
