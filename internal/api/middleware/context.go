package middleware

import (
	"context"
)

type contextKey string

const staffKey contextKey = "staff"

// ContextWithStaff returns a new context carrying the authenticated staff subject.
func ContextWithStaff(ctx context.Context, staff string) context.Context {
	return context.WithValue(ctx, staffKey, staff)
}

// StaffFromContext reports the staff subject of an authenticated request.
func StaffFromContext(ctx context.Context) (string, bool) {
	staff, ok := ctx.Value(staffKey).(string)
	if !ok || staff == "" {
		return "", false
	}
	return staff, true
}
