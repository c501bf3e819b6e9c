package http

import (
	"context"
	"log/slog"

	"github.com/example/escala/internal/logging"
)

type contextKey string

const roleContextKey contextKey = "role"

// RoleManager is the role required for every mutating route. The role is
// asserted by an upstream proxy and forwarded in the X-Escala-Role header.
const RoleManager = "gestor"

// RoleHeader names the trusted identity header.
const RoleHeader = "X-Escala-Role"

// ContextWithRole returns a derived context carrying the caller's role.
func ContextWithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleContextKey, role)
}

// RoleFromContext extracts the caller's role from context if available.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleContextKey).(string)
	return role, ok
}

// ContextWithLogger attaches a request scoped logger to the context.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logging.ContextWithLogger(ctx, logger)
}

// LoggerFromContext extracts a logger previously attached to the context.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}
