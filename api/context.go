package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type keyType string

const (
	userIDKey keyType = "userID"
	roleKey   keyType = "role"
)

// Roles carried in access tokens.
const (
	roleStudent = "student"
	roleAdmin   = "admin"
)

// ctxWithUser adds the authenticated user's ID and role to the context
func ctxWithUser(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// ctxGetUserID retrieves the authenticated user's ID from the context
func ctxGetUserID(ctx context.Context) (uuid.UUID, error) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is not a UUID")
	}
	return userID, nil
}

// ctxGetRole retrieves the authenticated user's role from the context
func ctxGetRole(ctx context.Context) (string, error) {
	value := ctx.Value(roleKey)
	if value == nil {
		return "", errors.New("role not found in context")
	}
	role, ok := value.(string)
	if !ok {
		return "", errors.New("role in context is not a string")
	}
	return role, nil
}

// ctxIsAdmin reports whether the caller holds the admin role.
func ctxIsAdmin(ctx context.Context) bool {
	role, err := ctxGetRole(ctx)
	return err == nil && role == roleAdmin
}
