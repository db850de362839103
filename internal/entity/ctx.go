package entity

import (
	"context"
)

type ctxKey int

const (
	ctxKeyUser ctxKey = iota
	ctxKeyToken
)

func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, user)
}

// UserFromCtx returns the principal from context or ErrUnauthenticated.
func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(ctxKeyUser).(User)
	if !ok {
		return user, ErrUnauthenticated
	}

	return user, nil
}

func CtxWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyToken, token)
}

// TokenFromCtx returns the bearer token from context or an empty string.
func TokenFromCtx(ctx context.Context) string {
	token, ok := ctx.Value(ctxKeyToken).(string)
	if !ok {
		return ""
	}

	return token
}
