package auth

import "context"

type ctxKey int

const ownerCtxKey ctxKey = 1

func WithOwner(ctx context.Context, owner string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ownerCtxKey, owner)
}

func OwnerFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(ownerCtxKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
