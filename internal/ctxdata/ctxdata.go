package ctxdata

import "context"

type commandIDKey struct{}
type commandNameKey struct{}

var (
	commandIDKeyInstance   = commandIDKey{}
	commandNameKeyInstance = commandNameKey{}
)

func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, commandIDKeyInstance, id)
}

func GetCommandID(ctx context.Context) (string, bool) {
	v := ctx.Value(commandIDKeyInstance)
	id, ok := v.(string)
	return id, ok
}

func WithCommandName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandNameKeyInstance, name)
}

func GetCommandName(ctx context.Context) (string, bool) {
	v := ctx.Value(commandNameKeyInstance)
	name, ok := v.(string)
	return name, ok
}
