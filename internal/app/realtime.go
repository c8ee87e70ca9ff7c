package app

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mindchat/mindchat_backend/config"
	"github.com/mindchat/mindchat_backend/internal/service/chat"
	"github.com/mindchat/mindchat_backend/internal/service/directory"
	"github.com/mindchat/mindchat_backend/internal/ws"
	pasetotoken "github.com/mindchat/mindchat_backend/pkg/paseto"
)

// RealtimeModule runs the websocket hub on its own listener.
var RealtimeModule = fx.Module("realtime",
	fx.Provide(ws.NewHub),
	fx.Provide(ProvideRealtimeServer),
	fx.Invoke(func(*ws.Server) {}),
)

func ProvideRealtimeServer(
	lc fx.Lifecycle,
	cfg *config.Config,
	hub *ws.Hub,
	chats chat.Service,
	users directory.Service,
	tokens *pasetotoken.Manager,
	rdb *redis.Client,
	nc *nats.Conn,
) *ws.Server {
	srv := ws.NewServer(cfg, hub, chats, users, tokens, rdb, nc)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error { return srv.Start(ctx) },
		OnStop:  func(ctx context.Context) error { return srv.Stop(ctx) },
	})
	return srv
}
