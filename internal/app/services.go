package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mindchat/mindchat_backend/config"
	"github.com/mindchat/mindchat_backend/internal/repo"
	"github.com/mindchat/mindchat_backend/internal/service/appointment"
	"github.com/mindchat/mindchat_backend/internal/service/auth"
	"github.com/mindchat/mindchat_backend/internal/service/chat"
	"github.com/mindchat/mindchat_backend/internal/service/directory"
	"github.com/mindchat/mindchat_backend/internal/service/notification"
	"github.com/mindchat/mindchat_backend/internal/service/sessionrequest"
	"github.com/mindchat/mindchat_backend/pkg/email"
	pasetotoken "github.com/mindchat/mindchat_backend/pkg/paseto"
	"github.com/mindchat/mindchat_backend/pkg/util/password"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideDirectoryService,
		ProvideAuthService,
		ProvideSessionRequestService,
		ProvideChatService,
		ProvideAppointmentService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideDirectoryService(db *repo.Client, mailer *email.Client, cfg *config.Config) directory.Service {
	return directory.New(db, mailer, password.FromCentralConfig(cfg.Password))
}

func ProvideAuthService(
	users directory.Service,
	paseto *pasetotoken.Manager,
	rdb *redis.Client,
	cfg *config.Config,
) auth.Service {
	return auth.New(users, paseto, rdb, cfg)
}

func ProvideSessionRequestService(db *repo.Client, nc *nats.Conn) sessionrequest.Service {
	return sessionrequest.New(db, nc)
}

func ProvideChatService(db *repo.Client, nc *nats.Conn) chat.Service {
	return chat.New(db, nc)
}

func ProvideAppointmentService(db *repo.Client) appointment.Service {
	return appointment.New(db)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewFromCentral(cfg)
}
