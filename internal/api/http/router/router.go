package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mindchat/mindchat_backend/config"
	"github.com/mindchat/mindchat_backend/internal/api/http/handler"
	"github.com/mindchat/mindchat_backend/internal/api/http/middleware"
	"github.com/mindchat/mindchat_backend/internal/service/appointment"
	"github.com/mindchat/mindchat_backend/internal/service/auth"
	"github.com/mindchat/mindchat_backend/internal/service/chat"
	"github.com/mindchat/mindchat_backend/internal/service/directory"
	"github.com/mindchat/mindchat_backend/internal/service/notification"
	"github.com/mindchat/mindchat_backend/internal/service/sessionrequest"
	pasetotoken "github.com/mindchat/mindchat_backend/pkg/paseto"
)

const (
	rolePatient      = "patient"
	rolePsychologist = "psychologist"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg               *config.Config
	Redis             *redis.Client
	AuthSvc           auth.Service
	DirectorySvc      directory.Service
	SessionRequestSvc sessionrequest.Service
	ChatSvc           chat.Service
	AppointmentSvc    appointment.Service
	NotificationSvc   notification.Service
	PasetoMgr         *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	patientOnly := middleware.RequireRole(rolePatient)
	psychologistOnly := middleware.RequireRole(rolePsychologist)

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	directoryH := handler.NewDirectoryHandler(r.p.DirectorySvc)
	requestH := handler.NewSessionRequestHandler(r.p.SessionRequestSvc)
	chatH := handler.NewChatHandler(r.p.ChatSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, directoryH, authRequired)
	r.registerDirectoryRoutes(api, directoryH, authRequired, patientOnly, psychologistOnly)
	r.registerSessionRequestRoutes(api, requestH, authRequired, patientOnly, psychologistOnly)
	r.registerChatRoutes(api, chatH, authRequired)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, psychologistOnly)
	r.registerNotificationRoutes(api, notificationH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
