package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/nutrivida/nutrivida_backend/config"
	"github.com/nutrivida/nutrivida_backend/internal/api/http/handler"
	"github.com/nutrivida/nutrivida_backend/internal/api/http/middleware"
	"github.com/nutrivida/nutrivida_backend/internal/repo"
	"github.com/nutrivida/nutrivida_backend/internal/service/anamnesis"
	"github.com/nutrivida/nutrivida_backend/internal/service/auth"
	"github.com/nutrivida/nutrivida_backend/internal/service/booking"
	"github.com/nutrivida/nutrivida_backend/internal/service/checklist"
	"github.com/nutrivida/nutrivida_backend/internal/service/community"
	"github.com/nutrivida/nutrivida_backend/internal/service/content"
	"github.com/nutrivida/nutrivida_backend/internal/service/conversation"
	"github.com/nutrivida/nutrivida_backend/internal/service/diary"
	"github.com/nutrivida/nutrivida_backend/internal/service/gamification"
	"github.com/nutrivida/nutrivida_backend/internal/service/media"
	"github.com/nutrivida/nutrivida_backend/internal/service/notification"
	"github.com/nutrivida/nutrivida_backend/internal/service/patient"
	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	DB              *repo.Client
	AuthSvc         auth.Service
	PatientSvc      patient.Service
	AnamnesisSvc    anamnesis.Service
	BookingSvc      booking.Service
	GamificationSvc gamification.Service
	ChecklistSvc    checklist.Service
	DiarySvc        diary.Service
	CommunitySvc    community.Service
	ConversationSvc conversation.Service
	NotificationSvc notification.Service
	ContentSvc      content.Service
	MediaSvc        media.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	requireNutritionist := middleware.RequireRole(pasetotoken.RoleNutritionist)
	requirePatient := middleware.RequireRole(pasetotoken.RolePatient)

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	anamnesisH := handler.NewAnamnesisHandler(r.p.AnamnesisSvc)
	scheduleH := handler.NewScheduleHandler(r.p.BookingSvc)
	gamificationH := handler.NewGamificationHandler(r.p.GamificationSvc)
	checklistH := handler.NewChecklistHandler(r.p.ChecklistSvc)
	diaryH := handler.NewDiaryHandler(r.p.DiarySvc)
	communityH := handler.NewCommunityHandler(r.p.CommunitySvc)
	conversationH := handler.NewConversationHandler(r.p.ConversationSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	contentH := handler.NewContentHandler(r.p.ContentSvc)
	mediaH := handler.NewMediaHandler(r.p.MediaSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerPatientRoutes(api, patientH, anamnesisH, gamificationH, diaryH, authRequired, requireNutritionist)
	r.registerScheduleRoutes(api, scheduleH, authRequired, requireNutritionist, requirePatient)
	r.registerGamificationRoutes(api, gamificationH, authRequired, requirePatient)
	r.registerChecklistRoutes(api, checklistH, authRequired, requireNutritionist, requirePatient)
	r.registerDiaryRoutes(api, diaryH, authRequired, requirePatient)
	r.registerCommunityRoutes(api, communityH, authRequired)
	r.registerConversationRoutes(api, conversationH, authRequired, requireNutritionist, requirePatient)
	r.registerNotificationRoutes(api, notificationH, authRequired)
	r.registerContentRoutes(api, contentH, authRequired, requireNutritionist)
	r.registerMediaRoutes(api, mediaH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.Redis.Ping(c.Context()).Err() == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
