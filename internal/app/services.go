package app

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/nutrivida/nutrivida_backend/config"
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
	s3pkg "github.com/nutrivida/nutrivida_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvidePatientService,
		ProvideAnamnesisService,
		ProvideBookingService,
		ProvideGamificationService,
		ProvideChecklistService,
		ProvideDiaryService,
		ProvideCommunityService,
		ProvideConversationService,
		ProvideNotificationService,
		ProvideContentService,
		ProvideMediaService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	nc *nats.Conn,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, nc, paseto, cfg)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideAnamnesisService(db *repo.Client, cfg *config.Config) (anamnesis.Service, error) {
	return anamnesis.New(db, cfg)
}

func ProvideBookingService(db *repo.Client, nc *nats.Conn, loc *time.Location) booking.Service {
	return booking.New(db, nc, loc)
}

func ProvideGamificationService(db *repo.Client, nc *nats.Conn, loc *time.Location) gamification.Service {
	return gamification.New(db, nc, loc)
}

func ProvideChecklistService(db *repo.Client, gamif gamification.Service, loc *time.Location) checklist.Service {
	return checklist.New(db, gamif, loc)
}

func ProvideDiaryService(db *repo.Client, gamif gamification.Service, loc *time.Location) diary.Service {
	return diary.New(db, gamif, loc)
}

func ProvideCommunityService(db *repo.Client) community.Service {
	return community.New(db)
}

func ProvideConversationService(db *repo.Client, nc *nats.Conn) conversation.Service {
	return conversation.New(db, nc)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvideContentService(db *repo.Client, rdb *redis.Client) content.Service {
	return content.New(db, rdb)
}

func ProvideMediaService(store *s3pkg.Client) media.Service {
	return media.New(store)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
