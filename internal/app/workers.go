package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/nutrivida/nutrivida_backend/config"
	"github.com/nutrivida/nutrivida_backend/internal/repo"
	entappt "github.com/nutrivida/nutrivida_backend/internal/repo/appointment"
	entconv "github.com/nutrivida/nutrivida_backend/internal/repo/conversation"
	entmsg "github.com/nutrivida/nutrivida_backend/internal/repo/message"
	entuser "github.com/nutrivida/nutrivida_backend/internal/repo/user"
	"github.com/nutrivida/nutrivida_backend/internal/service/booking"
	"github.com/nutrivida/nutrivida_backend/internal/service/gamification"
	"github.com/nutrivida/nutrivida_backend/internal/service/notification"
	"github.com/nutrivida/nutrivida_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	Email    *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc)
			startEmailWorker(p.Cfg, p.NC, p.DB, p.Email)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	// New message notifications. The recipient is the other side of the
	// patient/nutritionist thread.
	_, err := nc.Subscribe("nutrivida.message.new.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		convID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}
		msgID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		conv, err := db.Conversation.Query().
			Where(entconv.ID(convID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: conversation not found", "id", convID, "err", err)
			return
		}

		message, err := db.Message.Query().
			Where(entmsg.ID(msgID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: message not found", "id", msgID, "err", err)
			return
		}

		recipientID := conv.PatientID
		if message.SenderID == conv.PatientID {
			nutritionist, err := db.User.Query().
				Where(entuser.RoleEQ(entuser.RoleNutritionist)).
				First(ctx)
			if err != nil {
				slog.Warn("notification_worker: nutritionist not found", "err", err)
				return
			}
			recipientID = nutritionist.ID
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: recipientID,
			Type:   notification.TypeMessageNew,
			Title:  "New message",
			Data:   map[string]any{"conversation_id": conv.ID.String()},
		})
		if err != nil {
			slog.Warn("notification_worker: create message notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe message.new failed", "err", err)
	}

	// Appointment created notifications
	_, err = nc.Subscribe("nutrivida.appointment.created.*", func(msg *nats.Msg) {
		apptID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		appt, err := db.Appointment.Query().
			Where(entappt.ID(apptID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: appointment not found", "id", apptID, "err", err)
			return
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: appt.PatientID,
			Type:   notification.TypeAppointmentCreated,
			Title:  "Appointment confirmed",
			Data: map[string]any{
				"appointment_id": appt.ID.String(),
				"start_time":     appt.StartTime.Format(time.RFC3339),
			},
		})
		if err != nil {
			slog.Warn("notification_worker: create appointment notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe appointment.created failed", "err", err)
	}

	// Appointment cancelled notifications. The row is already gone, so the
	// payload carries everything.
	_, err = nc.Subscribe("nutrivida.appointment.cancelled.*", func(msg *nats.Msg) {
		var ev booking.CancelledEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("notification_worker: bad cancelled payload", "err", err)
			return
		}
		patientID, err := uuid.Parse(ev.PatientID)
		if err != nil {
			return
		}

		_, err = notifSvc.Create(context.Background(), notification.CreateRequest{
			UserID: patientID,
			Type:   notification.TypeAppointmentCancelled,
			Title:  "Appointment cancelled",
			Data: map[string]any{
				"start_time": ev.StartTime.Format(time.RFC3339),
			},
		})
		if err != nil {
			slog.Warn("notification_worker: create cancellation notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe appointment.cancelled failed", "err", err)
	}

	// Pin unlocked notifications
	_, err = nc.Subscribe("nutrivida.pin.unlocked.*", func(msg *nats.Msg) {
		var ev gamification.PinUnlockedEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("notification_worker: bad pin payload", "err", err)
			return
		}
		patientID, err := uuid.Parse(ev.PatientID)
		if err != nil {
			return
		}

		_, err = notifSvc.Create(context.Background(), notification.CreateRequest{
			UserID: patientID,
			Type:   notification.TypePinUnlocked,
			Title:  "You earned a new pin",
			Data: map[string]any{
				"tier_name": ev.TierName,
				"tier_type": string(ev.TierType),
				"image":     ev.Image,
			},
		})
		if err != nil {
			slog.Warn("notification_worker: create pin notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe pin.unlocked failed", "err", err)
	}

	slog.Info("notification_worker: started")
}

// ---------------------------------------------------------------------------
// email_worker
// ---------------------------------------------------------------------------

func startEmailWorker(cfg *config.Config, nc *nats.Conn, db *repo.Client, emailCli *email.Client) {
	if !emailCli.IsEnabled() {
		slog.Info("email_worker: disabled, skipping")
		return
	}

	// Welcome email after signup
	_, err := nc.Subscribe("nutrivida.user.registered.*", func(msg *nats.Msg) {
		userID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		u, err := db.User.Get(ctx, userID)
		if err != nil {
			slog.Warn("email_worker: user not found", "id", userID, "err", err)
			return
		}

		m := email.BuildWelcomeEmail(email.WelcomeEmailData{
			PatientName: u.FirstName,
			Email:       u.Email,
			BaseURL:     cfg.Server.Domain,
		})
		if err := emailCli.Send(ctx, m); err != nil {
			slog.Warn("email_worker: send welcome failed", "email", u.Email, "err", err)
		}
	})
	if err != nil {
		slog.Error("email_worker: subscribe user.registered failed", "err", err)
	}

	// Booking confirmation
	_, err = nc.Subscribe("nutrivida.appointment.created.*", func(msg *nats.Msg) {
		apptID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		appt, err := db.Appointment.Query().
			Where(entappt.ID(apptID)).
			Only(ctx)
		if err != nil {
			slog.Warn("email_worker: appointment not found", "id", apptID, "err", err)
			return
		}

		m := email.BuildAppointmentConfirmedEmail(email.AppointmentEmailData{
			PatientName: appt.PatientName,
			Email:       appt.PatientEmail,
			StartTime:   appt.StartTime,
			DurationMin: appt.DurationMinutes,
		})
		if err := emailCli.Send(ctx, m); err != nil {
			slog.Warn("email_worker: send confirmation failed", "email", appt.PatientEmail, "err", err)
		}
	})
	if err != nil {
		slog.Error("email_worker: subscribe appointment.created failed", "err", err)
	}

	// Cancellation notice, built from the event payload
	_, err = nc.Subscribe("nutrivida.appointment.cancelled.*", func(msg *nats.Msg) {
		var ev booking.CancelledEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("email_worker: bad cancelled payload", "err", err)
			return
		}

		m := email.BuildAppointmentCancelledEmail(email.AppointmentEmailData{
			PatientName: ev.PatientName,
			Email:       ev.PatientEmail,
			StartTime:   ev.StartTime,
		})
		if err := emailCli.Send(context.Background(), m); err != nil {
			slog.Warn("email_worker: send cancellation failed", "email", ev.PatientEmail, "err", err)
		}
	})
	if err != nil {
		slog.Error("email_worker: subscribe appointment.cancelled failed", "err", err)
	}

	slog.Info("email_worker: started")
}
