package anamnesis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/config"
	"github.com/nutrivida/nutrivida_backend/internal/repo"
	entanamnesis "github.com/nutrivida/nutrivida_backend/internal/repo/anamnesis"
	entuser "github.com/nutrivida/nutrivida_backend/internal/repo/user"
	"github.com/nutrivida/nutrivida_backend/pkg/crypto"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Form is the decrypted questionnaire.
type Form struct {
	Answers     map[string]any `json:"answers"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit upserts the patient's questionnaire and advances onboarding.
	Submit(ctx context.Context, patientID uuid.UUID, answers map[string]any) error

	// Get returns the decrypted form; the nutritionist reads any patient,
	// a patient only their own (enforced at the handler).
	Get(ctx context.Context, patientID uuid.UUID) (*Form, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type anamnesisService struct {
	db     *repo.Client
	encKey []byte
}

func New(db *repo.Client, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("anamnesis service: invalid encryption key: %w", err)
	}
	return &anamnesisService{db: db, encKey: encKey}, nil
}

func (s *anamnesisService) Submit(ctx context.Context, patientID uuid.UUID, answers map[string]any) error {
	if len(answers) == 0 {
		return ErrEmptyPayload
	}

	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	payload, err := crypto.Encrypt(s.encKey, string(raw))
	if err != nil {
		return fmt.Errorf("encrypt answers: %w", err)
	}

	err = s.db.Anamnesis.Create().
		SetPatientID(patientID).
		SetPayload(payload).
		SetSubmittedAt(time.Now()).
		OnConflictColumns(entanamnesis.FieldPatientID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert anamnesis: %w", err)
	}

	// Submission moves a fresh patient to the scheduling step. Failure
	// here is recoverable, the step is recomputed on next submit.
	if err := s.db.User.Update().
		Where(
			entuser.ID(patientID),
			entuser.OnboardingStepEQ(entuser.OnboardingStepAnamnesis),
		).
		SetOnboardingStep(entuser.OnboardingStepScheduling).
		Exec(ctx); err != nil {
		slog.Warn("advance onboarding step failed", "patient_id", patientID, "error", err)
	}

	return nil
}

func (s *anamnesisService) Get(ctx context.Context, patientID uuid.UUID) (*Form, error) {
	row, err := s.db.Anamnesis.Query().
		Where(entanamnesis.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get anamnesis: %w", err)
	}

	plain, err := crypto.Decrypt(s.encKey, row.Payload)
	if err != nil {
		return nil, fmt.Errorf("decrypt anamnesis: %w", err)
	}

	var answers map[string]any
	if err := json.Unmarshal([]byte(plain), &answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}

	return &Form{Answers: answers, SubmittedAt: row.SubmittedAt}, nil
}
