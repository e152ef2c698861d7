package patient

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/repo"
	entuser "github.com/nutrivida/nutrivida_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
	AvatarKey *string
}

type ListRequest struct {
	Page    int
	PerPage int
	Search  string // matches name or email
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.User, error)

	// Nutritionist-side roster
	List(ctx context.Context, req ListRequest) ([]*repo.User, int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func (s *patientService) Get(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return u, nil
}

func (s *patientService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	upd := s.db.User.UpdateOneID(userID)

	if req.FirstName != nil {
		name := strings.TrimSpace(*req.FirstName)
		if name == "" {
			return nil, ErrInvalidInput
		}
		upd = upd.SetFirstName(name)
	}
	if req.LastName != nil {
		name := strings.TrimSpace(*req.LastName)
		if name == "" {
			return nil, ErrInvalidInput
		}
		upd = upd.SetLastName(name)
	}
	if req.AvatarKey != nil {
		upd = upd.SetAvatarKey(*req.AvatarKey)
	}

	u, err := upd.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

func (s *patientService) List(ctx context.Context, req ListRequest) ([]*repo.User, int, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 25
	}

	q := s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RolePatient),
			entuser.DeletedAtIsNil(),
		)

	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entuser.Or(
			entuser.FirstNameContainsFold(search),
			entuser.LastNameContainsFold(search),
			entuser.EmailContainsFold(search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	users, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}

	return users, total, nil
}
