package user

import (
	"context"

	"github.com/rs/zerolog"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/config"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/responses"
	"payment-gateway/internal/infrastructure/auth"
	"payment-gateway/internal/model"
	"payment-gateway/internal/utils/identifier"
)

// Service implements account management on top of the repository.
type Service struct {
	repo     Repository
	hasher   *auth.Hasher
	log      zerolog.Logger
	pageSize int
	pageMax  int
}

// NewService wires the user service.
func NewService(repo Repository, hasher *auth.Hasher, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		hasher:   hasher,
		log:      log.With().Str("component", "user-service").Logger(),
		pageSize: cfg.DefaultPageSize,
		pageMax:  cfg.MaxPageSize,
	}
}

// FindAll returns one page of users, trashed rows included.
func (s *Service) FindAll(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.UserResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched users",
		responses.NewUserResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindActive returns one page of non-trashed users.
func (s *Service) FindActive(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.UserResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindActive(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched active users",
		responses.NewUserResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindTrashed returns one page of trashed users.
func (s *Service) FindTrashed(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.UserResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindTrashed(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched trashed users",
		responses.NewUserResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByID returns a single user.
func (s *Service) FindByID(ctx context.Context, id int) (*responses.ApiResponse[responses.UserResponse], error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched user", responses.NewUserResponse(*row))
	return &resp, nil
}

// Create registers a user through the admin surface.
func (s *Service) Create(ctx context.Context, req requests.CreateUserRequest) (*responses.ApiResponse[responses.UserResponse], error) {
	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal("hash password", err)
	}

	row, err := s.repo.Create(ctx, &model.User{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Email:       req.Email,
		Password:    hashed,
		NocTransfer: identifier.NewNocTransfer(),
	})
	if err != nil {
		return nil, s.fail(err)
	}

	s.log.Info().Int("user_id", row.ID).Msg("user created")
	resp := responses.NewResponse("Successfully created user", responses.NewUserResponse(*row))
	return &resp, nil
}

// Update modifies an existing user. An empty password keeps the stored
// hash.
func (s *Service) Update(ctx context.Context, id int, req requests.UpdateUserRequest) (*responses.ApiResponse[responses.UserResponse], error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}

	existing.Firstname = req.Firstname
	existing.Lastname = req.Lastname
	existing.Email = req.Email
	if req.Password != "" {
		hashed, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, apperrors.Internal("hash password", err)
		}
		existing.Password = hashed
	}

	row, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.fail(err)
	}

	resp := responses.NewResponse("Successfully updated user", responses.NewUserResponse(*row))
	return &resp, nil
}

// Trash soft-deletes a user.
func (s *Service) Trash(ctx context.Context, id int) (*responses.ApiResponse[responses.UserResponseDeleteAt], error) {
	row, err := s.repo.Trash(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully trashed user", responses.NewUserResponseDeleteAt(*row))
	return &resp, nil
}

// Restore brings a trashed user back.
func (s *Service) Restore(ctx context.Context, id int) (*responses.ApiResponse[responses.UserResponse], error) {
	row, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored user", responses.NewUserResponse(*row))
	return &resp, nil
}

// DeletePermanent removes a user for good.
func (s *Service) DeletePermanent(ctx context.Context, id int) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeletePermanent(ctx, id); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted user permanently", true)
	return &resp, nil
}

// RestoreAll restores every trashed user.
func (s *Service) RestoreAll(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.RestoreAll(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored all users", true)
	return &resp, nil
}

// DeleteAllPermanent removes every trashed user for good.
func (s *Service) DeleteAllPermanent(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeleteAllPermanent(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted all trashed users permanently", true)
	return &resp, nil
}

func (s *Service) fail(err error) error {
	svcErr := apperrors.FromRepository(err)
	apperrors.LogError(s.log, svcErr)
	return svcErr
}
