package role

import (
	"context"

	"github.com/rs/zerolog"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/config"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/responses"
	"payment-gateway/internal/model"
)

// Service implements role management on top of the repository.
type Service struct {
	repo     Repository
	log      zerolog.Logger
	pageSize int
	pageMax  int
}

// NewService wires the role service.
func NewService(repo Repository, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		log:      log.With().Str("component", "role-service").Logger(),
		pageSize: cfg.DefaultPageSize,
		pageMax:  cfg.MaxPageSize,
	}
}

// FindAll returns one page of roles, trashed rows included.
func (s *Service) FindAll(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.RoleResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched roles",
		responses.NewRoleResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindActive returns one page of non-trashed roles.
func (s *Service) FindActive(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.RoleResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindActive(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched active roles",
		responses.NewRoleResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindTrashed returns one page of trashed roles.
func (s *Service) FindTrashed(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.RoleResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindTrashed(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched trashed roles",
		responses.NewRoleResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByID returns a single role.
func (s *Service) FindByID(ctx context.Context, id int) (*responses.ApiResponse[responses.RoleResponse], error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched role", responses.NewRoleResponse(*row))
	return &resp, nil
}

// FindByUserID returns the roles assigned to a user.
func (s *Service) FindByUserID(ctx context.Context, userID int) (*responses.ApiResponse[[]responses.RoleResponse], error) {
	rows, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched user roles", responses.NewRoleResponses(rows))
	return &resp, nil
}

// Create adds a role.
func (s *Service) Create(ctx context.Context, req requests.CreateRoleRequest) (*responses.ApiResponse[responses.RoleResponse], error) {
	row, err := s.repo.Create(ctx, &model.Role{Name: req.Name})
	if err != nil {
		return nil, s.fail(err)
	}
	s.log.Info().Int("role_id", row.ID).Str("name", row.Name).Msg("role created")
	resp := responses.NewResponse("Successfully created role", responses.NewRoleResponse(*row))
	return &resp, nil
}

// Update renames a role.
func (s *Service) Update(ctx context.Context, id int, req requests.UpdateRoleRequest) (*responses.ApiResponse[responses.RoleResponse], error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	existing.Name = req.Name

	row, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully updated role", responses.NewRoleResponse(*row))
	return &resp, nil
}

// Trash soft-deletes a role.
func (s *Service) Trash(ctx context.Context, id int) (*responses.ApiResponse[responses.RoleResponseDeleteAt], error) {
	row, err := s.repo.Trash(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully trashed role", responses.NewRoleResponseDeleteAt(*row))
	return &resp, nil
}

// Restore brings a trashed role back.
func (s *Service) Restore(ctx context.Context, id int) (*responses.ApiResponse[responses.RoleResponse], error) {
	row, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored role", responses.NewRoleResponse(*row))
	return &resp, nil
}

// DeletePermanent removes a role for good.
func (s *Service) DeletePermanent(ctx context.Context, id int) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeletePermanent(ctx, id); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted role permanently", true)
	return &resp, nil
}

// RestoreAll restores every trashed role.
func (s *Service) RestoreAll(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.RestoreAll(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored all roles", true)
	return &resp, nil
}

// DeleteAllPermanent removes every trashed role for good.
func (s *Service) DeleteAllPermanent(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeleteAllPermanent(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted all trashed roles permanently", true)
	return &resp, nil
}

func (s *Service) fail(err error) error {
	svcErr := apperrors.FromRepository(err)
	apperrors.LogError(s.log, svcErr)
	return svcErr
}
