package merchant

import (
	"context"

	"github.com/rs/zerolog"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/config"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/responses"
	"payment-gateway/internal/model"
	"payment-gateway/internal/utils/identifier"
	"payment-gateway/internal/utils/mask"
)

// Service implements merchant management. The plaintext API key is only
// returned once, from Create; every other surface masks it.
type Service struct {
	repo     Repository
	log      zerolog.Logger
	pageSize int
	pageMax  int
}

// NewService wires the merchant service.
func NewService(repo Repository, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		log:      log.With().Str("component", "merchant-service").Logger(),
		pageSize: cfg.DefaultPageSize,
		pageMax:  cfg.MaxPageSize,
	}
}

// FindAll returns one page of merchants, trashed rows included.
func (s *Service) FindAll(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.MerchantResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched merchants",
		responses.NewMerchantResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindActive returns one page of non-trashed merchants.
func (s *Service) FindActive(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.MerchantResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindActive(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched active merchants",
		responses.NewMerchantResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindTrashed returns one page of trashed merchants.
func (s *Service) FindTrashed(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.MerchantResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindTrashed(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched trashed merchants",
		responses.NewMerchantResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByID returns a single merchant.
func (s *Service) FindByID(ctx context.Context, id int) (*responses.ApiResponse[responses.MerchantResponse], error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched merchant", responses.NewMerchantResponse(*row))
	return &resp, nil
}

// FindByAPIKey returns the merchant a key belongs to.
func (s *Service) FindByAPIKey(ctx context.Context, apiKey string) (*responses.ApiResponse[responses.MerchantResponse], error) {
	row, err := s.repo.FindByAPIKey(ctx, apiKey)
	if err != nil {
		s.log.Warn().Str("api_key", mask.APIKey(apiKey)).Msg("merchant lookup by key failed")
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched merchant", responses.NewMerchantResponse(*row))
	return &resp, nil
}

// FindByUserID returns every merchant owned by a user.
func (s *Service) FindByUserID(ctx context.Context, userID int) (*responses.ApiResponse[[]responses.MerchantResponse], error) {
	rows, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched user merchants", responses.NewMerchantResponses(rows))
	return &resp, nil
}

// Create registers a merchant and returns the one-time plaintext key.
func (s *Service) Create(ctx context.Context, req requests.CreateMerchantRequest) (*responses.ApiResponse[responses.MerchantCreatedResponse], error) {
	apiKey := identifier.NewMerchantAPIKey()
	row, err := s.repo.Create(ctx, &model.Merchant{
		Name:   req.Name,
		APIKey: apiKey,
		UserID: req.UserID,
		Status: "active",
	})
	if err != nil {
		return nil, s.fail(err)
	}

	s.log.Info().
		Int("merchant_id", row.ID).
		Str("api_key", mask.APIKey(row.APIKey)).
		Msg("merchant registered")
	resp := responses.NewResponse("Successfully created merchant", responses.NewMerchantCreatedResponse(*row))
	return &resp, nil
}

// Update modifies a merchant. The API key never changes here.
func (s *Service) Update(ctx context.Context, id int, req requests.UpdateMerchantRequest) (*responses.ApiResponse[responses.MerchantResponse], error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}

	existing.Name = req.Name
	existing.UserID = req.UserID
	existing.Status = req.Status

	row, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully updated merchant", responses.NewMerchantResponse(*row))
	return &resp, nil
}

// UpdateStatus flips the merchant's status.
func (s *Service) UpdateStatus(ctx context.Context, id int, req requests.UpdateMerchantStatusRequest) (*responses.ApiResponse[responses.MerchantResponse], error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	existing.Status = req.Status

	row, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully updated merchant status", responses.NewMerchantResponse(*row))
	return &resp, nil
}

// Trash soft-deletes a merchant.
func (s *Service) Trash(ctx context.Context, id int) (*responses.ApiResponse[responses.MerchantResponseDeleteAt], error) {
	row, err := s.repo.Trash(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully trashed merchant", responses.NewMerchantResponseDeleteAt(*row))
	return &resp, nil
}

// Restore brings a trashed merchant back.
func (s *Service) Restore(ctx context.Context, id int) (*responses.ApiResponse[responses.MerchantResponse], error) {
	row, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored merchant", responses.NewMerchantResponse(*row))
	return &resp, nil
}

// DeletePermanent removes a merchant for good.
func (s *Service) DeletePermanent(ctx context.Context, id int) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeletePermanent(ctx, id); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted merchant permanently", true)
	return &resp, nil
}

// RestoreAll restores every trashed merchant.
func (s *Service) RestoreAll(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.RestoreAll(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored all merchants", true)
	return &resp, nil
}

// DeleteAllPermanent removes every trashed merchant for good.
func (s *Service) DeleteAllPermanent(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeleteAllPermanent(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted all trashed merchants permanently", true)
	return &resp, nil
}

// Transactions returns one page of transactions for a merchant, or for
// all merchants when merchantID is 0.
func (s *Service) Transactions(ctx context.Context, merchantID int, q requests.ListQuery) (*responses.ApiResponsePagination[responses.MerchantTransactionResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.Transactions(ctx, merchantID, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched merchant transactions",
		responses.NewMerchantTransactionResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// TransactionsByAPIKey resolves the key and pages its transactions.
func (s *Service) TransactionsByAPIKey(ctx context.Context, apiKey string, q requests.ListQuery) (*responses.ApiResponsePagination[responses.MerchantTransactionResponse], error) {
	m, err := s.repo.FindByAPIKey(ctx, apiKey)
	if err != nil {
		s.log.Warn().Str("api_key", mask.APIKey(apiKey)).Msg("merchant lookup by key failed")
		return nil, s.fail(err)
	}
	return s.Transactions(ctx, m.ID, q)
}

// MonthlyPaymentMethods returns per-method monthly aggregates.
func (s *Service) MonthlyPaymentMethods(ctx context.Context, merchantID, year int) (*responses.ApiResponse[[]responses.MerchantResponseMonthlyPaymentMethod], error) {
	rows, err := s.repo.MonthlyPaymentMethods(ctx, merchantID, year)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly payment methods", responses.NewMerchantMonthlyPaymentMethods(rows))
	return &resp, nil
}

// YearlyPaymentMethods returns per-method yearly aggregates.
func (s *Service) YearlyPaymentMethods(ctx context.Context, merchantID, year int) (*responses.ApiResponse[[]responses.MerchantResponseYearlyPaymentMethod], error) {
	rows, err := s.repo.YearlyPaymentMethods(ctx, merchantID, year)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly payment methods", responses.NewMerchantYearlyPaymentMethods(rows))
	return &resp, nil
}

// MonthlyAmounts returns monthly amount aggregates.
func (s *Service) MonthlyAmounts(ctx context.Context, merchantID, year int) (*responses.ApiResponse[[]responses.MerchantResponseMonthlyAmount], error) {
	rows, err := s.repo.MonthlyAmounts(ctx, merchantID, year)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly amounts", responses.NewMerchantMonthlyAmounts(rows))
	return &resp, nil
}

// YearlyAmounts returns yearly amount aggregates.
func (s *Service) YearlyAmounts(ctx context.Context, merchantID, year int) (*responses.ApiResponse[[]responses.MerchantResponseYearlyAmount], error) {
	rows, err := s.repo.YearlyAmounts(ctx, merchantID, year)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly amounts", responses.NewMerchantYearlyAmounts(rows))
	return &resp, nil
}

func (s *Service) fail(err error) error {
	svcErr := apperrors.FromRepository(err)
	apperrors.LogError(s.log, svcErr)
	return svcErr
}
