package card

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/config"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/responses"
	"payment-gateway/internal/model"
	"payment-gateway/internal/utils/identifier"
	"payment-gateway/internal/utils/mask"
)

// Service implements card issuing and lookup. Card numbers are masked in
// every log line.
type Service struct {
	repo     Repository
	log      zerolog.Logger
	pageSize int
	pageMax  int
}

// NewService wires the card service.
func NewService(repo Repository, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		log:      log.With().Str("component", "card-service").Logger(),
		pageSize: cfg.DefaultPageSize,
		pageMax:  cfg.MaxPageSize,
	}
}

// FindAll returns one page of cards, trashed rows included.
func (s *Service) FindAll(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.CardResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched cards",
		responses.NewCardResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindActive returns one page of non-trashed cards.
func (s *Service) FindActive(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.CardResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindActive(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched active cards",
		responses.NewCardResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindTrashed returns one page of trashed cards.
func (s *Service) FindTrashed(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.CardResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindTrashed(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched trashed cards",
		responses.NewCardResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByID returns a single card.
func (s *Service) FindByID(ctx context.Context, id int) (*responses.ApiResponse[responses.CardResponse], error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched card", responses.NewCardResponse(*row))
	return &resp, nil
}

// FindByUserID returns every card owned by a user.
func (s *Service) FindByUserID(ctx context.Context, userID int) (*responses.ApiResponse[[]responses.CardResponse], error) {
	rows, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched user cards", responses.NewCardResponses(rows))
	return &resp, nil
}

// FindByCardNumber returns a card by its number.
func (s *Service) FindByCardNumber(ctx context.Context, cardNumber string) (*responses.ApiResponse[responses.CardResponse], error) {
	row, err := s.repo.FindByCardNumber(ctx, cardNumber)
	if err != nil {
		s.log.Warn().Str("card_number", mask.CardNumber(cardNumber)).Msg("card lookup failed")
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched card", responses.NewCardResponse(*row))
	return &resp, nil
}

// Create issues a card. The card number is generated server side.
func (s *Service) Create(ctx context.Context, req requests.CreateCardRequest) (*responses.ApiResponse[responses.CardResponse], error) {
	expire, err := time.Parse("2006-01-02", req.ExpireDate)
	if err != nil {
		return nil, apperrors.Validation([]string{"expire_date: must be a date in YYYY-MM-DD form"})
	}

	row, err := s.repo.Create(ctx, &model.Card{
		UserID:       req.UserID,
		CardNumber:   identifier.NewCardNumber(),
		CardType:     req.CardType,
		ExpireDate:   expire,
		CVV:          req.CVV,
		CardProvider: req.CardProvider,
	})
	if err != nil {
		return nil, s.fail(err)
	}

	s.log.Info().
		Int("card_id", row.ID).
		Str("card_number", mask.CardNumber(row.CardNumber)).
		Msg("card issued")
	resp := responses.NewResponse("Successfully created card", responses.NewCardResponse(*row))
	return &resp, nil
}

// Update modifies an issued card. The card number never changes.
func (s *Service) Update(ctx context.Context, id int, req requests.UpdateCardRequest) (*responses.ApiResponse[responses.CardResponse], error) {
	expire, err := time.Parse("2006-01-02", req.ExpireDate)
	if err != nil {
		return nil, apperrors.Validation([]string{"expire_date: must be a date in YYYY-MM-DD form"})
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}

	existing.UserID = req.UserID
	existing.CardType = req.CardType
	existing.ExpireDate = expire
	existing.CVV = req.CVV
	existing.CardProvider = req.CardProvider

	row, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully updated card", responses.NewCardResponse(*row))
	return &resp, nil
}

// Trash soft-deletes a card.
func (s *Service) Trash(ctx context.Context, id int) (*responses.ApiResponse[responses.CardResponseDeleteAt], error) {
	row, err := s.repo.Trash(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully trashed card", responses.NewCardResponseDeleteAt(*row))
	return &resp, nil
}

// Restore brings a trashed card back.
func (s *Service) Restore(ctx context.Context, id int) (*responses.ApiResponse[responses.CardResponse], error) {
	row, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored card", responses.NewCardResponse(*row))
	return &resp, nil
}

// DeletePermanent removes a card for good.
func (s *Service) DeletePermanent(ctx context.Context, id int) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeletePermanent(ctx, id); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted card permanently", true)
	return &resp, nil
}

// RestoreAll restores every trashed card.
func (s *Service) RestoreAll(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.RestoreAll(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored all cards", true)
	return &resp, nil
}

// DeleteAllPermanent removes every trashed card for good.
func (s *Service) DeleteAllPermanent(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeleteAllPermanent(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted all trashed cards permanently", true)
	return &resp, nil
}

// Dashboard returns platform-wide totals.
func (s *Service) Dashboard(ctx context.Context) (*responses.ApiResponse[responses.DashboardCard], error) {
	row, err := s.repo.Dashboard(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched card dashboard", responses.NewDashboardCard(*row))
	return &resp, nil
}

// DashboardByCardNumber returns totals for one card.
func (s *Service) DashboardByCardNumber(ctx context.Context, cardNumber string) (*responses.ApiResponse[responses.DashboardCardCardNumber], error) {
	row, err := s.repo.DashboardByCardNumber(ctx, cardNumber)
	if err != nil {
		s.log.Warn().Str("card_number", mask.CardNumber(cardNumber)).Msg("dashboard lookup failed")
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched card dashboard", responses.NewDashboardCardCardNumber(*row))
	return &resp, nil
}

// MonthlyBalance returns monthly balance points for a year.
func (s *Service) MonthlyBalance(ctx context.Context, year int) (*responses.ApiResponse[[]responses.CardResponseMonthBalance], error) {
	rows, err := s.repo.MonthlyBalance(ctx, year)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly balance", responses.NewCardMonthBalances(rows))
	return &resp, nil
}

// YearlyBalance returns yearly balance points up to a year.
func (s *Service) YearlyBalance(ctx context.Context, year int) (*responses.ApiResponse[[]responses.CardResponseYearBalance], error) {
	rows, err := s.repo.YearlyBalance(ctx, year)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly balance", responses.NewCardYearBalances(rows))
	return &resp, nil
}

func (s *Service) fail(err error) error {
	svcErr := apperrors.FromRepository(err)
	apperrors.LogError(s.log, svcErr)
	return svcErr
}
