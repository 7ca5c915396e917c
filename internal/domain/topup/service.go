package topup

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/config"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/responses"
	"payment-gateway/internal/infrastructure/metrics"
	"payment-gateway/internal/model"
	"payment-gateway/internal/utils/identifier"
	"payment-gateway/internal/utils/mask"
)

// Statuses recorded on money movement rows.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Service implements top-ups. A successful top-up credits the card's
// saldo in the same call.
type Service struct {
	repo     Repository
	saldos   SaldoStore
	log      zerolog.Logger
	pageSize int
	pageMax  int
}

// NewService wires the topup service.
func NewService(repo Repository, saldos SaldoStore, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		saldos:   saldos,
		log:      log.With().Str("component", "topup-service").Logger(),
		pageSize: cfg.DefaultPageSize,
		pageMax:  cfg.MaxPageSize,
	}
}

// FindAll returns one page of top-ups, trashed rows included.
func (s *Service) FindAll(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TopupResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched topups",
		responses.NewTopupResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindActive returns one page of non-trashed top-ups.
func (s *Service) FindActive(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TopupResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindActive(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched active topups",
		responses.NewTopupResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindTrashed returns one page of trashed top-ups.
func (s *Service) FindTrashed(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TopupResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindTrashed(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched trashed topups",
		responses.NewTopupResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByID returns a single top-up.
func (s *Service) FindByID(ctx context.Context, id int) (*responses.ApiResponse[responses.TopupResponse], error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched topup", responses.NewTopupResponse(*row))
	return &resp, nil
}

// FindByCardNumber returns one page of a card's top-ups.
func (s *Service) FindByCardNumber(ctx context.Context, cardNumber string, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TopupResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindByCardNumber(ctx, cardNumber, q)
	if err != nil {
		s.log.Warn().Str("card_number", mask.CardNumber(cardNumber)).Msg("topup lookup failed")
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched card topups",
		responses.NewTopupResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// Create records a top-up and credits the card's saldo.
func (s *Service) Create(ctx context.Context, req requests.CreateTopupRequest) (*responses.ApiResponse[responses.TopupResponse], error) {
	if _, err := s.saldos.FindByCardNumber(ctx, req.CardNumber); err != nil {
		s.log.Warn().Str("card_number", mask.CardNumber(req.CardNumber)).Msg("topup for unknown card")
		metrics.TopupsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}

	row, err := s.repo.Create(ctx, &model.Topup{
		CardNumber:  req.CardNumber,
		TopupNo:     identifier.NewTopupNo(),
		TopupAmount: req.TopupAmount,
		TopupMethod: req.TopupMethod,
		TopupTime:   time.Now(),
		Status:      StatusSuccess,
	})
	if err != nil {
		metrics.TopupsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}

	if _, err := s.saldos.AddBalance(ctx, req.CardNumber, req.TopupAmount); err != nil {
		metrics.TopupsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}

	metrics.TopupsTotal.WithLabelValues(StatusSuccess).Inc()
	s.log.Info().
		Str("topup_no", row.TopupNo).
		Str("card_number", mask.CardNumber(row.CardNumber)).
		Int64("amount", row.TopupAmount).
		Msg("topup recorded")
	resp := responses.NewResponse("Successfully created topup", responses.NewTopupResponse(*row))
	return &resp, nil
}

// Update adjusts a recorded top-up, applying the amount delta to the
// card's saldo.
func (s *Service) Update(ctx context.Context, id int, req requests.UpdateTopupRequest) (*responses.ApiResponse[responses.TopupResponse], error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}

	delta := req.TopupAmount - existing.TopupAmount
	existing.CardNumber = req.CardNumber
	existing.TopupAmount = req.TopupAmount
	existing.TopupMethod = req.TopupMethod

	row, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.fail(err)
	}

	if delta != 0 {
		if _, err := s.saldos.AddBalance(ctx, row.CardNumber, delta); err != nil {
			return nil, s.fail(err)
		}
	}

	resp := responses.NewResponse("Successfully updated topup", responses.NewTopupResponse(*row))
	return &resp, nil
}

// Trash soft-deletes a top-up.
func (s *Service) Trash(ctx context.Context, id int) (*responses.ApiResponse[responses.TopupResponseDeleteAt], error) {
	row, err := s.repo.Trash(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully trashed topup", responses.NewTopupResponseDeleteAt(*row))
	return &resp, nil
}

// Restore brings a trashed top-up back.
func (s *Service) Restore(ctx context.Context, id int) (*responses.ApiResponse[responses.TopupResponse], error) {
	row, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored topup", responses.NewTopupResponse(*row))
	return &resp, nil
}

// DeletePermanent removes a top-up for good.
func (s *Service) DeletePermanent(ctx context.Context, id int) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeletePermanent(ctx, id); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted topup permanently", true)
	return &resp, nil
}

// RestoreAll restores every trashed top-up.
func (s *Service) RestoreAll(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.RestoreAll(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored all topups", true)
	return &resp, nil
}

// DeleteAllPermanent removes every trashed top-up for good.
func (s *Service) DeleteAllPermanent(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeleteAllPermanent(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted all trashed topups permanently", true)
	return &resp, nil
}

// MonthlyAmounts returns per-month amount aggregates, optionally scoped
// to one card.
func (s *Service) MonthlyAmounts(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TopupMonthAmountResponse], error) {
	rows, err := s.repo.MonthlyAmounts(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly topup amounts", responses.NewTopupMonthAmounts(rows))
	return &resp, nil
}

// YearlyAmounts returns per-year amount aggregates.
func (s *Service) YearlyAmounts(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TopupYearAmountResponse], error) {
	rows, err := s.repo.YearlyAmounts(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly topup amounts", responses.NewTopupYearAmounts(rows))
	return &resp, nil
}

// MonthlyMethods returns per-method monthly aggregates.
func (s *Service) MonthlyMethods(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TopupMonthMethodResponse], error) {
	rows, err := s.repo.MonthlyMethods(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly topup methods", responses.NewTopupMonthMethods(rows))
	return &resp, nil
}

// YearlyMethods returns per-method yearly aggregates.
func (s *Service) YearlyMethods(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TopupYearMethodResponse], error) {
	rows, err := s.repo.YearlyMethods(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly topup methods", responses.NewTopupYearMethods(rows))
	return &resp, nil
}

// MonthStatusSuccess returns the month's successful top-up aggregate.
func (s *Service) MonthStatusSuccess(ctx context.Context, year, month int, cardNumber string) (*responses.ApiResponse[[]responses.TopupMonthStatusResponse], error) {
	return s.monthStatus(ctx, year, month, StatusSuccess, cardNumber)
}

// MonthStatusFailed returns the month's failed top-up aggregate.
func (s *Service) MonthStatusFailed(ctx context.Context, year, month int, cardNumber string) (*responses.ApiResponse[[]responses.TopupMonthStatusResponse], error) {
	return s.monthStatus(ctx, year, month, StatusFailed, cardNumber)
}

// YearStatusSuccess returns the year's successful top-up aggregate.
func (s *Service) YearStatusSuccess(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TopupYearStatusResponse], error) {
	return s.yearStatus(ctx, year, StatusSuccess, cardNumber)
}

// YearStatusFailed returns the year's failed top-up aggregate.
func (s *Service) YearStatusFailed(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TopupYearStatusResponse], error) {
	return s.yearStatus(ctx, year, StatusFailed, cardNumber)
}

func (s *Service) monthStatus(ctx context.Context, year, month int, status, cardNumber string) (*responses.ApiResponse[[]responses.TopupMonthStatusResponse], error) {
	rows, err := s.repo.MonthStatus(ctx, year, month, status, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly topup status", responses.NewTopupMonthStatuses(rows))
	return &resp, nil
}

func (s *Service) yearStatus(ctx context.Context, year int, status, cardNumber string) (*responses.ApiResponse[[]responses.TopupYearStatusResponse], error) {
	rows, err := s.repo.YearStatus(ctx, year, status, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly topup status", responses.NewTopupYearStatuses(rows))
	return &resp, nil
}

func (s *Service) fail(err error) error {
	svcErr := apperrors.FromRepository(err)
	apperrors.LogError(s.log, svcErr)
	return svcErr
}
