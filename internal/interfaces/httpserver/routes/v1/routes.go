// Package v1 wires the versioned API surface onto the gin engine.
package v1

import (
	"github.com/gin-gonic/gin"

	infraauth "payment-gateway/internal/infrastructure/auth"
	"payment-gateway/internal/interfaces/httpserver/handlers"
	"payment-gateway/internal/interfaces/httpserver/middlewares"
)

// Register mounts every /api/v1 route group. Read endpoints and the
// trash lifecycle require a Bearer access token; merchant payment
// ingestion authenticates with x-api-key instead.
func Register(r gin.IRouter, h *handlers.Handlers, tokens *infraauth.TokenManager) {
	api := r.Group("/api/v1")

	authMW := middlewares.Auth(tokens)
	apiKeyMW := middlewares.APIKey()

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.GET("/me", authMW, h.Auth.GetMe)
	}

	users := api.Group("/users", authMW)
	{
		users.GET("", h.User.FindActive)
		users.GET("/all", h.User.FindAll)
		users.GET("/trashed", h.User.FindTrashed)
		users.GET("/:id", h.User.FindByID)
		users.POST("", h.User.Create)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Trash)
		users.PATCH("/:id/restore", h.User.Restore)
		users.DELETE("/:id/permanent", h.User.DeletePermanent)
		users.PATCH("/restore-all", h.User.RestoreAll)
		users.DELETE("/permanent-all", h.User.DeleteAllPermanent)
	}

	roles := api.Group("/roles", authMW)
	{
		roles.GET("", h.Role.FindActive)
		roles.GET("/all", h.Role.FindAll)
		roles.GET("/trashed", h.Role.FindTrashed)
		roles.GET("/:id", h.Role.FindByID)
		roles.GET("/user/:user_id", h.Role.FindByUserID)
		roles.POST("", h.Role.Create)
		roles.PUT("/:id", h.Role.Update)
		roles.DELETE("/:id", h.Role.Trash)
		roles.PATCH("/:id/restore", h.Role.Restore)
		roles.DELETE("/:id/permanent", h.Role.DeletePermanent)
		roles.PATCH("/restore-all", h.Role.RestoreAll)
		roles.DELETE("/permanent-all", h.Role.DeleteAllPermanent)
	}

	cards := api.Group("/cards", authMW)
	{
		cards.GET("", h.Card.FindActive)
		cards.GET("/all", h.Card.FindAll)
		cards.GET("/trashed", h.Card.FindTrashed)
		cards.GET("/:id", h.Card.FindByID)
		cards.GET("/user/:user_id", h.Card.FindByUserID)
		cards.GET("/number/:card_number", h.Card.FindByCardNumber)
		cards.POST("", h.Card.Create)
		cards.PUT("/:id", h.Card.Update)
		cards.DELETE("/:id", h.Card.Trash)
		cards.PATCH("/:id/restore", h.Card.Restore)
		cards.DELETE("/:id/permanent", h.Card.DeletePermanent)
		cards.PATCH("/restore-all", h.Card.RestoreAll)
		cards.DELETE("/permanent-all", h.Card.DeleteAllPermanent)

		cards.GET("/dashboard", h.Card.Dashboard)
		cards.GET("/dashboard/:card_number", h.Card.DashboardByCardNumber)
		cards.GET("/stats/monthly-balance", h.Card.MonthlyBalance)
		cards.GET("/stats/yearly-balance", h.Card.YearlyBalance)
	}

	merchants := api.Group("/merchants", authMW)
	{
		merchants.GET("", h.Merchant.FindActive)
		merchants.GET("/all", h.Merchant.FindAll)
		merchants.GET("/trashed", h.Merchant.FindTrashed)
		merchants.GET("/:id", h.Merchant.FindByID)
		merchants.GET("/user/:user_id", h.Merchant.FindByUserID)
		merchants.POST("", h.Merchant.Create)
		merchants.PUT("/:id", h.Merchant.Update)
		merchants.PATCH("/:id/status", h.Merchant.UpdateStatus)
		merchants.DELETE("/:id", h.Merchant.Trash)
		merchants.PATCH("/:id/restore", h.Merchant.Restore)
		merchants.DELETE("/:id/permanent", h.Merchant.DeletePermanent)
		merchants.PATCH("/restore-all", h.Merchant.RestoreAll)
		merchants.DELETE("/permanent-all", h.Merchant.DeleteAllPermanent)

		merchants.GET("/transactions", h.Merchant.Transactions)
		merchants.GET("/:id/transactions", h.Merchant.TransactionsByID)
		merchants.GET("/stats/monthly-payment-methods", h.Merchant.MonthlyPaymentMethods)
		merchants.GET("/stats/yearly-payment-methods", h.Merchant.YearlyPaymentMethods)
		merchants.GET("/stats/monthly-amounts", h.Merchant.MonthlyAmounts)
		merchants.GET("/stats/yearly-amounts", h.Merchant.YearlyAmounts)
	}

	// Merchant self-service, authenticated by api key rather than JWT.
	merchantSelf := api.Group("/merchant", apiKeyMW)
	{
		merchantSelf.GET("/profile", h.Merchant.FindByAPIKey)
		merchantSelf.GET("/transactions", h.Merchant.TransactionsByAPIKey)
	}

	saldos := api.Group("/saldos", authMW)
	{
		saldos.GET("", h.Saldo.FindActive)
		saldos.GET("/all", h.Saldo.FindAll)
		saldos.GET("/trashed", h.Saldo.FindTrashed)
		saldos.GET("/:id", h.Saldo.FindByID)
		saldos.GET("/card/:card_number", h.Saldo.FindByCardNumber)
		saldos.POST("", h.Saldo.Create)
		saldos.PUT("/:id", h.Saldo.Update)
		saldos.DELETE("/:id", h.Saldo.Trash)
		saldos.PATCH("/:id/restore", h.Saldo.Restore)
		saldos.DELETE("/:id/permanent", h.Saldo.DeletePermanent)
		saldos.PATCH("/restore-all", h.Saldo.RestoreAll)
		saldos.DELETE("/permanent-all", h.Saldo.DeleteAllPermanent)

		saldos.GET("/stats/monthly-total-balance", h.Saldo.MonthlyTotalBalance)
		saldos.GET("/stats/yearly-total-balance", h.Saldo.YearlyTotalBalance)
	}

	topups := api.Group("/topups", authMW)
	{
		topups.GET("", h.Topup.FindActive)
		topups.GET("/all", h.Topup.FindAll)
		topups.GET("/trashed", h.Topup.FindTrashed)
		topups.GET("/:id", h.Topup.FindByID)
		topups.GET("/card/:card_number", h.Topup.FindByCardNumber)
		topups.POST("", h.Topup.Create)
		topups.PUT("/:id", h.Topup.Update)
		topups.DELETE("/:id", h.Topup.Trash)
		topups.PATCH("/:id/restore", h.Topup.Restore)
		topups.DELETE("/:id/permanent", h.Topup.DeletePermanent)
		topups.PATCH("/restore-all", h.Topup.RestoreAll)
		topups.DELETE("/permanent-all", h.Topup.DeleteAllPermanent)

		topups.GET("/stats/monthly-amounts", h.Topup.MonthlyAmounts)
		topups.GET("/stats/yearly-amounts", h.Topup.YearlyAmounts)
		topups.GET("/stats/monthly-methods", h.Topup.MonthlyMethods)
		topups.GET("/stats/yearly-methods", h.Topup.YearlyMethods)
		topups.GET("/stats/month-success", h.Topup.MonthStatusSuccess)
		topups.GET("/stats/month-failed", h.Topup.MonthStatusFailed)
		topups.GET("/stats/year-success", h.Topup.YearStatusSuccess)
		topups.GET("/stats/year-failed", h.Topup.YearStatusFailed)
	}

	transactions := api.Group("/transactions")
	{
		// Payment ingestion acts on behalf of a merchant.
		transactions.POST("", apiKeyMW, h.Transaction.Create)
		transactions.PUT("/:id", apiKeyMW, h.Transaction.Update)

		transactions.GET("", authMW, h.Transaction.FindActive)
		transactions.GET("/all", authMW, h.Transaction.FindAll)
		transactions.GET("/trashed", authMW, h.Transaction.FindTrashed)
		transactions.GET("/:id", authMW, h.Transaction.FindByID)
		transactions.GET("/card/:card_number", authMW, h.Transaction.FindByCardNumber)
		transactions.GET("/merchant/:merchant_id", authMW, h.Transaction.FindByMerchantID)
		transactions.DELETE("/:id", authMW, h.Transaction.Trash)
		transactions.PATCH("/:id/restore", authMW, h.Transaction.Restore)
		transactions.DELETE("/:id/permanent", authMW, h.Transaction.DeletePermanent)
		transactions.PATCH("/restore-all", authMW, h.Transaction.RestoreAll)
		transactions.DELETE("/permanent-all", authMW, h.Transaction.DeleteAllPermanent)

		transactions.GET("/stats/monthly-amounts", authMW, h.Transaction.MonthlyAmounts)
		transactions.GET("/stats/yearly-amounts", authMW, h.Transaction.YearlyAmounts)
		transactions.GET("/stats/monthly-methods", authMW, h.Transaction.MonthlyMethods)
		transactions.GET("/stats/yearly-methods", authMW, h.Transaction.YearlyMethods)
		transactions.GET("/stats/month-success", authMW, h.Transaction.MonthStatusSuccess)
		transactions.GET("/stats/month-failed", authMW, h.Transaction.MonthStatusFailed)
		transactions.GET("/stats/year-success", authMW, h.Transaction.YearStatusSuccess)
		transactions.GET("/stats/year-failed", authMW, h.Transaction.YearStatusFailed)
	}

	transfers := api.Group("/transfers", authMW)
	{
		transfers.GET("", h.Transfer.FindActive)
		transfers.GET("/all", h.Transfer.FindAll)
		transfers.GET("/trashed", h.Transfer.FindTrashed)
		transfers.GET("/:id", h.Transfer.FindByID)
		transfers.GET("/from/:card_number", h.Transfer.FindByTransferFrom)
		transfers.GET("/to/:card_number", h.Transfer.FindByTransferTo)
		transfers.POST("", h.Transfer.Create)
		transfers.PUT("/:id", h.Transfer.Update)
		transfers.DELETE("/:id", h.Transfer.Trash)
		transfers.PATCH("/:id/restore", h.Transfer.Restore)
		transfers.DELETE("/:id/permanent", h.Transfer.DeletePermanent)
		transfers.PATCH("/restore-all", h.Transfer.RestoreAll)
		transfers.DELETE("/permanent-all", h.Transfer.DeleteAllPermanent)

		transfers.GET("/stats/monthly-amounts", h.Transfer.MonthlyAmounts)
		transfers.GET("/stats/yearly-amounts", h.Transfer.YearlyAmounts)
		transfers.GET("/stats/month-success", h.Transfer.MonthStatusSuccess)
		transfers.GET("/stats/month-failed", h.Transfer.MonthStatusFailed)
		transfers.GET("/stats/year-success", h.Transfer.YearStatusSuccess)
		transfers.GET("/stats/year-failed", h.Transfer.YearStatusFailed)
	}

	withdraws := api.Group("/withdraws", authMW)
	{
		withdraws.GET("", h.Withdraw.FindActive)
		withdraws.GET("/all", h.Withdraw.FindAll)
		withdraws.GET("/trashed", h.Withdraw.FindTrashed)
		withdraws.GET("/:id", h.Withdraw.FindByID)
		withdraws.GET("/card/:card_number", h.Withdraw.FindByCardNumber)
		withdraws.POST("", h.Withdraw.Create)
		withdraws.PUT("/:id", h.Withdraw.Update)
		withdraws.DELETE("/:id", h.Withdraw.Trash)
		withdraws.PATCH("/:id/restore", h.Withdraw.Restore)
		withdraws.DELETE("/:id/permanent", h.Withdraw.DeletePermanent)
		withdraws.PATCH("/restore-all", h.Withdraw.RestoreAll)
		withdraws.DELETE("/permanent-all", h.Withdraw.DeleteAllPermanent)

		withdraws.GET("/stats/monthly-amounts", h.Withdraw.MonthlyAmounts)
		withdraws.GET("/stats/yearly-amounts", h.Withdraw.YearlyAmounts)
		withdraws.GET("/stats/month-success", h.Withdraw.MonthStatusSuccess)
		withdraws.GET("/stats/month-failed", h.Withdraw.MonthStatusFailed)
		withdraws.GET("/stats/year-success", h.Withdraw.YearStatusSuccess)
		withdraws.GET("/stats/year-failed", h.Withdraw.YearStatusFailed)
	}
}
