// Package routes defines the API routing configuration.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"kaha/internal/handlers"
	"kaha/internal/repositories"
	"kaha/internal/services/checkout"
)

// SetupRoutes wires all handlers onto the app.
func SetupRoutes(app *fiber.App, store *repositories.Store, catalog *checkout.Catalog) {
	cardHandler := handlers.NewCardHandler(store)
	bankHandler := handlers.NewBankHandler(store)
	walletHandler := handlers.NewWalletHandler(store)
	cashHandler := handlers.NewCashHandler(store)
	checkoutHandler := handlers.NewCheckoutHandler(catalog)

	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	// Catalog and order pricing
	api.Get("/products", checkoutHandler.ListProducts)
	api.Post("/orders", checkoutHandler.PriceOrder)

	// Dual-balance card. Password-bearing reads use POST so the secret
	// stays out of URLs and access logs.
	cards := api.Group("/cards")
	cards.Post("/", cardHandler.CreateCard)
	cards.Post("/:id/pay", cardHandler.Pay)
	cards.Post("/:id/deposits", cardHandler.Deposit)
	cards.Post("/:id/transfers", cardHandler.Transfer)
	cards.Post("/:id/balance", cardHandler.Balance)
	cards.Post("/:id/details", cardHandler.Details)
	cards.Post("/:id/history", cardHandler.History)

	// Bank-backed account
	accounts := api.Group("/accounts")
	accounts.Post("/", bankHandler.CreateAccount)
	accounts.Post("/:id/deposits", bankHandler.Deposit)
	accounts.Post("/:id/withdrawals", bankHandler.Withdraw)
	accounts.Post("/:id/payments", bankHandler.Pay)
	accounts.Get("/:id", bankHandler.Details)

	// E-wallet
	wallets := api.Group("/wallets")
	wallets.Post("/", walletHandler.CreateWallet)
	wallets.Post("/:id/cashin", walletHandler.CashIn)
	wallets.Post("/:id/cashout", walletHandler.CashOut)
	wallets.Post("/:id/send", walletHandler.Send)
	wallets.Get("/:id", walletHandler.Balance)

	// Cash tender
	payments := api.Group("/cash")
	payments.Post("/", cashHandler.CreatePayment)
	payments.Put("/:id/received", cashHandler.UpdateReceived)
	payments.Get("/:id", cashHandler.Receipt)
}
