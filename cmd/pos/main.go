// Package main is an interactive point-of-sale session driving the
// payment services in process: build an order from the catalog, then
// settle it with one of the four payment methods.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"kaha/internal/config"
	"kaha/internal/services/bank"
	"kaha/internal/services/card"
	"kaha/internal/services/cash"
	"kaha/internal/services/checkout"
	"kaha/internal/services/ewallet"
)

type session struct {
	in       *bufio.Scanner
	catalog  *checkout.Catalog
	currency string
}

func main() {
	config.LoadEnv()

	catalogPath := config.GetEnv("CATALOG_PATH", "config/catalog.yaml")
	catalog, err := checkout.LoadCatalog(catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	s := &session{
		in:       bufio.NewScanner(os.Stdin),
		catalog:  catalog,
		currency: catalog.Currency(),
	}

	fmt.Println("=== Welcome to the Payment System ===")
	total := s.buildOrder()
	fmt.Printf("\nTotal Amount: %.2f %s\n", total, s.currency)

	fmt.Println("\nChoose payment method:")
	fmt.Println("1. Bank-Based")
	fmt.Println("2. E-Wallet")
	fmt.Println("3. ATM Card")
	fmt.Println("4. Cash")

	switch s.prompt("Enter option (1-4): ") {
	case "1":
		s.bankMenu()
	case "2":
		s.walletMenu()
	case "3":
		s.cardMenu()
	case "4":
		s.cashMenu(total)
	default:
		fmt.Println("Invalid choice.")
	}
}

func (s *session) prompt(msg string) string {
	fmt.Print(msg)
	if !s.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *session) promptFloat(msg string) float64 {
	for {
		v, err := strconv.ParseFloat(s.prompt(msg), 64)
		if err == nil {
			return v
		}
		fmt.Println("Invalid input. Please enter a valid number.")
	}
}

func (s *session) promptInt(msg string) int {
	for {
		v, err := strconv.Atoi(s.prompt(msg))
		if err == nil {
			return v
		}
		fmt.Println("Invalid input. Please enter a whole number.")
	}
}

func (s *session) buildOrder() float64 {
	fmt.Println("\nAvailable Products:")
	for _, p := range s.catalog.Products() {
		fmt.Printf("%d. %s - %.2f %s\n", p.ID, p.Name, p.Price, s.currency)
	}
	fmt.Println("\nEnter the number of the product you want to buy (0 to finish):")

	order := checkout.NewOrder(s.catalog)
	for {
		id := s.promptInt("Product number: ")
		if id == 0 {
			break
		}
		qty := s.promptInt("Quantity: ")
		if err := order.Add(id, qty); err != nil {
			fmt.Println(err)
		}
	}

	fmt.Println("\nItems Purchased:")
	for _, l := range order.Lines() {
		fmt.Printf("- %s x%d: %.2f\n", l.Product.Name, l.Quantity, l.Subtotal)
	}
	return order.Total()
}

func (s *session) bankMenu() {
	account := bank.NewAccount(bank.Config{
		AccountName:   s.prompt("Enter account name: "),
		BankName:      s.prompt("Enter bank name: "),
		AccountNumber: s.prompt("Enter account number: "),
		Currency:      s.currency,
		PaymentID:     s.prompt("Enter payment ID (blank to generate): "),
		Amount:        s.promptFloat("Enter base amount for the transaction: "),
	})

	for {
		fmt.Println("\n1. Deposit\n2. Withdraw\n3. Check Balance\n4. View Payment Details\n5. Exit")
		switch s.prompt("Enter your choice (1-5): ") {
		case "1":
			s.report(account.Deposit(s.promptFloat("Enter amount to deposit: ")))
		case "2":
			s.report(account.Withdraw(s.promptFloat("Enter amount to withdraw: ")))
		case "3":
			fmt.Printf("Current balance: %.2f %s\n", account.Balance(), s.currency)
		case "4":
			fmt.Println(account.PaymentDetails())
		case "5":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func (s *session) walletMenu() {
	owner := s.prompt("Enter your name: ")
	opening := config.GetFloatEnv("WALLET_OPENING_BALANCE", 5000)
	wallet := ewallet.NewWallet(owner, opening)

	for {
		fmt.Println("\n1. Check Balance\n2. Cash In\n3. Cash Out\n4. Send Payment\n5. Exit")
		switch s.prompt("Enter your choice (1-5): ") {
		case "1":
			fmt.Printf("Current balance: %.2f %s\n", wallet.Balance(), s.currency)
		case "2":
			s.report(wallet.CashIn(s.promptFloat("Enter amount to cash in: ")))
		case "3":
			s.report(wallet.CashOut(s.promptFloat("Enter amount to cash out: ")))
		case "4":
			s.report(wallet.Send(s.promptFloat("Enter amount to send: ")))
		case "5":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func (s *session) cardMenu() {
	c, err := card.NewCard(card.Config{
		Number:         s.prompt("Enter card number: "),
		CVV:            s.prompt("Enter CVV: "),
		Expiry:         s.prompt("Enter expiry date (MM/YY): "),
		CreditLimit:    s.promptFloat("Enter credit limit: "),
		SavingsBalance: s.promptFloat("Enter initial savings balance: "),
		Password:       s.prompt("Set a password: "),
	}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	for {
		fmt.Println("\n1. Pay for Purchase\n2. Deposit Funds\n3. Pay Credit from Savings\n4. Check Balance\n5. View Card Details\n6. Exit")
		switch s.prompt("Choose an option (1-6): ") {
		case "1":
			account, err := card.ParseAccountType(s.prompt("Pay using which account? (credit/savings): "))
			if err != nil {
				fmt.Println(err)
				break
			}
			amount := s.promptFloat("Enter payment amount: ")
			s.report(c.Pay(amount, account, s.prompt("Enter password: ")))
		case "2":
			account, err := card.ParseAccountType(s.prompt("Deposit to which account? (credit/savings): "))
			if err != nil {
				fmt.Println(err)
				break
			}
			amount := s.promptFloat("Enter deposit amount: ")
			applied, err := c.Deposit(amount, account, s.prompt("Enter password: "))
			if err != nil {
				fmt.Println(err)
				break
			}
			fmt.Printf("Deposited %.2f %s (requested %.2f)\n", applied, s.currency, amount)
		case "3":
			amount := s.promptFloat("Enter amount to pay credit from savings: ")
			applied, credit, err := c.TransferSavingsToCredit(amount, s.prompt("Enter password: "))
			if err != nil {
				fmt.Println(err)
				break
			}
			fmt.Printf("Paid %.2f from savings to credit. Available credit: %.2f %s\n", applied, credit, s.currency)
		case "4":
			account, err := card.ParseAccountType(s.prompt("Check balance for which account? (credit/savings): "))
			if err != nil {
				fmt.Println(err)
				break
			}
			balance, err := c.Balance(account, s.prompt("Enter password: "))
			if err != nil {
				fmt.Println(err)
				break
			}
			fmt.Printf("Current balance: %.2f %s\n", balance, s.currency)
		case "5":
			d, err := c.Details(s.prompt("Enter password: "))
			if err != nil {
				fmt.Println(err)
				break
			}
			fmt.Printf("Card Number: %s\nExpiry Date: %s\nCredit Limit: %.2f\nAvailable Credit: %.2f\nSavings Balance: %.2f\n",
				d.MaskedNumber, d.Expiry, d.CreditLimit, d.AvailableCredit, d.SavingsBalance)
		case "6":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func (s *session) cashMenu(total float64) {
	if total <= 0 {
		fmt.Println("Nothing to pay.")
		return
	}

	receiptNo := s.prompt("Enter receipt number (blank to generate): ")
	payment, err := cash.NewPayment(receiptNo, total, s.promptFloat("Enter amount received: "))
	for err != nil {
		fmt.Println(err)
		payment, err = cash.NewPayment(receiptNo, total, s.promptFloat("Enter amount received: "))
	}

	s.printReceipt(payment.Receipt())

	for {
		switch s.prompt("\nUpdate the amount received or exit? (u/e): ") {
		case "u":
			if err := payment.SetReceived(s.promptFloat("Enter amount received: ")); err != nil {
				fmt.Println(err)
				continue
			}
			s.printReceipt(payment.Receipt())
		case "e":
			fmt.Println("Thank you.")
			return
		default:
			fmt.Println("Please enter u or e.")
		}
	}
}

func (s *session) printReceipt(r cash.Receipt) {
	fmt.Println("\n--- CASH METHOD ---")
	fmt.Printf("Receipt Number: %s\n", r.ReceiptNumber)
	fmt.Printf("Total Amount: %.2f %s\n", r.AmountDue, s.currency)
	fmt.Printf("Amount Received: %.2f %s\n", r.AmountReceived, s.currency)
	fmt.Printf("Change: %.2f %s\n", r.Change, s.currency)
	if r.Exact {
		fmt.Println("Exact Payment: Yes")
	} else {
		fmt.Println("Exact Payment: No")
	}
}

func (s *session) report(balance float64, err error) {
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("New balance: %.2f %s\n", balance, s.currency)
}
