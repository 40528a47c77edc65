package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/adapter/repository/file"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/config"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/security"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/usecase/models"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/usecase/service_interfaces"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/usecase/services"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// The binary is a thin boundary over the core: it parses and rejects raw
// input, then drives the ledger and the transaction log together for every
// money movement (mutate balance first, then append the record).
type app struct {
	cfg          config.Config
	accounts     service_interfaces.AccountService
	transactions service_interfaces.TransactionService
	settings     service_interfaces.SettingsService
	auth         *services.AuthService
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	accountService := services.NewAccountService(file.NewAccountStore(cfg.StorageDir))
	a := &app{
		cfg:          cfg,
		accounts:     accountService,
		transactions: services.NewTransactionService(file.NewTransactionStore(cfg.StorageDir)),
		settings:     services.NewSettingsService(file.NewSettingsStore(cfg.StorageDir)),
		auth:         services.NewAuthService(accountService),
	}

	a.run(context.Background())
}

func (a *app) run(ctx context.Context) {
	color.Cyan("ATM ready. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printHelp()
		case "open":
			a.open(ctx, scanner)
		case "login":
			a.login(ctx, scanner)
		case "logout":
			a.auth.Logout()
			color.Cyan("Logged out.")
		case "balance":
			a.balance(ctx)
		case "deposit":
			a.deposit(ctx, fields[1:])
		case "withdraw":
			a.withdraw(ctx, fields[1:])
		case "transfer":
			a.transfer(ctx, fields[1:])
		case "statement":
			a.statement(ctx)
		case "changepin":
			a.changePin(ctx, scanner)
		case "darkmode":
			a.darkMode(ctx, fields[1:])
		case "exit", "quit":
			return
		default:
			color.Red("Unknown command %q. Type 'help' for commands.", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  open                      open a new account")
	fmt.Println("  login                     authenticate with account number and PIN")
	fmt.Println("  logout                    end the session")
	fmt.Println("  balance                   show the current balance")
	fmt.Println("  deposit <amount>          deposit into the active account")
	fmt.Println("  withdraw <amount>         withdraw from the active account")
	fmt.Println("  transfer <to> <amount>    transfer to another account")
	fmt.Println("  statement                 show the mini statement")
	fmt.Println("  changepin                 change the active account PIN")
	fmt.Println("  darkmode <on|off>         toggle the dark mode preference")
	fmt.Println("  exit                      quit")
}

func (a *app) open(ctx context.Context, scanner *bufio.Scanner) {
	name, ok := prompt(scanner, "Name: ")
	if !ok {
		return
	}
	pin, ok := prompt(scanner, "PIN: ")
	if !ok {
		return
	}

	resp, _ := a.accounts.OpenAccount(ctx, models.OpenAccountRequest{Name: name, Pin: pin})
	if !resp.Success {
		color.Red("%s: %s", resp.Message, strings.Join(resp.Errors, "; "))
		return
	}

	color.Green("Account opened. Your account number is %s.", resp.Data.AccountNumber)
}

func (a *app) login(ctx context.Context, scanner *bufio.Scanner) {
	accountNumber, ok := prompt(scanner, "Account number: ")
	if !ok {
		return
	}
	pin, ok := prompt(scanner, "PIN: ")
	if !ok {
		return
	}

	if !a.auth.Login(ctx, accountNumber, pin) {
		color.Red("Login failed.")
		return
	}

	color.Green("Welcome back.")
}

func (a *app) balance(ctx context.Context) {
	account, ok := a.auth.CurrentAccount(ctx)
	if !ok {
		color.Red("Not logged in.")
		return
	}

	color.Green("%s: %s", account.Name, account.Balance.StringFixed(2))
}

func (a *app) deposit(ctx context.Context, args []string) {
	account, ok := a.auth.CurrentAccount(ctx)
	if !ok {
		color.Red("Not logged in.")
		return
	}
	amount, ok := parseAmount(args, 0)
	if !ok {
		return
	}

	resp, _ := a.accounts.Deposit(ctx, models.AmountRequest{AccountNumber: account.AccountNumber, Amount: amount})
	if !resp.Success {
		color.Red("%s: %s", resp.Message, strings.Join(resp.Errors, "; "))
		return
	}

	// Balance committed; the log entry follows.
	_, _ = a.transactions.Record(ctx, account.AccountNumber, domain.TransactionTypeDeposit, amount, "Cash deposit")
	color.Green("New balance: %s", resp.Data.Balance.StringFixed(2))
}

func (a *app) withdraw(ctx context.Context, args []string) {
	account, ok := a.auth.CurrentAccount(ctx)
	if !ok {
		color.Red("Not logged in.")
		return
	}
	amount, ok := parseAmount(args, 0)
	if !ok {
		return
	}

	resp, _ := a.accounts.Withdraw(ctx, models.AmountRequest{AccountNumber: account.AccountNumber, Amount: amount})
	if !resp.Success {
		color.Red("%s: %s", resp.Message, strings.Join(resp.Errors, "; "))
		return
	}

	_, _ = a.transactions.Record(ctx, account.AccountNumber, domain.TransactionTypeWithdraw, amount, "Cash withdrawal")
	color.Green("New balance: %s", resp.Data.Balance.StringFixed(2))
}

func (a *app) transfer(ctx context.Context, args []string) {
	account, ok := a.auth.CurrentAccount(ctx)
	if !ok {
		color.Red("Not logged in.")
		return
	}
	if len(args) < 2 {
		color.Red("Usage: transfer <to> <amount>")
		return
	}

	toAccountNumber := strings.TrimSpace(args[0])
	if !security.IsAccountNumber(toAccountNumber) {
		color.Red("Destination must be a 10-digit account number.")
		return
	}
	if toAccountNumber == account.AccountNumber {
		color.Red("Cannot transfer to the same account.")
		return
	}
	amount, ok := parseAmount(args, 1)
	if !ok {
		return
	}

	resp, _ := a.accounts.Transfer(ctx, models.TransferRequest{
		FromAccountNumber: account.AccountNumber,
		ToAccountNumber:   toAccountNumber,
		Amount:            amount,
	})
	if !resp.Success {
		color.Red("%s: %s", resp.Message, strings.Join(resp.Errors, "; "))
		return
	}

	_, _ = a.transactions.RecordTransfer(ctx, account.AccountNumber, toAccountNumber, amount)
	color.Green("Transferred %s to %s. New balance: %s",
		amount.StringFixed(2), toAccountNumber, resp.Data.FromAccount.Balance.StringFixed(2))
}

func (a *app) statement(ctx context.Context) {
	account, ok := a.auth.CurrentAccount(ctx)
	if !ok {
		color.Red("Not logged in.")
		return
	}

	resp, _ := a.transactions.MiniStatement(ctx, account.AccountNumber, a.cfg.MiniStatementLimit)
	if !resp.Success {
		color.Red("%s", resp.Message)
		return
	}

	if len(*resp.Data) == 0 {
		fmt.Println("No transactions yet.")
		return
	}
	for _, t := range *resp.Data {
		fmt.Printf("%s  %-8s  %10s  %s\n",
			t.Timestamp.Format(file.TimeLayout), t.Type, t.Amount.StringFixed(2), t.Description)
	}
}

func (a *app) changePin(ctx context.Context, scanner *bufio.Scanner) {
	account, ok := a.auth.CurrentAccount(ctx)
	if !ok {
		color.Red("Not logged in.")
		return
	}

	// The ledger does not re-verify the old PIN; that check happens here.
	oldPin, ok := prompt(scanner, "Current PIN: ")
	if !ok {
		return
	}
	if !security.VerifyPin(oldPin, account.HashedPin) {
		color.Red("Current PIN is incorrect.")
		return
	}

	newPin, ok := prompt(scanner, "New PIN: ")
	if !ok {
		return
	}
	confirmPin, ok := prompt(scanner, "Confirm new PIN: ")
	if !ok {
		return
	}
	if newPin != confirmPin {
		color.Red("PINs do not match.")
		return
	}

	resp, _ := a.accounts.ChangePin(ctx, models.ChangePinRequest{AccountNumber: account.AccountNumber, NewPin: newPin})
	if !resp.Success {
		color.Red("%s: %s", resp.Message, strings.Join(resp.Errors, "; "))
		return
	}

	color.Green("PIN changed.")
}

func (a *app) darkMode(ctx context.Context, args []string) {
	if len(args) == 0 {
		settings := a.settings.Settings(ctx)
		fmt.Printf("Dark mode: %v\n", settings.DarkMode)
		return
	}

	enabled := args[0] == "on"
	if !enabled && args[0] != "off" {
		color.Red("Usage: darkmode <on|off>")
		return
	}
	if err := a.settings.SetDarkMode(ctx, enabled); err != nil {
		color.Red("Could not save the preference.")
		return
	}

	color.Green("Dark mode %s.", args[0])
}

// parseAmount rejects malformed or non-positive amounts before they reach
// the core.
func parseAmount(args []string, i int) (decimal.Decimal, bool) {
	if len(args) <= i {
		color.Red("Missing amount.")
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(args[i]))
	if err != nil {
		color.Red("Invalid amount %q.", args[i])
		return decimal.Zero, false
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		color.Red("Amount must be greater than zero.")
		return decimal.Zero, false
	}

	return amount, true
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
