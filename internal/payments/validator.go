package payments

import "fmt"

// supportedCurrencies is the closed set of instruments this service settles.
var supportedCurrencies = map[string]bool{
	"NGN": true,
	"USD": true,
	"GBP": true,
	"GHS": true,
}

// Validate runs the business-rule checks against the account snapshot.
// The checks run in a fixed order and the first failure wins; that order
// decides which single code surfaces for multiply-invalid input. Validate
// has no side effects on the instruction or the accounts.
func Validate(instr Instruction, accounts []Account) error {
	if instr.Amount <= 0 {
		return &PipelineError{Code: CodeAmountInvalid, Reason: "amount must be a positive integer"}
	}

	debit, ok := findAccount(accounts, instr.DebitAccount)
	if !ok {
		return &PipelineError{Code: CodeAccountNotFound, Reason: fmt.Sprintf("account not found: %s", instr.DebitAccount)}
	}
	credit, ok := findAccount(accounts, instr.CreditAccount)
	if !ok {
		return &PipelineError{Code: CodeAccountNotFound, Reason: fmt.Sprintf("account not found: %s", instr.CreditAccount)}
	}

	if debit.ID == credit.ID {
		return &PipelineError{Code: CodeAccountsIdentical, Reason: "debit and credit accounts cannot be the same"}
	}

	if !supportedCurrencies[instr.Currency] {
		return &PipelineError{Code: CodeCurrencyUnsupported, Reason: fmt.Sprintf("unsupported currency: %s", instr.Currency)}
	}

	if debit.Currency != credit.Currency {
		return &PipelineError{
			Code:   CodeCurrencyMismatch,
			Reason: fmt.Sprintf("account currency mismatch: %s has %s, %s has %s", debit.ID, debit.Currency, credit.ID, credit.Currency),
		}
	}
	if debit.Currency != instr.Currency || credit.Currency != instr.Currency {
		return &PipelineError{
			Code:   CodeCurrencyMismatch,
			Reason: fmt.Sprintf("instruction currency %s does not match account currency %s", instr.Currency, debit.Currency),
		}
	}

	if debit.Balance < instr.Amount {
		return &PipelineError{
			Code:   CodeInsufficientFunds,
			Reason: fmt.Sprintf("insufficient funds in %s: has %d %s, needs %d %s", debit.ID, debit.Balance, debit.Currency, instr.Amount, instr.Currency),
		}
	}

	return nil
}

// findAccount returns the first snapshot entry with the given ID.
func findAccount(accounts []Account, id string) (Account, bool) {
	for _, acc := range accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return Account{}, false
}
