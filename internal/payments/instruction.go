package payments

import "fmt"

// Kind is the surface form of an instruction (debit-first or credit-first
// phrasing). Both forms describe the same semantic transfer.
type Kind string

const (
	KindDebit  Kind = "DEBIT"
	KindCredit Kind = "CREDIT"
)

// Status is the terminal state of a processed instruction.
type Status string

const (
	StatusFailed     Status = "failed"
	StatusPending    Status = "pending"
	StatusSuccessful Status = "successful"
)

// Code is a stable outcome tag. Callers branch on the code, not the reason text.
type Code string

const (
	CodeSyntaxKeyword       Code = "SY01" // missing/unrecognized instruction keyword or shape
	CodeSyntaxOrder         Code = "SY02" // keywords present but in wrong relative order
	CodeSyntaxMissing       Code = "SY03" // missing required field / unparseable input
	CodeAmountInvalid       Code = "AM01"
	CodeDateInvalid         Code = "DT01"
	CodeAccountCharset      Code = "AC04"
	CodeAccountNotFound     Code = "AC03"
	CodeAccountsIdentical   Code = "AC02"
	CodeCurrencyUnsupported Code = "CU02"
	CodeCurrencyMismatch    Code = "CU01"
	CodeInsufficientFunds   Code = "AC01"
	CodePending             Code = "AP02"
	CodeExecuted            Code = "AP00"
)

// reasons maps every code to its single fixed human-readable message.
// Stage-specific diagnostics never leak into responses; this table does.
var reasons = map[Code]string{
	CodeSyntaxKeyword:       "Unrecognized or malformed instruction",
	CodeSyntaxOrder:         "Instruction keywords are out of order",
	CodeSyntaxMissing:       "Missing required field or unparseable instruction",
	CodeAmountInvalid:       "Amount must be a positive integer",
	CodeDateInvalid:         "Invalid execution date",
	CodeAccountCharset:      "Account ID contains invalid characters",
	CodeAccountNotFound:     "Account not found",
	CodeAccountsIdentical:   "Debit and credit accounts cannot be the same",
	CodeCurrencyUnsupported: "Unsupported currency. Only NGN, USD, GBP, GHS are supported",
	CodeCurrencyMismatch:    "Currency mismatch between instruction and accounts",
	CodeInsufficientFunds:   "Insufficient funds in debit account",
	CodePending:             "Transaction scheduled for future execution",
	CodeExecuted:            "Transaction executed successfully",
}

// ReasonFor returns the fixed message for a code.
func ReasonFor(code Code) string {
	return reasons[code]
}

// Instruction is a parsed transfer command. It is immutable once built:
// the validator and executor read it, nothing writes it.
type Instruction struct {
	Kind          Kind
	Amount        int64 // minor currency units, always > 0
	Currency      string
	DebitAccount  string
	CreditAccount string
	ExecuteBy     string // "YYYY-MM-DD", empty when the instruction has no ON clause
}

// Account is a caller-supplied snapshot record. Balances are in minor units.
type Account struct {
	ID       string `json:"id"`
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// AccountView is the per-account slice of an outcome. Balance carries the
// post-decision value; BalanceBefore the snapshot value. They are equal for
// every outcome except a successful execution.
type AccountView struct {
	ID            string `json:"id"`
	Balance       int64  `json:"balance"`
	BalanceBefore int64  `json:"balance_before"`
	Currency      string `json:"currency"`
}

// PipelineError is the tagged failure returned by the parser and validator.
// Reason holds instance-specific diagnostics for logging; the response
// message always comes from ReasonFor(Code).
type PipelineError struct {
	Code   Code
	Reason string
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}
