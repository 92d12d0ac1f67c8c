package payments

import (
	"errors"
	"time"
)

// Result is the uniform response shape regardless of which stage stopped.
// Instruction fields are pointers so that a parse failure can carry explicit
// nulls on the wire.
type Result struct {
	Type          *string       `json:"type"`
	Amount        *int64        `json:"amount"`
	Currency      *string       `json:"currency"`
	DebitAccount  *string       `json:"debit_account"`
	CreditAccount *string       `json:"credit_account"`
	ExecuteBy     *string       `json:"execute_by"`
	Status        Status        `json:"status"`
	StatusCode    Code          `json:"status_code"`
	StatusReason  string        `json:"status_reason"`
	Accounts      []AccountView `json:"accounts"`
}

// Service runs the parse -> validate -> execute pipeline for one instruction
// against one account snapshot. The chain is strictly sequential and
// synchronous; the first failing stage short-circuits the rest.
type Service struct {
	// Now supplies the clock for the pending decision. Defaults to time.Now.
	Now func() time.Time
}

func NewService() *Service {
	return &Service{Now: time.Now}
}

// Process converts raw text into a Result. It never returns an error:
// every failure mode is folded into the Result's status, code and reason.
func (s *Service) Process(instruction string, accounts []Account) Result {
	instr, err := Parse(instruction)
	if err != nil {
		code := codeOf(err)
		return Result{
			Status:       StatusFailed,
			StatusCode:   code,
			StatusReason: ReasonFor(code),
			Accounts:     []AccountView{},
		}
	}

	res := resultFrom(instr)

	if err := Validate(instr, accounts); err != nil {
		code := codeOf(err)
		res.Status = StatusFailed
		res.StatusCode = code
		res.StatusReason = ReasonFor(code)
		res.Accounts = involvedViews(instr, accounts)
		return res
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	out := Execute(instr, accounts, now)
	res.Status = out.Status
	res.StatusCode = out.Code
	res.StatusReason = ReasonFor(out.Code)
	res.Accounts = out.Accounts
	return res
}

// resultFrom seeds a Result with the parsed instruction fields.
func resultFrom(instr Instruction) Result {
	kind := string(instr.Kind)
	res := Result{
		Type:          &kind,
		Amount:        &instr.Amount,
		Currency:      &instr.Currency,
		DebitAccount:  &instr.DebitAccount,
		CreditAccount: &instr.CreditAccount,
		Accounts:      []AccountView{},
	}
	if instr.ExecuteBy != "" {
		res.ExecuteBy = &instr.ExecuteBy
	}
	return res
}

// involvedViews builds untouched views for whichever instruction accounts
// resolve in the snapshot, preserving snapshot order.
func involvedViews(instr Instruction, accounts []Account) []AccountView {
	views := make([]AccountView, 0, 2)
	for _, acc := range accounts {
		if acc.ID != instr.DebitAccount && acc.ID != instr.CreditAccount {
			continue
		}
		views = append(views, AccountView{
			ID:            acc.ID,
			Balance:       acc.Balance,
			BalanceBefore: acc.Balance,
			Currency:      acc.Currency,
		})
	}
	return views
}

// codeOf extracts the tagged code from a pipeline error. Anything untagged
// is treated as an unparseable-input failure.
func codeOf(err error) Code {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeSyntaxMissing
}
