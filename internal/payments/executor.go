package payments

import "time"

const isoDate = "2006-01-02"

// Outcome is the executor's terminal result. It is never fed back into the
// pipeline.
type Outcome struct {
	Status   Status
	Code     Code
	Accounts []AccountView
}

// Execute decides pending-vs-immediate for an already-validated instruction
// and assembles the account views. It is a pure function of its inputs: the
// caller's snapshot is never mutated, and new balances travel only on the
// returned views. Cross-call write-back belongs to the caller's storage
// layer.
//
// An instruction is pending iff its execute_by date is strictly after the
// current UTC calendar date. Both sides of the comparison are fixed-width
// zero-padded ISO dates, so lexical order equals calendar order.
func Execute(instr Instruction, accounts []Account, now time.Time) Outcome {
	pending := instr.ExecuteBy != "" && instr.ExecuteBy > now.UTC().Format(isoDate)

	views := make([]AccountView, 0, 2)
	for _, acc := range accounts {
		if acc.ID != instr.DebitAccount && acc.ID != instr.CreditAccount {
			continue
		}
		view := AccountView{
			ID:            acc.ID,
			Balance:       acc.Balance,
			BalanceBefore: acc.Balance,
			Currency:      acc.Currency,
		}
		if !pending {
			if acc.ID == instr.DebitAccount {
				view.Balance -= instr.Amount
			} else {
				view.Balance += instr.Amount
			}
		}
		views = append(views, view)
	}

	if pending {
		return Outcome{Status: StatusPending, Code: CodePending, Accounts: views}
	}
	return Outcome{Status: StatusSuccessful, Code: CodeExecuted, Accounts: views}
}
