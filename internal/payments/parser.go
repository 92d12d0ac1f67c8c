package payments

import (
	"strconv"
	"strings"
	"time"
)

// Parse turns a free-text payment instruction into an Instruction.
//
// Two grammars are recognized, located by keyword position over the
// upper-cased token stream:
//
//	DEBIT  <amt> <ccy> FROM ACCOUNT <id> FOR CREDIT TO ACCOUNT <id> [ON <date>]
//	CREDIT <amt> <ccy> TO ACCOUNT <id> FOR DEBIT FROM ACCOUNT <id> [ON <date>]
//
// Keywords match case-insensitively; account IDs and dates keep their
// original case. Parse never panics across its boundary: any internal fault
// is downgraded to SY03.
func Parse(text string) (instr Instruction, err error) {
	defer func() {
		if r := recover(); r != nil {
			instr = Instruction{}
			err = &PipelineError{Code: CodeSyntaxMissing, Reason: "internal parse failure"}
		}
	}()

	// Only the truly empty string is "missing"; whitespace-only input falls
	// through to the leading-keyword check below.
	if text == "" {
		return Instruction{}, &PipelineError{Code: CodeSyntaxMissing, Reason: "empty instruction"}
	}

	// tokenize trims and collapses any whitespace run to a single separator.
	parts := tokenize(text)

	upper := make([]string, len(parts))
	for i, p := range parts {
		upper[i] = strings.ToUpper(p)
	}

	kind := Kind(tokenAt(upper, 0))
	if kind != KindDebit && kind != KindCredit {
		return Instruction{}, &PipelineError{Code: CodeSyntaxKeyword, Reason: "instruction must start with DEBIT or CREDIT"}
	}

	amount, err := parseAmount(tokenAt(parts, 1))
	if err != nil {
		return Instruction{}, err
	}

	currency := tokenAt(upper, 2)
	if currency == "" {
		return Instruction{}, &PipelineError{Code: CodeSyntaxMissing, Reason: "missing currency"}
	}

	kw := locateKeywords(upper)

	var debitID, creditID string
	if kind == KindDebit {
		debitID, creditID, err = parseDebitShape(parts, kw)
	} else {
		creditID, debitID, err = parseCreditShape(parts, kw)
	}
	if err != nil {
		return Instruction{}, err
	}

	if !validAccountID(debitID) || !validAccountID(creditID) {
		return Instruction{}, &PipelineError{Code: CodeAccountCharset, Reason: "account IDs may only contain letters, digits, '-', '.' and '@'"}
	}

	executeBy, err := parseExecuteBy(parts, kw.on)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{
		Kind:          kind,
		Amount:        amount,
		Currency:      currency,
		DebitAccount:  debitID,
		CreditAccount: creditID,
		ExecuteBy:     executeBy,
	}, nil
}

// tokenize splits an instruction into its whitespace-separated tokens. It is
// a variable so tests can exercise the panic downgrade in Parse.
var tokenize = strings.Fields

// keywordIndex holds the token positions that drive shape recognition.
// All single-keyword fields record the first occurrence except debit, which
// records the last: in the credit-first grammar the leading CREDIT token
// would otherwise shadow the embedded DEBIT clause.
type keywordIndex struct {
	from     int
	to       int
	forKw    int
	credit   int
	debit    int
	on       int
	accounts []int
}

func locateKeywords(upper []string) keywordIndex {
	kw := keywordIndex{from: -1, to: -1, forKw: -1, credit: -1, debit: -1, on: -1}
	for i, tok := range upper {
		switch tok {
		case "FROM":
			if kw.from == -1 {
				kw.from = i
			}
		case "TO":
			if kw.to == -1 {
				kw.to = i
			}
		case "FOR":
			if kw.forKw == -1 {
				kw.forKw = i
			}
		case "CREDIT":
			if kw.credit == -1 {
				kw.credit = i
			}
		case "DEBIT":
			kw.debit = i
		case "ON":
			if kw.on == -1 {
				kw.on = i
			}
		case "ACCOUNT":
			kw.accounts = append(kw.accounts, i)
		}
	}
	return kw
}

// parseDebitShape recognizes
// DEBIT amt ccy FROM ACCOUNT <debit> FOR CREDIT TO ACCOUNT <credit>.
func parseDebitShape(parts []string, kw keywordIndex) (debitID, creditID string, err error) {
	if kw.from == -1 || len(kw.accounts) < 2 || kw.forKw == -1 || kw.credit == -1 || kw.to == -1 {
		return "", "", &PipelineError{Code: CodeSyntaxKeyword, Reason: "missing keyword in DEBIT instruction"}
	}

	acc0, acc1 := kw.accounts[0], kw.accounts[1]
	ordered := kw.from > 0 &&
		kw.from < acc0 &&
		acc0 < kw.forKw &&
		kw.forKw < kw.credit &&
		kw.credit < kw.to &&
		kw.to < acc1
	if !ordered {
		return "", "", &PipelineError{Code: CodeSyntaxOrder, Reason: "DEBIT instruction keywords out of order"}
	}

	debitID = tokenAt(parts, acc0+1)
	creditID = tokenAt(parts, acc1+1)
	if debitID == "" || creditID == "" {
		return "", "", &PipelineError{Code: CodeSyntaxMissing, Reason: "missing account ID after ACCOUNT keyword"}
	}
	return debitID, creditID, nil
}

// parseCreditShape recognizes the mirrored form
// CREDIT amt ccy TO ACCOUNT <credit> FOR DEBIT FROM ACCOUNT <debit>.
func parseCreditShape(parts []string, kw keywordIndex) (creditID, debitID string, err error) {
	if kw.to == -1 || len(kw.accounts) < 2 || kw.forKw == -1 || kw.debit == -1 || kw.from == -1 {
		return "", "", &PipelineError{Code: CodeSyntaxKeyword, Reason: "missing keyword in CREDIT instruction"}
	}

	acc0, acc1 := kw.accounts[0], kw.accounts[1]
	ordered := kw.to > 0 &&
		kw.to < acc0 &&
		acc0 < kw.forKw &&
		kw.forKw < kw.debit &&
		kw.debit < kw.from &&
		kw.from < acc1
	if !ordered {
		return "", "", &PipelineError{Code: CodeSyntaxOrder, Reason: "CREDIT instruction keywords out of order"}
	}

	creditID = tokenAt(parts, acc0+1)
	debitID = tokenAt(parts, acc1+1)
	if debitID == "" || creditID == "" {
		return "", "", &PipelineError{Code: CodeSyntaxMissing, Reason: "missing account ID after ACCOUNT keyword"}
	}
	return creditID, debitID, nil
}

func parseAmount(raw string) (int64, error) {
	if raw == "" {
		return 0, &PipelineError{Code: CodeSyntaxMissing, Reason: "missing amount"}
	}
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || amount <= 0 {
		return 0, &PipelineError{Code: CodeAmountInvalid, Reason: "amount must be a positive base-10 integer"}
	}
	return amount, nil
}

func parseExecuteBy(parts []string, onIdx int) (string, error) {
	if onIdx == -1 {
		return "", nil
	}
	dateStr := tokenAt(parts, onIdx+1)
	if !validDate(dateStr) {
		return "", &PipelineError{Code: CodeDateInvalid, Reason: "execution date must be a valid YYYY-MM-DD date"}
	}
	return dateStr, nil
}

// validDate checks the fixed-width zero-padded ISO form and that the triple
// is a real calendar date. The fixed width is load-bearing: the executor
// compares these strings lexically.
func validDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	year, month, day := s[0:4], s[5:7], s[8:10]
	if !allDigits(year) || !allDigits(month) || !allDigits(day) {
		return false
	}
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if y < 1000 || y > 9999 || m < 1 || m > 12 || d < 1 || d > 31 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func validAccountID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '.' || c == '@':
		default:
			return false
		}
	}
	return true
}

func tokenAt(parts []string, i int) string {
	if i < 0 || i >= len(parts) {
		return ""
	}
	return parts[i]
}
