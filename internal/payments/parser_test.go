package payments

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDebitShape(t *testing.T) {
	instr, err := Parse("DEBIT 500 USD FROM ACCOUNT A123 FOR CREDIT TO ACCOUNT B456 ON 2025-01-01")
	require.NoError(t, err)
	require.Equal(t, KindDebit, instr.Kind)
	require.Equal(t, int64(500), instr.Amount)
	require.Equal(t, "USD", instr.Currency)
	require.Equal(t, "A123", instr.DebitAccount)
	require.Equal(t, "B456", instr.CreditAccount)
	require.Equal(t, "2025-01-01", instr.ExecuteBy)
}

func TestParseCreditShape(t *testing.T) {
	instr, err := Parse("CREDIT 100 GBP TO ACCOUNT X FOR DEBIT FROM ACCOUNT Y")
	require.NoError(t, err)
	require.Equal(t, KindCredit, instr.Kind)
	require.Equal(t, int64(100), instr.Amount)
	require.Equal(t, "GBP", instr.Currency)
	require.Equal(t, "Y", instr.DebitAccount)
	require.Equal(t, "X", instr.CreditAccount)
	require.Empty(t, instr.ExecuteBy)
}

func TestParseBothShapesAgree(t *testing.T) {
	a, err := Parse("DEBIT 250 NGN FROM ACCOUNT src FOR CREDIT TO ACCOUNT dst")
	require.NoError(t, err)
	b, err := Parse("CREDIT 250 NGN TO ACCOUNT dst FOR DEBIT FROM ACCOUNT src")
	require.NoError(t, err)

	require.Equal(t, a.Amount, b.Amount)
	require.Equal(t, a.Currency, b.Currency)
	require.Equal(t, a.DebitAccount, b.DebitAccount)
	require.Equal(t, a.CreditAccount, b.CreditAccount)
}

func TestParseNormalization(t *testing.T) {
	instr, err := Parse("  debit   10 usd from account a1 for credit to account b1  ")
	require.NoError(t, err)
	require.Equal(t, KindDebit, instr.Kind)
	require.Equal(t, "USD", instr.Currency)
	// account IDs keep their original case
	require.Equal(t, "a1", instr.DebitAccount)
	require.Equal(t, "b1", instr.CreditAccount)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		code Code
	}{
		{"empty input", "", CodeSyntaxMissing},
		{"whitespace only", "   ", CodeSyntaxKeyword},
		{"tabs and newlines only", "\t \n", CodeSyntaxKeyword},
		{"unknown leading keyword", "TRANSFER 10 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", CodeSyntaxKeyword},
		{"missing amount", "DEBIT", CodeSyntaxMissing},
		{"non-numeric amount", "DEBIT ten USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", CodeAmountInvalid},
		{"zero amount", "DEBIT 0 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", CodeAmountInvalid},
		{"negative amount", "DEBIT -5 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", CodeAmountInvalid},
		{"fractional amount", "DEBIT 10.5 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", CodeAmountInvalid},
		{"missing currency", "DEBIT 10", CodeSyntaxMissing},
		{"missing FOR keyword", "DEBIT 10 USD FROM ACCOUNT A1 CREDIT TO ACCOUNT B1", CodeSyntaxKeyword},
		{"missing second ACCOUNT", "DEBIT 10 USD FROM ACCOUNT A1 FOR CREDIT TO B1", CodeSyntaxKeyword},
		{"keywords out of order", "DEBIT 10 USD FOR ACCOUNT A1 FROM CREDIT TO ACCOUNT B1", CodeSyntaxOrder},
		{"credit shape out of order", "CREDIT 10 USD FROM ACCOUNT A1 FOR DEBIT TO ACCOUNT B1", CodeSyntaxOrder},
		{"bad account charset", "DEBIT 10 USD FROM ACCOUNT A#1 FOR CREDIT TO ACCOUNT B1", CodeAccountCharset},
		{"bad month", "DEBIT 10 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 2024-13-01", CodeDateInvalid},
		{"bad day", "DEBIT 10 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 2024-02-30", CodeDateInvalid},
		{"unpadded date", "DEBIT 10 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 2024-1-1", CodeDateInvalid},
		{"ON without date", "DEBIT 10 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON", CodeDateInvalid},
		{"garbage date", "DEBIT 10 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON tomorrow", CodeDateInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			require.Error(t, err)
			var pe *PipelineError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, tc.code, pe.Code)
		})
	}
}

func TestParseDowngradesPanicToSyntaxMissing(t *testing.T) {
	orig := tokenize
	tokenize = func(string) []string { panic("tokenizer fault") }
	defer func() { tokenize = orig }()

	instr, err := Parse("DEBIT 10 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1")
	require.Equal(t, Instruction{}, instr)

	var pe *PipelineError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, CodeSyntaxMissing, pe.Code)
}

func TestParseAccountIDCharset(t *testing.T) {
	instr, err := Parse("DEBIT 10 USD FROM ACCOUNT user-1.a@bank FOR CREDIT TO ACCOUNT B-2")
	require.NoError(t, err)
	require.Equal(t, "user-1.a@bank", instr.DebitAccount)
	require.Equal(t, "B-2", instr.CreditAccount)
}

func TestParseLeapDay(t *testing.T) {
	_, err := Parse("DEBIT 10 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 2024-02-29")
	require.NoError(t, err)

	_, err = Parse("DEBIT 10 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 2023-02-29")
	require.Error(t, err)
}
