package ofx

import (
	"context"
	"strings"
	"testing"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260101120000[0:GMT]
<DTEND>20260131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2026011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260120120000[0:GMT]
<TRNAMT>2500.00
<FITID>2026012001
<NAME>PAYROLL ACME CORP
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260125120000[0:GMT]
<TRNAMT>-125.00
<FITID>2026012501
<NAME>POS PURCHASE WHOLE FOODS MARKET
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20260131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20260101120000[0:GMT]
<DTEND>20260131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260110120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2026011001
<NAME>AMAZON.COM*RT4Y7HG2
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260115120000[0:GMT]
<TRNAMT>-15.00
<FITID>CC2026011501
<NAME>NETFLIX.COM
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20260131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	tests := []struct {
		name          string
		ofxData       string
		expectedCount int
		expectedError bool
	}{
		{
			name:          "valid bank statement",
			ofxData:       sampleBankOFX,
			expectedCount: 3,
		},
		{
			name:          "valid credit card statement",
			ofxData:       sampleCreditCardOFX,
			expectedCount: 2,
		},
		{
			name:          "invalid OFX data",
			ofxData:       "not valid OFX",
			expectedError: true,
		},
		{
			name:          "empty OFX",
			ofxData:       "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser()
			entries, err := parser.ParseFile(context.Background(), strings.NewReader(tt.ofxData))

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, entries, tt.expectedCount)
			}
		})
	}
}

func TestParseBankTransactions(t *testing.T) {
	parser := NewParser()
	entries, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	coffee := entries[0]
	assert.Equal(t, model.TypeExpense, coffee.Type, "debits map to expenses")
	assert.True(t, coffee.Amount.Equal(decimal.RequireFromString("25.5")), "amounts come out positive")
	assert.Equal(t, "STARBUCKS STORE #1234", coffee.Category)
	assert.Equal(t, model.Date("2026-01-15"), coffee.Date)
	assert.Equal(t, "(Imported)", coffee.Note)

	payroll := entries[1]
	assert.Equal(t, model.TypeIncome, payroll.Type, "credits map to income")
	assert.True(t, payroll.Amount.Equal(decimal.RequireFromString("2500")))

	groceries := entries[2]
	assert.Equal(t, "WHOLE FOODS MARKET", groceries.Category, "POS prefix is stripped")
	assert.Equal(t, "(Imported) POS PURCHASE WHOLE FOODS MARKET", groceries.Note,
		"raw statement name survives in the note")
}

func TestParseCreditCardTransactions(t *testing.T) {
	parser := NewParser()
	entries, err := parser.ParseFile(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, entry := range entries {
		assert.Equal(t, model.TypeExpense, entry.Type)
		assert.True(t, entry.Amount.Sign() > 0)
	}
	assert.Equal(t, "NETFLIX.COM", entries[1].Category)
}

func TestExtractMerchantName(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		tx       ofxgo.Transaction
		expected string
	}{
		{
			name:     "simple name",
			tx:       ofxgo.Transaction{Name: "STARBUCKS"},
			expected: "STARBUCKS",
		},
		{
			name: "payee preferred over name",
			tx: ofxgo.Transaction{
				Name:  "POS PURCHASE 1234",
				Payee: &ofxgo.Payee{Name: "Whole Foods"},
			},
			expected: "Whole Foods",
		},
		{
			name:     "pos purchase prefix stripped",
			tx:       ofxgo.Transaction{Name: "POS PURCHASE TRADER JOES"},
			expected: "TRADER JOES",
		},
		{
			name:     "check card prefix stripped",
			tx:       ofxgo.Transaction{Name: "CHECK CARD SHELL OIL"},
			expected: "SHELL OIL",
		},
		{
			name:     "leading date stripped",
			tx:       ofxgo.Transaction{Name: "01/15 COSTCO WHOLESALE"},
			expected: "COSTCO WHOLESALE",
		},
		{
			name:     "generic name falls back to memo",
			tx:       ofxgo.Transaction{Name: "DEBIT", Memo: "SPOTIFY SUBSCRIPTION"},
			expected: "SPOTIFY SUBSCRIPTION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parser.extractMerchantName(tt.tx))
		})
	}
}

func TestPreprocess(t *testing.T) {
	parser := NewParser()

	t.Run("fixes mixed-case severity", func(t *testing.T) {
		input := "<SEVERITY>Info</SEVERITY>"
		assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", parser.preprocess(input))
	})

	t.Run("adds missing closing brackets", func(t *testing.T) {
		input := "<OFX>\n<SONRS\n</OFX>"
		assert.Equal(t, "<OFX>\n<SONRS>\n</OFX>", parser.preprocess(input))
	})

	t.Run("trims leading whitespace", func(t *testing.T) {
		input := "\n\n  OFXHEADER:100"
		assert.Equal(t, "OFXHEADER:100", parser.preprocess(input))
	})
}
