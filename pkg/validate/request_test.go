package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type topUpRequest struct {
	Amount  decimal.Decimal `json:"amount" validate:"gte=50,lte=50000"`
	Phone   string          `json:"phone" validate:"required,msisdn"`
	Network string          `json:"network" validate:"required,oneof=mtn glo"`
}

type payoutRequest struct {
	Destination   string `json:"destination" validate:"required,oneof=bank wallet"`
	AccountNumber string `json:"account_number" validate:"required_if=Destination bank,omitempty,numeric,len=10"`
	Code          string `json:"code,omitempty" validate:"omitempty,luhn"`
	Delta         string `json:"delta" validate:"required,positive_decimal"`
	Note          string `json:"note" validate:"notblank"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name           string
		input          interface{}
		expectedFields []string
		expectedError  string
	}{
		{
			name:  "Valid top-up",
			input: topUpRequest{Amount: decimal.NewFromInt(500), Phone: "+2348031234567", Network: "mtn"},
		},
		{
			name:           "Amount below range",
			input:          topUpRequest{Amount: decimal.NewFromInt(10), Phone: "08031234567", Network: "glo"},
			expectedFields: []string{"amount"},
			expectedError:  "amount must be greater than or equal to 50",
		},
		{
			name:           "Every field wrong",
			input:          topUpRequest{Amount: decimal.NewFromInt(60000), Phone: "01234567890", Network: "mtel"},
			expectedFields: []string{"amount", "phone", "network"},
			expectedError:  "amount must be less than or equal to 50000; phone must be a Nigerian mobile number; network must be one of: mtn, glo",
		},
		{
			name:  "Valid wallet payout",
			input: payoutRequest{Destination: "wallet", Delta: "10.50", Note: "ok"},
		},
		{
			name:           "Bank payout without account",
			input:          payoutRequest{Destination: "bank", Delta: "1", Note: "ok"},
			expectedFields: []string{"account_number"},
			expectedError:  "account_number is required for this destination",
		},
		{
			name:           "Short account number",
			input:          payoutRequest{Destination: "bank", AccountNumber: "01234", Delta: "1", Note: "ok"},
			expectedFields: []string{"account_number"},
			expectedError:  "account_number must be 10 characters long",
		},
		{
			name:           "Bad checksum and blank note",
			input:          payoutRequest{Destination: "wallet", Code: "12345675", Delta: "1", Note: "   "},
			expectedFields: []string{"code", "note"},
			expectedError:  "code is not a valid code; note is required",
		},
		{
			name:           "Negative delta",
			input:          payoutRequest{Destination: "wallet", Delta: "-3", Note: "ok"},
			expectedFields: []string{"delta"},
			expectedError:  "delta must be a positive number",
		},
		{
			name:           "Non-numeric delta",
			input:          payoutRequest{Destination: "wallet", Delta: "ten", Note: "ok"},
			expectedFields: []string{"delta"},
			expectedError:  "delta must be a positive number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.expectedFields == nil {
				assert.NoError(t, err)
				return
			}
			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			fields := make([]string, 0, len(reqErr.Fields))
			for _, f := range reqErr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.expectedFields, fields)
			assert.Equal(t, tt.expectedError, err.Error())
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Plain address", input: "ada@example.com", expected: true},
		{name: "Missing at sign", input: "ada.example.com", expected: false},
		{name: "Display name", input: "Ada <ada@example.com>", expected: false},
		{name: "Empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Email(tt.input))
		})
	}
}
