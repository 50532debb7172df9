package entities

// Currency is one of the two settlement currencies supported by the platform.
//
//go:generate stringer -type=Currency

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
)

// IsValid checks if the currency is one of the supported codes.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyINR:
		return true
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

// BuyerSummary is a buyer record resolved from the buyer directory.
//
// Domain notes:
//   - The directory is an external collaborator; the quote workflow only
//     reads these fields and never writes back.
//   - CreditEligible gates the credit-terms add-on: a quote may only expose
//     credit terms to a buyer the platform has cleared for credit.

type BuyerSummary struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Location          string   `json:"location"`
	PreferredCurrency Currency `json:"preferred_currency"`
	PreferredPort     string   `json:"preferred_port"`
	CreditEligible    bool     `json:"credit_eligible"`
}
