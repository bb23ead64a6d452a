package pricing

// Money represents a monetary value stored in minor units.
type Money = int64

// Rates holds the pricing and volume-credit constants. It is an immutable
// value handed to NewEngine, so alternative rate sets (promotional pricing,
// test fixtures) can coexist in one process.
type Rates struct {
	TragedyBaseCents       Money
	TragedyThreshold       int
	TragedyOveragePerSeat  Money
	ComedyBaseCents        Money
	ComedyThreshold        int
	ComedyOverageFlatCents Money
	ComedyOveragePerSeat   Money
	ComedySurchargePerSeat Money
	CreditThreshold        int
	ComedyCreditDivisor    int
}

// DefaultRates returns the standard house rates.
func DefaultRates() Rates {
	return Rates{
		TragedyBaseCents:       40000,
		TragedyThreshold:       30,
		TragedyOveragePerSeat:  1000,
		ComedyBaseCents:        30000,
		ComedyThreshold:        20,
		ComedyOverageFlatCents: 10000,
		ComedyOveragePerSeat:   500,
		ComedySurchargePerSeat: 300,
		CreditThreshold:        30,
		ComedyCreditDivisor:    5,
	}
}
