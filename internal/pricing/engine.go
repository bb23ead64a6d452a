package pricing

import "fmt"

// UnknownPlayTypeError reports a play type with no registered pricing policy.
type UnknownPlayTypeError struct {
	PlayType string
}

func (e *UnknownPlayTypeError) Error() string {
	return fmt.Sprintf("unknown play type: %s", e.PlayType)
}

// InvalidAudienceError reports a negative audience count. Audience counts are
// not validated upstream, so the engine refuses them rather than producing a
// negative price.
type InvalidAudienceError struct {
	Audience int
}

func (e *InvalidAudienceError) Error() string {
	return fmt.Sprintf("invalid audience: %d", e.Audience)
}

// AmountFunc prices one performance of a play type for the given audience.
type AmountFunc func(rates Rates, audience int) Money

// BonusFunc computes the extra volume credits a play type grants on top of
// the base credit every performance earns.
type BonusFunc func(rates Rates, audience int) int64

// Policy pairs the pricing and credit-bonus rules for one play type.
// Registering a new play type means registering a Policy, not editing a
// dispatcher.
type Policy struct {
	Amount      AmountFunc
	CreditBonus BonusFunc
}

// Engine computes performance prices and volume credits from an immutable
// rate set and a per-play-type policy registry. All methods are deterministic
// and side-effect-free.
type Engine struct {
	rates    Rates
	policies map[string]Policy
}

// NewEngine builds an engine with the built-in tragedy and comedy policies.
func NewEngine(rates Rates) *Engine {
	e := &Engine{rates: rates, policies: make(map[string]Policy)}
	e.Register("tragedy", Policy{Amount: tragedyAmount})
	e.Register("comedy", Policy{Amount: comedyAmount, CreditBonus: comedyCreditBonus})
	return e
}

// Register adds or replaces the policy for a play type.
func (e *Engine) Register(playType string, policy Policy) {
	e.policies[playType] = policy
}

// Rates returns the rate set the engine was built with.
func (e *Engine) Rates() Rates {
	return e.rates
}

// Amount returns the price in cents for one performance. Play types without
// a registered policy fail with UnknownPlayTypeError.
func (e *Engine) Amount(playType string, audience int) (Money, error) {
	if audience < 0 {
		return 0, &InvalidAudienceError{Audience: audience}
	}
	policy, ok := e.policies[playType]
	if !ok || policy.Amount == nil {
		return 0, &UnknownPlayTypeError{PlayType: playType}
	}
	return policy.Amount(e.rates, audience), nil
}

// VolumeCredits returns the loyalty credits earned by one performance: the
// base credit for seats above the credit threshold plus any type bonus.
// Unlike Amount this never fails: a play type without a registered policy
// earns the base credit and no bonus. The asymmetry matches the billing
// rules — credits are a courtesy, prices are not.
func (e *Engine) VolumeCredits(playType string, audience int) int64 {
	if audience < 0 {
		return 0
	}
	credits := int64(audience - e.rates.CreditThreshold)
	if credits < 0 {
		credits = 0
	}
	if policy, ok := e.policies[playType]; ok && policy.CreditBonus != nil {
		credits += policy.CreditBonus(e.rates, audience)
	}
	return credits
}

func tragedyAmount(rates Rates, audience int) Money {
	amount := rates.TragedyBaseCents
	if audience > rates.TragedyThreshold {
		amount += rates.TragedyOveragePerSeat * Money(audience-rates.TragedyThreshold)
	}
	return amount
}

func comedyAmount(rates Rates, audience int) Money {
	amount := rates.ComedyBaseCents
	if audience > rates.ComedyThreshold {
		amount += rates.ComedyOverageFlatCents +
			rates.ComedyOveragePerSeat*Money(audience-rates.ComedyThreshold)
	}
	// The per-seat surcharge applies to every comedy audience member, below
	// the overage threshold too.
	amount += rates.ComedySurchargePerSeat * Money(audience)
	return amount
}

func comedyCreditBonus(rates Rates, audience int) int64 {
	if rates.ComedyCreditDivisor <= 0 {
		return 0
	}
	return int64(audience / rates.ComedyCreditDivisor)
}
