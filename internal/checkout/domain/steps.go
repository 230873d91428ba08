package domain

// Step is a checkout wizard position: Shipping, Delivery, then Payment.
type Step int

const (
	StepShipping Step = 1
	StepDelivery Step = 2
	StepPayment  Step = 3
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepDelivery:
		return "delivery"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

// Progress tracks the current checkout step. The zero value starts at
// Shipping; Next and Prev are no-ops at the bounds, so the step index can
// never leave [1,3].
type Progress struct {
	step Step
}

func (p Progress) Current() Step {
	if p.step < StepShipping {
		return StepShipping
	}
	if p.step > StepPayment {
		return StepPayment
	}
	return p.step
}

func (p Progress) Next() Progress {
	cur := p.Current()
	if cur < StepPayment {
		cur++
	}
	return Progress{step: cur}
}

func (p Progress) Prev() Progress {
	cur := p.Current()
	if cur > StepShipping {
		cur--
	}
	return Progress{step: cur}
}

// CanPlaceOrder reports whether the place-order action is reachable, which
// is only true on the final step.
func (p Progress) CanPlaceOrder() bool {
	return p.Current() == StepPayment
}
