package vault

import "math/bits"

// feeCalculator stores the single process-wide fee rate and computes fees.
// The rate is expressed in parts per thousand of the amount (see FeeScale).
type feeCalculator struct {
	rateBps uint32
}

// setRate stores a new rate. Rates above the scale are rejected: they would
// compute a fee larger than the amount itself.
func (fc *feeCalculator) setRate(rateBps uint32) error {
	if rateBps > MaxFeeRateBps {
		return ErrInvalidAmount
	}
	fc.rateBps = rateBps
	return nil
}

// rate returns the current fee rate in parts per thousand.
func (fc *feeCalculator) rate() uint32 {
	return fc.rateBps
}

// calculate returns floor(amount * rateBps / FeeScale).
// The 128-bit intermediate product avoids overflow for large pooled balances;
// the division is safe because rateBps <= FeeScale keeps the high word below
// the divisor.
func (fc *feeCalculator) calculate(amount uint64) uint64 {
	if fc.rateBps == 0 || amount == 0 {
		return 0
	}
	hi, lo := bits.Mul64(amount, uint64(fc.rateBps))
	fee, _ := bits.Div64(hi, lo, FeeScale)
	return fee
}
