package token

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
)

// Decimals is the number of decimal places in the NU token.
// One NU equals 10^18 NuNits, matching the ERC20 convention.
const Decimals = 18

// nuNitsPerNU is the conversion factor between NU and NuNits.
var nuNitsPerNU = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// NU represents an amount of the network's native staking token.
// The amount is stored in NuNits (the smallest indivisible unit) so
// arithmetic is always exact; display formatting rounds to two decimal
// places.
//
// Design decision: We wrap a *big.Int rather than using float64 because
// token amounts routinely exceed float64's 53-bit integer precision
// (1 NU is already 10^18 NuNits). The zero value is a valid zero amount.
type NU struct {
	units *big.Int
}

// FromNuNits creates an NU amount from a NuNits value.
// The input is copied; the caller retains ownership of units.
// A nil input is treated as zero.
func FromNuNits(units *big.Int) NU {
	if units == nil {
		return NU{units: new(big.Int)}
	}
	return NU{units: new(big.Int).Set(units)}
}

// FromNU creates an NU amount from a whole number of tokens.
func FromNU(tokens int64) NU {
	return NU{units: new(big.Int).Mul(big.NewInt(tokens), nuNitsPerNU)}
}

// ParseNuNits creates an NU amount from a base-10 NuNits string.
// Snapshot files carry token amounts as strings because YAML integers
// overflow at 2^63.
func ParseNuNits(s string) (NU, error) {
	units, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return NU{}, fmt.Errorf("invalid NuNits amount: %q", s)
	}
	return NU{units: units}, nil
}

// NuNits returns the amount in NuNits.
// The returned value is a copy; mutating it does not affect the NU amount.
func (n NU) NuNits() *big.Int {
	if n.units == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n.units)
}

// IsZero reports whether the amount is zero.
func (n NU) IsZero() bool {
	return n.units == nil || n.units.Sign() == 0
}

// Equal reports whether two amounts are exactly equal in NuNits.
func (n NU) Equal(other NU) bool {
	return n.NuNits().Cmp(other.NuNits()) == 0
}

// String formats the amount as a comma-grouped decimal with two decimal
// places and the NU suffix, e.g. "45,000.25 NU". Rounding is half-up on
// the truncated fraction.
func (n NU) String() string {
	units := n.NuNits()

	negative := units.Sign() < 0
	if negative {
		units.Neg(units)
	}

	whole, frac := new(big.Int).QuoRem(units, nuNitsPerNU, new(big.Int))

	// Round the fractional NuNits to two decimal places.
	// half = 5 * 10^15 is the midpoint of one hundredth of a token.
	centis := new(big.Int).Div(frac, centiDivisor)
	remainder := new(big.Int).Mod(frac, centiDivisor)
	if remainder.Cmp(centiHalf) >= 0 {
		centis.Add(centis, big.NewInt(1))
		if centis.Cmp(big.NewInt(100)) == 0 {
			centis.SetInt64(0)
			whole.Add(whole, big.NewInt(1))
		}
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%02d NU", sign, humanize.BigComma(whole), centis.Int64())
}

var (
	// centiDivisor converts NuNits to hundredths of a token.
	centiDivisor = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals-2), nil)

	// centiHalf is the rounding midpoint below centiDivisor.
	centiHalf = new(big.Int).Div(centiDivisor, big.NewInt(2))
)
