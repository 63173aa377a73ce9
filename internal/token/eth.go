package token

import (
	"fmt"
	"math/big"
	"strings"
)

// Wei conversion factors for the supported ETH denominations.
var (
	weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	weiPerGwei  = new(big.Int).Exp(big.NewInt(10), big.NewInt(9), nil)
)

// PrettyWei formats a wei amount using the largest denomination in which
// the value is at least 1, falling through ether -> gwei -> wei. Trailing
// zeros in the fraction are trimmed.
//
// Examples: 1500000000000000000 wei -> "1.5 ether",
// 500000000 wei -> "0.5 gwei" is never produced; it renders "500000000 wei"
// only when the gwei value would be below 1.
func PrettyWei(wei *big.Int) string {
	if wei == nil {
		wei = new(big.Int)
	}

	abs := new(big.Int).Abs(wei)
	switch {
	case abs.Cmp(weiPerEther) >= 0:
		return formatWeiAs(wei, weiPerEther, "ether")
	case abs.Cmp(weiPerGwei) >= 0:
		return formatWeiAs(wei, weiPerGwei, "gwei")
	default:
		return fmt.Sprintf("%s wei", wei.String())
	}
}

// WeiToETH formats a wei amount as a decimal ETH string with the "ETH"
// suffix, always in the ether denomination regardless of magnitude.
// Used for account balance tables where a uniform unit is clearer.
func WeiToETH(wei *big.Int) string {
	if wei == nil {
		wei = new(big.Int)
	}
	return formatWeiAs(wei, weiPerEther, "ETH")
}

// formatWeiAs divides wei by the given factor and renders the quotient
// as a decimal with up to 18 fractional digits, trailing zeros trimmed.
func formatWeiAs(wei, factor *big.Int, unit string) string {
	quo := new(big.Rat).SetFrac(wei, factor)
	s := quo.FloatString(18)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + " " + unit
}
