// Package token provides token-unit conversion and display formatting.
// It converts between NU (the display denomination) and NuNits (the
// smallest indivisible unit) and prettifies ETH amounts for reports.
package token
