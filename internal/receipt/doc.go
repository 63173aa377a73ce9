// Package receipt formats transaction receipts for terminal display.
package receipt
