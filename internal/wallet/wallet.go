// Package wallet solves coin breakdowns for the checkout mini-game.
package wallet

import (
	"fmt"
	"strings"
)

// Denominations are the coin values in descending order.
var Denominations = [...]int{500, 100, 50, 10, 5, 1}

// Wallet holds a count per denomination, indexed like Denominations.
type Wallet [len(Denominations)]int

// Total returns the value of all coins in w.
func Total(w Wallet) int {
	sum := 0
	for i, n := range w {
		sum += n * Denominations[i]
	}
	return sum
}

// Count returns the number of coins in w.
func (w Wallet) Count() int {
	n := 0
	for _, c := range w {
		n += c
	}
	return n
}

// Add returns the coin-wise sum of w and o.
func (w Wallet) Add(o Wallet) Wallet {
	for i := range w {
		w[i] += o[i]
	}
	return w
}

// String renders non-empty denominations, e.g. "500×1 10×3".
func (w Wallet) String() string {
	var parts []string
	for i, n := range w {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d×%d", Denominations[i], n))
		}
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

// Greedy breaks amount into coins, largest denomination first. Negative
// amounts yield an empty wallet.
func Greedy(amount int) Wallet {
	var w Wallet
	if amount <= 0 {
		return w
	}
	for i, d := range Denominations {
		w[i] = amount / d
		amount %= d
	}
	return w
}

// BuildForPrice returns a wallet worth exactly total that can pay price
// exactly whenever total >= price: min(total, price) is broken down
// greedily and the remainder is added on top.
func BuildForPrice(total, price int) Wallet {
	total = max(total, 0)
	price = max(price, 0)
	guaranteed := min(total, price)
	return Greedy(guaranteed).Add(Greedy(total - guaranteed))
}

// CanMakeExact reports whether some subset of the coins in w sums to
// exactly amount.
func CanMakeExact(amount int, w Wallet) bool {
	_, ok := SelectExact(amount, w)
	return ok
}

// SelectExact finds coins from w summing to amount. It reports false
// when no subset matches. Each denomination divides the next larger one,
// so taking as many of the largest coin as fit is never wrong.
func SelectExact(amount int, w Wallet) (Wallet, bool) {
	var picked Wallet
	if amount < 0 || amount > Total(w) {
		return picked, false
	}
	rem := amount
	for i, d := range Denominations {
		n := min(w[i], rem/d)
		picked[i] = n
		rem -= n * d
	}
	if rem != 0 {
		return Wallet{}, false
	}
	return picked, true
}

// Change returns the greedy coin breakdown of paid - price, or false
// when paid does not cover price.
func Change(paid, price int) (Wallet, bool) {
	if paid < price || price < 0 {
		return Wallet{}, false
	}
	return Greedy(paid - price), true
}
