package shared

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// OrderNumber is a human-facing order identifier of the form
// ORD-<yyyyMMdd>-<4 digits>.
type OrderNumber struct {
	value string
}

// OrderNumberFrom rehydrates an order number from its persisted string.
// Trust is placed in the store; only emptiness is rejected.
func OrderNumberFrom(value string) (OrderNumber, error) {
	if strings.TrimSpace(value) == "" {
		return OrderNumber{}, fmt.Errorf("%w: order number cannot be empty", ErrValidation)
	}
	return OrderNumber{value: value}, nil
}

func (n OrderNumber) Value() string  { return n.value }
func (n OrderNumber) String() string { return n.value }

// OrderNumberGenerator produces fresh order numbers. Clock and random
// source are injectable so generation is deterministic under test.
type OrderNumberGenerator struct {
	now  func() time.Time
	intN func(n int) int
}

// NewOrderNumberGenerator returns a generator backed by the wall clock
// and the global random source.
func NewOrderNumberGenerator() OrderNumberGenerator {
	return OrderNumberGenerator{now: time.Now, intN: rand.IntN}
}

// NewOrderNumberGeneratorWith wires an explicit clock and random
// source.
func NewOrderNumberGeneratorWith(now func() time.Time, intN func(n int) int) OrderNumberGenerator {
	return OrderNumberGenerator{now: now, intN: intN}
}

// Next generates an order number for the current UTC date with a
// random 4-digit suffix in [1000, 9999].
func (g OrderNumberGenerator) Next() OrderNumber {
	datePart := g.now().UTC().Format("20060102")
	randomPart := 1000 + g.intN(9000)
	return OrderNumber{value: fmt.Sprintf("ORD-%s-%04d", datePart, randomPart)}
}
