package match

import (
	"strconv"
)

// KeyKind selects one of the five composite key layouts, ordered most to
// least specific. The same construction rule serves every kind so the key
// format cannot drift between layers.
type KeyKind int

const (
	// KindCourtYear keys on court_num*10000+year plus the name.
	KindCourtYear KeyKind = iota
	// KindCircuitYear keys on circuit_num*10000+year plus the name.
	KindCircuitYear
	// KindYearCourt keys on year plus the name, populated from
	// court-bearing rows.
	KindYearCourt
	// KindYearCircuit keys on year plus the name, populated from
	// circuit-bearing rows.
	KindYearCircuit
	// KindBare keys on the name alone.
	KindBare
)

// kinds in resolution priority order.
var kinds = [5]KeyKind{
	KindCourtYear,
	KindCircuitYear,
	KindYearCourt,
	KindYearCircuit,
	KindBare,
}

// Key renders a composite lookup key. The numeric context is written as a
// plain decimal with the permutation text appended directly: the numeric
// prefix length varies, but permutation text is always upper-case letters
// and spaces, so well-formed keys never collide across contexts.
func Key(kind KeyKind, year, courtNum, circuitNum int, name string) string {
	switch kind {
	case KindCourtYear:
		return strconv.Itoa(courtNum*10000+year) + name
	case KindCircuitYear:
		return strconv.Itoa(circuitNum*10000+year) + name
	case KindYearCourt, KindYearCircuit:
		return strconv.Itoa(year) + name
	default:
		return name
	}
}
