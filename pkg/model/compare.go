package model

import (
	"strconv"
	"strings"

	"github.com/fvbommel/sortorder"

	"github.com/tably/tably/pkg/sorting"
)

// ComparatorFor returns the comparator matching the column's attributes:
// duration order for Time columns, quantity order for Capacity columns,
// numeric order for Number columns and natural order for everything else.
func ComparatorFor(h Header, col int) sorting.Comparator[Row] {
	if col < 0 || col >= len(h) {
		return NaturalOrder(col)
	}
	switch {
	case h[col].Time:
		return DurationOrder(col)
	case h[col].Capacity:
		return CapacityOrder(col)
	case h[col].Number:
		return NumberOrder(col)
	default:
		return NaturalOrder(col)
	}
}

// NaturalOrder compares cells in natural string order so host-2 sorts
// before host-10.
func NaturalOrder(col int) sorting.Comparator[Row] {
	return cellComparator(col, naturalCmp)
}

// NumberOrder compares numeric cells, tolerating thousands separators.
func NumberOrder(col int) sorting.Comparator[Row] {
	return cellComparator(col, func(v1, v2 string) int {
		return naturalCmp(strings.ReplaceAll(v1, ",", ""), strings.ReplaceAll(v2, ",", ""))
	})
}

// DurationOrder compares compact duration cells such as 85s, 5m, 2h30m,
// 3d or 1y. Empty and n/a cells sort lowest.
func DurationOrder(col int) sorting.Comparator[Row] {
	return cellComparator(col, func(v1, v2 string) int {
		return cmpInt64(durationToSeconds(v1), durationToSeconds(v2))
	})
}

// CapacityOrder compares binary-suffix quantity cells such as 512Mi or
// 2Gi. Empty and n/a cells sort lowest.
func CapacityOrder(col int) sorting.Comparator[Row] {
	return cellComparator(col, func(v1, v2 string) int {
		return cmpInt64(capacityToBytes(v1), capacityToBytes(v2))
	})
}

// cellComparator builds a row comparator over a single column with a
// natural row ID tiebreak so equal cells keep a deterministic order.
func cellComparator(col int, cmp func(v1, v2 string) int) sorting.Comparator[Row] {
	return func(a, b Row) int {
		v1, v2 := cellValue(a, col), cellValue(b, col)
		if v1 == v2 {
			return naturalCmp(a.ID, b.ID)
		}
		return cmp(v1, v2)
	}
}

func cellValue(r Row, col int) string {
	if col < 0 || col >= len(r.Fields) {
		return ""
	}
	return r.Fields[col]
}

func naturalCmp(v1, v2 string) int {
	switch {
	case v1 == v2:
		return 0
	case sortorder.NaturalLess(v1, v2):
		return -1
	default:
		return 1
	}
}

func cmpInt64(v1, v2 int64) int {
	switch {
	case v1 < v2:
		return -1
	case v1 > v2:
		return 1
	default:
		return 0
	}
}

func durationToSeconds(duration string) int64 {
	if duration == "" || duration == NAValue {
		return 0
	}
	num := make([]rune, 0, 5)
	var n, m int64
	for _, r := range duration {
		switch r {
		case 'y':
			m = 365 * 24 * 60 * 60
		case 'd':
			m = 24 * 60 * 60
		case 'h':
			m = 60 * 60
		case 'm':
			m = 60
		case 's':
			m = 1
		default:
			num = append(num, r)
			continue
		}
		n, num = n+runesToNum(num)*m, num[:0]
	}
	return n
}

func runesToNum(rr []rune) int64 {
	var r int64
	var m int64 = 1
	for i := len(rr) - 1; i >= 0; i-- {
		v := int64(rr[i] - '0')
		r += v * m
		m *= 10
	}
	return r
}

var capacityUnits = []struct {
	suffix string
	mult   int64
}{
	{suffix: "Pi", mult: 1 << 50},
	{suffix: "Ti", mult: 1 << 40},
	{suffix: "Gi", mult: 1 << 30},
	{suffix: "Mi", mult: 1 << 20},
	{suffix: "Ki", mult: 1 << 10},
}

func capacityToBytes(v string) int64 {
	v = strings.TrimSpace(v)
	if v == "" || v == NAValue {
		return 0
	}
	num, mult := v, int64(1)
	for _, u := range capacityUnits {
		if strings.HasSuffix(v, u.suffix) {
			num, mult = strings.TrimSuffix(v, u.suffix), u.mult
			break
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0
	}
	return int64(f * float64(mult))
}
