package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRow(id string, ff ...string) Row {
	return Row{ID: id, Fields: Fields(ff)}
}

func TestNaturalOrder(t *testing.T) {
	uu := map[string]struct {
		a, b Row
		e    int
	}{
		"plain": {
			a: testRow("1", "alpha"),
			b: testRow("2", "bravo"),
			e: -1,
		},
		"numeric_suffix": {
			a: testRow("1", "host-2"),
			b: testRow("2", "host-10"),
			e: -1,
		},
		"equal_cells_tiebreak_on_id": {
			a: testRow("host-10", "running"),
			b: testRow("host-9", "running"),
			e: 1,
		},
	}

	cmp := NaturalOrder(0)
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, cmp(u.a, u.b))
		})
	}
}

func TestNumberOrder(t *testing.T) {
	uu := map[string]struct {
		a, b Row
		e    int
	}{
		"plain": {
			a: testRow("1", "9"),
			b: testRow("2", "10"),
			e: -1,
		},
		"thousands_separators": {
			a: testRow("1", "9,999"),
			b: testRow("2", "10,000"),
			e: -1,
		},
		"equal": {
			a: testRow("a", "42"),
			b: testRow("a", "42"),
			e: 0,
		},
	}

	cmp := NumberOrder(0)
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, cmp(u.a, u.b))
		})
	}
}

func TestDurationOrder(t *testing.T) {
	uu := map[string]struct {
		a, b Row
		e    int
	}{
		"seconds_vs_minutes": {
			a: testRow("1", "85s"),
			b: testRow("2", "5m"),
			e: -1,
		},
		"minutes_vs_hours": {
			a: testRow("1", "59m"),
			b: testRow("2", "2h"),
			e: -1,
		},
		"compound": {
			a: testRow("1", "2h30m"),
			b: testRow("2", "3h"),
			e: -1,
		},
		"days_vs_years": {
			a: testRow("1", "300d"),
			b: testRow("2", "1y"),
			e: -1,
		},
		"na_sorts_lowest": {
			a: testRow("1", NAValue),
			b: testRow("2", "1s"),
			e: -1,
		},
	}

	cmp := DurationOrder(0)
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, cmp(u.a, u.b))
		})
	}
}

func TestCapacityOrder(t *testing.T) {
	uu := map[string]struct {
		a, b Row
		e    int
	}{
		"mega_vs_giga": {
			a: testRow("1", "900Mi"),
			b: testRow("2", "1Gi"),
			e: -1,
		},
		"fractional": {
			a: testRow("1", "1.5Gi"),
			b: testRow("2", "2Gi"),
			e: -1,
		},
		"bare_bytes": {
			a: testRow("1", "512"),
			b: testRow("2", "1Ki"),
			e: -1,
		},
		"empty_sorts_lowest": {
			a: testRow("1", ""),
			b: testRow("2", "1Ki"),
			e: -1,
		},
	}

	cmp := CapacityOrder(0)
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, cmp(u.a, u.b))
		})
	}
}

func TestComparatorFor(t *testing.T) {
	h := Header{
		{Name: "NAME"},
		{Name: "AGE", Attrs: Attrs{Time: true}},
		{Name: "MEM", Attrs: Attrs{Capacity: true}},
		{Name: "CPUS", Attrs: Attrs{Number: true}},
	}

	uu := map[string]struct {
		col  int
		a, b Row
		e    int
	}{
		"name_natural": {
			col: 0,
			a:   testRow("1", "ip-2", "", "", ""),
			b:   testRow("2", "ip-10", "", "", ""),
			e:   -1,
		},
		"age_duration": {
			col: 1,
			a:   testRow("1", "", "90s", "", ""),
			b:   testRow("2", "", "1h", "", ""),
			e:   -1,
		},
		"mem_capacity": {
			col: 2,
			a:   testRow("1", "", "", "16Gi", ""),
			b:   testRow("2", "", "", "900Mi", ""),
			e:   1,
		},
		"cpus_number": {
			col: 3,
			a:   testRow("1", "", "", "", "8"),
			b:   testRow("2", "", "", "", "16"),
			e:   -1,
		},
		"out_of_range_falls_back_to_natural_ids": {
			col: 9,
			a:   testRow("a", "x"),
			b:   testRow("b", "y"),
			e:   -1,
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, ComparatorFor(h, u.col)(u.a, u.b))
		})
	}
}

func TestNaturalOrderSortsRows(t *testing.T) {
	rows := Rows{
		testRow("3", "host-10"),
		testRow("1", "host-2"),
		testRow("2", "host-1"),
	}
	slices.SortStableFunc(rows, NaturalOrder(0))

	ee := []string{"host-1", "host-2", "host-10"}
	for i, r := range rows {
		assert.Equal(t, ee[i], r.Fields[0])
	}
}

func TestDurationToSeconds(t *testing.T) {
	uu := map[string]struct {
		d string
		e int64
	}{
		"empty":    {d: "", e: 0},
		"na":       {d: NAValue, e: 0},
		"seconds":  {d: "45s", e: 45},
		"minutes":  {d: "5m", e: 300},
		"compound": {d: "2h30m", e: 9000},
		"days":     {d: "2d", e: 172800},
		"years":    {d: "1y", e: 31536000},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, durationToSeconds(u.d))
		})
	}
}

func TestCapacityToBytes(t *testing.T) {
	uu := map[string]struct {
		v string
		e int64
	}{
		"empty":      {v: "", e: 0},
		"na":         {v: NAValue, e: 0},
		"bytes":      {v: "512", e: 512},
		"kibi":       {v: "1Ki", e: 1024},
		"mebi":       {v: "2Mi", e: 2 * 1024 * 1024},
		"gibi":       {v: "1Gi", e: 1 << 30},
		"fractional": {v: "1.5Ki", e: 1536},
		"garbage":    {v: "bogus", e: 0},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, capacityToBytes(u.v))
		})
	}
}
