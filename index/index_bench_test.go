package index

import (
	"testing"

	"github.com/hupe1980/rowindex/record"
	"github.com/hupe1980/rowindex/testutil"
)

func BenchmarkBuild(b *testing.B) {
	rows := testutil.NewRNG(42).Records(10_000)

	cases := []struct {
		name   string
		fields []string
		cfg    Config
	}{
		{"unique", []string{"id"}, Config{}},
		{"number", []string{"volumes"}, Config{Type: TypeNumber, Grouped: true}},
		{"array", []string{"data"}, Config{Type: TypeArray, Grouped: true}},
		{"text", []string{"title"}, Config{Type: TypeText, Grouped: true}},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := New(rows, tc.fields, tc.cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAdd_UniqueLongArray(b *testing.B) {
	vals := make([]int64, 10_000)
	for i := range vals {
		vals[i] = int64(i)
	}
	rec := record.Record{"data": testutil.Ints(vals...)}

	b.ReportAllocs()
	for b.Loop() {
		ix, err := New(nil, []string{"data"}, Config{Type: TypeArray, SkipBuild: true})
		if err != nil {
			b.Fatal(err)
		}
		if err := ix.Add(rec, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	rows := testutil.NewRNG(42).Records(10_000)
	ix, err := New(rows, []string{"title"}, Config{Type: TypeText, Grouped: true})
	if err != nil {
		b.Fatal(err)
	}
	queries := []record.Record{
		{"title": record.String("the hobbit")},
		{"title": record.String("return of the king")},
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = ix.Lookup(queries)
	}
}
