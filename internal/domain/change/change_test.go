package change

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		existed bool
		before  string
		after   string
		want    Kind
	}{
		{name: "missing target", existed: false, after: "class A {}", want: Added},
		{name: "missing target with empty content", existed: false, want: Added},
		{name: "different content", existed: true, before: "class A {}", after: "class B {}", want: Updated},
		{name: "same content", existed: true, before: "class A {}", after: "class A {}", want: Unchanged},
		{name: "empty file stays empty", existed: true, want: Unchanged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.existed, tt.before, tt.after); got != tt.want {
				t.Fatalf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCountsRecordAndFormat(t *testing.T) {
	var counts Counts
	for _, kind := range []Kind{Added, Added, Updated, Unchanged, Kind("other")} {
		counts.Record(kind)
	}
	if counts.Total() != 4 {
		t.Fatalf("Total() = %d", counts.Total())
	}
	want := "new 2 / updated 1 / unchanged 1 (total 4)"
	if got := FormatCounts(counts); got != want {
		t.Fatalf("FormatCounts() = %q, want %q", got, want)
	}
}

func TestFormatCountsEmpty(t *testing.T) {
	want := "new 0 / updated 0 / unchanged 0 (total 0)"
	if got := FormatCounts(Counts{}); got != want {
		t.Fatalf("FormatCounts() = %q, want %q", got, want)
	}
}
