package stream

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildSequenceOrder(t *testing.T) {
	seq, err := BuildSequence(SequenceConfig{
		Start: "gatehouse",
		End:   "pyre_gate",
		Groups: []BiomeGroup{
			{Name: "cinder", Chunks: []string{"span_a", "", "span_b"}},
			{Name: "ashfall", Chunks: []string{"ruin"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"gatehouse", "span_a", "span_b", "ruin", "pyre_gate"}
	got := make([]string, seq.Len())
	for i := range got {
		got[i] = seq.At(i)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sequence = %v, want %v", got, want)
	}
}

func TestBuildSequenceNoBookends(t *testing.T) {
	seq, err := BuildSequence(SequenceConfig{
		Groups: []BiomeGroup{{Name: "only", Chunks: []string{"a", "b"}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if seq.Len() != 2 || seq.At(0) != "a" || seq.At(1) != "b" {
		t.Fatalf("unexpected sequence, len=%d", seq.Len())
	}
}

func TestBuildSequenceEmpty(t *testing.T) {
	_, err := BuildSequence(SequenceConfig{
		Groups: []BiomeGroup{{Name: "hollow", Chunks: []string{"", ""}}},
	})
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("err = %v, want ErrEmptySequence", err)
	}
}

func TestSequenceAtOutOfRange(t *testing.T) {
	seq, err := BuildSequence(SequenceConfig{Start: "only"})
	if err != nil {
		t.Fatal(err)
	}
	if seq.At(-1) != "" || seq.At(1) != "" {
		t.Fatal("out-of-range At should return empty")
	}
}
