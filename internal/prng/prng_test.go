package prng

import "testing"

func TestDeterministic(t *testing.T) {
	seed := []byte("same-seed")
	a := New(seed, "LABEL")
	b := New(seed, "LABEL")

	for i := 0; i < 32; i++ {
		va := a.NextU32()
		vb := b.NextU32()
		if va != vb {
			t.Fatalf("stream diverged at %d: %d != %d", i, va, vb)
		}
	}
}

func TestLabelChangesStream(t *testing.T) {
	seed := []byte("same-seed")
	a := New(seed, "LABEL_A")
	b := New(seed, "LABEL_B")

	if a.NextU32() == b.NextU32() {
		t.Fatalf("expected different labels to produce different streams")
	}
}

func TestSeedChangesStream(t *testing.T) {
	a := New([]byte("seed-a"), "LABEL")
	b := New([]byte("seed-b"), "LABEL")

	if a.NextU32() == b.NextU32() {
		t.Fatalf("expected different seeds to produce different streams")
	}
}

func TestNextDoubleRange(t *testing.T) {
	p := New([]byte("seed"), "LABEL")
	for i := 0; i < 1000; i++ {
		d := p.NextDouble()
		if d < 0 || d > 1 {
			t.Fatalf("NextDouble out of range: %f", d)
		}
	}
}

func TestNextByteIsLowBits(t *testing.T) {
	a := New([]byte("seed"), "LABEL")
	b := New([]byte("seed"), "LABEL")

	u := a.NextU32()
	by := b.NextByte()
	if byte(u) != by {
		t.Fatalf("NextByte should be the low byte of NextU32: %d vs %d", by, byte(u))
	}
}

func TestStreamFillsSequentially(t *testing.T) {
	a := New([]byte("seed"), "LABEL")
	b := New([]byte("seed"), "LABEL")

	buf := make([]byte, 40)
	a.Stream(buf)

	for i := 0; i < 40; i++ {
		if buf[i] != b.NextByte() {
			t.Fatalf("Stream byte %d mismatched sequential NextByte", i)
		}
	}
}
