package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalizeStripsPunctuationKeepsDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"$1.25 trillion", "125 trillion"},
		{"  spaced\tout\n text  ", "spaced out text"},
		{"Don't stop -- ever.", "dont stop ever"},
		{"", ""},
		{"   ", ""},
		{"café naïve résumé", "cafe naive resume"},
		{"100%", "100"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"$1.25 trillion",
		"café NAÏVE",
		"already normalized text",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("The QUICK, brown fox!")
	want := []string{"the", "quick", "brown", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
	if Tokens("") != nil {
		t.Fatal("expected nil tokens for empty input")
	}
	if Tokens("!!!") != nil {
		t.Fatal("expected nil tokens for punctuation-only input")
	}
}

func TestSimilarityBounds(t *testing.T) {
	a := []string{"the", "quick", "brown", "fox"}
	if got := Similarity(a, a); got != 1.0 {
		t.Fatalf("identical sequences: got %v, want 1.0", got)
	}
	b := []string{"completely", "different", "words", "here"}
	if got := Similarity(a, b); got != 0.0 {
		t.Fatalf("disjoint sequences: got %v, want 0.0", got)
	}
	if got := Similarity(nil, nil); got != 1.0 {
		t.Fatalf("two empty sequences: got %v, want 1.0", got)
	}
	if got := Similarity(a, nil); got != 0.0 {
		t.Fatalf("one empty sequence: got %v, want 0.0", got)
	}
}

func TestSimilarityPartialOverlap(t *testing.T) {
	a := []string{"the", "quick", "brown", "fox"}
	b := []string{"the", "slow", "brown", "fox"}
	// 3 of 4 tokens shared in order: 2*3/8 = 0.75.
	if got := Similarity(a, b); got != 0.75 {
		t.Fatalf("got %v, want 0.75", got)
	}
}

func TestSimilarityRewardsOrder(t *testing.T) {
	a := []string{"one", "two", "three", "four"}
	reversed := []string{"four", "three", "two", "one"}
	if got := Similarity(a, reversed); got >= 0.5 {
		t.Fatalf("reversed sequence scored %v, want < 0.5", got)
	}
}

func TestSimilarityText(t *testing.T) {
	if got := SimilarityText("Hello, World!", "hello world"); got != 1.0 {
		t.Fatalf("got %v, want 1.0 after normalization", got)
	}
}
