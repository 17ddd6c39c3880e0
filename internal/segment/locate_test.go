package segment

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/dshills/textspan/internal/recycle"
	"github.com/dshills/textspan/internal/text"
)

func one(e text.Element) []text.Element { return []text.Element{e} }

func TestLocateBoundariesCharacterPartition(t *testing.T) {
	inputs := []string{"ab", "aé\U0001f600", "zażółć gęślą"}

	for _, s := range inputs {
		out, err := LocateBoundaries(one(text.S(s)), one(text.S("character")), one(text.S("en-US")))
		if err != nil {
			t.Fatalf("LocateBoundaries(%q): %v", s, err)
		}
		ms := out[0]
		if ms.IsMissing() {
			t.Fatalf("%q: unexpected missing result", s)
		}
		if ms[0].Start != 1 {
			t.Errorf("%q: first match starts at %d, want 1", s, ms[0].Start)
		}
		for i := 1; i < len(ms); i++ {
			if ms[i].Start != ms[i-1].End {
				t.Errorf("%q: match %d starts at %d, previous ends at %d",
					s, i, ms[i].Start, ms[i-1].End)
			}
		}
		wantEnd := utf8.RuneCountInString(s) + 1
		if last := ms[len(ms)-1]; last.End != wantEnd {
			t.Errorf("%q: last match ends at %d, want %d", s, last.End, wantEnd)
		}
	}
}

func TestLocateBoundariesMixedWidthCoordinates(t *testing.T) {
	// a (1 byte), é (2 bytes), € (3 bytes), 😀 (4 bytes): code-point
	// coordinates must not leak the storage widths.
	out, err := LocateBoundaries(
		one(text.S("aé€\U0001f600")),
		one(text.S("character")),
		one(text.S("en-US")),
	)
	if err != nil {
		t.Fatalf("LocateBoundaries: %v", err)
	}
	ms := out[0]
	want := Matches{{1, 2}, {2, 3}, {3, 4}, {4, 5}}
	if len(ms) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(ms))
	}
	for i := range want {
		if ms[i] != want[i] {
			t.Errorf("match %d = %+v, want %+v", i, ms[i], want[i])
		}
	}
}

func TestLocateBoundariesMissingPropagation(t *testing.T) {
	str := []text.Element{text.S("ab"), text.NA(), text.S("")}
	out, err := LocateBoundaries(str, one(text.S("character")), one(text.S("en-US")))
	if err != nil {
		t.Fatalf("LocateBoundaries: %v", err)
	}
	if out[0].IsMissing() {
		t.Error("present element should not be missing")
	}
	if !out[1].IsMissing() {
		t.Error("missing element should yield the sentinel")
	}
	if !out[2].IsMissing() {
		t.Error("empty element should yield the sentinel")
	}
}

func TestLocateBoundariesMissingKindAndLocale(t *testing.T) {
	out, err := LocateBoundaries(
		[]text.Element{text.S("ab"), text.S("cd")},
		[]text.Element{text.NA(), text.S("character")},
		[]text.Element{text.S("en"), text.NA()},
	)
	if err != nil {
		t.Fatalf("LocateBoundaries: %v", err)
	}
	if !out[0].IsMissing() {
		t.Error("missing boundary kind should yield the sentinel")
	}
	if !out[1].IsMissing() {
		t.Error("missing locale should yield the sentinel")
	}
}

func TestLocateBoundariesKindSwitch(t *testing.T) {
	str := text.Strings("one two", "one two", "one two")
	boundary := text.Strings("character", "word", "character")
	out, err := LocateBoundaries(str, boundary, one(text.S("en-US")))
	if err != nil {
		t.Fatalf("LocateBoundaries: %v", err)
	}
	if len(out[0]) != 7 {
		t.Errorf("character pass 1: %d matches, want 7", len(out[0]))
	}
	if len(out[1]) != 3 { // "one", " ", "two"
		t.Errorf("word pass: %d matches, want 3", len(out[1]))
	}
	if len(out[2]) != 7 {
		t.Errorf("character pass 2: %d matches, want 7", len(out[2]))
	}
}

func TestLocateBoundariesInvalidKind(t *testing.T) {
	_, err := LocateBoundaries(one(text.S("ab")), one(text.S("paragraph")), one(text.S("en")))
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestLocateBoundariesBadLocale(t *testing.T) {
	_, err := LocateBoundaries(one(text.S("ab")), one(text.S("word")), one(text.S("!!bad!!")))
	if !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
}

func TestLocateBoundariesRecycling(t *testing.T) {
	str := text.Strings("a", "b", "c", "d")

	// Lengths (4, 1, 4) recycle to 4.
	out, err := LocateBoundaries(str, one(text.S("character")), text.Strings("en", "en", "en", "en"))
	if err != nil {
		t.Fatalf("compatible lengths: %v", err)
	}
	if len(out) != 4 {
		t.Errorf("expected 4 results, got %d", len(out))
	}

	// Lengths (4, 1, 2) do not.
	_, err = LocateBoundaries(str, one(text.S("character")), text.Strings("en", "pl"))
	if !errors.Is(err, recycle.ErrIncompatibleLengths) {
		t.Fatalf("expected ErrIncompatibleLengths, got %v", err)
	}
}

func TestLocateWords(t *testing.T) {
	out, err := LocateWords(one(text.S("one, two")), one(text.S("en-US")))
	if err != nil {
		t.Fatalf("LocateWords: %v", err)
	}
	ms := out[0]
	want := Matches{{1, 4}, {6, 9}}
	if len(ms) != len(want) {
		t.Fatalf("expected %d matches, got %d: %+v", len(want), len(ms), ms)
	}
	for i := range want {
		if ms[i] != want[i] {
			t.Errorf("match %d = %+v, want %+v", i, ms[i], want[i])
		}
	}
}

func TestLocateWordsAllFiltered(t *testing.T) {
	for _, s := range []string{"", "   ", "?!...;"} {
		out, err := LocateWords(one(text.S(s)), one(text.S("en-US")))
		if err != nil {
			t.Fatalf("LocateWords(%q): %v", s, err)
		}
		if !out[0].IsMissing() {
			t.Errorf("%q: expected the missing sentinel, got %+v", s, out[0])
		}
	}
}

func TestLocateWordsIdempotent(t *testing.T) {
	// A string consisting of a single word-classified segment locates
	// itself; re-running on that segment reproduces the same match.
	out, err := LocateWords(one(text.S("stable")), one(text.S("en-US")))
	if err != nil {
		t.Fatalf("LocateWords: %v", err)
	}
	ms := out[0]
	if len(ms) != 1 || ms[0] != (Match{1, 7}) {
		t.Fatalf("unexpected matches: %+v", ms)
	}

	again, err := LocateWords(one(text.S("stable")), one(text.S("en-US")))
	if err != nil {
		t.Fatalf("LocateWords rerun: %v", err)
	}
	if again[0][0] != ms[0] {
		t.Errorf("rerun diverged: %+v vs %+v", again[0][0], ms[0])
	}
}

func TestLocateWordsMissing(t *testing.T) {
	out, err := LocateWords([]text.Element{text.NA()}, one(text.S("en")))
	if err != nil {
		t.Fatalf("LocateWords: %v", err)
	}
	if !out[0].IsMissing() {
		t.Error("missing element should yield the sentinel")
	}
}

func TestMatchesMarshalJSON(t *testing.T) {
	got, err := missingMatches().MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("missing sentinel rendered as %s, want []", got)
	}

	got, err = Matches{{1, 3}}.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(got) != `[{"start":1,"end":3}]` {
		t.Errorf("unexpected JSON: %s", got)
	}
}

func BenchmarkLocateBoundariesWords(b *testing.B) {
	str := text.Strings("The quick brown fox jumps over the lazy dog.")
	boundary := text.Strings("word")
	locale := text.Strings("en-US")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := LocateBoundaries(str, boundary, locale); err != nil {
			b.Fatal(err)
		}
	}
}
