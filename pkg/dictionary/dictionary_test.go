package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// testWords builds a synthetic 1024-word list that is prefix-unique at
// length 5.
func testWords() []string {
	words := make([]string, Size)
	for i := range words {
		words[i] = fmt.Sprintf("w%04d", i)
	}
	return words
}

func TestDefault(t *testing.T) {
	d := Default()
	if d.PrefixLen() != DefaultPrefixLen {
		t.Errorf("PrefixLen() = %d, want %d", d.PrefixLen(), DefaultPrefixLen)
	}
	if got := d.Word(0); got != "abandon" {
		t.Errorf("Word(0) = %q, want %q", got, "abandon")
	}

	// Every word must resolve back to its own index.
	for i := 0; i < Size; i++ {
		idx, err := d.Index(d.Word(i))
		if err != nil {
			t.Fatalf("Index(%q) error: %v", d.Word(i), err)
		}
		if idx != i {
			t.Fatalf("Index(%q) = %d, want %d", d.Word(i), idx, i)
		}
	}
}

func TestIndex_Prefix(t *testing.T) {
	d := Default()

	// An abbreviated word must resolve to the same index as the full word.
	for _, i := range []int{0, 17, 255, 511, 1023} {
		word := d.Word(i)
		if len(word) <= d.PrefixLen() {
			continue
		}
		idx, err := d.Index(word[:d.PrefixLen()])
		if err != nil {
			t.Fatalf("Index(%q) error: %v", word[:d.PrefixLen()], err)
		}
		if idx != i {
			t.Errorf("Index(%q) = %d, want %d", word[:d.PrefixLen()], idx, i)
		}
	}
}

func TestIndex_ShortWord(t *testing.T) {
	// Words shorter than the prefix length key on their full spelling.
	d := Default()
	idx, err := d.Index("act")
	if err != nil {
		t.Fatalf("Index(\"act\") error: %v", err)
	}
	if got := d.Word(idx); got != "act" {
		t.Errorf("Word(%d) = %q, want %q", idx, got, "act")
	}
}

func TestIndex_Errors(t *testing.T) {
	d := Default()
	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"too short", "ab", ErrMalformedWord},
		{"empty", "", ErrMalformedWord},
		{"unknown", "zzzz", ErrUnknownWord},
		{"unmatched three letter token", "qqq", ErrUnknownWord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Index(tt.token)
			if !errors.Is(err, tt.want) {
				t.Errorf("Index(%q) error = %v, want %v", tt.token, err, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	d := Default()
	word := d.Word(100)

	if !d.Match(word, word) {
		t.Error("word should match itself")
	}
	if !d.Match(word, word[:d.PrefixLen()]) {
		t.Error("word should match its unique prefix")
	}
	if d.Match(word, d.Word(101)) {
		t.Error("word should not match a different word")
	}
	if d.Match(word, "ab") {
		t.Error("word should not match a malformed token")
	}
}

func TestNew_Validation(t *testing.T) {
	t.Run("wrong word count", func(t *testing.T) {
		if _, err := New(testWords()[:100], 5); err == nil {
			t.Error("should reject a list of 100 words")
		}
	})

	t.Run("duplicate prefix", func(t *testing.T) {
		words := testWords()
		words[1] = words[0] + "x"
		if _, err := New(words, 5); err == nil {
			t.Error("should reject words sharing a prefix key")
		}
	})

	t.Run("empty word", func(t *testing.T) {
		words := testWords()
		words[10] = ""
		if _, err := New(words, 5); err == nil {
			t.Error("should reject an empty word")
		}
	})

	t.Run("bad prefix length", func(t *testing.T) {
		if _, err := New(testWords(), 0); err == nil {
			t.Error("should reject a zero prefix length")
		}
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	var data string
	data += "# custom list\n\n"
	for _, w := range testWords() {
		data += w + "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadFile(path, 5)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if got := d.Word(7); got != "w0007" {
		t.Errorf("Word(7) = %q, want %q", got, "w0007")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), 5); err == nil {
		t.Error("should fail on a missing file")
	}
}
