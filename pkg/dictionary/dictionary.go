// Package dictionary provides the fixed 1024-word dictionary used by seed
// phrases, with prefix-based word lookup.
package dictionary

import (
	"errors"
	"fmt"
)

// Size is the required number of words in a phrase dictionary. Each word
// encodes 10 bits, so the dictionary must hold exactly 2^10 entries.
const Size = 1024

var (
	// ErrMalformedWord indicates a token too short to be matched against the
	// dictionary's prefix policy.
	ErrMalformedWord = errors.New("word is too short to match a dictionary entry")

	// ErrUnknownWord indicates a token whose prefix matches no dictionary entry.
	ErrUnknownWord = errors.New("word is not in the dictionary")
)

// Dictionary is an ordered list of 1024 words where every word is uniquely
// identified by its prefix key: the first prefixLen characters, or the whole
// word when it is shorter than prefixLen. Users may therefore transcribe
// abbreviated words and still resolve them unambiguously.
type Dictionary struct {
	words     []string
	prefixLen int
	minWord   int
	byPrefix  map[string]int
}

// New builds a dictionary from an ordered word list. The list must contain
// exactly Size words and every word's prefix key must be unique.
func New(words []string, prefixLen int) (*Dictionary, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("dictionary must contain %d words, got %d", Size, len(words))
	}
	if prefixLen < 1 {
		return nil, fmt.Errorf("prefix length must be positive, got %d", prefixLen)
	}

	d := &Dictionary{
		words:     words,
		prefixLen: prefixLen,
		minWord:   prefixLen,
		byPrefix:  make(map[string]int, Size),
	}
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("word %d is empty", i)
		}
		key := d.key(w)
		if prev, ok := d.byPrefix[key]; ok {
			return nil, fmt.Errorf("words %q and %q share the prefix %q", words[prev], w, key)
		}
		d.byPrefix[key] = i
		if len(key) < d.minWord {
			d.minWord = len(key)
		}
	}
	return d, nil
}

// key reduces a word or token to its canonical lookup form.
func (d *Dictionary) key(token string) string {
	if len(token) > d.prefixLen {
		return token[:d.prefixLen]
	}
	return token
}

// Word returns the word at the given index. The index must be in [0, Size).
func (d *Dictionary) Word(index int) string {
	return d.words[index]
}

// Index resolves a token to its word index using prefix matching. Tokens
// shorter than the dictionary's minimum key length are malformed; tokens
// whose key matches no entry are unknown.
func (d *Dictionary) Index(token string) (int, error) {
	if len(token) < d.minWord {
		return 0, fmt.Errorf("%w: %q is shorter than %d characters", ErrMalformedWord, token, d.minWord)
	}
	idx, ok := d.byPrefix[d.key(token)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, token)
	}
	return idx, nil
}

// Match reports whether a token resolves to the given dictionary word under
// the same prefix policy that Index uses.
func (d *Dictionary) Match(word, token string) bool {
	idx, err := d.Index(token)
	if err != nil {
		return false
	}
	return d.words[idx] == word
}

// PrefixLen returns the number of leading characters that uniquely identify
// any word in this dictionary.
func (d *Dictionary) PrefixLen() int {
	return d.prefixLen
}

// MinWordLen returns the length of the shortest token the dictionary will
// attempt to resolve. Anything shorter is malformed.
func (d *Dictionary) MinWordLen() int {
	return d.minWord
}
