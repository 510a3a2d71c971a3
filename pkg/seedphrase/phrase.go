package seedphrase

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/kardashev-net/seedkit/pkg/dictionary"
)

// Phrase layout constants.
const (
	// EntropyWords is the number of words that carry raw seed bits.
	EntropyWords = 13

	// ChecksumWords is the number of trailing words that carry the checksum.
	ChecksumWords = 2

	// PhraseWords is the total word count of a seed phrase.
	PhraseWords = EntropyWords + ChecksumWords

	// wordBits is the bit width of every entropy word except the last.
	wordBits = 10

	// lastWordBits is the bit width of the 13th entropy word. Only 8 bits of
	// seed remain after the first 12 words consume 120.
	lastWordBits = 8

	// lastWordMax is the highest dictionary index the 13th word may carry.
	lastWordMax = 1<<lastWordBits - 1
)

var (
	// ErrWordCount indicates a phrase with the wrong number of words.
	ErrWordCount = errors.New("phrase must contain exactly 15 words")

	// ErrWordOutOfRange indicates a 13th word whose dictionary index exceeds
	// 255. Such a word is a valid dictionary entry but never a valid 13th
	// word, even when its low 8 bits would pass the checksum.
	ErrWordOutOfRange = errors.New("13th word is out of range for a seed phrase")

	// ErrChecksumMismatch indicates checksum words that do not match the
	// words recomputed from the decoded seed.
	ErrChecksumMismatch = errors.New("checksum does not match")
)

// Codec converts seeds to phrases and back over a fixed dictionary.
type Codec struct {
	dict *dictionary.Dictionary
}

// NewCodec creates a codec over the given dictionary.
func NewCodec(d *dictionary.Dictionary) *Codec {
	return &Codec{dict: d}
}

// ToPhrase encodes a seed as 15 space-separated dictionary words. The seed is
// consumed as a 128-bit MSB-first bitstream: 12 words of 10 bits, one word of
// 8 bits, then 2 checksum words. Identical seeds always produce identical
// phrases.
func (c *Codec) ToPhrase(seed Seed) string {
	words := make([]string, 0, PhraseWords)
	cur := bitCursor{buf: &seed}
	for i := 0; i < EntropyWords; i++ {
		bits := wordBits
		if i == EntropyWords-1 {
			bits = lastWordBits
		}
		words = append(words, c.dict.Word(cur.readBits(bits)))
	}
	sum := c.checksumWords(seed)
	words = append(words, sum[:]...)
	return strings.Join(words, " ")
}

// FromPhrase decodes a phrase back into its seed. Validation gates run in
// order: word count, per-word resolution, the 13th-word bound, and finally
// the checksum. A failure at any gate returns a typed error and no seed is
// ever assembled from partially checked words.
func (c *Codec) FromPhrase(phrase string) (Seed, error) {
	words := strings.Split(phrase, " ")
	if len(words) != PhraseWords {
		return Seed{}, fmt.Errorf("%w: got %d", ErrWordCount, len(words))
	}

	// Every word, checksum words included, must be long enough to resolve.
	for i, w := range words {
		if len(w) < c.dict.MinWordLen() {
			return Seed{}, fmt.Errorf("word %d: %w: %q is shorter than %d characters",
				i+1, dictionary.ErrMalformedWord, w, c.dict.MinWordLen())
		}
	}

	var seed Seed
	cur := bitCursor{buf: &seed}
	for i := 0; i < EntropyWords; i++ {
		idx, err := c.dict.Index(words[i])
		if err != nil {
			return Seed{}, fmt.Errorf("word %d: %w", i+1, err)
		}
		bits := wordBits
		if i == EntropyWords-1 {
			bits = lastWordBits
			// Packing would silently truncate an index above 255, so the
			// bound must be rejected explicitly before writing any bits.
			if idx > lastWordMax {
				return Seed{}, fmt.Errorf("%w: %q resolves to index %d", ErrWordOutOfRange, words[i], idx)
			}
		}
		cur.writeBits(bits, idx)
	}

	sum := c.checksumWords(seed)
	for i, want := range sum {
		got := words[EntropyWords+i]
		if !c.dict.Match(want, got) {
			return Seed{}, fmt.Errorf("%w: checksum word %d should be %q, got %q",
				ErrChecksumMismatch, i+1, want, got)
		}
	}
	return seed, nil
}

// Valid returns nil if the phrase decodes to a seed, and the decode error
// otherwise.
func (c *Codec) Valid(phrase string) error {
	_, err := c.FromPhrase(phrase)
	return err
}

// checksumWords derives the two checksum words for a seed: the top 10 bits of
// the SHA-256 digest map to the first word and digest bits 10-19 map to the
// second. The split is part of the interoperability contract and must stay
// bit-identical across implementations.
func (c *Codec) checksumWords(seed Seed) [ChecksumWords]string {
	digest := sha256.Sum256(seed[:])
	w1 := (int(digest[0])<<8 | int(digest[1])) >> 6
	w2 := ((int(digest[1])<<10 | int(digest[2])<<2) & 0xffff) >> 6
	return [ChecksumWords]string{c.dict.Word(w1), c.dict.Word(w2)}
}

// defaultCodec lazily wraps the default dictionary for the package-level
// convenience functions.
func defaultCodec() *Codec {
	return NewCodec(dictionary.Default())
}

// ToPhrase encodes a seed using the default dictionary.
func ToPhrase(seed Seed) string {
	return defaultCodec().ToPhrase(seed)
}

// FromPhrase decodes a phrase using the default dictionary.
func FromPhrase(phrase string) (Seed, error) {
	return defaultCodec().FromPhrase(phrase)
}

// Valid checks a phrase against the default dictionary.
func Valid(phrase string) error {
	return defaultCodec().Valid(phrase)
}
