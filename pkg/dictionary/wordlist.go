package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// DefaultPrefixLen is the unique-prefix guarantee of the default word list.
// BIP-39 lists are constructed so the first four letters identify any word.
const DefaultPrefixLen = 4

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the dictionary used by the standard seed phrase format:
// the first 1024 words of the BIP-39 English list.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := New(wordlists.English[:Size], DefaultPrefixLen)
		if err != nil {
			// The BIP-39 list is static; failing to build it is a bug.
			panic(fmt.Sprintf("dictionary: default word list rejected: %v", err))
		}
		defaultDict = d
	})
	return defaultDict
}

// LoadFile reads a word list from disk, one word per line. Blank lines and
// lines starting with # are skipped. The resulting list must satisfy the
// same constraints New enforces.
func LoadFile(path string, prefixLen int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return New(words, prefixLen)
}
