// Package keystore manages encrypted on-disk storage of seeds.
package keystore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kardashev-net/seedkit/internal/log"
	"github.com/kardashev-net/seedkit/pkg/keypair"
	"github.com/kardashev-net/seedkit/pkg/seedphrase"
)

// seedFile is the on-disk JSON format for an encrypted seed.
type seedFile struct {
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	Fingerprint   string    `json:"fingerprint"` // fingerprint of the derived public key
	EncryptedSeed []byte    `json:"encrypted_seed"`
}

// Entry describes a stored seed without exposing its secret material.
type Entry struct {
	Name        string
	Fingerprint string
	CreatedAt   time.Time
}

// Keystore reads and writes encrypted seed files in a directory.
type Keystore struct {
	path string
}

// New creates a keystore rooted at the given directory. The directory is
// created if it doesn't exist.
func New(path string) (*Keystore, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("create keystore dir: %w", err)
	}
	return &Keystore{path: path}, nil
}

// seedPath returns the file path for a stored seed by name.
func (ks *Keystore) seedPath(name string) string {
	return filepath.Join(ks.path, name+".seed")
}

// Create encrypts a seed under a password and stores it by name.
func (ks *Keystore) Create(name string, seed seedphrase.Seed, password []byte, params KDFParams) error {
	path := ks.seedPath(name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("seed %q already exists", name)
	}

	sealed, err := Seal(seed[:], password, params)
	if err != nil {
		return fmt.Errorf("seal seed: %w", err)
	}

	sf := seedFile{
		Version:       1,
		CreatedAt:     time.Now().UTC(),
		Fingerprint:   keypair.FromSeed(seed).Fingerprint(),
		EncryptedSeed: sealed,
	}
	if err := ks.writeFile(path, &sf); err != nil {
		return err
	}

	log.Keystore.Info().
		Str("name", name).
		Str("fingerprint", sf.Fingerprint).
		Msg("stored seed")
	return nil
}

// Load decrypts a stored seed.
func (ks *Keystore) Load(name string, password []byte) (seedphrase.Seed, error) {
	sf, err := ks.readFile(ks.seedPath(name))
	if err != nil {
		return seedphrase.Seed{}, err
	}

	plaintext, err := Open(sf.EncryptedSeed, password)
	if err != nil {
		return seedphrase.Seed{}, fmt.Errorf("decrypt seed %q: %w", name, err)
	}
	return seedphrase.SeedFromBytes(plaintext)
}

// Show returns the metadata entry for a stored seed.
func (ks *Keystore) Show(name string) (Entry, error) {
	sf, err := ks.readFile(ks.seedPath(name))
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Fingerprint: sf.Fingerprint, CreatedAt: sf.CreatedAt}, nil
}

// List returns the entries for all stored seeds.
func (ks *Keystore) List() ([]Entry, error) {
	files, err := os.ReadDir(ks.path)
	if err != nil {
		return nil, fmt.Errorf("read keystore dir: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		if ext := filepath.Ext(name); ext == ".seed" {
			entry, err := ks.Show(name[:len(name)-len(ext)])
			if err != nil {
				log.Keystore.Warn().Str("file", name).Err(err).Msg("skipping unreadable seed file")
				continue
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// Delete removes a stored seed.
func (ks *Keystore) Delete(name string) error {
	path := ks.seedPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("seed %q not found", name)
	}
	if err := os.Remove(path); err != nil {
		return err
	}
	log.Keystore.Info().Str("name", name).Msg("deleted seed")
	return nil
}

func (ks *Keystore) writeFile(path string, sf *seedFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal seed file: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}
	return nil
}

func (ks *Keystore) readFile(path string) (*seedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var sf seedFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if sf.Version != 1 {
		return nil, fmt.Errorf("unsupported seed file version: %d", sf.Version)
	}
	return &sf, nil
}
