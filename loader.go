package budget

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Store persists the ordered sequence of transactions.
type Store interface {
	// Load returns all transactions in insertion order.
	Load() ([]Transaction, error)
	// Append adds tx at the end without rewriting the rest.
	Append(tx Transaction) error
	// Rewrite replaces the whole content with txs, in the given order.
	Rewrite(txs []Transaction) error
}

// FileStore is a Store backed by a CSV ledger file.
type FileStore struct {
	path string
}

// NewFileStore returns a Store reading and writing the ledger file at path.
// The file is created on first use.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Load opens, decodes and returns the ledger file content.
// A missing file is initialized with the header only.
func (s *FileStore) Load() ([]Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, s.init()
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	txs, err := DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.path, err)
	}
	return txs, nil
}

// init creates the ledger file with its header.
func (s *FileStore) init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, []byte(Header+"\n"), 0644); err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", s.path, err)
	}
	return nil
}

// Append writes a single row at the end of the ledger file.
//
// A missing or empty file gets its header first. A last row without its
// newline is terminated before tx is written.
func (s *FileStore) Append(tx Transaction) error {
	info, err := os.Stat(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist) || err == nil && info.Size() == 0:
		if err := s.init(); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("could not stat ledger file %q: %w", s.path, err)
	}

	// Open the file in append mode, the existing rows are never read back.
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q: %w", s.path, err)
	}
	if err := terminateLastLine(f); err != nil {
		f.Close()
		return fmt.Errorf("error reading ledger file %q: %w", s.path, err)
	}
	if err := EncodeTransaction(f, tx); err != nil {
		f.Close()
		return fmt.Errorf("error writing to ledger file %q: %w", s.path, err)
	}
	return f.Close()
}

// terminateLastLine writes a newline at the end of f unless f is empty or
// already ends with one.
func terminateLastLine(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err = f.WriteString("\n")
	return err
}

// Rewrite replaces the ledger file with txs.
//
// The content is written to a temporary file in the same directory which is
// then renamed over the ledger: a crash leaves either the old or the new file.
func (s *FileStore) Rewrite(txs []Transaction) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", s.path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temporary ledger file: %w", err)
	}
	// no-op once renamed
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, txs); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing ledger file %q: %w", s.path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing ledger file %q: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("error replacing ledger file %q: %w", s.path, err)
	}
	return nil
}

// MemoryStore is a Store holding transactions in memory.
// It counts the writes it receives.
type MemoryStore struct {
	txs      []Transaction
	appends  int
	rewrites int
}

// NewMemoryStore returns a MemoryStore initialized with txs.
func NewMemoryStore(txs ...Transaction) *MemoryStore {
	return &MemoryStore{txs: slices.Clone(txs)}
}

func (s *MemoryStore) Load() ([]Transaction, error) { return slices.Clone(s.txs), nil }

func (s *MemoryStore) Append(tx Transaction) error {
	s.appends++
	s.txs = append(s.txs, tx)
	return nil
}

func (s *MemoryStore) Rewrite(txs []Transaction) error {
	s.rewrites++
	s.txs = slices.Clone(txs)
	return nil
}

// Appends returns the number of Append calls.
func (s *MemoryStore) Appends() int { return s.appends }

// Rewrites returns the number of Rewrite calls.
func (s *MemoryStore) Rewrites() int { return s.rewrites }
