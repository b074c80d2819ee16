package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"keyseal/internal/domain"
	"keyseal/internal/keystore"
)

const (
	recordExt  = ".json"
	recordMode = 0o600
)

var (
	// ErrNotFound is returned when no record exists under a name.
	ErrNotFound = errors.New("keystore not found")
	// ErrExists is returned when saving over an existing record.
	ErrExists = errors.New("keystore already exists")
	// ErrInvalidName is returned for names unusable as file names.
	ErrInvalidName = errors.New("invalid keystore name")
)

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// KeystoreFileStore persists one JSON record per wallet under dir.
type KeystoreFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeystoreFileStore returns a KeystoreFileStore rooted at dir.
func NewKeystoreFileStore(dir string) *KeystoreFileStore {
	return &KeystoreFileStore{dir: dir}
}

// Dir returns the directory holding the records.
func (s *KeystoreFileStore) Dir() string { return s.dir }

// Path returns the file that holds the record called name.
func (s *KeystoreFileStore) Path(name domain.WalletName) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name.String()+recordExt), nil
}

// SaveRecord writes a new record. Records are immutable, so an existing file
// under the same name is never overwritten.
func (s *KeystoreFileStore) SaveRecord(rec domain.Record) error {
	return s.write(rec, true)
}

// ReplaceRecord atomically swaps the stored record for rec, e.g. after a
// password change produced a new record for the same key.
func (s *KeystoreFileStore) ReplaceRecord(rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.Path(domain.WalletName(rec.Name))
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return s.writeLocked(path, rec, false)
}

func (s *KeystoreFileStore) write(rec domain.Record, exclusive bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.Path(domain.WalletName(rec.Name))
	if err != nil {
		return err
	}
	return s.writeLocked(path, rec, exclusive)
}

func (s *KeystoreFileStore) writeLocked(path string, rec domain.Record, exclusive bool) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	b, err := keystore.Marshal(rec)
	if err != nil {
		return err
	}
	return writeFile(path, b, recordMode, exclusive)
}

// LoadRecord reads and parses the record called name.
func (s *KeystoreFileStore) LoadRecord(name domain.WalletName) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.Path(name)
	if err != nil {
		return domain.Record{}, err
	}
	return LoadFile(path)
}

// ListRecords returns the names of all stored records, sorted.
func (s *KeystoreFileStore) ListRecords() ([]domain.WalletName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []domain.WalletName
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordExt) {
			continue
		}
		name := domain.WalletName(strings.TrimSuffix(e.Name(), recordExt))
		if ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names, nil
}

// DeleteRecord removes the record called name.
func (s *KeystoreFileStore) DeleteRecord(name domain.WalletName) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.Path(name)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

// LoadFile reads and parses a keystore record from an arbitrary path.
func LoadFile(path string) (domain.Record, error) {
	b, err := readFile(path)
	if err != nil {
		return domain.Record{}, err
	}
	rec, err := keystore.Parse(b)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// ValidateName reports whether name can be used as a record file stem.
func ValidateName(name domain.WalletName) error {
	if !validName.MatchString(name.String()) {
		return fmt.Errorf("%w %q: use 1-64 letters, digits, '.', '_' or '-'", ErrInvalidName, name)
	}
	return nil
}

// Compile-time assertion that KeystoreFileStore implements domain.RecordStore.
var _ domain.RecordStore = (*KeystoreFileStore)(nil)
