package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"addressbook/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileRepository stores the AddressBook as a single YAML or JSON document.
// A ".json" extension selects JSON; anything else is YAML.
type FileRepository struct {
	path string
}

// NewFileRepository creates a repository backed by the file at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the backing file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the file. A missing or empty file yields an empty AddressBook.
func (r *FileRepository) Load(ctx context.Context) (*domain.AddressBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return domain.NewAddressBook(), nil
	}

	var s snapshot
	if err := r.unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.path, err)
	}

	book, err := s.toBook()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", r.path, err)
	}
	return book, nil
}

// Save writes the whole book to a temporary file and renames it over the
// target, so readers never observe a partial document.
func (r *FileRepository) Save(ctx context.Context, book *domain.AddressBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.marshal(toSnapshot(book))
	if err != nil {
		return fmt.Errorf("encoding address book: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replacing %s: %w", r.path, err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (r *FileRepository) Close() error {
	return nil
}

func (r *FileRepository) isJSON() bool {
	return strings.EqualFold(filepath.Ext(r.path), ".json")
}

func (r *FileRepository) marshal(s snapshot) ([]byte, error) {
	if r.isJSON() {
		return json.MarshalIndent(s, "", "  ")
	}
	return yaml.Marshal(s)
}

func (r *FileRepository) unmarshal(data []byte, s *snapshot) error {
	if r.isJSON() {
		return json.Unmarshal(data, s)
	}
	return yaml.Unmarshal(data, s)
}
