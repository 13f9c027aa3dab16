package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"fintrack/fintrack/internal/logging"
	"fintrack/fintrack/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ownerNameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ledgerFile is the on-disk shape of one owner's ledger.
type ledgerFile struct {
	Transactions []models.Transaction `yaml:"transactions"`
}

// FileStore keeps each owner's ledger in a YAML file under a data
// directory. It is safe for concurrent use within one process; it does not
// coordinate across processes.
type FileStore struct {
	dir    string
	mu     sync.Mutex
	logger logging.Logger
}

// NewFileStore creates a store rooted at dir, creating the directory if
// needed.
func NewFileStore(dir string, logger logging.Logger) (*FileStore, error) {
	if logger == nil {
		logger = logging.New("info", "text")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) path(ownerID string) (string, error) {
	if !ownerNameRe.MatchString(ownerID) {
		return "", fmt.Errorf("invalid owner id %q", ownerID)
	}
	return filepath.Join(s.dir, ownerID+".yaml"), nil
}

// load reads an owner's ledger file. A missing file is an empty ledger,
// not an error.
func (s *FileStore) load(ownerID string) (*ledgerFile, error) {
	path, err := s.path(ownerID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ledgerFile{}, nil
		}
		return nil, fmt.Errorf("reading ledger file: %w", err)
	}
	var file ledgerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing ledger file %s: %w", path, err)
	}
	return &file, nil
}

func (s *FileStore) save(ownerID string, file *ledgerFile) error {
	path, err := s.path(ownerID)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding ledger file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing ledger file %s: %w", path, err)
	}
	return nil
}

// List returns the owner's transactions in stored order.
func (s *FileStore) List(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load(ownerID)
	if err != nil {
		return nil, err
	}
	return file.Transactions, nil
}

// Add assigns an ID, appends the transaction and persists the ledger.
func (s *FileStore) Add(ctx context.Context, ownerID string, tx models.Transaction) (models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return models.Transaction{}, err
	}
	if !tx.Direction.IsValid() {
		return models.Transaction{}, fmt.Errorf("transaction direction %q is not valid", tx.Direction)
	}
	if !tx.Amount.IsPositive() {
		return models.Transaction{}, fmt.Errorf("transaction amount must be positive, got %s", tx.Amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load(ownerID)
	if err != nil {
		return models.Transaction{}, err
	}
	tx.ID = uuid.NewString()
	file.Transactions = append(file.Transactions, tx)
	if err := s.save(ownerID, file); err != nil {
		return models.Transaction{}, err
	}
	s.logger.Debug("Stored transaction",
		logging.Field{Key: "owner", Value: ownerID},
		logging.Field{Key: "id", Value: tx.ID})
	return tx, nil
}

// Delete removes the transaction with the given ID.
func (s *FileStore) Delete(ctx context.Context, ownerID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load(ownerID)
	if err != nil {
		return err
	}
	kept := file.Transactions[:0]
	found := false
	for _, tx := range file.Transactions {
		if tx.ID == id {
			found = true
			continue
		}
		kept = append(kept, tx)
	}
	if !found {
		return fmt.Errorf("transaction %s not found", id)
	}
	file.Transactions = kept
	return s.save(ownerID, file)
}
