// Package goals tracks company targets against the ledger. Goals are kept
// in a single YAML file under the data directory, one file per installation.
package goals

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fintrack/fintrack/internal/logging"
	"fintrack/fintrack/internal/models"
	"fintrack/fintrack/internal/reports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// goalsFile is the on-disk shape.
type goalsFile struct {
	Goals []models.Goal `yaml:"goals"`
}

// Service manages goal persistence and progress computation.
type Service struct {
	path   string
	mu     sync.Mutex
	logger logging.Logger
}

// NewService creates a goal service persisting to dir/goals.yaml.
func NewService(dir string, logger logging.Logger) (*Service, error) {
	if logger == nil {
		logger = logging.New("info", "text")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Service{path: filepath.Join(dir, "goals.yaml"), logger: logger}, nil
}

func (s *Service) load() (*goalsFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &goalsFile{}, nil
		}
		return nil, fmt.Errorf("reading goals file: %w", err)
	}
	var file goalsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing goals file %s: %w", s.path, err)
	}
	return &file, nil
}

func (s *Service) save(file *goalsFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding goals file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing goals file %s: %w", s.path, err)
	}
	return nil
}

// List returns all goals.
func (s *Service) List() ([]models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, err := s.load()
	if err != nil {
		return nil, err
	}
	return file.Goals, nil
}

// Add stores a new goal and returns it with its assigned ID.
func (s *Service) Add(goal models.Goal) (models.Goal, error) {
	if goal.Name == "" {
		return models.Goal{}, fmt.Errorf("goal name must not be empty")
	}
	if !goal.TargetAmount.IsPositive() {
		return models.Goal{}, fmt.Errorf("goal target amount must be positive, got %s", goal.TargetAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	file, err := s.load()
	if err != nil {
		return models.Goal{}, err
	}
	goal.ID = uuid.NewString()
	file.Goals = append(file.Goals, goal)
	if err := s.save(file); err != nil {
		return models.Goal{}, err
	}
	s.logger.Debug("Stored goal", logging.Field{Key: "id", Value: goal.ID})
	return goal, nil
}

// Delete removes a goal by ID.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, err := s.load()
	if err != nil {
		return err
	}
	kept := file.Goals[:0]
	found := false
	for _, g := range file.Goals {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return fmt.Errorf("goal %s not found", id)
	}
	file.Goals = kept
	return s.save(file)
}

// Progress is a goal measured against the ledger's net savings.
type Progress struct {
	Goal    models.Goal     `json:"goal"`
	Saved   decimal.Decimal `json:"saved"`
	Percent decimal.Decimal `json:"percent"`
}

// MeasureProgress computes each goal's progress from the ledger. Saved is
// the ledger's net (income minus expenses), floored at zero; percent is
// saved over target, capped at 100.
func MeasureProgress(goalList []models.Goal, txs []models.Transaction) []Progress {
	net := reports.BuildBalanceSheet(txs).Equity
	saved := net
	if saved.IsNegative() {
		saved = decimal.Zero
	}

	hundred := decimal.NewFromInt(100)
	out := make([]Progress, 0, len(goalList))
	for _, goal := range goalList {
		percent := decimal.Zero
		if goal.TargetAmount.IsPositive() {
			percent = saved.Div(goal.TargetAmount).Mul(hundred).Round(1)
			if percent.GreaterThan(hundred) {
				percent = hundred
			}
		}
		out = append(out, Progress{Goal: goal, Saved: saved, Percent: percent})
	}
	return out
}
