package snapshot

import (
	"fmt"
	"os"
	"time"

	"tdnguyen/vispend/internal/dateutils"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// budgetRow is the on-disk YAML shape. Amount and dates are strings so the
// file stays forgiving about quoting; conversion validates them.
type budgetRow struct {
	Category  string `yaml:"category"`
	Amount    string `yaml:"amount"`
	Period    string `yaml:"period"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

type budgetsFile struct {
	Budgets []budgetRow `yaml:"budgets"`
}

// LoadBudgets reads category budgets from a YAML file. An empty or missing
// path returns an empty list so the advisor can run without budgets.
func LoadBudgets(filePath string) ([]models.Budget, error) {
	if filePath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, filePath).Warn("Budgets file not found, continuing without budgets")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading budgets file: %w", err)
	}

	var f budgetsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing budgets file: %w", err)
	}

	budgets := make([]models.Budget, 0, len(f.Budgets))
	for i, row := range f.Budgets {
		b, err := row.toBudget()
		if err != nil {
			return nil, fmt.Errorf("budget %d: %w", i+1, err)
		}
		budgets = append(budgets, b)
	}

	log.WithField(logging.FieldCount, len(budgets)).Info("Loaded budgets")
	return budgets, nil
}

func (r budgetRow) toBudget() (models.Budget, error) {
	if r.Category == "" {
		return models.Budget{}, fmt.Errorf("missing category")
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return models.Budget{}, fmt.Errorf("invalid amount %q: %w", r.Amount, err)
	}
	if !amount.IsPositive() {
		return models.Budget{}, fmt.Errorf("amount must be positive, got %s", r.Amount)
	}

	start, err := time.Parse(dateutils.DateLayoutISO, r.StartDate)
	if err != nil {
		return models.Budget{}, fmt.Errorf("invalid start_date %q: %w", r.StartDate, err)
	}
	end, err := time.Parse(dateutils.DateLayoutISO, r.EndDate)
	if err != nil {
		return models.Budget{}, fmt.Errorf("invalid end_date %q: %w", r.EndDate, err)
	}
	if end.Before(start) {
		return models.Budget{}, fmt.Errorf("end_date %s is before start_date %s", r.EndDate, r.StartDate)
	}

	return models.Budget{
		Category:  r.Category,
		Amount:    amount,
		Period:    r.Period,
		StartDate: start,
		EndDate:   end,
	}, nil
}
