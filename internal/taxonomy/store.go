package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"

	"tdnguyen/vispend/internal/logging"

	"gopkg.in/yaml.v3"
)

// Store loads taxonomy configuration from disk.
type Store struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewStore creates a store for the given categories file. An empty filename
// means "search the standard locations for categories.yaml".
func NewStore(categoriesFile string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{CategoriesFile: categoriesFile, logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *Store) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Last, check the user's config directory.
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "vispend", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// Load reads the taxonomy from YAML, falling back to the compiled-in
// defaults when no file is found. A malformed file is an error; a missing
// file is not.
func (s *Store) Load() (*Taxonomy, error) {
	name := s.CategoriesFile
	if name == "" {
		name = "categories.yaml"
	}

	path, err := s.FindConfigFile(name)
	if err != nil {
		s.logger.WithField(logging.FieldFile, name).
			Debug("No taxonomy file found, using built-in categories")
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading taxonomy file %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing taxonomy file %s: %w", path, err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy file %s defines no categories", path)
	}

	tips := f.Tips
	if tips == nil {
		tips = defaultTips()
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(f.Categories)},
	).Debug("Loaded category taxonomy")

	return New(f.Categories, tips), nil
}

// Save writes the taxonomy to the store's categories file. Useful for
// bootstrapping a user-editable copy of the defaults.
func (s *Store) Save(t *Taxonomy) error {
	name := s.CategoriesFile
	if name == "" {
		name = "categories.yaml"
	}

	data, err := yaml.Marshal(file{Categories: t.groups, Tips: t.tips})
	if err != nil {
		return fmt.Errorf("error marshaling taxonomy: %w", err)
	}
	if err := os.WriteFile(name, data, 0600); err != nil {
		return fmt.Errorf("error writing taxonomy file %s: %w", name, err)
	}
	return nil
}
