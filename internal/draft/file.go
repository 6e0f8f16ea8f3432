package draft

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode()> %w", err)
	}
	return result, nil
}

func writeYamlFile[T any](path string, data T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return yaml.NewEncoder(file).Encode(data)
}

// Load reads a draft file.
func Load(path string) (Draft, error) {
	result, err := readYamlFile[Draft](path)
	if err != nil {
		return Draft{}, fmt.Errorf("readYamlFile(%s) > %w", path, err)
	}
	return result, nil
}

// Save writes a draft file, creating parent directories as needed.
func Save(path string, d Draft) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	if err := writeYamlFile(path, d); err != nil {
		return fmt.Errorf("writeYamlFile(%s) > %w", path, err)
	}
	return nil
}
