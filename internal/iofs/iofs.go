package iofs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/gnames/geodb/pkg/config"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// WriteYAML saves v as a YAML document at path, creating missing
// directories.
func WriteYAML(path string, v any) error {
	if err := touchDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return WriteFileError(path, err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

// ReadYAML loads a YAML document from path into v.
func ReadYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadFileError(path, err)
	}
	if err = yaml.Unmarshal(data, v); err != nil {
		return ReadFileError(path, err)
	}
	return nil
}
