package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile reads key/value pairs from a file, picking the parser from the
// extension:
//   - .env: KEY=VALUE lines (godotenv syntax, comments and quotes allowed)
//   - .json: {"env": {"KEY": "VALUE"}}
//   - .yml/.yaml: an "env" mapping of string values
//
// The result is meant for WithEnvOverrides; it does not touch os.Environ.
func LoadEnvFile(path string) (map[string]string, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(fileInfo.Name())

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".json"):
		return loadJSONFile(path)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadYAMLFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, fileInfo.Name())
	}
}

type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadJSONFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}

	if err := json.Unmarshal(bts, out); err != nil {
		return nil, err
	}

	return out.Env, nil
}

func loadYAMLFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}

	if err := yaml.Unmarshal(bts, out); err != nil {
		return nil, err
	}

	return out.Env, nil
}
