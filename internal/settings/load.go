package settings

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
)

// Load reads a YAML settings file over a copy of Defaults.
//
// A .env file next to the settings file (or in the working directory) is
// loaded first; ${VAR} references in the YAML are then expanded from the
// environment. Already-set environment variables win over .env values.
func Load(path string) (*Settings, error) {
	loadEnvFiles(filepath.Dir(path))

	// #nosec G304 -- the settings path is supplied by the operator.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapError(err, errors.CategoryNotFound, "settings file not found").
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read settings file").
			WithContext("path", path).
			Build()
	}
	return Parse(data)
}

// Parse decodes YAML settings bytes over a copy of Defaults.
func Parse(data []byte) (*Settings, error) {
	s := Defaults()
	defaults := s.Extra
	s.Extra = nil
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), s); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse settings").Build()
	}
	overrides := s.Extra
	s.Extra = defaults
	for k, v := range overrides {
		s.Set(k, v)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks values that cannot be repaired by a default.
func (s *Settings) Validate() error {
	if s.SummaryMaxLength < 0 {
		return errors.ConfigError("SUMMARY_MAX_LENGTH must not be negative").
			WithContext("setting", "SUMMARY_MAX_LENGTH").
			WithContext("value", s.SummaryMaxLength).
			Build()
	}
	if _, err := ParseStatus(s.DefaultStatus); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid DEFAULT_STATUS").
			WithContext("setting", "DEFAULT_STATUS").
			Build()
	}
	if s.Path == "" {
		s.Path = "."
	}
	return nil
}

func loadEnvFiles(dir string) {
	candidates := []string{filepath.Join(dir, ".env"), ".env"}
	seen := map[string]bool{}
	for _, p := range candidates {
		abs, err := filepath.Abs(p)
		if err != nil || seen[abs] {
			continue
		}
		seen[abs] = true
		if _, err := os.Stat(abs); err == nil {
			_ = godotenv.Load(abs)
		}
	}
}
