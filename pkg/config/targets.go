package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Target is one UCS domain to report on. Exactly one of PasswordEnv or
// PasswordFile supplies the credential; targets never carry passwords
// inline.
type Target struct {
	// Endpoint is the UCS Manager address (host or host:port).
	Endpoint string `yaml:"endpoint"`
	Username string `yaml:"username"`
	// PasswordEnv names an environment variable holding the password.
	PasswordEnv string `yaml:"password_env,omitempty"`
	// PasswordFile points at an encrypted password file written by the
	// encrypt-password command.
	PasswordFile string `yaml:"password_file,omitempty"`
	// Output overrides the report file path for this target.
	Output string `yaml:"output,omitempty"`
}

type batchFile struct {
	Targets []Target `yaml:"targets"`
}

// LoadTargets reads a YAML batch file. Targets are processed in file
// order, each fully independently.
func LoadTargets(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file %s: %w", path, err)
	}
	var batch batchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}
	if len(batch.Targets) == 0 {
		return nil, fmt.Errorf("batch file %s lists no targets", path)
	}
	for i, t := range batch.Targets {
		if t.Endpoint == "" {
			return nil, fmt.Errorf("batch file %s: target %d has no endpoint", path, i)
		}
		if t.Username == "" {
			return nil, fmt.Errorf("batch file %s: target %s has no username", path, t.Endpoint)
		}
	}
	return batch.Targets, nil
}
