package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported history schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID        string        `toml:"id"`
	StartedAt string        `toml:"started_at"`
	Entries   []entrySchema `toml:"entries"`
}

type entrySchema struct {
	Message string `toml:"message"`
	Reply   string `toml:"reply"`
	SentAt  string `toml:"sent_at"`
}
