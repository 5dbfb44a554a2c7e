package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	Name           string        `toml:"name"`
	Project        projectSchema `toml:"project"`
	Owner          ownerSchema   `toml:"owner,omitempty"`
	ActivityViewer string        `toml:"activity_viewer,omitempty"`
}

type projectSchema struct {
	ID           string `toml:"id"`
	AppUUID      string `toml:"app_uuid"`
	ClientKeyRef string `toml:"client_key_ref"`
}

type ownerSchema struct {
	Address string `toml:"address,omitempty"`
	KeyRef  string `toml:"key_ref,omitempty"`
}
