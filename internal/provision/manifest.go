package provision

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"church-admin/internal/models"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyManifest = errors.New("manifest declares no churches")
	ErrInvalidChurch = errors.New("invalid church entry")
	ErrInvalidMember = errors.New("invalid member entry")
)

// Manifest lists the churches to bootstrap together with their first members.
type Manifest struct {
	Churches []ChurchEntry `yaml:"churches"`
}

type ChurchEntry struct {
	Name    string        `yaml:"name"`
	Slug    string        `yaml:"slug"`
	Members []MemberEntry `yaml:"members"`
}

// MemberEntry is a membership granted to an identity-provider subject.
// Role defaults to admin.
type MemberEntry struct {
	UserID string `yaml:"user_id"`
	Email  string `yaml:"email"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
}

// LoadManifest reads and validates a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a YAML manifest, rejecting unknown keys.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	for i := range m.Churches {
		for j := range m.Churches[i].Members {
			if m.Churches[i].Members[j].Role == "" {
				m.Churches[i].Members[j].Role = models.RoleAdmin
			}
		}
	}
}

// Validate checks every entry. Each church needs at least one admin so
// it can be managed through the API afterwards.
func (m *Manifest) Validate() error {
	if len(m.Churches) == 0 {
		return ErrEmptyManifest
	}

	seen := make(map[string]bool, len(m.Churches))
	for i, c := range m.Churches {
		church := models.Church{Name: c.Name, Slug: c.Slug}
		if err := church.Validate(); err != nil {
			return fmt.Errorf("%w: churches[%d]: %v", ErrInvalidChurch, i, err)
		}
		if seen[c.Slug] {
			return fmt.Errorf("%w: duplicate slug %q", ErrInvalidChurch, c.Slug)
		}
		seen[c.Slug] = true

		admins := 0
		users := make(map[string]bool, len(c.Members))
		for j, mem := range c.Members {
			if mem.UserID == "" {
				return fmt.Errorf("%w: %s members[%d] has no user_id", ErrInvalidMember, c.Slug, j)
			}
			if users[mem.UserID] {
				return fmt.Errorf("%w: %s lists %s twice", ErrInvalidMember, c.Slug, mem.UserID)
			}
			users[mem.UserID] = true
			if !models.IsValidEmail(mem.Email) {
				return fmt.Errorf("%w: %s members[%d] email %q", ErrInvalidMember, c.Slug, j, mem.Email)
			}
			if !models.IsValidRole(mem.Role) {
				return fmt.Errorf("%w: %s members[%d] role %q", ErrInvalidMember, c.Slug, j, mem.Role)
			}
			if mem.Role == models.RoleAdmin {
				admins++
			}
		}
		if admins == 0 {
			return fmt.Errorf("%w: %s needs at least one admin", ErrInvalidChurch, c.Slug)
		}
	}
	return nil
}
