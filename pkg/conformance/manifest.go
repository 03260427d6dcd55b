package conformance

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

const manifestFileName = "manifest.yaml"

// Manifest pins the fixture set: every suite file with its sha256, plus
// provenance metadata. It plays the role a lockfile plays for package
// dependencies — a run against suites that do not match their pinned
// checksums is not a conformance run.
type Manifest struct {
	Generated string         `yaml:"generated"`
	Tool      string         `yaml:"tool"`
	Source    string         `yaml:"source,omitempty"`
	Revision  string         `yaml:"revision,omitempty"`
	Suites    []ManifestItem `yaml:"suites"`
}

// ManifestItem pins one suite file.
type ManifestItem struct {
	File     string `yaml:"file"`
	Checksum string `yaml:"checksum"`
}

// BuildManifest hashes every suite file under dir.
func BuildManifest(dir, tool, source, revision string) (*Manifest, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("conformance: scan %s: %w", dir, err)
	}
	sort.Strings(matches)
	manifest := &Manifest{
		Generated: time.Now().UTC().Format(time.RFC3339),
		Tool:      tool,
		Source:    source,
		Revision:  revision,
	}
	for _, path := range matches {
		name := filepath.Base(path)
		if name == manifestFileName {
			continue
		}
		sum, err := fileChecksum(path)
		if err != nil {
			return nil, err
		}
		manifest.Suites = append(manifest.Suites, ManifestItem{File: name, Checksum: sum})
	}
	if len(manifest.Suites) == 0 {
		return nil, fmt.Errorf("conformance: no suites to pin in %s", dir)
	}
	return manifest, nil
}

// LoadManifest reads the pinned manifest from dir.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, manifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conformance: read manifest %s: %w", path, err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("conformance: parse manifest %s: %w", path, err)
	}
	return &manifest, nil
}

// Save writes the manifest into dir.
func (m *Manifest) Save(dir string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("conformance: encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("conformance: encode manifest: %w", err)
	}
	path := filepath.Join(dir, manifestFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("conformance: write manifest %s: %w", path, err)
	}
	return nil
}

// Verify checks every pinned suite in dir against its checksum and reports
// the first mismatch.
func (m *Manifest) Verify(dir string) error {
	for _, item := range m.Suites {
		sum, err := fileChecksum(filepath.Join(dir, item.File))
		if err != nil {
			return err
		}
		if sum != item.Checksum {
			return fmt.Errorf("conformance: suite %s: checksum mismatch (have %s, want %s)", item.File, sum, item.Checksum)
		}
	}
	return nil
}

func fileChecksum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("conformance: read %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
