package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up when none is given.
const DefaultFileName = "refit.yaml"

// File is the on-disk form of a RewriteConfiguration.
type File struct {
	Name  string   `yaml:"name" json:"name"`
	Paths []string `yaml:"paths" json:"paths"`
	Rules []string `yaml:"rules,omitempty" json:"rules,omitempty"`
	Sets  []string `yaml:"sets,omitempty" json:"sets,omitempty"`
	Skip  []string `yaml:"skip,omitempty" json:"skip,omitempty"`
}

// Load reads the configuration file at path. Relative paths inside the file
// are resolved against the file's directory.
func Load(path string) (RewriteConfiguration, error) {
	f, err := os.Open(path)
	if err != nil {
		return RewriteConfiguration{}, err
	}
	defer f.Close()

	cfg, err := Parse(f, filepath.Dir(path))
	if err != nil {
		return RewriteConfiguration{}, fmt.Errorf("error loading %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration from r, resolving relative paths
// against baseDir. Unknown keys are rejected.
func Parse(r io.Reader, baseDir string) (RewriteConfiguration, error) {
	var file File

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return RewriteConfiguration{}, err
	}

	return New(
		resolve(baseDir, file.Paths),
		file.Rules,
		file.Sets,
		resolve(baseDir, file.Skip),
	)
}

func resolve(baseDir string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" || filepath.IsAbs(p) {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(baseDir, p)
	}
	return out
}

// File converts c into its on-disk form. Paths under baseDir are written
// relative to it.
func (c RewriteConfiguration) File(name, baseDir string) File {
	return File{
		Name:  name,
		Paths: relativize(baseDir, c.paths),
		Rules: c.Rules(),
		Sets:  c.Sets(),
		Skip:  relativize(baseDir, c.skip),
	}
}

func relativize(baseDir string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(baseDir, p)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			out[i] = p
			continue
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

// Save writes file to path as YAML, replacing any existing file.
func Save(path string, file File) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(file); err != nil {
		f.Close()
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if err := encoder.Close(); err != nil {
		f.Close()
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
