// Package projectconfig provides the ProjectConfig struct and loader for
// .filmtop.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spboyer/filmtop/internal/validation"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by Load.
const FileName = ".filmtop.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultInput       = "films.csv"
	DefaultOutput      = "films_top.txt"
	DefaultPrecision   = -1
	DefaultGenreMatch  = "exact"
	DefaultScorePolicy = "blend"
)

// InputConfig describes the catalog to read.
type InputConfig struct {
	Path    string `yaml:"path,omitempty"`
	Lenient *bool  `yaml:"lenient,omitempty"`
}

// RankConfig holds the filtering and ranking parameters.
type RankConfig struct {
	MinYear     int    `yaml:"min_year,omitempty"`
	Genre       string `yaml:"genre,omitempty"`
	Limit       int    `yaml:"limit,omitempty"`
	GenreMatch  string `yaml:"genre_match,omitempty"`
	ScorePolicy string `yaml:"score_policy,omitempty"`
}

// OutputConfig describes the ranking file to write.
type OutputConfig struct {
	Path      string `yaml:"path,omitempty"`
	Precision *int   `yaml:"precision,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .filmtop.yaml.
type ProjectConfig struct {
	Input  InputConfig  `yaml:"input,omitempty"`
	Rank   RankConfig   `yaml:"rank,omitempty"`
	Output OutputConfig `yaml:"output,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Input: InputConfig{
			Path:    DefaultInput,
			Lenient: boolPtr(false),
		},
		Rank: RankConfig{
			GenreMatch:  DefaultGenreMatch,
			ScorePolicy: DefaultScorePolicy,
		},
		Output: OutputConfig{
			Path:      DefaultOutput,
			Precision: intPtr(DefaultPrecision),
		},
	}
}

// Load finds .filmtop.yaml by walking up from startDir (max 10 levels),
// validates it, and fills in missing fields with defaults. Relative input and
// output paths in the file are resolved against the file's directory.
// If no config file is found, returns defaults with a nil error.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, path, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	if errs := validation.ValidateConfigBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid %s:\n  %s", path, strings.Join(errs, "\n  "))
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	fileCfg.Input.Path = resolvePath(fileCfg.Input.Path, baseDir)
	fileCfg.Output.Path = resolvePath(fileCfg.Output.Path, baseDir)

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// resolvePath makes a relative path from the config file relative to the
// directory holding it. Empty and absolute paths are returned unchanged.
func resolvePath(p, baseDir string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// findConfigFile walks up from dir looking for .filmtop.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied).
func findConfigFile(dir string) ([]byte, string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, "", os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Input.Path != "" {
		dst.Input.Path = src.Input.Path
	}
	if src.Input.Lenient != nil {
		dst.Input.Lenient = src.Input.Lenient
	}

	if src.Rank.MinYear != 0 {
		dst.Rank.MinYear = src.Rank.MinYear
	}
	if src.Rank.Genre != "" {
		dst.Rank.Genre = src.Rank.Genre
	}
	if src.Rank.Limit != 0 {
		dst.Rank.Limit = src.Rank.Limit
	}
	if src.Rank.GenreMatch != "" {
		dst.Rank.GenreMatch = src.Rank.GenreMatch
	}
	if src.Rank.ScorePolicy != "" {
		dst.Rank.ScorePolicy = src.Rank.ScorePolicy
	}

	if src.Output.Path != "" {
		dst.Output.Path = src.Output.Path
	}
	if src.Output.Precision != nil {
		dst.Output.Precision = src.Output.Precision
	}
}

// Marshal renders cfg as YAML.
func Marshal(cfg *ProjectConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}
