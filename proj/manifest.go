// Package proj loads and validates Grad project manifests.  A project is a
// directory containing a `grad.toml` file describing the checked-tree input
// handed over by the front end and where emitted output should go.
package proj

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"unicode"

	"github.com/pelletier/go-toml"

	"gradc/common"
	"gradc/report"
)

// tomlManifest represents a Grad project manifest as it is encoded in TOML.
type tomlManifest struct {
	Name        string `toml:"name"`
	GradVersion string `toml:"grad-version"`
	Input       string `toml:"input"`
	Output      string `toml:"output"`
	ShouldCache bool   `toml:"caching"`
}

// Manifest is a validated project manifest with all paths made absolute.
type Manifest struct {
	// The project name.  Always a valid identifier.
	Name string

	// The absolute path to the project directory.
	AbsPath string

	// The absolute path to the checked-tree input file.
	InputPath string

	// The absolute path the emitted target source is written to.
	OutputPath string

	// Whether emit caching is enabled for this project.
	ShouldCache bool
}

// CachePath returns the path to the project's emit cache database.
func (m *Manifest) CachePath() string {
	return filepath.Join(m.AbsPath, common.CacheDirName, common.CacheFileName)
}

// LoadManifest loads and validates the manifest of the project rooted at the
// given absolute path.
func LoadManifest(abspath string) (*Manifest, error) {
	buff, err := ioutil.ReadFile(filepath.Join(abspath, common.ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to read manifest at `%s`: %s", abspath, err.Error())
	}

	tm := &tomlManifest{}
	if err := toml.Unmarshal(buff, tm); err != nil {
		return nil, fmt.Errorf("error parsing manifest at `%s`: %s", abspath, err.Error())
	}

	if err := validateManifest(tm); err != nil {
		return nil, err
	}

	if tm.GradVersion != common.GradVersion {
		report.ReportWarning("project `%s` targets grad v%s but this is gradc v%s",
			tm.Name, tm.GradVersion, common.GradVersion)
	}

	input := tm.Input
	if input == "" {
		input = tm.Name + common.SASTFileExt
	}

	output := tm.Output
	if output == "" {
		output = tm.Name + common.TargetFileExt
	}

	return &Manifest{
		Name:        tm.Name,
		AbsPath:     abspath,
		InputPath:   absolutize(abspath, input),
		OutputPath:  absolutize(abspath, output),
		ShouldCache: tm.ShouldCache,
	}, nil
}

// InitManifest creates a fresh manifest for a new project at the given path.
func InitManifest(name, path string, enableCaching bool) error {
	manifestPath := filepath.Join(path, common.ManifestFileName)

	// Never clobber an existing project.
	if _, err := os.Stat(manifestPath); err == nil {
		return errors.New("manifest already exists")
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("manifest error: %s", err.Error())
	}

	if !IsValidIdentifier(name) {
		return errors.New("project name must be a valid identifier")
	}

	tm := &tomlManifest{
		Name:        name,
		GradVersion: common.GradVersion,
		Input:       name + common.SASTFileExt,
		Output:      name + common.TargetFileExt,
		ShouldCache: enableCaching,
	}

	f, err := os.Create(manifestPath)
	if err != nil {
		return fmt.Errorf("error creating manifest: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tm); err != nil {
		return fmt.Errorf("error encoding TOML: %s", err.Error())
	}

	return nil
}

// validateManifest checks that the manifest's contents are usable.
func validateManifest(tm *tomlManifest) error {
	if tm.Name == "" {
		return errors.New("missing project name")
	}

	if !IsValidIdentifier(tm.Name) {
		return errors.New("project name must be a valid identifier")
	}

	return nil
}

// IsValidIdentifier returns whether the given string is a usable project or
// symbol name: a letter or underscore followed by letters, digits, and
// underscores.
func IsValidIdentifier(name string) bool {
	for i, c := range name {
		if c == '_' || unicode.IsLetter(c) {
			continue
		}

		if i > 0 && unicode.IsDigit(c) {
			continue
		}

		return false
	}

	return name != ""
}

// absolutize resolves a manifest-relative path against the project root.
func absolutize(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(root, path)
}
