package cmd

import (
	"io/ioutil"

	"gradc/cache"
	"gradc/codec"
	"gradc/emit"
	"gradc/proj"
	"gradc/report"
)

// Compiler represents the state of a single build: one project, one checked
// tree in, one target source file out.
type Compiler struct {
	// rootAbsPath is the absolute path to the project root.
	rootAbsPath string

	// useCache indicates whether the emit cache may be consulted.  The cache
	// is only used when the manifest also enables it.
	useCache bool

	// manifest is the loaded project manifest.
	manifest *proj.Manifest
}

// NewCompiler creates a new compiler for the project at the given root path.
func NewCompiler(rootAbsPath string, useCache bool) *Compiler {
	return &Compiler{rootAbsPath: rootAbsPath, useCache: useCache}
}

// Build runs all the phases of a build: manifest loading, input reading,
// cache lookup, decoding, emission, and output writing.  It reports all
// errors it encounters and returns whether the build succeeded.
func (c *Compiler) Build() bool {
	m, err := proj.LoadManifest(c.rootAbsPath)
	if err != nil {
		report.ReportStdError(err)
		return false
	}
	c.manifest = m

	input, err := ioutil.ReadFile(m.InputPath)
	if err != nil {
		report.ReportError("unable to read checked tree at `%s`: %s", m.InputPath, err.Error())
		return false
	}

	var ec *cache.Cache
	if c.useCache && m.ShouldCache {
		if ec, err = cache.Open(m.CachePath()); err != nil {
			// A broken cache never fails the build.
			report.ReportWarning("unable to open emit cache: %s", err.Error())
		} else {
			defer ec.Close()
		}
	}

	key := cache.KeyOf(input)
	if ec != nil {
		if text, ok := ec.Lookup(key); ok {
			report.DisplayDebugMessage("Cache", "emit cache hit")
			return c.writeOutput(text)
		}
	}

	prog, err := codec.DecodeProgram(input)
	if err != nil {
		report.ReportStdError(err)
		return false
	}

	text, err := emit.Program(prog)
	if err != nil {
		report.ReportStdError(err)
		return false
	}

	if ec != nil {
		if err := ec.Store(key, text); err != nil {
			report.ReportWarning("unable to update emit cache: %s", err.Error())
		}
	}

	return c.writeOutput(text)
}

// writeOutput writes the emitted target source to the manifest's output path.
func (c *Compiler) writeOutput(text string) bool {
	if err := ioutil.WriteFile(c.manifest.OutputPath, []byte(text), 0644); err != nil {
		report.ReportError("unable to write output to `%s`: %s", c.manifest.OutputPath, err.Error())
		return false
	}

	return true
}
