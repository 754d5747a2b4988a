// Package cmd is the top-level "driver" package for the gradc back end: it
// contains the functionality for parsing command-line arguments, managing
// build state, and running the phases of a build.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"gradc/cache"
	"gradc/common"
	"gradc/proj"
	"gradc/report"
)

// Execute is the main entry point for the `gradc` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("gradc", "gradc renders checked Grad programs as target source", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the build log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "render a project's checked tree", true)
	buildCmd.AddPrimaryArg("project-path", "the path to the project to build", true)
	buildCmd.AddFlag("no-cache", "nc", "skip the emit cache even if the manifest enables it")

	modCmd := cli.AddSubcommand("mod", "manage projects", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a project", true)
	modInitCmd.AddStringArg("name", "n", "the project name", true)
	modInitCmd.AddFlag("caching", "ch", "indicate whether emit caching should be enabled for this project")
	modInitCmd.AddPrimaryArg("project-path", "the path to the project directory", true)

	cleanCmd := cli.AddSubcommand("clean", "remove cached emit data", true)
	cleanCmd.AddPrimaryArg("project-path", "the path to the project to clean", true)

	cli.AddSubcommand("version", "print the gradc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("%s", err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, result.Arguments["loglevel"].(string))
	case "mod":
		execModCommand(subResult)
	case "clean":
		execCleanCommand(subResult)
	case "version":
		report.DisplayInfoMessage("Gradc Version", common.GradVersion)
	default:
		// olive only yields subcommands registered above, so reaching this
		// case means the dispatch table drifted from the registrations.
		report.ReportICE("unknown subcommand `%s`", subcmdName)
	}
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	report.InitReporter(report.LogLevelFromString(loglevel))

	rootPath, _ := result.PrimaryArg()
	rootAbsPath, err := filepath.Abs(rootPath)
	if err != nil {
		report.ReportFatal("error resolving project path: %s", err.Error())
	}

	c := NewCompiler(rootAbsPath, !result.HasFlag("no-cache"))
	if c.Build() && !report.AnyErrors() {
		report.ReportBuildFinished(c.manifest.OutputPath)
	} else {
		os.Exit(1)
	}
}

// execModCommand executes the `mod` subcommand and its subcommands.  It
// handles all errors related to this command.
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, ok := result.Subcommand()
	if !ok || subcmdName != "init" {
		report.ReportFatal("expected a `mod` subcommand")
	}

	path, _ := subResult.PrimaryArg()
	absPath, err := filepath.Abs(path)
	if err != nil {
		report.ReportFatal("error resolving project path: %s", err.Error())
	}

	name := subResult.Arguments["name"].(string)
	if err := proj.InitManifest(name, absPath, subResult.HasFlag("caching")); err != nil {
		report.ReportFatal("%s", err.Error())
	}

	report.DisplayInfoMessage("Mod Init", fmt.Sprintf("created project `%s` at `%s`", name, absPath))
}

// execCleanCommand executes the clean subcommand: it drops the project's emit
// cache database.
func execCleanCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()
	absPath, err := filepath.Abs(path)
	if err != nil {
		report.ReportFatal("error resolving project path: %s", err.Error())
	}

	m, err := proj.LoadManifest(absPath)
	if err != nil {
		report.ReportFatal("%s", err.Error())
	}

	if err := cache.Clean(m.CachePath()); err != nil {
		report.ReportFatal("error cleaning cache: %s", err.Error())
	}

	report.DisplayInfoMessage("Clean", fmt.Sprintf("removed cached emit data for `%s`", m.Name))
}
