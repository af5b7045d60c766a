package cli

import (
	"errors"
	"fmt"

	"github.com/right-cli/right/internal/branding"
	"github.com/right-cli/right/internal/config"
	"github.com/right-cli/right/internal/installer"
	"github.com/right-cli/right/internal/manifest"
	"github.com/right-cli/right/internal/platform"
	"github.com/right-cli/right/internal/probe"
	"github.com/right-cli/right/internal/scaffold"
	"github.com/right-cli/right/internal/ui"
	"github.com/right-cli/right/internal/vcs"
	"github.com/spf13/cobra"
)

var (
	initName       string
	initYes        bool
	initGit        bool
	initPoetry     bool
	initNoManifest bool
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project name (defaults to the current directory name)")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept the project name without prompting")
	initCmd.Flags().BoolVar(&initGit, "git", false, "Initialize a git repository with main and dev branches")
	initCmd.Flags().BoolVar(&initPoetry, "poetry", false, "Install the Poetry dependency manager")
	initCmd.Flags().BoolVar(&initNoManifest, "no-manifest", false, "Do not write "+manifest.FileName)
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a project layout in the current directory",
	Long: `Create docs, tests, assets, scripts and a package directory named after the
project, each with an empty marker file. Existing directories and files are
left untouched, so running init again is safe.

With --git, a repository is initialized on the main branch and a dev branch is
checked out. With --poetry, the Poetry installer is downloaded and run.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	p := deps.Printer
	env, err := deps.Env()
	if err != nil {
		return err
	}

	name, err := projectName(env)
	if errors.Is(err, errPromptCancelled) {
		p.Line("Initialization cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	deps.Logger.Debug("init", "name", name, "root", env.WorkDir, "git", initGit, "poetry", initPoetry)

	// Read before --git creates an empty local config that would shadow it.
	author, _, idErr := vcs.ResolveIdentityFrom(env.WorkDir, env.HomeDir, vcs.DefaultScopes)

	p.Line("Scaffolding %s in %s", name, env.WorkDir)
	marker := config.MarkerFile()
	if marker == "" {
		marker = scaffold.DefaultMarker
	}
	if _, err := scaffold.Scaffold(scaffold.Options{
		Root:    env.WorkDir,
		Name:    name,
		Marker:  marker,
		Printer: p,
	}); err != nil {
		return fmt.Errorf("scaffolding project: %w", err)
	}
	p.Line("Your project name is: `%s`", name)

	var failed []error
	gitReady := false
	if initGit {
		gitReady, err = initRepository(cmd, env)
		if err != nil {
			failed = append(failed, err)
		}
	}
	if initPoetry {
		if err := installPoetry(cmd); err != nil {
			failed = append(failed, err)
		}
	}

	if !initNoManifest {
		if idErr != nil {
			p.Status(ui.TagWarn, "Could not read git author: %v", idErr)
		}
		if err := writeManifest(env, name, marker, author, gitReady); err != nil {
			failed = append(failed, err)
		}
	}

	return errors.Join(failed...)
}

func projectName(env platform.Env) (string, error) {
	name := initName
	if name == "" {
		name = env.DefaultProjectName()
	}
	if initYes {
		return name, nil
	}
	return deps.Prompt(name)
}

func initRepository(cmd *cobra.Command, env platform.Env) (bool, error) {
	p := deps.Printer
	p.Line("Initializing git repository")

	ok, err := probe.ToolIsAvailable(cmd.Context(), deps.Runner, vcs.GitBinary)
	if err != nil {
		return false, err
	}
	if !ok {
		p.Status(ui.TagMiss, "%v", vcs.ErrGitNotFound)
		return false, nil
	}

	opts := vcs.RepoOptions{
		DefaultBranch: config.DefaultBranch(),
		WorkBranch:    config.WorkBranch(),
	}
	if err := vcs.InitRepository(cmd.Context(), deps.Runner, env.WorkDir, opts); err != nil {
		p.Status(ui.TagFail, "%v", err)
		return false, err
	}
	p.Status(ui.TagOK, "Repository initialized on %s, checked out %s", opts.DefaultBranch, opts.WorkBranch)
	return true, nil
}

func installPoetry(cmd *cobra.Command) error {
	p := deps.Printer
	p.Line("Installing %s", installer.DefaultTool)

	inst := installer.New(deps.Runner, p)
	if config.IsSet(config.KeyInterpreters) {
		inst.Interpreters = config.Interpreters()
	}
	if _, err := inst.Install(cmd.Context()); err != nil {
		p.Status(ui.TagFail, "%v", err)
		return err
	}
	return nil
}

func writeManifest(env platform.Env, name, marker string, author vcs.Identity, gitReady bool) error {
	p := deps.Printer

	m := manifest.NewProject(name, author, scaffold.Directories(name), marker)
	m.Tool = branding.CLIName()
	m.ToolVersion = buildVersion
	if gitReady {
		m.Git = &manifest.GitSettings{
			DefaultBranch: config.DefaultBranch(),
			WorkBranch:    config.WorkBranch(),
		}
	}

	written, err := manifest.Write(env.WorkDir, m)
	if err != nil {
		p.Status(ui.TagFail, "%v", err)
		return err
	}
	if written {
		p.Status(ui.TagOK, "Created %s", manifest.FileName)
	} else {
		p.Status(ui.TagSkip, "%s already exists", manifest.FileName)
	}
	return nil
}
