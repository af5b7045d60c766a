package cli

import (
	"context"
	"errors"
	"os"
	"runtime"

	"github.com/right-cli/right/internal/branding"
	"github.com/right-cli/right/internal/config"
	"github.com/right-cli/right/internal/installer"
	"github.com/right-cli/right/internal/manifest"
	"github.com/right-cli/right/internal/platform"
	"github.com/right-cli/right/internal/probe"
	"github.com/right-cli/right/internal/process"
	"github.com/right-cli/right/internal/ui"
	"github.com/right-cli/right/internal/vcs"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools right depends on",
	Long: `Report the operating system, whether git, Python and Poetry can be run, the
git author, and whether right.yaml in the current directory is valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := deps.Env()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		deps.Printer.Line("System:")
		deps.Printer.Status(ui.TagInfo, "Operating system: %s (%s/%s)", probe.DetectOS(probe.PlatformName(env.GOOS)), env.GOOS, runtime.GOARCH)

		deps.Printer.Line("Tools:")
		checkGit(ctx)
		checkPython(ctx, env)
		checkPoetry(ctx)

		deps.Printer.Line("Project:")
		checkAuthor(env)
		checkManifest(env)
		return nil
	},
}

func checkGit(ctx context.Context) {
	p := deps.Printer
	check, err := probe.CheckMinimum(ctx, deps.Runner, vcs.GitBinary, config.GitMinVersion())
	if err != nil {
		p.Status(ui.TagFail, "git: %v", err)
		return
	}
	switch {
	case !check.Found:
		p.Status(ui.TagMiss, "git not found. Install it from %s", branding.GitDocsURL())
	case check.Version == "":
		p.Status(ui.TagWarn, "git found but its version could not be read")
	case !check.OK:
		p.Status(ui.TagWarn, "git %s is older than %s; \"git init -b\" will fail", check.Version, check.Minimum)
	default:
		p.Status(ui.TagOK, "git %s", check.Version)
	}
}

func checkPython(ctx context.Context, env platform.Env) {
	p := deps.Printer
	interpreters := installer.DefaultInterpreters(env.GOOS)
	if config.IsSet(config.KeyInterpreters) {
		interpreters = config.Interpreters()
	}

	for _, name := range interpreters {
		v, err := probe.ToolVersion(ctx, deps.Runner, name)
		switch {
		case errors.Is(err, process.ErrNotFound):
			continue
		case errors.Is(err, probe.ErrNoVersion):
			p.Status(ui.TagOK, "%s", name)
		case err != nil:
			p.Status(ui.TagFail, "%s: %v", name, err)
		default:
			p.Status(ui.TagOK, "%s %s", name, v)
		}
		return
	}
	p.Status(ui.TagMiss, "Python not found (tried %v). Install it from %s", interpreters, branding.PythonDocsURL())
}

func checkPoetry(ctx context.Context) {
	p := deps.Printer
	v, err := probe.ToolVersion(ctx, deps.Runner, installer.DefaultTool)
	switch {
	case errors.Is(err, process.ErrNotFound):
		p.Status(ui.TagMiss, "%s not found. Run \"%s init --poetry\" or see %s", installer.DefaultTool, branding.CLIName(), branding.PoetryDocsURL())
	case errors.Is(err, probe.ErrNoVersion):
		p.Status(ui.TagOK, "%s", installer.DefaultTool)
	case err != nil:
		p.Status(ui.TagFail, "%s: %v", installer.DefaultTool, err)
	default:
		p.Status(ui.TagOK, "%s %s", installer.DefaultTool, v)
	}
}

func checkAuthor(env platform.Env) {
	p := deps.Printer
	id, scope, err := vcs.ResolveIdentityFrom(env.WorkDir, env.HomeDir, vcs.DefaultScopes)
	switch {
	case err != nil:
		p.Status(ui.TagFail, "Reading git author: %v", err)
	case id.IsZero():
		p.Status(ui.TagWarn, "No git author configured (user.name and user.email)")
	default:
		p.Status(ui.TagOK, "Author %s from %s config", id, scope)
	}
}

func checkManifest(env platform.Env) {
	p := deps.Printer
	path := manifest.Path(env.WorkDir)
	if _, err := os.Stat(path); err != nil {
		p.Status(ui.TagInfo, "No %s in %s", manifest.FileName, env.WorkDir)
		return
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		p.Status(ui.TagFail, "%v", err)
		return
	}
	if result.Valid {
		p.Status(ui.TagOK, "%s is valid", manifest.FileName)
		return
	}
	p.Status(ui.TagFail, "%s has %d validation issue(s):", manifest.FileName, len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			p.Line("    - %s: %s", issue.Path, issue.Message)
		} else {
			p.Line("    - %s", issue.Message)
		}
	}
}
