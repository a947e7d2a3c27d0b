package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hbjs97/goto-project/internal/config"
	"github.com/hbjs97/goto-project/internal/project"
	"github.com/hbjs97/goto-project/internal/registry"
	"github.com/hbjs97/goto-project/internal/session"
)

type gotoOptions struct {
	listSubdirs bool
	interactive bool
}

func (a *App) runGoto(cmd *cobra.Command, args []string, opts gotoOptions) error {
	if len(args) == 0 && !opts.interactive {
		if opts.listSubdirs {
			return fmt.Errorf("cli.goto: --list-subdirs requires a project")
		}
		reg, err := a.loadRegistry()
		if err != nil {
			return err
		}
		printLines(cmd.OutOrStdout(), reg.List())
		return nil
	}

	reg, err := a.loadRegistry()
	if err != nil {
		return err
	}

	name, err := a.projectName(reg, args)
	if err != nil {
		return err
	}
	p, err := reg.Get(name)
	if err != nil {
		return err
	}
	if len(args) == 2 {
		p = p.ResolveSubdir(args[1])
	}

	if opts.listSubdirs {
		subdirs, err := p.ListSubdirs(a.Env.Home)
		if err != nil {
			return err
		}
		printLines(cmd.OutOrStdout(), subdirs)
		return nil
	}

	if opts.interactive && len(args) < 2 {
		if p, err = a.pickSubdir(name, p); err != nil {
			return err
		}
	}

	a.Logger.Debug("resolved project", "name", name, "path", p.Path())
	return session.New(a.Commander, a.Env.Shell, a.Streams, a.Logger).Open(cmd.Context(), p)
}

func (a *App) loadRegistry() (*registry.Registry, error) {
	a.Logger.Debug("loading config", "path", a.CfgPath)
	return config.Load(a.CfgPath)
}

func (a *App) projectName(reg *registry.Registry, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	name, err := a.Picker.SelectProject(reg.List())
	if err != nil {
		return "", fmt.Errorf("cli.goto: %w", err)
	}
	return name, nil
}

func (a *App) pickSubdir(name string, p project.Project) (project.Project, error) {
	subdirs, err := p.ListSubdirs(a.Env.Home)
	if err != nil {
		return project.Project{}, err
	}
	sub, err := a.Picker.SelectSubdir(name, subdirs)
	if err != nil {
		return project.Project{}, fmt.Errorf("cli.goto: %w", err)
	}
	if sub == "" {
		return p, nil
	}
	return p.ResolveSubdir(sub), nil
}

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
