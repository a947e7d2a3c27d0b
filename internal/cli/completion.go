package cli

import (
	"github.com/spf13/cobra"

	"github.com/hbjs97/goto-project/internal/config"
)

// completeArgs는 첫 번째 인자에 프로젝트 이름, 두 번째 인자에 서브디렉토리를 제안한다.
func (a *App) completeArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 1 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	reg, err := config.Load(a.CfgPath)
	if err != nil {
		a.Logger.Debug("completion: config load failed", "err", err)
		return nil, cobra.ShellCompDirectiveError
	}
	if len(args) == 0 {
		return reg.List(), cobra.ShellCompDirectiveNoFileComp
	}

	p, err := reg.Get(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	subdirs, err := p.ListSubdirs(a.Env.Home)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return subdirs, cobra.ShellCompDirectiveNoFileComp
}
