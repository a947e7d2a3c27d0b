package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbjs97/goto-project/internal/config"
	"github.com/hbjs97/goto-project/internal/shell"
)

func (a *App) newSetupCmd() *cobra.Command {
	var withHook bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "설정 파일 템플릿을 생성한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, withHook)
		},
	}
	cmd.Flags().BoolVar(&withHook, "shell-hook", false, "셸 RC 파일에 completion hook 설치")
	return cmd
}

// runSetup는 설정 파일 템플릿을 생성하고, 요청 시 completion hook을 설치한다.
func (a *App) runSetup(cmd *cobra.Command, withHook bool) error {
	out := cmd.OutOrStdout()
	if a.CfgPath == "" {
		return fmt.Errorf("cli.setup: %w: home directory unknown, pass --config", config.ErrConfigNotFound)
	}

	// hook을 설치할 수 없으면 템플릿도 쓰지 않는다.
	var shellType, rcPath string
	if withHook {
		shellType = shell.Name(a.Env.Shell)
		rcPath = shell.RCPath(shellType, a.Env.Home)
		if rcPath == "" {
			return fmt.Errorf("cli.setup: unsupported shell: %q", shellType)
		}
	}

	_, statErr := os.Stat(a.CfgPath)
	switch {
	case statErr == nil && withHook:
		fmt.Fprintf(out, "설정 파일이 이미 존재합니다: %s\n", a.CfgPath)
	default:
		if err := config.WriteTemplate(a.CfgPath); err != nil {
			return fmt.Errorf("cli.setup: %w", err)
		}
		fmt.Fprintf(out, "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
		fmt.Fprintln(out, "프로젝트를 수정한 후 goto-project doctor로 환경을 확인하세요.")
	}

	if !withHook {
		return nil
	}

	installed, err := shell.InstallHook(shellType, cmd.Root().Name(), rcPath)
	if err != nil {
		return fmt.Errorf("cli.setup: %w", err)
	}
	if installed {
		fmt.Fprintf(out, "shell hook 설치: %s\n", rcPath)
	} else {
		fmt.Fprintf(out, "shell hook이 이미 설치되어 있습니다: %s\n", rcPath)
	}
	return nil
}
