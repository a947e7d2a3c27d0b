package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hbjs97/goto-project/internal/cmdexec"
	"github.com/hbjs97/goto-project/internal/config"
	"github.com/hbjs97/goto-project/internal/picker"
)

// App은 CLI 명령이 공유하는 의존성이다. 테스트에서는 fake를 주입한다.
type App struct {
	Commander cmdexec.Commander
	Picker    picker.Picker
	Env       config.Env
	Streams   cmdexec.Streams
	Logger    *log.Logger
	// CfgPath가 비어 있으면 config.DefaultPath(Env.Home)를 사용한다.
	CfgPath string

	verbose bool
}

// NewApp은 실제 프로세스 환경으로 App을 생성한다.
func NewApp() *App {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "goto-project",
		Level:  log.WarnLevel,
	})

	env, err := config.DiscoverEnv()
	if err != nil {
		logger.Warn("홈 디렉토리 확인 실패, --config 또는 $"+config.PathEnvVar+" 필요", "err", err)
	}

	return &App{
		Commander: &cmdexec.RealCommander{},
		Picker:    &picker.HuhPicker{},
		Env:       env,
		Streams:   cmdexec.StdStreams(),
		Logger:    logger,
	}
}

// NewRootCmd는 goto-project CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	var opts gotoOptions
	if a.Logger == nil {
		a.Logger = log.New(io.Discard)
	}

	cmd := &cobra.Command{
		Use:   "goto-project [project] [subpath]",
		Short: "설정된 프로젝트 디렉토리로 이동해 셸을 연다",
		Long: `Opens an interactive shell inside a configured project directory,
running the project's setup instructions first.

Without arguments the configured project names are listed.
Projects are read from ~/.goto-project.yaml unless --config or
$GOTO_PROJECT_CONFIG points elsewhere.`,
		Args:              cobra.MaximumNArgs(2),
		SilenceUsage:      true,
		ValidArgsFunction: a.completeArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.Logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGoto(cmd, args, opts)
		},
	}

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = config.DefaultPath(a.Env.Home)
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", defaultCfg, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "상세 출력")

	cmd.Flags().BoolVarP(&opts.listSubdirs, "list-subdirs", "l", false, "셸을 여는 대신 서브디렉토리 목록 출력")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "프로젝트와 서브디렉토리를 대화형으로 선택")

	cmd.AddCommand(
		a.newDoctorCmd(),
		a.newSetupCmd(),
	)
	return cmd
}
