// Package session opens an interactive shell inside a project directory.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/hbjs97/goto-project/internal/cmdexec"
	"github.com/hbjs97/goto-project/internal/project"
)

// ErrShellLaunch는 자식 셸을 실행하지 못했을 때의 sentinel error다.
var ErrShellLaunch = errors.New("shell launch failed")

// Launcher는 조합된 명령을 하나의 셸 명령으로 실행한다.
type Launcher struct {
	cmd     cmdexec.Commander
	shell   string
	streams cmdexec.Streams
	logger  *log.Logger
}

// New는 Launcher를 생성한다. shell은 명령을 실행하고 세션에서 띄울 사용자 셸이다.
func New(cmd cmdexec.Commander, shell string, streams cmdexec.Streams, logger *log.Logger) *Launcher {
	return &Launcher{cmd: cmd, shell: shell, streams: streams, logger: logger}
}

// Open은 p.ComposeCommand를 `<shell> -c` 로 실행하고 자식이 종료될 때까지 블록한다.
// 자식의 종료 코드는 실패로 취급하지 않는다.
func (l *Launcher) Open(ctx context.Context, p project.Project) error {
	if l.shell == "" {
		return fmt.Errorf("session.Open: %w: no shell configured", ErrShellLaunch)
	}

	command := p.ComposeCommand(l.shell)
	l.logger.Debug("opening session", "path", p.Path(), "shell", l.shell, "command", command)

	code, err := l.cmd.Interactive(ctx, l.streams, l.shell, "-c", command)
	if err != nil {
		return fmt.Errorf("session.Open: %s: %w: %w", l.shell, ErrShellLaunch, err)
	}

	l.logger.Debug("session closed", "path", p.Path(), "exit_code", code)
	return nil
}
