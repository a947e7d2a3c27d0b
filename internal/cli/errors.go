package cli

import (
	"github.com/hbjs97/goto-project/internal/config"
	"github.com/hbjs97/goto-project/internal/project"
	"github.com/hbjs97/goto-project/internal/registry"
	"github.com/hbjs97/goto-project/internal/session"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrConfigNotFound는 설정 파일이 없을 때의 sentinel error다.
	ErrConfigNotFound = config.ErrConfigNotFound
	// ErrParse는 설정 내용이 올바르지 않을 때의 sentinel error다.
	ErrParse = registry.ErrParse
	// ErrProjectNotFound는 알 수 없는 프로젝트 이름일 때의 sentinel error다.
	ErrProjectNotFound = registry.ErrProjectNotFound
	// ErrIO는 서브디렉토리 목록을 읽지 못했을 때의 sentinel error다.
	ErrIO = project.ErrIO
	// ErrShellLaunch는 세션 셸을 실행하지 못했을 때의 sentinel error다.
	ErrShellLaunch = session.ErrShellLaunch
)
