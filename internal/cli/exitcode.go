package cli

import (
	"errors"
)

// ExitCode는 goto-project의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitConfigNotFound는 설정 파일 없음이다.
	ExitConfigNotFound ExitCode = 2
	// ExitParseError는 설정 파싱 실패다.
	ExitParseError ExitCode = 3
	// ExitProjectNotFound는 알 수 없는 프로젝트다.
	ExitProjectNotFound ExitCode = 4
	// ExitIOError는 디렉토리 조회 실패다.
	ExitIOError ExitCode = 5
	// ExitShellLaunch는 셸 실행 실패다.
	ExitShellLaunch ExitCode = 6
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrConfigNotFound):
		return ExitConfigNotFound
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrProjectNotFound):
		return ExitProjectNotFound
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrShellLaunch):
		return ExitShellLaunch
	default:
		return ExitGeneral
	}
}
