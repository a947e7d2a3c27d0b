package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hbjs97/goto-project/internal/cmdexec"
	"github.com/hbjs97/goto-project/internal/config"
	"github.com/hbjs97/goto-project/internal/registry"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckShell은 세션에 사용할 셸이 실행 가능한지 확인한다.
func CheckShell(ctx context.Context, cmd cmdexec.Commander, shell string) DiagResult {
	if shell == "" {
		return DiagResult{
			Name:    "shell",
			Status:  StatusFail,
			Message: "셸이 지정되지 않음",
			Fix:     "SHELL 환경변수를 설정하세요",
		}
	}
	if _, err := cmd.Run(ctx, shell, "-c", "exit 0"); err != nil {
		return DiagResult{
			Name:    "shell",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 실행 실패: %v", shell, err),
			Fix:     "SHELL 환경변수가 설치된 셸을 가리키는지 확인하세요",
		}
	}
	return DiagResult{
		Name:    "shell",
		Status:  StatusOK,
		Message: shell,
	}
}

// CheckConfig는 설정 파일을 로드하고 결과와 Registry를 반환한다.
// 로드에 실패하면 Registry는 nil이다.
func CheckConfig(path string) (DiagResult, *registry.Registry) {
	reg, err := config.Load(path)
	if err != nil {
		fix := "설정 파일 내용을 확인하세요"
		if errors.Is(err, config.ErrConfigNotFound) {
			fix = "goto-project setup 실행"
		}
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fix,
		}, nil
	}

	if err := config.ValidateFilePermissions(path); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", path),
		}, reg
	}

	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s (프로젝트 %d개)", path, reg.Len()),
	}, reg
}

// CheckProjects는 각 프로젝트 경로가 존재하는 디렉토리인지 확인한다.
func CheckProjects(reg *registry.Registry, home string) []DiagResult {
	var results []DiagResult
	for _, name := range reg.List() {
		p, _ := reg.Get(name) // List에서 나온 이름이므로 항상 존재
		results = append(results, checkPath("project_"+name, p.Path(), func() (string, error) {
			return p.ExpandPath(home)
		}))
	}
	return results
}

func checkPath(name, declared string, expand func() (string, error)) DiagResult {
	dir, err := expand()
	if err != nil {
		return DiagResult{
			Name:    name,
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     "HOME 환경변수를 확인하세요",
		}
	}

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return DiagResult{
			Name:    name,
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 없음", declared),
			Fix:     fmt.Sprintf("mkdir -p %s 또는 설정의 path 수정", dir),
		}
	case err != nil:
		return DiagResult{
			Name:    name,
			Status:  StatusFail,
			Message: err.Error(),
		}
	case !info.IsDir():
		return DiagResult{
			Name:    name,
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 는 디렉토리가 아님", declared),
			Fix:     "설정의 path 수정",
		}
	}
	return DiagResult{
		Name:    name,
		Status:  StatusOK,
		Message: declared,
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, env config.Env, cfgPath string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckShell(ctx, cmd, env.Shell))

	cfgResult, reg := CheckConfig(cfgPath)
	results = append(results, cfgResult)
	if reg != nil {
		results = append(results, CheckProjects(reg, env.Home)...)
	}
	return results
}

// HasFailure는 결과 중 FAIL이 하나라도 있으면 true를 반환한다.
func HasFailure(results []DiagResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
