// Package config locates and reads the project configuration file and
// discovers the environment values (home directory, shell) the rest of the
// tree receives as explicit inputs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/hbjs97/goto-project/internal/registry"
)

// ErrConfigNotFound는 설정 파일이 존재하지 않을 때의 sentinel error다.
var ErrConfigNotFound = errors.New("config not found")

const (
	// FileName은 홈 디렉토리 아래 기본 설정 파일 이름이다.
	FileName = ".goto-project.yaml"
	// PathEnvVar가 설정되어 있으면 기본 설정 경로 대신 사용한다.
	PathEnvVar = "GOTO_PROJECT_CONFIG"
	// FallbackShell은 $SHELL이 비어 있을 때 사용하는 셸이다.
	FallbackShell = "/bin/sh"
)

// Template은 setup 명령이 생성하는 기본 설정 내용이다.
const Template = `# goto-project configuration
#
# <name>:
#   path: <directory, ~ allowed>
#   instructions:            # optional, run in order inside <path>
#     - <shell statement>

awesome-project:
  path: ~/Devel/Projects/awesome-project/

yet_another_project:
  path: ~/Devel/Projects/yet_another_project
  instructions:
    - source ~/Devel/Envs/yet_another_project/bin/activate
    - export FLASK_APP=app.py
`

// Env는 프로세스 환경에서 한 번 읽어 주입하는 값이다.
type Env struct {
	Home  string
	Shell string
}

// DiscoverEnv는 홈 디렉토리와 사용자 셸을 조회한다.
// 홈 조회에 실패해도 Shell은 채워진 Env를 에러와 함께 반환한다.
func DiscoverEnv() (Env, error) {
	env := Env{Shell: os.Getenv("SHELL")}
	if env.Shell == "" {
		env.Shell = FallbackShell
	}

	home, err := homedir.Dir()
	if err != nil {
		return env, fmt.Errorf("config.DiscoverEnv: %w", err)
	}
	env.Home = home
	return env, nil
}

// DefaultPath는 기본 설정 파일 경로를 반환한다. GOTO_PROJECT_CONFIG가 우선한다.
// home을 모르면 현재 디렉토리로 떨어지지 않도록 빈 문자열을 반환한다.
func DefaultPath(home string) string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Load는 설정 파일을 읽어 Registry로 파싱한다.
// 확장자가 .toml이면 TOML, 그 외에는 YAML로 해석한다.
func Load(path string) (*registry.Registry, error) {
	if path == "" {
		return nil, fmt.Errorf("config.Load: %w: home directory unknown, set --config or $%s", ErrConfigNotFound, PathEnvVar)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config.Load: %q: %w", path, ErrConfigNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	var reg *registry.Registry
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		reg, err = registry.ParseTOML(data)
	} else {
		reg, err = registry.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("config.Load: %s: %w", path, err)
	}
	return reg, nil
}

// WriteTemplate은 Template을 path에 쓴다 (0600 권한). 이미 존재하면 에러를 반환한다.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config.WriteTemplate: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.WriteTemplate: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("config.WriteTemplate: %w", err)
	}
	return nil
}

// ValidateFilePermissions는 설정 파일이 소유자 외에 쓰기 가능하면 에러를 반환한다.
// 설정의 instructions는 그대로 셸에서 실행된다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0022 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s is writable by others (mode %o)", path, perm)
	}
	return nil
}
