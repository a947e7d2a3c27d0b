// Package project models one configured destination directory and
// composes the shell command that opens a session inside it.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrIO는 서브디렉토리 목록 조회 중 경로를 읽을 수 없을 때의 sentinel error다.
var ErrIO = errors.New("io error")

// ErrEmptyPath는 경로 없이 Project를 생성하려 할 때의 에러다.
var ErrEmptyPath = errors.New("project path is empty")

// commandSeparator는 명령 조각을 잇는 AND 연산자다. 앞 단계가 실패하면 뒤 단계는 실행되지 않는다.
const commandSeparator = " && "

// Project는 하나의 설정된 목적지 디렉토리와 순서가 있는 setup 명령 목록이다.
// 생성 후에는 변경되지 않는다.
type Project struct {
	path         string
	instructions []string
}

// New는 Project를 생성한다. instructions는 복사되어 보관된다.
func New(path string, instructions []string) (Project, error) {
	if path == "" {
		return Project{}, fmt.Errorf("project.New: %w", ErrEmptyPath)
	}
	return Project{path: path, instructions: slices.Clone(instructions)}, nil
}

// Path는 설정에 선언된 그대로의 경로를 반환한다 (~ 미확장).
func (p Project) Path() string {
	return p.path
}

// Instructions는 setup 명령 목록의 복사본을 반환한다. 비어 있으면 빈 슬라이스다.
func (p Project) Instructions() []string {
	if len(p.instructions) == 0 {
		return []string{}
	}
	return slices.Clone(p.instructions)
}

// ResolveSubdir는 path에 subdir을 붙인 새 Project를 반환한다.
// 파일시스템에 접근하지 않으며 원본은 변경되지 않는다.
func (p Project) ResolveSubdir(subdir string) Project {
	return Project{
		path:         joinPath(p.path, subdir),
		instructions: p.instructions,
	}
}

// joinPath는 ~ 로 시작하는 경로를 정리(Clean)하지 않고 이어 붙인다.
// Clean은 ~ 를 일반 세그먼트로 보고 ".." 로 지워버린다.
func joinPath(base, sub string) string {
	if !hasHomePrefix(base) {
		return filepath.Join(base, sub)
	}
	if sub == "" {
		return base
	}
	sep := string(filepath.Separator)
	return strings.TrimSuffix(base, sep) + sep + strings.TrimPrefix(sub, sep)
}

func hasHomePrefix(path string) bool {
	return path == "~" || strings.HasPrefix(path, "~/")
}

// ExpandPath는 선두의 ~ 를 home으로 치환한 경로를 반환한다.
// "~" 와 "~/..." 만 확장하며 "~user" 형태는 그대로 둔다.
func (p Project) ExpandPath(home string) (string, error) {
	if !hasHomePrefix(p.path) {
		return p.path, nil
	}
	if home == "" {
		return "", fmt.Errorf("project.ExpandPath: %s: home directory unknown: %w", p.path, ErrIO)
	}
	return filepath.Join(home, strings.TrimPrefix(p.path, "~")), nil
}

// ListSubdirs는 path 바로 아래의 디렉토리 이름을 사전순으로 반환한다.
// 일반 파일, 심볼릭 링크 등 디렉토리가 아닌 항목은 제외한다.
func (p Project) ListSubdirs(home string) ([]string, error) {
	dir, err := p.ExpandPath(home)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("project.ListSubdirs: %s: %w: %w", dir, ErrIO, err)
	}

	subdirs := []string{}
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, e.Name())
		}
	}
	slices.Sort(subdirs)
	return subdirs, nil
}

// ComposeCommand는 세션을 열 때 실행할 셸 명령을 만든다.
// 순서: cd <path>, instructions(선언 순), <shell>, clear. 모두 && 로 연결한다.
// ~ 확장은 실행하는 셸의 몫이므로 path는 그대로 쓴다.
func (p Project) ComposeCommand(shell string) string {
	parts := make([]string, 0, len(p.instructions)+3)
	parts = append(parts, "cd "+p.path)
	parts = append(parts, p.instructions...)
	parts = append(parts, shell, "clear")
	return strings.Join(parts, commandSeparator)
}
