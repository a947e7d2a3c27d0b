// Package picker provides interactive selection of a project and one of its
// subdirectories.
package picker

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// RootLabel은 서브디렉토리 선택에서 "프로젝트 루트에 머무름" 항목의 표시 이름이다.
const RootLabel = ". (project root)"

// Picker는 대화형 선택 UI를 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 fake를 사용한다.
type Picker interface {
	// SelectProject는 프로젝트 이름 목록에서 하나를 선택한다.
	SelectProject(names []string) (string, error)

	// SelectSubdir은 서브디렉토리를 선택한다. 빈 문자열은 프로젝트 루트를 뜻한다.
	SelectSubdir(projectName string, subdirs []string) (string, error)
}

// HuhPicker는 charmbracelet/huh 기반의 Picker 구현이다.
type HuhPicker struct{}

var _ Picker = (*HuhPicker)(nil)

// SelectProject는 프로젝트 선택 UI를 표시한다.
func (h *HuhPicker) SelectProject(names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("picker.SelectProject: no projects configured")
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("프로젝트를 선택하세요").
			Options(huh.NewOptions(names...)...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("picker.SelectProject: %w", err)
	}
	return selected, nil
}

// SelectSubdir은 서브디렉토리 선택 UI를 표시한다. 서브디렉토리가 없으면 묻지 않는다.
func (h *HuhPicker) SelectSubdir(projectName string, subdirs []string) (string, error) {
	if len(subdirs) == 0 {
		return "", nil
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(fmt.Sprintf("%s: 디렉토리를 선택하세요", projectName)).
			Options(SubdirOptions(subdirs)...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("picker.SelectSubdir: %w", err)
	}
	return selected, nil
}

// SubdirOptions는 루트 항목을 맨 앞에 둔 선택지 목록을 만든다.
func SubdirOptions(subdirs []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(subdirs)+1)
	opts = append(opts, huh.NewOption(RootLabel, ""))
	for _, s := range subdirs {
		opts = append(opts, huh.NewOption(s, s))
	}
	return opts
}
