package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// marker는 rc 파일에 hook이 이미 설치되었는지 판별하는 표식이다.
const marker = "goto-project shell integration"

// Name은 셸 바이너리 경로에서 셸 유형을 추출한다 (예: /usr/bin/zsh → zsh).
func Name(shellPath string) string {
	if shellPath == "" {
		return ""
	}
	return filepath.Base(shellPath)
}

// HookSnippet는 셸별 completion 로딩 스니펫을 반환한다.
func HookSnippet(shellType, binary string) string {
	switch shellType {
	case "zsh":
		return fmt.Sprintf(`# %s (zsh)
source <(%s completion zsh)
`, marker, binary)
	case "bash":
		return fmt.Sprintf(`# %s (bash)
source <(%s completion bash)
`, marker, binary)
	case "fish":
		return fmt.Sprintf(`# %s (fish)
%s completion fish | source
`, marker, binary)
	default:
		return ""
	}
}

// RCPath는 셸별 RC 파일 경로를 반환한다.
func RCPath(shellType, home string) string {
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "goto-project.fish")
	default:
		return ""
	}
}

// InstallHook은 RC 파일에 hook을 추가한다.
// 이미 설치되어 있으면 건너뛰고 false를 반환한다.
func InstallHook(shellType, binary, rcPath string) (bool, error) {
	snippet := HookSnippet(shellType, binary)
	if snippet == "" {
		return false, fmt.Errorf("shell.InstallHook: unsupported shell: %s", shellType)
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), marker) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0700); err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	return true, nil
}
