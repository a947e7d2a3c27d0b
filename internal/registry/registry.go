// Package registry parses the named set of projects from configuration text
// and answers lookups against it.
package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hbjs97/goto-project/internal/project"
)

// ErrParse는 설정 텍스트가 올바른 구조가 아닐 때의 sentinel error다.
var ErrParse = errors.New("invalid project config")

// ErrProjectNotFound는 이름으로 프로젝트를 찾지 못했을 때의 sentinel error다.
var ErrProjectNotFound = errors.New("project not found")

// entry는 설정 파일의 프로젝트 항목 하나다.
type entry struct {
	Path         string   `yaml:"path" toml:"path"`
	Instructions []string `yaml:"instructions" toml:"instructions"`
}

// Registry는 프로젝트 이름 → Project 매핑이다.
type Registry struct {
	projects map[string]project.Project
}

// Parse는 YAML 텍스트를 Registry로 변환한다.
// 빈 문서는 빈 Registry가 된다. 최상위가 매핑이 아니거나 path가 없으면 ErrParse를 감싼 에러를 반환한다.
func Parse(raw []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var entries map[string]*entry
	if err := dec.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("registry.Parse: %w: %w", ErrParse, err)
	}
	return build("registry.Parse", entries)
}

// ParseTOML은 TOML 텍스트를 Registry로 변환한다. 각 프로젝트는 [name] 테이블이다.
func ParseTOML(raw []byte) (*Registry, error) {
	var entries map[string]*entry
	md, err := toml.Decode(string(raw), &entries)
	if err != nil {
		return nil, fmt.Errorf("registry.ParseTOML: %w: %w", ErrParse, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("registry.ParseTOML: %w: unknown keys %s", ErrParse, strings.Join(keys, ", "))
	}
	return build("registry.ParseTOML", entries)
}

func build(op string, entries map[string]*entry) (*Registry, error) {
	r := &Registry{projects: make(map[string]project.Project, len(entries))}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		e := entries[name]
		if e == nil || e.Path == "" {
			return nil, fmt.Errorf("%s: %w: %s.path is required", op, ErrParse, name)
		}
		p, err := project.New(e.Path, e.Instructions)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %s: %w", op, ErrParse, name, err)
		}
		r.projects[name] = p
	}
	return r, nil
}

// List는 등록된 모든 프로젝트 이름을 사전순으로 반환한다.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.projects))
	for name := range r.projects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get은 이름이 정확히 일치하는 프로젝트를 반환한다 (대소문자 구분).
func (r *Registry) Get(name string) (project.Project, error) {
	p, ok := r.projects[name]
	if !ok {
		return project.Project{}, fmt.Errorf("registry.Get: %q: %w", name, ErrProjectNotFound)
	}
	return p, nil
}

// Len은 등록된 프로젝트 수를 반환한다.
func (r *Registry) Len() int {
	return len(r.projects)
}
