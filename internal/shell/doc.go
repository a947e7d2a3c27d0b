// Package shell provides shell integration for goto-project.
// It generates rc-file snippets that load cobra's completion script
// (process substitution for Zsh and Bash, a pipe into source for Fish)
// and installs them idempotently.
package shell
