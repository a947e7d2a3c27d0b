// Package doctor diagnoses the environment goto-project depends on: the
// user's shell, the configuration file and every configured project path.
package doctor
