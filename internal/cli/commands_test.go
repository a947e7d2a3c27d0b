package cli_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/hbjs97/goto-project/internal/cli"
	"github.com/hbjs97/goto-project/internal/cmdexec"
	"github.com/hbjs97/goto-project/internal/config"
	"github.com/hbjs97/goto-project/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShell = "/bin/zsh"

// fakePicker returns preset selections and records what it was offered.
type fakePicker struct {
	project string
	subdir  string
	err     error

	offeredProjects []string
	offeredSubdirs  []string
}

func (f *fakePicker) SelectProject(names []string) (string, error) {
	f.offeredProjects = names
	return f.project, f.err
}

func (f *fakePicker) SelectSubdir(_ string, subdirs []string) (string, error) {
	f.offeredSubdirs = subdirs
	return f.subdir, f.err
}

// newTestApp creates an App with a FakeCommander, a temp home and the given config path.
func newTestApp(t *testing.T, fc *testutil.FakeCommander, cfgPath string) *cli.App {
	t.Helper()
	return &cli.App{
		Commander: fc,
		Picker:    &fakePicker{},
		Env:       config.Env{Home: t.TempDir(), Shell: testShell},
		Streams:   cmdexec.Streams{In: bytes.NewReader(nil), Out: io.Discard, Err: io.Discard},
		Logger:    log.New(io.Discard),
		CfgPath:   cfgPath,
	}
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, app *cli.App, args ...string) (string, error) {
	t.Helper()
	cmd := app.NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// --- Listing ---

func TestRoot_NoArgsListsProjects(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.SampleConfig)
	fc := testutil.NewFakeCommander()

	out, err := execute(t, newTestApp(t, fc, cfgPath))

	require.NoError(t, err)
	assert.Equal(t, "awesome-project\nyet_another_project\n", out)
	assert.Empty(t, fc.Calls)
}

func TestRoot_NoArgsEmptyConfig(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, "")

	out, err := execute(t, newTestApp(t, testutil.NewFakeCommander(), cfgPath))

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoot_ConfigFlagOverridesDefault(t *testing.T) {
	t.Parallel()

	other := testutil.TempConfigFile(t, "other:\n  path: /other\n")
	app := newTestApp(t, testutil.NewFakeCommander(), "/nonexistent/.goto-project.yaml")

	out, err := execute(t, app, "--config", other)

	require.NoError(t, err)
	assert.Equal(t, "other\n", out)
}

func TestRoot_MissingConfig(t *testing.T) {
	t.Parallel()

	_, err := execute(t, newTestApp(t, testutil.NewFakeCommander(), "/tmp/lol/kek.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrConfigNotFound)
	assert.Contains(t, err.Error(), "/tmp/lol/kek.yaml")
	assert.Equal(t, cli.ExitConfigNotFound, cli.MapExitCode(err))
}

func TestRoot_UnknownHomeDoesNotReadWorkingDir(t *testing.T) {
	t.Setenv(config.PathEnvVar, "")
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("stray:\n  path: /stray\n"), 0600))

	app := newTestApp(t, testutil.NewFakeCommander(), "")
	app.Env.Home = ""
	out, err := execute(t, app)

	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrConfigNotFound)
	assert.Empty(t, out)
}

func TestRoot_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, "azaza")

	_, err := execute(t, newTestApp(t, testutil.NewFakeCommander(), cfgPath))

	assert.ErrorIs(t, err, cli.ErrParse)
	assert.Equal(t, cli.ExitParseError, cli.MapExitCode(err))
}

func TestRoot_TooManyArgs(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.SampleConfig)

	_, err := execute(t, newTestApp(t, testutil.NewFakeCommander(), cfgPath), "a", "b", "c")

	assert.Error(t, err)
}

// --- Opening a session ---

func TestRoot_OpensProject(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.SampleConfig)
	fc := testutil.NewFakeCommander()
	fc.RegisterExit(testShell+" -c", 0)

	_, err := execute(t, newTestApp(t, fc, cfgPath), "yet_another_project")

	require.NoError(t, err)
	require.Len(t, fc.InteractiveArgs, 1)
	assert.Equal(t, []string{
		testShell, "-c",
		"cd ~/Devel/Projects/yet_another_project" +
			" && source ~/Devel/Envs/yet_another_project/bin/activate" +
			" && export FLASK_APP=app.py" +
			" && export FLASK_DEBUG=1" +
			" && /bin/zsh && clear",
	}, fc.InteractiveArgs[0])
}

func TestRoot_OpensSubpath(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.SampleConfig)
	fc := testutil.NewFakeCommander()
	fc.RegisterExit(testShell+" -c", 0)

	_, err := execute(t, newTestApp(t, fc, cfgPath), "awesome-project", "backend")

	require.NoError(t, err)
	require.Len(t, fc.InteractiveArgs, 1)
	assert.Equal(t, "cd ~/Devel/Projects/awesome-project/backend && /bin/zsh && clear", fc.InteractiveArgs[0][2])
}

func TestRoot_ChildExitCodeIsNotAnError(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.SampleConfig)
	fc := testutil.NewFakeCommander()
	fc.RegisterExit(testShell+" -c", 1)

	_, err := execute(t, newTestApp(t, fc, cfgPath), "awesome-project")

	assert.NoError(t, err)
}

func TestRoot_ShellLaunchFailure(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.SampleConfig)
	fc := testutil.NewFakeCommander()
	fc.Register(testShell, "", fmt.Errorf("fork/exec %s: no such file or directory", testShell))

	_, err := execute(t, newTestApp(t, fc, cfgPath), "awesome-project")

	assert.ErrorIs(t, err, cli.ErrShellLaunch)
	assert.Equal(t, cli.ExitShellLaunch, cli.MapExitCode(err))
}

func TestRoot_UnknownProject(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.SampleConfig)
	fc := testutil.NewFakeCommander()

	_, err := execute(t, newTestApp(t, fc, cfgPath), "nonexistent")

	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrProjectNotFound)
	assert.Contains(t, err.Error(), "nonexistent")
	assert.Equal(t, cli.ExitProjectNotFound, cli.MapExitCode(err))
	assert.Empty(t, fc.InteractiveArgs)
}

// --- Listing subdirectories ---

func TestRoot_ListSubdirs(t *testing.T) {
	t.Parallel()

	dir := testutil.TempProjectDir(t, []string{"sub2", "sub0", "sub1"}, []string{"README.md"})
	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("proj", dir))
	fc := testutil.NewFakeCommander()

	out, err := execute(t, newTestApp(t, fc, cfgPath), "proj", "--list-subdirs")

	require.NoError(t, err)
	assert.Equal(t, "sub0\nsub1\nsub2\n", out)
	assert.Empty(t, fc.InteractiveArgs)
}

func TestRoot_ListSubdirsOfSubpath(t *testing.T) {
	t.Parallel()

	dir := testutil.TempProjectDir(t, []string{"services/api", "services/web", "docs"}, nil)
	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("proj", dir))

	out, err := execute(t, newTestApp(t, testutil.NewFakeCommander(), cfgPath), "-l", "proj", "services")

	require.NoError(t, err)
	assert.Equal(t, "api\nweb\n", out)
}

func TestRoot_ListSubdirsExpandsHome(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("proj", "~/code"))
	app := newTestApp(t, testutil.NewFakeCommander(), cfgPath)
	require.NoError(t, os.MkdirAll(filepath.Join(app.Env.Home, "code", "goto"), 0700))

	out, err := execute(t, app, "-l", "proj")

	require.NoError(t, err)
	assert.Equal(t, "goto\n", out)
}

func TestRoot_ListSubdirsMissingPath(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "gone")
	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("proj", missing))

	_, err := execute(t, newTestApp(t, testutil.NewFakeCommander(), cfgPath), "-l", "proj")

	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrIO)
	assert.Contains(t, err.Error(), missing)
	assert.Equal(t, cli.ExitIOError, cli.MapExitCode(err))
}

func TestRoot_ListSubdirsRequiresProject(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.SampleConfig)

	_, err := execute(t, newTestApp(t, testutil.NewFakeCommander(), cfgPath), "-l")

	assert.Error(t, err)
}

// --- Interactive ---

func TestRoot_InteractivePicksProjectAndSubdir(t *testing.T) {
	t.Parallel()

	dir := testutil.TempProjectDir(t, []string{"web", "api"}, nil)
	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("proj", dir, "make deps"))
	fc := testutil.NewFakeCommander()
	fc.RegisterExit(testShell+" -c", 0)
	app := newTestApp(t, fc, cfgPath)
	fp := &fakePicker{project: "proj", subdir: "api"}
	app.Picker = fp

	_, err := execute(t, app, "-i")

	require.NoError(t, err)
	assert.Equal(t, []string{"proj"}, fp.offeredProjects)
	assert.Equal(t, []string{"api", "web"}, fp.offeredSubdirs)
	require.Len(t, fc.InteractiveArgs, 1)
	assert.Equal(t, "cd "+filepath.Join(dir, "api")+" && make deps && /bin/zsh && clear", fc.InteractiveArgs[0][2])
}

func TestRoot_InteractiveStaysInRoot(t *testing.T) {
	t.Parallel()

	dir := testutil.TempProjectDir(t, []string{"web"}, nil)
	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("proj", dir))
	fc := testutil.NewFakeCommander()
	fc.RegisterExit(testShell+" -c", 0)
	app := newTestApp(t, fc, cfgPath)
	fp := &fakePicker{subdir: ""}
	app.Picker = fp

	_, err := execute(t, app, "-i", "proj")

	require.NoError(t, err)
	assert.Nil(t, fp.offeredProjects)
	assert.Equal(t, "cd "+dir+" && /bin/zsh && clear", fc.InteractiveArgs[0][2])
}

func TestRoot_InteractiveAborted(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.SampleConfig)
	fc := testutil.NewFakeCommander()
	app := newTestApp(t, fc, cfgPath)
	app.Picker = &fakePicker{err: fmt.Errorf("user aborted")}

	_, err := execute(t, app, "-i")

	require.Error(t, err)
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
	assert.Empty(t, fc.InteractiveArgs)
}

// --- Completion ---

func TestRoot_CompletesProjectNames(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.SampleConfig)

	out, err := execute(t, newTestApp(t, testutil.NewFakeCommander(), cfgPath), "__complete", "")

	require.NoError(t, err)
	assert.Contains(t, out, "awesome-project\n")
	assert.Contains(t, out, "yet_another_project\n")
}

func TestRoot_CompletesSubdirs(t *testing.T) {
	t.Parallel()

	dir := testutil.TempProjectDir(t, []string{"api", "web"}, []string{"Makefile"})
	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("proj", dir))

	out, err := execute(t, newTestApp(t, testutil.NewFakeCommander(), cfgPath), "__complete", "proj", "")

	require.NoError(t, err)
	assert.Contains(t, out, "api\n")
	assert.Contains(t, out, "web\n")
	assert.NotContains(t, out, "Makefile")
}

// --- Doctor ---

func TestDoctorCmd_AllOK(t *testing.T) {
	t.Parallel()

	dir := testutil.TempProjectDir(t, nil, nil)
	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("proj", dir))
	fc := testutil.NewFakeCommander()
	fc.Register(testShell+" -c exit 0", "", nil)

	out, err := execute(t, newTestApp(t, fc, cfgPath), "doctor")

	require.NoError(t, err)
	assert.Contains(t, out, "[OK] shell")
	assert.Contains(t, out, "[OK] config")
	assert.Contains(t, out, "[OK] project_proj")
}

func TestDoctorCmd_ReportsFailures(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("proj", "/definitely/not/here"))
	fc := testutil.NewFakeCommander()
	fc.Register(testShell, "", fmt.Errorf("not found"))

	out, err := execute(t, newTestApp(t, fc, cfgPath), "doctor")

	assert.Error(t, err)
	assert.Contains(t, out, "[FAIL] shell")
	assert.Contains(t, out, "[FAIL] project_proj")
}

// --- Setup ---

func TestSetupCmd_WritesTemplate(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), config.FileName)
	app := newTestApp(t, testutil.NewFakeCommander(), cfgPath)

	out, err := execute(t, app, "setup")

	require.NoError(t, err)
	assert.Contains(t, out, cfgPath)
	assert.FileExists(t, cfgPath)

	listed, err := execute(t, app)
	require.NoError(t, err)
	assert.Equal(t, "awesome-project\nyet_another_project\n", listed)
}

func TestSetupCmd_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("mine", "/mine"))

	_, err := execute(t, newTestApp(t, testutil.NewFakeCommander(), cfgPath), "setup")

	assert.Error(t, err)
	data, rerr := os.ReadFile(cfgPath)
	require.NoError(t, rerr)
	assert.Equal(t, "mine:\n  path: /mine\n", string(data))
}

func TestSetupCmd_ShellHook(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.TempConfigFile(t, testutil.ProjectConfig("mine", "/mine"))
	app := newTestApp(t, testutil.NewFakeCommander(), cfgPath)

	out, err := execute(t, app, "setup", "--shell-hook")
	require.NoError(t, err)
	assert.Contains(t, out, "이미 존재")

	rc, err := os.ReadFile(filepath.Join(app.Env.Home, ".zshrc"))
	require.NoError(t, err)
	assert.Contains(t, string(rc), "source <(goto-project completion zsh)")

	// second run is a no-op
	_, err = execute(t, app, "setup", "--shell-hook")
	require.NoError(t, err)
	again, err := os.ReadFile(filepath.Join(app.Env.Home, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, string(rc), string(again))
}

func TestSetupCmd_ShellHookUnsupportedShell(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), config.FileName)
	app := newTestApp(t, testutil.NewFakeCommander(), cfgPath)
	app.Env.Shell = "/bin/tcsh"

	_, err := execute(t, app, "setup", "--shell-hook")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tcsh")
	assert.NoFileExists(t, cfgPath)
}

func TestSetupCmd_UnknownHome(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testutil.NewFakeCommander(), "")
	app.Env.Home = ""

	_, err := execute(t, app, "setup", "--config=")

	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrConfigNotFound)
}
