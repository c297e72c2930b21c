// Package fnm is the operation surface over the fnm executable. Every
// operation locates fnm, builds its environment, runs it once and turns
// what it printed into a result or an error.
package fnm

import (
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/config"
	"github.com/fnmdesk/fnmdesk/src/internal/constants"
	"github.com/fnmdesk/fnmdesk/src/internal/environ"
	"github.com/fnmdesk/fnmdesk/src/internal/locate"
	"github.com/fnmdesk/fnmdesk/src/internal/parser"
	"github.com/fnmdesk/fnmdesk/src/internal/platform"
	"github.com/fnmdesk/fnmdesk/src/internal/process"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
)

// Resolver finds the fnm executable
type Resolver interface {
	Resolve() (string, error)
	Candidates() []string
	Check(path string) (exists bool, isFile bool)
}

// Client runs fnm commands. It holds no mutable state and is safe for
// concurrent use; each call spawns at most one fnm process.
type Client struct {
	profile  platform.Profile
	env      config.Snapshot
	override string
	resolver Resolver
	builder  *environ.Builder
	runner   process.Runner
	start    process.StartFunc
}

// Option configures a Client
type Option func(*Client)

// WithOverride pins the fnm executable path
func WithOverride(path string) Option {
	return func(c *Client) {
		c.override = path
	}
}

// WithResolver replaces executable discovery
func WithResolver(r Resolver) Option {
	return func(c *Client) {
		c.resolver = r
	}
}

// WithRunner replaces the process runner
func WithRunner(r process.Runner) Option {
	return func(c *Client) {
		c.runner = r
	}
}

// WithStarter replaces how the file browser is launched
func WithStarter(start process.StartFunc) Option {
	return func(c *Client) {
		c.start = start
	}
}

// New creates a Client for a platform and environment snapshot
func New(profile platform.Profile, env config.Snapshot, opts ...Option) *Client {
	c := &Client{
		profile: profile,
		env:     env,
		runner:  process.ExecRunner{},
		start:   process.Start,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resolver == nil {
		c.resolver = locate.New(profile, env,
			locate.WithOverride(c.override),
			locate.WithRunner(c.runner),
		)
	}
	c.builder = environ.New(profile, env)
	return c
}

// Result is the outcome of an asynchronous operation
type Result struct {
	Output string
	Err    error
}

// invocation is one prepared fnm call
type invocation struct {
	executable string
	env        config.Snapshot
}

func (c *Client) prepare() (invocation, error) {
	exe, err := c.resolver.Resolve()
	if err != nil {
		return invocation{}, err
	}
	return invocation{executable: exe, env: c.builder.Build(exe)}, nil
}

func (c *Client) exec(inv invocation, args ...string) (process.Outcome, error) {
	return c.runner.Run(inv.executable, args, inv.env.Environ())
}

// run executes fnm and returns stdout, or a ToolError on a non-zero exit
func (c *Client) run(args ...string) (string, error) {
	inv, err := c.prepare()
	if err != nil {
		return "", err
	}
	outcome, err := c.exec(inv, args...)
	if err != nil {
		return "", err
	}
	if !outcome.Success {
		return "", toolError(args, outcome)
	}
	return outcome.Stdout, nil
}

func toolError(args []string, outcome process.Outcome) *ToolError {
	return &ToolError{
		Args:     args,
		ExitCode: outcome.ExitCode,
		Stdout:   outcome.Stdout,
		Stderr:   outcome.Stderr,
	}
}

// ListInstalled returns the raw output of `fnm list`
func (c *Client) ListInstalled() (string, error) {
	return c.run("list")
}

// ListRemote returns the raw output of `fnm list-remote`, newest first.
// ltsOnly and a non-blank filter narrow the list on fnm's side.
func (c *Client) ListRemote(ltsOnly bool, filter string) (string, error) {
	return c.run(listRemoteArgs(ltsOnly, filter)...)
}

func listRemoteArgs(ltsOnly bool, filter string) []string {
	args := []string{"list-remote", "--sort", "desc"}
	if ltsOnly {
		args = append(args, "--lts")
	}
	if filter = strings.TrimSpace(filter); filter != "" {
		args = append(args, "--filter", filter)
	}
	return args
}

// Install runs `fnm install <version>` and waits for it
func (c *Client) Install(version string) (string, error) {
	return c.run("install", version)
}

// InstallAsync runs Install on its own goroutine. The channel receives
// exactly one Result and is then closed.
func (c *Client) InstallAsync(version string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		out, err := c.Install(version)
		ch <- Result{Output: out, Err: err}
	}()
	return ch
}

// Uninstall runs `fnm uninstall <version>`
func (c *Client) Uninstall(version string) (string, error) {
	return c.run("uninstall", version)
}

// Use runs `fnm use <version>`
func (c *Client) Use(version string) (string, error) {
	return c.run("use", version)
}

// SetDefault runs `fnm default <version>`
func (c *Client) SetDefault(version string) (string, error) {
	return c.run("default", version)
}

// Current returns the active Node.js version. When fnm cannot tell (it
// failed, or printed nothing or "none") the default alias in FNM_DIR is
// read instead, which is what a new shell would get.
func (c *Client) Current() (string, error) {
	inv, err := c.prepare()
	if err != nil {
		return "", err
	}

	outcome, err := c.exec(inv, "current")
	if err != nil {
		return "", err
	}

	if outcome.Success {
		if v := strings.TrimSpace(outcome.Stdout); v != "" && v != constants.NoneVersion {
			return v, nil
		}
	} else {
		ui.Debug("fnm current failed (exit %d), reading default alias", outcome.ExitCode)
	}

	dataDir, _ := c.lookup(inv.env, constants.EnvFnmDir)
	return parser.ResolveDefaultVersion(dataDir), nil
}

// Environment returns fnm's effective configuration. Values printed by
// `fnm env` win over the process environment, which wins over defaults.
func (c *Client) Environment() (parser.EnvConfig, error) {
	out, err := c.run("env")
	if err != nil {
		return parser.EnvConfig{}, err
	}
	return parser.ResolveEnv(
		parser.ParseAssignments(out),
		parser.EnvLayer(c.env, c.profile.FoldEnvKeys()),
		c.defaultLayer(),
	), nil
}

func (c *Client) defaultLayer() map[string]string {
	return map[string]string{
		constants.EnvFnmDir:  c.profile.DataDir(c.env),
		constants.EnvFnmArch: platform.HostArch(),
	}
}

// DataDir returns fnm's data directory: FNM_DIR as `fnm env` reports it,
// else FNM_DIR from the environment, else the platform default. It works
// without fnm installed.
func (c *Client) DataDir() (string, error) {
	if dir := c.dataDirFromTool(); dir != "" {
		return dir, nil
	}
	if dir, ok := c.lookup(c.env, constants.EnvFnmDir); ok && strings.TrimSpace(dir) != "" {
		return dir, nil
	}
	if dir := c.profile.DataDir(c.env); dir != "" {
		return dir, nil
	}
	return "", &PathResolutionError{
		What:   "fnm data directory",
		Reason: c.dataDirReason(),
	}
}

func (c *Client) dataDirFromTool() string {
	out, err := c.run("env")
	if err != nil {
		ui.Debug("fnm env unavailable for data directory: %v", err)
		return ""
	}
	return strings.TrimSpace(parser.ParseAssignments(out)[constants.EnvFnmDir])
}

func (c *Client) dataDirReason() string {
	switch c.profile.Kind {
	case platform.Windows:
		return "FNM_DIR and LOCALAPPDATA are not set"
	case platform.Unknown:
		return "FNM_DIR is not set and the platform has no default"
	default:
		return "FNM_DIR is not set and the home directory is unknown"
	}
}

// VersionDir returns the install root of a version,
// <dataDir>/node-versions/<version>/installation
func (c *Client) VersionDir(version string) (string, error) {
	dataDir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return c.profile.Join(dataDir, "node-versions", version, "installation"), nil
}

// OpenDataDir shows the data directory in the system file browser
func (c *Client) OpenDataDir() error {
	dir, err := c.DataDir()
	if err != nil {
		return err
	}
	return c.open(dir)
}

// OpenVersionDir shows a version's install root in the system file browser
func (c *Client) OpenVersionDir(version string) error {
	dir, err := c.VersionDir(version)
	if err != nil {
		return err
	}
	return c.open(dir)
}

func (c *Client) open(dir string) error {
	opener := c.profile.OpenCommand()
	if opener == "" {
		return &PathResolutionError{What: "a file browser", Reason: "unsupported platform " + c.profile.Kind.String()}
	}
	return c.start(opener, dir)
}

func (c *Client) lookup(env config.Snapshot, key string) (string, bool) {
	if c.profile.FoldEnvKeys() {
		return env.LookupFold(key)
	}
	return env.Lookup(key)
}
