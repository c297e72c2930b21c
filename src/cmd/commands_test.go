package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fnmdesk/fnmdesk/src/internal/fnm"
	"github.com/fnmdesk/fnmdesk/src/internal/locate"
	"github.com/fnmdesk/fnmdesk/src/internal/parser"
	"github.com/fnmdesk/fnmdesk/src/internal/process"
	"github.com/fnmdesk/fnmdesk/src/internal/runtime"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"gopkg.in/yaml.v3"
)

const listOutput = "* v18.20.8\n* v22.21.1 default\n* v20.12.2 lts-iron\n* system\n"

func TestList_Table(t *testing.T) {
	useFakeFnm(t, map[string]process.Outcome{
		"list":    ok(listOutput),
		"current": ok("v20.12.2\n"),
	})

	out, _, err := runCommand(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, want := range []string{"v22.21.1", "v20.12.2", "v18.20.8", "current", "default", "lts-iron", "3 version(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "system") {
		t.Error("system entry should not be listed")
	}
	if strings.Index(out, "v22.21.1") > strings.Index(out, "v18.20.8") {
		t.Error("versions should be listed newest first")
	}
}

func TestList_JSON(t *testing.T) {
	useFakeFnm(t, map[string]process.Outcome{
		"list":    ok(listOutput),
		"current": ok("v22.21.1\n"),
	})

	out, _, err := runCommand(t, "list", "--format", "json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var versions []runtime.NodeVersion
	if err := json.Unmarshal([]byte(out), &versions); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(versions) != 3 {
		t.Fatalf("got %d versions, want 3", len(versions))
	}
	if versions[0].Name != "v22.21.1" || !versions[0].Current || !versions[0].Default {
		t.Errorf("first version = %+v, want current default v22.21.1", versions[0])
	}
}

func TestList_LTSOnly(t *testing.T) {
	useFakeFnm(t, map[string]process.Outcome{
		"list":    ok(listOutput),
		"current": ok("none\n"),
	})

	out, _, err := runCommand(t, "list", "--lts", "--format", "yaml")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var versions []runtime.NodeVersion
	if err := yaml.Unmarshal([]byte(out), &versions); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if len(versions) != 1 || versions[0].Name != "v20.12.2" {
		t.Errorf("versions = %+v, want only v20.12.2", versions)
	}
}

func TestList_Filter(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{name: "by version prefix", filter: "v18", want: []string{"v18.20.8"}},
		{name: "by lts alias, any case", filter: "IRON", want: []string{"v20.12.2"}},
		{name: "no match", filter: "hydrogen", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useFakeFnm(t, map[string]process.Outcome{
				"list":    ok(listOutput),
				"current": ok("v22.21.1\n"),
			})

			out, _, err := runCommand(t, "list", "--filter", tt.filter, "--format", "json")
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}

			var versions []runtime.NodeVersion
			if err := json.Unmarshal([]byte(out), &versions); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out)
			}
			if got := runtime.Names(versions); strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("versions = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestList_Empty(t *testing.T) {
	useFakeFnm(t, map[string]process.Outcome{
		"list":    ok("* system\n"),
		"current": ok("system\n"),
	})

	out, _, err := runCommand(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "No Node.js versions installed") {
		t.Errorf("output = %q", out)
	}
}

func TestList_ToolFailure(t *testing.T) {
	useFakeFnm(t, map[string]process.Outcome{
		"list":    failed(1, "error: Can't read the versions directory"),
		"current": ok("none\n"),
	})

	_, _, err := runCommand(t, "list")
	if err == nil || !strings.Contains(err.Error(), "Can't read the versions directory") {
		t.Errorf("err = %v, want fnm's stderr", err)
	}
}

func TestList_BadFormat(t *testing.T) {
	f := useFakeFnm(t, nil)

	_, _, err := runCommand(t, "list", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("err = %v, want unknown format", err)
	}
	if len(f.runner.calls) != 0 {
		t.Errorf("fnm should not run for a bad format, ran %v", f.runner.calls)
	}
}

func TestListRemote(t *testing.T) {
	remote := "v22.21.1 (Jod)\nv22.20.0 (Jod)\nv21.7.3\nv20.12.2 (Iron)\n"

	tests := []struct {
		name string
		args []string
		key  string
		want []string
	}{
		{
			name: "all versions",
			args: []string{"list-remote", "--format", "json"},
			key:  "list-remote --sort desc",
			want: []string{"v22.21.1", "v22.20.0", "v21.7.3", "v20.12.2"},
		},
		{
			name: "lts and filter passed to fnm",
			args: []string{"list-remote", "--lts", "--filter", "22", "--format", "json"},
			key:  "list-remote --sort desc --lts --filter 22",
			want: []string{"v22.21.1", "v22.20.0", "v21.7.3", "v20.12.2"},
		},
		{
			name: "latest per major",
			args: []string{"list-remote", "--latest", "--format", "json"},
			key:  "list-remote --sort desc",
			want: []string{"v22.21.1", "v21.7.3", "v20.12.2"},
		},
		{
			name: "limit",
			args: []string{"list-remote", "-n", "2", "--format", "json"},
			key:  "list-remote --sort desc",
			want: []string{"v22.21.1", "v22.20.0"},
		},
		{
			name: "installed only",
			args: []string{"list-remote", "--installed", "--format", "json"},
			key:  "list-remote --sort desc",
			want: []string{"v20.12.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useFakeFnm(t, map[string]process.Outcome{
				tt.key: ok(remote),
				"list": ok("* v20.12.2 default\n"),
			})

			out, _, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("list-remote failed: %v", err)
			}

			var versions []runtime.NodeVersion
			if err := json.Unmarshal([]byte(out), &versions); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out)
			}
			if got := runtime.Names(versions); strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("versions = %v, want %v", got, tt.want)
			}
			for _, v := range versions {
				if v.Installed != (v.Name == "v20.12.2") {
					t.Errorf("%s installed = %v", v.Name, v.Installed)
				}
			}
		})
	}
}

func TestListRemote_InstalledListFailureIgnored(t *testing.T) {
	useFakeFnm(t, map[string]process.Outcome{
		"list-remote --sort desc": ok("v22.21.1 (Jod)\n"),
		"list":                    failed(1, "error: broken"),
	})

	out, _, err := runCommand(t, "list-remote")
	if err != nil {
		t.Fatalf("list-remote failed: %v", err)
	}
	if !strings.Contains(out, "v22.21.1") || !strings.Contains(out, "Jod") {
		t.Errorf("output = %s", out)
	}
}

func TestInstall(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantCalls []string
	}{
		{
			name:      "plain version",
			args:      []string{"install", "22"},
			wantCalls: []string{"install 22"},
		},
		{
			name:      "lts",
			args:      []string{"install", "--lts"},
			wantCalls: []string{"install lts/*"},
		},
		{
			name:      "then default and use",
			args:      []string{"install", "20", "--default", "--use"},
			wantCalls: []string{"install 20", "default 20", "use 20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := useFakeFnm(t, map[string]process.Outcome{
				"install 22":    ok("Installing Node v22.21.1 (x64)\n"),
				"install lts/*": ok(""),
				"install 20":    ok(""),
				"default 20":    ok(""),
				"use 20":        ok("Using Node v20.12.2\n"),
			})

			out, _, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("install failed: %v", err)
			}
			if !strings.Contains(out, "Installed Node.js") {
				t.Errorf("output = %q", out)
			}
			for _, c := range tt.wantCalls {
				if !f.runner.called(c) {
					t.Errorf("fnm %q was not run; calls: %v", c, f.runner.calls)
				}
			}
		})
	}
}

func TestInstall_Failure(t *testing.T) {
	useFakeFnm(t, map[string]process.Outcome{
		"install 99": failed(1, "error: Can't find version that matches 99"),
	})

	_, _, err := runCommand(t, "install", "99")
	var toolErr *fnm.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("err = %v, want a ToolError", err)
	}
	if !strings.Contains(err.Error(), "Can't find version that matches 99") {
		t.Errorf("err = %v, want fnm's stderr", err)
	}
}

func TestInstallTarget(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		lts     bool
		want    string
		wantErr bool
	}{
		{name: "version", args: []string{"22"}, want: "22"},
		{name: "trimmed", args: []string{" v20.12.2 "}, want: "v20.12.2"},
		{name: "lts", lts: true, want: "lts/*"},
		{name: "both", args: []string{"22"}, lts: true, wantErr: true},
		{name: "neither", wantErr: true},
		{name: "blank", args: []string{"  "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := installTarget(tt.args, tt.lts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("installTarget() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("installTarget() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSingleVersionCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		call    string
		message string
	}{
		{name: "uninstall", args: []string{"uninstall", "18.20.8"}, call: "uninstall 18.20.8", message: "Uninstalled Node.js"},
		{name: "use", args: []string{"use", "22"}, call: "use 22", message: "Now using Node.js"},
		{name: "default", args: []string{"default", "v20.12.2"}, call: "default v20.12.2", message: "Default Node.js version set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := useFakeFnm(t, map[string]process.Outcome{tt.call: ok("")})

			out, _, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}
			if !f.runner.called(tt.call) {
				t.Errorf("fnm %q was not run; calls: %v", tt.call, f.runner.calls)
			}
			if !strings.Contains(out, tt.message) {
				t.Errorf("output = %q, want %q", out, tt.message)
			}
		})

		t.Run(tt.name+" failure", func(t *testing.T) {
			useFakeFnm(t, map[string]process.Outcome{tt.call: failed(1, "error: Requested version is not currently installed")})

			_, _, err := runCommand(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), "Requested version is not currently installed") {
				t.Errorf("err = %v, want fnm's stderr", err)
			}
		})
	}
}

func TestUse_RequiresVersion(t *testing.T) {
	useFakeFnm(t, nil)

	if _, _, err := runCommand(t, "use"); err == nil {
		t.Error("use without a version should fail")
	}
}

func TestCurrent(t *testing.T) {
	useFakeFnm(t, map[string]process.Outcome{"current": ok("v22.21.1\n")})

	out, _, err := runCommand(t, "current")
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if !strings.Contains(out, "v22.21.1") {
		t.Errorf("output = %q", out)
	}
}

func TestCurrent_NoneWithoutAlias(t *testing.T) {
	dataDir := t.TempDir()
	useFakeFnm(t, map[string]process.Outcome{"current": failed(1, "error: no version")}, "FNM_DIR="+dataDir)

	out, _, err := runCommand(t, "current")
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if !strings.Contains(out, "none") {
		t.Errorf("output = %q, want none", out)
	}
}

func TestEnv(t *testing.T) {
	envOutput := "export FNM_DIR=\"/x/y\"\nexport FNM_ARCH=arm64\nexport FNM_NODE_DIST_MIRROR=\"https://npmmirror.com/mirrors/node\"\n"

	t.Run("table", func(t *testing.T) {
		useFakeFnm(t, map[string]process.Outcome{"env": ok(envOutput)})

		out, _, err := runCommand(t, "env")
		if err != nil {
			t.Fatalf("env failed: %v", err)
		}
		for _, want := range []string{"FNM_DIR", "/x/y", "arm64", "npmmirror", "FNM_RESOLVE_ENGINES"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("shell", func(t *testing.T) {
		useFakeFnm(t, map[string]process.Outcome{"env": ok(envOutput)})

		out, _, err := runCommand(t, "env", "--format", "shell")
		if err != nil {
			t.Fatalf("env failed: %v", err)
		}
		got := parser.ParseEnv(out)
		if got.Dir != "/x/y" || got.Arch != "arm64" || got.LogLevel != parser.DefaultLogLevel {
			t.Errorf("shell output does not parse back: %+v\n%s", got, out)
		}
	})

	t.Run("json", func(t *testing.T) {
		useFakeFnm(t, map[string]process.Outcome{"env": ok(envOutput)})

		out, _, err := runCommand(t, "env", "-f", "json")
		if err != nil {
			t.Fatalf("env failed: %v", err)
		}
		var cfg parser.EnvConfig
		if err := json.Unmarshal([]byte(out), &cfg); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if cfg.Dir != "/x/y" || !cfg.ResolveEngines {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("failure", func(t *testing.T) {
		useFakeFnm(t, map[string]process.Outcome{"env": failed(1, "error: bad shell")})

		_, _, err := runCommand(t, "env")
		if err == nil || !strings.Contains(err.Error(), "bad shell") {
			t.Errorf("err = %v", err)
		}
	})
}

func TestDir(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "data dir", args: []string{"dir"}, want: "/data/fnm\n"},
		{name: "version dir", args: []string{"dir", "v22.21.1"}, want: "/data/fnm/node-versions/v22.21.1/installation\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useFakeFnm(t, map[string]process.Outcome{"env": ok("export FNM_DIR=\"/data/fnm\"\n")})

			out, _, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("dir failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestDir_WithoutFnmOutput(t *testing.T) {
	useFakeFnm(t, nil)

	out, _, err := runCommand(t, "dir")
	if err != nil {
		t.Fatalf("dir failed: %v", err)
	}
	if out != "/home/dev/.local/share/fnm\n" {
		t.Errorf("output = %q, want the platform default", out)
	}
}

func TestOpen(t *testing.T) {
	f := useFakeFnm(t, map[string]process.Outcome{"env": ok("export FNM_DIR=\"/data/fnm\"\n")})

	if _, _, err := runCommand(t, "open"); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, _, err := runCommand(t, "open", "v20.12.2"); err != nil {
		t.Fatalf("open version failed: %v", err)
	}

	want := []string{
		"xdg-open /data/fnm",
		"xdg-open /data/fnm/node-versions/v20.12.2/installation",
	}
	if strings.Join(f.opened, "|") != strings.Join(want, "|") {
		t.Errorf("opened = %v, want %v", f.opened, want)
	}
}

func TestDoctor(t *testing.T) {
	useFakeFnm(t, map[string]process.Outcome{
		"--version": ok("fnm 1.38.1\n"),
		"list":      ok(listOutput),
		"current":   ok("v22.21.1\n"),
	})

	out, _, err := runCommand(t, "doctor")
	if err != nil {
		t.Fatalf("doctor failed: %v", err)
	}
	for _, want := range []string{"fnmdesk diagnostics", testExe, "fnm 1.38.1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "fnmdesk") || !strings.Contains(out, Version) {
		t.Errorf("output = %q", out)
	}
}

func TestReportError_NotFound(t *testing.T) {
	var out, errOut bytes.Buffer
	ui.SetOutput(&out, &errOut)
	defer ui.SetOutput(nil, nil)

	reportError(&locate.NotFoundError{
		Searched: []string{"/home/dev/.local/share/fnm/fnm", "/usr/local/bin/fnm"},
		Hint:     "Install fnm: curl -fsSL https://fnm.vercel.app/install | bash",
	})

	if !strings.Contains(errOut.String(), "fnm executable not found") {
		t.Errorf("stderr = %q", errOut.String())
	}
	for _, want := range []string{"/usr/local/bin/fnm", "https://fnm.vercel.app/install"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stdout missing %q:\n%s", want, out.String())
		}
	}
}

func TestReportError_Plain(t *testing.T) {
	var out, errOut bytes.Buffer
	ui.SetOutput(&out, &errOut)
	defer ui.SetOutput(nil, nil)

	reportError(errors.New("fnm use 99 failed: error: nope"))

	if !strings.Contains(errOut.String(), "fnm use 99 failed: error: nope") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{"table", "json", "yaml"} {
		if err := checkFormat(f); err != nil {
			t.Errorf("checkFormat(%q) = %v", f, err)
		}
	}
	if err := checkFormat("shell"); err == nil {
		t.Error("shell should only be allowed when passed as extra")
	}
	if err := checkFormat("shell", formatShell); err != nil {
		t.Errorf("checkFormat(shell, shell) = %v", err)
	}
}
