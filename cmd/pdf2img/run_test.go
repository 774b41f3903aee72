package main

// Notes:
// - run() is exercised through an injected Environment; stdout carries the
//   JSON surface, stderr the diagnostics.
// - Conversion failures still exit 0 and report through JSON; only flag and
//   configuration rejection exits 2.
// - clearKnownEnv keeps ambient PDF2IMG_* variables from leaking in.

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-pdf2img/internal/config"
)

// runCapture invokes run with buffered output.
func runCapture(t *testing.T, args []string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &Environment{Stdout: &out, Stderr: &errOut})
	return code, out.String(), errOut.String()
}

// ---------------------------------------------------------------------------
// TestRun_SkillInfo
// ---------------------------------------------------------------------------

func TestRun_SkillInfo(t *testing.T) {
	clearKnownEnv(t)

	code, stdout, _ := runCapture(t, []string{"--skill-info"})
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}

	if !strings.Contains(stdout, "PDF 转换为长图片") {
		t.Errorf("skill info output does not contain the tool name verbatim:\n%s", stdout)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("skill info is not valid JSON: %v", err)
	}
	if info["version"] != "1.0.0" {
		t.Errorf("version = %v, want 1.0.0", info["version"])
	}
}

// ---------------------------------------------------------------------------
// TestRun_NoOperation
// ---------------------------------------------------------------------------

func TestRun_NoOperation(t *testing.T) {
	clearKnownEnv(t)

	code, stdout, _ := runCapture(t, nil)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "Usage: pdf2img") {
		t.Errorf("expected usage on stdout, got:\n%s", stdout)
	}
}

// ---------------------------------------------------------------------------
// TestRun_MissingInputReportsJSON
// ---------------------------------------------------------------------------

func TestRun_MissingInputReportsJSON(t *testing.T) {
	clearKnownEnv(t)

	code, stdout, _ := runCapture(t, []string{"/nonexistent.pdf"})
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (failures report through JSON)", code, ExitSuccess)
	}

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	if result.Success {
		t.Error("success = true, want false")
	}
	if !strings.Contains(result.Error, "不存在") {
		t.Errorf("error %q does not carry the user-facing missing-file text", result.Error)
	}
}

// ---------------------------------------------------------------------------
// TestRun_UsageErrors - Exit 2 paths
// ---------------------------------------------------------------------------

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "invalid background", args: []string{"--background", "white", "doc.pdf"}},
		{name: "dpi out of range", args: []string{"--dpi", "99999", "doc.pdf"}},
		{name: "invalid timeout", args: []string{"--timeout", "soon", "doc.pdf"}},
		{name: "batch without pdf-dir", args: []string{"--batch"}},
		{name: "missing config file", args: []string{"--config", "/nonexistent/config.yaml", "doc.pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearKnownEnv(t)

			code, _, stderr := runCapture(t, tt.args)
			if code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
			if stderr == "" {
				t.Error("stderr is empty, want a diagnostic")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRun_BatchMissingDir - Operational failure stays on the JSON surface
// ---------------------------------------------------------------------------

func TestRun_BatchMissingDir(t *testing.T) {
	clearKnownEnv(t)

	code, stdout, _ := runCapture(t, []string{"--batch", "--pdf-dir", "/nonexistent-dir"})
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "目录不存在") {
		t.Errorf("output does not carry the user-facing missing-dir text:\n%s", stdout)
	}
}

// ---------------------------------------------------------------------------
// TestRun_Help
// ---------------------------------------------------------------------------

func TestRun_Help(t *testing.T) {
	clearKnownEnv(t)

	code, _, _ := runCapture(t, []string{"--help"})
	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
}

// ---------------------------------------------------------------------------
// TestResolveConfiguration - Precedence: flags > env > file > defaults
// ---------------------------------------------------------------------------

func TestResolveConfiguration(t *testing.T) {
	writeConfigFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing config: %v", err)
		}
		return path
	}
	quietEnv := func() *Environment {
		return &Environment{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	}

	t.Run("defaults when nothing is set", func(t *testing.T) {
		clearKnownEnv(t)

		flags, _, err := parseFlags(nil)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		cfg, timeout, err := resolveConfiguration(flags, quietEnv())
		if err != nil {
			t.Fatalf("resolveConfiguration() error = %v", err)
		}
		if cfg.Convert.DPI != 150 || cfg.Convert.Spacing != 10 {
			t.Errorf("config = %d dpi / %d spacing, want defaults", cfg.Convert.DPI, cfg.Convert.Spacing)
		}
		if timeout != 30*time.Second {
			t.Errorf("timeout = %v, want 30s", timeout)
		}
	})

	t.Run("env overrides file, flags override env", func(t *testing.T) {
		clearKnownEnv(t)
		path := writeConfigFile(t, "convert:\n  dpi: 72\n  spacing: 3\n")
		t.Setenv("PDF2IMG_DPI", "100")

		flags, _, err := parseFlags([]string{"--config", path, "--dpi", "200"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		cfg, _, err := resolveConfiguration(flags, quietEnv())
		if err != nil {
			t.Fatalf("resolveConfiguration() error = %v", err)
		}
		if cfg.Convert.DPI != 200 {
			t.Errorf("Convert.DPI = %d, want 200 (flag wins)", cfg.Convert.DPI)
		}
		if cfg.Convert.Spacing != 3 {
			t.Errorf("Convert.Spacing = %d, want 3 (file layer)", cfg.Convert.Spacing)
		}
	})

	t.Run("config file via environment", func(t *testing.T) {
		clearKnownEnv(t)
		path := writeConfigFile(t, "convert:\n  dpi: 96\n")
		t.Setenv("PDF2IMG_CONFIG", path)

		flags, _, err := parseFlags(nil)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		cfg, _, err := resolveConfiguration(flags, quietEnv())
		if err != nil {
			t.Fatalf("resolveConfiguration() error = %v", err)
		}
		if cfg.Convert.DPI != 96 {
			t.Errorf("Convert.DPI = %d, want 96 from env-named config", cfg.Convert.DPI)
		}
	})

	t.Run("flag timeout feeds the duration", func(t *testing.T) {
		clearKnownEnv(t)

		flags, _, err := parseFlags([]string{"--timeout", "90s"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		_, timeout, err := resolveConfiguration(flags, quietEnv())
		if err != nil {
			t.Fatalf("resolveConfiguration() error = %v", err)
		}
		if timeout != 90*time.Second {
			t.Errorf("timeout = %v, want 90s", timeout)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMergeFlags / TestResolveOutputPath / TestResolveTimeout
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	tests := []struct {
		name   string
		flags  cliFlags
		check  func(*config.Config) bool
		detail string
	}{
		{
			name:   "unset flags leave config alone",
			flags:  cliFlags{spacing: spacingSentinel},
			check:  func(c *config.Config) bool { return c.Convert.DPI == 150 && c.Convert.Spacing == 10 },
			detail: "defaults preserved",
		},
		{
			name:   "explicit zero spacing applies",
			flags:  cliFlags{spacing: 0},
			check:  func(c *config.Config) bool { return c.Convert.Spacing == 0 },
			detail: "spacing 0",
		},
		{
			name:   "all overrides apply",
			flags:  cliFlags{dpi: 300, spacing: 20, background: "#000", outputDir: "/o", timeout: "5s"},
			check: func(c *config.Config) bool {
				return c.Convert.DPI == 300 && c.Convert.Spacing == 20 &&
					c.Convert.Background == "#000" && c.Output.DefaultDir == "/o" &&
					c.Download.Timeout == "5s"
			},
			detail: "every field overridden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			mergeFlags(&tt.flags, cfg)
			if !tt.check(cfg) {
				t.Errorf("mergeFlags() did not produce %s: %+v", tt.detail, cfg)
			}
		})
	}
}

func TestResolveOutputPath(t *testing.T) {
	cfg := config.DefaultConfig()

	if got := resolveOutputPath("explicit.png", "/docs/a.pdf", cfg); got != "explicit.png" {
		t.Errorf("explicit flag: got %q", got)
	}

	cfg.Output.DefaultDir = "/out"
	want := filepath.Join("/out", "a_stitched.png")
	if got := resolveOutputPath("", "/docs/a.pdf", cfg); got != want {
		t.Errorf("default dir: got %q, want %q", got, want)
	}

	cfg.Output.DefaultDir = ""
	if got := resolveOutputPath("", "/docs/a.pdf", cfg); got != "" {
		t.Errorf("library default: got %q, want empty", got)
	}
}

func TestResolveTimeout(t *testing.T) {
	cfg := config.DefaultConfig()

	cfg.Download.Timeout = ""
	if d, err := resolveTimeout(cfg); err != nil || d != 30*time.Second {
		t.Errorf("empty timeout: got %v, %v", d, err)
	}

	cfg.Download.Timeout = "2m"
	if d, err := resolveTimeout(cfg); err != nil || d != 2*time.Minute {
		t.Errorf("2m timeout: got %v, %v", d, err)
	}

	cfg.Download.Timeout = "soon"
	if _, err := resolveTimeout(cfg); err == nil {
		t.Error("invalid timeout: error = nil, want error")
	}
}
