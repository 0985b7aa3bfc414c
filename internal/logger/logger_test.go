package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// initToFile points the package logger at a fresh file under t.TempDir.
func initToFile(t *testing.T, level, name string, maxSizeMB int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	cfg := FileConfig{Path: path, MaxSizeMB: maxSizeMB, MaxBackups: 2, MaxAgeDays: 1}
	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	t.Cleanup(Sync)
	return path
}

func TestRotationKeepsBackups(t *testing.T) {
	path := initToFile(t, "debug", "collide.log", 1)

	// 1MB is the smallest size lumberjack rotates at.
	payload := strings.Repeat("p", 256)
	for tick := 0; tick < 6000; tick++ {
		Sugar.Debugf("tick %d actor=hero pos=%s", tick, payload)
	}
	Sync()

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("failed to list log dir: %v", err)
	}

	var current, backups int
	for _, e := range entries {
		switch name := e.Name(); {
		case name == "collide.log":
			current++
		case strings.HasPrefix(name, "collide-") && strings.HasSuffix(name, ".log"):
			backups++
		}
	}
	if current != 1 {
		t.Errorf("expected the active log file, found %d", current)
	}
	if backups == 0 {
		t.Error("expected at least one rotated backup")
	}
	if backups > 2 {
		t.Errorf("expected at most 2 backups, got %d", backups)
	}
}

func TestLevelFiltering(t *testing.T) {
	all := []string{"DEBUG", "INFO", "WARN", "ERROR"}

	for i, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			path := initToFile(t, level, level+".log", 10)

			Debug("probe hit")
			Info("actor spawned")
			Warn("slide did not converge")
			Error("position not finite")
			Sync()

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			out := string(data)

			for j, tag := range all {
				got := strings.Contains(out, tag)
				if want := j >= i; got != want {
					t.Errorf("level %s: %s present=%v, want %v", level, tag, got, want)
				}
			}
		})
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	path := initToFile(t, "loud", "fallback.log", 10)

	Debug("hidden")
	Info("shown")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("debug entry written at fallback level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("info entry missing at fallback level")
	}
}

func TestJSONFormat(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "sim.log")

	err := InitWithOptions(Options{
		Level:  "info",
		Format: "json",
		File:   FileConfig{Path: logFile, MaxSizeMB: 10, MaxBackups: 1, MaxAgeDays: 1},
	})
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("sim").Info("tick done")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	line := strings.TrimSpace(string(content))
	if !strings.HasPrefix(line, "{") {
		t.Errorf("expected JSON entry, got %q", line)
	}
	for _, want := range []string{`"msg":"tick done"`, `"logger":"sim"`, `"level":"INFO"`} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %s in %q", want, line)
		}
	}
}

func TestNopBeforeInit(t *testing.T) {
	// Replaced by other tests; a fresh Nop must accept calls without output.
	Log = zap.NewNop()
	Sugar = Log.Sugar()

	Info("dropped")
	Named("scene").Debug("dropped")
	Sync()
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 {
		t.Errorf("expected MaxSizeMB 50, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
