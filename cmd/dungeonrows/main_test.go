package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samdwyer/dungeonrows/internal/game"
	"github.com/samdwyer/dungeonrows/internal/world"
)

func TestRunDump(t *testing.T) {
	var buf bytes.Buffer
	if err := runDump(context.Background(), &buf, game.Config{RoomCount: 4, Seed: 11, MaxAttempts: 1}); err != nil {
		t.Fatalf("runDump: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < world.GridHeight+2 {
		t.Fatalf("dump has %d lines", len(lines))
	}
	for i := 0; i < world.GridHeight; i++ {
		if len(lines[i]) != world.GridWidth {
			t.Fatalf("map line %d has width %d", i, len(lines[i]))
		}
		if strings.Trim(lines[i], "#.") != "" {
			t.Fatalf("map line %d has unexpected glyphs: %q", i, lines[i])
		}
	}
	if !strings.HasPrefix(lines[world.GridHeight], "id=") {
		t.Errorf("stats line = %q", lines[world.GridHeight])
	}
	if !strings.Contains(buf.String(), "seed=11 ") {
		t.Error("dump should report the seed")
	}
	if !strings.Contains(buf.String(), "spawn=") {
		t.Error("dump should report the spawn point")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(t.TempDir()+"/missing.yaml", "", overrides{})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Generation.RoomCount != 20 {
		t.Errorf("RoomCount = %d, want default 20", cfg.Generation.RoomCount)
	}
}

func TestLoadConfigPreset(t *testing.T) {
	cfg, err := loadConfig(t.TempDir()+"/missing.yaml", "small", overrides{})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Generation.RoomCount != 8 {
		t.Errorf("RoomCount = %d, want 8", cfg.Generation.RoomCount)
	}

	if _, err := loadConfig(t.TempDir()+"/missing.yaml", "enormous", overrides{}); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestRunDumpTestLayout(t *testing.T) {
	var buf bytes.Buffer
	cfg := game.Config{Seed: 21, Layout: world.LayoutTest, MaxAttempts: 1}
	if err := runDump(context.Background(), &buf, cfg); err != nil {
		t.Fatalf("runDump: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "layout=test ") {
		t.Error("dump should report the layout")
	}
	if !strings.Contains(out, "rooms=0 ") {
		t.Error("test map has no rooms")
	}
	if strings.Contains(out, "spawn=") {
		t.Error("a roomless map has no spawn line")
	}
}

func TestLoadConfigLayoutFromEnv(t *testing.T) {
	t.Setenv("DUNGEON_LAYOUT", "scatter")
	cfg, err := loadConfig(t.TempDir()+"/missing.yaml", "", overrides{})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got := game.ConfigFrom(cfg).Layout; got != world.LayoutScatter {
		t.Errorf("Layout = %q, want scatter", got)
	}

	t.Setenv("DUNGEON_LAYOUT", "labyrinth")
	if _, err := loadConfig(t.TempDir()+"/missing.yaml", "", overrides{}); err == nil {
		t.Error("unknown layout should be rejected")
	}
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "run.log")
	cfgPath := filepath.Join(dir, "dungeonrows.yaml")
	content := fmt.Sprintf(`logging:
  console_enabled: false
  file_enabled: true
  file_path: %q
retry:
  max_attempts: 1
`, logPath)
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := run([]string{"-config", cfgPath, "-dump", "-layout", "maze"}, &out); code != 2 {
		t.Errorf("bad layout exit code = %d, want 2", code)
	}

	if code := run([]string{"-config", cfgPath, "-dump", "-layout", "test", "-seed", "3"}, &out); code != 0 {
		t.Fatalf("dump exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "layout=test seed=3 ") {
		t.Errorf("dump output missing stats line:\n%s", out.String())
	}

	// Twenty rows never fit the grid, so the only attempt fails
	if code := run([]string{"-config", cfgPath, "-dump", "-rooms", "400", "-seed", "1"}, &out); code != 1 {
		t.Errorf("failed generation exit code = %d, want 1", code)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file: %v", err)
	}
	if !strings.Contains(string(data), "generation failed") {
		t.Errorf("failure was not logged before exit:\n%s", data)
	}
}
