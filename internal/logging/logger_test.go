package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/mediarename/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.Info("test message")
	if !strings.Contains(buf.String(), "[INFO] test message") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "mediarename.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.SetOutput(&bytes.Buffer{})
	l.Rename("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("RENAME")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		cfg := config.DefaultConfig()
		cfg.ColorMode = config.ColorNever
		cfg.Verbose = verbose
		l, err := NewLogger(&cfg)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		l.SetOutput(&buf)
		l.Debug("detail %d", 7)
		got := strings.Contains(buf.String(), "detail 7")
		if got != verbose {
			t.Errorf("verbose=%v: debug emitted=%v", verbose, got)
		}
	}
}
