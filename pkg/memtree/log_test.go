package memtree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/memtree/pkg/memtree"
	"github.com/arthur-debert/memtree/pkg/memtree/tree"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := memtree.NewLogger(&buf, zerolog.InfoLevel)

	logger.Info().Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected log output to contain 'test message', got: %s", output)
	}
	if !strings.HasSuffix(strings.TrimSpace(output), "lib=memtree") {
		t.Errorf("Expected log output to end with 'lib=memtree', got: %s", output)
	}
}

func TestLogLevelFromString(t *testing.T) {
	testCases := []struct {
		levelStr string
		expected zerolog.Level
		wantErr  bool
	}{
		{"trace", zerolog.TraceLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"invalid", zerolog.NoLevel, true},
	}

	for _, tc := range testCases {
		t.Run(tc.levelStr, func(t *testing.T) {
			level, err := memtree.LogLevelFromString(tc.levelStr)

			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error for invalid level %q", tc.levelStr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if level != tc.expected {
				t.Errorf("Expected level %v, got %v", tc.expected, level)
			}
		})
	}
}

func TestNewTestLogger(t *testing.T) {
	testCases := []struct {
		verbose  int
		expected zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		logger := memtree.NewTestLogger(&buf, tc.verbose)
		if logger.GetLevel() != tc.expected {
			t.Errorf("Expected level %v for verbose %d, got %v", tc.expected, tc.verbose, logger.GetLevel())
		}
	}
}

func TestConfigureLogging(t *testing.T) {
	defer tree.SetLogger(zerolog.Nop())

	t.Run("verbosity wins when more verbose", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := memtree.ConfigureLogging(&buf, "warn", 2)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if logger.GetLevel() != zerolog.DebugLevel {
			t.Errorf("Expected debug level, got %v", logger.GetLevel())
		}

		root, _ := tree.NewDirectory(nil, "root", true)
		if _, err := tree.NewFile(root, "a.txt", 1, true, tree.TypeText); err != nil {
			t.Fatalf("NewFile: %v", err)
		}
		if !strings.Contains(buf.String(), "item added") {
			t.Errorf("Expected tree events in log output, got: %s", buf.String())
		}
		if !strings.Contains(buf.String(), "component=tree") {
			t.Errorf("Expected component field in log output, got: %s", buf.String())
		}
	})

	t.Run("level wins when more verbose", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := memtree.ConfigureLogging(&buf, "trace", 1)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if logger.GetLevel() != zerolog.TraceLevel {
			t.Errorf("Expected trace level, got %v", logger.GetLevel())
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		var buf bytes.Buffer
		if _, err := memtree.ConfigureLogging(&buf, "loud", 0); err == nil {
			t.Error("Expected error for invalid level")
		}
	})
}
