// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/EleniSef/comp-human-adna-book/cmd/drift/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"info":  slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"quiet": slog.LevelError,
	}
	for name, want := range tests {
		got, err := logging.ParseLevel(name)
		if err != nil {
			t.Errorf("level %q: unexpected error: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("level %q: got %v, want %v", name, got, want)
		}
	}

	if _, err := logging.ParseLevel("verbose"); err == nil {
		t.Errorf("level %q: expecting error", "verbose")
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelInfo, &buf)
	logger.Debug("hidden")
	logger.Info("simulation", "replicates", 10)

	got := buf.String()
	want := "level=INFO msg=simulation replicates=10\n"
	if got != want {
		t.Errorf("log: got %q, want %q", got, want)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("log: debug record written at info level")
	}
}
