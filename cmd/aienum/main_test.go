package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestHelpContainsFlagsAndEnv(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("help: %v", err)
	}
	h := buf.String()
	for _, want := range []string{"--config", "--no-color", "--verbose", "gen", "serve", "version",
		"OPENAI_API_KEY", "CLAUDE_API_KEY", "AIENUM_PROVIDER", "AIENUM_MOCK"} {
		if !strings.Contains(h, want) {
			t.Fatalf("help missing %s", want)
		}
	}
}
