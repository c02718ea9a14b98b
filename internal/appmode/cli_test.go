package appmode_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) parser.EnvLookup {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestSearchCommand(t *testing.T) {
	dir := t.TempDir()
	poemFile := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(poemFile, []byte("Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n-v flag\n"), 0o644))

	cases := []struct {
		name       string
		args       []string
		env        map[string]string
		wantOut    string
		wantErr    bool
		wantPrefix string
	}{
		{
			name:    "Positive - case-sensitive search",
			args:    []string{"duct", poemFile},
			wantOut: "safe, fast, productive.\n",
		},
		{
			name:    "Positive - IGNORE_CASE set",
			args:    []string{"rUsT", poemFile},
			env:     map[string]string{"IGNORE_CASE": ""},
			wantOut: "Rust:\nTrust me.\n",
		},
		{
			name:    "Positive - query starting with a dash",
			args:    []string{"-v", poemFile},
			wantOut: "-v flag\n",
		},
		{
			name:    "Positive - no matches",
			args:    []string{"absent", poemFile},
			wantOut: "",
		},
		{
			name:       "Negative - missing query",
			args:       []string{},
			wantErr:    true,
			wantPrefix: "Problem parsing arguments: ",
		},
		{
			name:       "Negative - missing file path",
			args:       []string{"duct"},
			wantErr:    true,
			wantPrefix: "Problem parsing arguments: ",
		},
		{
			name:       "Negative - file not found",
			args:       []string{"duct", filepath.Join(dir, "missing.txt")},
			wantErr:    true,
			wantPrefix: "Application error: ",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			cmd := appmode.NewSearchCommand(envOf(tt.env), &out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()

			if !tt.wantErr {
				require.NoError(t, err)
				require.Equal(t, tt.wantOut, out.String())
				return
			}
			require.Error(t, err)
			require.Empty(t, out.String())
			msg := appmode.Describe(err)
			require.True(t, strings.HasPrefix(msg, tt.wantPrefix), "diagnostic %q has no prefix %q", msg, tt.wantPrefix)
			require.Greater(t, len(msg), len(tt.wantPrefix))
		})
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "Argument error",
			err:     &model.ArgumentError{Err: model.ErrMissingFilePath},
			wantMsg: "Problem parsing arguments: didn't get a file path",
		},
		{
			name:    "File read error carries the cause",
			err:     &model.FileReadError{Path: "x.txt", Err: model.ErrInvalidEncoding},
			wantMsg: `Application error: failed to read file "x.txt": content is not valid UTF-8`,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantMsg, appmode.Describe(tt.err))
		})
	}
}

func TestRunNode_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		appmode.RunNode(ctx, cancel, &model.NodeInit{Address: "127.0.0.1:0"}, processor.Processor{})
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("RunNode didn't return after context cancellation")
	}
}
