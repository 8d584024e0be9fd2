package cmd

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/hirelab/smarthire/internal"
	"github.com/hirelab/smarthire/testutil"
)

func TestOpenCommandRebuildsState(t *testing.T) {
	server := testutil.NewBackend(t, map[string]http.HandlerFunc{
		"GET /sessions": testutil.JSONResponse(http.StatusOK,
			`{"sessions":[{"id":"s1","title":"Backend hires"}]}`),
		"GET /history/s1": testutil.JSONResponse(http.StatusOK,
			`{"history":[
				{"role":"user","type":"text","content":"Analyze these resumes"},
				{"type":"table","content":[
					{"name":"Ada","email":"ada@x.com","score":92,"summary":"strong"},
					{"name":"Ben","email":"No Email","score":61,"summary":"junior"}
				]},
				{"role":"bot","type":"text","content":"Here are the results."}
			]}`),
	})
	dir := testutil.CreateTempDir(t)

	rootCmd.SetArgs([]string{"open", "s1", "--api-url", server.URL, "--state-dir", dir})
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("open command error = %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"Ada", "Ben", "92", "Here are the results."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// The rebuilt state must survive the process boundary.
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	cfg.StateDir = dir
	store, err := internal.OpenStateStore(cfg.StatePath())
	if err != nil {
		t.Fatalf("OpenStateStore() error = %v", err)
	}
	defer store.Close()

	state := store.LoadState()
	if state.CurrentSessionID != "s1" {
		t.Errorf("CurrentSessionID = %q, want s1", state.CurrentSessionID)
	}
	if len(state.Analysis) != 2 || state.Analysis[0].Name != "Ada" {
		t.Errorf("Analysis = %+v", state.Analysis)
	}
}

func TestOpenCommandMissingSession(t *testing.T) {
	server := testutil.NewBackend(t, map[string]http.HandlerFunc{
		"GET /sessions": testutil.JSONResponse(http.StatusOK, `{"sessions":[]}`),
		"GET /history/nope": testutil.JSONResponse(http.StatusNotFound,
			`{"detail":"session not found"}`),
	})
	dir := testutil.CreateTempDir(t)

	rootCmd.SetArgs([]string{"open", "nope", "--api-url", server.URL, "--state-dir", dir})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("open should fail when the history fetch fails")
	}
}
