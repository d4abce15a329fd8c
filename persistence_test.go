package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"wordle/internal/stats"
	"wordle/internal/store"
)

func TestSaveAndLoadStateFileStore(t *testing.T) {
	app := newTestApp(t)
	dir := t.TempDir()
	fs, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	app.Store = fs
	ctx := context.Background()

	sessionID := uuid.NewString()
	st := stats.Finalize(stats.NewState(), "2026-10-16", []string{"zebra"}, stats.Outcome{Won: true, Attempts: 1})
	if err := app.saveState(ctx, sessionID, st); err != nil {
		t.Fatalf("saveState failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, sessionID+".json")); err != nil {
		t.Errorf("expected session file on disk: %v", err)
	}

	loaded := app.loadState(ctx, sessionID)
	if loaded.Stats.Played != 1 || loaded.Stats.Wins != 1 {
		t.Errorf("loadState got stats %+v", loaded.Stats)
	}
	if rec := loaded.Game("2026-10-16"); rec == nil || rec.Result == nil || !rec.Result.Won {
		t.Errorf("loadState lost the game record: %+v", rec)
	}
}

func TestLoadStateMissing(t *testing.T) {
	app := newTestApp(t)
	st := app.loadState(context.Background(), uuid.NewString())
	if st.Version != stats.SchemaVersion || st.Stats.Played != 0 || len(st.Games) != 0 {
		t.Errorf("expected default state, got %+v", st)
	}
}

func TestLoadStateFallbacks(t *testing.T) {
	cases := []struct {
		name   string
		blob   string
		reason string
	}{
		{"corrupt json", "{not json", "corrupt"},
		{"null document", "null", "corrupt"},
		{"future version", `{"version":2,"games":{},"stats":{"played":9}}`, "unsupported_version"},
		{"missing version", `{"games":{},"stats":{"played":9}}`, "unsupported_version"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			app := newTestApp(t)
			ctx := context.Background()
			sessionID := uuid.NewString()
			if err := app.Store.Save(ctx, sessionID, []byte(c.blob)); err != nil {
				t.Fatal(err)
			}

			before := testutil.ToFloat64(stateLoadFailuresTotal.WithLabelValues(c.reason))
			st := app.loadState(ctx, sessionID)
			if st.Stats.Played != 0 || len(st.Stats.GuessDist) != 6 {
				t.Errorf("expected default state, got %+v", st.Stats)
			}
			if got := testutil.ToFloat64(stateLoadFailuresTotal.WithLabelValues(c.reason)) - before; got != 1 {
				t.Errorf("failure counter for %q moved by %v, want 1", c.reason, got)
			}
		})
	}
}

func TestSaveStateRejectsInvalidKey(t *testing.T) {
	app := newTestApp(t)
	if err := app.saveState(context.Background(), "../escape", stats.NewState()); err == nil {
		t.Error("expected saveState to reject a traversal key")
	}
}
