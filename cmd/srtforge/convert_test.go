package main

import (
	"path/filepath"
	"testing"

	"github.com/altyazi-tools/srtforge/internal/config"
)

func TestOutputFor(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"derived from input", []string{"talk.txt"}, "talk.srt"},
		{"explicit output", []string{"talk.txt", "out/talk.srt"}, "out/talk.srt"},
		{"srt extension appended", []string{"talk.txt", "out/talk"}, "out/talk.srt"},
		{"uppercase extension kept", []string{"talk.txt", "out/talk.SRT"}, "out/talk.SRT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputFor(tt.args[0], tt.args); got != tt.want {
				t.Errorf("outputFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollectJobsFromArgs(t *testing.T) {
	cfg := &config.Config{
		Paths: config.PathsConfig{Input: "in", Output: "out"},
	}

	jobs, err := collectJobs(cfg, []string{"a.txt", filepath.Join("deep", "b.txt")})
	if err != nil {
		t.Fatalf("collectJobs() error = %v", err)
	}

	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	if jobs[0].OutputPath != filepath.Join("out", "a.srt") {
		t.Errorf("job 0 output = %q", jobs[0].OutputPath)
	}
	if jobs[1].OutputPath != filepath.Join("out", "b.srt") {
		t.Errorf("job 1 output = %q", jobs[1].OutputPath)
	}
}
