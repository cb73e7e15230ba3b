package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunStopsAtFrameLimit(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-frames", "3", "-tick", "1ms"}, strings.NewReader("W\nQ\n\nDown\n"), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	log := out.String()
	if got := strings.Count(log, "msg=frame "); got != 3 {
		t.Fatalf("logged %d frames, want 3:\n%s", got, log)
	}
	if !strings.Contains(log, "frame limit reached") {
		t.Fatalf("missing frame limit line:\n%s", log)
	}
	if !strings.Contains(log, "ball_x=1.5") {
		t.Fatalf("third frame should have ball_x=1.5:\n%s", log)
	}
}

func TestRunRejectsBadTick(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-tick", "0s"}, strings.NewReader(""), &out); err == nil {
		t.Fatal("expected error for zero tick")
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-bogus"}, strings.NewReader(""), &out); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}
