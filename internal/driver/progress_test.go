package driver

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func TestFormatPathsReportsProgress(t *testing.T) {
	dir := isolate(t)
	good := filepath.Join(dir, "a.css")
	bad := filepath.Join(dir, "b.css")
	writeFile(t, good, messy)
	writeFile(t, bad, "a{")

	sink := &recordingSink{}
	if _, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{Progress: sink}); err != nil {
		t.Fatal(err)
	}

	final := map[string]Event{}
	queued := map[string]bool{}
	wrote := map[string]bool{}
	for _, ev := range sink.events {
		switch {
		case ev.Status == StatusQueued:
			queued[ev.File] = true
		case ev.Stage == StageWrite:
			wrote[ev.File] = true
		case ev.Status == StatusDone || ev.Status == StatusError:
			final[ev.File] = ev
		}
	}
	if !queued[good] || !queued[bad] {
		t.Errorf("queued = %v", queued)
	}
	if ev := final[good]; ev.Status != StatusDone || !ev.Changed {
		t.Errorf("good: %+v", ev)
	}
	if ev := final[bad]; ev.Status != StatusError || ev.Err == nil {
		t.Errorf("bad: %+v", ev)
	}
	if !wrote[good] || wrote[bad] {
		t.Errorf("write events = %v", wrote)
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "x.css", Status: StatusDone})
	if ev := <-ch; ev.File != "x.css" {
		t.Errorf("got %+v", ev)
	}
	ChannelSink{}.OnEvent(Event{}) // nil-канал не блокирует
}
