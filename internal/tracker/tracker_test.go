package tracker

import "testing"

func TestViewLifecycle(t *testing.T) {
	t.Parallel()

	view := NewView("list")

	if view.State() != StateIdle {
		t.Fatalf("expected idle, got %s", view.State())
	}

	ticket := view.Begin()
	if view.State() != StateLoading {
		t.Fatalf("expected loading, got %s", view.State())
	}

	if !view.Succeed(ticket) {
		t.Fatalf("expected current ticket to be applied")
	}

	if view.State() != StateSucceeded {
		t.Fatalf("expected succeeded, got %s", view.State())
	}

	// Refresh after success goes back through loading.
	ticket = view.Begin()
	if view.State() != StateLoading {
		t.Fatalf("expected loading on retry, got %s", view.State())
	}

	if !view.Fail(ticket, "backend offline") {
		t.Fatalf("expected failure to be applied")
	}

	if view.State() != StateFailed || view.Err() != "backend offline" {
		t.Fatalf("expected failed with message, got %s %q", view.State(), view.Err())
	}
}

func TestViewStaleCompletionDropped(t *testing.T) {
	t.Parallel()

	view := NewView("search")

	first := view.Begin()
	second := view.Begin()

	// The superseded fetch settles last but must not win.
	if !view.Succeed(second) {
		t.Fatalf("expected latest ticket to be applied")
	}

	if view.Fail(first, "slow response") {
		t.Fatalf("stale ticket must be dropped")
	}

	if view.State() != StateSucceeded {
		t.Fatalf("expected succeeded after stale drop, got %s", view.State())
	}

	if view.Err() != "" {
		t.Fatalf("stale failure must not record a message, got %q", view.Err())
	}
}

func TestViewStaleSuccessDroppedWhileLoading(t *testing.T) {
	t.Parallel()

	view := NewView("dashboard")

	first := view.Begin()
	view.Begin()

	if view.Succeed(first) {
		t.Fatalf("superseded ticket must be dropped")
	}

	if view.State() != StateLoading {
		t.Fatalf("expected view still loading, got %s", view.State())
	}
}

func TestViewReset(t *testing.T) {
	t.Parallel()

	view := NewView("upload")
	view.Fail(view.Begin(), "boom")

	view.Reset()

	if view.State() != StateIdle || view.Err() != "" {
		t.Fatalf("expected idle after reset, got %s %q", view.State(), view.Err())
	}
}

func TestBusySet(t *testing.T) {
	t.Parallel()

	busy := NewBusySet()

	if !busy.Add("c1") {
		t.Fatalf("expected first add to succeed")
	}

	if busy.Add("c1") {
		t.Fatalf("expected second add for the same id to fail")
	}

	if !busy.Contains("c1") || busy.Len() != 1 {
		t.Fatalf("expected c1 to be busy")
	}

	busy.Release("c1")

	if busy.Contains("c1") || busy.Len() != 0 {
		t.Fatalf("expected c1 to be released")
	}

	if !busy.Add("c1") {
		t.Fatalf("expected add to succeed after release")
	}
}
