package bench

import (
	"strings"
	"testing"
)

func TestRunCountsAllOps(t *testing.T) {
	results := Run(2, 1_000, 64)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Ops != 2_000 {
			t.Errorf("%s: ops = %d, want 2000", r.Name, r.Ops)
		}
		if r.Elapsed <= 0 {
			t.Errorf("%s: non-positive elapsed %v", r.Name, r.Elapsed)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	var sb strings.Builder
	err := RenderHTML(&sb, []Result{
		{Name: "a", Ops: 100},
		{Name: "b", Ops: 200},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "append throughput") {
		t.Error("report missing title")
	}
}
