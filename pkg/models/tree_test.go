package models

import "testing"

func sampleTree() *TreeNode {
	return Dir("proj",
		Dir("backend",
			Dir("app",
				File("main.py"),
				File("models.py"),
			),
			File("requirements.txt"),
		),
		File("README.md"),
	)
}

func TestTreeCountFiles(t *testing.T) {
	t.Parallel()

	if got := sampleTree().CountFiles(); got != 4 {
		t.Errorf("CountFiles() = %d, want 4", got)
	}
	if got := (*TreeNode)(nil).CountFiles(); got != 0 {
		t.Errorf("nil CountFiles() = %d, want 0", got)
	}
}

func TestTreeWalk(t *testing.T) {
	t.Parallel()

	var visited []string
	maxDepth := 0
	sampleTree().Walk(func(n *TreeNode, depth int) bool {
		visited = append(visited, n.Name)
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})

	if len(visited) != 7 {
		t.Errorf("visited %d nodes, want 7: %v", len(visited), visited)
	}
	if visited[0] != "proj" {
		t.Errorf("walk must start at the root, got %q", visited[0])
	}
	if maxDepth != 3 {
		t.Errorf("maxDepth = %d, want 3", maxDepth)
	}
}

func TestTreeWalkEarlyStop(t *testing.T) {
	t.Parallel()

	count := 0
	sampleTree().Walk(func(n *TreeNode, _ int) bool {
		count++
		return n.Name != "app"
	})
	if count != 3 {
		t.Errorf("walk visited %d nodes after stop, want 3", count)
	}
}

func TestBuildResultMerge(t *testing.T) {
	t.Parallel()

	a := BuildResult{Operations: []string{"op1"}, Type: ""}
	a.Merge(BuildResult{Operations: []string{"op2"}, Errors: []string{"e1"}, Type: "fastapi"})

	if len(a.Operations) != 2 || a.Operations[1] != "op2" {
		t.Errorf("Operations = %v", a.Operations)
	}
	if len(a.Errors) != 1 {
		t.Errorf("Errors = %v", a.Errors)
	}
	if a.Type != "fastapi" {
		t.Errorf("empty Type must adopt the merged one, got %q", a.Type)
	}

	a.Merge(BuildResult{Type: "flask"})
	if a.Type != "fastapi" {
		t.Errorf("non-empty Type must be kept, got %q", a.Type)
	}
}
