package encode

import (
	"fmt"
	"testing"

	"github.com/kr/pretty"
	"github.com/pmezard/go-difflib/difflib"
)

// treeDiff renders a pretty-printed unified diff between two Trees, for use
// in test failure messages where cmp.Diff's default field-by-field output is
// too terse to spot which leaf actually mismatched.
func treeDiff(want, got Tree) (string, error) {
	diffl := difflib.UnifiedDiff{
		A:        difflib.SplitLines(fmt.Sprintf("%# v", pretty.Formatter(got))),
		B:        difflib.SplitLines(fmt.Sprintf("%# v", pretty.Formatter(want))),
		FromFile: "got",
		ToFile:   "want",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diffl)
}

func TestTreeDiffReportsMismatch(t *testing.T) {
	want := Tree{Kind: TreeLeaf, Leaf: Leaf{Kind: KindInt64, I: 1}}
	got := Tree{Kind: TreeLeaf, Leaf: Leaf{Kind: KindInt64, I: 2}}

	diff, err := treeDiff(want, got)
	if err != nil {
		t.Fatalf("treeDiff: %v", err)
	}
	if diff == "" {
		t.Error("treeDiff must report a non-empty diff for mismatched trees")
	}
}

func TestTreeDiffEmptyForEqualTrees(t *testing.T) {
	tree := Tree{Kind: TreeLeaf, Leaf: Leaf{Kind: KindString, S: "x"}}
	diff, err := treeDiff(tree, tree)
	if err != nil {
		t.Fatalf("treeDiff: %v", err)
	}
	if diff != "" {
		t.Errorf("treeDiff must be empty for identical trees, got:\n%s", diff)
	}
}
