package render

import (
	"strings"
	"testing"

	"cgol/internal/core"
)

func TestWriteText(t *testing.T) {
	g := core.NewGrid(4, 3)
	g.Set(1, 1, true)
	g.Set(1, 2, true)

	var sb strings.Builder
	if err := WriteText(&sb, g); err != nil {
		t.Fatal(err)
	}
	want := "....\n.##.\n....\n"
	if sb.String() != want {
		t.Fatalf("WriteText =\n%s\nwant\n%s", sb.String(), want)
	}
}
