package widget

import (
	"slices"
	"strings"
	"testing"

	"github.com/tinytelemetry/tradeadvance/internal/canvas"
)

func sampleWidgets() map[string]Widget {
	return map[string]Widget{
		"text":         NewText("hello world"),
		"wrapped text": NewText("the quick brown fox jumps").MaxWidth(7),
		"image":        NewImage(" /\\_/\\\n( o.o )\n > ^ <\n"),
		"divider":      NewDivider('-'),
		"vdivider":     NewDivider('|').Vertical(),
		"progress":     NewProgressBar(0.4, '#', '>', '.'),
		"align":        NewAlign(NewText("x")).Horizontal(End).Vertical(Start),
		"border":       NewBorder(NewText("boxed")),
		"padding":      NewPadding(NewText("pad")).All(2),
		"sizedbox":     NewSizedBox(NewText("sized")).Width(3),
		"flexible":     NewFlexible(2, NewText("flex")),
		"column":       NewColumn(NewText("a"), NewFlexible(1, NewText("b")), NewText("c")),
		"row":          NewRow(NewText("left"), NewFlexible(1, NewDivider('=')), NewText("right")),
		"stack":        NewStack(NewText("under"), NewAlign(NewText("over"))),
		"builder":      NewBuilder(func() Widget { return NewText("built") }),
		"button":       NewButton("OK").Selected(true),
	}
}

func assertDims(t *testing.T, c canvas.Canvas, w, h int) {
	t.Helper()
	if len(c) != h {
		t.Fatalf("rows = %d, want %d", len(c), h)
	}
	for y, row := range c {
		if len(row) != w {
			t.Fatalf("len(row %d) = %d, want %d", y, len(row), w)
		}
	}
}

func TestRenderMatchesAllocation(t *testing.T) {
	t.Parallel()

	sizes := [][2]int{{0, 0}, {1, 1}, {3, 2}, {7, 1}, {20, 10}, {Cols, Rows}}
	for name, w := range sampleWidgets() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, sz := range sizes {
				assertDims(t, w.Render(sz[0], sz[1]), sz[0], sz[1])
			}
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	for name, w := range sampleWidgets() {
		first := w.Render(30, 8).String()
		second := w.Render(30, 8).String()
		if first != second {
			t.Fatalf("%s rendered differently on second pass:\n%s\n---\n%s", name, first, second)
		}
	}
}

func TestRenderUIUsesFixedResolution(t *testing.T) {
	t.Parallel()

	out := RenderUI(NewText("hi"))
	lines := strings.Split(out, "\n")
	if len(lines) != Rows {
		t.Fatalf("lines = %d, want %d", len(lines), Rows)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != Cols {
			t.Fatalf("len(line %d) = %d, want %d", i, n, Cols)
		}
	}
	if !strings.HasPrefix(lines[0], "hi ") {
		t.Fatalf("first line = %q, want prefix %q", lines[0], "hi ")
	}
}

func TestRenderUINeverEmitsWipe(t *testing.T) {
	t.Parallel()

	out := RenderUI(NewImage(string([]rune{canvas.Wipe, 'a', canvas.Wipe})))
	if strings.ContainsRune(out, canvas.Wipe) {
		t.Fatalf("output contains the wipe marker")
	}
	if !strings.HasPrefix(out, " a ") {
		t.Fatalf("output = %q, want prefix %q", out[:3], " a ")
	}
}

// Wipe blanks only the layer it is overlaid onto. Once a container has
// composited it, the cell is an ordinary space.
func TestWipeReachesOneLayer(t *testing.T) {
	t.Parallel()

	wipe := string([]rune{canvas.Wipe, canvas.Wipe})
	tests := []struct {
		name string
		top  Widget
		want string
	}{
		{name: "direct child", top: NewImage(wipe), want: "  XX"},
		{name: "inside padding", top: NewPadding(NewImage(wipe)), want: "XXXX"},
		{name: "inside align", top: NewAlign(NewImage(wipe)).Horizontal(Start), want: "XXXX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewStack(NewText("XXXX"), tt.top).Render(4, 1).String()
			if got != tt.want {
				t.Fatalf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlexOf(t *testing.T) {
	t.Parallel()

	if got := FlexOf(NewText("x")); got != 0 {
		t.Fatalf("FlexOf(text) = %d, want 0", got)
	}
	if got := FlexOf(NewFlexible(3, NewText("x"))); got != 3 {
		t.Fatalf("FlexOf(flexible) = %d, want 3", got)
	}
	if got := FlexOf(NewFlexible(-2, NewText("x"))); got != 0 {
		t.Fatalf("FlexOf(negative) = %d, want 0", got)
	}
}

func TestDistribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mins    []int
		weights []int
		alloc   int
		repair  bool
		want    []int
	}{
		{name: "no surplus", mins: []int{4, 6}, weights: []int{0, 1}, alloc: 8, want: []int{4, 6}},
		{name: "single flex", mins: []int{4, 6}, weights: []int{0, 1}, alloc: 20, want: []int{4, 16}},
		{name: "truncation kept", mins: []int{0, 0, 0}, weights: []int{1, 1, 1}, alloc: 10, want: []int{3, 3, 3}},
		{name: "truncation repaired", mins: []int{0, 0, 0}, weights: []int{1, 1, 1}, alloc: 10, repair: true, want: []int{4, 3, 3}},
		{name: "repair without flex", mins: []int{1, 1}, weights: []int{0, 0}, alloc: 5, repair: true, want: []int{2, 2}},
		{name: "weighted", mins: []int{1, 1}, weights: []int{1, 3}, alloc: 10, want: []int{3, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := distribute(tt.mins, tt.weights, tt.alloc, tt.repair)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("distribute() = %v, want %v", got, tt.want)
			}
		})
	}
}
