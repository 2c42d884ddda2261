package corridor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMaskDeterministic(t *testing.T) {
	a := BuildMask(NopContext(), 32, 32, 50, 123)
	b := BuildMask(NopContext(), 32, 32, 50, 123)
	require.Equal(t, a, b, "same parameters must produce the same mask")
}

func TestBuildMaskApproximatesFullness(t *testing.T) {
	width, length := 40, 40
	mask := BuildMask(NopContext(), width, length, 50, 9)
	n := width * length
	filled := countTrue(mask)

	// Dilation passes push actual fill above the raw target; just check it
	// is in a sane band around the requested fullness.
	if filled < n/10 {
		t.Fatalf("filled=%d of %d cells, expected meaningfully more than 10%%", filled, n)
	}
	if filled > n {
		t.Fatalf("filled=%d exceeds total cells %d", filled, n)
	}
}

func TestBuildMaskSingleComponent(t *testing.T) {
	width, length := 24, 24
	mask := BuildMask(NopContext(), width, length, 40, 55)

	components := 0
	visited := make([]bool, width*length)
	var stack []int
	for start := 0; start < len(mask); start++ {
		if !mask[start] || visited[start] {
			continue
		}
		components++
		stack = append(stack[:0], start)
		visited[start] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cx, cy := cur%width, cur/width
			for _, off := range maskOffsets4 {
				nx, ny := cx+off[0], cy+off[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= length {
					continue
				}
				ni := ny*width + nx
				if mask[ni] && !visited[ni] {
					visited[ni] = true
					stack = append(stack, ni)
				}
			}
		}
	}
	if components != 1 {
		t.Fatalf("mask has %d connected components, want 1", components)
	}
}

func TestClampFullness(t *testing.T) {
	ttable := []struct {
		in, want int32
	}{
		{-5, 0}, {0, 0}, {50, 50}, {100, 100}, {150, 100},
	}
	for _, tt := range ttable {
		if got := clampFullness(tt.in); got != tt.want {
			t.Fatalf("clampFullness(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
