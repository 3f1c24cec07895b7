package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wictorwilen/cocogen-sub001/render"
)

func TestAlign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lists    [][]string
		expected [][]string
	}{
		{
			name:  "empty singleton and long",
			lists: [][]string{{}, {"x"}, {"a", "b", "c"}},
			expected: [][]string{
				{"", "x", "a"},
				{"", "x", "b"},
				{"", "x", "c"},
			},
		},
		{
			name:  "singleton broadcasts",
			lists: [][]string{{"only"}, {"1", "2"}},
			expected: [][]string{
				{"only", "1"},
				{"only", "2"},
			},
		},
		{
			name:  "short list pads",
			lists: [][]string{{"a", "b"}, {"p", "q", "r"}},
			expected: [][]string{
				{"a", "p"},
				{"b", "q"},
				{"", "r"},
			},
		},
		{
			name:     "all empty collapses to absent",
			lists:    [][]string{{}, {}},
			expected: nil,
		},
		{
			name:     "equal lengths pass through",
			lists:    [][]string{{"a", "b"}, {"1", "2"}},
			expected: [][]string{{"a", "1"}, {"b", "2"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := render.Align(tt.lists)

			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Align mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
