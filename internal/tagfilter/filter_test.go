package tagfilter

import "testing"

func TestFilter_Matches(t *testing.T) {
	cases := []struct {
		name  string
		good  []string
		bad   []string
		anyOf bool
		tags  []string
		want  bool
	}{
		{"all present", []string{"a", "b"}, nil, false, []string{"b", "a", "c"}, true},
		{"one missing", []string{"a", "b"}, nil, false, []string{"a"}, false},
		{"any mode one present", []string{"a", "b"}, nil, true, []string{"b"}, true},
		{"any mode none present", []string{"a", "b"}, nil, true, []string{"c"}, false},
		{"bad present", []string{"a"}, []string{"x"}, false, []string{"a", "x"}, false},
		{"bad absent", []string{"a"}, []string{"x"}, false, []string{"a"}, true},
		{"empty query", nil, nil, false, []string{"a"}, true},
		{"empty tag never matches", []string{""}, nil, false, []string{"a"}, false},
		{"literal compare", []string{"Project"}, nil, false, []string{"project"}, false},
		{"no tags", []string{"a"}, nil, false, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := New(tc.good, tc.bad, tc.anyOf)
			if got := f.Matches(tc.tags); got != tc.want {
				t.Errorf("Matches(%v) = %v, want %v", tc.tags, got, tc.want)
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	good := []string{"a"}
	f := New(good, nil, false)
	good[0] = "z"
	if !f.Matches([]string{"a"}) {
		t.Error("filter should not alias caller's slice")
	}
}
