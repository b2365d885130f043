package quiz

import (
	"reflect"
	"testing"
	"time"
)

func TestPageWindow(t *testing.T) {
	cases := []struct {
		current, pages int
		want           []int
	}{
		// Few pages: show all.
		{1, 1, []int{1}},
		{2, 3, []int{1, 2, 3}},
		{5, 5, []int{1, 2, 3, 4, 5}},
		// Near the start.
		{1, 12, []int{1, 2, 3, 4, 5}},
		{3, 12, []int{1, 2, 3, 4, 5}},
		// Near the end.
		{10, 12, []int{8, 9, 10, 11, 12}},
		{12, 12, []int{8, 9, 10, 11, 12}},
		// Middle: centered.
		{6, 12, []int{4, 5, 6, 7, 8}},
		{4, 12, []int{2, 3, 4, 5, 6}},
	}

	for _, c := range cases {
		got := PageWindow(c.current, c.pages)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("PageWindow(%d, %d) = %v, want %v", c.current, c.pages, got, c.want)
		}
	}
}

func TestPageWindowDegenerate(t *testing.T) {
	if got := PageWindow(1, 0); got != nil {
		t.Errorf("expected nil for zero pages, got %v", got)
	}
}

func TestPageWindowIdempotent(t *testing.T) {
	first := PageWindow(6, 12)
	second := PageWindow(6, 12)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("window not stable: %v vs %v", first, second)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m 0s"},
		{125 * time.Second, "2m 5s"},
		{0, "0s"},
	}

	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
