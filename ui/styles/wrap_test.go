package styles

import "testing"

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		width    int
		input    string
		expected string
	}{
		{name: "fits", width: 20, input: "short line", expected: "short line"},
		{name: "breaks at words", width: 10, input: "one two three four", expected: "one two\nthree four"},
		{name: "keeps line breaks", width: 10, input: "a\nb", expected: "a\nb"},
		{name: "long word kept", width: 4, input: "extraordinary word", expected: "extraordinary\nword"},
		{name: "no width", width: 0, input: "one two", expected: "one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.width, tt.input); got != tt.expected {
				t.Errorf("Wrap(%d, %q) = %q, expected %q", tt.width, tt.input, got, tt.expected)
			}
		})
	}
}
