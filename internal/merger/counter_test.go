package merger

import "testing"

func TestVoteCounterWinner(t *testing.T) {
	tests := []struct {
		name     string
		votes    []string
		expected string
	}{
		{"Clear majority", []string{"123 Main St", "123 Main St", "123 Main Street"}, "123 Main St"},
		{"Tie goes to first seen", []string{"A", "B", "B", "A"}, "A"},
		{"Later value overtakes", []string{"A", "B", "B"}, "B"},
		{"Empty votes ignored", []string{"", "", "X", ""}, "X"},
		{"Nothing counted", []string{"", ""}, ""},
		{"No votes", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newVoteCounter()
			for _, v := range tt.votes {
				c.Add(v)
			}
			if got := c.Winner(); got != tt.expected {
				t.Errorf("Winner() = %q, want %q", got, tt.expected)
			}
		})
	}
}
