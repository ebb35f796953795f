package main

import "testing"

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantMessage string
		wantStatus  int
	}{
		{
			name:        "no args uses defaults",
			args:        nil,
			wantMessage: "prog_b high 872616683",
			wantStatus:  45,
		},
		{
			name:        "text arg with default seed",
			args:        []string{"x"},
			wantMessage: "prog_b high 872615675",
			wantStatus:  67,
		},
		{
			name:        "text and seed args",
			args:        []string{"x", "500"},
			wantMessage: "prog_b low 1099943317",
			wantStatus:  147,
		},
		{
			name:        "malformed seed coerces to zero",
			args:        []string{"beta-demo", "abc"},
			wantMessage: "prog_b high 163418",
			wantStatus:  216,
		},
		{
			name:        "extra args are ignored",
			args:        []string{"beta-demo", "123", "junk"},
			wantMessage: "prog_b high 872616683",
			wantStatus:  45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(tt.args)
			if got.Message != tt.wantMessage {
				t.Errorf("run(%v).Message = %q, want %q", tt.args, got.Message, tt.wantMessage)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("run(%v).Status = %d, want %d", tt.args, got.Status, tt.wantStatus)
			}
		})
	}
}
