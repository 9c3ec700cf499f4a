// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "1 Million Swaps Completed", "1-million-swaps-completed"},
		{"punctuation stripped", "Carbon Offset Report: Q2 2024", "carbon-offset-report-q2-2024"},
		{"currency and symbols", "Swap Station Closes $10M Series A Funding Round", "swap-station-closes-10m-series-a-funding-round"},
		{"percent sign", "Solar Integration Hits 90%", "solar-integration-hits-90"},
		{"leading and trailing spaces", "  Kenya Expansion Plans Finalized  ", "kenya-expansion-plans-finalized"},
		{"consecutive separators collapse", "AI --- Driven  Monitoring", "ai-driven-monitoring"},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
