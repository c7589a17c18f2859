package input

import "testing"

func TestPromptMatchingCommands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "no_slash", input: "goto", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "slash_only", input: "/", want: len(Commands)},
		{name: "full", input: "/goto", want: 1},
		{name: "prefix", input: "/t", want: 2},
		{name: "case_insensitive", input: "/AUTO", want: 1},
		{name: "with_space", input: "/goto x", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromptMatchingCommands(tt.input, Commands)
			if len(got) != tt.want {
				t.Fatalf("matches = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestPromptAutocomplete(t *testing.T) {
	value, ok := PromptAutocomplete("/te", Commands)
	if !ok {
		t.Fatal("expected autocomplete")
	}
	if value != "/template " {
		t.Fatalf("autocomplete = %q, want %q", value, "/template ")
	}

	if _, ok := PromptAutocomplete("/zzz", Commands); ok {
		t.Fatal("expected no autocomplete")
	}
}

func TestParsePrompt(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantArgs string
	}{
		{line: "/goto next friday", wantName: "/goto", wantArgs: "next friday"},
		{line: "  /TZ   Asia/Manila ", wantName: "/tz", wantArgs: "Asia/Manila"},
		{line: "/clear", wantName: "/clear", wantArgs: ""},
		{line: "standup", wantName: "", wantArgs: "standup"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, args := ParsePrompt(tt.line)
			if name != tt.wantName || args != tt.wantArgs {
				t.Fatalf("ParsePrompt(%q) = (%q, %q), want (%q, %q)", tt.line, name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}
