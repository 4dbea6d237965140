package config

import (
	"testing"
)

func TestLoadStatusMessages(t *testing.T) {
	loader := NewConfigLoader()
	messages, err := loader.LoadStatusMessages()
	if err != nil {
		t.Fatalf("LoadStatusMessages() returned error: %v", err)
	}
	if len(messages) == 0 {
		t.Fatal("LoadStatusMessages() returned no entries")
	}
	if _, ok := messages[401]; !ok {
		t.Error("expected a display string for status 401")
	}
	if _, ok := messages[409]; !ok {
		t.Error("expected a display string for status 409")
	}
}

func TestStatusMessageFallback(t *testing.T) {
	if err := InitializeConfigLoader(); err != nil {
		t.Fatalf("InitializeConfigLoader() returned error: %v", err)
	}

	tests := []struct {
		name string
		code int
		want string
	}{
		{
			name: "known code uses the table",
			code: 409,
			want: "You have already contributed to this group.",
		},
		{
			name: "unknown code falls back to generic message",
			code: 418,
			want: "Request failed with status 418.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusMessage(tt.code)
			if got != tt.want {
				t.Errorf("StatusMessage(%d) = %q; want %q", tt.code, got, tt.want)
			}
		})
	}
}
