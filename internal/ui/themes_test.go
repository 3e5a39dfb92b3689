package ui

import (
	"bytes"
	"os"
	"testing"
)

// The theme is process-wide state, so none of these tests run in parallel.

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	tests := []struct {
		name string
		want Theme
	}{
		{"dark", DarkTheme},
		{"light", LightTheme},
		{"none", NoColorTheme},
		{"solarized", DarkTheme},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme(); got != tt.want {
			t.Errorf("SetTheme(%q) selected %q, want %q", tt.name, got.Name, tt.want.Name)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	t.Run("NoColor flag", func(t *testing.T) {
		if ColorEnabled(true, os.Stdout) {
			t.Error("noColor=true must disable colors")
		}
	})

	t.Run("Non-terminal writer", func(t *testing.T) {
		if ColorEnabled(false, &buf) {
			t.Error("a bytes.Buffer is not a terminal")
		}
	})

	t.Run("NO_COLOR environment", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		if ColorEnabled(false, os.Stdout) {
			t.Error("NO_COLOR must disable colors even when empty")
		}
	})

	t.Run("Regular file", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if IsTerminal(f) {
			t.Error("a regular file is not a terminal")
		}
	})
}

func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	SetTheme("dark")
	InitTheme(false, &bytes.Buffer{})
	if GetCurrentTheme() != NoColorTheme {
		t.Error("InitTheme must disable colors for non-terminal output")
	}

	SetTheme("dark")
	InitTheme(true, os.Stdout)
	if GetCurrentTheme() != NoColorTheme {
		t.Error("InitTheme(true) must disable colors")
	}
}

func TestColorFunctions(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	SetCurrentTheme(DarkTheme)
	pairs := map[string][2]string{
		"reset":   {ColorReset(), DarkTheme.Reset},
		"red":     {ColorRed(), DarkTheme.Error},
		"green":   {ColorGreen(), DarkTheme.Success},
		"yellow":  {ColorYellow(), DarkTheme.Warning},
		"blue":    {ColorBlue(), DarkTheme.Primary},
		"magenta": {ColorMagenta(), DarkTheme.Info},
		"cyan":    {ColorCyan(), DarkTheme.Secondary},
		"bold":    {ColorBold(), DarkTheme.Bold},
	}
	for name, p := range pairs {
		if p[0] != p[1] {
			t.Errorf("%s = %q, want %q", name, p[0], p[1])
		}
	}

	SetCurrentTheme(NoColorTheme)
	if ColorRed()+ColorGreen()+ColorReset() != "" {
		t.Error("NoColorTheme must produce no escape codes")
	}
}
