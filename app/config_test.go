package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()

	partial := filepath.Join(tempDir, "partial.conf")
	if err := os.WriteFile(partial, []byte("fontsize = 14.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	full := filepath.Join(tempDir, "full.conf")
	fullBody := "logfile = \"stdout\"\nloglevel = \"debug\"\nfont = \"some.ttf\"\nfontsize = 10.5\n"
	if err := os.WriteFile(full, []byte(fullBody), 0644); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(tempDir, "broken.conf")
	if err := os.WriteFile(broken, []byte("fontsize = [not toml"), 0644); err != nil {
		t.Fatal(err)
	}

	wantPartial := NewConfig()
	wantPartial.FontSize = 14.0

	tests := []struct {
		name    string
		file    string
		want    *Config
		wantErr bool
	}{
		{"no config file", "", NewConfig(), false},
		{"partial config keeps defaults", partial, wantPartial, false},
		{"full config", full, &Config{LogFile: "stdout", LogLevel: "debug", Font: "some.ttf", FontSize: 10.5}, false},
		{"missing file", filepath.Join(tempDir, "no-such.conf"), nil, true},
		{"broken file", broken, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.file)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LoadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
