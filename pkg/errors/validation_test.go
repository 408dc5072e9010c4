package errors

import (
	"testing"
)

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"value", "jar", false},
		{"padded value", "  jar ", false},
		{"empty", "", true},
		{"whitespace", " \t\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank("id", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NotBlank(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeValidation) {
				t.Errorf("NotBlank(%q) code = %v, want %v", tt.value, GetCode(err), ErrCodeValidation)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain", "My App", false},
		{"empty", "", false},
		{"tab and newline", "My\tApp\n", false},
		{"unicode", "Café Ünïcode", false},
		{"start of heading", "App\x01One", true},
		{"null byte", "App\x00", true},
		{"escape", "\x1b[31mApp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText("project name", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateText(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeValidation) {
				t.Errorf("ValidateText(%q) code = %v, want %v", tt.value, GetCode(err), ErrCodeValidation)
			}
		})
	}
}

func TestValidateModuleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"root", "", false},
		{"simple", "core", false},
		{"dashed", "my-module", false},
		{"nested", "services/api", false},

		{"absolute", "/etc", true},
		{"traversal", "../outside", true},
		{"backslash", "a\\b", true},
		{"control char", "a\x01b", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModuleName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateModuleName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "pom.xml", false},
		{"valid nested", "core/pom.xml", false},
		{"valid deep", "core/src/main/resources/log4j.properties", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "../pom.xml", true},
		{"traversal middle", "core/../../pom.xml", true},
		{"backslash", "core\\pom.xml", true},
		{"null byte", "pom\x00.xml", true},
		{"too long", string(make([]byte, 600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
