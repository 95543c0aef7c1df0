package pipeline

import (
	"testing"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if !opts.Wants(FormatSVG) {
		t.Error("SVG should always be requested")
	}
	if opts.Wants(FormatPNG) {
		t.Error("PNG should not be requested by default")
	}
	if opts.PNGScale != DefaultPNGScale {
		t.Errorf("PNGScale = %v, want %v", opts.PNGScale, DefaultPNGScale)
	}

	opts = Options{Formats: []string{FormatPNG}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want svg first", opts.Formats)
	}

	opts = Options{PNGScale: -1}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("negative scale should fail")
	}
}

func TestDefaultPath(t *testing.T) {
	tests := map[string]string{
		"specify":  "public/blog/images/ai-sdlc/specify-phase.svg",
		"maintain": "public/blog/images/ai-sdlc/maintain-phase.svg",
	}
	for name, want := range tests {
		if got := DefaultPath(name); got != want {
			t.Errorf("DefaultPath(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestWithExt(t *testing.T) {
	tests := []struct{ in, format, want string }{
		{"out/a.svg", "png", "out/a.png"},
		{"noext", "png", "noext.png"},
		{"dir.v2/file.svg", "png", "dir.v2/file.png"},
	}
	for _, tt := range tests {
		if got := withExt(tt.in, tt.format); got != tt.want {
			t.Errorf("withExt(%q, %q) = %q, want %q", tt.in, tt.format, got, tt.want)
		}
	}
}
