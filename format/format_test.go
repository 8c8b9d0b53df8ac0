package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "yaml", want: YAMLFormat},
		{in: "y", want: YAMLFormat},
		{in: "json", want: JSONFormat},
		{in: "j", want: JSONFormat},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseFormat(%q): got %v, want ErrBadFormat", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("%s round trip gave %s", f, back)
		}
	}
}

func TestSuffix(t *testing.T) {
	if got := YAMLFormat.Suffix(); got != ".yaml" {
		t.Errorf("yaml suffix %q", got)
	}
	if got := JSONFormat.Suffix(); got != ".json" {
		t.Errorf("json suffix %q", got)
	}
}
