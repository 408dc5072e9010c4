package paths

import "testing"

func TestQualifiedModule(t *testing.T) {
	tests := []struct {
		focus  string
		module string
		want   string
	}{
		{"", "", ""},
		{"", "core", "core"},
		{"", " core/ ", "core"},
		{"services", "", ""},
		{"services", "api", "services/api"},
		{"/services/", "api", "services/api"},
	}

	for _, tt := range tests {
		t.Run(tt.focus+"|"+tt.module, func(t *testing.T) {
			r := New(tt.focus)
			if got := r.QualifiedModule(tt.module); got != tt.want {
				t.Errorf("QualifiedModule(%q) with focus %q = %q, want %q", tt.module, tt.focus, got, tt.want)
			}
		})
	}
}

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		focus  string
		module string
		want   string
	}{
		{"", "", "pom.xml"},
		{"", "my-module", "my-module/pom.xml"},
		{"services", "api", "services/api/pom.xml"},
		{"services", "", "pom.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := New(tt.focus).ResolveIdentifier(tt.module, "pom.xml"); got != tt.want {
				t.Errorf("ResolveIdentifier(%q) = %q, want %q", tt.module, got, tt.want)
			}
		})
	}
}

func TestResolveFocused(t *testing.T) {
	tests := []struct {
		focus string
		kind  Kind
		want  string
	}{
		{"", SrcMainResources, "src/main/resources/log4j.properties"},
		{"core", SrcMainResources, "core/src/main/resources/log4j.properties"},
		{"core", Root, "core/log4j.properties"},
		{"", Root, "log4j.properties"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := New(tt.focus).ResolveFocused(tt.kind, "log4j.properties"); got != tt.want {
				t.Errorf("ResolveFocused(%q) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}
