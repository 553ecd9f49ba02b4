package services

import (
	"strings"
	"testing"
)

func TestRenderTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		person   string
		want     string
	}{
		{
			name:     "single placeholder",
			template: "Hi {name}!",
			person:   "Ada",
			want:     "Hi Ada!",
		},
		{
			name:     "multiple placeholders",
			template: "{name}, meet {name}",
			person:   "Bo",
			want:     "Bo, meet Bo",
		},
		{
			name:     "no placeholder is a no-op",
			template: "Hello there",
			person:   "Ada",
			want:     "Hello there",
		},
		{
			name:     "empty template",
			template: "",
			person:   "Ada",
			want:     "",
		},
		{
			name:     "empty name deletes placeholder",
			template: "Hi {name}!",
			person:   "",
			want:     "Hi !",
		},
		{
			name:     "substitution is not recursive",
			template: "Hi {name}!",
			person:   "{name}",
			want:     "Hi {name}!",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RenderTemplate(tt.template, tt.person)
			if got != tt.want {
				t.Fatalf("RenderTemplate(%q, %q) = %q, want %q", tt.template, tt.person, got, tt.want)
			}
		})
	}
}

func TestRenderTemplate_LengthInvariant(t *testing.T) {
	t.Parallel()

	template := "Dear {name}, your slot is ready. Bye {name}."
	person := "Chinwe"

	occurrences := strings.Count(template, "{name}")
	got := RenderTemplate(template, person)

	wantLen := len(template) - len("{name}")*occurrences + len(person)*occurrences
	if len(got) != wantLen {
		t.Fatalf("expected length %d, got %d (%q)", wantLen, len(got), got)
	}
	if strings.Contains(got, "{name}") {
		t.Fatalf("output still contains placeholder: %q", got)
	}
}
