package application

import (
	"errors"
	"testing"

	"linkdir/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "Go Blog",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "categoryID",
			value:     "",
			wantErr:   true,
			wantMsg:   "categoryID: category ID is required",
		},
		{
			name:      "whitespace only",
			fieldName: "id",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "id: ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
				}
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"https", "https://go.dev/blog", false},
		{"http", "http://example.com", false},
		{"empty", "", true},
		{"relative", "/blog", true},
		{"javascript", "javascript:alert(1)", true},
		{"file", "file:///etc/passwd", true},
		{"garbage", "::::", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL("url", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeLinks(t *testing.T) {
	links := []domain.Link{
		{ID: "a", Name: "A"},
		{ID: "", Name: "no id"},
		{ID: "b", Name: "B"},
		{ID: "a", Name: "duplicate"},
		{ID: "c"}, // missing name is still kept
	}

	kept, problems := SanitizeLinks(links)

	if len(kept) != 3 {
		t.Fatalf("kept %d links, want 3", len(kept))
	}
	for i, want := range []string{"a", "b", "c"} {
		if kept[i].ID != want {
			t.Errorf("kept[%d].ID = %s, want %s", i, kept[i].ID, want)
		}
	}
	if kept[0].Name != "A" {
		t.Errorf("first occurrence should win, got %q", kept[0].Name)
	}

	if len(problems) != 2 {
		t.Fatalf("got %d problems, want 2", len(problems))
	}
	for _, p := range problems {
		if !errors.Is(p, ErrInvalidDataset) {
			t.Errorf("problem %v should match ErrInvalidDataset", p)
		}
	}

	var recErr *RecordError
	if !errors.As(problems[1], &recErr) || recErr.Index != 3 || recErr.ID != "a" {
		t.Errorf("unexpected second problem: %v", problems[1])
	}
}

func TestSanitizeCategories(t *testing.T) {
	kept, problems := SanitizeCategories([]domain.Category{
		{ID: "tools", Name: "Tools"},
		{ID: "tools", Name: "Again"},
		{ID: " ", Name: "Blank"},
	})

	if len(kept) != 1 || kept[0].Name != "Tools" {
		t.Errorf("kept = %+v, want only the first tools category", kept)
	}
	if len(problems) != 2 {
		t.Errorf("got %d problems, want 2", len(problems))
	}
}

func TestFormatError_Is(t *testing.T) {
	err := &FormatError{Path: "links.toml", Format: ".toml"}

	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Error("FormatError should match ErrUnsupportedFormat")
	}
	if err.Error() != `cannot read links.toml: unsupported format ".toml"` {
		t.Errorf("Error() = %q", err.Error())
	}
}
