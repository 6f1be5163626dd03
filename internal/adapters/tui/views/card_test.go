package views

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"linkdir/internal/domain"
)

func sampleLink() domain.Link {
	return domain.Link{
		ID:           "go",
		Name:         "Go",
		Description:  "The Go programming language",
		URL:          "https://go.dev",
		CategoryID:   "dev",
		CategoryName: "Development",
		Rating:       4.5,
	}
}

func TestRenderStars(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   string
	}{
		{"valid", 4.5, "⭐ 4.5"},
		{"integer", 5, "⭐ 5.0"},
		{"rounded", 3.14159, "⭐ 3.1"},
		{"invalid", math.NaN(), "⭐ 0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := sampleLink()
			l.Rating = tt.rating
			if got := ansi.Strip(RenderStars(l)); got != tt.want {
				t.Errorf("RenderStars() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCard_Content(t *testing.T) {
	out := ansi.Strip(RenderCard(sampleLink(), 40, false, true))

	for _, want := range []string{"Go", "⭐ 4.5", "The Go programming language", "Development", "Visit"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCard_FixedSize(t *testing.T) {
	long := sampleLink()
	long.Name = strings.Repeat("Very long name ", 10)
	long.Description = strings.Repeat("A description that keeps going and going. ", 10)

	short := sampleLink()
	short.Description = ""

	for name, l := range map[string]domain.Link{"long": long, "short": short} {
		for _, shown := range []bool{true, false} {
			card := RenderCard(l, 40, false, shown)
			if h := lipgloss.Height(card); h != CardHeight {
				t.Errorf("%s (shown=%v): height = %d, want %d", name, shown, h, CardHeight)
			}
			if w := lipgloss.Width(card); w != 40 {
				t.Errorf("%s (shown=%v): width = %d, want 40", name, shown, w)
			}
		}
	}
}

func TestRenderCard_ClampsDescription(t *testing.T) {
	l := sampleLink()
	l.Description = strings.Repeat("word ", 60)

	out := ansi.Strip(RenderCard(l, 40, false, true))

	if !strings.Contains(out, "…") {
		t.Errorf("clamped description should end with an ellipsis:\n%s", out)
	}
}

func TestRenderCard_HiddenIsEmpty(t *testing.T) {
	out := ansi.Strip(RenderCard(sampleLink(), 40, false, false))

	if strings.Contains(out, "Go") || strings.Contains(out, "⭐") {
		t.Errorf("hidden card should not show content:\n%s", out)
	}
}

func TestClampDescription(t *testing.T) {
	lines := clampDescription("", 20)
	if len(lines) != 2 || lines[0] != "" || lines[1] != "" {
		t.Errorf("empty description should give two blank lines, got %q", lines)
	}

	lines = clampDescription("one two three four five six seven eight nine ten eleven twelve", 12)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, l := range lines {
		if w := lipgloss.Width(l); w > 12 {
			t.Errorf("line %q is %d wide, want <= 12", ansi.Strip(l), w)
		}
	}
}
