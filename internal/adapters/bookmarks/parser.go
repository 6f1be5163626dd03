// Package bookmarks reads Netscape bookmark files, the HTML export format
// shared by Firefox, Chrome, Safari and most bookmark managers.
package bookmarks

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"linkdir/internal/application"
	"linkdir/internal/domain"
	"linkdir/internal/ports"
)

// Unsorted is the category given to bookmarks outside any folder
var Unsorted = domain.Category{ID: "unsorted", Name: "Unsorted"}

// Result is a parsed bookmark file
type Result struct {
	Dataset domain.Dataset
	Skipped int // Anchors without an http(s) URL
}

// Parse reads a bookmark export. Each folder becomes a category named after
// its heading; a bookmark belongs to its innermost folder. Link IDs are
// derived from the URL, so importing the same file twice upserts.
func Parse(r io.Reader) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", application.ErrInvalidDataset, err)
	}

	res := &Result{}
	var links []domain.Link
	var categories []domain.Category
	seenCategory := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if application.ValidateURL("url", href) != nil {
			res.Skipped++
			return
		}

		cat := folderOf(a)
		if !seenCategory[cat.ID] {
			seenCategory[cat.ID] = true
			categories = append(categories, cat)
		}

		name := strings.TrimSpace(a.Text())
		if name == "" {
			name = href
		}

		links = append(links, domain.Link{
			ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte(href)).String(),
			Name:        name,
			Description: descriptionOf(a),
			URL:         href,
			CategoryID:  cat.ID,
			Rating:      math.NaN(),
			DateAdded:   parseAddDate(a),
		})
	})

	res.Dataset = domain.NewDataset(links, categories)
	return res, nil
}

// folderOf returns the category of the innermost folder holding a
func folderOf(a *goquery.Selection) domain.Category {
	dl := a.ParentsFiltered("dl").First()
	heading := dl.PrevAllFiltered("h3").First()
	if heading.Length() == 0 && dl.Parent().Is("dd") {
		// Folder with a description: <DT><H3>..</H3><DD>..<DL>
		heading = dl.Parent().Prev().ChildrenFiltered("h3").First()
	}
	name := strings.TrimSpace(heading.Text())
	if name == "" {
		return Unsorted
	}
	id := Slug(name)
	if id == "" {
		return Unsorted
	}
	return domain.Category{ID: id, Name: name}
}

// descriptionOf returns the <DD> text that follows the bookmark's <DT>
func descriptionOf(a *goquery.Selection) string {
	next := a.Closest("dt").Next()
	if !next.Is("dd") {
		return ""
	}
	// A folder description <DD> also holds the folder's <DL>
	text := next.Contents().First().Text()
	return strings.TrimSpace(text)
}

func parseAddDate(a *goquery.Selection) time.Time {
	raw, ok := a.Attr("add_date")
	if !ok {
		return time.Time{}
	}
	secs, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || secs <= 0 {
		return time.Time{}
	}
	// Some browsers export microseconds
	if secs > 1e11 {
		secs /= 1e6
	}
	return time.Unix(secs, 0).UTC()
}

// Slug turns a folder name into a category ID ("Diseño Web" -> "diseno-web")
func Slug(name string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Repository implements ports.LinkSource over a bookmark file
type Repository struct {
	path   string
	logger *zap.Logger
}

// Ensure Repository implements LinkSource
var _ ports.LinkSource = (*Repository)(nil)

// NewRepository creates a source reading the bookmark file at path
func NewRepository(path string, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{path: path, logger: logger}
}

// Load parses the bookmark file
func (r *Repository) Load() (domain.Dataset, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to open bookmarks: %w", err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return domain.Dataset{}, err
	}

	links, problems := application.SanitizeLinks(res.Dataset.Links)
	for _, p := range problems {
		r.logger.Debug("dropped bookmark", zap.String("source", r.path), zap.Error(p))
	}
	if res.Skipped > 0 {
		r.logger.Info("skipped bookmarks without an http(s) URL",
			zap.String("source", r.path), zap.Int("count", res.Skipped))
	}

	return domain.NewDataset(links, res.Dataset.Categories), nil
}
