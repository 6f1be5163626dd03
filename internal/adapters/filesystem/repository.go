package filesystem

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"linkdir/internal/application"
	"linkdir/internal/domain"
	"linkdir/internal/ports"
)

//go:embed default_links.yaml
var defaultDataset []byte

// Format is a dataset file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", &application.FormatError{Path: path, Format: strings.TrimPrefix(ext, ".")}
	}
}

// Repository implements ports.LinkSource over a YAML or JSON file
type Repository struct {
	path   string
	logger *zap.Logger
}

// Ensure Repository implements LinkSource
var _ ports.LinkSource = (*Repository)(nil)

// NewRepository creates a file-backed source. An empty path reads the
// dataset compiled into the binary.
func NewRepository(path string, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{path: path, logger: logger}
}

// Path returns the file the repository reads, or "" for the embedded dataset
func (r *Repository) Path() string {
	return r.path
}

// Load reads and decodes the dataset
func (r *Repository) Load() (domain.Dataset, error) {
	if r.path == "" {
		return r.decode("embedded", defaultDataset, FormatYAML)
	}

	format, err := FormatFor(r.path)
	if err != nil {
		return domain.Dataset{}, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to read dataset: %w", err)
	}

	return r.decode(r.path, data, format)
}

func (r *Repository) decode(name string, data []byte, format Format) (domain.Dataset, error) {
	var doc document
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return domain.Dataset{}, &application.FormatError{Path: name, Format: string(format)}
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: %s: %v", application.ErrInvalidDataset, name, err)
	}

	categories := make([]domain.Category, len(doc.Categories))
	for i, c := range doc.Categories {
		categories[i] = domain.Category{ID: strings.TrimSpace(c.ID), Name: c.Name}
	}

	links := make([]domain.Link, len(doc.Links))
	for i, rec := range doc.Links {
		l, ok := rec.toDomain()
		if !ok {
			r.logger.Warn("ignoring malformed date",
				zap.String("source", name),
				zap.String("id", rec.ID),
				zap.String("dateAdded", rec.DateAdded))
		}
		links[i] = l
	}

	categories, catProblems := application.SanitizeCategories(categories)
	links, linkProblems := application.SanitizeLinks(links)
	for _, p := range append(catProblems, linkProblems...) {
		r.logDropped(name, p)
	}

	ds := domain.NewDataset(links, categories)
	r.logger.Debug("dataset loaded",
		zap.String("source", name),
		zap.Int("links", len(ds.Links)),
		zap.Int("categories", len(ds.Categories)))

	return ds, nil
}

func (r *Repository) logDropped(source string, problem error) {
	fields := []zap.Field{zap.String("source", source), zap.Error(problem)}
	var rec *application.RecordError
	if errors.As(problem, &rec) {
		fields = append(fields, zap.Int("index", rec.Index))
	}
	r.logger.Warn("dropped record", fields...)
}

// Encode writes ds to w in the given format
func Encode(w io.Writer, ds domain.Dataset, format Format) error {
	doc := fromDomain(ds)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode dataset: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode dataset: %w", err)
		}
		return nil
	default:
		return &application.FormatError{Path: "output", Format: string(format)}
	}
}
