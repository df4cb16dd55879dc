package template

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/form"
)

// templateFile is the on-disk document shape: a mapping of template key to
// name and fields, in YAML or JSON.
type templateFile struct {
	Templates map[string]templateEntry `json:"templates" yaml:"templates"`
}

type templateEntry struct {
	Name   string      `json:"name" yaml:"name"`
	Fields []fieldSeed `json:"fields" yaml:"fields"`
}

type fieldSeed struct {
	ID          string   `json:"id" yaml:"id"`
	Type        string   `json:"type" yaml:"type"`
	Label       string   `json:"label" yaml:"label"`
	Required    bool     `json:"required" yaml:"required"`
	Placeholder string   `json:"placeholder" yaml:"placeholder"`
	HelpText    string   `json:"helpText" yaml:"helpText"`
	Options     []string `json:"options" yaml:"options"`
}

// LoadFS walks the provided filesystem and parses every .yaml/.yml/.json
// template document into seed templates, suitable for WithSeeds. A nil fsys
// yields no seeds. Duplicate keys across files are an error, as is a field
// type outside the catalog.
func LoadFS(fsys fs.FS) ([]Template, error) {
	if fsys == nil {
		return nil, nil
	}

	var seeds []Template
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTemplateFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("template: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawKey, tplEntry := range doc.Templates {
			key := Slugify(rawKey)
			if key == "" {
				return fmt.Errorf("template: file %s defines an empty key", path)
			}
			if prior, dup := seen[key]; dup {
				return fmt.Errorf("template: duplicate key %q (files %s, %s)", key, prior, path)
			}
			seen[key] = path

			name := strings.TrimSpace(tplEntry.Name)
			if name == "" {
				return fmt.Errorf("template: key %q in %s has no name", key, path)
			}

			fields, err := convertSeeds(tplEntry.Fields, key, path)
			if err != nil {
				return err
			}
			seeds = append(seeds, Template{Key: key, Name: name, Fields: fields})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeds, nil
}

func convertSeeds(raw []fieldSeed, key, path string) ([]form.Field, error) {
	fields := make([]form.Field, 0, len(raw))
	for _, seed := range raw {
		t := form.FieldType(seed.Type)
		info, err := form.Lookup(t)
		if err != nil {
			return nil, fmt.Errorf("template: key %q in %s: %w", key, path, err)
		}
		field := form.Field{
			ID:          seed.ID,
			Type:        t,
			Label:       seed.Label,
			Required:    seed.Required,
			Placeholder: seed.Placeholder,
			HelpText:    seed.HelpText,
			Options:     seed.Options,
		}
		if field.Label == "" {
			field.Label = info.DefaultLabel
		}
		if form.HasOptions(t) && field.Options == nil {
			field.Options = info.DefaultOptions
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, path string) (templateFile, error) {
	var doc templateFile
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("template: parse %s: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("template: parse %s: %w", path, err)
	}
	return doc, nil
}
