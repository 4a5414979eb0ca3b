package content

import (
	"bytes"
	"cmp"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// Collection file base names.
const (
	FileExperience = "experience"
	FileProjects   = "projects"
	FileSkills     = "skills"
	FileSoftSkills = "soft-skills"
	FileContact    = "contact"
	FileCommands   = "commands"
	FileGeneral    = "general"
)

// extensions in lookup order.
var extensions = []string{".yaml", ".yml", ".json", ".toml"}

// ErrInvalid marks content that parsed but broke a schema rule.
var ErrInvalid = errors.New("invalid content")

// ValidationError pinpoints a schema violation.
type ValidationError struct {
	Collection string
	Index      int
	Field      string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s[%d].%s: %s", e.Collection, e.Index, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Defaults returns the built-in content.
func Defaults() (*Content, error) {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("failed to open built-in content: %w", err)
	}
	return LoadFS(sub)
}

// Load reads the collections in dir. An empty dir means the built-in content.
func Load(dir string) (*Content, error) {
	if dir == "" {
		return Defaults()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads every collection from the root of fsys. Missing files leave
// the collection empty.
func LoadFS(fsys fs.FS) (*Content, error) {
	c := &Content{}

	steps := []func(fs.FS) error{
		func(f fs.FS) error { return readCollection(f, FileExperience, &c.Experience) },
		func(f fs.FS) error { return readCollection(f, FileProjects, &c.Projects) },
		func(f fs.FS) error { return readCollection(f, FileSkills, &c.Skills) },
		func(f fs.FS) error { return readCollection(f, FileSoftSkills, &c.SoftSkills) },
		func(f fs.FS) error { return readCollection(f, FileContact, &c.Contact) },
		func(f fs.FS) error { return readCollection(f, FileCommands, &c.Commands) },
		func(f fs.FS) error { return readCollection(f, FileGeneral, &c.General) },
	}
	for _, step := range steps {
		if err := step(fsys); err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.sort()
	return c, nil
}

// tomlDoc wraps a TOML collection, which must be an [[items]] array.
type tomlDoc[T any] struct {
	Items []T `toml:"items"`
}

func readCollection[T any](fsys fs.FS, name string, out *[]T) error {
	for _, ext := range extensions {
		file := name + ext
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		if err := decode(file, data, out); err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}
		return nil
	}
	return nil
}

func decode[T any](file string, data []byte, out *[]T) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	switch path.Ext(file) {
	case ".json":
		return json.Unmarshal(data, out)
	case ".toml":
		var doc tomlDoc[T]
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return err
		}
		*out = doc.Items
		return nil
	default:
		return yaml.Unmarshal(data, out)
	}
}

// Validate checks required fields and rating ranges.
func (c *Content) Validate() error {
	var errs []error
	bad := func(collection string, i int, field, reason string) {
		errs = append(errs, &ValidationError{Collection: collection, Index: i, Field: field, Reason: reason})
	}
	required := func(collection string, i int, field, value string) {
		if strings.TrimSpace(value) == "" {
			bad(collection, i, field, "is required")
		}
	}

	for i, e := range c.Experience {
		required(FileExperience, i, "title", e.Title)
		required(FileExperience, i, "date", e.Date)
		required(FileExperience, i, "description", e.Description)
	}
	for i, p := range c.Projects {
		required(FileProjects, i, "title", p.Title)
		required(FileProjects, i, "description", p.Description)
		required(FileProjects, i, "github", p.GitHub)
	}
	for i, s := range c.Skills {
		required(FileSkills, i, "category", s.Category)
		for j, k := range s.Knowledges {
			field := fmt.Sprintf("knowledges[%d]", j)
			required(FileSkills, i, field+".name", k.Name)
			if k.Rating < 0 || k.Rating > MaxKnowledgeRating {
				bad(FileSkills, i, field+".rating", fmt.Sprintf("must be between 0 and %d", MaxKnowledgeRating))
			}
		}
	}
	for i, s := range c.SoftSkills {
		required(FileSoftSkills, i, "name", s.Name)
		if s.Rating < 0 || s.Rating > MaxSoftSkillRating {
			bad(FileSoftSkills, i, "rating", fmt.Sprintf("must be between 0 and %d", MaxSoftSkillRating))
		}
	}
	for i, ci := range c.Contact {
		required(FileContact, i, "title", ci.Title)
		required(FileContact, i, "content", ci.Content)
		required(FileContact, i, "link", ci.Link)
	}
	for i, cmd := range c.Commands {
		required(FileCommands, i, "command", cmd.Command)
		if cmd.Command != "" && !strings.HasPrefix(cmd.Command, "/") {
			bad(FileCommands, i, "command", `must start with "/"`)
		}
		switch cmd.Category {
		case CategoryNavigation, CategoryInfo, CategoryUtility, CategorySpecial:
		default:
			bad(FileCommands, i, "category", fmt.Sprintf("unknown category %q", cmd.Category))
		}
	}
	for i, g := range c.General {
		required(FileGeneral, i, "key", g.Key)
		required(FileGeneral, i, "content", g.Content)
	}

	return errors.Join(errs...)
}

func (c *Content) sort() {
	sortByOrder(c.Experience, func(e Experience) *int { return e.Order })
	sortByOrder(c.Projects, func(p Project) *int { return p.Order })
	sortByOrder(c.Skills, func(s SkillCategory) *int { return s.Order })
	sortByOrder(c.SoftSkills, func(s SoftSkill) *int { return s.Order })
	sortByOrder(c.Contact, func(ci ContactItem) *int { return ci.Order })
	sortByOrder(c.Commands, func(cmd Command) *int { return cmd.Order })
}

// sortByOrder puts items with an order first, ascending, and keeps file
// order for ties and for items without one.
func sortByOrder[T any](items []T, order func(T) *int) {
	slices.SortStableFunc(items, func(a, b T) int {
		oa, ob := order(a), order(b)
		switch {
		case oa == nil && ob == nil:
			return 0
		case oa == nil:
			return 1
		case ob == nil:
			return -1
		default:
			return cmp.Compare(*oa, *ob)
		}
	})
}
