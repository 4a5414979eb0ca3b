// Package content loads the portfolio collections shown by the section
// commands.
package content

import "strings"

// Experience is one job or role.
type Experience struct {
	Title       string   `yaml:"title" json:"title" toml:"title"`
	Date        string   `yaml:"date" json:"date" toml:"date"`
	Description string   `yaml:"description" json:"description" toml:"description"`
	Tags        []string `yaml:"tags" json:"tags" toml:"tags"`
	Order       *int     `yaml:"order,omitempty" json:"order,omitempty" toml:"order,omitempty"`
}

// Project is a showcased project. Link is the live site, GitHub the code.
type Project struct {
	Title        string   `yaml:"title" json:"title" toml:"title"`
	Description  string   `yaml:"description" json:"description" toml:"description"`
	Link         string   `yaml:"link,omitempty" json:"link,omitempty" toml:"link,omitempty"`
	GitHub       string   `yaml:"github" json:"github" toml:"github"`
	Technologies []string `yaml:"technologies" json:"technologies" toml:"technologies"`
	Featured     bool     `yaml:"featured,omitempty" json:"featured,omitempty" toml:"featured,omitempty"`
	Order        *int     `yaml:"order,omitempty" json:"order,omitempty" toml:"order,omitempty"`
}

// Knowledge is a rated technical skill.
type Knowledge struct {
	Name   string  `yaml:"name" json:"name" toml:"name"`
	Rating float64 `yaml:"rating" json:"rating" toml:"rating"`
}

// MaxKnowledgeRating is the top of the technical skill scale.
const MaxKnowledgeRating = 4

// SkillCategory groups technical skills.
type SkillCategory struct {
	Category   string      `yaml:"category" json:"category" toml:"category"`
	Knowledges []Knowledge `yaml:"knowledges" json:"knowledges" toml:"knowledges"`
	Order      *int        `yaml:"order,omitempty" json:"order,omitempty" toml:"order,omitempty"`
}

// MaxSoftSkillRating is the top of the soft skill scale.
const MaxSoftSkillRating = 100

// SoftSkill is a rated soft skill.
type SoftSkill struct {
	Name   string  `yaml:"name" json:"name" toml:"name"`
	Rating float64 `yaml:"rating" json:"rating" toml:"rating"`
	Order  *int    `yaml:"order,omitempty" json:"order,omitempty" toml:"order,omitempty"`
}

// ContactItem is one way to get in touch.
type ContactItem struct {
	Title   string `yaml:"title" json:"title" toml:"title"`
	Content string `yaml:"content" json:"content" toml:"content"`
	Link    string `yaml:"link" json:"link" toml:"link"`
	Icon    string `yaml:"icon,omitempty" json:"icon,omitempty" toml:"icon,omitempty"`
	Order   *int   `yaml:"order,omitempty" json:"order,omitempty" toml:"order,omitempty"`
}

// Command categories.
const (
	CategoryNavigation = "navigation"
	CategoryInfo       = "info"
	CategoryUtility    = "utility"
	CategorySpecial    = "special"
)

// Command documents a shell command for /help.
type Command struct {
	Command     string   `yaml:"command" json:"command" toml:"command"`
	Description string   `yaml:"description" json:"description" toml:"description"`
	Category    string   `yaml:"category" json:"category" toml:"category"`
	Aliases     []string `yaml:"aliases,omitempty" json:"aliases,omitempty" toml:"aliases,omitempty"`
	Hint        string   `yaml:"hint,omitempty" json:"hint,omitempty" toml:"hint,omitempty"`
	Order       *int     `yaml:"order,omitempty" json:"order,omitempty" toml:"order,omitempty"`
}

// GeneralEntry is a free-form markdown block looked up by key.
type GeneralEntry struct {
	Key      string         `yaml:"key" json:"key" toml:"key"`
	Title    string         `yaml:"title,omitempty" json:"title,omitempty" toml:"title,omitempty"`
	Content  string         `yaml:"content" json:"content" toml:"content"`
	Metadata map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty" toml:"metadata,omitempty"`
}

// Well-known general entry keys.
const (
	KeyHome       = "home"
	KeyWelcome    = "welcome"
	KeyContactCTA = "contact-cta"
)

// Content is every collection. Empty slices mean the collection is missing.
type Content struct {
	Experience []Experience
	Projects   []Project
	Skills     []SkillCategory
	SoftSkills []SoftSkill
	Contact    []ContactItem
	Commands   []Command
	General    []GeneralEntry
}

// Entry returns the general entry with the given key.
func (c *Content) Entry(key string) (GeneralEntry, bool) {
	for _, e := range c.General {
		if e.Key == key {
			return e, true
		}
	}
	return GeneralEntry{}, false
}

// MetaString returns a string metadata value of a general entry.
func (e GeneralEntry) MetaString(key string) string {
	if v, ok := e.Metadata[key].(string); ok {
		return v
	}
	return ""
}

// Aliases maps every declared alias to its command.
func (c *Content) Aliases() map[string]string {
	out := make(map[string]string)
	for _, cmd := range c.Commands {
		for _, a := range cmd.Aliases {
			out[strings.ToLower(a)] = strings.ToLower(cmd.Command)
		}
	}
	return out
}

// Command returns the documentation for a command name.
func (c *Content) Command(name string) (Command, bool) {
	name = strings.ToLower(name)
	for _, cmd := range c.Commands {
		if strings.ToLower(cmd.Command) == name {
			return cmd, true
		}
	}
	return Command{}, false
}
