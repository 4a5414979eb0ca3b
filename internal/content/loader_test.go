package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := Defaults()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Experience)
	assert.NotEmpty(t, c.Projects)
	assert.NotEmpty(t, c.Skills)
	assert.NotEmpty(t, c.SoftSkills)
	assert.NotEmpty(t, c.Contact)
	assert.Len(t, c.Commands, 9)

	_, ok := c.Entry(KeyHome)
	assert.True(t, ok, "home entry")
	cta, ok := c.Entry(KeyContactCTA)
	require.True(t, ok, "contact-cta entry")
	assert.Equal(t, "hello@example.com", cta.MetaString("email"))

	assert.Equal(t, "/experience", c.Aliases()["/exp"])
}

func TestLoadFS_Formats(t *testing.T) {
	fsys := fstest.MapFS{
		"experience.json": {Data: []byte(`[{"title":"Dev","date":"2020","description":"Did things","tags":["go"]}]`)},
		"projects.toml": {Data: []byte(`
[[items]]
title = "tool"
description = "a tool"
github = "https://github.com/x/tool"
technologies = ["Go"]
`)},
		"soft-skills.yml": {Data: []byte("- {name: Focus, rating: 80}\n")},
	}

	c, err := LoadFS(fsys)
	require.NoError(t, err)

	require.Len(t, c.Experience, 1)
	assert.Equal(t, []string{"go"}, c.Experience[0].Tags)
	require.Len(t, c.Projects, 1)
	assert.Equal(t, "https://github.com/x/tool", c.Projects[0].GitHub)
	require.Len(t, c.SoftSkills, 1)
	assert.Equal(t, 80.0, c.SoftSkills[0].Rating)

	assert.Empty(t, c.Skills, "missing collections stay empty")
	assert.Empty(t, c.Contact)
}

func TestLoadFS_SortsByOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"soft-skills.yaml": {Data: []byte(`
- {name: c}
- {name: b, rating: 1, order: 2}
- {name: d}
- {name: a, rating: 1, order: 1}
`)},
	}

	c, err := LoadFS(fsys)
	require.NoError(t, err)

	var names []string
	for _, s := range c.SoftSkills {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
}

func TestLoadFS_Validation(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		data  string
		field string
	}{
		{"knowledge rating too high", "skills.yaml", "- {category: Go, knowledges: [{name: x, rating: 5}]}", "knowledges[0].rating"},
		{"negative soft rating", "soft-skills.yaml", "- {name: x, rating: -1}", "rating"},
		{"soft rating over 100", "soft-skills.yaml", "- {name: x, rating: 101}", "rating"},
		{"project without github", "projects.yaml", "- {title: x, description: y}", "github"},
		{"command without marker", "commands.yaml", "- {command: home, category: info}", "command"},
		{"command bad category", "commands.yaml", "- {command: /home, category: fun}", "category"},
		{"contact without link", "contact.yaml", "- {title: Mail, content: me}", "link"},
		{"general without key", "general.yaml", "- {content: hi}", "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(fstest.MapFS{tt.file: {Data: []byte(tt.data)}})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestLoadFS_ParseError(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{"experience.yaml": {Data: []byte("- title: [")}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "experience.yaml")
}

func TestLoadFS_EmptyFile(t *testing.T) {
	c, err := LoadFS(fstest.MapFS{"projects.yaml": {Data: []byte("\n")}})
	require.NoError(t, err)
	assert.Empty(t, c.Projects)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contact.yaml"),
		[]byte("- {title: Mail, content: me@x.dev, link: 'mailto:me@x.dev'}\n"), 0600))

	c, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, c.Contact, 1)
	assert.Empty(t, c.Experience)

	_, err = Load(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestIsCollectionFile(t *testing.T) {
	assert.True(t, isCollectionFile("/x/skills.yaml"))
	assert.True(t, isCollectionFile("soft-skills.toml"))
	assert.False(t, isCollectionFile("skills.md"))
	assert.False(t, isCollectionFile("notes.yaml"))
}
