package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/tui/styles"
	"github.com/hy4ri/termfolio/internal/tui/utils"
)

// softBarWidth is the cell width of a soft skill bar.
const softBarWidth = 20

// Skills renders rated technical skills per category, then soft skills.
func (r *Renderer) Skills() string {
	if len(r.Content.Skills) == 0 && len(r.Content.SoftSkills) == 0 {
		return noData("skills")
	}

	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("Skills"))

	nameWidth := 0
	for _, c := range r.Content.Skills {
		for _, k := range c.Knowledges {
			nameWidth = max(nameWidth, len([]rune(k.Name)))
		}
	}

	for _, c := range r.Content.Skills {
		b.WriteString("\n\n")
		b.WriteString(styles.Subtitle.Render(c.Category))
		for _, k := range c.Knowledges {
			b.WriteString("\n  ")
			b.WriteString(styles.Text.Render(utils.PadRight(k.Name, nameWidth)))
			b.WriteString("  ")
			b.WriteString(KnowledgeBar(k.Rating))
		}
	}

	if len(r.Content.SoftSkills) > 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.Subtitle.Render("Soft skills"))

		softWidth := 0
		for _, s := range r.Content.SoftSkills {
			softWidth = max(softWidth, len([]rune(s.Name)))
		}
		for _, s := range r.Content.SoftSkills {
			b.WriteString("\n  ")
			b.WriteString(styles.Text.Render(utils.PadRight(s.Name, softWidth)))
			b.WriteString("  ")
			b.WriteString(SoftSkillBar(s.Rating))
		}
	}

	return b.String()
}

// KnowledgeBar draws a 0-4 rating as dots.
func KnowledgeBar(rating float64) string {
	full, empty := bar(int(math.Round(rating)), content.MaxKnowledgeRating, "●", "○")
	return styles.RatingFull.Render(full) + styles.RatingEmpty.Render(empty)
}

// SoftSkillBar draws a 0-100 rating as a bar plus percentage.
func SoftSkillBar(rating float64) string {
	cells := int(math.Round(rating / content.MaxSoftSkillRating * softBarWidth))
	full, empty := bar(cells, softBarWidth, "█", "░")
	return styles.RatingFull.Render(full) + styles.RatingEmpty.Render(empty) +
		styles.Secondary.Render(fmt.Sprintf(" %3.0f%%", rating))
}
