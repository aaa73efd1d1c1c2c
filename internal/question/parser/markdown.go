package parser

import (
	"regexp"
	"strings"
)

var (
	markdownBullet   = regexp.MustCompile(`^[-*]\s+(.*)$`)
	markdownCheckbox = regexp.MustCompile(`^\[([ xX])\]\s*`)
	correctNote      = regexp.MustCompile(`(?i)\(\s*(correct|صحيح|صحيحة)\s*\)`)
	checkmarks       = strings.NewReplacer("✓", "", "✔", "")
)

// parseMarkdown reads a heading followed by bullet options, the correct one
// carrying ✓, ✔, "(correct)", "(صحيح)" or a checked box.
func (p *Parser) parseMarkdown(input string, r *Result) {
	lines := splitLines(input)

	textLine := -1
	for i, line := range lines {
		if t := strings.TrimSpace(line); strings.HasPrefix(t, "#") {
			r.Data.Text = strings.TrimSpace(strings.TrimLeft(t, "#"))
			textLine = i
			break
		}
	}
	if textLine < 0 {
		for i, line := range lines {
			t := strings.TrimSpace(line)
			if t != "" && !markdownBullet.MatchString(t) {
				r.Data.Text = t
				textLine = i
				break
			}
		}
	}

	marked := 0
	for i, line := range lines {
		if i == textLine {
			continue
		}
		m := markdownBullet.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		option, isCorrect := stripCorrectMarker(m[1])
		r.Data.Options = append(r.Data.Options, option)
		if isCorrect {
			marked++
			if marked == 1 {
				r.Data.CorrectAnswer = option
			}
		}
	}

	switch {
	case marked == 0:
		r.warn(MsgNoCorrectMarker)
		r.suggest(SuggestMarkCorrect)
	case marked > 1:
		r.warn(MsgManyCorrectMarkers)
	}
	if r.Data.Text == "" {
		r.addErrorAt(FieldText, MsgTextRequired, 1, 0)
	}
}

func stripCorrectMarker(option string) (string, bool) {
	marked := false
	if m := markdownCheckbox.FindStringSubmatch(option); m != nil {
		marked = m[1] != " "
		option = option[len(m[0]):]
	}
	if strings.ContainsAny(option, "✓✔") {
		marked = true
		option = checkmarks.Replace(option)
	}
	if correctNote.MatchString(option) {
		marked = true
		option = correctNote.ReplaceAllString(option, "")
	}
	return strings.TrimSpace(option), marked
}
