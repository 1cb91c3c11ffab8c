package export

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 12
	textColor = "000000"
	titleSize = 16
)

var inlineMarkup = strings.NewReplacer("**", "", "__", "", "`", "")

var (
	reHeading   = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet    = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered  = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	reTimestamp = regexp.MustCompile(`^\[\d+:\d{2}:\d{2}(\.\d+)?\]\s*`)
)

// MarkdownToDocx renders a markdown summary into a styled docx file.
func MarkdownToDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	if title != "" {
		addRun(doc.AddParagraph(""), title, titleSize, true)
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addRun(doc.AddParagraph(""), m[2], headingSize(len(m[1])), true)
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			indent := strings.Repeat("  ", leadingIndent(line)/2)
			addRichText(doc.AddParagraph(""), indent+"• "+m[1])
			continue
		}

		if reNumbered.MatchString(trimmed) {
			addRichText(doc.AddParagraph(""), trimmed)
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

// TranscriptToDocx writes transcript text as plain paragraphs, dropping the
// segment timestamps and immediate repeats.
func TranscriptToDocx(title, text, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	if title != "" {
		addRun(doc.AddParagraph(""), title, titleSize, true)
		doc.AddParagraph("")
	}

	for _, t := range transcriptLines(text) {
		addRun(doc.AddParagraph(""), t, fontSize, false)
	}

	return doc.SaveTo(outputPath)
}

func transcriptLines(text string) []string {
	var lines []string
	prev := ""
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(reTimestamp.ReplaceAllString(strings.TrimSpace(line), ""))
		if trimmed == "" || trimmed == prev {
			continue
		}
		prev = trimmed
		lines = append(lines, trimmed)
	}
	return lines
}

// headingSize maps # to 16pt, ## to 15pt and ### to 14pt; deeper levels use body size
func headingSize(level int) uint64 {
	if level < 1 || level > 3 {
		return fontSize
	}
	return fontSize + uint64(5-level)
}

func leadingIndent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// addRun appends one formatted run with inline markdown markers removed
func addRun(p *docx.Paragraph, text string, size uint64, bold bool) {
	run := p.AddText(inlineMarkup.Replace(text)).Font(fontName).Size(size).Color(textColor)
	if bold {
		run.Bold(true)
	}
}

// addRichText splits text on **bold** spans
func addRichText(p *docx.Paragraph, text string) {
	last := 0
	for _, loc := range reBold.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			addRun(p, text[last:loc[0]], fontSize, false)
		}
		addRun(p, text[loc[2]:loc[3]], fontSize, true)
		last = loc[1]
	}
	if last < len(text) {
		addRun(p, text[last:], fontSize, false)
	}
}
