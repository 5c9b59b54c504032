package services

import (
	"regexp"
	"strings"
)

// Function names the model may call when running in tools mode.
const (
	ToolSaveTailoredResume = "save_tailored_resume"
	ToolSaveCoverLetter    = "save_cover_letter"
)

// ToolInvocation is a single named function call returned by the model,
// carrying its "content" string argument.
type ToolInvocation struct {
	Name    string
	Content string
}

// ModelReply is what the Gemini layer hands back: zero or more tool
// invocations plus whatever free text the model produced alongside them.
// A plain-text reply carries no invocations.
type ModelReply struct {
	Invocations []ToolInvocation
	Text        string
}

// ExtractionResult always carries both fields. Either may be empty, but
// neither is ever absent.
type ExtractionResult struct {
	ResumeContent      string
	CoverLetterContent string
}

type ResponseExtractor interface {
	Extract(reply ModelReply) ExtractionResult
}

type responseExtractor struct{}

func NewResponseExtractor() ResponseExtractor {
	return &responseExtractor{}
}

var (
	resumeHeadingRe = regexp.MustCompile(`(?i)^(#{1,6})\s*(?:tailored\s+)?resume\s*:?\s*$`)
	coverHeadingRe  = regexp.MustCompile(`(?i)^(#{1,6})\s*cover\s+letter\s*:?\s*$`)
	anyHeadingRe    = regexp.MustCompile(`^(#{1,6})\s+\S`)
	fencedBlockRe   = regexp.MustCompile("(?s)```[a-zA-Z0-9_-]*[ \t]*\r?\n(.*?)```")
)

// Extract turns a model reply into the two response fields. It never fails:
// each strategy degrades to the next, and a reply nothing matched ends up
// verbatim in the resume field.
//
// Priority per field: tool invocations, then markdown section headings, then
// fenced code blocks. A field filled by an invocation is final even when the
// supplied content is empty. The whole-text fallback triggers only when no
// field was filled by any strategy.
func (e *responseExtractor) Extract(reply ModelReply) ExtractionResult {
	var result ExtractionResult
	var resumeFilled, coverFilled bool

	for _, inv := range reply.Invocations {
		switch inv.Name {
		case ToolSaveTailoredResume:
			if !resumeFilled {
				result.ResumeContent = inv.Content
				resumeFilled = true
			}
		case ToolSaveCoverLetter:
			if !coverFilled {
				result.CoverLetterContent = inv.Content
				coverFilled = true
			}
		}
	}

	if !resumeFilled {
		if body, ok := sectionContent(reply.Text, resumeHeadingRe); ok {
			result.ResumeContent = body
			resumeFilled = true
		}
	}
	if !coverFilled {
		if body, ok := sectionContent(reply.Text, coverHeadingRe); ok {
			result.CoverLetterContent = body
			coverFilled = true
		}
	}

	if !resumeFilled || !coverFilled {
		blocks := fencedBlocks(reply.Text)
		if !resumeFilled && len(blocks) >= 1 {
			result.ResumeContent = blocks[0]
			resumeFilled = true
		}
		if !coverFilled && len(blocks) >= 2 {
			result.CoverLetterContent = blocks[1]
			coverFilled = true
		}
	}

	if !resumeFilled && !coverFilled {
		result.ResumeContent = reply.Text
	}

	return result
}

// sectionContent finds the first line matching headingRe and captures
// everything up to the next heading of the same or higher level, or end of
// text. The captured body is trimmed of surrounding whitespace.
func sectionContent(text string, headingRe *regexp.Regexp) (string, bool) {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		m := headingRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		level := len(m[1])

		var body []string
		for _, next := range lines[i+1:] {
			if hm := anyHeadingRe.FindStringSubmatch(strings.TrimSpace(next)); hm != nil && len(hm[1]) <= level {
				break
			}
			body = append(body, next)
		}

		return strings.TrimSpace(strings.Join(body, "\n")), true
	}

	return "", false
}

// fencedBlocks returns the trimmed contents of all fenced code blocks in
// order of appearance. Language tags on the opening fence are ignored.
func fencedBlocks(text string) []string {
	matches := fencedBlockRe.FindAllStringSubmatch(text, -1)

	var blocks []string
	for _, m := range matches {
		blocks = append(blocks, strings.TrimSpace(m[1]))
	}

	return blocks
}
