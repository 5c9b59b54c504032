package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const markdownInstruction = `You are an expert Career Coach and Resume Writer.

INPUT:
1. A Resume (text)
2. A Job Description (text)

TASK:
1. Analyze the Job Description for keywords.
2. Rewrite the Resume to highlight matching skills.
3. Write a persuasive Cover Letter.

OUTPUT:
You MUST return the result in this EXACT markdown format:

# RESUME
(The content of the tailored resume)

# COVER LETTER
(The content of the cover letter)`

const toolsInstruction = `You are an expert Career Coach and Resume Writer.

INPUT:
1. A Resume (text)
2. A Job Description (text)

TASK:
1. Analyze the Job Description for keywords.
2. Rewrite the Resume to highlight matching skills.
3. Write a persuasive Cover Letter.

OUTPUT:
Call save_tailored_resume with the complete tailored resume and
save_cover_letter with the complete cover letter. Call each function
exactly once. Do not return the documents as plain text.`

// SystemInstruction returns the career-coach instruction for the given
// generation mode: the markdown variant asks for the two-heading layout the
// extractor looks for, the tools variant asks for the two save functions.
func (pb *PromptBuilder) SystemInstruction(mode GenerationMode) string {
	if mode == ModeTools {
		return toolsInstruction
	}
	return markdownInstruction
}

// BuildOptimizePrompt creates the user prompt for a single optimize request.
func (pb *PromptBuilder) BuildOptimizePrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(
		"JOB DESCRIPTION:\n%s\n\nRESUME CONTENT:\n%s\n\nAction: Tailor the resume and write a cover letter based on the JD.",
		jobDescription, resumeText,
	)
}
