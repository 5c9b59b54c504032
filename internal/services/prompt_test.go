package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemInstruction(t *testing.T) {
	pb := NewPromptBuilder()

	markdown := pb.SystemInstruction(ModeMarkdown)
	assert.Contains(t, markdown, "# RESUME")
	assert.Contains(t, markdown, "# COVER LETTER")

	tools := pb.SystemInstruction(ModeTools)
	assert.Contains(t, tools, ToolSaveTailoredResume)
	assert.Contains(t, tools, ToolSaveCoverLetter)
}

func TestBuildOptimizePrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildOptimizePrompt("Go engineer at Acme", "Jane Doe, 5 years of Go")

	assert.Contains(t, prompt, "JOB DESCRIPTION:\nGo engineer at Acme")
	assert.Contains(t, prompt, "RESUME CONTENT:\nJane Doe, 5 years of Go")
}
