package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ruthvikgurrala/The-Career-Catalyst/internal/models"
	"github.com/ruthvikgurrala/The-Career-Catalyst/internal/services"
)

type OptimizeHandler struct {
	storageService services.StorageService
	resumeParser   services.ResumeParserService
	geminiService  services.GeminiService
	extractor      services.ResponseExtractor
	promptBuilder  *services.PromptBuilder
	maxFileSize    int64
	maxRetries     int
}

func NewOptimizeHandler(
	storageService services.StorageService,
	resumeParser services.ResumeParserService,
	geminiService services.GeminiService,
	extractor services.ResponseExtractor,
	maxFileSize int64,
	maxRetries int,
) *OptimizeHandler {
	return &OptimizeHandler{
		storageService: storageService,
		resumeParser:   resumeParser,
		geminiService:  geminiService,
		extractor:      extractor,
		promptBuilder:  services.NewPromptBuilder(),
		maxFileSize:    maxFileSize,
		maxRetries:     maxRetries,
	}
}

// HandleOptimize handles POST /optimize: parse the uploaded resume, send it
// to the model together with the job description, and extract the tailored
// resume and cover letter from the reply.
func (h *OptimizeHandler) HandleOptimize(c *fiber.Ctx) error {
	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	fileHeader, err := c.FormFile("resume_file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_file is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	requestID := uuid.New()
	log.Printf("🤖 [%s] Processing resume: %s\n", requestID, fileHeader.Filename)

	filename, filePath, err := h.storageService.SaveUpload(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}
	// The exchange is request-scoped, nothing is kept on disk.
	defer h.storageService.DeleteFile(filename)

	resumeText, err := h.resumeParser.ExtractText(filePath)
	if err != nil {
		log.Printf("❌ [%s] Failed to read resume: %v\n", requestID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Internal Error: failed to read resume: %v", err),
		})
	}

	prompt := h.promptBuilder.BuildOptimizePrompt(jobDescription, resumeText)

	reply, err := h.geminiService.GenerateTailoredWithRetry(c.Context(), prompt, h.maxRetries)
	if err != nil {
		log.Printf("❌ [%s] Error in /optimize: %v\n", requestID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Internal Error: %v", err),
		})
	}

	result := h.extractor.Extract(reply)
	log.Printf("✅ [%s] Optimization completed\n", requestID)

	return c.JSON(models.OptimizeResponse{
		ResumeContent:      result.ResumeContent,
		CoverLetterContent: result.CoverLetterContent,
	})
}
