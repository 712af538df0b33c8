package courseValidator

import (
	"coursehub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// QuizID parses and validates the :quizId route parameter
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("quizId"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"quizId": "Quiz id must be a positive integer!",
			})
		}
		c.Locals("quizID", id)
		return c.Next()
	}
}

// ExamID parses and validates the :examId route parameter
func ExamID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("examId"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"examId": "Exam id must be a positive integer!",
			})
		}
		c.Locals("examID", id)
		return c.Next()
	}
}

// SubmissionID parses and validates the :submissionId route parameter
func SubmissionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("submissionId"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"submissionId": "Submission id must be a positive integer!",
			})
		}
		c.Locals("submissionID", id)
		return c.Next()
	}
}

// CreateQuiz validator middleware
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title      string `json:"title"`
			TotalMarks int    `json:"total_marks"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.TotalMarks < 1 {
			errors["total_marks"] = "Total marks must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// QuizAttempt validator middleware
func QuizAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Score int `json:"score"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Score < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"score": "Score cannot be negative!",
			})
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}

// CreateExam validator middleware
func CreateExam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title      string `json:"title"`
			Question   string `json:"question"`
			TotalMarks int    `json:"total_marks"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question is required!"
		}

		if reqData.TotalMarks < 1 {
			errors["total_marks"] = "Total marks must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedExam", reqData)
		return c.Next()
	}
}

// ExamAnswer validator middleware
func ExamAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AnswerText string `json:"answer_text"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.AnswerText) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answer_text": "Answer text is required!",
			})
		}

		c.Locals("validatedExamAnswer", reqData)
		return c.Next()
	}
}

// GradeSubmission validator middleware
func GradeSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Marks int `json:"marks"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Marks < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"marks": "Marks cannot be negative!",
			})
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
