package courseValidator

import (
	"coursehub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var allowedLevels = map[string]bool{
	"BEGINNER":     true,
	"INTERMEDIATE": true,
	"ADVANCED":     true,
}

// CourseID parses and validates the :courseId route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("courseId"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course id must be a positive integer!",
			})
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// VideoID parses and validates the :videoId route parameter
func VideoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("videoId"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"videoId": "Video id must be a positive integer!",
			})
		}
		c.Locals("videoID", id)
		return c.Next()
	}
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string  `json:"title"`
			Description  string  `json:"description"`
			Category     string  `json:"category"`
			Level        string  `json:"level"`
			Price        float64 `json:"price"`
			Duration     int64   `json:"duration"`
			ThumbnailURL string  `json:"thumbnail_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		reqData.Level = strings.ToUpper(strings.TrimSpace(reqData.Level))
		if reqData.Level != "" && !allowedLevels[reqData.Level] {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string   `json:"title"`
			Description  string   `json:"description"`
			Category     string   `json:"category"`
			Level        string   `json:"level"`
			Price        *float64 `json:"price"`
			Duration     int64    `json:"duration"`
			ThumbnailURL string   `json:"thumbnail_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != "" && len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		reqData.Level = strings.ToUpper(strings.TrimSpace(reqData.Level))
		if reqData.Level != "" && !allowedLevels[reqData.Level] {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}

		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseList validator middleware for the public catalog
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     *int    `query:"page"`
			Limit    *int    `query:"limit"`
			Category *string `query:"category"`
			Level    *string `query:"level"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// AddVideo validator middleware
func AddVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			VideoURL    string `json:"video_url"`
			Duration    int64  `json:"duration"`
			OrderIndex  int    `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

func UpdateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			VideoURL    string `json:"video_url"`
			Duration    int64  `json:"duration"`
			OrderIndex  int    `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != "" && len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideoUpdate", reqData)
		return c.Next()
	}
}
