package paymentController

import (
	"coursehub/config"
	courseControllers "coursehub/controllers/course"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"coursehub/utils"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// InitiatePayment opens a hosted gateway session for a course purchase and
// returns the page URL the client should redirect to
func InitiatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !config.PaymentConfigured() {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment gateway is not configured!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*struct {
		CourseID uint `json:"course_id" validate:"required,gt=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var crs courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", reqData.CourseID, false).
		Where("status IN ?", courseModels.ListingStatuses()).
		First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not available!", nil)
	}

	if crs.Price <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course has no valid price!", nil)
	}

	// Already enrolled students do not pay twice
	var existing courseModels.StudentCourse
	if err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", userID, crs.ID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	tranID := uuid.NewString()

	session, err := utils.CreateGatewaySession(tranID, crs.Price, userID, crs.ID, crs.Title, user.Name, user.Email)
	if err != nil {
		log.Printf("Payment session error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment session created!", fiber.Map{
		"gateway_url":    session.GatewayPageURL,
		"transaction_id": tranID,
	})
}

// PaymentSuccess is the gateway success callback. It records the enrollment
// and redirects the browser to the client success page. A replayed callback
// for the same transaction id is harmless.
func PaymentSuccess(c *fiber.Ctx) error {
	status := c.FormValue("status")
	tranID := c.FormValue("tran_id")
	amountStr := c.FormValue("amount")
	studentStr := c.FormValue("value_a")
	courseStr := c.FormValue("value_b")

	if status != "VALID" && status != "VALIDATED" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment was not successful!", nil)
	}
	if tranID == "" || studentStr == "" || courseStr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Malformed payment callback!", nil)
	}

	studentID, err1 := strconv.ParseUint(studentStr, 10, 32)
	courseID, err2 := strconv.ParseUint(courseStr, 10, 32)
	amount, err3 := strconv.ParseFloat(amountStr, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Malformed payment callback!", nil)
	}

	index, err := courseControllers.RecordEnrollment(database.Database.Db, uint(studentID), uint(courseID), tranID, amount)
	if err != nil {
		if err == courseControllers.ErrEnrollmentInput {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment data in callback!", nil)
		}
		log.Printf("Failed to record enrollment for txn %s: %v", tranID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record enrollment!", nil)
	}

	// Notify the student asynchronously
	var student models.User
	var crs courseModels.Course
	database.Database.Db.Where("id = ?", index.StudentID).First(&student)
	database.Database.Db.Where("id = ?", index.CourseID).First(&crs)
	go utils.SendEnrollmentEmail(student.Email, student.Name, crs.Title, tranID, amount)

	return c.Redirect(config.AppConfig.ClientURL+"/payment/success?tran_id="+tranID, fiber.StatusSeeOther)
}

// PaymentFail is the gateway failure callback
func PaymentFail(c *fiber.Ctx) error {
	return c.Redirect(config.AppConfig.ClientURL+"/payment/fail", fiber.StatusSeeOther)
}

// PaymentCancel is the gateway cancel callback
func PaymentCancel(c *fiber.Ctx) error {
	return c.Redirect(config.AppConfig.ClientURL+"/payment/cancel", fiber.StatusSeeOther)
}

// PaymentIPN acknowledges instant-payment-notification webhooks. The
// success callback is the single enrollment trigger, so the IPN body is
// accepted and ignored.
func PaymentIPN(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}
