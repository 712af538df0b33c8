package authController

import (
	"bytes"
	"coursehub/config"
	"coursehub/database"
	"coursehub/models"
	authValidator "coursehub/validators/auth"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}
	os.Exit(m.Run())
}

func setupAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.LoginTracking{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	prev := database.Database
	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() { database.Database = prev })

	app := fiber.New()
	app.Post("/auth/signup", authValidator.Signup(), Signup)
	app.Post("/auth/login", authValidator.Login(), Login)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return resp
}

func TestSignupStudent(t *testing.T) {
	app, db := setupAuthApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Alice Student",
		"email":    "alice@test.local",
		"password": "secret-pass",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("signup status = %d, want 201", resp.StatusCode)
	}

	var user models.User
	if err := db.Where("email = ?", "alice@test.local").First(&user).Error; err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if user.Role != models.RoleStudent {
		t.Errorf("role = %q, want STUDENT default", user.Role)
	}
	if user.FacultyStatus != "" {
		t.Errorf("student faculty status = %q, want empty", user.FacultyStatus)
	}
	if user.Password == "secret-pass" {
		t.Error("password stored in plain text")
	}
}

func TestSignupFacultyStartsPending(t *testing.T) {
	app, db := setupAuthApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Bob Faculty",
		"email":    "bob@test.local",
		"password": "secret-pass",
		"role":     "FACULTY",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("signup status = %d, want 201", resp.StatusCode)
	}

	var user models.User
	if err := db.Where("email = ?", "bob@test.local").First(&user).Error; err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if user.FacultyStatus != models.FacultyPending {
		t.Errorf("faculty status = %q, want PENDING", user.FacultyStatus)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _ := setupAuthApp(t)

	body := fiber.Map{"name": "Alice Student", "email": "dup@test.local", "password": "secret-pass"}
	if resp := postJSON(t, app, "/auth/signup", body); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first signup status = %d, want 201", resp.StatusCode)
	}
	if resp := postJSON(t, app, "/auth/signup", body); resp.StatusCode != fiber.StatusConflict {
		t.Errorf("duplicate signup status = %d, want 409", resp.StatusCode)
	}
}

func TestSignupRejectsAdminRole(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Eve Admin",
		"email":    "eve@test.local",
		"password": "secret-pass",
		"role":     "ADMIN",
	})
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("admin signup status = %d, want 422", resp.StatusCode)
	}
}

// Pending and rejected faculty cannot log in; approval opens the door.
// The gate never touches students.
func TestLoginFacultyApprovalGate(t *testing.T) {
	app, db := setupAuthApp(t)

	if resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Bob Faculty",
		"email":    "bob@test.local",
		"password": "secret-pass",
		"role":     "FACULTY",
	}); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("signup status = %d, want 201", resp.StatusCode)
	}

	login := fiber.Map{"email": "bob@test.local", "password": "secret-pass"}

	if resp := postJSON(t, app, "/auth/login", login); resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("pending faculty login status = %d, want 403", resp.StatusCode)
	}

	db.Model(&models.User{}).Where("email = ?", "bob@test.local").
		Update("faculty_status", models.FacultyRejected)
	if resp := postJSON(t, app, "/auth/login", login); resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("rejected faculty login status = %d, want 403", resp.StatusCode)
	}

	db.Model(&models.User{}).Where("email = ?", "bob@test.local").
		Update("faculty_status", models.FacultyApproved)
	resp := postJSON(t, app, "/auth/login", login)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("approved faculty login status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if body.Data.Token == "" {
		t.Error("login response carries no token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := setupAuthApp(t)

	if resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Alice Student",
		"email":    "alice@test.local",
		"password": "secret-pass",
	}); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("signup status = %d, want 201", resp.StatusCode)
	}

	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "alice@test.local",
		"password": "wrong-password",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("wrong password login status = %d, want 401", resp.StatusCode)
	}
}
