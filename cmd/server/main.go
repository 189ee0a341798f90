package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"deutschkurs/internal/database"
	"deutschkurs/internal/entity"
	"deutschkurs/internal/handler"
	"deutschkurs/internal/learning"
	"deutschkurs/internal/middleware"
	"deutschkurs/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	godotenv.Load()

	if err := database.InitDB(); err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer database.CloseDB()

	middleware.Init(getEnv("SESSION_KEY", "a-very-secret-key"))

	users := repository.NewUserRepository(database.DB)
	courses := repository.NewCourseRepository(database.DB)
	sections := repository.NewSectionRepository(database.DB)
	words := repository.NewWordRepository(database.DB)

	if err := seedAdmin(users); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	engine := learning.NewEngine()

	home := handler.NewHomeHandler(users, courses, words)
	auth := handler.NewAuthHandler(users, courses, engine)
	admin := handler.NewAdminHandler(courses)
	profile := handler.NewProfileHandler(users, courses, sections, words)
	section := handler.NewSectionHandler(courses, sections, words)
	word := handler.NewWordHandler(courses, sections, words)
	learn := handler.NewLearningHandler(words, engine)

	authOnly := middleware.RequireAuth
	adminOnly := middleware.RequireRole(entity.RoleAdmin)
	managerOnly := middleware.RequireRole(entity.RoleManager)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", home.Index)
	mux.HandleFunc("GET /register", auth.RegisterPage)
	mux.HandleFunc("POST /register", auth.Register)
	mux.HandleFunc("GET /login", auth.LoginPage)
	mux.HandleFunc("POST /login", auth.Login)
	mux.HandleFunc("GET /logout", auth.Logout)

	mux.Handle("GET /admin", adminOnly(http.HandlerFunc(admin.AdminPage)))
	mux.Handle("GET /course_creation", adminOnly(http.HandlerFunc(admin.CourseCreationPage)))
	mux.Handle("POST /course_creation", adminOnly(http.HandlerFunc(admin.CreateCourse)))
	mux.Handle("GET /delete_course/{id}", adminOnly(http.HandlerFunc(admin.DeleteCourse)))

	mux.Handle("GET /profile", authOnly(http.HandlerFunc(profile.Profile)))
	mux.Handle("POST /profile", authOnly(http.HandlerFunc(profile.Profile)))
	mux.Handle("GET /choose_course", authOnly(http.HandlerFunc(profile.ChooseCourse)))
	mux.Handle("GET /add_course/{name}", authOnly(http.HandlerFunc(profile.AddCourse)))

	mux.Handle("GET /pack_word_list/{section_id}", authOnly(http.HandlerFunc(learn.PackWordList)))
	mux.Handle("GET /select_word", authOnly(http.HandlerFunc(learn.SelectWord)))
	mux.Handle("GET /show_answer", authOnly(http.HandlerFunc(learn.ShowAnswer)))
	mux.Handle("GET /remove_from_list", authOnly(http.HandlerFunc(learn.RemoveFromList)))
	mux.Handle("GET /show_learning", authOnly(http.HandlerFunc(learn.ShowLearning)))

	mux.Handle("GET /section_manage", managerOnly(http.HandlerFunc(section.Manage)))
	mux.Handle("POST /section_manage", managerOnly(http.HandlerFunc(section.Manage)))
	mux.Handle("GET /delete_section/{id}", managerOnly(http.HandlerFunc(section.DeleteSection)))
	mux.Handle("GET /word_manage/section/{id}", managerOnly(http.HandlerFunc(word.Manage)))
	mux.Handle("POST /word_manage/section/{id}", managerOnly(http.HandlerFunc(word.Manage)))
	mux.Handle("GET /delete_word/{section_id}/{word_id}", managerOnly(http.HandlerFunc(word.DeleteWord)))
	mux.Handle("GET /edit_word/{section_id}/{word_id}", managerOnly(http.HandlerFunc(word.EditWord)))
	mux.Handle("POST /edit_word/{section_id}/{word_id}", managerOnly(http.HandlerFunc(word.EditWord)))

	port := getEnv("PORT", "8080")
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func seedAdmin(users *repository.UserRepository) error {
	email := getEnv("ADMIN_EMAIL", "admin@localhost")
	password := getEnv("ADMIN_PASSWORD", "admin")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return users.EnsureAdmin(entity.User{
		Name:           "Admin",
		Email:          email,
		PasswordHash:   string(hash),
		DateOfRegister: time.Now().Format("January 2, 2006"),
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
