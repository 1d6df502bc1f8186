package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/simoamogit/student-tracker/internal/config"
	"github.com/simoamogit/student-tracker/internal/database"
	"github.com/simoamogit/student-tracker/internal/logger"
	"github.com/simoamogit/student-tracker/internal/model"
	"github.com/simoamogit/student-tracker/internal/repository"
	"github.com/simoamogit/student-tracker/internal/schoolyear"
	"github.com/simoamogit/student-tracker/internal/service"
)

const (
	demoEmail    = "demo@student-tracker.local"
	demoPassword = "demo-password"
	demoName     = "Demo Student"
)

// Seeds a demo account with a week of lessons, a handful of grades and a
// few upcoming events. Re-running replaces the schedule in place (upsert)
// but appends new grades and events.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	userRepo := repository.NewUserRepository(pool)
	gradeRepo := repository.NewGradeRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	eventRepo := repository.NewEventRepository(pool)

	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo, authService)
	gradeService := service.NewGradeService(gradeRepo, rdb, cfg, log)
	scheduleService := service.NewScheduleService(scheduleRepo)
	eventService := service.NewEventService(eventRepo)

	fmt.Println("=== Seeding Demo Account ===")

	user, err := userService.Register(ctx, model.RegisterRequest{
		Email:    demoEmail,
		Password: demoPassword,
		Name:     demoName,
	})
	if err != nil {
		if !errors.Is(err, repository.ErrDuplicateEmail) {
			log.Fatal().Err(err).Msg("Failed to create demo user")
		}
		user, err = userRepo.GetByEmail(ctx, demoEmail)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load existing demo user")
		}
		fmt.Println("Demo user already exists, reusing it")
	} else {
		fmt.Printf("Created demo user %s\n", user.ID)
	}

	// Weekly schedule: five mornings of lessons.
	subjects := []struct {
		name      string
		teacher   string
		classroom string
	}{
		{"Mathematics", "Rossi", "A12"},
		{"Italian", "Bianchi", "A12"},
		{"English", "Verdi", "B3"},
		{"Physics", "Ferrari", "Lab 2"},
		{"History", "Russo", "A12"},
	}
	for day := 0; day < 5; day++ {
		for hour := 1; hour <= 4; hour++ {
			subj := subjects[(day+hour)%len(subjects)]
			dayCopy := day
			_, _, err := scheduleService.Upsert(ctx, user, model.CreateScheduleItemRequest{
				Day:       &dayCopy,
				Hour:      hour,
				Subject:   subj.name,
				Teacher:   subj.teacher,
				Classroom: subj.classroom,
			})
			if err != nil {
				log.Fatal().Err(err).Int("day", day).Int("hour", hour).Msg("Failed to seed schedule")
			}
		}
	}
	fmt.Println("Seeded weekly schedule")

	// A handful of grades across subjects.
	now := time.Now()
	grades := []model.CreateGradeRequest{
		{Subject: "Mathematics", Value: f64(8), Date: now.AddDate(0, 0, -20), GradeType: model.GradeWritten},
		{Subject: "Mathematics", Value: f64(6), Date: now.AddDate(0, 0, -8), GradeType: model.GradeOral, Weight: 2},
		{Subject: "Italian", Value: f64(7.5), Date: now.AddDate(0, 0, -14), GradeType: model.GradeWritten},
		{Subject: "English", Value: f64(9), Date: now.AddDate(0, 0, -5), GradeType: model.GradeOral},
		{Subject: "Physics", Value: f64(6.5), Date: now.AddDate(0, 0, -2), GradeType: model.GradePractical},
	}
	for _, g := range grades {
		if sem := schoolyear.SemesterOf(g.Date); sem != 0 {
			g.Semester = &sem
		}
		if _, err := gradeService.Create(ctx, user, g); err != nil {
			log.Fatal().Err(err).Str("subject", g.Subject).Msg("Failed to seed grade")
		}
	}
	fmt.Printf("Seeded %d grades\n", len(grades))

	// Upcoming events.
	mathSubject := "Mathematics"
	events := []model.CreateEventRequest{
		{Title: "Math exam", StartDate: now.AddDate(0, 0, 3), EventType: model.EventExam, Subject: &mathSubject},
		{Title: "History essay due", StartDate: now.AddDate(0, 0, 5), EventType: model.EventHomework},
		{Title: "School trip", StartDate: now.AddDate(0, 0, 12), EventType: model.EventOther},
	}
	for _, e := range events {
		if _, err := eventService.Create(ctx, user, e); err != nil {
			log.Fatal().Err(err).Str("title", e.Title).Msg("Failed to seed event")
		}
	}
	fmt.Printf("Seeded %d events\n", len(events))

	fmt.Printf("\nDone. Login with %s / %s\n", demoEmail, demoPassword)
}

func f64(v float64) *float64 { return &v }
