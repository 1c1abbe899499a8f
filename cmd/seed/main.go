package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"clinicdesk/internal/config"
	"clinicdesk/internal/domain"
	"clinicdesk/internal/logging"
	"clinicdesk/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New("clinicdesk-seed", cfg.LogLevel)

	ctx := context.Background()

	db, err := repository.New(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to initialize database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("starting seed process")

	if err := truncateTables(ctx, db.DB()); err != nil {
		logger.Error("failed to truncate tables", "err", err)
		os.Exit(1)
	}

	customers, err := seedCustomers(ctx, repository.NewCustomerRepository(db.DB()))
	if err != nil {
		logger.Error("failed to seed customers", "err", err)
		os.Exit(1)
	}
	if err := seedFAQs(ctx, repository.NewFAQRepository(db.DB())); err != nil {
		logger.Error("failed to seed faqs", "err", err)
	}
	if err := seedMessageTemplates(ctx, repository.NewMessageTemplateRepository(db.DB())); err != nil {
		logger.Error("failed to seed message templates", "err", err)
	}
	if err := seedAppointments(ctx, repository.NewAppointmentRepository(db.DB()), customers); err != nil {
		logger.Error("failed to seed appointments", "err", err)
	}

	logger.Info("seed process completed")
}

func truncateTables(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `TRUNCATE TABLE appointments, customers, faqs, message_templates RESTART IDENTITY`)
	return err
}

func ptr(s string) *string {
	return &s
}

func seedCustomers(ctx context.Context, repo *repository.CustomerRepository) ([]*domain.Customer, error) {
	customers := []*domain.Customer{
		{Name: "John Doe", Phone: "+1234567890", Email: ptr("john@example.com"), Address: ptr("123 Main St")},
		{Name: "Maria Garcia", Phone: "+1234567891", Email: ptr("maria@example.com"), Notes: ptr("Prefers afternoon visits")},
		{Name: "Wei Chen", Phone: "+1234567892"},
	}

	for _, c := range customers {
		if err := repo.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("create customer %q: %w", c.Name, err)
		}
	}
	return customers, nil
}

func seedFAQs(ctx context.Context, repo *repository.FAQRepository) error {
	faqs := []*domain.FAQ{
		{Question: "What are your opening hours?", Answer: "Monday to Friday, 8:00 to 18:00.", Category: ptr("general"), IsActive: true},
		{Question: "Do you accept walk-ins?", Answer: "Yes, on weekday mornings.", Category: ptr("visits"), IsActive: true},
		{Question: "Can I pay by card?", Answer: "All major cards are accepted.", Category: ptr("billing"), IsActive: true},
		{Question: "Is there parking?", Answer: "Free parking behind the clinic.", IsActive: false},
	}

	for _, f := range faqs {
		if err := repo.Create(ctx, f); err != nil {
			return fmt.Errorf("create faq %q: %w", f.Question, err)
		}
	}
	return nil
}

func seedMessageTemplates(ctx context.Context, repo *repository.MessageTemplateRepository) error {
	templates := []*domain.MessageTemplate{
		{
			Name:         "Appointment confirmation",
			Content:      "Hello {customer_name}, your appointment is confirmed for {appointment_date} at {appointment_time}.",
			TemplateType: domain.TemplateTypeConfirmation,
			IsActive:     true,
		},
		{
			Name:         "Day-before reminder",
			Content:      "Hi {customer_name}, a reminder of your visit tomorrow at {appointment_time}.",
			TemplateType: domain.TemplateTypeReminder,
			IsActive:     true,
		},
		{
			Name:         "After-visit follow up",
			Content:      "Thank you for visiting, {customer_name}. How are you feeling?",
			TemplateType: domain.TemplateTypeFollowUp,
			IsActive:     true,
		},
		{
			Name:         "Holiday closure",
			Content:      "The clinic is closed on public holidays.",
			TemplateType: domain.TemplateTypeGeneral,
			IsActive:     false,
		},
	}

	for _, t := range templates {
		if err := repo.Create(ctx, t); err != nil {
			return fmt.Errorf("create message template %q: %w", t.Name, err)
		}
	}
	return nil
}

func seedAppointments(ctx context.Context, repo *repository.AppointmentRepository, customers []*domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	day := time.Now().UTC().Truncate(24 * time.Hour)
	slots := []struct {
		daysAhead int
		at        string
		status    domain.AppointmentStatus
	}{
		{-7, "09:00", domain.AppointmentStatusCompleted},
		{1, "10:30", domain.AppointmentStatusConfirmed},
		{3, "14:00", domain.AppointmentStatusScheduled},
		{5, "16:15", domain.AppointmentStatusCancelled},
	}

	for i, slot := range slots {
		customer := customers[i%len(customers)]
		appointment := &domain.Appointment{
			CustomerID:      customer.ID,
			AppointmentDate: day.AddDate(0, 0, slot.daysAhead),
			AppointmentTime: slot.at,
			Status:          slot.status,
			ReminderSent:    slot.daysAhead < 0,
		}
		if err := repo.Create(ctx, appointment); err != nil {
			return fmt.Errorf("create appointment for customer %d: %w", customer.ID, err)
		}
	}

	return nil
}
