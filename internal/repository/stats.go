package repository

import "context"

type StatsRepository struct {
	db ExtHandle
}

func NewStatsRepository(db ExtHandle) *StatsRepository {
	return &StatsRepository{db: db}
}

type entityCounts struct {
	Customers        int64 `db:"customers"`
	FAQs             int64 `db:"faqs"`
	MessageTemplates int64 `db:"message_templates"`
	Appointments     int64 `db:"appointments"`
}

// CountEntities returns the row count of every entity table keyed by entity name.
func (r *StatsRepository) CountEntities(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM customers) AS customers,
			(SELECT COUNT(*) FROM faqs) AS faqs,
			(SELECT COUNT(*) FROM message_templates) AS message_templates,
			(SELECT COUNT(*) FROM appointments) AS appointments
	`

	var counts entityCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, err
	}

	return map[string]int64{
		"customer":         counts.Customers,
		"faq":              counts.FAQs,
		"message_template": counts.MessageTemplates,
		"appointment":      counts.Appointments,
	}, nil
}
