package dto

import (
	"time"

	"gestock/internal/core/apperror"
	"gestock/internal/domain/stats"
)

const statsDateLayout = "2006-01-02"

// StatsQuery carries the optional date window of a statistics request.
// Dates use the YYYY-MM-DD layout; end_date is inclusive.
type StatsQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// ToFilter converts the query to a domain filter. The inclusive end
// date becomes an exclusive next-day bound.
func (q StatsQuery) ToFilter() (stats.Filter, error) {
	var filter stats.Filter

	if q.StartDate == "" && q.EndDate == "" {
		return filter, nil
	}
	if q.StartDate == "" || q.EndDate == "" {
		return filter, apperror.NewValidation("start_date and end_date must be provided together")
	}

	from, err := time.Parse(statsDateLayout, q.StartDate)
	if err != nil {
		return filter, apperror.NewValidation("start_date must use the YYYY-MM-DD format").
			WithDetail("start_date", q.StartDate)
	}
	end, err := time.Parse(statsDateLayout, q.EndDate)
	if err != nil {
		return filter, apperror.NewValidation("end_date must use the YYYY-MM-DD format").
			WithDetail("end_date", q.EndDate)
	}

	to := end.AddDate(0, 0, 1)
	filter.From = &from
	filter.To = &to
	return filter, nil
}
