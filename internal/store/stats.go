package store

import (
	"sort"

	"github.com/readingnest/server/internal/model"
)

// Stats is the aggregate view behind the dashboard and statistics charts.
type Stats struct {
	TotalBooks       int            `json:"totalBooks"`
	Reading          int            `json:"reading"`
	Completed        int            `json:"completed"`
	WantToRead       int            `json:"wantToRead"`
	OnHold           int            `json:"onHold"`
	PagesRead        int            `json:"pagesRead"`
	Categories       []CategoryStat `json:"categories"`
	CompletedByMonth []MonthStat    `json:"completedByMonth"`
}

type CategoryStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MonthStat struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// Stats computes the aggregates in one pass over the collection. Pages read
// counts the full page count for completed books and the current page
// otherwise.
func (l *Library) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Stats{TotalBooks: len(l.books)}
	categories := make(map[string]int)
	months := make(map[string]int)

	for i := range l.books {
		b := &l.books[i]
		switch b.Status {
		case model.StatusReading:
			s.Reading++
			s.PagesRead += b.CurrentPage
		case model.StatusCompleted:
			s.Completed++
			s.PagesRead += b.TotalPage
			if b.EndDate != nil && !b.EndDate.IsZero() {
				months[b.EndDate.Format("2006-01")]++
			}
		case model.StatusWantToRead:
			s.WantToRead++
		case model.StatusOnHold:
			s.OnHold++
			s.PagesRead += b.CurrentPage
		}
		categories[b.Category]++
	}

	s.Categories = make([]CategoryStat, 0, len(categories))
	for name, count := range categories {
		s.Categories = append(s.Categories, CategoryStat{Name: name, Count: count})
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		if s.Categories[i].Count != s.Categories[j].Count {
			return s.Categories[i].Count > s.Categories[j].Count
		}
		return s.Categories[i].Name < s.Categories[j].Name
	})

	s.CompletedByMonth = make([]MonthStat, 0, len(months))
	for month, count := range months {
		s.CompletedByMonth = append(s.CompletedByMonth, MonthStat{Month: month, Count: count})
	}
	sort.Slice(s.CompletedByMonth, func(i, j int) bool {
		return s.CompletedByMonth[i].Month < s.CompletedByMonth[j].Month
	})

	return s
}
