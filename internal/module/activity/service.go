package activity

import (
	"context"
	"slices"
	"strings"

	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/pkg"
)

// Feed sort fields accepted by FeedQuery.SortField.
const (
	SortByAction = "action"
	SortByEmail  = "email"
	SortByDate   = "date"
)

// FeedQuery selects a window of the recent-activity feed.
type FeedQuery struct {
	Keyword    string
	SortField  string
	Descending bool
	Page       int
	Limit      int
}

// FeedPage is one window of the recent-activity feed.
type FeedPage struct {
	Items    []domain.Activity `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	LastPage int               `json:"last_page"`
	Buttons  []string          `json:"buttons"`
}

// Service exposes the recent-activity feed.
type Service interface {
	Feed(ctx context.Context, userID uint, q FeedQuery) (*FeedPage, error)
}

// activityService implements Service. The feed loads the user's full history
// and filters, sorts, and windows it in memory: activity volume per user is
// small, and the selector tokens must reflect the filtered count, not the
// stored one.
type activityService struct {
	repo domain.ActivityRepository
}

// NewService creates a new activity Service.
func NewService(repo domain.ActivityRepository) Service {
	return &activityService{repo: repo}
}

// Feed returns one window of the user's activity feed.
func (s *activityService) Feed(ctx context.Context, userID uint, q FeedQuery) (*FeedPage, error) {
	if q.SortField != "" && !validSortField(q.SortField) {
		return nil, domain.NewAppError(domain.CodeValidation, "unknown sort field: "+q.SortField, nil)
	}

	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := filterByKeyword(all, q.Keyword)
	sortFeed(filtered, q.SortField, q.Descending)

	pager := pkg.NewPager(q.Limit)
	pager.SetKeyword(q.Keyword)
	pager.SetTotal(len(filtered))
	pager.GoToPage(q.Page)

	return &FeedPage{
		Items:    pkg.Window(filtered, pager.Page(), pager.Limit()),
		Total:    pager.Total(),
		Page:     pager.Page(),
		PageSize: pager.Limit(),
		LastPage: pager.LastPage(),
		Buttons:  pager.Buttons(),
	}, nil
}

// filterByKeyword keeps entries whose action name or email contains the
// keyword, case-insensitively. An empty keyword keeps everything.
func filterByKeyword(items []domain.Activity, keyword string) []domain.Activity {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return items
	}

	filtered := make([]domain.Activity, 0, len(items))
	for _, a := range items {
		if strings.Contains(strings.ToLower(a.ActionName), keyword) ||
			strings.Contains(strings.ToLower(a.Email), keyword) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// sortFeed orders the feed in place. An empty field keeps the repository's
// newest-first order.
func sortFeed(items []domain.Activity, field string, descending bool) {
	if field == "" {
		return
	}

	sorter := pkg.NewSorter()
	sorter.StartDescending(SortByDate)
	sorter.SortBy(field)
	if (sorter.Direction() == pkg.SortDescending) != descending {
		sorter.SortBy(field)
	}

	slices.SortStableFunc(items, func(a, b domain.Activity) int {
		switch field {
		case SortByAction:
			return sorter.Compare(a.ActionName, b.ActionName)
		case SortByEmail:
			return sorter.Compare(a.Email, b.Email)
		default:
			return sorter.CompareTimes(a.CreatedAt, b.CreatedAt)
		}
	})
}

func validSortField(field string) bool {
	switch field {
	case SortByAction, SortByEmail, SortByDate:
		return true
	}
	return false
}
