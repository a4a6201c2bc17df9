package listing

import "time"

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Pagination پارامترهای مشترک صفحه‌بندی برای endpointهای لیست
type Pagination struct {
	Page    int
	PerPage int
	GetFull bool
}

// Normalize مقداردهی پیش‌فرض برای page و perPage
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
}

// Offset محاسبه skip بر اساس صفحه جاری
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// StartOfDay لنگر کردن کران پایین بازه تاریخ به 00:00:00
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay لنگر کردن کران بالای بازه تاریخ به 23:59:59
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
