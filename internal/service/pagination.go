package service

import (
	"strconv"

	"github.com/Egor213/LogSentinel/internal/domain"
)

const maxPerPage = 100

func numPages(total, perPage int) int {
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

func pageInfo(number, perPage, total int) domain.PageInfo {
	pages := numPages(total, perPage)
	return domain.PageInfo{
		Number:      number,
		TotalPages:  pages,
		TotalItems:  total,
		PerPage:     perPage,
		HasNext:     number < pages,
		HasPrevious: number > 1,
	}
}

// feedPage resolves a page number for the anomaly feed: anything out of range falls back to the first page.
func feedPage(page, perPage, total int) domain.PageInfo {
	if page < 1 || page > numPages(total, perPage) {
		page = 1
	}
	return pageInfo(page, perPage, total)
}

// lenientPage resolves a raw page parameter: unparsable means the first page, past the end means the last.
func lenientPage(raw string, perPage, total int) domain.PageInfo {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		page = 1
	}
	if pages := numPages(total, perPage); page > pages {
		page = pages
	}
	return pageInfo(page, perPage, total)
}

func clampPerPage(perPage int) int {
	if perPage > maxPerPage {
		return maxPerPage
	}
	return perPage
}
