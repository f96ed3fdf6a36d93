// Package view holds the page state shared by every list page: the active
// filter and page, the fetched collection and the per-item actions on it.
package view

import (
	"net/url"
	"strconv"
	"strings"
)

// Query is the filter/tab/page state of one list page.
type Query struct {
	Filter   string
	Tab      string
	Search   string
	Category string
	Level    string
	Page     int
}

// ParseQuery reads a Query from URL values, falling back to defaults for
// missing fields. Page is never below 1.
func ParseQuery(values url.Values, defaults Query) Query {
	q := defaults
	if v := strings.TrimSpace(values.Get("status")); v != "" {
		q.Filter = strings.ToLower(v)
	}
	if v := strings.TrimSpace(values.Get("tab")); v != "" {
		q.Tab = strings.ToLower(v)
	}
	if v, ok := values["search"]; ok {
		q.Search = strings.TrimSpace(v[0])
	}
	if v, ok := values["category"]; ok {
		q.Category = strings.TrimSpace(v[0])
	}
	if v, ok := values["level"]; ok {
		q.Level = strings.ToLower(strings.TrimSpace(v[0]))
	}
	q.Page = parsePositiveInt(values.Get("page"), 1)
	return q
}

// Values is the inverse of ParseQuery; empty fields are omitted.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Filter != "" {
		values.Set("status", q.Filter)
	}
	if q.Tab != "" {
		values.Set("tab", q.Tab)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Level != "" {
		values.Set("level", q.Level)
	}
	if q.Page > 1 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	return values
}

// URL renders path with the query attached.
func (q Query) URL(path string) string {
	encoded := q.Values().Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// Controller owns a Query. Pages are rendered server side, so every change
// becomes a link: the *URL methods apply a setter to a copy and render it.
type Controller struct {
	query Query
}

func NewController(initial Query) *Controller {
	if initial.Page < 1 {
		initial.Page = 1
	}
	return &Controller{query: initial}
}

func (c *Controller) Query() Query {
	return c.query
}

func (c *Controller) clone() *Controller {
	return &Controller{query: c.query}
}

// SetFilter switches the filter value and starts over at page 1.
func (c *Controller) SetFilter(filter string) {
	c.query.Filter = filter
	c.query.Page = 1
}

// SetTab switches the tab and starts over at page 1.
func (c *Controller) SetTab(tab string) {
	c.query.Tab = tab
	c.query.Page = 1
}

func (c *Controller) SetSearch(search string) {
	c.query.Search = search
	c.query.Page = 1
}

func (c *Controller) SetCategory(category string) {
	c.query.Category = category
	c.query.Page = 1
}

func (c *Controller) SetLevel(level string) {
	c.query.Level = level
	c.query.Page = 1
}

// NextPage has no upper bound: the total page count is not known on most
// pages, so paging past the end shows the empty state.
func (c *Controller) NextPage() {
	c.query.Page++
}

// PrevPage stops at page 1.
func (c *Controller) PrevPage() {
	if c.query.Page > 1 {
		c.query.Page--
	}
}

func (c *Controller) HasPrev() bool {
	return c.query.Page > 1
}

func (c *Controller) HasNext() bool {
	return true
}

func (c *Controller) FilterURL(path, filter string) string {
	next := c.clone()
	next.SetFilter(filter)
	return next.query.URL(path)
}

func (c *Controller) TabURL(path, tab string) string {
	next := c.clone()
	next.SetTab(tab)
	return next.query.URL(path)
}

func (c *Controller) SearchURL(path, search string) string {
	next := c.clone()
	next.SetSearch(search)
	return next.query.URL(path)
}

func (c *Controller) CategoryURL(path, category string) string {
	next := c.clone()
	next.SetCategory(category)
	return next.query.URL(path)
}

func (c *Controller) LevelURL(path, level string) string {
	next := c.clone()
	next.SetLevel(level)
	return next.query.URL(path)
}

// PrevURL and NextURL build the links for the pagination controls.
func (c *Controller) PrevURL(path string) string {
	next := c.clone()
	next.PrevPage()
	return next.query.URL(path)
}

func (c *Controller) NextURL(path string) string {
	next := c.clone()
	next.NextPage()
	return next.query.URL(path)
}
