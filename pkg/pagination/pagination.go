// Package pagination 页码分页，响应格式 {count, next, previous, results}
package pagination

import (
	"errors"
	"math"
	"net/url"
	"strconv"

	"Tweeter/config"
)

const (
	PageQuery     = "page"
	PageSizeQuery = "page_size"
)

var ErrInvalidPage = errors.New("invalid page")

type Params struct {
	Page     int
	PageSize int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Params) Limit() int {
	return p.PageSize
}

type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type Paginator struct {
	conf *config.Pagination
}

func New(conf *config.Pagination) *Paginator {
	return &Paginator{conf: conf}
}

// Parse 读取 page / page_size，page_size 非法时回落默认值，超过上限截断
func (p *Paginator) Parse(query url.Values) (Params, error) {
	params := Params{Page: 1, PageSize: p.conf.PageSize}

	if raw := query.Get(PageSizeQuery); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			params.PageSize = min(size, p.conf.MaxPageSize)
		}
	}

	if raw := query.Get(PageQuery); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, ErrInvalidPage
		}
		// offset 和下一页页码都不能溢出
		if page-1 > (math.MaxInt-params.PageSize)/params.PageSize {
			return params, ErrInvalidPage
		}
		params.Page = page
	}
	return params, nil
}

// NewPage 组装分页结果，超出末页返回 ErrInvalidPage，没有数据时只有第一页合法
func NewPage[T any](u *url.URL, params Params, count int64, results []T) (*Page[T], error) {
	if params.Page > 1 && int64(params.Offset()) >= count {
		return nil, ErrInvalidPage
	}
	if results == nil {
		results = make([]T, 0)
	}

	page := &Page[T]{Count: count, Results: results}
	if int64(params.Page*params.PageSize) < count {
		page.Next = pageURL(u, params.Page+1)
	}
	if params.Page > 1 {
		page.Previous = pageURL(u, params.Page-1)
	}
	return page, nil
}

func pageURL(u *url.URL, page int) *string {
	q := u.Query()
	q.Set(PageQuery, strconv.Itoa(page))
	next := url.URL{Path: u.Path, RawQuery: q.Encode()}
	s := next.String()
	return &s
}
