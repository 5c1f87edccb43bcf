package common

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaginationParams 分页请求参数，Page 从 1 开始
type PaginationParams struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// PaginationResponse 分页响应结构
type PaginationResponse struct {
	Data     any   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Pages    int64 `json:"pages"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 110 // 一页放得下完整的 agent 目录
)

// Requested 请求里是否带了分页参数。不带时列表接口返回全量
func Requested(c *gin.Context) bool {
	return c.Query("page") != "" || c.Query("page_size") != ""
}

// ParsePagination 解析 page / page_size，参数无效时调用方应返回 400
func ParsePagination(c *gin.Context) (PaginationParams, error) {
	params := PaginationParams{Page: 1, PageSize: DefaultPageSize}

	if pageStr := c.Query("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return PaginationParams{}, fmt.Errorf("invalid page parameter")
		}
		params.Page = p
	}

	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		ps, err := strconv.Atoi(pageSizeStr)
		if err != nil || ps < 1 || ps > MaxPageSize {
			return PaginationParams{}, fmt.Errorf("invalid page_size parameter (1-%d)", MaxPageSize)
		}
		params.PageSize = ps
	}

	return params, nil
}

func (p PaginationParams) offset() int {
	return (p.Page - 1) * p.PageSize
}

func NewPaginationResponse(data any, total int64, params PaginationParams) PaginationResponse {
	pages := (total + int64(params.PageSize) - 1) / int64(params.PageSize)
	return PaginationResponse{
		Data:     data,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		Pages:    pages,
	}
}

// PaginateSlice 对内存列表分页，越界时返回空切片
func PaginateSlice[T any](items []T, params PaginationParams) []T {
	start := params.offset()
	if start >= len(items) {
		return []T{}
	}
	end := min(start+params.PageSize, len(items))
	return items[start:end]
}

// ApplyPagination 应用分页到 GORM 查询
func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	return db.Offset(params.offset()).Limit(params.PageSize)
}

// PaginateQuery 先 Count 再按页 Find，query 需已带好 WHERE / ORDER
//
//	var entries []models.CostEntry
//	total, err := common.PaginateQuery(db.Model(&models.CostEntry{}), params, &entries)
func PaginateQuery(query *gorm.DB, params PaginationParams, dest any) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	if err := ApplyPagination(query, params).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
