package config

// Pagination 列表分页配置
type Pagination struct {
	PageSize    int `json:"page_size" yaml:"page_size"`
	MaxPageSize int `json:"max_page_size" yaml:"max_page_size"`
}

func ProvidePaginationConfig(cfg *Config) *Pagination {
	return cfg.Pagination
}
