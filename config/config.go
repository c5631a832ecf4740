package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App        *App        `json:"app" yaml:"app"`
	Redis      *Redis      `json:"redis" yaml:"redis"`
	Database   *Database   `json:"database" yaml:"database"`
	Jwt        *Jwt        `json:"jwt" yaml:"jwt"`
	Server     *Server     `json:"server" yaml:"server"`
	Pagination *Pagination `json:"pagination" yaml:"pagination"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New 读取 yaml 配置文件，文件不存在时直接 panic
func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse 解析配置内容并补齐默认值、环境变量覆盖
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	conf.applyEnv()
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Default 不依赖配置文件的默认配置
func Default() *Config {
	conf := &Config{}
	conf.applyDefaults()
	return conf
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = EnvDev
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.Driver == DriverSQLite && c.Database.Path == "" {
		c.Database.Path = "tweeter.db"
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.Secret == "" && c.App.Env != EnvProd {
		// 仅供本地开发，prod 必须通过配置或 TWEETER_JWT_SECRET 提供
		c.Jwt.Secret = "tweeter-dev-secret"
	}
	if c.Jwt.ExpiresTime == 0 {
		c.Jwt.ExpiresTime = 24 * 3600
	}
	if c.Pagination == nil {
		c.Pagination = &Pagination{}
	}
	if c.Pagination.PageSize <= 0 {
		c.Pagination.PageSize = 10
	}
	if c.Pagination.MaxPageSize < c.Pagination.PageSize {
		c.Pagination.MaxPageSize = 100
	}
}

func (c *Config) applyEnv() {
	if dsn := os.Getenv("TWEETER_DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if secret := os.Getenv("TWEETER_JWT_SECRET"); secret != "" {
		c.Jwt.Secret = secret
	}
	if port := os.Getenv("TWEETER_HTTP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			c.Server.Http = p
		}
	}
}

func (c *Config) validate() error {
	if c.Jwt.Secret == "" {
		return errors.New("jwt.secret is required (set it in the config file or TWEETER_JWT_SECRET)")
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
