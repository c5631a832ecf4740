package config

import "fmt"

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Database 数据库配置
type Database struct {
	Driver   string `json:"driver" yaml:"driver"`
	DSN      string `json:"dsn" yaml:"dsn"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Charset  string `json:"charset" yaml:"charset"`
	// sqlite 文件路径，":memory:" 为内存库
	Path string `json:"path" yaml:"path"`
}

// Dsn 拼接连接串，显式配置的 dsn 优先
func (d *Database) Dsn() string {
	if d.DSN != "" {
		return d.DSN
	}
	if d.Driver == DriverSQLite {
		return d.Path
	}
	charset := d.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	port := d.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, port, d.Database, charset)
}
