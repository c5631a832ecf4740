package config

import "time"

type Jwt struct {
	Secret      string `json:"secret" yaml:"secret"`
	ExpiresTime int64  `json:"expires_time" yaml:"expires_time"` // 秒
}

func (j *Jwt) TTL() time.Duration {
	return time.Duration(j.ExpiresTime) * time.Second
}
