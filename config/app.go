package config

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

type App struct {
	Env      string `json:"env" yaml:"env"`
	Debug    bool   `json:"debug" yaml:"debug"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}
