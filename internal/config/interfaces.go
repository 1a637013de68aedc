package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type DeepSeek interface {
	BaseURL() string
	APIKey() string
	HasKey() bool
	Model() string
	Endpoint() string
}

type Storage interface {
	DataDir() string
	DistDir() string
	RulesFile() string
}
