package envconfig

import "github.com/caarlos0/env/v11"

type storageEnv struct {
	DataDir   string `env:"FIXLAB_DATA_DIR" envDefault:"./data"`
	DistDir   string `env:"FIXLAB_DIST_DIR" envDefault:"./dist"`
	RulesFile string `env:"FIXLAB_RULES_FILE"`
}

type storage struct {
	raw storageEnv
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &storage{raw: raw}, nil
}

func (cfg *storage) DataDir() string   { return cfg.raw.DataDir }
func (cfg *storage) DistDir() string   { return cfg.raw.DistDir }
func (cfg *storage) RulesFile() string { return cfg.raw.RulesFile }
