package model

type Config struct {
	DataDir string `yaml:"data_dir"`
	Editor  string `yaml:"editor"`
	Sync    struct {
		Enable     bool   `yaml:"enable"`
		Platform   string `yaml:"platform"`
		Bucket     string `yaml:"bucket"`
		AWSProfile string `yaml:"aws_profile"`
		AWSRegion  string `yaml:"aws_region"`
	} `yaml:"sync"`
}

func DefaultConfig() Config {
	config := Config{
		DataDir: "~/.config/etb/data",
		Editor:  "vim",
	}
	config.Sync.Platform = "aws"
	return config
}
