package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port          int    `yaml:"port"`
	LogLevel      string `yaml:"log_level"`
	LogJSON       bool   `yaml:"log_json"`
	RecentThreads int    `yaml:"recent_threads"` // threads returned by a board listing
	TailReplies   int    `yaml:"tail_replies"`   // replies kept per thread in a listing
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	public.applyDefaults()
	return &Config{public, private}
}

func (p *Public) applyDefaults() {
	if p.Port == 0 {
		p.Port = 8080
	}
	if p.LogLevel == "" {
		p.LogLevel = "info"
	}
	if p.RecentThreads == 0 {
		p.RecentThreads = 10
	}
	if p.TailReplies == 0 {
		p.TailReplies = 3
	}
}
