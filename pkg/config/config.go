// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/TFMV/SimilarityRate/pkg/similarity"
)

type DBCreds struct {
	Host           string `yaml:"host"`
	Port           string `yaml:"port"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	Database       string `yaml:"database"`
	ReferenceTable string `yaml:"reference_table"`
	// URL takes precedence over the individual fields when set.
	URL string `yaml:"url"`
}

// Configured reports whether enough is set to open a connection.
func (c DBCreds) Configured() bool {
	return c.URL != "" || (c.Host != "" && c.Database != "")
}

type Server struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // gin mode: debug, release or test
}

type Weights struct {
	Blend similarity.BlendWeights `yaml:"blend"`
	Smart similarity.SmartWeights `yaml:"smart"`
}

type Matcher struct {
	Method        string  `yaml:"method"`
	TopN          int     `yaml:"top_n"`
	Workers       int     `yaml:"workers"`
	Normalize     bool    `yaml:"normalize"`
	PrefilterSize int     `yaml:"prefilter_size"`
	MinScore      float64 `yaml:"min_score"`
}

type Config struct {
	Environment string  `yaml:"environment"`
	Server      Server  `yaml:"server"`
	DBCreds     DBCreds `yaml:"db_creds"`
	Weights     Weights `yaml:"weights"`
	Matcher     Matcher `yaml:"matcher"`
}

// Default returns a configuration that works without a file or a database.
func Default() *Config {
	return &Config{
		Environment: "development",
		Server:      Server{Port: "8080", Mode: "release"},
		DBCreds:     DBCreds{Port: "5432", ReferenceTable: "reference_strings"},
		Weights: Weights{
			Blend: similarity.DefaultBlendWeights(),
			Smart: similarity.DefaultSmartWeights(),
		},
		Matcher: Matcher{
			Method:  string(similarity.MethodSmart),
			TopN:    10,
			Workers: 4,
		},
	}
}

// LoadConfig loads the configuration from a YAML file on top of Default, then
// applies environment overrides. An empty path skips the file.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv reads a .env file when present and overrides from the environment.
func (c *Config) applyEnv() error {
	// production environments usually have no .env file
	_ = godotenv.Load()

	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("SIMILARITY_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DBCreds.URL = v
	}
	if v := os.Getenv("SIMILARITY_METHOD"); v != "" {
		c.Matcher.Method = v
	}
	if v := os.Getenv("SIMILARITY_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("unable to parse SIMILARITY_WORKERS: %w", err)
		}
		c.Matcher.Workers = n
	}
	return nil
}

// Validate checks weights and matcher settings.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Weights.Blend.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("weights.blend: %w", err))
	}
	if err := c.Weights.Smart.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("weights.smart: %w", err))
	}
	if _, err := similarity.ParseMethod(c.Matcher.Method); err != nil {
		errs = append(errs, fmt.Errorf("matcher.method: %w", err))
	}
	if c.Matcher.TopN < 0 {
		errs = append(errs, fmt.Errorf("matcher.top_n must not be negative, got %d", c.Matcher.TopN))
	}
	if c.Matcher.Workers < 1 {
		errs = append(errs, fmt.Errorf("matcher.workers must be at least 1, got %d", c.Matcher.Workers))
	}
	if c.Matcher.PrefilterSize < 0 {
		errs = append(errs, fmt.Errorf("matcher.prefilter_size must not be negative, got %d", c.Matcher.PrefilterSize))
	}
	return errors.Join(errs...)
}
