// Copyright 2026 the vertx-tracing authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"vertx-tracing/pkg/log"
)

// Config is the module's configuration surface. It only covers the bootstrap
// of the external tracers; the bridges themselves take no knobs.
type Config struct {
	Log     log.Config `mapstructure:"log"`
	Tracing Tracing    `mapstructure:"tracing"`
}

// Tracing configures the OpenTelemetry bootstrap path.
type Tracing struct {
	ServiceName    string   `mapstructure:"service_name"`
	ExportEndpoint string   `mapstructure:"export_endpoint"` // host:port of the OTLP/http collector
	Insecure       bool     `mapstructure:"insecure"`
	SampleRatio    float64  `mapstructure:"sample_ratio"` // <=0 or >=1 samples everything
	Propagators    []string `mapstructure:"propagators"`  // tracecontext | baggage | b3 | ot
}

// LoadConfig reads configPath (yaml) with environment overrides, e.g.
// TRACING_EXPORT_ENDPOINT overrides tracing.export_endpoint. An empty path
// loads defaults plus environment only.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("tracing.service_name", "vertx")
	v.SetDefault("tracing.sample_ratio", 1.0)
	v.SetDefault("log.level", "info")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
