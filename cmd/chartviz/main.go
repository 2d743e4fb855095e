/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Command chartviz serves chart data queries for the YAML chart definitions
// under a chart root directory.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ilhamster/chartviz/logging"
	"github.com/ilhamster/chartviz/service"
)

// cli represents all command-line flags.  Each flag may also be set through
// a CHARTVIZ_-prefixed environment variable.
type cli struct {
	Port      int    `default:"7410" help:"Port to serve chartviz clients on."`
	ChartRoot string `default:"."    help:"The root path for chart definition files."`
	CacheSize int    `default:"10"   help:"The number of parsed charts to cache."`

	Log struct {
		Level  string `default:"info"    help:"${help_log_level}"  enum:"${enum_log_level}"`
		Format string `default:"console" help:"${help_log_format}" enum:"${enum_log_format}"`
	} `embed:"" prefix:"log-"`
}

var (
	logLevels = []string{
		zapcore.DebugLevel.String(),
		zapcore.InfoLevel.String(),
		zapcore.WarnLevel.String(),
		zapcore.ErrorLevel.String(),
	}

	logFormats = []string{logging.ConsoleFormat, logging.JSONFormat}

	kongOptions = []kong.Option{
		kong.Name("chartviz"),
		kong.Description("Serves interactive chart data."),
		kong.Vars{
			"enum_log_level":  strings.Join(logLevels, ","),
			"enum_log_format": strings.Join(logFormats, ","),
			"help_log_level":  fmt.Sprintf("Log level: '%s'.", strings.Join(logLevels, "', '")),
			"help_log_format": fmt.Sprintf("Log format: '%s'.", strings.Join(logFormats, "', '")),
		},
		kong.DefaultEnvars("CHARTVIZ"),
	}
)

func main() {
	var c cli
	kong.Parse(&c, kongOptions...)

	logger, err := logging.Setup(c.Log.Level, c.Log.Format)
	if err != nil {
		log.Fatalf("Failed to set up logging: %s", err)
	}
	defer logger.Sync()

	svc, err := service.New(c.ChartRoot, c.CacheSize, logger)
	if err != nil {
		logger.Fatal("Failed to create chartviz service", zap.Error(err))
	}

	mux := http.NewServeMux()
	svc.RegisterHandlers(mux)
	hostname, err := os.Hostname()
	if err != nil {
		logger.Fatal("Failed to get hostname", zap.Error(err))
	}

	logger.Info("Serving chartviz",
		zap.String("url", fmt.Sprintf("http://%s:%d", hostname, c.Port)),
		zap.String("chart_root", c.ChartRoot),
	)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", c.Port), mux); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
