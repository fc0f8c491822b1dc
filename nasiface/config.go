// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package nasiface

import (
	"encoding/json"
	"math"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	// Default values
	httpPortDefault       = "8080"
	maxMessageSizeDefault = 8192
	readTimeoutDefault    = 5 * time.Second
)

// Conf : Json conf struct.
type Conf struct {
	LogLevel zapcore.Level `json:"log_level"`

	HTTPPort       string `json:"http_port"`
	ReadTimeout    string `json:"read_timeout"`
	MaxMessageSize int    `json:"max_message_size"`
	EnableMetrics  bool   `json:"enable_metrics"`
}

// validateConf checks that the given config reaches a baseline of correctness.
func validateConf(conf Conf) error {
	port, err := strconv.Atoi(conf.HTTPPort)
	if err != nil || port <= 0 || port > math.MaxUint16 {
		return ErrInvalidArgumentWithReason("conf.HTTPPort", conf.HTTPPort, "invalid port")
	}

	if _, err := time.ParseDuration(conf.ReadTimeout); err != nil {
		return ErrInvalidArgumentWithReason("conf.ReadTimeout", conf.ReadTimeout, "invalid duration")
	}

	if conf.MaxMessageSize <= 0 || conf.MaxMessageSize > 2*math.MaxUint16 {
		return ErrInvalidArgumentWithReason("conf.MaxMessageSize", conf.MaxMessageSize, "out of range")
	}

	return nil
}

// LoadConfigFile : parse json file and populate corresponding struct.
func LoadConfigFile(filepath string) (Conf, error) {
	byteValue, err := os.ReadFile(filepath)
	if err != nil {
		return Conf{}, err
	}

	var conf Conf

	err = json.Unmarshal(byteValue, &conf)
	if err != nil {
		return Conf{}, err
	}

	// Set defaults, when missing.
	if conf.HTTPPort == "" {
		conf.HTTPPort = httpPortDefault
	}

	if conf.ReadTimeout == "" {
		conf.ReadTimeout = readTimeoutDefault.String()
	}

	if conf.MaxMessageSize == 0 {
		conf.MaxMessageSize = maxMessageSizeDefault
	}

	// Perform basic validation.
	err = validateConf(conf)
	if err != nil {
		return Conf{}, err
	}

	return conf, nil
}
