// SPDX-License-Identifier: Apache-2.0
// Copyright 2020 Intel Corporation
// Copyright 2022-present Open Networking Foundation

package main

import (
	"github.com/spf13/pflag"

	"github.com/omec-project/emm-codec/logger"
	"github.com/omec-project/emm-codec/nasiface"
)

var (
	configPath = pflag.String("config", "emm.json", "path to emm codec config")
)

func main() {
	// cmdline args
	pflag.Parse()

	// Read and parse json startup file.
	conf, err := nasiface.LoadConfigFile(*configPath)
	if err != nil {
		logger.InitLog.Fatalln("Error reading conf file:", err)
	}

	logger.SetLogLevel(conf.LogLevel)

	logger.InitLog.Infof("%+v", conf)

	nasIface, err := nasiface.NewNASIface(conf)
	if err != nil {
		logger.InitLog.Fatalln("Error creating codec service:", err)
	}

	// blocking
	nasIface.Run()
}
