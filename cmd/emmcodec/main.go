// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

// emmcodec encodes and decodes EMM messages from the command line.
//
//	emmcodec decode --message service-reject 035b25
//	emmcodec encode --message service-reject '{"emm_cause": 3}'
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/omec-project/emm-codec/logger"
	"github.com/omec-project/emm-codec/nasiface"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s encode|decode [flags] <json|hex>\n", os.Args[0])
	pflag.PrintDefaults()
}

func main() {
	var (
		msgName = pflag.StringP("message", "m", "service-reject", "message name")
		maxSize = pflag.Int("max-message-size", 8192, "size of the encode buffer")
		verbose = pflag.BoolP("verbose", "v", false, "log every IE slot")
	)

	pflag.Usage = usage
	pflag.Parse()

	if pflag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	if *verbose {
		logger.SetLogLevel(zapcore.DebugLevel)
	}

	codec, err := nasiface.NewCodecService(&nasiface.Conf{MaxMessageSize: *maxSize}, nil)
	if err != nil {
		logger.AppLog.Fatalln(err)
	}

	cmd, arg := pflag.Arg(0), pflag.Arg(1)

	switch cmd {
	case "encode":
		m, err := codec.New(*msgName)
		if err != nil {
			logger.AppLog.Fatalln(err)
		}

		if err := json.Unmarshal([]byte(arg), m); err != nil {
			logger.AppLog.Fatalln("invalid message:", err)
		}

		b, err := codec.Encode(m)
		if err != nil {
			logger.AppLog.Fatalln(err)
		}

		fmt.Println(hex.EncodeToString(b))
	case "decode":
		b, err := hex.DecodeString(arg)
		if err != nil {
			logger.AppLog.Fatalln("invalid hex:", err)
		}

		m, n, err := codec.Decode(*msgName, append([]byte{}, b...))
		if err != nil {
			logger.AppLog.Fatalln(err)
		}

		out, err := json.MarshalIndent(struct {
			Consumed int         `json:"consumed"`
			IEs      interface{} `json:"ies"`
		}{n, m}, "", "  ")
		if err != nil {
			logger.AppLog.Fatalln(err)
		}

		fmt.Println(string(out))
	default:
		usage()
		os.Exit(2)
	}
}
