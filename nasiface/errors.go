// SPDX-License-Identifier: Apache-2.0
// Copyright 2021 Open Networking Foundation
package nasiface

import (
	"errors"
	"fmt"
)

var (
	errNotFound        = errors.New("not found")
	errInvalidArgument = errors.New("invalid argument")
)

func ErrNotFound(what string) error {
	return fmt.Errorf("%s %w", what, errNotFound)
}

func ErrNotFoundWithParam(what string, paramName string, paramValue interface{}) error {
	return fmt.Errorf("%s %w with %s=%v", what, errNotFound, paramName, paramValue)
}

func ErrInvalidArgument(name string, value interface{}) error {
	return fmt.Errorf("%w '%s': %v", errInvalidArgument, name, value)
}

func ErrInvalidArgumentWithReason(name string, value interface{}, reason string) error {
	return fmt.Errorf("%w '%s'=%v (%s)", errInvalidArgument, name, value, reason)
}
