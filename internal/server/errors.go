// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNilHandler      = errors.New("http handler is nil")
	errBindingListener = errors.New("error binding listener")
)
