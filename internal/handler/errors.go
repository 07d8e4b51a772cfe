// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errHTTPHandlerNotCreated wraps the failure returned by the HTTP transport
// constructor, such as a missing client directory in production. It is a
// fatal misconfiguration and causes the application to fail at startup.
var errHTTPHandlerNotCreated = errors.New("http handler is not created")
