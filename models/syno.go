// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// SynoResponse is the envelope every Synology web API endpoint wraps its
// payload in. Data is left raw because its shape depends on the api/method
// pair that produced the response.
type SynoResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *SynoError      `json:"error,omitempty"`
}

// SynoError carries the numeric error code returned by the NAS when
// Success is false. The code namespaces overlap between APIs, so it can
// only be interpreted together with the API name that produced it.
type SynoError struct {
	Code int `json:"code"`
}

// APIInfo describes one web API as advertised by SYNO.API.Info: the cgi
// path it is served from and the version range the NAS supports.
type APIInfo struct {
	Path       string `json:"path"`
	MinVersion int    `json:"minVersion"`
	MaxVersion int    `json:"maxVersion"`
}

// SharedFolder is one share as reported by SYNO.FileStation.List
// list_share. Path is the absolute folder path uploads are addressed to.
type SharedFolder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ShareList is the data payload of a list_share response.
type ShareList struct {
	Shares []SharedFolder `json:"shares"`
}
