// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package ffcapi

import (
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// RequestType for each request is defined in the individual file
type RequestType string

// Semver API versioning
type Version string

const (
	Version1_0_0 Version = "v1.0.0"
)

const VersionCurrent = Version1_0_0

type Variant string

const (
	VariantEVM Variant = "evm"
)

// Header is included consistently as a "ffcapi" structure on each request
type Header struct {
	RequestID   *fftypes.UUID `json:"id"`      // Unique for each request
	Version     Version       `json:"version"` // The API version
	Variant     Variant       `json:"variant"` // Defines the format of the method and params
	RequestType RequestType   `json:"type"`    // The type of the request, which defines the structure of the rest of the payload
}

// ErrorResponse allows blockchain connectors to encode useful information about an error in a JSON response body.
// This should be accompanied with a suitable non-success HTTP response code.
type ErrorResponse struct {
	Reason ErrorReason `json:"reason,omitempty"`
	Error  string      `json:"error"`
}

type RequestBase struct {
	FFCAPI Header `json:"ffcapi"`
}

func (r *RequestBase) FFCAPIHeader() *Header {
	return &r.FFCAPI
}

type ResponseBase struct {
	ErrorResponse
}

func (r *ResponseBase) ErrorMessage() string {
	return r.Error
}

func (r *ResponseBase) ErrorReason() ErrorReason {
	return r.Reason
}

type ffcapiRequest interface {
	FFCAPIHeader() *Header
	RequestType() RequestType
}

type ffcapiResponse interface {
	ErrorMessage() string
	ErrorReason() ErrorReason
}

func initHeader(header *Header, requestID *fftypes.UUID, variant Variant, requestType RequestType) {
	if requestID == nil {
		requestID = fftypes.NewUUID()
	}
	header.RequestID = requestID
	header.Version = VersionCurrent
	header.Variant = variant
	header.RequestType = requestType
}
