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

package bsmsgs

import (
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

//revive:disable
var (
	MsgUnknownSchema               = ffe("FF21500", "No schema registered with id '%s'")
	MsgDuplicateSchema             = ffe("FF21501", "Schema '%s' is already registered")
	MsgSchemaCompileFailed         = ffe("FF21502", "Failed to compile schema '%s': %s")
	MsgSchemaNonConformant         = ffe("FF21503", "Value for '%s' does not conform to schema '%s': %s", http.StatusBadRequest)
	MsgInvalidAddress              = ffe("FF21504", "'%s' must be a valid address: %v", http.StatusBadRequest)
	MsgInvalidBytes                = ffe("FF21505", "'%s' must be a 0x prefixed, even length hex string: %v", http.StatusBadRequest)
	MsgInvalidBytes32              = ffe("FF21506", "'%s' must be a 0x prefixed, 32 byte hex string: %v", http.StatusBadRequest)
	MsgInvalidNumber               = ffe("FF21507", "'%s' must be a valid number: %v", http.StatusBadRequest)
	MsgInvalidWholeNumber          = ffe("FF21508", "'%s' must be a non-negative whole number: %v", http.StatusBadRequest)
	MsgInvalidString               = ffe("FF21509", "'%s' must be a non-empty string", http.StatusBadRequest)
	MsgArrayLengthMismatch         = ffe("FF21510", "'%s' (length %d) and '%s' (length %d) must be the same length", http.StatusBadRequest)
	MsgArrayEmpty                  = ffe("FF21511", "'%s' must contain at least one entry", http.StatusBadRequest)
	MsgArrayNotUnique              = ffe("FF21512", "'%s' must not contain duplicate entries: '%v' appears more than once", http.StatusBadRequest)
	MsgNotGreaterThan              = ffe("FF21513", "'%s' must be greater than %s: %s", http.StatusBadRequest)
	MsgNotGreaterOrEqual           = ffe("FF21514", "'%s' must be greater than or equal to %s: %s", http.StatusBadRequest)
	MsgNotLessOrEqual              = ffe("FF21515", "'%s' must be less than or equal to %s: %s", http.StatusBadRequest)
	MsgNotMultipleOf               = ffe("FF21516", "'%s' must be a multiple of %s: %s", http.StatusBadRequest)
	MsgNotEqualNumber              = ffe("FF21517", "'%s' must equal %s: %s", http.StatusBadRequest)
	MsgAddressesNotEqual           = ffe("FF21518", "'%s' (%s) must be the same address as '%s' (%s)", http.StatusBadRequest)
	MsgAddressesNotDifferent       = ffe("FF21519", "'%s' and '%s' must be different addresses: %s", http.StatusBadRequest)
	MsgUnsupportedChainID          = ffe("FF21520", "'%s' chain ID %d is not supported. Supported: %v", http.StatusBadRequest)
	MsgMissingNumber               = ffe("FF21521", "'%s' is required", http.StatusBadRequest)
	MsgMissingTrade                = ffe("FF21522", "'%s' must be a trade instruction", http.StatusBadRequest)
	MsgMissingBound                = ffe("FF21523", "The bound for '%s' is required", http.StatusBadRequest)
	MsgContractNotConfigured       = ffe("FF21530", "Contract address for '%s' is not configured")
	MsgReconcileIndexOutOfRange    = ffe("FF21531", "Failure event in transaction '%s' reports operation index %s, but only %d operations were submitted")
	MsgReconcileDecodeFailed       = ffe("FF21532", "Failed to decode failure reason for operation %d in transaction '%s': %s")
	MsgReconcileBadEventABI        = ffe("FF21533", "Invalid event vocabulary ABI: %s")
	MsgReconcileMissingEvent       = ffe("FF21534", "Event vocabulary ABI is missing event '%s'")
	MsgReceiptLogParseFailed       = ffe("FF21535", "Failed to parse log %d from receipt of transaction '%s'")
	MsgRevertPayloadTooShort       = ffe("FF21536", "Failure payload of %d bytes is too short to contain an error selector")
	MsgRevertPayloadUnknown        = ffe("FF21537", "Failure payload with selector %s does not match any known error encoding")
	MsgRevertPayloadInvalid        = ffe("FF21538", "Failure payload for error '%s' could not be unpacked: %s")
	MsgBadErrorABI                 = ffe("FF21539", "Invalid custom error ABI: %s")
	MsgConnectorFailInvoke         = ffe("FF21540", "Connector request failed. requestId=%s failed to call connector API")
	MsgConnectorInvalidContentType = ffe("FF21541", "Connector failed request. requestId=%s invalid response content type: %s")
	MsgConnectorError              = ffe("FF21542", "Connector failed request. requestId=%s reason=%s error: %s")
	MsgMissingGOTemplate           = ffe("FF21543", "Missing template for processing response from Gas Oracle REST API")
	MsgBadGOTemplate               = ffe("FF21544", "Invalid Go template: %s")
	MsgErrorQueryingGasOracleAPI   = ffe("FF21545", "Error from gas station API [%d]: %s")
	MsgInvalidJSONGasObject        = ffe("FF21546", "Failed to parse response from Gas Oracle REST API as a JSON object")
	MsgGasOracleResultError        = ffe("FF21547", "Error processing result from gas station API via template")
	MsgNoGasConfigSet              = ffe("FF21548", "A fixed gas price must be set when not using a gas oracle")
	MsgUnknownGasOracleMode        = ffe("FF21549", "Unknown gas oracle mode '%s'")
	MsgTransactionReverted         = ffe("FF21550", "Transaction '%s' reverted, so no operation in the batch was applied")
)
