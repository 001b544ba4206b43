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
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

type api struct {
	client  *resty.Client
	variant Variant
}

func InitConfig(conf config.Section) {
	ffresty.InitConfig(conf)
}

// NewConnectorClient returns an API implementation that POSTs each request as JSON
// to a remote connector, using the HTTP settings (URL, auth, TLS, retry) in the section.
func NewConnectorClient(ctx context.Context, conf config.Section, variant Variant) (API, error) {
	client, err := ffresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &api{
		client:  client,
		variant: variant,
	}, nil
}

func (a *api) invokeAPI(ctx context.Context, input ffcapiRequest, output ffcapiResponse) (ErrorReason, error) {

	header := input.FFCAPIHeader()
	initHeader(header, header.RequestID, a.variant, input.RequestType())
	log.L(ctx).Debugf("Connector request %s type=%s", header.RequestID, header.RequestType)
	res, err := a.client.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(output).
		SetError(output).
		Post("/")
	if err != nil {
		return "", i18n.WrapError(ctx, err, bsmsgs.MsgConnectorFailInvoke, header.RequestID)
	}
	if !strings.Contains(res.Header().Get("Content-Type"), "application/json") {
		return "", i18n.NewError(ctx, bsmsgs.MsgConnectorInvalidContentType, header.RequestID, res.Header().Get("Content-Type"))
	}
	if res.IsError() {
		return output.ErrorReason(), i18n.NewError(ctx, bsmsgs.MsgConnectorError, header.RequestID, output.ErrorReason(), output.ErrorMessage())
	}

	return "", nil
}
