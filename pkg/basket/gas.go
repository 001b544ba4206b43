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

package basket

import (
	"bytes"
	"context"
	"encoding/json"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-basket-sdk/internal/bsconfig"
	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
	"github.com/hyperledger/firefly-basket-sdk/pkg/ffcapi"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// gasOracle supplies the gas price for a submission when the caller does not
// override it. The price is looked up on every submission.
type gasOracle struct {
	mode          string
	connector     ffcapi.API
	fixedGasPrice *fftypes.JSONAny
	client        *resty.Client
	method        string
	template      *template.Template
}

func newGasOracle(ctx context.Context, conf config.Section, connector ffcapi.API) (*gasOracle, error) {
	g := &gasOracle{
		mode:          conf.GetString(bsconfig.GasOracleMode),
		connector:     connector,
		fixedGasPrice: fftypes.JSONAnyPtr(conf.GetString(bsconfig.GasOracleFixedGasPrice)),
		method:        conf.GetString(bsconfig.GasOracleMethod),
	}

	switch g.mode {
	case bsconfig.GasOracleModeConnector:
		// No initialization required
	case bsconfig.GasOracleModeRESTAPI:
		client, err := ffresty.New(ctx, conf)
		if err != nil {
			return nil, err
		}
		g.client = client
		templateString := conf.GetString(bsconfig.GasOracleTemplate)
		if templateString == "" {
			return nil, i18n.NewError(ctx, bsmsgs.MsgMissingGOTemplate)
		}
		t, err := template.New("").Funcs(sprig.TxtFuncMap()).Parse(templateString)
		if err != nil {
			return nil, i18n.NewError(ctx, bsmsgs.MsgBadGOTemplate, err)
		}
		g.template = t
	case bsconfig.GasOracleModeFixed:
		if g.fixedGasPrice.IsNil() {
			return nil, i18n.NewError(ctx, bsmsgs.MsgNoGasConfigSet)
		}
	default:
		return nil, i18n.NewError(ctx, bsmsgs.MsgUnknownGasOracleMode, g.mode)
	}
	return g, nil
}

func (g *gasOracle) getGasPrice(ctx context.Context) (*fftypes.JSONAny, error) {
	switch g.mode {
	case bsconfig.GasOracleModeRESTAPI:
		return g.getGasPriceAPI(ctx)
	case bsconfig.GasOracleModeConnector:
		res, reason, err := g.connector.GasPriceEstimate(ctx, &ffcapi.GasPriceEstimateRequest{})
		if err != nil {
			return nil, apitypes.NewExternalProviderError(reason, err)
		}
		return res.GasPrice, nil
	default:
		// The fixed value can be any JSON structure the connector understands,
		// such as a simple value or an EIP-1559 fee object
		return g.fixedGasPrice, nil
	}
}

func (g *gasOracle) getGasPriceAPI(ctx context.Context) (*fftypes.JSONAny, error) {
	res, err := g.client.R().
		SetContext(ctx).
		Execute(g.method, "")
	if err != nil {
		return nil, apitypes.NewExternalProviderError("", i18n.WrapError(ctx, err, bsmsgs.MsgErrorQueryingGasOracleAPI, -1, err.Error()))
	}
	if res.IsError() {
		return nil, apitypes.NewExternalProviderError("", i18n.NewError(ctx, bsmsgs.MsgErrorQueryingGasOracleAPI, res.StatusCode(), res.String()))
	}
	var data map[string]interface{}
	if err := json.Unmarshal(res.Body(), &data); err != nil {
		return nil, i18n.WrapError(ctx, err, bsmsgs.MsgInvalidJSONGasObject)
	}
	buff := new(bytes.Buffer)
	if err := g.template.Execute(buff, data); err != nil {
		return nil, i18n.WrapError(ctx, err, bsmsgs.MsgGasOracleResultError)
	}
	log.L(ctx).Debugf("Gas price from oracle: %s", buff.String())
	return fftypes.JSONAnyPtr(buff.String()), nil
}
