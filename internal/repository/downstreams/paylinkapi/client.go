package paylinkapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/commercegate/paylink-console-service/internal/repository/downstreams"
)

type Impl struct {
	client  aurestclientapi.Client
	baseUrl string
}

func New(paylinkApiBaseUrl string, fixedApiToken string) (PaylinkAPI, error) {
	if paylinkApiBaseUrl == "" {
		return nil, errors.New("service.paylink_api not configured. This service cannot function without the upstream payment-link API.")
	}

	client, err := downstreams.ClientWith(
		downstreams.ApiTokenRequestManipulator(fixedApiToken),
		"paylink-api-breaker",
	)
	if err != nil {
		return nil, err
	}

	return &Impl{
		client:  client,
		baseUrl: paylinkApiBaseUrl,
	}, nil
}

func (i *Impl) ListPaymentLinks(ctx context.Context, filter ListFilter) (ListResponseDto, error) {
	bodyDto := ListResponseDto{
		Payments: make([]PaymentLinkDto, 0),
	}
	response := aurestclientapi.ParsedResponse{
		Body: &bodyDto,
	}

	requestUrl := fmt.Sprintf("%s/payment-links", i.baseUrl)
	if query := listQuery(filter); query != "" {
		requestUrl = fmt.Sprintf("%s?%s", requestUrl, query)
	}

	err := i.client.Perform(ctx, http.MethodGet, requestUrl, nil, &response)
	return bodyDto, downstreams.ErrByStatus(err, response.Status)
}

func listQuery(filter ListFilter) string {
	params := url.Values{}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.Type != "" {
		params.Set("type", filter.Type)
	}
	if filter.Gateway != "" {
		params.Set("gateway", filter.Gateway)
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.Page > 0 {
		params.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}

	return params.Encode()
}

func (i *Impl) GetPaymentLink(ctx context.Context, id string) (PaymentLinkDto, error) {
	bodyDto := SingleResponseDto{}
	response := aurestclientapi.ParsedResponse{
		Body: &bodyDto,
	}
	requestUrl := fmt.Sprintf("%s/payment-links/%s", i.baseUrl, url.PathEscape(id))
	err := i.client.Perform(ctx, http.MethodGet, requestUrl, nil, &response)
	return bodyDto.Data, downstreams.ErrByStatus(err, response.Status)
}

func (i *Impl) CreatePayment(ctx context.Context, request CreatePaymentRequestDto) (CreateResultDto, error) {
	bodyDto := CreateResponseDto{}
	response := aurestclientapi.ParsedResponse{
		Body: &bodyDto,
	}
	requestUrl := fmt.Sprintf("%s/payments/create", i.baseUrl)
	err := i.client.Perform(ctx, http.MethodPost, requestUrl, request, &response)
	return bodyDto.Result, downstreams.ErrByStatus(err, response.Status)
}

func (i *Impl) UpdatePaymentLink(ctx context.Context, id string, request UpdatePaymentRequestDto) (PaymentLinkDto, error) {
	bodyDto := SingleResponseDto{}
	response := aurestclientapi.ParsedResponse{
		Body: &bodyDto,
	}
	requestUrl := fmt.Sprintf("%s/payment-links/%s", i.baseUrl, url.PathEscape(id))
	err := i.client.Perform(ctx, http.MethodPatch, requestUrl, request, &response)
	return bodyDto.Data, downstreams.ErrByStatus(err, response.Status)
}

func (i *Impl) UpdatePaymentLinkStatus(ctx context.Context, id string, status string) (PaymentLinkDto, error) {
	bodyDto := SingleResponseDto{}
	response := aurestclientapi.ParsedResponse{
		Body: &bodyDto,
	}
	requestUrl := fmt.Sprintf("%s/payment-links/%s/status", i.baseUrl, url.PathEscape(id))
	err := i.client.Perform(ctx, http.MethodPatch, requestUrl, StatusUpdateRequestDto{Status: status}, &response)
	return bodyDto.Data, downstreams.ErrByStatus(err, response.Status)
}

func (i *Impl) DeletePaymentLink(ctx context.Context, id string) error {
	response := aurestclientapi.ParsedResponse{}
	requestUrl := fmt.Sprintf("%s/payment-links/%s", i.baseUrl, url.PathEscape(id))
	err := i.client.Perform(ctx, http.MethodDelete, requestUrl, nil, &response)
	return downstreams.ErrByStatus(err, response.Status)
}

func (i *Impl) GetPublicPaymentLink(ctx context.Context, token string) (PaymentLinkDto, error) {
	bodyDto := SingleResponseDto{}
	response := aurestclientapi.ParsedResponse{
		Body: &bodyDto,
	}
	requestUrl := fmt.Sprintf("%s/public/payment-links/%s", i.baseUrl, url.PathEscape(token))
	err := i.client.Perform(ctx, http.MethodGet, requestUrl, nil, &response)
	return bodyDto.Data, downstreams.ErrByStatus(err, response.Status)
}
