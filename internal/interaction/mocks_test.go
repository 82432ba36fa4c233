package interaction

import (
	"context"

	"github.com/commercegate/paylink-console-service/internal/entities"
	"github.com/commercegate/paylink-console-service/internal/repository/downstreams/paylinkapi"
)

type PaylinkAPIMock struct {
	listResponse   paylinkapi.ListResponseDto
	linkResponse   paylinkapi.PaymentLinkDto
	createResponse paylinkapi.CreateResultDto
	err            error

	listCalls   []paylinkapi.ListFilter
	getCalls    []string
	createCalls []paylinkapi.CreatePaymentRequestDto
	updateCalls []paylinkapi.UpdatePaymentRequestDto
	statusCalls []string
	deleteCalls []string
	publicCalls []string
}

func (m *PaylinkAPIMock) ListPaymentLinks(_ context.Context, filter paylinkapi.ListFilter) (paylinkapi.ListResponseDto, error) {
	m.listCalls = append(m.listCalls, filter)
	return m.listResponse, m.err
}

func (m *PaylinkAPIMock) GetPaymentLink(_ context.Context, id string) (paylinkapi.PaymentLinkDto, error) {
	m.getCalls = append(m.getCalls, id)
	return m.linkResponse, m.err
}

func (m *PaylinkAPIMock) CreatePayment(_ context.Context, request paylinkapi.CreatePaymentRequestDto) (paylinkapi.CreateResultDto, error) {
	m.createCalls = append(m.createCalls, request)
	return m.createResponse, m.err
}

func (m *PaylinkAPIMock) UpdatePaymentLink(_ context.Context, id string, request paylinkapi.UpdatePaymentRequestDto) (paylinkapi.PaymentLinkDto, error) {
	m.updateCalls = append(m.updateCalls, request)
	return m.linkResponse, m.err
}

func (m *PaylinkAPIMock) UpdatePaymentLinkStatus(_ context.Context, id string, status string) (paylinkapi.PaymentLinkDto, error) {
	m.statusCalls = append(m.statusCalls, status)
	return m.linkResponse, m.err
}

func (m *PaylinkAPIMock) DeletePaymentLink(_ context.Context, id string) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.err
}

func (m *PaylinkAPIMock) GetPublicPaymentLink(_ context.Context, token string) (paylinkapi.PaymentLinkDto, error) {
	m.publicCalls = append(m.publicCalls, token)
	return m.linkResponse, m.err
}

type ShopServiceMock struct {
	profile entities.ShopProfile
	err     error

	calls int
}

func (m *ShopServiceMock) GetShopProfile(_ context.Context) (entities.ShopProfile, error) {
	m.calls++
	return m.profile, m.err
}
