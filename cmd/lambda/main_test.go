package main

import (
	"context"
	"investordash/api"
	mock_app "investordash/internal/app/mocks"
	"investordash/internal/domain"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLambdaHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	overviewApp := mock_app.NewMockOverviewApp(ctrl)
	overviewApp.EXPECT().GetOverview(gomock.Any()).Return(domain.OverviewResult{
		Metrics:  []domain.Metric{{Label: "YTD Revenue", Value: "$0"}},
		Products: []domain.ProductPerformance{},
		Source:   domain.SourceMock,
	})

	handler := newLambdaHandler(&api.ApiHandler{OverviewApp: overviewApp})
	resp, err := handler.Handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "GET",
		Path:       "/api/overview",
	})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	require.Contains(t, resp.Body, `"source":"mock"`)
}
