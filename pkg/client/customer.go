package client

import (
	"fmt"
	"time"

	"github.com/reachronakofficial756/excelSort/pkg/model"
)

// CustomerClient talks to the profiles service API. Response decoding is
// left to the caller except for the typed helpers.
type CustomerClient struct {
	httpClient *HttpClient
}

func NewCustomerClient(baseURL string) *CustomerClient {
	return &CustomerClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *CustomerClient) List(limit int, offset int) (*Response, error) {
	path := fmt.Sprintf("/api/v1/customers?limit=%d&offset=%d", limit, offset)
	return c.httpClient.GET(path)
}

func (c *CustomerClient) GetByPage(page int) (*Response, error) {
	return c.httpClient.GET(fmt.Sprintf("/api/v1/customers/page/%d", page))
}

func (c *CustomerClient) Search(mobile string) (*Response, error) {
	return c.httpClient.POST("/api/v1/customers/search", model.SearchRequest{Mobile: mobile})
}

func (c *CustomerClient) SearchRaw(rawBody []byte) (*Response, error) {
	return c.httpClient.POSTRaw("/api/v1/customers/search", rawBody)
}

func (c *CustomerClient) Stats() (*Response, error) {
	return c.httpClient.GET("/api/v1/stats")
}

func (c *CustomerClient) Health() (*Response, error) {
	return c.httpClient.GET("/health")
}

func (c *CustomerClient) Ready() (*Response, error) {
	return c.httpClient.GET("/ready")
}

func (c *CustomerClient) WaitForHealthy(maxWait time.Duration) error {
	return c.httpClient.WaitForHealthy(maxWait)
}

// SearchResult decodes a successful search response.
func (c *CustomerClient) SearchResult(resp *Response) (*model.SearchResult, error) {
	var wrapped struct {
		Data model.SearchResult `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode search result: %w", err)
	}
	return &wrapped.Data, nil
}
