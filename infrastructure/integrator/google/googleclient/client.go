package googleclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	googledomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

// Client é um cliente autenticado da API REST do Google Ads, amarrado a uma
// credencial e a um customer id de login.
type Client interface {
	Search(customerID, query, pageToken string) (*googledomain.SearchResponse, error)
	SearchAll(customerID, query string) ([]googledomain.SearchRow, error)
	ListAccessibleCustomers() ([]string, error)
}

type GoogleAdsClient struct {
	cfg             *config.Config
	accessToken     string
	loginCustomerID string
	httpClient      *http.Client
}

func NewClient(cfg *config.Config, accessToken, loginCustomerID string) Client {
	return &GoogleAdsClient{
		cfg:             cfg,
		accessToken:     accessToken,
		loginCustomerID: loginCustomerID,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.GoogleAds.RequestTimeoutS) * time.Second,
		},
	}
}

// Search executa uma consulta GAQL para uma página de resultados.
func (c *GoogleAdsClient) Search(customerID, query, pageToken string) (*googledomain.SearchResponse, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.GoogleAds.URL, customerID)

	payload, err := json.Marshal(googledomain.SearchRequest{
		Query:     query,
		PageToken: pageToken,
		PageSize:  c.cfg.GoogleAds.SearchPageSize,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response googledomain.SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}

// SearchAll percorre todas as páginas de uma consulta GAQL.
func (c *GoogleAdsClient) SearchAll(customerID, query string) ([]googledomain.SearchRow, error) {
	var rows []googledomain.SearchRow

	pageToken := ""
	for {
		page, err := c.Search(customerID, query, pageToken)
		if err != nil {
			return nil, err
		}

		rows = append(rows, page.Results...)

		if page.NextPageToken == "" {
			return rows, nil
		}
		pageToken = page.NextPageToken
	}
}

// ListAccessibleCustomers lista os customer ids acessíveis pela credencial.
func (c *GoogleAdsClient) ListAccessibleCustomers() ([]string, error) {
	url := fmt.Sprintf("%s/customers:listAccessibleCustomers", c.cfg.GoogleAds.URL)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response googledomain.ListAccessibleCustomersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	// A API devolve resource names no formato customers/1234567890
	ids := make([]string, 0, len(response.ResourceNames))
	for _, name := range response.ResourceNames {
		ids = append(ids, strings.TrimPrefix(name, "customers/"))
	}

	return ids, nil
}

func (c *GoogleAdsClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("developer-token", c.cfg.GoogleAds.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")
	if c.loginCustomerID != "" {
		req.Header.Set("login-customer-id", c.loginCustomerID)
	}
}

// handleResponse lê o corpo e converte respostas de erro da API em erros tipados.
func (c *GoogleAdsClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResp googledomain.ErrorResponse
	if parseErr := json.Unmarshal(body, &errorResp); parseErr == nil {
		if errorResp.IsAuthError() {
			return nil, fmt.Errorf("%w: %s", ErrReauthRequired, errorResp.Error.Message)
		}
		if errorResp.IsRetryable() {
			return nil, fmt.Errorf("%w: %s", ErrTransientAuth, errorResp.Error.Message)
		}
		return nil, fmt.Errorf("erro na resposta da API do Google Ads. Status: %d, Mensagem: %s",
			errorResp.Error.Code, errorResp.Error.Message)
	}

	return nil, fmt.Errorf("erro na resposta da API do Google Ads. Status: %d, Corpo: %s",
		resp.StatusCode, string(body))
}
