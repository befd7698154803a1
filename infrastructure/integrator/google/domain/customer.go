package domain

// Customer é a conta de anúncios como a API do Google Ads a devolve.
// Campos numéricos de 64 bits chegam como string no JSON REST (mapeamento proto3).
type Customer struct {
	ResourceName    string `json:"resourceName"`
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
	Manager         bool   `json:"manager"`
}

// CustomerClient é um vínculo da hierarquia de um manager com uma conta cliente.
type CustomerClient struct {
	ResourceName    string `json:"resourceName"`
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
	Manager         bool   `json:"manager"`
	Level           string `json:"level"`
	Status          string `json:"status"`
}

type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}
