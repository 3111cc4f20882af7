package api

import "github.com/shopspring/decimal"

// Product представляет товар (золотое изделие) из каталога магазина
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Weight    decimal.Decimal `json:"weight"` // граммы
	Purity    int             `json:"purity"` // проба, например 750
	LaborCost decimal.Decimal `json:"laborCost"`
	Price     decimal.Decimal `json:"price"`
	Tags      []TagInfo       `json:"tags,omitempty"`
	Photos    []string        `json:"photos,omitempty"`
}

// InvoiceItem - строка счета
type InvoiceItem struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Weight    decimal.Decimal `json:"weight"`
	Price     decimal.Decimal `json:"price"`
}

// Invoice представляет счет продажи
type Invoice struct {
	ID        int64           `json:"id"`
	Number    string          `json:"number"`
	Items     []InvoiceItem   `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt int64           `json:"createdAt"` // epoch millis
}

// CreateInvoiceRequest - запрос на создание счета
type CreateInvoiceRequest struct {
	ProductIDs []int64 `json:"productIds"`
}

// Sale представляет завершенную продажу
type Sale struct {
	ID        int64           `json:"id"`
	InvoiceID int64           `json:"invoiceId"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt int64           `json:"createdAt"`
}

// GoldRate представляет текущую котировку золота из фида
type GoldRate struct {
	Price     decimal.Decimal `json:"price"` // за грамм
	Currency  string          `json:"currency"`
	UpdatedAt int64           `json:"updatedAt"` // epoch millis
}
