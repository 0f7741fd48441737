package tools

// WeatherRequest asks for a forecast by city name or by coordinates.
// Exactly one location form must resolve before lookup.
type WeatherRequest struct {
	City string   `json:"city,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
	Days int      `json:"days"`
}

// ForecastDay is one day of a weather response.
type ForecastDay struct {
	Date     string  `json:"date"`
	TMax     float64 `json:"t_max"`
	TMin     float64 `json:"t_min"`
	PrecipMM float64 `json:"precip_mm"`
}

// WeatherResponse carries the per-day forecast and where it came from.
type WeatherResponse struct {
	Location string        `json:"location"`
	Daily    []ForecastDay `json:"daily"`
	Source   string        `json:"source"`
}

// CryptoRequest asks for a spot price.
type CryptoRequest struct {
	Symbol string `json:"symbol"`
	VS     string `json:"vs,omitempty"`
}

// CryptoResponse carries a single quote.
type CryptoResponse struct {
	Symbol string  `json:"symbol"`
	VS     string  `json:"vs"`
	Price  float64 `json:"price"`
	Source string  `json:"source"`
}

// FileRequest asks for a clipped excerpt of a document.
type FileRequest struct {
	Name     string `json:"name"`
	MaxChars int    `json:"max_chars"`
}

// FileResponse returns the excerpt. Chars is the total length of the
// normalized document; Text is clipped to the requested bound.
type FileResponse struct {
	Name  string `json:"name"`
	Chars int    `json:"chars"`
	Text  string `json:"text"`
}

// InvoiceFollowupRequest selects a CSV of invoices and the overdue
// thresholds (in days) that tier the reminder emails.
type InvoiceFollowupRequest struct {
	CSVName    string `json:"csv_name,omitempty"`
	Thresholds []int  `json:"thresholds,omitempty"`
	// Today overrides the reference date, YYYY-MM-DD. Defaults to the
	// current UTC date.
	Today string `json:"today,omitempty"`
}

// FollowupEmail is one rendered reminder.
type FollowupEmail struct {
	InvoiceNumber string  `json:"invoice_number"`
	Broker        string  `json:"broker"`
	DueDate       string  `json:"due_date"`
	Amount        float64 `json:"amount"`
	DaysOverdue   int     `json:"days_overdue"`
	Tier          int     `json:"tier"`
	Subject       string  `json:"subject"`
	Body          string  `json:"body"`
}

// InvoiceFollowupResponse summarizes the run.
type InvoiceFollowupResponse struct {
	Processed int             `json:"processed"`
	Overdue   int             `json:"overdue"`
	Emails    []FollowupEmail `json:"emails"`
	Source    string          `json:"source"`
}

// HealthResponse reports liveness facts about the server.
type HealthResponse struct {
	Name           string            `json:"name"`
	UptimeSec      float64           `json:"uptime_sec"`
	HTTPTimeoutSec float64           `json:"http_timeout_sec"`
	Versions       map[string]string `json:"versions"`
}

// CatalogEntry describes one tool endpoint for discovery.
type CatalogEntry struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Method string `json:"method"`
	In     string `json:"in"`
	Out    string `json:"out"`
}

// CatalogResponse wraps the static tool catalog.
type CatalogResponse struct {
	Tools []CatalogEntry `json:"tools"`
}

const (
	// SourceLive marks a response assembled from an upstream call.
	SourceLive = "live"
	// SourceFallback marks a deterministic, network-free response.
	SourceFallback = "fallback"
)
