package universe

import (
	"strings"

	"github.com/aristath/bazaar/internal/domain"
)

// Minimum query length before search returns results, and the result cap.
const (
	MinSearchLength  = 3
	MaxSearchResults = 8
)

// companies is the research universe, in display order.
var companies = []domain.Company{
	{Name: "Reliance Industries Limited", Symbol: "RELIANCE", Exchange: domain.ExchangeNSE, Sector: "Energy"},
	{Name: "Tata Consultancy Services Limited", Symbol: "TCS", Exchange: domain.ExchangeNSE, Sector: "IT"},
	{Name: "Infosys Limited", Symbol: "INFY", Exchange: domain.ExchangeNSE, Sector: "IT"},
	{Name: "HDFC Bank Limited", Symbol: "HDFCBANK", Exchange: domain.ExchangeNSE, Sector: "Banking"},
	{Name: "ICICI Bank Limited", Symbol: "ICICIBANK", Exchange: domain.ExchangeNSE, Sector: "Banking"},
	{Name: "Bharti Airtel Limited", Symbol: "BHARTIARTL", Exchange: domain.ExchangeNSE, Sector: "Telecom"},
	{Name: "ITC Limited", Symbol: "ITC", Exchange: domain.ExchangeNSE, Sector: "FMCG"},
	{Name: "Wipro Limited", Symbol: "WIPRO", Exchange: domain.ExchangeNSE, Sector: "IT"},
	{Name: "HCL Technologies Limited", Symbol: "HCLTECH", Exchange: domain.ExchangeNSE, Sector: "IT"},
	{Name: "Asian Paints Limited", Symbol: "ASIANPAINT", Exchange: domain.ExchangeNSE, Sector: "Consumer Goods"},
	{Name: "Bajaj Finance Limited", Symbol: "BAJFINANCE", Exchange: domain.ExchangeNSE, Sector: "Finance"},
	{Name: "Maruti Suzuki India Limited", Symbol: "MARUTI", Exchange: domain.ExchangeNSE, Sector: "Automobile"},
	{Name: "Titan Company Limited", Symbol: "TITAN", Exchange: domain.ExchangeNSE, Sector: "Consumer Goods"},
	{Name: "Adani Enterprises Limited", Symbol: "ADANIENT", Exchange: domain.ExchangeNSE, Sector: "Conglomerate"},
	{Name: "State Bank of India", Symbol: "SBIN", Exchange: domain.ExchangeNSE, Sector: "Banking"},
	{Name: "Kotak Mahindra Bank Limited", Symbol: "KOTAKBANK", Exchange: domain.ExchangeNSE, Sector: "Banking"},
	{Name: "Larsen & Toubro Limited", Symbol: "LT", Exchange: domain.ExchangeNSE, Sector: "Infrastructure"},
	{Name: "Sun Pharmaceutical Industries Limited", Symbol: "SUNPHARMA", Exchange: domain.ExchangeNSE, Sector: "Pharma"},
	{Name: "Axis Bank Limited", Symbol: "AXISBANK", Exchange: domain.ExchangeNSE, Sector: "Banking"},
	{Name: "Nestle India Limited", Symbol: "NESTLEIND", Exchange: domain.ExchangeNSE, Sector: "FMCG"},
	{Name: "Tata Motors Limited", Symbol: "TATAMOTORS", Exchange: domain.ExchangeNSE, Sector: "Automobile"},
	{Name: "Tata Steel Limited", Symbol: "TATASTEEL", Exchange: domain.ExchangeNSE, Sector: "Metals"},
	{Name: "Power Grid Corporation of India Limited", Symbol: "POWERGRID", Exchange: domain.ExchangeNSE, Sector: "Power"},
	{Name: "NTPC Limited", Symbol: "NTPC", Exchange: domain.ExchangeNSE, Sector: "Power"},
	{Name: "UltraTech Cement Limited", Symbol: "ULTRACEMCO", Exchange: domain.ExchangeNSE, Sector: "Cement"},
	{Name: "Tech Mahindra Limited", Symbol: "TECHM", Exchange: domain.ExchangeNSE, Sector: "IT"},
	{Name: "IndusInd Bank Limited", Symbol: "INDUSINDBK", Exchange: domain.ExchangeNSE, Sector: "Banking"},
	{Name: "Hindustan Unilever Limited", Symbol: "HINDUNILVR", Exchange: domain.ExchangeNSE, Sector: "FMCG"},
	{Name: "Dr. Reddy's Laboratories Limited", Symbol: "DRREDDY", Exchange: domain.ExchangeNSE, Sector: "Pharma"},
	{Name: "Cipla Limited", Symbol: "CIPLA", Exchange: domain.ExchangeNSE, Sector: "Pharma"},
	{Name: "Bajaj Auto Limited", Symbol: "BAJAJ-AUTO", Exchange: domain.ExchangeNSE, Sector: "Automobile"},
	{Name: "Mahindra & Mahindra Limited", Symbol: "M&M", Exchange: domain.ExchangeNSE, Sector: "Automobile"},
	{Name: "Adani Ports and Special Economic Zone Limited", Symbol: "ADANIPORTS", Exchange: domain.ExchangeNSE, Sector: "Infrastructure"},
	{Name: "Grasim Industries Limited", Symbol: "GRASIM", Exchange: domain.ExchangeNSE, Sector: "Cement"},
	{Name: "Divis Laboratories Limited", Symbol: "DIVISLAB", Exchange: domain.ExchangeNSE, Sector: "Pharma"},
	{Name: "JSW Steel Limited", Symbol: "JSWSTEEL", Exchange: domain.ExchangeNSE, Sector: "Metals"},
	{Name: "Tata Consumer Products Limited", Symbol: "TATACONSUM", Exchange: domain.ExchangeNSE, Sector: "FMCG"},
	{Name: "Apollo Hospitals Enterprise Limited", Symbol: "APOLLOHOSP", Exchange: domain.ExchangeNSE, Sector: "Healthcare"},
	{Name: "Eicher Motors Limited", Symbol: "EICHERMOT", Exchange: domain.ExchangeNSE, Sector: "Automobile"},
	{Name: "Hero MotoCorp Limited", Symbol: "HEROMOTOCO", Exchange: domain.ExchangeNSE, Sector: "Automobile"},
}

// trendingSymbols is shown when no featured stocks are configured.
var trendingSymbols = []string{"RELIANCE", "TCS", "HDFCBANK", "INFY", "BHARTIARTL", "TATAMOTORS", "SBIN", "ITC"}

// Companies returns a copy of the full catalog.
func Companies() []domain.Company {
	out := make([]domain.Company, len(companies))
	copy(out, companies)
	return out
}

// TrendingSymbols returns the default trending list.
func TrendingSymbols() []string {
	out := make([]string, len(trendingSymbols))
	copy(out, trendingSymbols)
	return out
}

// BySymbol looks up a company by exact symbol.
func BySymbol(symbol string) (domain.Company, bool) {
	for _, c := range companies {
		if c.Symbol == symbol {
			return c, true
		}
	}
	return domain.Company{}, false
}

// Search matches name, symbol or sector case-insensitively. Queries shorter than
// MinSearchLength return nothing.
func Search(query string) []domain.Company {
	if len(query) < MinSearchLength {
		return []domain.Company{}
	}
	q := strings.ToLower(query)

	results := make([]domain.Company, 0, MaxSearchResults)
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Symbol), q) ||
			strings.Contains(strings.ToLower(c.Sector), q) {
			results = append(results, c)
			if len(results) == MaxSearchResults {
				break
			}
		}
	}
	return results
}
