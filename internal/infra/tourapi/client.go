package tourapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://apis.data.go.kr/B551011/KorService2"

// Spot is one attraction row from the areaBasedList2 endpoint.
type Spot struct {
	ContentID string
	Title     string
	Region    string
	CatCode   string
	Lat       float64
	Lon       float64
	ImageURL  string
}

// Client pages through the Korea Tourism Organization TourAPI.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(u, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchAreaList returns one page of attractions (contentTypeId 12) together
// with the API's reported total count.
func (c *Client) FetchAreaList(ctx context.Context, page, rows int) ([]Spot, int, error) {
	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	params.Set("MobileOS", "ETC")
	params.Set("MobileApp", "ruralplanner")
	params.Set("contentTypeId", "12")
	params.Set("arrange", "O")
	params.Set("numOfRows", strconv.Itoa(rows))
	params.Set("pageNo", strconv.Itoa(page))
	params.Set("_type", "json")

	endpoint := c.baseURL + "/areaBasedList2?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build tourapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("tourapi request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, 0, fmt.Errorf("tourapi error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read tourapi response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		// The gateway answers quota errors with an XML string.
		return nil, 0, fmt.Errorf("decode tourapi response: %s", strings.TrimSpace(string(body[:min(len(body), 200)])))
	}

	spots := make([]Spot, 0, len(raw.Response.Body.Items.Item))
	for _, it := range raw.Response.Body.Items.Item {
		lat, _ := strconv.ParseFloat(it.MapY, 64)
		lon, _ := strconv.ParseFloat(it.MapX, 64)
		spots = append(spots, Spot{
			ContentID: it.ContentID,
			Title:     it.Title,
			Region:    regionFromAddr(it.Addr1),
			CatCode:   it.Cat3,
			Lat:       lat,
			Lon:       lon,
			ImageURL:  it.FirstImage,
		})
	}
	return spots, raw.Response.Body.TotalCount, nil
}

// regionFromAddr keeps the province + city/county part of a road address,
// e.g. "전북특별자치도 고창군 아산면 ..." -> "전북특별자치도 고창군".
func regionFromAddr(addr string) string {
	fields := strings.Fields(addr)
	if len(fields) >= 2 {
		return fields[0] + " " + fields[1]
	}
	return addr
}

type apiResponse struct {
	Response struct {
		Body struct {
			TotalCount int `json:"totalCount"`
			Items      struct {
				Item []item `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

type item struct {
	ContentID  string `json:"contentid"`
	Title      string `json:"title"`
	Addr1      string `json:"addr1"`
	Cat3       string `json:"cat3"`
	MapX       string `json:"mapx"`
	MapY       string `json:"mapy"`
	FirstImage string `json:"firstimage"`
}
